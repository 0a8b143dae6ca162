package systems

import (
	"testing"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/ecs"
)

func newAnimatedEntity(em *ecs.EntityManager, anim *components.AnimationComponent) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, anim)
	ecs.AddComponent(em, id, &components.SpriteComponent{Name: anim.Frames[0]})
	return id
}

// TestAnimationFrameAdvance 测试动画帧推进逻辑
func TestAnimationFrameAdvance(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewAnimationSystem(em)

	id := newAnimatedEntity(em, &components.AnimationComponent{
		Frames:     []string{"a", "b", "c"},
		FrameSpeed: 0.1,
		IsLooping:  true,
	})

	// deltaTime < FrameSpeed，不切换帧
	system.Update(0.05)
	anim, _ := ecs.GetComponent[*components.AnimationComponent](em, id)
	if anim.CurrentFrame != 0 {
		t.Errorf("Expected CurrentFrame=0, got %d", anim.CurrentFrame)
	}

	system.Update(0.06)
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
	if anim.CurrentFrame != 1 {
		t.Errorf("Expected CurrentFrame=1, got %d", anim.CurrentFrame)
	}
	if sprite.Name != "b" {
		t.Errorf("Expected sprite name b, got %q", sprite.Name)
	}
}

func TestLoopingAnimation(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewAnimationSystem(em)

	id := newAnimatedEntity(em, &components.AnimationComponent{
		Frames:     []string{"walk_1", "walk_2"},
		FrameSpeed: 0.2,
		IsLooping:  true,
	})

	for i := 0; i < 2; i++ {
		system.Update(0.2)
	}

	anim, _ := ecs.GetComponent[*components.AnimationComponent](em, id)
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
	if anim.CurrentFrame != 0 || sprite.Name != "walk_1" {
		t.Errorf("Looping animation should wrap to frame 0, got %d (%s)", anim.CurrentFrame, sprite.Name)
	}
	if anim.IsFinished {
		t.Error("Looping animation should never finish")
	}
}

func TestNonLoopingAnimationFinish(t *testing.T) {
	t.Run("播完停在最后一帧", func(t *testing.T) {
		em := ecs.NewEntityManager()
		system := NewAnimationSystem(em)
		id := newAnimatedEntity(em, &components.AnimationComponent{
			Frames:     []string{"a", "b"},
			FrameSpeed: 0.1,
		})

		for i := 0; i < 5; i++ {
			system.Update(0.1)
		}

		anim, _ := ecs.GetComponent[*components.AnimationComponent](em, id)
		if !anim.IsFinished || anim.CurrentFrame != 1 {
			t.Errorf("Expected finished on last frame, got finished=%v frame=%d", anim.IsFinished, anim.CurrentFrame)
		}
		if !em.IsAlive(id) {
			t.Error("Entity without RemoveOnDone should stay alive")
		}
	})

	t.Run("RemoveOnDone 播完后删除实体", func(t *testing.T) {
		em := ecs.NewEntityManager()
		system := NewAnimationSystem(em)
		id := newAnimatedEntity(em, &components.AnimationComponent{
			Frames:       []string{"explosion_0", "explosion_1"},
			FrameSpeed:   0.02,
			RemoveOnDone: true,
		})

		system.Update(0.02)
		if !em.IsAlive(id) {
			t.Fatal("Explosion removed before the last frame")
		}
		system.Update(0.02)
		if !em.IsPendingDestroy(id) {
			t.Error("Explosion should be marked for removal after the last frame")
		}
	})
}

func TestEmptyFramesAnimation(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewAnimationSystem(em)

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.AnimationComponent{FrameSpeed: 0.1})
	ecs.AddComponent(em, id, &components.SpriteComponent{Name: "still"})

	system.Update(1.0)

	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
	if sprite.Name != "still" {
		t.Errorf("Sprite should be untouched, got %q", sprite.Name)
	}
}
