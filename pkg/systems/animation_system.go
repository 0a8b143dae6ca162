package systems

import (
	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/ecs"
)

// AnimationSystem 管理所有实体的帧动画
// 帧是精灵名称，切换帧时写回 SpriteComponent.Name
type AnimationSystem struct {
	entityManager *ecs.EntityManager
}

// NewAnimationSystem 创建一个新的动画系统
func NewAnimationSystem(em *ecs.EntityManager) *AnimationSystem {
	return &AnimationSystem{
		entityManager: em,
	}
}

// Update 更新所有动画实体的帧
func (s *AnimationSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.AnimationComponent, *components.SpriteComponent](s.entityManager)

	for _, id := range entities {
		anim, _ := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)

		if len(anim.Frames) == 0 {
			continue
		}

		// 非循环动画播完：需要时删除实体，否则停在最后一帧
		if anim.IsFinished {
			if anim.RemoveOnDone {
				s.entityManager.DestroyEntity(id)
			}
			continue
		}

		anim.FrameCounter += deltaTime
		if anim.FrameCounter < anim.FrameSpeed {
			continue
		}
		anim.FrameCounter = 0
		anim.CurrentFrame++

		if anim.CurrentFrame >= len(anim.Frames) {
			if anim.IsLooping {
				anim.CurrentFrame = 0
			} else {
				anim.CurrentFrame = len(anim.Frames) - 1
				anim.IsFinished = true
				if anim.RemoveOnDone {
					s.entityManager.DestroyEntity(id)
				}
			}
		}

		sprite.Name = anim.Frames[anim.CurrentFrame]
	}
}
