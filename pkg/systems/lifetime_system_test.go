package systems

import (
	"testing"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
)

func newTimedEntity(em *ecs.EntityManager, max float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.LifetimeComponent{MaxLifetime: max})
	return id
}

func TestLifetimeUpdate(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)
	id := newTimedEntity(em, 10.0)

	system.Update(5.0)

	lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)
	if lifetime.CurrentLifetime != 5.0 {
		t.Errorf("Expected CurrentLifetime=5.0, got %f", lifetime.CurrentLifetime)
	}
	if lifetime.IsExpired {
		t.Error("Entity should not be expired yet")
	}
}

func TestLifetimeExpiration(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)
	id := newTimedEntity(em, 10.0)

	system.Update(12.0)

	lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)
	if !lifetime.IsExpired {
		t.Error("Entity should be expired")
	}

	em.RemoveMarkedEntities()
	if ecs.HasComponent[*components.LifetimeComponent](em, id) {
		t.Error("Expired entity should be removed")
	}
}

func TestBulletFlashLifetime(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)
	flash := newTimedEntity(em, config.BulletFlashDuration)
	glory := newTimedEntity(em, config.GloryBulletLifetime)

	// 6 个逻辑步 = 0.1 秒
	for i := 0; i < 7; i++ {
		system.Update(config.TimeStep)
	}
	em.RemoveMarkedEntities()

	if em.IsAlive(flash) {
		t.Error("Bullet flash should be gone after 0.1s")
	}
	if !em.IsAlive(glory) {
		t.Error("Glory bullet should live for 3s")
	}
}
