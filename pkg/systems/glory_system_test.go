package systems

import (
	"testing"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
)

func TestGlorySystem(t *testing.T) {
	t.Run("未按键时不发射", func(t *testing.T) {
		em := ecs.NewEntityManager()
		s := NewGlorySystem(em, newTestRand())
		if n := s.Update(config.TimeStep, false); n != 0 || em.EntityCount() != 0 {
			t.Errorf("Expected no glory bullets, got %d", n)
		}
	})

	t.Run("按住时发射向上的子弹", func(t *testing.T) {
		em := ecs.NewEntityManager()
		s := NewGlorySystem(em, newTestRand())

		total := 0
		for i := 0; i < 30; i++ {
			n := s.Update(config.TimeStep, true)
			if n < 0 || n >= config.GloryBulletMaxPerStep {
				t.Fatalf("Per-step count %d outside [0, %d)", n, config.GloryBulletMaxPerStep)
			}
			total += n
		}
		if total == 0 {
			t.Fatal("Expected some glory bullets over 30 steps")
		}

		for _, id := range ecs.GetEntitiesWith1[*components.GloryBulletComponent](em) {
			glory, _ := ecs.GetComponent[*components.GloryBulletComponent](em, id)
			vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
			lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)
			if glory.Variant < 0 || glory.Variant >= config.GloryBulletVariants {
				t.Errorf("Variant %d out of range", glory.Variant)
			}
			if -vel.VY < config.GloryBulletMinSpeed || vel.VX != 0 {
				t.Errorf("Glory bullet should fly up at >= %v px/s, got (%v, %v)", config.GloryBulletMinSpeed, vel.VX, vel.VY)
			}
			if lifetime.MaxLifetime != config.GloryBulletLifetime {
				t.Errorf("Expected lifetime %v, got %v", config.GloryBulletLifetime, lifetime.MaxLifetime)
			}
		}
	})
}
