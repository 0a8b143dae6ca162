package systems

import (
	"math/rand"
	"testing"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/utils"
)

func TestCooldownSystem(t *testing.T) {
	t.Run("固定冷却到期后保持完成状态", func(t *testing.T) {
		em := ecs.NewEntityManager()
		system := NewCooldownSystem(em)
		id := em.CreateEntity()
		ecs.AddComponent(em, id, &components.ShootingCooldownComponent{
			Duration: 0.3,
			Sampler:  utils.FixedDuration{Seconds: 0.3},
		})

		system.Update(0.2)
		cooldown, _ := ecs.GetComponent[*components.ShootingCooldownComponent](em, id)
		if cooldown.Finished {
			t.Fatal("Cooldown finished too early")
		}

		system.Update(0.1)
		if !cooldown.Finished {
			t.Fatal("Cooldown should be finished after 0.3s")
		}

		elapsed := cooldown.Elapsed
		system.Update(1.0)
		if !cooldown.Finished || cooldown.Elapsed != elapsed {
			t.Errorf("Finished cooldown should not keep ticking, elapsed=%f", cooldown.Elapsed)
		}
	})

	t.Run("重置时重新采样", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		cooldown := &components.ShootingCooldownComponent{
			Duration: 1,
			Elapsed:  1,
			Finished: true,
			Sampler:  utils.BetweenDuration{Min: 3, Max: 5},
		}

		ResetCooldown(cooldown, rng)

		if cooldown.Finished || cooldown.Elapsed != 0 {
			t.Error("Reset should clear elapsed time and finished flag")
		}
		if cooldown.Duration < 3 || cooldown.Duration >= 5 {
			t.Errorf("Resampled duration %f out of [3, 5)", cooldown.Duration)
		}
	})

	t.Run("没有采样器时沿用原时长", func(t *testing.T) {
		cooldown := &components.ShootingCooldownComponent{Duration: 0.5, Finished: true}
		ResetCooldown(cooldown, nil)
		if cooldown.Duration != 0.5 {
			t.Errorf("Expected duration 0.5, got %f", cooldown.Duration)
		}
	})
}
