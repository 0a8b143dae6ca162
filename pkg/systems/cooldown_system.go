package systems

import (
	"math/rand"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/ecs"
)

// CooldownSystem 推进所有射击冷却计时器
// 计时结束后 Finished 保持为 true，直到射击方调用 ResetCooldown
type CooldownSystem struct {
	entityManager *ecs.EntityManager
}

// NewCooldownSystem 创建冷却系统
func NewCooldownSystem(em *ecs.EntityManager) *CooldownSystem {
	return &CooldownSystem{entityManager: em}
}

// Update 每个逻辑步调用一次
func (s *CooldownSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.ShootingCooldownComponent](s.entityManager) {
		cooldown, _ := ecs.GetComponent[*components.ShootingCooldownComponent](s.entityManager, id)
		TickCooldown(cooldown, deltaTime)
	}
}

// TickCooldown 推进单个计时器
func TickCooldown(cooldown *components.ShootingCooldownComponent, deltaTime float64) {
	if cooldown.Finished {
		return
	}
	cooldown.Elapsed += deltaTime
	if cooldown.Elapsed >= cooldown.Duration {
		cooldown.Finished = true
	}
}

// ResetCooldown 射击后开始新一轮冷却
// 有 Sampler 时重新采样时长，否则沿用上一轮时长
func ResetCooldown(cooldown *components.ShootingCooldownComponent, rng *rand.Rand) {
	if cooldown.Sampler != nil {
		cooldown.Duration = cooldown.Sampler.Sample(rng)
	}
	cooldown.Elapsed = 0
	cooldown.Finished = false
}
