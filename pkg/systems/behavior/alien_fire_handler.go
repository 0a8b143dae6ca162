package behavior

import (
	"log"
	"math"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/systems"
)

// readyToFire 冷却结束时重新采样并返回 true
func (s *BehaviorSystem) readyToFire(entityID ecs.EntityID) bool {
	cooldown, ok := ecs.GetComponent[*components.ShootingCooldownComponent](s.entityManager, entityID)
	if !ok || !cooldown.Finished {
		return false
	}
	systems.ResetCooldown(cooldown, s.rng)
	return true
}

// fireFromSide 从机身随机一侧竖直向下射击（Aris、Rylo）
func (s *BehaviorSystem) fireFromSide(entityID ecs.EntityID, pos *components.PositionComponent, alien *components.AlienComponent, stats *config.AlienStats) {
	side := 1.0
	if s.rng.Float64() < 0.5 {
		side = -1.0
	}
	offsetX := side * stats.Width / 2
	x, y := pos.X+offsetX, pos.Y+stats.Height/4

	if _, err := entities.NewAlienBullet(s.entityManager, stats, x, y, 0, alien.BulletSpeed); err != nil {
		log.Printf("[BehaviorSystem] %s 创建子弹失败: %v", alien.Kind, err)
		return
	}
	if _, err := entities.NewBulletFlash(s.entityManager, entityID, offsetX, 0, stats.Sprites.Flash); err != nil {
		log.Printf("[BehaviorSystem] %s 创建枪口闪光失败: %v", alien.Kind, err)
	}
	s.push(game.Event{Type: game.EventAlienFired, X: x, Y: y, Kind: alien.Kind})
}

// fireSpread 朝飞船方向发射扇形三连发（Zorg）
// 没有飞船时竖直向下
func (s *BehaviorSystem) fireSpread(entityID ecs.EntityID, pos *components.PositionComponent, alien *components.AlienComponent, stats *config.AlienStats) {
	x, y := pos.X, pos.Y+stats.Height/2

	aim := math.Pi / 2
	if shipID, ok := systems.FindShip(s.entityManager); ok {
		shipPos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, shipID)
		aim = math.Atan2(shipPos.Y-y, shipPos.X-x)
	}

	spread := stats.SpreadDegrees * math.Pi / 180
	for _, offset := range []float64{-spread, 0, spread} {
		angle := aim + offset
		vx, vy := math.Cos(angle)*alien.BulletSpeed, math.Sin(angle)*alien.BulletSpeed
		if _, err := entities.NewAlienBullet(s.entityManager, stats, x, y, vx, vy); err != nil {
			log.Printf("[BehaviorSystem] %s 创建子弹失败: %v", alien.Kind, err)
			return
		}
	}
	if _, err := entities.NewBulletFlash(s.entityManager, entityID, 0, stats.Height/2, stats.Sprites.Flash); err != nil {
		log.Printf("[BehaviorSystem] %s 创建枪口闪光失败: %v", alien.Kind, err)
	}
	s.push(game.Event{Type: game.EventAlienFired, X: x, Y: y, Kind: alien.Kind})
}
