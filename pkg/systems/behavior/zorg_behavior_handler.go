package behavior

import (
	"math"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
)

// handleZorgBehavior Zorg 围绕格子中心左右悬停，冷却结束时朝飞船扇形射击
// 横向位移为 HoverAmplitude*sin(phase)，最大线速度等于 Speed
func (s *BehaviorSystem) handleZorgBehavior(entityID ecs.EntityID, alien *components.AlienComponent, stats *config.AlienStats, deltaTime float64) {
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

	if !alien.Entering && stats.HoverAmplitude > 0 {
		alien.HoverPhase = math.Mod(alien.HoverPhase+deltaTime*alien.Speed/stats.HoverAmplitude, 2*math.Pi)
		pos.X = alien.HomeX + stats.HoverAmplitude*math.Sin(alien.HoverPhase)
		pos.Y = alien.HomeY
	}

	if s.readyToFire(entityID) {
		s.fireSpread(entityID, pos, alien, stats)
	}
}
