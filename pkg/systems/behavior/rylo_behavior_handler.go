package behavior

import (
	"math"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/entities"
)

// ryloMoveChance 跳跃时真正移动的概率，其余情况原地停留一段时间
const ryloMoveChance = 0.6

// handleRyloBehavior Rylo 在场地上半部随机跳跃
// 每次跳跃补间结束后安排下一次，射击方式与 Aris 相同
func (s *BehaviorSystem) handleRyloBehavior(entityID ecs.EntityID, alien *components.AlienComponent, stats *config.AlienStats, completed *components.TweenCompletedComponent) {
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

	if completed != nil && completed.Tag == components.TweenTagRyloHop {
		s.scheduleRyloHop(entityID, pos, stats)
	}

	if s.readyToFire(entityID) {
		s.fireFromSide(entityID, pos, alien, stats)
	}
}

// scheduleRyloHop 补间时长为 max(d, d*min(1, r+0.25))，d = r*HopDuration
func (s *BehaviorSystem) scheduleRyloHop(entityID ecs.EntityID, pos *components.PositionComponent, stats *config.AlienStats) {
	toX := s.bounds.Left + s.rng.Float64()*s.bounds.Width()
	toY := s.bounds.Top + s.rng.Float64()*s.bounds.Height()/2
	d := s.rng.Float64() * stats.HopDuration

	if s.rng.Float64() >= ryloMoveChance {
		toX, toY = pos.X, pos.Y
	}
	duration := math.Max(d, d*math.Min(1, s.rng.Float64()+0.25))

	entities.AddPositionTween(s.entityManager, entityID, pos.X, pos.Y, toX, toY, duration, components.TweenTagRyloHop)
}
