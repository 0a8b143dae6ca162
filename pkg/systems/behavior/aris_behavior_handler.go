package behavior

import (
	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
)

// handleArisBehavior Aris 左右巡航
// 整个机身离开左墙或右墙后掉头并下移一格，制造"移出屏幕再折返"的效果
func (s *BehaviorSystem) handleArisBehavior(entityID ecs.EntityID, alien *components.AlienComponent, stats *config.AlienStats, deltaTime float64) {
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

	if !alien.Entering {
		pos.X += alien.Speed * alien.Direction * deltaTime

		left, right := pos.X-stats.Width/2, pos.X+stats.Width/2
		if right < s.bounds.Left || left > s.bounds.Right {
			alien.Direction = -alien.Direction
			pos.Y += config.AlienAlienGapY/2 + stats.Height/2
		}
	}

	if s.readyToFire(entityID) {
		s.fireFromSide(entityID, pos, alien, stats)
	}
}
