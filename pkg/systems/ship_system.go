package systems

import (
	"log"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/utils"
)

// ShipInput 一个逻辑步内的飞船操作
type ShipInput struct {
	Left, Right bool
	Up, Down    bool
	Fire        bool
}

// ShipSystem 处理飞船移动和射击
type ShipSystem struct {
	entityManager *ecs.EntityManager
	events        *game.EventQueue
	bounds        utils.Bounds
}

// NewShipSystem 创建飞船系统，events 可以为 nil
func NewShipSystem(em *ecs.EntityManager, events *game.EventQueue) *ShipSystem {
	return &ShipSystem{
		entityManager: em,
		events:        events,
		bounds:        config.PlayfieldBounds,
	}
}

// Update 按输入移动飞船；allowFire 为 false 时（入场阶段）只移动不射击
func (s *ShipSystem) Update(deltaTime float64, input ShipInput, allowFire bool) {
	ships := ecs.GetEntitiesWith3[*components.ShipComponent, *components.PositionComponent, *components.CollisionComponent](s.entityManager)
	for _, id := range ships {
		if !s.entityManager.IsAlive(id) {
			continue
		}
		ship, _ := ecs.GetComponent[*components.ShipComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)

		vx, vy := axis(input.Left, input.Right)*ship.Speed, axis(input.Up, input.Down)*ship.Speed
		if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id); ok {
			vel.VX, vel.VY = vx, vy
		}
		pos.X = s.bounds.ClampX(pos.X+vx*deltaTime, col.Width)
		pos.Y = s.bounds.ClampY(pos.Y+vy*deltaTime, col.Height, config.ShipMinY)

		if !allowFire || !input.Fire {
			continue
		}
		cooldown, ok := ecs.GetComponent[*components.ShootingCooldownComponent](s.entityManager, id)
		if !ok || !cooldown.Finished {
			continue
		}
		s.fire(id, pos)
		ResetCooldown(cooldown, nil)
	}
}

func (s *ShipSystem) fire(id ecs.EntityID, pos *components.PositionComponent) {
	bulletID, err := entities.NewShipBullet(s.entityManager, pos.X, pos.Y)
	if err != nil {
		log.Printf("[ShipSystem] 创建子弹失败: %v", err)
		return
	}
	if s.events != nil {
		bulletPos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, bulletID)
		s.events.Push(game.Event{Type: game.EventShipFired, X: bulletPos.X, Y: bulletPos.Y})
	}
}

// FindShip 返回当前存活的飞船
func FindShip(em *ecs.EntityManager) (ecs.EntityID, bool) {
	for _, id := range ecs.GetEntitiesWith2[*components.ShipComponent, *components.PositionComponent](em) {
		if em.IsAlive(id) {
			return id, true
		}
	}
	return 0, false
}

// axis 把一对方向键换算为 -1 / 0 / +1
func axis(negative, positive bool) float64 {
	switch {
	case negative && !positive:
		return -1
	case positive && !negative:
		return 1
	default:
		return 0
	}
}
