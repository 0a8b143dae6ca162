package entities

import (
	"fmt"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/utils"
)

// ShipSpawnPosition 返回飞船的初始位置（场地底部居中）
func ShipSpawnPosition() (x, y float64) {
	b := config.PlayfieldBounds
	return b.Left + b.Width()/2, b.Bottom - config.ShipBottomMargin - config.ShipHeight/2
}

// NewShip 创建玩家飞船实体
//
// 飞船使用固定冷却（config.ShipCooldown），开局需要等待一个冷却周期才能射击
//
// 参数:
//   - em: 实体管理器
//   - x, y: 飞船中心的世界坐标
//
// 返回:
//   - ecs.EntityID: 创建的飞船实体ID，如果失败返回 0
//   - error: 如果创建失败返回错误信息
func NewShip(em *ecs.EntityManager, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.VelocityComponent{})
	ecs.AddComponent(em, id, &components.ShipComponent{Speed: config.ShipSpeed})
	ecs.AddComponent(em, id, &components.HealthComponent{
		CurrentHealth: config.ShipHealth,
		MaxHealth:     config.ShipHealth,
	})
	ecs.AddComponent(em, id, &components.CollisionComponent{
		Width:  config.ShipWidth,
		Height: config.ShipHeight,
	})
	ecs.AddComponent(em, id, &components.ShootingCooldownComponent{
		Duration: config.ShipCooldown,
		Sampler:  utils.FixedDuration{Seconds: config.ShipCooldown},
	})
	ecs.AddComponent(em, id, &components.SpriteComponent{
		Name:   "ship",
		Width:  config.ShipWidth,
		Height: config.ShipHeight,
		Layer:  components.LayerActor,
	})

	return id, nil
}
