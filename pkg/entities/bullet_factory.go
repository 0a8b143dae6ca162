package entities

import (
	"fmt"
	"math"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/types"
	"github.com/decker502/invaders/pkg/utils"
)

var easeInOutQuad utils.EasingFunc = utils.EaseInOutQuad

// BulletSpec 子弹参数
type BulletSpec struct {
	Owner         types.BulletOwner
	X, Y          float64
	VX, VY        float64
	Width, Height float64
	Sprite        string
}

// BulletRotation 返回沿速度方向的精灵旋转角（弧度）
// 精灵默认朝下（+Y），竖直向下的子弹旋转角为 0
func BulletRotation(vx, vy float64) float64 {
	if vx == 0 && vy == 0 {
		return 0
	}
	return math.Atan2(vy, vx) - math.Pi/2
}

// NewBullet 创建子弹实体
func NewBullet(em *ecs.EntityManager, spec BulletSpec) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return 0, fmt.Errorf("bullet size must be positive, got %vx%v", spec.Width, spec.Height)
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: spec.X, Y: spec.Y})
	ecs.AddComponent(em, id, &components.VelocityComponent{VX: spec.VX, VY: spec.VY})
	ecs.AddComponent(em, id, &components.BulletComponent{Owner: spec.Owner, Damage: 1})
	ecs.AddComponent(em, id, &components.CollisionComponent{Width: spec.Width, Height: spec.Height})
	ecs.AddComponent(em, id, &components.SpriteComponent{
		Name:     spec.Sprite,
		Width:    spec.Width,
		Height:   spec.Height,
		Rotation: BulletRotation(spec.VX, spec.VY),
		Layer:    components.LayerBullet,
	})
	return id, nil
}

// NewShipBullet 在飞船机头上方创建向上飞行的子弹
// shipX/shipY 为飞船中心，子弹与机头之间留出 config.ShipBulletInitialGap
func NewShipBullet(em *ecs.EntityManager, shipX, shipY float64) (ecs.EntityID, error) {
	y := shipY - config.ShipHeight/2 - config.ShipBulletInitialGap - config.ShipBulletHeight/2
	return NewBullet(em, BulletSpec{
		Owner:  types.OwnerShip,
		X:      shipX,
		Y:      y,
		VY:     -config.ShipBulletSpeed,
		Width:  config.ShipBulletWidth,
		Height: config.ShipBulletHeight,
		Sprite: "ship_bullet",
	})
}

// NewAlienBullet 创建外星人子弹
func NewAlienBullet(em *ecs.EntityManager, stats *config.AlienStats, x, y, vx, vy float64) (ecs.EntityID, error) {
	if stats == nil {
		return 0, fmt.Errorf("alien stats cannot be nil")
	}
	return NewBullet(em, BulletSpec{
		Owner:  types.OwnerAlien,
		X:      x,
		Y:      y,
		VX:     vx,
		VY:     vy,
		Width:  stats.BulletWidth,
		Height: stats.BulletHeight,
		Sprite: stats.Sprites.Bullet,
	})
}
