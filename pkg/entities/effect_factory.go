package entities

import (
	"fmt"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
)

// NewBulletFlash 创建挂在射击者身上的枪口闪光
// 闪光跟随父实体移动，config.BulletFlashDuration 秒后消失；父实体被移除时随之删除
func NewBulletFlash(em *ecs.EntityManager, parent ecs.EntityID, offsetX, offsetY float64, sprite string) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	parentPos, ok := ecs.GetComponent[*components.PositionComponent](em, parent)
	if !ok {
		return 0, fmt.Errorf("flash parent %d has no position", parent)
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: parentPos.X + offsetX, Y: parentPos.Y + offsetY})
	ecs.AddComponent(em, id, &components.ParentComponent{Parent: parent, OffsetX: offsetX, OffsetY: offsetY})
	ecs.AddComponent(em, id, &components.LifetimeComponent{MaxLifetime: config.BulletFlashDuration})
	ecs.AddComponent(em, id, &components.BulletFlashComponent{})
	ecs.AddComponent(em, id, &components.SpriteComponent{
		Name:   sprite,
		Width:  config.BulletFlashWidth,
		Height: config.BulletFlashHeight,
		Layer:  components.LayerEffect,
	})
	return id, nil
}

// NewExplosion 在指定位置创建爆炸动画，播放完毕后自动删除
func NewExplosion(em *ecs.EntityManager, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	frames := config.ExplosionFrames()

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.ExplosionComponent{})
	ecs.AddComponent(em, id, &components.AnimationComponent{
		Frames:       frames,
		FrameSpeed:   config.ExplosionFrameDuration,
		RemoveOnDone: true,
	})
	ecs.AddComponent(em, id, &components.SpriteComponent{
		Name:   frames[0],
		Width:  config.ExplosionSize,
		Height: config.ExplosionSize,
		Layer:  components.LayerEffect,
	})
	return id, nil
}

// NewGloryBullet 创建胜利画面中向上飞的庆祝子弹
func NewGloryBullet(em *ecs.EntityManager, x, y, speed float64, variant int) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if variant < 0 || variant >= config.GloryBulletVariants {
		return 0, fmt.Errorf("glory bullet variant %d out of range [0, %d)", variant, config.GloryBulletVariants)
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.VelocityComponent{VY: -speed})
	ecs.AddComponent(em, id, &components.LifetimeComponent{MaxLifetime: config.GloryBulletLifetime})
	ecs.AddComponent(em, id, &components.GloryBulletComponent{Variant: variant})
	ecs.AddComponent(em, id, &components.HallOfFameMarkerComponent{})
	ecs.AddComponent(em, id, &components.SpriteComponent{
		Name:     fmt.Sprintf("glory_bullet_%d", variant),
		Width:    config.GloryBulletWidth,
		Height:   config.GloryBulletHeight,
		Rotation: BulletRotation(0, -speed),
		Layer:    components.LayerBackground,
	})
	return id, nil
}

// NewTrophy 创建名人堂奖杯
func NewTrophy(em *ecs.EntityManager) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	b := config.PlayfieldBounds

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{
		X: b.Left + b.Width()/2,
		Y: b.Top + b.Height()/2 - config.TrophyOffset,
	})
	ecs.AddComponent(em, id, &components.HallOfFameMarkerComponent{})
	ecs.AddComponent(em, id, &components.SpriteComponent{
		Name:   "trophy",
		Width:  config.TrophyWidth,
		Height: config.TrophyHeight,
		Layer:  components.LayerBackground,
	})
	return id, nil
}
