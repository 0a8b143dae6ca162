package entities

import (
	"fmt"
	"math/rand"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/types"
)

// AlienSpawn 外星人生成参数
type AlienSpawn struct {
	Kind   types.AlienKind
	HomeX  float64 // 布局格子中心
	HomeY  float64
	StartX float64 // 入场补间起点
	StartY float64
}

// NewAlien 创建外星人实体
//
// 外星人在 StartX/StartY 处生成，处于入场状态（Entering），
// 入场补间由调用方通过 AddPositionTween 添加。
// 首次冷却时长立即采样，因此 Aris/Rylo 可能在入场结束后很快射击。
//
// 参数:
//   - em: 实体管理器
//   - stats: 该种类的属性配置
//   - spawn: 生成参数
//   - rng: 随机数源（冷却采样）
//
// 返回:
//   - ecs.EntityID: 创建的外星人实体ID，如果失败返回 0
//   - error: 如果创建失败返回错误信息
func NewAlien(em *ecs.EntityManager, stats *config.AlienStats, spawn AlienSpawn, rng *rand.Rand) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if stats == nil {
		return 0, fmt.Errorf("alien stats cannot be nil")
	}
	if spawn.Kind == types.AlienUnknown {
		return 0, fmt.Errorf("cannot spawn alien of unknown kind")
	}
	sampler, err := stats.Cooldown.Sampler()
	if err != nil {
		return 0, fmt.Errorf("alien %s: %w", spawn.Kind, err)
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: spawn.StartX, Y: spawn.StartY})
	ecs.AddComponent(em, id, &components.AlienComponent{
		Kind:        spawn.Kind,
		ScoreValue:  stats.Score,
		Speed:       stats.Speed,
		BulletSpeed: stats.BulletSpeed,
		Direction:   1,
		HomeX:       spawn.HomeX,
		HomeY:       spawn.HomeY,
		Entering:    true,
	})
	ecs.AddComponent(em, id, &components.HealthComponent{
		CurrentHealth: stats.Health,
		MaxHealth:     stats.Health,
	})
	ecs.AddComponent(em, id, &components.CollisionComponent{
		Width:  stats.Width,
		Height: stats.Height,
	})
	ecs.AddComponent(em, id, &components.ShootingCooldownComponent{
		Duration: sampler.Sample(rng),
		Sampler:  sampler,
	})
	ecs.AddComponent(em, id, &components.SpriteComponent{
		Name:   stats.Sprites.Frames[0],
		Width:  stats.Width,
		Height: stats.Height,
		Layer:  components.LayerActor,
	})

	if len(stats.Sprites.Frames) > 1 {
		ecs.AddComponent(em, id, &components.AnimationComponent{
			Frames:     append([]string(nil), stats.Sprites.Frames...),
			FrameSpeed: config.AlienWalkFrameDuration,
			IsLooping:  true,
		})
	}

	return id, nil
}

// AddPositionTween 为实体添加（或替换）位置补间，使用二次方缓入缓出
func AddPositionTween(em *ecs.EntityManager, id ecs.EntityID, fromX, fromY, toX, toY, duration float64, tag components.TweenTag) {
	ecs.AddComponent(em, id, &components.PositionTweenComponent{
		FromX:    fromX,
		FromY:    fromY,
		ToX:      toX,
		ToY:      toY,
		Duration: duration,
		Easing:   easeInOutQuad,
		Tag:      tag,
	})
}
