package behavior

import (
	"log"
	"math/rand"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/types"
	"github.com/decker502/invaders/pkg/utils"
)

// BehaviorSystem 处理外星人的行为逻辑
// 根据 AlienComponent.Kind 分发到各种类的处理函数（Aris 巡航、Rylo 跳跃、Zorg 悬停）
type BehaviorSystem struct {
	entityManager *ecs.EntityManager
	stats         *config.AlienStatsConfig
	rng           *rand.Rand
	events        *game.EventQueue
	bounds        utils.Bounds

	logFrameCounter int // 日志输出计数器
}

// 日志输出间隔（每N帧输出一次）
const LogOutputFrameInterval = 300

// NewBehaviorSystem 创建一个新的行为系统
// 参数:
//   - em: EntityManager 实例
//   - stats: 外星人属性（子弹尺寸、精灵名、跳跃/悬停参数）
//   - rng: 随机数源
//   - events: 事件队列，可以为 nil
func NewBehaviorSystem(em *ecs.EntityManager, stats *config.AlienStatsConfig, rng *rand.Rand, events *game.EventQueue) *BehaviorSystem {
	return &BehaviorSystem{
		entityManager: em,
		stats:         stats,
		rng:           rng,
		events:        events,
		bounds:        config.PlayfieldBounds,
	}
}

// Update 更新所有外星人
func (s *BehaviorSystem) Update(deltaTime float64) {
	aliens := ecs.GetEntitiesWith2[*components.AlienComponent, *components.PositionComponent](s.entityManager)

	s.logFrameCounter++
	if len(aliens) > 0 && s.logFrameCounter%LogOutputFrameInterval == 1 {
		log.Printf("[BehaviorSystem] 更新 %d 个外星人", len(aliens))
	}

	for _, entityID := range aliens {
		if !s.entityManager.IsAlive(entityID) {
			continue
		}
		alien, _ := ecs.GetComponent[*components.AlienComponent](s.entityManager, entityID)

		// 补间完成事件只消费一次
		completed, hasCompleted := ecs.GetComponent[*components.TweenCompletedComponent](s.entityManager, entityID)
		if hasCompleted {
			ecs.RemoveComponent[*components.TweenCompletedComponent](s.entityManager, entityID)
		}
		if alien.Entering && !ecs.HasComponent[*components.PositionTweenComponent](s.entityManager, entityID) {
			alien.Entering = false
		}

		stats, ok := s.stats.Get(alien.Kind)
		if !ok {
			continue
		}

		switch alien.Kind {
		case types.AlienAris:
			s.handleArisBehavior(entityID, alien, stats, deltaTime)
		case types.AlienRylo:
			s.handleRyloBehavior(entityID, alien, stats, completed)
		case types.AlienZorg:
			s.handleZorgBehavior(entityID, alien, stats, deltaTime)
		}
	}
}

// push 追加事件
func (s *BehaviorSystem) push(e game.Event) {
	if s.events != nil {
		s.events.Push(e)
	}
}
