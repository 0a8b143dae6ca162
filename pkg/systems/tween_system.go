package systems

import (
	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/utils"
)

// TweenSystem 推进位置补间
//
// 补间结束时实体精确落在终点，PositionTweenComponent 被移除，
// 并添加带标签的 TweenCompletedComponent 交给行为系统处理。
type TweenSystem struct {
	entityManager *ecs.EntityManager
}

// NewTweenSystem 创建补间系统
func NewTweenSystem(em *ecs.EntityManager) *TweenSystem {
	return &TweenSystem{entityManager: em}
}

// Update 推进所有补间
func (s *TweenSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.PositionTweenComponent, *components.PositionComponent](s.entityManager) {
		tween, _ := ecs.GetComponent[*components.PositionTweenComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		tween.Elapsed += deltaTime
		progress := 1.0
		if tween.Duration > 0 {
			progress = utils.Clamp01(tween.Elapsed / tween.Duration)
		}

		eased := progress
		if tween.Easing != nil {
			eased = tween.Easing(progress)
		}

		if progress >= 1 {
			pos.X, pos.Y = tween.ToX, tween.ToY
			ecs.RemoveComponent[*components.PositionTweenComponent](s.entityManager, id)
			ecs.AddComponent(s.entityManager, id, &components.TweenCompletedComponent{Tag: tween.Tag})
			continue
		}

		pos.X = utils.Lerp(tween.FromX, tween.ToX, eased)
		pos.Y = utils.Lerp(tween.FromY, tween.ToY, eased)
	}
}
