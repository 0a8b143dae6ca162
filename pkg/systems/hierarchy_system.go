package systems

import (
	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/ecs"
)

// HierarchySystem 让子实体（枪口闪光）跟随父实体
// 父实体已删除或已标记删除时，子实体一并删除
type HierarchySystem struct {
	entityManager *ecs.EntityManager
}

// NewHierarchySystem 创建层级系统
func NewHierarchySystem(em *ecs.EntityManager) *HierarchySystem {
	return &HierarchySystem{entityManager: em}
}

// Update 同步子实体位置
func (s *HierarchySystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.ParentComponent, *components.PositionComponent](s.entityManager) {
		parent, _ := ecs.GetComponent[*components.ParentComponent](s.entityManager, id)
		if !s.entityManager.IsAlive(parent.Parent) {
			s.entityManager.DestroyEntity(id)
			continue
		}
		parentPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, parent.Parent)
		if !ok {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		pos.X = parentPos.X + parent.OffsetX
		pos.Y = parentPos.Y + parent.OffsetY
	}
}
