package components

import "github.com/decker502/invaders/pkg/ecs"

// ParentComponent 将实体挂到父实体上（如枪口闪光跟随射击者）
// HierarchySystem 每步把子实体放到父实体位置 + 偏移；父实体消失后子实体随之删除
type ParentComponent struct {
	Parent  ecs.EntityID
	OffsetX float64
	OffsetY float64
}
