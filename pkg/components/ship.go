package components

import "github.com/decker502/invaders/pkg/types"

// ShipComponent 玩家飞船标记与参数
type ShipComponent struct {
	Speed float64 // 移动速度（像素/秒）
}

// BulletComponent 子弹
// Owner 决定子弹能伤害哪一方：飞船子弹只打外星人，外星人子弹只打飞船
type BulletComponent struct {
	Owner  types.BulletOwner
	Damage int
}
