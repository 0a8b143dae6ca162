package components

import "github.com/decker502/invaders/pkg/types"

// AlienComponent 外星人的通用数据
// 种类相关的参数从 config.AlienStats 复制而来，运行时不再回查配置
type AlienComponent struct {
	Kind        types.AlienKind
	ScoreValue  int     // 被击毁时的得分
	Speed       float64 // 巡航/悬停速度（像素/秒）
	BulletSpeed float64 // 子弹速度（像素/秒）
	Direction   float64 // Aris 的横向方向：+1 向右，-1 向左
	HomeX       float64 // 布局格子中心
	HomeY       float64
	HoverPhase  float64 // Zorg 悬停相位（弧度），从 0 开始，入场结束时位于 HomeX
	Entering    bool    // 入场补间未完成前为 true，此时不做自身移动
}
