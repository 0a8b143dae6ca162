package components

import "github.com/decker502/invaders/pkg/utils"

// TweenTag 补间完成标签，行为系统据此决定后续动作
type TweenTag int

const (
	// TweenTagNone 完成后无后续动作（入场补间）
	TweenTagNone TweenTag = iota
	// TweenTagRyloHop Rylo 跳跃补间完成，需要排下一次跳跃
	TweenTagRyloHop
)

// PositionTweenComponent 位置补间
// TweenSystem 每步推进 Elapsed，并按 Easing 在 From 与 To 之间插值写入 PositionComponent
type PositionTweenComponent struct {
	FromX, FromY float64
	ToX, ToY     float64
	Duration     float64          // 总时长（秒），<= 0 时立即完成
	Elapsed      float64          // 已过时间（秒）
	Easing       utils.EasingFunc // 缓动函数，nil 表示线性
	Tag          TweenTag         // 完成标签
}

// TweenCompletedComponent 补间完成事件
// 由 TweenSystem 在补间结束时添加，由行为系统消费后移除
type TweenCompletedComponent struct {
	Tag TweenTag
}
