package utils

import (
	"fmt"
	"math/rand"
)

// DurationSampler 冷却时长采样策略
// 每次射击后重新采样，返回值单位为秒
type DurationSampler interface {
	Sample(rng *rand.Rand) float64
}

// FixedDuration 固定时长（飞船）
type FixedDuration struct {
	Seconds float64
}

// Sample 总是返回固定时长
func (f FixedDuration) Sample(*rand.Rand) float64 {
	return f.Seconds
}

func (f FixedDuration) String() string {
	return fmt.Sprintf("fixed(%gs)", f.Seconds)
}

// AtMostDuration 在 [0, Max) 内均匀采样（Aris、Rylo）
type AtMostDuration struct {
	Max float64
}

// Sample 返回 [0, Max) 内的随机时长
func (a AtMostDuration) Sample(rng *rand.Rand) float64 {
	return rng.Float64() * a.Max
}

func (a AtMostDuration) String() string {
	return fmt.Sprintf("atMost(%gs)", a.Max)
}

// BetweenDuration 在 [Min, Max) 内均匀采样（Zorg）
type BetweenDuration struct {
	Min float64
	Max float64
}

// Sample 返回 [Min, Max) 内的随机时长
func (b BetweenDuration) Sample(rng *rand.Rand) float64 {
	return b.Min + rng.Float64()*(b.Max-b.Min)
}

func (b BetweenDuration) String() string {
	return fmt.Sprintf("between(%gs, %gs)", b.Min, b.Max)
}
