package components

import "github.com/decker502/invaders/pkg/utils"

// ShootingCooldownComponent 射击冷却计时器
// 计时结束(Finished)后，实体可以射击；射击后由系统用 Sampler 重新采样时长并重置
//
// 注意：遵循 ECS 原则，组件仅存储数据，计时逻辑在 CooldownSystem 中
type ShootingCooldownComponent struct {
	Duration float64               // 本轮冷却时长（秒）
	Elapsed  float64               // 本轮已过时间（秒）
	Finished bool                  // 本轮冷却是否结束
	Sampler  utils.DurationSampler // 冷却时长采样策略（Fixed / AtMost / Between）
}
