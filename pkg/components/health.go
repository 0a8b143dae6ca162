package components

// HealthComponent 存储实体的生命值信息
// 用于飞船和外星人，生命值降到 0 时实体被移除
type HealthComponent struct {
	CurrentHealth int // 当前生命值
	MaxHealth     int // 最大生命值
}
