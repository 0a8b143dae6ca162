package components

// PositionComponent 存储实体在世界坐标中的中心点位置（像素）
// 坐标原点在场地左上角，Y 轴向下
type PositionComponent struct {
	X float64
	Y float64
}

// VelocityComponent 存储实体的速度（像素/秒）
// 仅由 MovementSystem 积分，外星人的巡航位移由行为系统直接处理
type VelocityComponent struct {
	VX float64
	VY float64
}
