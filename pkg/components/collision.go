package components

// CollisionComponent 定义实体的碰撞检测边界框
// 边界框以实体位置为中心，用于物理系统检测子弹与飞船、外星人之间的碰撞
type CollisionComponent struct {
	Width   float64 // 碰撞盒宽度（像素）
	Height  float64 // 碰撞盒高度（像素）
	OffsetX float64 // 碰撞盒中心相对于实体位置的X偏移量（像素），正值向右偏移
	OffsetY float64 // 碰撞盒中心相对于实体位置的Y偏移量（像素），正值向下偏移
}
