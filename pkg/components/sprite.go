package components

// SpriteLayer 绘制层级，数值小的先绘制
type SpriteLayer int

const (
	// LayerBackground 背景装饰（荣誉子弹）
	LayerBackground SpriteLayer = iota
	// LayerActor 飞船与外星人
	LayerActor
	// LayerBullet 子弹
	LayerBullet
	// LayerEffect 枪口闪光与爆炸
	LayerEffect
)

// SpriteComponent 存储实体的视觉表现
// 只保存精灵名称和绘制尺寸，图像由渲染端（ebiten 资源管理器或终端字符表）按名称解析
type SpriteComponent struct {
	Name     string      // 精灵名称，对应 data/sprites.yaml 中的条目
	Width    float64     // 绘制宽度（像素）
	Height   float64     // 绘制高度（像素）
	Rotation float64     // 旋转角度（弧度，顺时针为正）
	FlipY    bool        // 垂直翻转
	Layer    SpriteLayer // 绘制层级
	Hidden   bool        // 为 true 时不绘制
}
