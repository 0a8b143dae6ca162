package components

// ExplosionComponent 爆炸效果标记
type ExplosionComponent struct{}

// BulletFlashComponent 枪口闪光标记
type BulletFlashComponent struct{}

// GloryBulletComponent 胜利画面中向上飞的庆祝子弹
type GloryBulletComponent struct {
	Variant int // 外观编号 0..8
}

// HallOfFameMarkerComponent 标记属于名人堂画面的实体，离开胜利阶段时统一清理
type HallOfFameMarkerComponent struct{}
