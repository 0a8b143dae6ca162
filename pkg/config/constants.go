package config

import "github.com/decker502/invaders/pkg/utils"

// 窗口与场地
// 世界坐标原点在场地左上角，X 向右，Y 向下
const (
	WindowWidth  = 920
	WindowHeight = 920

	// TimeStep 固定逻辑步长（秒）
	TimeStep = 1.0 / 60.0
)

// PlayfieldBounds 场地边界（四面墙）
var PlayfieldBounds = utils.Bounds{Left: 0, Top: 0, Right: WindowWidth, Bottom: WindowHeight}

// 波次网格
// 网格单元以 Aris 的尺寸为基准，所有种类共用同一套格子
const (
	GridCellWidth  = 60.0
	GridCellHeight = 40.0

	AlienWallGapX  = 20.0
	AlienWallGapY  = 20.0
	AlienAlienGapX = 20.0
	AlienAlienGapY = 40.0

	// AlienOddRowOffset 奇数行整体左移的距离
	AlienOddRowOffset = 30.0
	// AlienTopBand 第一行与上墙之间额外留出的空间（HUD）
	AlienTopBand = 80.0
)

// 飞船
const (
	ShipWidth        = 80.0
	ShipHeight       = 60.0
	ShipSpeed        = 400.0
	ShipHealth       = 3
	ShipCooldown     = 0.3
	ShipBottomMargin = 60.0
	// ShipMinY 飞船可上移到的最高位置（上边界）
	ShipMinY = WindowHeight * 0.6

	ShipBulletWidth      = 20.0
	ShipBulletHeight     = 40.0
	ShipBulletSpeed      = 350.0
	ShipBulletInitialGap = 5.0
)

// 特效
const (
	BulletFlashWidth    = 35.0
	BulletFlashHeight   = 35.0
	BulletFlashDuration = 0.1

	ExplosionSize          = 60.0
	ExplosionFrameDuration = 0.02
	// ExplosionFrameRepeat 每张爆炸图重复的帧数
	ExplosionFrameRepeat = 3

	AlienWalkFrameDuration = 0.2
)

// 波次与胜利画面
const (
	DefaultLoadWaveDuration = 2.0

	// RyloEntranceExtra Rylo 入场补间比普通外星人多出的时长（秒）
	RyloEntranceExtra = 4.0

	GloryBulletLifetime   = 3.0
	GloryBulletMinSpeed   = 250.0
	GloryBulletVariants   = 9
	GloryBulletMaxPerStep = 20
	GloryBulletWidth      = 20.0
	GloryBulletHeight     = 30.0
	// GloryBulletStartDepth 庆祝子弹出生点在底墙下方的距离
	GloryBulletStartDepth = 100.0

	TrophyWidth  = 300.0
	TrophyHeight = 300.0
	TrophyOffset = 100.0

	// HallOfFameSize 名人堂保留的最高分条目数
	HallOfFameSize = 10
)

// 数据文件路径
const (
	AlienStatsPath  = "data/aliens.yaml"
	CampaignPath    = "data/waves.yaml"
	SpriteSheetPath = "data/sprites.yaml"
)

// ExplosionFrames 爆炸动画的帧序列
func ExplosionFrames() []string {
	base := []string{"explosion_0", "explosion_1", "explosion_2", "explosion_3"}
	frames := make([]string, 0, len(base)*ExplosionFrameRepeat)
	for _, name := range base {
		for i := 0; i < ExplosionFrameRepeat; i++ {
			frames = append(frames, name)
		}
	}
	return frames
}
