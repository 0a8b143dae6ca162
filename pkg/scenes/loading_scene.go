package scenes

import (
	"image/color"
	"log"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	// spritesPerFrame 每帧构建的精灵图片数
	spritesPerFrame = 4
	// minLoadingTime 加载画面最短显示时间（秒）
	minLoadingTime = 0.5

	loadingBarWidth  = 400.0
	loadingBarHeight = 16.0
)

var (
	loadingBarColor   = color.RGBA{R: 120, G: 255, B: 120, A: 255}
	loadingFrameColor = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)

// LoadingScene 启动时逐帧构建精灵图片并显示进度条，完成后切换到游戏场景
type LoadingScene struct {
	resourceManager *render.ResourceManager
	sceneManager    *SceneManager

	pending         []string // 尚未构建的精灵名称
	total           int
	progress        float64 // 0.0 - 1.0
	loadingComplete bool
	elapsedTime     float64

	face *text.GoXFace
}

// NewLoadingScene creates a new loading scene.
func NewLoadingScene(rm *render.ResourceManager, sm *SceneManager) *LoadingScene {
	names := rm.SpriteNames()
	return &LoadingScene{
		resourceManager: rm,
		sceneManager:    sm,
		pending:         names,
		total:           len(names),
		face:            text.NewGoXFace(basicfont.Face7x13),
	}
}

// Update 构建下一批图片；全部完成且达到最短显示时间后切换场景
func (s *LoadingScene) Update(deltaTime float64) {
	s.elapsedTime += deltaTime

	n := min(spritesPerFrame, len(s.pending))
	for _, name := range s.pending[:n] {
		if _, ok := s.resourceManager.LoadImage(name); !ok {
			log.Printf("[LoadingScene] Warning: sprite %s could not be built", name)
		}
	}
	s.pending = s.pending[n:]

	if s.total > 0 {
		s.progress = float64(s.total-len(s.pending)) / float64(s.total)
	} else {
		s.progress = 1
	}

	if len(s.pending) == 0 && !s.loadingComplete {
		s.loadingComplete = true
		log.Printf("[LoadingScene] Loaded %d sprites in %.2fs", s.total, s.elapsedTime)
	}

	if s.loadingComplete && s.elapsedTime >= minLoadingTime && s.sceneManager != nil {
		s.sceneManager.Load(SceneGame)
	}
}

// Progress 返回加载进度（0.0 - 1.0）
func (s *LoadingScene) Progress() float64 {
	return s.progress
}

// IsComplete 返回是否已构建完所有图片
func (s *LoadingScene) IsComplete() bool {
	return s.loadingComplete
}

// Draw renders the progress bar.
func (s *LoadingScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	x := float32(config.WindowWidth-loadingBarWidth) / 2
	y := float32(config.WindowHeight) / 2

	op := &text.DrawOptions{}
	op.GeoM.Scale(2, 2)
	op.GeoM.Translate(float64(x), float64(y)-40)
	op.ColorScale.ScaleWithColor(loadingFrameColor)
	text.Draw(screen, "LOADING...", s.face, op)

	vector.DrawFilledRect(screen, x, y, float32(loadingBarWidth*s.progress), loadingBarHeight, loadingBarColor, false)
	vector.StrokeRect(screen, x, y, loadingBarWidth, loadingBarHeight, 2, loadingFrameColor, false)
}
