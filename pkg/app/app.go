// Package app 提供 ebiten 前端的应用包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/render"
	"github.com/decker502/invaders/pkg/scenes"
	"github.com/decker502/invaders/pkg/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ErrQuit 按 ESC 退出时由 Update 返回
var ErrQuit = errors.New("quit requested")

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// StartWave 新游戏的起始波次（0-based）
	StartWave int
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
	// WavesDir 不为空时从该目录读取波次布局文件
	WavesDir string
	// PlayerName 名人堂名称，为空时使用设置中保存的名称
	PlayerName string
	// SkipLoadingScene 跳过加载场景，直接进入游戏
	SkipLoadingScene bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *scenes.SceneManager
	settingsManager          *game.SettingsManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	sheet, err := config.LoadSpriteSheet(config.SpriteSheetPath)
	if err != nil {
		return nil, fmt.Errorf("精灵表加载失败: %w", err)
	}
	campaign, err := config.LoadCampaign(config.CampaignPath)
	if err != nil {
		return nil, fmt.Errorf("波次配置加载失败: %w", err)
	}
	if cfg.WavesDir != "" {
		campaign = campaign.WithLayoutDir(cfg.WavesDir)
		log.Printf("[App] Reading wave layouts from %s", cfg.WavesDir)
	}

	// 设置与名人堂共用一个 gdata 目录；打不开时降级为内存模式
	gdataManager := game.OpenStorage()
	settingsManager, _ := game.NewSettingsManager(gdataManager)
	hallOfFame := game.NewHallOfFame(gdataManager)

	playerName := cfg.PlayerName
	if playerName == "" {
		playerName = settingsManager.GetSettings().PlayerName
	} else {
		settingsManager.SetPlayerName(playerName)
	}

	sess, err := session.NewSession(session.Options{
		Seed:       cfg.Seed,
		Campaign:   campaign,
		StartWave:  cfg.StartWave,
		HallOfFame: hallOfFame,
		PlayerName: playerName,
	})
	if err != nil {
		return nil, fmt.Errorf("会话创建失败: %w", err)
	}

	// 初始化音频上下文
	audioContext := audio.NewContext(render.SampleRate)
	audioManager := render.NewAudioManager(audioContext, settingsManager)
	audioManager.Preload()
	log.Printf("[App] AudioManager initialized")

	resourceManager := render.NewResourceManager(sheet)
	renderSystem := render.NewRenderSystem(resourceManager)

	// 创建场景管理器
	sceneManager := scenes.NewSceneManager()
	sceneManager.SetSceneFactory(func(name string) scenes.Scene {
		switch name {
		case scenes.SceneLoading:
			return scenes.NewLoadingScene(resourceManager, sceneManager)
		case scenes.SceneGame:
			return scenes.NewGameScene(sess, renderSystem, audioManager, settingsManager)
		}
		return nil
	})

	if cfg.SkipLoadingScene {
		log.Printf("[App] SkipLoadingScene enabled")
		sceneManager.Load(scenes.SceneGame)
	} else {
		sceneManager.Load(scenes.SceneLoading)
	}

	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		verbose:         cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.SaveOnExit()
		return ErrQuit
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.WindowWidth, config.WindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
		a.settingsManager.SetFullscreen(ebiten.IsFullscreen())
	}

	a.sceneManager.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	// 像素风精灵放大时保持锐利
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *scenes.SceneManager {
	return a.sceneManager
}

// SaveOnExit 保存当前场景的状态（如果场景支持）
func (a *App) SaveOnExit() {
	if saveable, ok := a.sceneManager.GetCurrentScene().(scenes.Saveable); ok {
		if !saveable.SaveOnExit() {
			log.Printf("[App] Warning: scene failed to save on exit")
		}
	}
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
