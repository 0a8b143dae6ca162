package scenes

import (
	"log"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/render"
	"github.com/decker502/invaders/pkg/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// maxStepsPerFrame 单帧最多追赶的逻辑步数，防止卡顿后雪崩
const maxStepsPerFrame = 5

// KeyReader 按键状态查询，测试中可替换
type KeyReader interface {
	Pressed(key ebiten.Key) bool
	JustPressed(key ebiten.Key) bool
}

// ebitenKeys 直接读取 ebiten 的键盘状态
type ebitenKeys struct{}

func (ebitenKeys) Pressed(key ebiten.Key) bool     { return ebiten.IsKeyPressed(key) }
func (ebitenKeys) JustPressed(key ebiten.Key) bool { return inpututil.IsKeyJustPressed(key) }

// GameScene 游戏场景
// 把键盘映射为 session.Controls，按固定步长推进会话，并绘制会话快照
type GameScene struct {
	session         *session.Session
	renderSystem    *render.RenderSystem
	audioManager    *render.AudioManager  // 可为 nil（无音频）
	settingsManager *game.SettingsManager // 可为 nil
	keys            KeyReader

	accumulator float64
	latched     session.Controls // 尚未被逻辑步消费的单次按键
	snapshot    session.Snapshot
}

// NewGameScene 创建游戏场景
func NewGameScene(sess *session.Session, rs *render.RenderSystem, am *render.AudioManager, sm *game.SettingsManager) *GameScene {
	s := &GameScene{
		session:         sess,
		renderSystem:    rs,
		audioManager:    am,
		settingsManager: sm,
		keys:            ebitenKeys{},
	}
	s.snapshot = sess.Snapshot()
	return s
}

// SetKeyReader 替换按键来源
func (s *GameScene) SetKeyReader(keys KeyReader) {
	s.keys = keys
}

// Update 累积帧时间，按 config.TimeStep 推进会话
func (s *GameScene) Update(deltaTime float64) {
	if s.keys.JustPressed(ebiten.KeyN) && s.settingsManager != nil {
		enabled := !s.settingsManager.GetSettings().SoundEnabled
		s.settingsManager.SetSoundEnabled(enabled)
		log.Printf("[GameScene] Sound enabled: %v", enabled)
	}

	controls := mergeControls(ControlsFromKeys(s.keys), touchControls())
	s.latched.Start = s.latched.Start || controls.Start
	s.latched.Retry = s.latched.Retry || controls.Retry
	s.latched.Menu = s.latched.Menu || controls.Menu

	s.accumulator += deltaTime
	steps := 0
	for s.accumulator >= config.TimeStep && steps < maxStepsPerFrame {
		controls.Start = s.latched.Start
		controls.Retry = s.latched.Retry
		controls.Menu = s.latched.Menu
		s.session.Update(controls)
		s.latched = session.Controls{}
		s.accumulator -= config.TimeStep
		steps++
	}
	if steps == maxStepsPerFrame {
		s.accumulator = 0
	}

	if events := s.session.Events(); len(events) > 0 && s.audioManager != nil {
		s.audioManager.HandleEvents(events)
	}
	s.snapshot = s.session.Snapshot()
}

// Draw 绘制最近一次的会话快照
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen, &s.snapshot)
}

// Snapshot 返回最近一次的会话快照
func (s *GameScene) Snapshot() session.Snapshot {
	return s.snapshot
}

// SaveOnExit 退出时保存设置
func (s *GameScene) SaveOnExit() bool {
	if s.settingsManager == nil {
		return true
	}
	if err := s.settingsManager.Save(); err != nil {
		log.Printf("[GameScene] Warning: Failed to save settings: %v", err)
		return false
	}
	return true
}

// ControlsFromKeys 键位：方向键/WASD 移动，空格射击，
// 回车开始，R 重来，M 回菜单，B 或空格庆祝
func ControlsFromKeys(keys KeyReader) session.Controls {
	held := func(ks ...ebiten.Key) bool {
		for _, k := range ks {
			if keys.Pressed(k) {
				return true
			}
		}
		return false
	}

	fire := held(ebiten.KeySpace)
	return session.Controls{
		Left:  held(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right: held(ebiten.KeyArrowRight, ebiten.KeyD),
		Up:    held(ebiten.KeyArrowUp, ebiten.KeyW),
		Down:  held(ebiten.KeyArrowDown, ebiten.KeyS),
		Fire:  fire,
		Start: keys.JustPressed(ebiten.KeyEnter) || keys.JustPressed(ebiten.KeyNumpadEnter),
		Retry: keys.JustPressed(ebiten.KeyR),
		Menu:  keys.JustPressed(ebiten.KeyM),
		Bask:  fire || held(ebiten.KeyB),
	}
}

// touchControls 移动端触屏：左右三分之一移动，任意触点射击，新触点等同开始/重来
func touchControls() session.Controls {
	var c session.Controls
	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, _ := ebiten.TouchPosition(id)
		switch {
		case x < config.WindowWidth/3:
			c.Left = true
		case x > config.WindowWidth*2/3:
			c.Right = true
		}
		c.Fire = true
		c.Bask = true
	}
	if len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		c.Start = true
		c.Retry = true
	}
	return c
}

func mergeControls(a, b session.Controls) session.Controls {
	return session.Controls{
		Left:  a.Left || b.Left,
		Right: a.Right || b.Right,
		Up:    a.Up || b.Up,
		Down:  a.Down || b.Down,
		Fire:  a.Fire || b.Fire,
		Start: a.Start || b.Start,
		Retry: a.Retry || b.Retry,
		Menu:  a.Menu || b.Menu,
		Bask:  a.Bask || b.Bask,
	}
}
