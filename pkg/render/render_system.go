package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	backgroundColor = color.RGBA{R: 8, G: 6, B: 20, A: 255}
	hudColor        = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	titleColor      = color.RGBA{R: 120, G: 255, B: 120, A: 255}
	warnColor       = color.RGBA{R: 255, G: 90, B: 90, A: 255}
	hintColor       = color.RGBA{R: 160, G: 160, B: 160, A: 255}
	healthColor     = color.RGBA{R: 90, G: 220, B: 90, A: 255}
	healthBgColor   = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	shadeColor      = color.RGBA{A: 160}
)

const (
	hudMargin     = 12.0
	hudTextScale  = 2.0
	titleScale    = 5.0
	overlayScale  = 2.5
	healthBarW    = 160.0
	healthBarH    = 12.0
	hallRowHeight = 32.0
)

// RenderSystem 绘制会话快照：精灵、HUD 和各阶段的覆盖层
type RenderSystem struct {
	resources *ResourceManager
	face      *text.GoXFace
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(rm *ResourceManager) *RenderSystem {
	return &RenderSystem{
		resources: rm,
		face:      text.NewGoXFace(basicfont.Face7x13),
	}
}

// Draw 绘制一帧
func (s *RenderSystem) Draw(screen *ebiten.Image, snap *session.Snapshot) {
	screen.Fill(backgroundColor)

	for i := range snap.Sprites {
		s.drawSprite(screen, &snap.Sprites[i])
	}

	switch snap.Phase {
	case game.PhaseMenu:
		s.drawMenu(screen, snap)
	case game.PhaseLoadWave:
		s.drawHUD(screen, snap)
		s.drawWaveBanner(screen, snap)
	case game.PhasePlaying:
		s.drawHUD(screen, snap)
	case game.PhaseGameOver:
		s.drawHUD(screen, snap)
		s.drawGameOver(screen, snap)
	case game.PhaseVictory:
		s.drawVictory(screen, snap)
	}
}

// drawSprite 以精灵中心为原点缩放、旋转后平移到世界坐标
func (s *RenderSystem) drawSprite(screen *ebiten.Image, sv *session.SpriteView) {
	img := s.resources.GetImage(sv.Name)
	bounds := img.Bounds()
	iw, ih := float64(bounds.Dx()), float64(bounds.Dy())
	if iw == 0 || ih == 0 {
		return
	}

	sx, sy := sv.Width/iw, sv.Height/ih
	if sv.FlipY {
		sy = -sy
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-iw/2, -ih/2)
	op.GeoM.Scale(sx, sy)
	if sv.Rotation != 0 {
		op.GeoM.Rotate(sv.Rotation)
	}
	op.GeoM.Translate(sv.X, sv.Y)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(img, op)
}

func (s *RenderSystem) drawHUD(screen *ebiten.Image, snap *session.Snapshot) {
	s.drawText(screen, fmt.Sprintf("SCORE %06d", snap.Score), hudMargin, hudMargin, hudTextScale, hudColor)
	s.drawCentered(screen, fmt.Sprintf("HI %06d", snap.HighScore), hudMargin, hudTextScale, hudColor)

	wave := fmt.Sprintf("WAVE %d/%d", snap.Wave+1, snap.TotalWaves)
	w := s.textWidth(wave, hudTextScale)
	s.drawText(screen, wave, config.WindowWidth-w-hudMargin, hudMargin, hudTextScale, hudColor)

	// 生命条
	x := float32(hudMargin)
	y := float32(hudMargin + 34)
	vector.DrawFilledRect(screen, x, y, healthBarW, healthBarH, healthBgColor, false)
	if snap.ShipMaxHealth > 0 && snap.ShipHealth > 0 {
		ratio := float32(snap.ShipHealth) / float32(snap.ShipMaxHealth)
		vector.DrawFilledRect(screen, x, y, healthBarW*ratio, healthBarH, healthColor, false)
	}
	vector.StrokeRect(screen, x, y, healthBarW, healthBarH, 1, hudColor, false)
}

// drawWaveBanner 入场阶段显示波次名称，随入场进度淡出
func (s *RenderSystem) drawWaveBanner(screen *ebiten.Image, snap *session.Snapshot) {
	alpha := 1.0
	if snap.LoadWaveDuration > 0 {
		alpha = 1 - math.Min(1, snap.PhaseTime/snap.LoadWaveDuration)
	}
	clr := fade(titleColor, alpha)

	title := fmt.Sprintf("WAVE %d", snap.Wave+1)
	s.drawCentered(screen, title, config.WindowHeight/2-60, titleScale, clr)
	if snap.WaveName != "" {
		s.drawCentered(screen, snap.WaveName, config.WindowHeight/2+20, overlayScale, fade(hudColor, alpha))
	}
}

func (s *RenderSystem) drawMenu(screen *ebiten.Image, snap *session.Snapshot) {
	s.drawCentered(screen, "ALIEN INVADERS", 140, titleScale, titleColor)
	s.drawCentered(screen, "PRESS ENTER TO START", 240, overlayScale, hudColor)
	s.drawCentered(screen, "ARROWS/WASD MOVE  SPACE FIRE  F11 FULLSCREEN", 290, 1.5, hintColor)
	s.drawHallOfFame(screen, snap, 380)
}

func (s *RenderSystem) drawGameOver(screen *ebiten.Image, snap *session.Snapshot) {
	shade(screen)
	s.drawCentered(screen, "GAME OVER", 220, titleScale, warnColor)
	s.drawCentered(screen, fmt.Sprintf("FINAL SCORE %d", snap.Score), 320, overlayScale, hudColor)
	if snap.LastRank > 0 {
		s.drawCentered(screen, fmt.Sprintf("NEW HALL OF FAME ENTRY #%d", snap.LastRank), 370, 2, titleColor)
	}
	s.drawCentered(screen, "R RETRY   M MENU", 430, 2, hintColor)
	s.drawHallOfFame(screen, snap, 500)
}

func (s *RenderSystem) drawVictory(screen *ebiten.Image, snap *session.Snapshot) {
	s.drawCentered(screen, "VICTORY", 60, titleScale, titleColor)
	s.drawCentered(screen, fmt.Sprintf("SCORE %d", snap.Score), 140, overlayScale, hudColor)
	if snap.LastRank > 0 {
		s.drawCentered(screen, fmt.Sprintf("HALL OF FAME #%d", snap.LastRank), 185, 2, titleColor)
	}
	s.drawHallOfFame(screen, snap, 520)
	s.drawCentered(screen, "HOLD B TO BASK IN GLORY   M MENU", config.WindowHeight-40, 1.5, hintColor)
}

func (s *RenderSystem) drawHallOfFame(screen *ebiten.Image, snap *session.Snapshot, top float64) {
	if len(snap.HallOfFame) == 0 {
		return
	}
	s.drawCentered(screen, "HALL OF FAME", top, 2, titleColor)
	for i, entry := range snap.HallOfFame {
		mark := ""
		if entry.Victory {
			mark = "*"
		}
		line := fmt.Sprintf("%2d. %-10s %7d  W%d%s", i+1, entry.Name, entry.Score, entry.WavesCleared, mark)
		clr := hudColor
		if i+1 == snap.LastRank {
			clr = titleColor
		}
		s.drawCentered(screen, line, top+hallRowHeight*float64(i+1), 1.8, clr)
	}
}

func (s *RenderSystem) drawText(screen *ebiten.Image, str string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, s.face, op)
}

func (s *RenderSystem) drawCentered(screen *ebiten.Image, str string, y, scale float64, clr color.Color) {
	x := (config.WindowWidth - s.textWidth(str, scale)) / 2
	s.drawText(screen, str, x, y, scale, clr)
}

func (s *RenderSystem) textWidth(str string, scale float64) float64 {
	return text.Advance(str, s.face) * scale
}

func shade(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.WindowWidth, config.WindowHeight, shadeColor, false)
}

func fade(c color.RGBA, alpha float64) color.RGBA {
	a := math.Max(0, math.Min(1, alpha))
	return color.RGBA{R: uint8(float64(c.R) * a), G: uint8(float64(c.G) * a), B: uint8(float64(c.B) * a), A: uint8(float64(c.A) * a)}
}
