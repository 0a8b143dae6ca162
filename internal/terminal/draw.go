package terminal

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/session"
)

var (
	hudColor   = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	titleColor = color.RGBA{R: 120, G: 255, B: 120, A: 255}
	warnColor  = color.RGBA{R: 255, G: 90, B: 90, A: 255}
	hintColor  = color.RGBA{R: 150, G: 150, B: 150, A: 255}
)

// glyph 精灵在终端中的字符和颜色
type glyph struct {
	r   rune
	clr color.RGBA
}

// GlyphTable 精灵名称到终端字符的映射，来自精灵表的 glyph/color 字段
type GlyphTable struct {
	glyphs  map[string]glyph
	missing map[string]bool
}

// NewGlyphTable 从精灵表构建字符表
func NewGlyphTable(sheet *config.SpriteSheet) *GlyphTable {
	t := &GlyphTable{
		glyphs:  make(map[string]glyph, sheet.Len()),
		missing: make(map[string]bool),
	}
	for _, name := range sheet.Names() {
		sprite, _ := sheet.Get(name)
		t.glyphs[name] = glyph{r: sprite.Glyph, clr: sprite.Color}
	}
	return t
}

// Lookup 返回精灵的字符和颜色，未知名称返回 '?'（只记录一次日志）
func (t *GlyphTable) Lookup(name string) (rune, color.RGBA) {
	if g, ok := t.glyphs[name]; ok {
		return g.r, g.clr
	}
	if !t.missing[name] {
		t.missing[name] = true
		log.Printf("[Terminal] Warning: no glyph for sprite %q", name)
	}
	return '?', warnColor
}

// Draw 把快照绘制到画布上：精灵、HUD 和阶段覆盖层
func Draw(c *Canvas, snap *session.Snapshot, glyphs *GlyphTable) {
	c.Clear()

	for i := range snap.Sprites {
		sv := &snap.Sprites[i]
		r, clr := glyphs.Lookup(sv.Name)
		c.FillWorldRect(sv.X, sv.Y, sv.Width, sv.Height, r, clr)
	}

	switch snap.Phase {
	case game.PhaseMenu:
		drawMenu(c, snap)
	case game.PhaseLoadWave:
		drawHUD(c, snap)
		mid := c.rows / 2
		c.TextCentered(mid-1, fmt.Sprintf("WAVE %d", snap.Wave+1), titleColor)
		c.TextCentered(mid+1, snap.WaveName, hudColor)
	case game.PhasePlaying:
		drawHUD(c, snap)
	case game.PhaseGameOver:
		drawHUD(c, snap)
		drawGameOver(c, snap)
	case game.PhaseVictory:
		drawVictory(c, snap)
	}
}

func drawHUD(c *Canvas, snap *session.Snapshot) {
	c.Text(0, 0, fmt.Sprintf("SCORE %06d", snap.Score), hudColor)

	health := ""
	for i := 0; i < snap.ShipMaxHealth; i++ {
		if i < snap.ShipHealth {
			health += "♥"
		} else {
			health += "·"
		}
	}
	c.TextCentered(0, fmt.Sprintf("HI %06d  %s", snap.HighScore, health), hudColor)
	c.TextRight(0, fmt.Sprintf("WAVE %d/%d", snap.Wave+1, snap.TotalWaves), hudColor)
}

func drawMenu(c *Canvas, snap *session.Snapshot) {
	c.TextCentered(2, "A L I E N   I N V A D E R S", titleColor)
	c.TextCentered(4, "PRESS ENTER TO START", hudColor)
	c.TextCentered(5, "ARROWS/WASD MOVE  SPACE FIRE  Q QUIT", hintColor)
	drawHallOfFame(c, snap, 8)
}

func drawGameOver(c *Canvas, snap *session.Snapshot) {
	mid := c.rows / 3
	c.TextCentered(mid, "G A M E   O V E R", warnColor)
	c.TextCentered(mid+2, fmt.Sprintf("FINAL SCORE %d", snap.Score), hudColor)
	if snap.LastRank > 0 {
		c.TextCentered(mid+3, fmt.Sprintf("NEW HALL OF FAME ENTRY #%d", snap.LastRank), titleColor)
	}
	c.TextCentered(mid+4, "R RETRY   M MENU", hintColor)
	drawHallOfFame(c, snap, mid+6)
}

func drawVictory(c *Canvas, snap *session.Snapshot) {
	c.TextCentered(1, "V I C T O R Y", titleColor)
	c.TextCentered(2, fmt.Sprintf("SCORE %d", snap.Score), hudColor)
	drawHallOfFame(c, snap, c.rows/2+1)
	c.TextCentered(c.rows-1, "HOLD B TO BASK IN GLORY   M MENU", hintColor)
}

func drawHallOfFame(c *Canvas, snap *session.Snapshot, top int) {
	if len(snap.HallOfFame) == 0 {
		return
	}
	c.TextCentered(top, "HALL OF FAME", titleColor)
	for i, entry := range snap.HallOfFame {
		row := top + 1 + i
		if row >= c.rows-1 {
			break
		}
		mark := " "
		if entry.Victory {
			mark = "*"
		}
		clr := hudColor
		if i+1 == snap.LastRank {
			clr = titleColor
		}
		c.TextCentered(row, fmt.Sprintf("%2d. %-10s %7d W%d%s", i+1, entry.Name, entry.Score, entry.WavesCleared, mark), clr)
	}
}
