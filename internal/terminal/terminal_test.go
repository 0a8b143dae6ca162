package terminal

import (
	"bytes"
	"context"
	"image/color"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/embedded"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/session"
	"github.com/gdamore/tcell/v2"
)

func init() {
	embedded.Init(os.DirFS("../.."))
}

var red = color.RGBA{R: 255, A: 255}

func loadGlyphs(t *testing.T) *GlyphTable {
	t.Helper()
	sheet, err := config.LoadSpriteSheet(config.SpriteSheetPath)
	if err != nil {
		t.Fatalf("LoadSpriteSheet: %v", err)
	}
	return NewGlyphTable(sheet)
}

func rowString(c *Canvas, row int) string {
	var sb strings.Builder
	for col := 0; col < c.cols; col++ {
		sb.WriteRune(c.Cell(col, row).Rune)
	}
	return sb.String()
}

func TestCanvasWorldMapping(t *testing.T) {
	c := NewCanvas(92, 47) // 46 行场地，每格 10×20 世界单位

	t.Run("左上角映射到 HUD 下方第一行", func(t *testing.T) {
		col, row := c.WorldToCell(0, 0)
		if col != 0 || row != HUDRows {
			t.Errorf("WorldToCell(0,0) = (%d,%d)", col, row)
		}
	})

	t.Run("右下角映射到最后一格", func(t *testing.T) {
		col, row := c.WorldToCell(config.WindowWidth-1, config.WindowHeight-1)
		if col != 91 || row != 46 {
			t.Errorf("WorldToCell(max) = (%d,%d)", col, row)
		}
	})

	t.Run("矩形填充覆盖的格子", func(t *testing.T) {
		c.Clear()
		// 中心 (50,50)，40×40：x ∈ [30,70) → 列 3..6，y ∈ [30,70) → 场地行 1..3
		c.FillWorldRect(50, 50, 40, 40, '#', red)
		for col := 3; col <= 6; col++ {
			for row := HUDRows + 1; row <= HUDRows+3; row++ {
				if c.Cell(col, row).Rune != '#' {
					t.Errorf("cell (%d,%d) not filled", col, row)
				}
			}
		}
		if c.Cell(7, HUDRows+1).Rune == '#' || c.Cell(2, HUDRows+1).Rune == '#' {
			t.Error("fill leaked outside the rectangle")
		}
	})

	t.Run("小于一格的精灵至少占一格", func(t *testing.T) {
		c.Clear()
		c.FillWorldRect(455, 455, 1, 1, '.', red)
		col, row := c.WorldToCell(455, 455)
		if c.Cell(col, row).Rune != '.' {
			t.Error("tiny sprite not drawn")
		}
	})

	t.Run("不会写入 HUD 行", func(t *testing.T) {
		c.Clear()
		c.FillWorldRect(100, 0, 100, 200, '#', red)
		if strings.ContainsRune(rowString(c, 0), '#') {
			t.Error("sprite drawn over the HUD row")
		}
	})
}

func TestCanvasText(t *testing.T) {
	c := NewCanvas(10, 3)
	c.TextCentered(1, "AB", red)
	if got := rowString(c, 1); got != "    AB    " {
		t.Errorf("centered row = %q", got)
	}
	c.TextRight(2, "XYZ", red)
	if got := rowString(c, 2); got != "       XYZ" {
		t.Errorf("right row = %q", got)
	}
	c.Text(8, 0, "LONG", red) // 越界部分被裁掉
	if got := rowString(c, 0); got != "        LO" {
		t.Errorf("clipped row = %q", got)
	}
}

func TestFitPlayfield(t *testing.T) {
	tests := []struct {
		name                       string
		termCols, termRows         int
		cols, rows, offCol, offRow int
	}{
		{"宽终端居中", 200, 41, 80, 41, 60, 0},
		{"窄终端缩短行数", 60, 50, 60, 31, 0, 9},
		{"刚好合适", 80, 41, 80, 41, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols, rows, offCol, offRow := FitPlayfield(tt.termCols, tt.termRows)
			if cols != tt.cols || rows != tt.rows || offCol != tt.offCol || offRow != tt.offRow {
				t.Errorf("FitPlayfield(%d,%d) = %d,%d,%d,%d want %d,%d,%d,%d",
					tt.termCols, tt.termRows, cols, rows, offCol, offRow,
					tt.cols, tt.rows, tt.offCol, tt.offRow)
			}
		})
	}
}

func TestDrawSnapshot(t *testing.T) {
	glyphs := loadGlyphs(t)
	c := NewCanvas(92, 47)

	snap := &session.Snapshot{
		Phase:         game.PhasePlaying,
		Score:         42,
		TotalWaves:    4,
		ShipHealth:    2,
		ShipMaxHealth: 3,
		Sprites: []session.SpriteView{
			{Name: "ship", X: 460, Y: 850, Width: 80, Height: 60, Layer: components.LayerActor},
			{Name: "no_such_sprite", X: 100, Y: 100, Width: 10, Height: 10},
		},
	}
	Draw(c, snap, glyphs)

	if !strings.Contains(rowString(c, 0), "SCORE 000042") {
		t.Errorf("HUD row = %q", rowString(c, 0))
	}
	if !strings.Contains(rowString(c, 0), "WAVE 1/4") {
		t.Errorf("HUD row missing wave: %q", rowString(c, 0))
	}
	col, row := c.WorldToCell(460, 850)
	if got := c.Cell(col, row).Rune; got != 'A' {
		t.Errorf("ship glyph = %q, want 'A'", got)
	}
	col, row = c.WorldToCell(100, 100)
	if got := c.Cell(col, row).Rune; got != '?' {
		t.Errorf("unknown sprite glyph = %q, want '?'", got)
	}

	t.Run("游戏结束显示名人堂", func(t *testing.T) {
		snap.Phase = game.PhaseGameOver
		snap.LastRank = 1
		snap.HallOfFame = []game.HallOfFameEntry{{Name: "ACE", Score: 42}}
		Draw(c, snap, glyphs)
		var all strings.Builder
		for r := 0; r < 47; r++ {
			all.WriteString(rowString(c, r))
		}
		for _, want := range []string{"G A M E   O V E R", "HALL OF FAME", "ACE"} {
			if !strings.Contains(all.String(), want) {
				t.Errorf("missing %q", want)
			}
		}
	})
}

func TestANSIWriter(t *testing.T) {
	var out bytes.Buffer
	aw := NewANSIWriter(&out, 2, 1)
	c := NewCanvas(4, 2)
	c.Set(0, 1, 'X', red)

	if err := aw.Render(c); err != nil {
		t.Fatal(err)
	}
	first := out.String()
	if !strings.Contains(first, "\033[2J") {
		t.Error("first frame should clear the screen")
	}
	// 偏移 (2,1) 的画布左上角是终端 (3,2)
	if !strings.Contains(first, "\033[2;3H") {
		t.Errorf("first frame missing origin cursor move: %q", first)
	}
	if !strings.Contains(first, "\033[38;2;255;0;0mX") {
		t.Errorf("first frame missing colored X: %q", first)
	}

	t.Run("相同帧不输出格子", func(t *testing.T) {
		out.Reset()
		if err := aw.Render(c); err != nil {
			t.Fatal(err)
		}
		if out.Len() != 0 {
			t.Errorf("unchanged frame wrote %q", out.String())
		}
	})

	t.Run("只输出变化的格子", func(t *testing.T) {
		out.Reset()
		c.Set(3, 0, 'Y', red)
		if err := aw.Render(c); err != nil {
			t.Fatal(err)
		}
		if got := out.String(); got != "\033[2;6H\033[38;2;255;0;0mY" {
			t.Errorf("diff frame = %q", got)
		}
	})

	t.Run("Invalidate 后整帧重绘", func(t *testing.T) {
		out.Reset()
		aw.Invalidate()
		if err := aw.Render(c); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(out.String(), "\033[2J") {
			t.Error("expected full redraw")
		}
	})
}

func TestKeyState(t *testing.T) {
	now := time.Unix(1000, 0)

	t.Run("方向键序列", func(t *testing.T) {
		ks := NewKeyState()
		ks.Feed([]byte("\x1b[D\x1b[A"), now)
		c := ks.Controls(now)
		if !c.Left || !c.Up || c.Right {
			t.Errorf("controls = %+v", c)
		}
	})

	t.Run("被拆开的转义序列", func(t *testing.T) {
		ks := NewKeyState()
		ks.Feed([]byte("\x1b"), now)
		ks.Feed([]byte("[C"), now)
		if c := ks.Controls(now); !c.Right {
			t.Errorf("split sequence not decoded: %+v", c)
		}
	})

	t.Run("被拆开的 SS3 序列", func(t *testing.T) {
		ks := NewKeyState()
		ks.Feed([]byte("\x1bO"), now)
		ks.Feed([]byte("C"), now)
		if c := ks.Controls(now); !c.Right || c.Fire {
			t.Errorf("split SS3 sequence not decoded: %+v", c)
		}
	})

	t.Run("按住窗口过期", func(t *testing.T) {
		ks := NewKeyState()
		ks.Feed([]byte("a "), now)
		if c := ks.Controls(now.Add(HoldDuration / 2)); !c.Left || !c.Fire || !c.Bask {
			t.Errorf("keys should be held: %+v", c)
		}
		if c := ks.Controls(now.Add(HoldDuration)); c.Left || c.Fire {
			t.Errorf("keys should be released: %+v", c)
		}
	})

	t.Run("单次按键只消费一次", func(t *testing.T) {
		ks := NewKeyState()
		ks.Feed([]byte("\rm"), now)
		c := ks.Controls(now)
		if !c.Start || !c.Menu {
			t.Errorf("one-shot keys missing: %+v", c)
		}
		if c := ks.Controls(now); c.Start || c.Menu {
			t.Errorf("one-shot keys repeated: %+v", c)
		}
	})

	t.Run("q 和 Ctrl+C 退出", func(t *testing.T) {
		for _, in := range []string{"q", "\x03"} {
			ks := NewKeyState()
			if !ks.Feed([]byte(in), now) || !ks.QuitRequested() {
				t.Errorf("%q should request quit", in)
			}
		}
	})

	t.Run("tcell 按键", func(t *testing.T) {
		ks := NewKeyState()
		FeedTcellKey(ks, tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), now)
		FeedTcellKey(ks, tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), now)
		FeedTcellKey(ks, tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), now)
		c := ks.Controls(now)
		if !c.Right || !c.Start || !c.Retry {
			t.Errorf("controls = %+v", c)
		}
		if !FeedTcellKey(ks, tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), now) {
			t.Error("ESC should request quit")
		}
	})
}

func TestTcellPresenter(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(100, 41)

	p := NewTcellPresenter(screen)
	c := NewCanvas(1, 2)
	p.Fit(c)
	if cols, rows := c.Size(); cols != 80 || rows != 41 {
		t.Fatalf("canvas = %dx%d, want 80x41", cols, rows)
	}

	c.Set(0, 0, 'Q', red)
	p.Present(c)

	cells, w, _ := screen.GetContents()
	// 画布水平居中，偏移 10 列
	cell := cells[0*w+10]
	if len(cell.Runes) == 0 || cell.Runes[0] != 'Q' {
		t.Errorf("cell at offset = %v", cell.Runes)
	}
}

func TestLoop(t *testing.T) {
	sess, err := session.NewSession(session.Options{Seed: 3, PlayerName: "loop"})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	keys := NewKeyState()
	frames := 0
	loop := &Loop{
		Session: sess,
		Keys:    keys,
		Present: func(snap *session.Snapshot) error {
			frames++
			return nil
		},
	}

	now := time.Unix(0, 0)
	keys.Feed([]byte("\r"), now)
	loop.Step(now)
	loop.Step(now)
	if sess.Phase() != game.PhaseLoadWave {
		t.Errorf("phase = %v, want LoadWave after Enter", sess.Phase())
	}
	if frames != 2 {
		t.Errorf("frames = %d, want 2", frames)
	}

	t.Run("默认步长为六十分之一秒", func(t *testing.T) {
		got := (&Loop{}).tickDuration()
		if got < 16*time.Millisecond || got > 17*time.Millisecond {
			t.Errorf("tickDuration = %v, want about 16.67ms", got)
		}
		if got := (&Loop{Tick: 5 * time.Millisecond}).tickDuration(); got != 5*time.Millisecond {
			t.Errorf("tickDuration = %v, want 5ms", got)
		}
	})

	t.Run("退出键结束循环", func(t *testing.T) {
		keys.Feed([]byte("q"), now)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := loop.Run(ctx); err != nil {
			t.Errorf("Run returned %v", err)
		}
		if ctx.Err() != nil {
			t.Error("loop should stop on quit, not on timeout")
		}
	})
}
