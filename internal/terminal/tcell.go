package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// TcellPresenter 把画布显示在 tcell 屏幕上
type TcellPresenter struct {
	screen tcell.Screen
	offCol int
	offRow int
}

// NewTcellPresenter 创建显示器，screen 需已经 Init
func NewTcellPresenter(screen tcell.Screen) *TcellPresenter {
	return &TcellPresenter{screen: screen}
}

// Fit 按当前屏幕尺寸计算画布大小并调整画布
func (p *TcellPresenter) Fit(c *Canvas) {
	w, h := p.screen.Size()
	cols, rows, offCol, offRow := FitPlayfield(w, h)
	p.offCol, p.offRow = offCol, offRow
	c.Resize(cols, rows)
	p.screen.Clear()
}

// Present 绘制画布并刷新屏幕
func (p *TcellPresenter) Present(c *Canvas) {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			cell := c.cells[row*c.cols+col]
			style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(cell.Color.R), int32(cell.Color.G), int32(cell.Color.B)))
			if cell.Bold {
				style = style.Bold(true)
			}
			p.screen.SetContent(col+p.offCol, row+p.offRow, cell.Rune, nil, style)
		}
	}
	p.screen.Show()
}

// FeedTcellKey 把 tcell 按键事件写入按键状态
// 返回 true 表示请求退出（ESC、Ctrl+C）
func FeedTcellKey(ks *KeyState, ev *tcell.EventKey, now time.Time) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		ks.press(keyLeft, now)
	case tcell.KeyRight:
		ks.press(keyRight, now)
	case tcell.KeyUp:
		ks.press(keyUp, now)
	case tcell.KeyDown:
		ks.press(keyDown, now)
	case tcell.KeyEnter:
		ks.press(keyStart, now)
	case tcell.KeyRune:
		return ks.FeedByteRune(ev.Rune(), now)
	}
	return false
}
