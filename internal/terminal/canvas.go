// Package terminal 把会话快照绘制到字符网格上，并提供 tcell 和 ANSI 两种输出方式
package terminal

import (
	"image/color"
	"math"
	"unicode/utf8"

	"github.com/decker502/invaders/pkg/config"
)

// HUDRows 画布顶部留给 HUD 的行数
const HUDRows = 1

// Cell 一个字符格
type Cell struct {
	Rune  rune
	Color color.RGBA
	Bold  bool
}

var blankCell = Cell{Rune: ' ', Color: color.RGBA{R: 255, G: 255, B: 255, A: 255}}

// Canvas 字符画布
// 第 0..HUDRows-1 行是 HUD，其余行映射整个游戏场地
type Canvas struct {
	cols, rows int
	cells      []Cell
}

// NewCanvas 创建 cols×rows 的画布
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows)
	return c
}

// Resize 调整尺寸并清空
func (c *Canvas) Resize(cols, rows int) {
	cols, rows = max(cols, 1), max(rows, HUDRows+1)
	if cols != c.cols || rows != c.rows {
		c.cols, c.rows = cols, rows
		c.cells = make([]Cell, cols*rows)
	}
	c.Clear()
}

// Size 返回列数和行数
func (c *Canvas) Size() (cols, rows int) {
	return c.cols, c.rows
}

// Clear 把所有格子重置为空格
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = blankCell
	}
}

// Set 写入一个格子，越界忽略
func (c *Canvas) Set(col, row int, r rune, clr color.RGBA) {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return
	}
	c.cells[row*c.cols+col] = Cell{Rune: r, Color: clr}
}

// Cell 读取一个格子，越界返回空格
func (c *Canvas) Cell(col, row int) Cell {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return blankCell
	}
	return c.cells[row*c.cols+col]
}

// Text 从 (col,row) 开始写一行文字
func (c *Canvas) Text(col, row int, s string, clr color.RGBA) {
	for _, r := range s {
		c.Set(col, row, r, clr)
		col++
	}
}

// TextCentered 在一行中居中写文字
func (c *Canvas) TextCentered(row int, s string, clr color.RGBA) {
	c.Text((c.cols-utf8.RuneCountInString(s))/2, row, s, clr)
}

// TextRight 右对齐写文字
func (c *Canvas) TextRight(row int, s string, clr color.RGBA) {
	c.Text(c.cols-utf8.RuneCountInString(s), row, s, clr)
}

// playfieldRows 场地占用的行数
func (c *Canvas) playfieldRows() int {
	return c.rows - HUDRows
}

// WorldToCell 把世界坐标映射到格子坐标
func (c *Canvas) WorldToCell(x, y float64) (col, row int) {
	col = int(math.Floor(x / config.WindowWidth * float64(c.cols)))
	row = HUDRows + int(math.Floor(y/config.WindowHeight*float64(c.playfieldRows())))
	return col, row
}

// FillWorldRect 用字符填充一个世界坐标矩形（以中心和尺寸表示）覆盖的格子
// 至少填充中心所在的一个格子；不会写入 HUD 行
func (c *Canvas) FillWorldRect(x, y, w, h float64, r rune, clr color.RGBA) {
	const eps = 1e-9 // 右/下边界是开区间
	left, top := c.WorldToCell(x-w/2, y-h/2)
	right, bottom := c.WorldToCell(x+w/2-eps, y+h/2-eps)

	if right < left || bottom < top {
		col, row := c.WorldToCell(x, y)
		left, right, top, bottom = col, col, row, row
	}

	for row := max(top, HUDRows); row <= bottom; row++ {
		for col := left; col <= right; col++ {
			c.Set(col, row, r, clr)
		}
	}
}

// FitPlayfield 在终端尺寸内选出保持场地纵横比的画布尺寸和居中偏移
// 终端字符大约是 1:2 的宽高比，所以场地列数约为行数的两倍
func FitPlayfield(termCols, termRows int) (cols, rows, offCol, offRow int) {
	rows = max(termRows, HUDRows+1)
	cols = max(termCols, 1)

	fieldRows := rows - HUDRows
	want := fieldRows * 2 * config.WindowWidth / config.WindowHeight
	if want < cols {
		cols = want
	} else if want > cols {
		fieldRows = cols * config.WindowHeight / (2 * config.WindowWidth)
		rows = max(fieldRows, 1) + HUDRows
	}
	offCol = (termCols - cols) / 2
	offRow = (termRows - rows) / 2
	return cols, rows, max(offCol, 0), max(offRow, 0)
}
