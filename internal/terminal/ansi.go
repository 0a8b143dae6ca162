package terminal

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// maxChunkSize 单次写出的最大字节数，适合 SSH 通道
const maxChunkSize = 4096

// ANSIWriter 把画布以 ANSI 转义序列写到 io.Writer（SSH 会话）
// 只输出与上一帧不同的格子；Invalidate 之后输出整帧
type ANSIWriter struct {
	bufw   *bufio.Writer
	buf    strings.Builder
	numBuf [20]byte
	offCol int
	offRow int

	prev       []Cell
	prevCols   int
	prevRows   int
	lastColor  [3]uint8
	colorValid bool
}

// NewANSIWriter 创建写出器，offCol/offRow 为画布在终端中的 0-based 偏移
func NewANSIWriter(w io.Writer, offCol, offRow int) *ANSIWriter {
	return &ANSIWriter{
		bufw:   bufio.NewWriterSize(w, 8192),
		offCol: offCol,
		offRow: offRow,
	}
}

// SetOffset 更新偏移（终端尺寸变化后），并要求下一帧整帧重绘
func (aw *ANSIWriter) SetOffset(offCol, offRow int) {
	aw.offCol, aw.offRow = offCol, offRow
	aw.Invalidate()
}

// Invalidate 丢弃上一帧，下一次 Render 清屏并整帧输出
func (aw *ANSIWriter) Invalidate() {
	aw.prev = nil
}

// Begin 隐藏光标并清屏
func (aw *ANSIWriter) Begin() error {
	aw.buf.WriteString("\033[?25l\033[H\033[2J")
	aw.Invalidate()
	return aw.flush()
}

// End 重置颜色、清屏并显示光标
func (aw *ANSIWriter) End() error {
	aw.buf.WriteString("\033[0m\033[H\033[2J\033[?25h")
	return aw.flush()
}

// Render 输出画布与上一帧的差异
func (aw *ANSIWriter) Render(c *Canvas) error {
	full := aw.prev == nil || aw.prevCols != c.cols || aw.prevRows != c.rows
	if full {
		aw.buf.WriteString("\033[0m\033[2J")
		aw.colorValid = false
		aw.prev = make([]Cell, len(c.cells))
		aw.prevCols, aw.prevRows = c.cols, c.rows
	}

	for row := 0; row < c.rows; row++ {
		cursorCol := -1
		for col := 0; col < c.cols; col++ {
			i := row*c.cols + col
			cell := c.cells[i]
			if !full && aw.prev[i] == cell {
				continue
			}
			aw.prev[i] = cell

			if col != cursorCol {
				aw.moveCursor(col, row)
			}
			aw.setColor(cell)
			aw.buf.WriteRune(cell.Rune)
			cursorCol = col + 1
		}
	}
	return aw.flush()
}

// moveCursor 写入光标定位序列，col/row 为 0-based 画布坐标
func (aw *ANSIWriter) moveCursor(col, row int) {
	aw.buf.WriteString("\033[")
	aw.buf.Write(strconv.AppendInt(aw.numBuf[:0], int64(row+aw.offRow+1), 10))
	aw.buf.WriteByte(';')
	aw.buf.Write(strconv.AppendInt(aw.numBuf[:0], int64(col+aw.offCol+1), 10))
	aw.buf.WriteByte('H')
}

// setColor 写入 24 位前景色，与当前颜色相同时省略
func (aw *ANSIWriter) setColor(cell Cell) {
	rgb := [3]uint8{cell.Color.R, cell.Color.G, cell.Color.B}
	if aw.colorValid && rgb == aw.lastColor {
		return
	}
	aw.lastColor, aw.colorValid = rgb, true
	aw.buf.WriteString("\033[38;2;")
	for i, v := range rgb {
		if i > 0 {
			aw.buf.WriteByte(';')
		}
		aw.buf.Write(strconv.AppendInt(aw.numBuf[:0], int64(v), 10))
	}
	aw.buf.WriteByte('m')
}

// flush 分块写出缓冲内容
func (aw *ANSIWriter) flush() error {
	data := aw.buf.String()
	aw.buf.Reset()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := aw.bufw.WriteString(chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return aw.bufw.Flush()
}
