package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/decker502/invaders/pkg/embedded"
	"github.com/decker502/invaders/pkg/types"
)

var (
	// ErrInvalidLayout 布局文本格式错误（空布局、行宽不一致、多字符符号）
	ErrInvalidLayout = errors.New("invalid wave layout")
	// ErrUnknownSymbol 布局中出现未知符号
	ErrUnknownSymbol = errors.New("unknown wave layout symbol")
)

// EmptySymbol 布局中的空位符号
const EmptySymbol = '#'

// LayoutCell 布局中的一个外星人
type LayoutCell struct {
	Row  int
	Col  int
	Kind types.AlienKind
}

// Layout 解析后的波次布局
// 以行优先存储，空位为 types.AlienUnknown
type Layout struct {
	rows  int
	cols  int
	cells []types.AlienKind
}

// ParseLayout 解析波次布局文本
//
// 规则：
//   - 每个非空行是一行；行内含空白时按空白切分，每个 token 必须是单个字符，否则每个字符是一个 token
//   - 大小写不敏感；a=Aris, r=Rylo, z=Zorg, #=空位
//   - 所有行宽度必须一致
func ParseLayout(text string) (*Layout, error) {
	var grid [][]rune
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		row, err := splitLayoutRow(strings.ToLower(line), len(grid))
		if err != nil {
			return nil, err
		}
		grid = append(grid, row)
	}

	if len(grid) == 0 {
		return nil, fmt.Errorf("%w: layout is empty", ErrInvalidLayout)
	}

	layout := &Layout{rows: len(grid), cols: len(grid[0])}
	layout.cells = make([]types.AlienKind, 0, layout.rows*layout.cols)

	for r, row := range grid {
		if len(row) != layout.cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrInvalidLayout, r, len(row), layout.cols)
		}
		for c, symbol := range row {
			if symbol == EmptySymbol {
				layout.cells = append(layout.cells, types.AlienUnknown)
				continue
			}
			kind, ok := types.AlienKindFromSymbol(symbol)
			if !ok {
				return nil, fmt.Errorf("%w: row %d col %d: %w %q", ErrInvalidLayout, r, c, ErrUnknownSymbol, symbol)
			}
			layout.cells = append(layout.cells, kind)
		}
	}
	return layout, nil
}

// splitLayoutRow 把一行文本切分为符号
func splitLayoutRow(line string, rowIndex int) ([]rune, error) {
	if !strings.ContainsFunc(strings.TrimSpace(line), unicode.IsSpace) {
		return []rune(strings.TrimSpace(line)), nil
	}

	tokens := strings.Fields(line)
	row := make([]rune, 0, len(tokens))
	for c, token := range tokens {
		if utf8.RuneCountInString(token) != 1 {
			return nil, fmt.Errorf("%w: row %d token %d %q is not a single symbol", ErrInvalidLayout, rowIndex, c, token)
		}
		r, _ := utf8.DecodeRuneInString(token)
		row = append(row, r)
	}
	return row, nil
}

// Rows 返回行数
func (l *Layout) Rows() int { return l.rows }

// Cols 返回列数
func (l *Layout) Cols() int { return l.cols }

// At 返回指定格子的外星人种类，空位或越界时返回 false
func (l *Layout) At(row, col int) (types.AlienKind, bool) {
	if row < 0 || row >= l.rows || col < 0 || col >= l.cols {
		return types.AlienUnknown, false
	}
	kind := l.cells[row*l.cols+col]
	return kind, kind != types.AlienUnknown
}

// Cells 按行优先顺序返回所有外星人格子（跳过空位）
func (l *Layout) Cells() []LayoutCell {
	result := make([]LayoutCell, 0, len(l.cells))
	for i, kind := range l.cells {
		if kind == types.AlienUnknown {
			continue
		}
		result = append(result, LayoutCell{Row: i / l.cols, Col: i % l.cols, Kind: kind})
	}
	return result
}

// Count 统计指定种类的数量
func (l *Layout) Count(kind types.AlienKind) int {
	n := 0
	for _, k := range l.cells {
		if k == kind && k != types.AlienUnknown {
			n++
		}
	}
	return n
}

// Total 返回外星人总数
func (l *Layout) Total() int {
	n := 0
	for _, k := range l.cells {
		if k != types.AlienUnknown {
			n++
		}
	}
	return n
}

// CellPosition 返回布局格子中心的世界坐标
// 奇数行整体左移 AlienOddRowOffset，第一行下方留出 AlienTopBand
func CellPosition(row, col int) (x, y float64) {
	bounds := PlayfieldBounds
	x = bounds.Left + AlienWallGapX + GridCellWidth/2 +
		float64(col)*(GridCellWidth+AlienAlienGapX) -
		AlienOddRowOffset*float64(row%2)
	y = bounds.Top + AlienWallGapY + GridCellHeight/2 + AlienTopBand +
		float64(row)*(GridCellHeight+AlienAlienGapY)
	return x, y
}

// LoadLayout 读取并解析波次布局文件
func LoadLayout(path string) (*Layout, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read wave layout %s: %w", path, err)
	}

	layout, err := ParseLayout(string(data))
	if err != nil {
		return nil, fmt.Errorf("wave layout %s: %w", path, err)
	}
	return layout, nil
}
