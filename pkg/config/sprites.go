package config

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"github.com/decker502/invaders/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// TransparentSymbol 蒙版中的透明像素
const TransparentSymbol = '.'

// SpriteDef 精灵定义（YAML 原始结构）
type SpriteDef struct {
	Mask    []string          `yaml:"mask"`    // 像素蒙版，每个字符一个像素
	Palette map[string]string `yaml:"palette"` // 覆盖全局调色板
	CopyOf  string            `yaml:"copyOf"`  // 复用另一个精灵的蒙版
	Glyph   string            `yaml:"glyph"`   // 终端显示字符
	Color   string            `yaml:"color"`   // 终端显示颜色
}

// SpriteSheetFile 精灵表文件结构
type SpriteSheetFile struct {
	Palette map[string]string    `yaml:"palette"`
	Sprites map[string]SpriteDef `yaml:"sprites"`
}

// Sprite 解析后的精灵
// Pixels 按行优先存储，透明像素 A=0
type Sprite struct {
	Name   string
	Width  int
	Height int
	Pixels []color.RGBA
	Glyph  rune
	Color  color.RGBA
}

// SpriteSheet 解析后的精灵表
type SpriteSheet struct {
	sprites map[string]*Sprite
}

// LoadSpriteSheet 从 YAML 文件加载精灵表
func LoadSpriteSheet(filepath string) (*SpriteSheet, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read sprite sheet %s: %w", filepath, err)
	}

	sheet, err := ParseSpriteSheet(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath, err)
	}
	return sheet, nil
}

// ParseSpriteSheet 解析精灵表 YAML
func ParseSpriteSheet(data []byte) (*SpriteSheet, error) {
	var file SpriteSheetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse sprite sheet YAML: %w", err)
	}
	if len(file.Sprites) == 0 {
		return nil, fmt.Errorf("sprite sheet has no sprites")
	}

	sheet := &SpriteSheet{sprites: make(map[string]*Sprite, len(file.Sprites))}
	for name, def := range file.Sprites {
		sprite, err := resolveSprite(name, def, &file)
		if err != nil {
			return nil, err
		}
		sheet.sprites[name] = sprite
	}
	return sheet, nil
}

// resolveSprite 合并调色板并把蒙版转换为像素
func resolveSprite(name string, def SpriteDef, file *SpriteSheetFile) (*Sprite, error) {
	mask := def.Mask
	palette := make(map[string]string, len(file.Palette)+len(def.Palette))
	for k, v := range file.Palette {
		palette[k] = v
	}

	if def.CopyOf != "" {
		base, ok := file.Sprites[def.CopyOf]
		if !ok {
			return nil, fmt.Errorf("sprite %s: copyOf references unknown sprite %q", name, def.CopyOf)
		}
		if base.CopyOf != "" {
			return nil, fmt.Errorf("sprite %s: copyOf chains are not supported (%s -> %s)", name, def.CopyOf, base.CopyOf)
		}
		if len(mask) == 0 {
			mask = base.Mask
		}
		for k, v := range base.Palette {
			palette[k] = v
		}
	}
	for k, v := range def.Palette {
		palette[k] = v
	}

	if len(mask) == 0 {
		return nil, fmt.Errorf("sprite %s: mask is empty", name)
	}

	width := len([]rune(mask[0]))
	sprite := &Sprite{
		Name:   name,
		Width:  width,
		Height: len(mask),
		Pixels: make([]color.RGBA, 0, width*len(mask)),
		Glyph:  '?',
		Color:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}

	for y, row := range mask {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("sprite %s: mask row %d has width %d, expected %d", name, y, len(runes), width)
		}
		for x, symbol := range runes {
			if symbol == TransparentSymbol {
				sprite.Pixels = append(sprite.Pixels, color.RGBA{})
				continue
			}
			hex, ok := palette[string(symbol)]
			if !ok {
				return nil, fmt.Errorf("sprite %s: pixel (%d,%d) uses symbol %q missing from palette", name, x, y, symbol)
			}
			c, err := ParseHexColor(hex)
			if err != nil {
				return nil, fmt.Errorf("sprite %s: %w", name, err)
			}
			sprite.Pixels = append(sprite.Pixels, c)
		}
	}

	if def.Glyph != "" {
		sprite.Glyph = []rune(def.Glyph)[0]
	}
	if def.Color != "" {
		c, err := ParseHexColor(def.Color)
		if err != nil {
			return nil, fmt.Errorf("sprite %s: %w", name, err)
		}
		sprite.Color = c
	}
	return sprite, nil
}

// ParseHexColor 解析 "#rrggbb" 或 "#rrggbbaa" 格式的颜色
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: expected #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// Get 按名称获取精灵
func (s *SpriteSheet) Get(name string) (*Sprite, bool) {
	sprite, ok := s.sprites[name]
	return sprite, ok
}

// Names 返回所有精灵名称（排序后）
func (s *SpriteSheet) Names() []string {
	names := make([]string, 0, len(s.sprites))
	for name := range s.sprites {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len 返回精灵数量
func (s *SpriteSheet) Len() int {
	return len(s.sprites)
}
