package render

import (
	"image/color"
	"log"

	"github.com/decker502/invaders/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// placeholderSize 占位图边长（像素）
const placeholderSize = 4

// ResourceManager 把精灵表转换为 ebiten 图片并缓存
//
// 图片按精灵名称缓存；未知名称返回洋红色占位图，并且每个名称只记录一次日志。
type ResourceManager struct {
	sheet       *config.SpriteSheet
	imageCache  map[string]*ebiten.Image // 精灵名称 -> 图片
	placeholder *ebiten.Image
	missing     map[string]bool // 已记录过日志的未知名称
}

// NewResourceManager 创建资源管理器，sheet 为已解析的精灵表
func NewResourceManager(sheet *config.SpriteSheet) *ResourceManager {
	return &ResourceManager{
		sheet:      sheet,
		imageCache: make(map[string]*ebiten.Image, sheet.Len()),
		missing:    make(map[string]bool),
	}
}

// LoadImage 构建并缓存一个精灵的图片
// 已缓存时直接返回缓存
func (rm *ResourceManager) LoadImage(name string) (*ebiten.Image, bool) {
	if img, exists := rm.imageCache[name]; exists {
		return img, true
	}

	sprite, ok := rm.sheet.Get(name)
	if !ok {
		return nil, false
	}

	img := ebiten.NewImage(sprite.Width, sprite.Height)
	img.WritePixels(spritePixels(sprite))
	rm.imageCache[name] = img
	return img, true
}

// GetImage 返回精灵图片，未知名称返回占位图
func (rm *ResourceManager) GetImage(name string) *ebiten.Image {
	if img, ok := rm.LoadImage(name); ok {
		return img
	}
	if !rm.missing[name] {
		rm.missing[name] = true
		log.Printf("[ResourceManager] Warning: unknown sprite %q, using placeholder", name)
	}
	return rm.placeholderImage()
}

// SpriteNames 返回精灵表中的全部名称（排序后）
func (rm *ResourceManager) SpriteNames() []string {
	return rm.sheet.Names()
}

// LoadedCount 返回已缓存的图片数量
func (rm *ResourceManager) LoadedCount() int {
	return len(rm.imageCache)
}

func (rm *ResourceManager) placeholderImage() *ebiten.Image {
	if rm.placeholder == nil {
		rm.placeholder = ebiten.NewImage(placeholderSize, placeholderSize)
		rm.placeholder.Fill(color.RGBA{R: 255, G: 0, B: 255, A: 255})
	}
	return rm.placeholder
}

// spritePixels 把 RGBA 像素转换为 WritePixels 需要的预乘 alpha 字节
func spritePixels(sprite *config.Sprite) []byte {
	buf := make([]byte, 0, len(sprite.Pixels)*4)
	for _, p := range sprite.Pixels {
		a := uint16(p.A)
		buf = append(buf,
			uint8(uint16(p.R)*a/255),
			uint8(uint16(p.G)*a/255),
			uint8(uint16(p.B)*a/255),
			p.A,
		)
	}
	return buf
}
