// Package bitmaps 生成界面使用的纹理
//
// 调色板和选中高亮的纹理由布局配置程序化绘制，
// 在模式构建时一次性生成并缓存，模式销毁时随之释放。
package bitmaps

import (
	"image/color"
	"log"
	"math"

	"github.com/decker502/eterna/pkg/config"
	"github.com/decker502/eterna/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 纹理颜色
var (
	paletteBackground = color.RGBA{R: 0x0A, G: 0x24, B: 0x44, A: 0xE0}
	paletteBorder     = color.RGBA{R: 0xC0, G: 0xDC, B: 0xE7, A: 0x80}
	disabledPairColor = color.RGBA{R: 0x40, G: 0x48, B: 0x55, A: 0xA0}
	selectionColor    = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// 选中高亮尺寸
const (
	// SelectBaseSize 单碱基高亮边长（与碱基点击区域一致）
	SelectBaseSize = 25
	// SelectPairWidth 碱基对高亮宽度
	SelectPairWidth = 30
	// SelectPairHeight 碱基对高亮高度
	SelectPairHeight = 20
)

// PaletteBitmaps 调色板使用的所有纹理
type PaletteBitmaps struct {
	Palette        *ebiten.Image // 含碱基对的调色板
	PaletteNoPairs *ebiten.Image // 不含碱基对的调色板
	SelectBase     *ebiten.Image // 单碱基选中高亮
	SelectPair     *ebiten.Image // 碱基对选中高亮
}

// CreatePaletteBitmaps 根据布局配置生成调色板纹理
func CreatePaletteBitmaps(cfg *config.PaletteConfig) *PaletteBitmaps {
	b := &PaletteBitmaps{
		Palette:        drawPalette(cfg, true),
		PaletteNoPairs: drawPalette(cfg, false),
		SelectBase:     drawSelectBase(),
		SelectPair:     drawSelectPair(),
	}
	log.Printf("[Bitmaps] Palette textures created (%.0fx%.0f)", cfg.Width, cfg.Height)
	return b
}

// Dispose 释放纹理
func (b *PaletteBitmaps) Dispose() {
	for _, img := range []*ebiten.Image{b.Palette, b.PaletteNoPairs, b.SelectBase, b.SelectPair} {
		if img != nil {
			img.Deallocate()
		}
	}
}

// drawPalette 绘制调色板背景
// withPairs 为 false 时碱基对区域以灰色绘制
func drawPalette(cfg *config.PaletteConfig, withPairs bool) *ebiten.Image {
	w := int(math.Ceil(cfg.Width))
	h := int(math.Ceil(cfg.Height))
	img := ebiten.NewImage(w, h)

	vector.DrawFilledRect(img, 0, 0, float32(w), float32(h), paletteBackground, false)
	vector.StrokeRect(img, 0.5, 0.5, float32(w)-1, float32(h)-1, 1, paletteBorder, false)

	for i := range cfg.Targets {
		t := &cfg.Targets[i]
		boxes := t.HitboxRects()
		if len(boxes) == 0 {
			continue
		}
		colors := targetColors(t)

		if !t.IsPair {
			box := boxes[0]
			cx := float32(box.X + box.Width/2)
			cy := float32(box.Y + box.Height/2)
			r := float32(math.Min(box.Width, box.Height)/2 - 2)
			vector.DrawFilledCircle(img, cx, cy, r, colors[0], true)
			continue
		}

		// 碱基对：在第一个点击区域内绘制左右两半的横条
		box := boxes[0]
		half := float32(box.Width / 2)
		y := float32(box.Y + box.Height/2 - 3)
		if withPairs {
			vector.DrawFilledRect(img, float32(box.X), y, half, 6, colors[0], false)
			vector.DrawFilledRect(img, float32(box.X)+half, y, half, 6, colors[len(colors)-1], false)
		} else {
			vector.DrawFilledRect(img, float32(box.X), y, float32(box.Width), 6, disabledPairColor, false)
		}
	}

	return img
}

// targetColors 解析目标颜色，缺失时使用白色
func targetColors(t *config.PaletteTargetConfig) []color.RGBA {
	out := make([]color.RGBA, 0, len(t.Colors))
	for _, c := range t.Colors {
		if parsed, err := utils.ParseColor(c); err == nil {
			out = append(out, parsed)
		}
	}
	if len(out) == 0 {
		out = append(out, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return out
}

// drawSelectBase 绘制单碱基选中高亮（圆环）
func drawSelectBase() *ebiten.Image {
	img := ebiten.NewImage(SelectBaseSize, SelectBaseSize)
	c := float32(SelectBaseSize) / 2
	vector.StrokeCircle(img, c, c, c-1.5, 2, selectionColor, true)
	return img
}

// drawSelectPair 绘制碱基对选中高亮（矩形框）
func drawSelectPair() *ebiten.Image {
	img := ebiten.NewImage(SelectPairWidth, SelectPairHeight)
	vector.StrokeRect(img, 1, 1, SelectPairWidth-2, SelectPairHeight-2, 2, selectionColor, true)
	return img
}
