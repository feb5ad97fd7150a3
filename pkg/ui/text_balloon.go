package ui

import (
	"image/color"

	"github.com/decker502/eterna/pkg/config"
	"github.com/decker502/eterna/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// tooltipMaxWidth 提示框文字最大宽度
const tooltipMaxWidth = 260.0

// TextBalloon 提示气泡
// 文本支持 FONT COLOR 标记，空文本时不显示
type TextBalloon struct {
	X, Y float64

	face  text.Face
	raw   string
	lines [][]utils.TextSpan
	width float64
}

// NewTextBalloon 创建提示气泡
func NewTextBalloon(face text.Face) *TextBalloon {
	return &TextBalloon{face: face}
}

// Text 返回当前文本（含标记）
func (b *TextBalloon) Text() string {
	return b.raw
}

// Visible 是否显示
func (b *TextBalloon) Visible() bool {
	return b.raw != ""
}

// SetText 设置文本，"" 表示隐藏
func (b *TextBalloon) SetText(s string) {
	if s == b.raw {
		return
	}
	b.raw = s
	b.lines = nil
	b.width = 0
	if s == "" {
		return
	}

	spans := utils.ParseMarkup(s, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
	if b.face != nil {
		b.lines = utils.WrapSpans(spans, b.face, tooltipMaxWidth)
	} else {
		b.lines = [][]utils.TextSpan{spans}
	}
	for _, line := range b.lines {
		if w := spansWidth(line, b.face); w > b.width {
			b.width = w
		}
	}
}

// Size 返回气泡尺寸（含内边距）
func (b *TextBalloon) Size() (float64, float64) {
	if !b.Visible() {
		return 0, 0
	}
	pad := config.TooltipPadding
	return b.width + pad*2, float64(len(b.lines))*lineHeight(b.face) + pad*2
}

// PlaceAbove 将气泡放在 (x, y) 上方并限制在舞台范围内
func (b *TextBalloon) PlaceAbove(x, y float64) {
	w, h := b.Size()
	b.X = x - w/2
	b.Y = y + config.TooltipOffsetY - h

	b.X = clamp(b.X, 0, config.StageWidth-w)
	b.Y = clamp(b.Y, 0, config.StageHeight-h)
}

// Draw 绘制气泡
func (b *TextBalloon) Draw(screen *ebiten.Image) {
	if screen == nil || !b.Visible() {
		return
	}

	w, h := b.Size()
	bg := withAlpha(utils.RGBHex(config.TooltipBackgroundColor), config.TooltipBackgroundAlpha)
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(w), float32(h), bg, false)

	lh := lineHeight(b.face)
	y := b.Y + config.TooltipPadding
	for _, line := range b.lines {
		drawSpans(screen, line, b.face, b.X+config.TooltipPadding, y, 1)
		y += lh
	}
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
