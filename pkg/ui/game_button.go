package ui

import (
	"image/color"

	"github.com/decker502/eterna/pkg/signals"
	"github.com/decker502/eterna/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 按钮内边距
const (
	buttonPaddingX = 12.0
	buttonPaddingY = 5.0
)

var (
	buttonFill        = color.RGBA{R: 0x2F, G: 0x4E, B: 0x74, A: 0xFF}
	buttonFillHover   = color.RGBA{R: 0x41, G: 0x6A, B: 0x9A, A: 0xFF}
	buttonBorder      = color.RGBA{R: 0xC0, G: 0xDC, B: 0xE7, A: 0xFF}
	buttonLabelColor  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	buttonDisabledMul = 0.5
)

// GameButton 文字按钮
// 尺寸由文字宽度和内边距决定
type GameButton struct {
	X, Y float64

	// Clicked 按钮被点击时触发
	Clicked *signals.Signal[struct{}]

	label   string
	face    text.Face
	width   float64
	height  float64
	hovered bool
	enabled bool
}

// NewGameButton 创建按钮
func NewGameButton(label string, face text.Face) *GameButton {
	b := &GameButton{
		Clicked: signals.New[struct{}](),
		face:    face,
		enabled: true,
	}
	b.SetLabel(label)
	return b
}

// Label 返回按钮文字
func (b *GameButton) Label() string {
	return b.label
}

// SetLabel 修改按钮文字并重新计算尺寸
func (b *GameButton) SetLabel(label string) {
	b.label = label
	b.width = measure(label, b.face) + buttonPaddingX*2
	b.height = lineHeight(b.face) + buttonPaddingY*2
}

// Size 返回按钮尺寸
func (b *GameButton) Size() (float64, float64) {
	return b.width, b.height
}

// Bounds 返回按钮矩形（屏幕坐标）
func (b *GameButton) Bounds() utils.Rect {
	return utils.NewRect(b.X, b.Y, b.width, b.height)
}

// Enabled 按钮是否可用
func (b *GameButton) Enabled() bool {
	return b.enabled
}

// SetEnabled 设置按钮是否可用
func (b *GameButton) SetEnabled(enabled bool) {
	b.enabled = enabled
	if !enabled {
		b.hovered = false
	}
}

// HandlePointer 处理指针事件，返回事件是否被按钮消费
func (b *GameButton) HandlePointer(ev utils.PointerEvent) bool {
	if !b.enabled {
		return false
	}

	inside := b.Bounds().Contains(ev.X, ev.Y)
	switch ev.Kind {
	case utils.PointerMove:
		b.hovered = inside
		return false
	case utils.PointerDown:
		if inside {
			b.Clicked.Emit(struct{}{})
			return true
		}
	}
	return false
}

// Draw 绘制按钮
func (b *GameButton) Draw(screen *ebiten.Image, alpha float64) {
	if screen == nil {
		return
	}
	if !b.enabled {
		alpha *= buttonDisabledMul
	}

	fill := buttonFill
	if b.hovered {
		fill = buttonFillHover
	}
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.width), float32(b.height), withAlpha(fill, alpha), false)
	vector.StrokeRect(screen, float32(b.X)+0.5, float32(b.Y)+0.5, float32(b.width)-1, float32(b.height)-1, 1, withAlpha(buttonBorder, alpha), false)
	drawText(screen, b.label, b.face, b.X+buttonPaddingX, b.Y+buttonPaddingY, buttonLabelColor, alpha)
}
