package ui

import (
	"image/color"

	"github.com/decker502/eterna/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PanelStyle 面板样式
type PanelStyle struct {
	FillColor   color.RGBA
	FillAlpha   float64
	BorderColor color.RGBA
	BorderAlpha float64
	// TitleSpace 标题栏高度，0 表示无标题栏
	TitleSpace float64
	TitleColor color.RGBA
}

// GamePanel 带可选标题的矩形面板
type GamePanel struct {
	X, Y          float64
	Width, Height float64

	style     PanelStyle
	title     string
	titleFace text.Face
}

// NewGamePanel 创建面板
func NewGamePanel(style PanelStyle, title string, titleFace text.Face) *GamePanel {
	return &GamePanel{style: style, title: title, titleFace: titleFace}
}

// Title 返回面板标题
func (p *GamePanel) Title() string {
	return p.title
}

// TitleSpace 返回标题栏占用的高度
func (p *GamePanel) TitleSpace() float64 {
	if p.title == "" {
		return 0
	}
	return p.style.TitleSpace
}

// SetSize 设置面板尺寸
func (p *GamePanel) SetSize(width, height float64) {
	p.Width = width
	p.Height = height
}

// Bounds 返回面板矩形（屏幕坐标）
func (p *GamePanel) Bounds() utils.Rect {
	return utils.NewRect(p.X, p.Y, p.Width, p.Height)
}

// Draw 绘制面板
func (p *GamePanel) Draw(screen *ebiten.Image, alpha float64) {
	if screen == nil || p.Width <= 0 || p.Height <= 0 {
		return
	}

	fill := withAlpha(p.style.FillColor, p.style.FillAlpha*alpha)
	border := withAlpha(p.style.BorderColor, p.style.BorderAlpha*alpha)

	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), fill, false)
	vector.StrokeRect(screen, float32(p.X)+0.5, float32(p.Y)+0.5, float32(p.Width)-1, float32(p.Height)-1, 1.5, border, false)

	if p.TitleSpace() > 0 {
		tx := p.X + (p.Width-measure(p.title, p.titleFace))/2
		ty := p.Y + (p.style.TitleSpace-lineHeight(p.titleFace))/2
		drawText(screen, p.title, p.titleFace, tx, ty, p.style.TitleColor, alpha)

		sepY := float32(p.Y + p.style.TitleSpace)
		vector.StrokeLine(screen, float32(p.X)+4, sepY, float32(p.X+p.Width)-4, sepY, 1, border, false)
	}
}
