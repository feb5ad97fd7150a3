// Package ui 提供谜题界面使用的控件
//
// 控件不依赖 ECS，由所在的模式持有并在每帧调用 Update/Draw，
// 指针事件通过 HandlePointer 或信号分发。所有控件方法
// 只能在游戏循环所在的 goroutine 中调用。
package ui

import (
	"image/color"

	"github.com/decker502/eterna/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Fonts 控件使用的字体来源
// game.ResourceManager 实现了该接口
type Fonts interface {
	Arial(size float64) *text.GoTextFace
	ArialBold(size float64) *text.GoTextFace
}

// FaceOf 将可能为 nil 的字体转换为接口，避免得到非 nil 的空接口值
func FaceOf(f *text.GoTextFace) text.Face {
	if f == nil {
		return nil
	}
	return f
}

// lineHeight 返回字体的行高
func lineHeight(face text.Face) float64 {
	if face == nil {
		return 0
	}
	m := face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

// measure 返回文本宽度，face 为 nil 时返回 0
func measure(s string, face text.Face) float64 {
	if face == nil {
		return 0
	}
	return utils.MeasureText(s, face)
}

// drawText 在 (x, y) 绘制单行文本（左上角对齐）
func drawText(dst *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color, alpha float64) {
	if dst == nil || face == nil || s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(dst, s, face, op)
}

// drawSpans 绘制一行彩色文本片段
func drawSpans(dst *ebiten.Image, spans []utils.TextSpan, face text.Face, x, y, alpha float64) {
	for _, span := range spans {
		drawText(dst, span.Text, face, x, y, span.Color, alpha)
		x += measure(span.Text, face)
	}
}

// spansWidth 返回一行片段的总宽度
func spansWidth(spans []utils.TextSpan, face text.Face) float64 {
	w := 0.0
	for _, span := range spans {
		w += measure(span.Text, face)
	}
	return w
}

// withAlpha 返回按透明度缩放后的颜色（预乘）
func withAlpha(c color.RGBA, alpha float64) color.RGBA {
	scale := func(v uint8) uint8 { return uint8(float64(v) * alpha) }
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: scale(c.A)}
}
