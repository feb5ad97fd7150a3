package ui

import (
	"context"
	"errors"
	"log"
	"math"

	"github.com/decker502/eterna/pkg/config"
	"github.com/decker502/eterna/pkg/signals"
	"github.com/decker502/eterna/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ErrDeclined 用户在确认对话框中选择了 "No"
var ErrDeclined = errors.New("confirmation declined")

// ConfirmDialog 是/否确认对话框
//
// 点击 "Yes" 以确认结束，点击 "No" 以拒绝结束；
// 通过 Dismiss 关闭（例如按下 Esc）不会产生任何结果。
// 对话框最多结束一次，Closed 最多触发一次。
type ConfirmDialog struct {
	// Closed 对话框被 Yes/No 关闭时触发，参数为是否确认
	Closed *signals.Signal[bool]

	panel *GamePanel
	yes   *GameButton
	no    *GameButton

	promptFace  text.Face
	promptLines [][]utils.TextSpan
	promptW     float64
	promptX     float64
	promptY     float64

	alpha  float64
	fade   *AlphaTask
	closed bool
}

// NewConfirmDialog 创建确认对话框并居中于舞台
//
// 参数：
//   - fonts: 字体来源
//   - prompt: 提示文字
//   - useMarkup: 为 true 时提示文字按 FONT COLOR 标记解析
func NewConfirmDialog(fonts Fonts, prompt string, useMarkup bool) *ConfirmDialog {
	textColor := utils.RGBHex(config.DialogTextColor)

	panel := NewGamePanel(PanelStyle{
		FillColor:   utils.RGBHex(config.DialogPanelColor),
		FillAlpha:   config.DialogPanelAlpha,
		BorderColor: utils.RGBHex(config.DialogBorderColor),
		BorderAlpha: config.DialogBorderAlpha,
		TitleSpace:  config.DialogTitleSpace,
		TitleColor:  textColor,
	}, config.DialogTitle, FaceOf(fonts.ArialBold(config.DialogTitleFontSize)))

	d := &ConfirmDialog{
		Closed:     signals.New[bool](),
		panel:      panel,
		yes:        NewGameButton("Yes", FaceOf(fonts.Arial(config.DialogButtonFontSize))),
		no:         NewGameButton("No", FaceOf(fonts.Arial(config.DialogButtonFontSize))),
		promptFace: FaceOf(fonts.Arial(config.DialogPromptFontSize)),
	}

	var spans []utils.TextSpan
	if useMarkup {
		spans = utils.ParseMarkup(prompt, textColor)
	} else {
		spans = []utils.TextSpan{{Text: prompt, Color: textColor}}
	}
	d.promptLines = utils.WrapSpans(spans, d.promptFace, config.DialogPromptMaxWidth)
	for _, line := range d.promptLines {
		d.promptW = math.Max(d.promptW, spansWidth(line, d.promptFace))
	}

	d.yes.Clicked.Connect(func(struct{}) { d.Close(true) })
	d.no.Clicked.Connect(func(struct{}) { d.Close(false) })

	d.layout()
	d.fade = NewAlphaTask(d, 1, config.DialogFadeDuration, nil)

	log.Printf("[ConfirmDialog] Opened: %q", utils.StripMarkup(prompt))
	return d
}

// layout 计算面板尺寸并居中
// 内容自上而下为：提示文字、间隔、按钮行（水平居中）
func (d *ConfirmDialog) layout() {
	yesW, btnH := d.yes.Size()
	noW, _ := d.no.Size()
	rowW := yesW + config.DialogButtonSpacing + noW
	promptH := float64(len(d.promptLines)) * lineHeight(d.promptFace)

	contentW := math.Max(d.promptW, rowW)
	contentH := promptH + config.DialogButtonGap + btnH

	w := contentW + config.DialogMarginX*2
	h := contentH + config.DialogMarginY*2 + d.panel.TitleSpace()
	d.panel.SetSize(w, h)
	d.panel.X = math.Floor((config.StageWidth - w) / 2)
	d.panel.Y = math.Floor((config.StageHeight - h) / 2)

	top := d.panel.Y + d.panel.TitleSpace() + config.DialogMarginY
	d.promptX = d.panel.X + config.DialogMarginX + (contentW-d.promptW)/2
	d.promptY = top

	rowX := d.panel.X + config.DialogMarginX + (contentW-rowW)/2
	rowY := top + promptH + config.DialogButtonGap
	d.yes.X, d.yes.Y = rowX, rowY
	d.no.X, d.no.Y = rowX+yesW+config.DialogButtonSpacing, rowY
}

// Bounds 返回面板矩形（屏幕坐标）
func (d *ConfirmDialog) Bounds() utils.Rect {
	return d.panel.Bounds()
}

// YesButton 返回 "Yes" 按钮
func (d *ConfirmDialog) YesButton() *GameButton {
	return d.yes
}

// NoButton 返回 "No" 按钮
func (d *ConfirmDialog) NoButton() *GameButton {
	return d.no
}

// Alpha 实现 AlphaTarget
func (d *ConfirmDialog) Alpha() float64 {
	return d.alpha
}

// SetAlpha 实现 AlphaTarget
func (d *ConfirmDialog) SetAlpha(alpha float64) {
	d.alpha = alpha
}

// IsClosed 对话框是否已关闭（无论是否产生结果）
func (d *ConfirmDialog) IsClosed() bool {
	return d.closed
}

// Close 以确认（true）或拒绝（false）结束对话框
// 对话框已关闭时不做任何事
func (d *ConfirmDialog) Close(confirmed bool) {
	if d.closed {
		return
	}
	d.closed = true
	log.Printf("[ConfirmDialog] Closed (confirmed=%v)", confirmed)
	d.Closed.Emit(confirmed)
	d.Closed.DisconnectAll()
}

// Dismiss 关闭对话框但不产生结果
// 已经获取的 Promise 通道永远不会收到值
func (d *ConfirmDialog) Dismiss() {
	if d.closed {
		return
	}
	d.closed = true
	log.Printf("[ConfirmDialog] Dismissed")
	d.Closed.DisconnectAll()
}

// Promise 返回对话框结果通道
//
// 确认时收到 nil，拒绝时收到 ErrDeclined，随后通道关闭。
// 对话框被 Dismiss 或在调用前已关闭时，通道永远不会收到值。
func (d *ConfirmDialog) Promise() <-chan error {
	ch := make(chan error, 1)
	if d.closed {
		return ch
	}
	d.Closed.ConnectOnce(func(confirmed bool) {
		if confirmed {
			ch <- nil
		} else {
			ch <- ErrDeclined
		}
		close(ch)
	})
	return ch
}

// Await 阻塞等待结果通道，直到收到结果或 ctx 结束
// 可在游戏循环以外的 goroutine 中调用
func Await(ctx context.Context, result <-chan error) error {
	select {
	case err := <-result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// HandlePointer 处理指针事件
// 对话框是模态的，打开期间总是消费事件
func (d *ConfirmDialog) HandlePointer(ev utils.PointerEvent) bool {
	if d.closed {
		return false
	}
	if d.yes.HandlePointer(ev) {
		return true
	}
	d.no.HandlePointer(ev)
	return true
}

// Update 推进淡入动画
func (d *ConfirmDialog) Update(deltaTime float64) {
	if d.fade != nil && d.fade.Update(deltaTime) {
		d.fade = nil
	}
}

// Draw 绘制对话框
func (d *ConfirmDialog) Draw(screen *ebiten.Image) {
	if screen == nil || d.closed {
		return
	}

	d.panel.Draw(screen, d.alpha)

	lh := lineHeight(d.promptFace)
	y := d.promptY
	for _, line := range d.promptLines {
		x := d.promptX + (d.promptW-spansWidth(line, d.promptFace))/2
		drawSpans(screen, line, d.promptFace, x, y, d.alpha)
		y += lh
	}

	d.yes.Draw(screen, d.alpha)
	d.no.Draw(screen, d.alpha)
}
