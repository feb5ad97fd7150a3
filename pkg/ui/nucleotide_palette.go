package ui

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"strconv"

	"github.com/decker502/eterna/pkg/bitmaps"
	"github.com/decker502/eterna/pkg/config"
	"github.com/decker502/eterna/pkg/rscript"
	"github.com/decker502/eterna/pkg/signals"
	"github.com/decker502/eterna/pkg/types"
	"github.com/decker502/eterna/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// disabledPaletteAlpha 调色板整体禁用时的透明度
const disabledPaletteAlpha = 0.5

var pairLabelColor = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

// PaletteOverride 调色板模式锁定状态
type PaletteOverride int

const (
	// OverrideUnforced 未锁定，模式切换正常生效
	OverrideUnforced PaletteOverride = iota
	// OverrideForcedDefault 锁定为含碱基对模式，切换到无碱基对模式的请求被忽略
	OverrideForcedDefault
	// OverrideForcedNoPair 锁定为无碱基对模式，切换到默认模式的请求被忽略
	OverrideForcedNoPair
)

// String 返回锁定状态名称
func (o PaletteOverride) String() string {
	switch o {
	case OverrideUnforced:
		return "Unforced"
	case OverrideForcedDefault:
		return "ForcedDefault"
	case OverrideForcedNoPair:
		return "ForcedNoPair"
	default:
		return "Unknown"
	}
}

// pairLabel 碱基对数量标签
type pairLabel struct {
	text    string
	x       float64
	anchorX float64
}

// selection 共享的选中高亮
type selection struct {
	visible bool
	box     utils.Rect
	isPair  bool
}

// NucleotidePalette 碱基调色板
//
// 调色板持有 7 个目标（A/U/G/C/AU/UG/GC），负责：
//   - 命中测试并把点击转换为 TargetClicked 信号
//   - 指针悬停时更新提示文字（仅在变化时通知）
//   - 默认模式与无碱基对模式之间的切换（可被锁定）
//   - 碱基对数量标签的显示
//
// 纹理可以为 nil，此时调色板仍然完整处理输入，只是不绘制图片。
type NucleotidePalette struct {
	// X, Y 调色板在屏幕上的位置
	X, Y float64

	// TargetClicked 目标被成功点击时触发
	TargetClicked *signals.Signal[types.PaletteTargetType]
	// TooltipChanged 悬停提示变化时触发，"" 表示无提示
	TooltipChanged *signals.Signal[string]

	cfg      *config.PaletteConfig
	targets  [types.NumPaletteTargets]*PaletteTarget
	bitmaps  *bitmaps.PaletteBitmaps
	observer rscript.ClickObserver

	withPairs bool
	override  PaletteOverride
	selection selection

	labels    [3]pairLabel
	labelFace text.Face

	enabled     bool
	alpha       float64
	lastTooltip string

	listener signals.Connection
}

// NewNucleotidePalette 创建碱基调色板
//
// 参数：
//   - cfg: 调色板布局配置（点击区域、提示、标签锚点）
//   - bm: 调色板纹理，可为 nil
//   - labelFace: 碱基对数量标签字体，可为 nil
//   - observer: 点击观察者，可为 nil
//
// 返回：
//   - *NucleotidePalette: 新创建的调色板，初始为默认模式
//   - error: 配置不完整时返回错误
func NewNucleotidePalette(
	cfg *config.PaletteConfig,
	bm *bitmaps.PaletteBitmaps,
	labelFace text.Face,
	observer rscript.ClickObserver,
) (*NucleotidePalette, error) {
	if cfg == nil {
		return nil, errors.New("palette config is nil")
	}

	targets, err := newPaletteTargets(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create palette targets: %w", err)
	}

	p := &NucleotidePalette{
		TargetClicked:  signals.New[types.PaletteTargetType](),
		TooltipChanged: signals.New[string](),
		cfg:            cfg,
		targets:        targets,
		bitmaps:        bm,
		observer:       observer,
		withPairs:      true,
		labelFace:      labelFace,
		enabled:        true,
		alpha:          1,
	}

	for i, pt := range types.PairTargets {
		anchor := cfg.Targets[pt].LabelAnchorX
		p.labels[i] = pairLabel{x: anchor, anchorX: anchor}
	}

	log.Printf("[NucleotidePalette] Created with %d targets (bar width %.0f)", len(targets), p.BarWidth())
	return p, nil
}

// Target 返回指定类型的目标
func (p *NucleotidePalette) Target(t types.PaletteTargetType) *PaletteTarget {
	if !t.Valid() {
		return nil
	}
	return p.targets[t]
}

// Targets 按声明顺序返回全部目标
func (p *NucleotidePalette) Targets() []*PaletteTarget {
	return p.targets[:]
}

// BarWidth 返回调色板宽度
func (p *NucleotidePalette) BarWidth() float64 {
	return p.cfg.Width
}

// BarHeight 返回调色板高度
func (p *NucleotidePalette) BarHeight() float64 {
	return p.cfg.Height
}

// Bounds 返回调色板矩形（屏幕坐标）
func (p *NucleotidePalette) Bounds() utils.Rect {
	return utils.NewRect(p.X, p.Y, p.cfg.Width, p.cfg.Height)
}

// ---- 模式切换 ----

// Override 返回当前锁定状态
func (p *NucleotidePalette) Override() PaletteOverride {
	return p.override
}

// ShowsPairs 是否处于含碱基对模式（使用含碱基对的纹理）
func (p *NucleotidePalette) ShowsPairs() bool {
	return p.withPairs
}

// SetOverrideDefault 锁定为默认模式，同时解除无碱基对锁定
func (p *NucleotidePalette) SetOverrideDefault() {
	p.override = OverrideForcedDefault
}

// SetOverrideNoPair 锁定为无碱基对模式，同时解除默认模式锁定
func (p *NucleotidePalette) SetOverrideNoPair() {
	p.override = OverrideForcedNoPair
}

// ResetOverrides 解除锁定
func (p *NucleotidePalette) ResetOverrides() {
	p.override = OverrideUnforced
}

// ChangeDefaultMode 切换到含碱基对模式
// 锁定为无碱基对模式时不做任何事
func (p *NucleotidePalette) ChangeDefaultMode() {
	if p.override == OverrideForcedNoPair {
		return
	}
	p.withPairs = true
	p.setPairsEnabled(true)
}

// ChangeNoPairMode 切换到无碱基对模式
// 锁定为默认模式时不做任何事
func (p *NucleotidePalette) ChangeNoPairMode() {
	if p.override == OverrideForcedDefault {
		return
	}
	p.withPairs = false
	p.setPairsEnabled(false)
}

func (p *NucleotidePalette) setPairsEnabled(enabled bool) {
	for _, pt := range types.PairTargets {
		p.targets[pt].Enabled = enabled
	}
}

// ---- 启用状态 ----

// SetDisabled 禁用或启用整个调色板
// 禁用时忽略所有指针输入并半透明显示
func (p *NucleotidePalette) SetDisabled(disabled bool) {
	p.enabled = !disabled
	if disabled {
		p.alpha = disabledPaletteAlpha
	} else {
		p.alpha = 1
	}
}

// Disabled 调色板是否被禁用
func (p *NucleotidePalette) Disabled() bool {
	return !p.enabled
}

// Alpha 返回调色板当前透明度
func (p *NucleotidePalette) Alpha() float64 {
	return p.alpha
}

// ---- 输入 ----

// TargetAt 返回局部坐标 (x, y) 处第一个可用的目标
// 按声明顺序检查，未命中返回 nil
func (p *NucleotidePalette) TargetAt(x, y float64) *PaletteTarget {
	for _, t := range p.targets {
		if !t.Enabled {
			continue
		}
		if t.Contains(x, y) {
			return t
		}
	}
	return nil
}

// ListenTo 订阅指针事件，调色板销毁时自动断开
// 同一时间只保留一个订阅，再次调用会替换之前的订阅
func (p *NucleotidePalette) ListenTo(events *signals.Signal[utils.PointerEvent]) {
	p.stopListening()
	p.listener = events.Connect(func(ev utils.PointerEvent) {
		p.HandlePointer(ev)
	})
}

func (p *NucleotidePalette) stopListening() {
	if p.listener != nil {
		p.listener.Close()
		p.listener = nil
	}
}

// HandlePointer 处理一个指针事件（屏幕坐标）
// 返回按下事件是否命中了目标
func (p *NucleotidePalette) HandlePointer(ev utils.PointerEvent) bool {
	if !p.enabled {
		return false
	}

	localX, localY := ev.X-p.X, ev.Y-p.Y
	switch ev.Kind {
	case utils.PointerDown:
		return p.onPointerDown(localX, localY)
	case utils.PointerMove:
		p.onPointerMove(localX, localY)
	}
	return false
}

func (p *NucleotidePalette) onPointerDown(x, y float64) bool {
	t := p.TargetAt(x, y)
	if t == nil {
		return false
	}
	p.ClickTarget(t.Type)
	return true
}

func (p *NucleotidePalette) onPointerMove(x, y float64) {
	tooltip := ""
	if t := p.TargetAt(x, y); t != nil {
		tooltip = t.Tooltip
	}

	if tooltip == p.lastTooltip {
		return
	}
	p.lastTooltip = tooltip
	log.Printf("[NucleotidePalette] Tooltip changed (%d chars)", len(tooltip))
	p.TooltipChanged.Emit(tooltip)
}

// Tooltip 返回当前显示的提示文字
func (p *NucleotidePalette) Tooltip() string {
	return p.lastTooltip
}

// ClickTarget 以编程方式点击目标
// 目标不可用时不做任何事；否则显示高亮、通知观察者并触发 TargetClicked
func (p *NucleotidePalette) ClickTarget(tt types.PaletteTargetType) {
	t := p.Target(tt)
	if t == nil || !t.Enabled {
		return
	}

	if len(t.Hitboxes) > 0 {
		p.ShowSelection(t.Hitboxes[0], t.IsPair, true)
	}
	if p.observer != nil {
		p.observer.NotifyClickUI(t.Name)
	}

	log.Printf("[NucleotidePalette] Target clicked: %s", t.Name)
	p.TargetClicked.Emit(tt)
}

// ---- 选中高亮 ----

// ShowSelection 显示或隐藏选中高亮
// 高亮总是移动到 box 的左上角并按 isPair 选择样式，show 决定是否可见
func (p *NucleotidePalette) ShowSelection(box utils.Rect, isPair, show bool) {
	p.selection = selection{visible: show, box: box, isPair: isPair}
}

// ClearSelection 隐藏选中高亮
func (p *NucleotidePalette) ClearSelection() {
	p.selection.visible = false
}

// Selection 返回高亮状态
func (p *NucleotidePalette) Selection() (box utils.Rect, isPair, visible bool) {
	return p.selection.box, p.selection.isPair, p.selection.visible
}

// ---- 碱基对数量 ----

// SetPairCounts 更新碱基对数量标签
// 只更新当前可用的碱基对标签，文字右对齐到各自的锚点
func (p *NucleotidePalette) SetPairCounts(au, ug, gc int) {
	counts := [3]int{au, ug, gc}
	for i, pt := range types.PairTargets {
		if !p.targets[pt].Enabled {
			continue
		}
		label := &p.labels[i]
		label.text = strconv.Itoa(counts[i])
		label.x = label.anchorX - measure(label.text, p.labelFace)
	}
}

// PairCountLabel 返回碱基对数量标签的文字和左侧 X 坐标
func (p *NucleotidePalette) PairCountLabel(tt types.PaletteTargetType) (string, float64) {
	for i, pt := range types.PairTargets {
		if pt == tt {
			return p.labels[i].text, p.labels[i].x
		}
	}
	return "", 0
}

// ---- 绘制 ----

// Draw 绘制调色板、高亮和数量标签
func (p *NucleotidePalette) Draw(screen *ebiten.Image) {
	if screen == nil {
		return
	}

	if img := p.texture(); img != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(p.X, p.Y)
		op.ColorScale.ScaleAlpha(float32(p.alpha))
		screen.DrawImage(img, op)
	}

	if p.selection.visible {
		if img := p.selectionTexture(); img != nil {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(p.X+p.selection.box.X, p.Y+p.selection.box.Y)
			op.ColorScale.ScaleAlpha(float32(p.alpha))
			screen.DrawImage(img, op)
		}
	}

	for i, pt := range types.PairTargets {
		if !p.targets[pt].Enabled {
			continue
		}
		label := p.labels[i]
		drawText(screen, label.text, p.labelFace, p.X+label.x, p.Y+p.cfg.LabelY, pairLabelColor, p.alpha)
	}
}

func (p *NucleotidePalette) texture() *ebiten.Image {
	if p.bitmaps == nil {
		return nil
	}
	if p.withPairs {
		return p.bitmaps.Palette
	}
	return p.bitmaps.PaletteNoPairs
}

func (p *NucleotidePalette) selectionTexture() *ebiten.Image {
	if p.bitmaps == nil {
		return nil
	}
	if p.selection.isPair {
		return p.bitmaps.SelectPair
	}
	return p.bitmaps.SelectBase
}

// Destroy 断开所有订阅和监听者
func (p *NucleotidePalette) Destroy() {
	p.stopListening()
	p.TargetClicked.DisconnectAll()
	p.TooltipChanged.DisconnectAll()
}
