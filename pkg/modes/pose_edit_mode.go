package modes

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/eterna/pkg/bitmaps"
	"github.com/decker502/eterna/pkg/config"
	"github.com/decker502/eterna/pkg/folding"
	"github.com/decker502/eterna/pkg/game"
	"github.com/decker502/eterna/pkg/rscript"
	"github.com/decker502/eterna/pkg/signals"
	"github.com/decker502/eterna/pkg/types"
	"github.com/decker502/eterna/pkg/ui"
	"github.com/decker502/eterna/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// 布局常量
const (
	paletteBottomMargin = 20.0
	pairsButtonSpacing  = 12.0
	statusX             = 16.0
	statusY             = 12.0
	statusFontSize      = 14.0
)

// noPairsPrompt 关闭碱基对前的确认提示
const noPairsPrompt = "Hide the <FONT COLOR='#C0DCE7'>base pair</FONT> targets? Pair mutations will be unavailable until they are shown again."

var statusColor = color.RGBA{R: 0xC0, G: 0xDC, B: 0xE7, A: 0xFF}

// PoseEditOptions 谜题编辑界面的依赖与选项
type PoseEditOptions struct {
	Fonts    ui.Fonts
	Settings *game.SettingsManager
	Folders  *folding.Manager
	Palette  *config.PaletteConfig
	// Bitmaps 调色板纹理，可为 nil（不绘制图片）
	Bitmaps *bitmaps.PaletteBitmaps
	// Pointer 指针输入来源，nil 时读取 Ebitengine 输入
	Pointer utils.PointerSource
	// KeyPressed 按键检测，nil 时使用 inpututil.IsKeyJustPressed
	KeyPressed func(ebiten.Key) bool
	// LockNoPairs 以无碱基对模式启动并锁定
	LockNoPairs bool
}

// PoseEditMode 谜题编辑界面
//
// 界面底部是碱基调色板，右侧是碱基对开关按钮。
// 指针事件每帧轮询一次：确认对话框打开时只分发给对话框，
// 否则通过 pointer 信号广播给调色板和按钮。
type PoseEditMode struct {
	settings *game.SettingsManager
	folders  *folding.Manager
	rop      *rscript.ROPWait

	tracker    *utils.PointerTracker
	keyPressed func(ebiten.Key) bool
	pointer    *signals.Signal[utils.PointerEvent]

	fonts       ui.Fonts
	statusFace  *text.GoTextFace
	palette     *ui.NucleotidePalette
	balloon     *ui.TextBalloon
	pairsButton *ui.GameButton

	// 打开中的确认对话框及其结果
	dialog        *ui.ConfirmDialog
	confirmResult <-chan error

	selected   types.PaletteTargetType
	hasPick    bool
	pairCounts [3]int
	hint       string

	regs signals.Registrations
}

// NewPoseEditMode 创建谜题编辑界面
//
// 返回：
//   - *PoseEditMode: 新创建的界面
//   - error: 调色板配置无效时返回错误
func NewPoseEditMode(opts PoseEditOptions) (*PoseEditMode, error) {
	if opts.Fonts == nil {
		return nil, errors.New("pose edit mode requires fonts")
	}
	if opts.Palette == nil {
		opts.Palette = config.DefaultPaletteConfig()
	}
	if opts.Settings == nil {
		sm, err := game.NewSettingsManager(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create settings: %w", err)
		}
		opts.Settings = sm
	}
	if opts.Folders == nil {
		opts.Folders = folding.NewManager()
	}
	if opts.KeyPressed == nil {
		opts.KeyPressed = inpututil.IsKeyJustPressed
	}

	rop := rscript.NewROPWait(0)
	labelFace := ui.FaceOf(opts.Fonts.ArialBold(opts.Palette.LabelFontSize))
	palette, err := ui.NewNucleotidePalette(opts.Palette, opts.Bitmaps, labelFace, rop)
	if err != nil {
		return nil, fmt.Errorf("failed to create palette: %w", err)
	}

	m := &PoseEditMode{
		settings:    opts.Settings,
		folders:     opts.Folders,
		rop:         rop,
		tracker:     utils.NewPointerTracker(opts.Pointer),
		keyPressed:  opts.KeyPressed,
		pointer:     signals.New[utils.PointerEvent](),
		fonts:       opts.Fonts,
		statusFace:  opts.Fonts.Arial(statusFontSize),
		palette:     palette,
		balloon:     ui.NewTextBalloon(ui.FaceOf(opts.Fonts.Arial(config.TooltipFontSize))),
		pairsButton: ui.NewGameButton("Pairs: on", ui.FaceOf(opts.Fonts.Arial(config.DialogButtonFontSize))),
		hint:        "Select a base from the palette",
	}

	m.layout()

	if opts.LockNoPairs {
		palette.ChangeNoPairMode()
		palette.SetOverrideNoPair()
		m.pairsButton.SetEnabled(false)
		m.syncPairsButton()
		log.Printf("[PoseEditMode] Palette locked in no-pair mode")
	}

	return m, nil
}

// layout 将调色板放在舞台底部中央，按钮放在其右侧
func (m *PoseEditMode) layout() {
	m.palette.X = (config.StageWidth - m.palette.BarWidth()) / 2
	m.palette.Y = config.StageHeight - m.palette.BarHeight() - paletteBottomMargin

	_, h := m.pairsButton.Size()
	m.pairsButton.X = m.palette.X + m.palette.BarWidth() + pairsButtonSpacing
	m.pairsButton.Y = m.palette.Y + (m.palette.BarHeight()-h)/2
}

// Enter 订阅事件
// 模式重新成为栈顶时会再次调用，先断开上一次的订阅
func (m *PoseEditMode) Enter() {
	m.regs.Close()
	m.palette.ListenTo(m.pointer)
	m.regs.Add(m.pointer.Connect(func(ev utils.PointerEvent) {
		m.pairsButton.HandlePointer(ev)
		if ev.Kind == utils.PointerMove && m.balloon.Visible() {
			m.balloon.PlaceAbove(ev.X, ev.Y)
		}
	}))
	m.regs.Add(m.palette.TargetClicked.Connect(m.onTargetClicked))
	m.regs.Add(m.palette.TooltipChanged.Connect(m.onTooltipChanged))
	m.regs.Add(m.pairsButton.Clicked.Connect(func(struct{}) { m.onPairsButton() }))
	m.regs.Add(m.rop.OnAnyClick(func(string) { m.hint = "" }))

	if name, ok := m.engineName(); ok {
		log.Printf("[PoseEditMode] Entered (folding engine: %s)", name)
	} else {
		log.Printf("[PoseEditMode] Entered without a folding engine")
	}
}

// Exit 断开所有订阅
func (m *PoseEditMode) Exit() {
	m.regs.Close()
	m.palette.Destroy()
	m.pairsButton.Clicked.DisconnectAll()
	if m.dialog != nil {
		m.dialog.Dismiss()
		m.dialog = nil
		m.confirmResult = nil
	}
}

// Palette 返回调色板
func (m *PoseEditMode) Palette() *ui.NucleotidePalette {
	return m.palette
}

// PairsButton 返回碱基对开关按钮
func (m *PoseEditMode) PairsButton() *ui.GameButton {
	return m.pairsButton
}

// Dialog 返回打开中的确认对话框，没有时返回 nil
func (m *PoseEditMode) Dialog() *ui.ConfirmDialog {
	return m.dialog
}

// ROP 返回界面点击等待点，供谜题脚本使用
func (m *PoseEditMode) ROP() *rscript.ROPWait {
	return m.rop
}

// Selected 返回最近选中的目标
func (m *PoseEditMode) Selected() (types.PaletteTargetType, bool) {
	return m.selected, m.hasPick
}

// PairCounts 返回已放置的 AU/UG/GC 数量
func (m *PoseEditMode) PairCounts() (au, ug, gc int) {
	return m.pairCounts[0], m.pairCounts[1], m.pairCounts[2]
}

// Tooltip 返回提示气泡当前文字
func (m *PoseEditMode) Tooltip() string {
	return m.balloon.Text()
}

// Hint 返回当前的操作提示
func (m *PoseEditMode) Hint() string {
	return m.hint
}

// Update 轮询输入并更新对话框
func (m *PoseEditMode) Update(deltaTime float64) {
	m.handleKeys()

	for _, ev := range m.tracker.Poll() {
		if m.dialog != nil {
			m.dialog.HandlePointer(ev)
			continue
		}
		m.pointer.Emit(ev)
	}

	if m.dialog != nil {
		m.dialog.Update(deltaTime)
	}
	m.pollConfirmation()
}

func (m *PoseEditMode) handleKeys() {
	if m.dialog != nil {
		if m.keyPressed(ebiten.KeyEscape) {
			m.dialog.Dismiss()
			m.dialog = nil
			m.confirmResult = nil
			log.Printf("[PoseEditMode] Mode switch dismissed")
		}
		return
	}

	if m.keyPressed(ebiten.KeyT) {
		show := !m.settings.GetSettings().ShowTooltips
		m.settings.SetShowTooltips(show)
		if !show {
			m.balloon.SetText("")
		}
		log.Printf("[PoseEditMode] Tooltips %v", show)
	}
}

// pollConfirmation 检查确认对话框是否已有结果
func (m *PoseEditMode) pollConfirmation() {
	if m.confirmResult == nil {
		return
	}

	select {
	case err := <-m.confirmResult:
		m.dialog = nil
		m.confirmResult = nil
		switch {
		case err == nil:
			m.palette.ChangeNoPairMode()
			m.syncPairsButton()
			log.Printf("[PoseEditMode] Switched to no-pair mode")
		case errors.Is(err, ui.ErrDeclined):
			log.Printf("[PoseEditMode] Mode switch declined")
		default:
			log.Printf("[PoseEditMode] Mode switch failed: %v", err)
		}
	default:
	}
}

func (m *PoseEditMode) onTargetClicked(t types.PaletteTargetType) {
	m.selected = t
	m.hasPick = true

	if t.IsPair() {
		for i, pt := range types.PairTargets {
			if pt == t {
				m.pairCounts[i]++
			}
		}
		m.palette.SetPairCounts(m.pairCounts[0], m.pairCounts[1], m.pairCounts[2])
	}
	log.Printf("[PoseEditMode] Mutation selected: %s (base %d)", t, t.BaseType())
}

func (m *PoseEditMode) onTooltipChanged(tip string) {
	if !m.settings.GetSettings().ShowTooltips {
		return
	}
	m.balloon.SetText(tip)
	if tip != "" {
		x, y := m.tracker.Position()
		m.balloon.PlaceAbove(x, y)
	}
}

// onPairsButton 切换碱基对显示
// 关闭碱基对前按设置弹出确认对话框
func (m *PoseEditMode) onPairsButton() {
	if !m.palette.ShowsPairs() {
		m.palette.ChangeDefaultMode()
		m.syncPairsButton()
		log.Printf("[PoseEditMode] Switched to default mode")
		return
	}

	if !m.settings.GetSettings().ConfirmModeSwitch {
		m.palette.ChangeNoPairMode()
		m.syncPairsButton()
		return
	}

	m.dialog = ui.NewConfirmDialog(m.fonts, noPairsPrompt, true)
	m.confirmResult = m.dialog.Promise()
	m.balloon.SetText("")
}

func (m *PoseEditMode) syncPairsButton() {
	if m.palette.ShowsPairs() {
		m.pairsButton.SetLabel("Pairs: on")
	} else {
		m.pairsButton.SetLabel("Pairs: off")
	}
	m.layout()
}

// engineName 返回当前折叠引擎的名称和版本
func (m *PoseEditMode) engineName() (string, bool) {
	names := m.folders.Folders()
	if len(names) == 0 {
		return "", false
	}
	f, err := m.folders.GetFolder(names[0])
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("%s %s", f.Name(), f.Version()), true
}

// Draw 绘制界面
func (m *PoseEditMode) Draw(screen *ebiten.Image) {
	if screen == nil {
		return
	}

	status := "Folding engine: none"
	if name, ok := m.engineName(); ok {
		status = "Folding engine: " + name
	}
	if t, ok := m.Selected(); ok {
		status += "    Selected: " + t.String()
	}
	m.drawStatus(screen, status, statusY)
	if m.hint != "" {
		m.drawStatus(screen, m.hint, statusY+statusFontSize*1.6)
	}

	m.palette.Draw(screen)
	m.pairsButton.Draw(screen, 1)
	m.balloon.Draw(screen)

	if m.dialog != nil {
		m.dialog.Draw(screen)
	}
}

func (m *PoseEditMode) drawStatus(screen *ebiten.Image, s string, y float64) {
	if m.statusFace == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(statusX, y)
	op.ColorScale.ScaleWithColor(statusColor)
	text.Draw(screen, s, m.statusFace, op)
}
