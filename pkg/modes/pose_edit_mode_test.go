package modes

import (
	"testing"

	"github.com/decker502/eterna/pkg/config"
	"github.com/decker502/eterna/pkg/folding"
	"github.com/decker502/eterna/pkg/game"
	"github.com/decker502/eterna/pkg/types"
	"github.com/decker502/eterna/pkg/ui"
	"github.com/decker502/eterna/pkg/utils"
	"github.com/google/go-cmp/cmp"
	"github.com/hajimehoshi/ebiten/v2"
)

var testFonts = game.NewResourceManager()

// testInput 脚本化的指针和键盘输入
type testInput struct {
	sample utils.PointerSample
	keys   map[ebiten.Key]bool
}

func (in *testInput) Sample() utils.PointerSample {
	s := in.sample
	in.sample.JustPressed = false
	return s
}

func (in *testInput) keyPressed(k ebiten.Key) bool {
	pressed := in.keys[k]
	delete(in.keys, k)
	return pressed
}

func (in *testInput) moveTo(x, y float64) {
	in.sample = utils.PointerSample{X: int(x), Y: int(y)}
}

func (in *testInput) clickAt(x, y float64) {
	in.sample = utils.PointerSample{X: int(x), Y: int(y), JustPressed: true}
}

func (in *testInput) press(k ebiten.Key) {
	if in.keys == nil {
		in.keys = make(map[ebiten.Key]bool)
	}
	in.keys[k] = true
}

type fakeFolder struct{}

func (fakeFolder) Name() string                      { return "Vienna" }
func (fakeFolder) Version() string                   { return "1.8.5" }
func (fakeFolder) CanPseudoknot() bool               { return false }
func (fakeFolder) PairEnergy(string) (float64, bool) { return 0, false }

// newTestMode 创建并进入谜题编辑界面
func newTestMode(t *testing.T, mutate func(*PoseEditOptions)) (*PoseEditMode, *testInput) {
	t.Helper()
	in := &testInput{}
	settings, err := game.NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager failed: %v", err)
	}

	opts := PoseEditOptions{
		Fonts:      testFonts,
		Settings:   settings,
		Palette:    config.DefaultPaletteConfig(),
		Pointer:    in,
		KeyPressed: in.keyPressed,
	}
	if mutate != nil {
		mutate(&opts)
	}

	m, err := NewPoseEditMode(opts)
	if err != nil {
		t.Fatalf("NewPoseEditMode failed: %v", err)
	}
	m.Enter()
	t.Cleanup(m.Exit)
	return m, in
}

// paletteAt 返回调色板局部坐标对应的屏幕坐标
func paletteAt(m *PoseEditMode, x, y float64) (float64, float64) {
	p := m.Palette()
	return p.X + x, p.Y + y
}

func buttonCenter(b *ui.GameButton) (float64, float64) {
	r := b.Bounds()
	return r.X + r.Width/2, r.Y + r.Height/2
}

// TestPoseEditMode_Layout 调色板位于舞台底部中央
func TestPoseEditMode_Layout(t *testing.T) {
	m, _ := newTestMode(t, nil)
	p := m.Palette()

	if want := (config.StageWidth - 190) / 2.0; p.X != want {
		t.Errorf("palette X = %v, want %v", p.X, want)
	}
	if want := config.StageHeight - 52 - paletteBottomMargin; p.Y != want {
		t.Errorf("palette Y = %v, want %v", p.Y, want)
	}
	if b := m.PairsButton().Bounds(); b.X != p.X+p.BarWidth()+pairsButtonSpacing {
		t.Errorf("button X = %v", b.X)
	}
}

// TestPoseEditMode_ClickBase 点击碱基目标
func TestPoseEditMode_ClickBase(t *testing.T) {
	m, in := newTestMode(t, nil)
	if m.Hint() == "" {
		t.Fatal("hint should be shown before the first click")
	}

	in.clickAt(paletteAt(m, 15, 15))
	m.Update(1.0 / 60)

	got, ok := m.Selected()
	if !ok || got != types.PaletteTargetA {
		t.Errorf("Selected() = %v, %v, want A", got, ok)
	}
	if diff := cmp.Diff([]string{"A"}, m.ROP().History()); diff != "" {
		t.Errorf("ROP history mismatch (-want +got):\n%s", diff)
	}
	if m.Hint() != "" {
		t.Errorf("hint = %q, want cleared after a click", m.Hint())
	}
}

// TestPoseEditMode_PairCounts 点击碱基对时累计数量
func TestPoseEditMode_PairCounts(t *testing.T) {
	m, in := newTestMode(t, nil)

	clicks := []struct{ x, y float64 }{
		{35, 35},  // AU
		{35, 35},  // AU
		{130, 45}, // GC
	}
	for _, c := range clicks {
		in.clickAt(paletteAt(m, c.x, c.y))
		m.Update(1.0 / 60)
	}

	au, ug, gc := m.PairCounts()
	if au != 2 || ug != 0 || gc != 1 {
		t.Errorf("PairCounts() = %d, %d, %d, want 2, 0, 1", au, ug, gc)
	}
	if text, _ := m.Palette().PairCountLabel(types.PaletteTargetAU); text != "2" {
		t.Errorf("AU label = %q, want 2", text)
	}
}

// TestPoseEditMode_ConfirmNoPairs 确认后切换到无碱基对模式
func TestPoseEditMode_ConfirmNoPairs(t *testing.T) {
	tests := []struct {
		name      string
		answer    func(d *ui.ConfirmDialog) (float64, float64)
		wantPairs bool
	}{
		{"yes", func(d *ui.ConfirmDialog) (float64, float64) { return buttonCenter(d.YesButton()) }, false},
		{"no", func(d *ui.ConfirmDialog) (float64, float64) { return buttonCenter(d.NoButton()) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, in := newTestMode(t, nil)

			in.clickAt(buttonCenter(m.PairsButton()))
			m.Update(1.0 / 60)
			d := m.Dialog()
			if d == nil {
				t.Fatal("confirmation dialog should open")
			}

			in.clickAt(tt.answer(d))
			m.Update(1.0 / 60)

			if m.Dialog() != nil {
				t.Error("dialog should be gone after answering")
			}
			if got := m.Palette().ShowsPairs(); got != tt.wantPairs {
				t.Errorf("ShowsPairs() = %v, want %v", got, tt.wantPairs)
			}
			if got := m.Palette().Target(types.PaletteTargetAU).Enabled; got != tt.wantPairs {
				t.Errorf("AU enabled = %v, want %v", got, tt.wantPairs)
			}
		})
	}
}

// TestPoseEditMode_DialogIsModal 对话框打开时调色板不响应
func TestPoseEditMode_DialogIsModal(t *testing.T) {
	m, in := newTestMode(t, nil)

	in.clickAt(buttonCenter(m.PairsButton()))
	m.Update(1.0 / 60)

	in.clickAt(paletteAt(m, 15, 15))
	m.Update(1.0 / 60)

	if _, ok := m.Selected(); ok {
		t.Error("palette should not receive clicks while the dialog is open")
	}
}

// TestPoseEditMode_EscapeDismisses Esc 关闭对话框且不切换模式
func TestPoseEditMode_EscapeDismisses(t *testing.T) {
	m, in := newTestMode(t, nil)

	in.clickAt(buttonCenter(m.PairsButton()))
	m.Update(1.0 / 60)
	d := m.Dialog()
	if d == nil {
		t.Fatal("confirmation dialog should open")
	}

	in.press(ebiten.KeyEscape)
	m.Update(1.0 / 60)

	if m.Dialog() != nil || !d.IsClosed() {
		t.Error("Escape should dismiss the dialog")
	}
	if !m.Palette().ShowsPairs() {
		t.Error("dismissal must not switch modes")
	}
}

// TestPoseEditMode_SwitchWithoutConfirmation 关闭确认设置时直接切换
func TestPoseEditMode_SwitchWithoutConfirmation(t *testing.T) {
	m, in := newTestMode(t, func(o *PoseEditOptions) {
		o.Settings.SetConfirmModeSwitch(false)
	})

	in.clickAt(buttonCenter(m.PairsButton()))
	m.Update(1.0 / 60)
	if m.Dialog() != nil {
		t.Error("no dialog expected")
	}
	if m.Palette().ShowsPairs() {
		t.Error("palette should be in no-pair mode")
	}
	if m.PairsButton().Label() != "Pairs: off" {
		t.Errorf("button label = %q", m.PairsButton().Label())
	}

	// 再次点击恢复，无需确认
	in.clickAt(buttonCenter(m.PairsButton()))
	m.Update(1.0 / 60)
	if !m.Palette().ShowsPairs() {
		t.Error("palette should be back in default mode")
	}
}

// TestPoseEditMode_LockNoPairs 锁定无碱基对模式
func TestPoseEditMode_LockNoPairs(t *testing.T) {
	m, in := newTestMode(t, func(o *PoseEditOptions) { o.LockNoPairs = true })
	p := m.Palette()

	if p.ShowsPairs() || p.Override() != ui.OverrideForcedNoPair {
		t.Errorf("ShowsPairs()=%v Override()=%v, want locked no-pair", p.ShowsPairs(), p.Override())
	}
	if m.PairsButton().Enabled() {
		t.Error("pairs button should be disabled")
	}

	in.clickAt(buttonCenter(m.PairsButton()))
	m.Update(1.0 / 60)
	if m.Dialog() != nil || p.ShowsPairs() {
		t.Error("locked palette should ignore the pairs button")
	}

	p.ChangeDefaultMode()
	if p.ShowsPairs() {
		t.Error("override should block ChangeDefaultMode")
	}
}

// TestPoseEditMode_Tooltips 悬停提示与开关
func TestPoseEditMode_Tooltips(t *testing.T) {
	m, in := newTestMode(t, nil)
	cfg := config.DefaultPaletteConfig()

	in.moveTo(paletteAt(m, 15, 15))
	m.Update(1.0 / 60)
	if got, want := m.Tooltip(), cfg.Targets[types.PaletteTargetA].Tooltip; got != want {
		t.Errorf("Tooltip() = %q, want %q", got, want)
	}

	in.moveTo(10, 10)
	m.Update(1.0 / 60)
	if m.Tooltip() != "" {
		t.Errorf("Tooltip() = %q, want empty off the palette", m.Tooltip())
	}

	in.press(ebiten.KeyT)
	m.Update(1.0 / 60)
	in.moveTo(paletteAt(m, 70, 10))
	m.Update(1.0 / 60)
	if m.Tooltip() != "" {
		t.Errorf("Tooltip() = %q, want hidden when tooltips are off", m.Tooltip())
	}
	if m.settings.GetSettings().ShowTooltips {
		t.Error("ShowTooltips setting should be off")
	}
}

// TestPoseEditMode_EngineName 显示折叠引擎名称
func TestPoseEditMode_EngineName(t *testing.T) {
	m, _ := newTestMode(t, nil)
	if _, ok := m.engineName(); ok {
		t.Error("no engine expected")
	}

	folders := folding.NewManager()
	folders.AddFolder(fakeFolder{})
	m2, _ := newTestMode(t, func(o *PoseEditOptions) { o.Folders = folders })
	if name, ok := m2.engineName(); !ok || name != "Vienna 1.8.5" {
		t.Errorf("engineName() = %q, %v, want Vienna 1.8.5", name, ok)
	}
}

// TestPoseEditMode_Exit 退出后不再响应输入
func TestPoseEditMode_Exit(t *testing.T) {
	m, in := newTestMode(t, nil)
	m.Exit()

	in.clickAt(paletteAt(m, 15, 15))
	m.Update(1.0 / 60)
	if _, ok := m.Selected(); ok {
		t.Error("exited mode should ignore input")
	}
}

// TestPoseEditMode_ReenterAfterPop 被覆盖的模式重新成为栈顶后，一次点击只处理一次
func TestPoseEditMode_ReenterAfterPop(t *testing.T) {
	m, in := newTestMode(t, nil)

	stack := game.NewModeStack()
	stack.PushMode(m)
	stack.PushMode(NewLoadingMode())
	stack.PopMode()
	if stack.Top() != m {
		t.Fatalf("Top() = %T, want *PoseEditMode", stack.Top())
	}

	in.clickAt(paletteAt(m, 35, 35)) // AU
	stack.Update(1.0 / 60)

	au, ug, gc := m.PairCounts()
	if au != 1 || ug != 0 || gc != 0 {
		t.Errorf("PairCounts() = %d, %d, %d, want 1, 0, 0", au, ug, gc)
	}
	if diff := cmp.Diff([]string{"AU"}, m.ROP().History()); diff != "" {
		t.Errorf("ROP history mismatch (-want +got):\n%s", diff)
	}
	if n := m.Palette().TargetClicked.NumConnections(); n != 1 {
		t.Errorf("TargetClicked has %d connections, want 1", n)
	}
}

// TestNewPoseEditMode_RequiresFonts 缺少字体时返回错误
func TestNewPoseEditMode_RequiresFonts(t *testing.T) {
	if _, err := NewPoseEditMode(PoseEditOptions{}); err == nil {
		t.Error("expected error without fonts")
	}
}

// TestLoadingMode_ActiveDots 测试指示器循环
func TestLoadingMode_ActiveDots(t *testing.T) {
	m := NewLoadingMode()
	want := []int{0, 1, 2, 3, 0, 1}
	for i, w := range want {
		if got := m.ActiveDots(); got != w {
			t.Errorf("step %d: ActiveDots() = %d, want %d", i, got, w)
		}
		m.Update(loadingDotInterval * 1.01)
	}
	m.Draw(nil)
}
