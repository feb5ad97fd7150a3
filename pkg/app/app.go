// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/eterna/pkg/bitmaps"
	"github.com/decker502/eterna/pkg/config"
	"github.com/decker502/eterna/pkg/folding"
	"github.com/decker502/eterna/pkg/game"
	"github.com/decker502/eterna/pkg/modes"
	"github.com/decker502/eterna/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/sync/errgroup"
)

// AppName gdata 存储使用的应用名
const AppName = "eterna"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Fullscreen 以全屏启动（覆盖已保存的设置）
	Fullscreen bool
	// SkipFolding 跳过折叠引擎初始化
	SkipFolding bool
	// NoPairs 调色板以无碱基对模式启动并锁定
	NoPairs bool
	// Settings 设置管理器，nil 时打开 gdata 存储
	Settings *game.SettingsManager
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
//
// 启动时先显示 LoadingMode，同时在后台并发执行两项加载：
// 折叠引擎初始化和字体加载。两项都完成后切换到 PoseEditMode。
// 折叠引擎初始化失败只记录日志，不影响启动。
type App struct {
	cfg        Config
	modes      *game.ModeStack
	resources  *game.ResourceManager
	settings   *game.SettingsManager
	folders    *folding.Manager
	paletteCfg *config.PaletteConfig
	bitmaps    *bitmaps.PaletteBitmaps

	// 启动结果，由后台 goroutine 写入、Update 读取
	ready  chan error
	cancel context.CancelFunc
	loaded bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入数据。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	paletteCfg, err := config.LoadPaletteConfig(config.PaletteConfigPath)
	if err != nil {
		return nil, fmt.Errorf("调色板配置加载失败: %w", err)
	}

	settings := cfg.Settings
	if settings == nil {
		settings = game.OpenSettingsManager(AppName)
	}

	a := &App{
		cfg:        cfg,
		modes:      game.NewModeStack(),
		resources:  game.NewResourceManager(),
		settings:   settings,
		folders:    folding.NewManager(),
		paletteCfg: paletteCfg,
		ready:      make(chan error, 1),
	}

	a.modes.PushMode(modes.NewLoadingMode())

	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	go func() {
		a.ready <- a.setup(ctx)
	}()

	log.Printf("[App] Started (persistent settings: %v)", settings.IsPersistent())
	return a, nil
}

// setup 并发执行启动加载
// 只有字体加载失败会返回错误
func (a *App) setup(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.initFoldingEngines(gctx)
		return nil
	})
	g.Go(func() error {
		if err := a.resources.LoadFonts(gctx); err != nil {
			return fmt.Errorf("failed to load fonts: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// initFoldingEngines 创建并注册折叠引擎
// 失败时记录日志并继续
func (a *App) initFoldingEngines(ctx context.Context) {
	if a.cfg.SkipFolding {
		log.Printf("[App] Folding engines skipped")
		return
	}

	log.Printf("[App] Initializing folding engines...")
	vienna, err := folding.CreateVienna(ctx)
	if err != nil {
		log.Printf("[App] Error initializing folding engines: %v", err)
		return
	}
	a.folders.AddFolder(vienna)
}

// finishStartup 在游戏循环中处理启动结果并进入编辑界面
func (a *App) finishStartup(err error) error {
	a.loaded = true
	if err != nil {
		return fmt.Errorf("startup failed: %w", err)
	}

	a.bitmaps = bitmaps.CreatePaletteBitmaps(a.paletteCfg)
	poseEdit, err := modes.NewPoseEditMode(modes.PoseEditOptions{
		Fonts:       a.resources,
		Settings:    a.settings,
		Folders:     a.folders,
		Palette:     a.paletteCfg,
		Bitmaps:     a.bitmaps,
		LockNoPairs: a.cfg.NoPairs,
	})
	if err != nil {
		return fmt.Errorf("failed to create pose edit mode: %w", err)
	}

	a.modes.ChangeMode(poseEdit)
	log.Printf("[App] Startup complete (%d folding engines)", a.folders.Len())
	return nil
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if !a.loaded {
		select {
		case startErr := <-a.ready:
			if err := a.finishStartup(startErr); err != nil {
				return err
			}
		default:
		}
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.StageWidth, config.StageHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.modes.Update(deltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		a.settings.SetFullscreen(false)
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		return
	}
	ebiten.SetFullscreen(true)
	a.settings.SetFullscreen(true)
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(utils.RGBHex(config.BackgroundColor))
	a.modes.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.StageWidth, config.StageHeight
}

// StartFullscreen 启动时是否应进入全屏
func (a *App) StartFullscreen() bool {
	return a.cfg.Fullscreen || a.settings.GetSettings().Fullscreen
}

// Modes 返回模式栈
func (a *App) Modes() *game.ModeStack {
	return a.modes
}

// Folders 返回折叠引擎注册表
func (a *App) Folders() *folding.Manager {
	return a.folders
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.cfg.Verbose
}

// Shutdown 停止后台加载、保存设置并释放纹理
// 在 ebiten.RunGame 返回后调用
func (a *App) Shutdown() {
	a.cancel()
	a.modes.Clear()
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Failed to save settings: %v", err)
	}
	if a.bitmaps != nil {
		a.bitmaps.Dispose()
		a.bitmaps = nil
	}
}
