// Package modes 提供应用的各个界面模式
//
// LoadingMode 在启动加载期间显示，PoseEditMode 是谜题编辑界面。
package modes

import (
	"image/color"
	"math"

	"github.com/decker502/eterna/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 加载指示器参数
const (
	loadingDotCount    = 3
	loadingDotInterval = 0.4 // 每个点亮起的间隔（秒）
	loadingDotRadius   = 6.0
	loadingDotSpacing  = 24.0
)

var (
	loadingDotOn  = color.RGBA{R: 0xC0, G: 0xDC, B: 0xE7, A: 0xFF}
	loadingDotOff = color.RGBA{R: 0x2F, G: 0x4E, B: 0x74, A: 0xFF}
)

// LoadingMode 启动加载界面
// 字体在启动任务中加载，因此这里只绘制图形指示器
type LoadingMode struct {
	elapsed float64
}

// NewLoadingMode 创建加载界面
func NewLoadingMode() *LoadingMode {
	return &LoadingMode{}
}

// Update 推进指示器动画
func (m *LoadingMode) Update(deltaTime float64) {
	m.elapsed += deltaTime
}

// ActiveDots 返回当前点亮的点数（0 到 loadingDotCount 循环）
func (m *LoadingMode) ActiveDots() int {
	return int(math.Floor(m.elapsed/loadingDotInterval)) % (loadingDotCount + 1)
}

// Draw 在舞台中央绘制指示器
func (m *LoadingMode) Draw(screen *ebiten.Image) {
	if screen == nil {
		return
	}

	active := m.ActiveDots()
	startX := config.StageWidth/2 - loadingDotSpacing*float64(loadingDotCount-1)/2
	for i := 0; i < loadingDotCount; i++ {
		clr := loadingDotOff
		if i < active {
			clr = loadingDotOn
		}
		x := startX + loadingDotSpacing*float64(i)
		vector.DrawFilledCircle(screen, float32(x), config.StageHeight/2, loadingDotRadius, clr, true)
	}
}
