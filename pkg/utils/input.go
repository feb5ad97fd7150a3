// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerEventKind 指针事件类型
type PointerEventKind int

const (
	// PointerDown 指针按下（鼠标左键或触摸开始）
	PointerDown PointerEventKind = iota
	// PointerMove 指针移动（悬停或拖动）
	PointerMove
)

// String 返回事件类型名称（用于日志）
func (k PointerEventKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	default:
		return "unknown"
	}
}

// PointerEvent 一次指针事件（屏幕坐标）
type PointerEvent struct {
	Kind PointerEventKind
	X    float64
	Y    float64
}

// PointerSample 单帧的指针采样
type PointerSample struct {
	// X, Y 指针位置（屏幕坐标）
	X, Y int
	// JustPressed 本帧是否刚按下
	JustPressed bool
}

// PointerSource 指针输入来源
// 游戏中使用 EbitenPointerSource，测试中可替换为脚本化输入
type PointerSource interface {
	Sample() PointerSample
}

// EbitenPointerSource 从 Ebitengine 读取鼠标和触摸输入
// 优先检测触摸，其次检测鼠标
type EbitenPointerSource struct{}

// Sample 读取当前帧的指针状态
func (EbitenPointerSource) Sample() PointerSample {
	// 首先检查刚按下的触摸（移动设备）
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return PointerSample{X: x, Y: y, JustPressed: true}
	}

	// 检查活动的触摸（用于悬停检测）
	allTouchIDs := ebiten.AppendTouchIDs(nil)
	if len(allTouchIDs) > 0 {
		x, y := ebiten.TouchPosition(allTouchIDs[0])
		return PointerSample{X: x, Y: y}
	}

	// 其次检查鼠标输入（桌面设备）
	x, y := ebiten.CursorPosition()
	return PointerSample{
		X:           x,
		Y:           y,
		JustPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}
}

// PointerTracker 将逐帧的指针采样转换为事件
//
// 规则：
//   - 位置与上一帧不同时产生 PointerMove
//   - 本帧刚按下时产生 PointerDown（在 PointerMove 之后）
//   - 第一帧总是产生一次 PointerMove，用于初始化悬停状态
type PointerTracker struct {
	source  PointerSource
	lastX   int
	lastY   int
	started bool
	events  []PointerEvent
}

// NewPointerTracker 创建指针跟踪器
// source 为 nil 时使用 EbitenPointerSource
func NewPointerTracker(source PointerSource) *PointerTracker {
	if source == nil {
		source = EbitenPointerSource{}
	}
	return &PointerTracker{
		source: source,
		events: make([]PointerEvent, 0, 2),
	}
}

// Poll 采样一帧并返回本帧产生的事件
// 返回的切片在下一次 Poll 调用前有效
func (pt *PointerTracker) Poll() []PointerEvent {
	pt.events = pt.events[:0]
	s := pt.source.Sample()

	if !pt.started || s.X != pt.lastX || s.Y != pt.lastY {
		pt.events = append(pt.events, PointerEvent{Kind: PointerMove, X: float64(s.X), Y: float64(s.Y)})
		pt.lastX, pt.lastY = s.X, s.Y
		pt.started = true
	}

	if s.JustPressed {
		pt.events = append(pt.events, PointerEvent{Kind: PointerDown, X: float64(s.X), Y: float64(s.Y)})
	}

	return pt.events
}

// Position 返回最近一次采样的指针位置
func (pt *PointerTracker) Position() (float64, float64) {
	return float64(pt.lastX), float64(pt.lastY)
}
