package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Mode represents one screen of the application (loading screen, puzzle screen...).
// Modes live on a ModeStack; only the top mode is updated and drawn.
type Mode interface {
	// Update updates the mode logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the mode to the provided screen.
	Draw(screen *ebiten.Image)
}

// ModeLifecycle 是一个可选接口，用于在模式入栈/出栈时获得通知
//
// 实现此接口的模式会在以下时机被调用：
//   - Enter(): 被压入栈顶（或其上方的模式出栈后重新成为栈顶）
//   - Exit(): 从栈中移除，此时应释放事件订阅等资源
//
// 被覆盖的模式不会收到 Exit()，重新成为栈顶时会再次收到 Enter()，
// 因此 Enter() 需要先断开上一次建立的订阅。
type ModeLifecycle interface {
	Enter()
	Exit()
}
