package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// ModeStack manages the application's modes as a stack.
// It ensures only the top mode's Update and Draw methods are called at any given time.
type ModeStack struct {
	modes []Mode
}

// NewModeStack creates and returns an empty ModeStack.
// Use PushMode to set the initial mode.
func NewModeStack() *ModeStack {
	return &ModeStack{
		modes: make([]Mode, 0, 4),
	}
}

// PushMode 将模式压入栈顶并使其成为活动模式
func (ms *ModeStack) PushMode(mode Mode) {
	if mode == nil {
		return
	}
	ms.modes = append(ms.modes, mode)
	log.Printf("[ModeStack] Push %T (depth=%d)", mode, len(ms.modes))

	if lc, ok := mode.(ModeLifecycle); ok {
		lc.Enter()
	}
}

// PopMode 弹出栈顶模式
// 栈为空时返回 nil
func (ms *ModeStack) PopMode() Mode {
	if len(ms.modes) == 0 {
		return nil
	}

	top := ms.modes[len(ms.modes)-1]
	ms.modes[len(ms.modes)-1] = nil
	ms.modes = ms.modes[:len(ms.modes)-1]
	log.Printf("[ModeStack] Pop %T (depth=%d)", top, len(ms.modes))

	if lc, ok := top.(ModeLifecycle); ok {
		lc.Exit()
	}
	if next := ms.Top(); next != nil {
		if lc, ok := next.(ModeLifecycle); ok {
			lc.Enter()
		}
	}
	return top
}

// ChangeMode 用新模式替换栈顶模式
// 栈为空时等同于 PushMode
func (ms *ModeStack) ChangeMode(mode Mode) {
	if len(ms.modes) > 0 {
		top := ms.modes[len(ms.modes)-1]
		ms.modes = ms.modes[:len(ms.modes)-1]
		log.Printf("[ModeStack] Replace %T", top)
		if lc, ok := top.(ModeLifecycle); ok {
			lc.Exit()
		}
	}
	ms.PushMode(mode)
}

// Top 返回当前活动模式
//
// 返回：
//   - Mode: 栈顶模式，如果栈为空则返回 nil
func (ms *ModeStack) Top() Mode {
	if len(ms.modes) == 0 {
		return nil
	}
	return ms.modes[len(ms.modes)-1]
}

// Len 返回栈中模式数量
func (ms *ModeStack) Len() int {
	return len(ms.modes)
}

// Update updates the top mode.
// If the stack is empty, this method does nothing.
func (ms *ModeStack) Update(deltaTime float64) {
	if top := ms.Top(); top != nil {
		top.Update(deltaTime)
	}
}

// Draw renders the top mode to the provided screen.
// If the stack is empty, this method does nothing.
func (ms *ModeStack) Draw(screen *ebiten.Image) {
	if top := ms.Top(); top != nil {
		top.Draw(screen)
	}
}

// Clear 弹出所有模式（应用退出时调用）
func (ms *ModeStack) Clear() {
	for len(ms.modes) > 0 {
		top := ms.modes[len(ms.modes)-1]
		ms.modes = ms.modes[:len(ms.modes)-1]
		if lc, ok := top.(ModeLifecycle); ok {
			lc.Exit()
		}
	}
}
