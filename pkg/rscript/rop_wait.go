// Package rscript 提供谜题脚本运行时与界面之间的桥接
//
// 教程脚本需要等待玩家点击某个界面元素后才继续执行，
// 界面组件在被点击时调用 NotifyClickUI 通知脚本运行时。
package rscript

import (
	"log"

	"github.com/decker502/eterna/pkg/signals"
)

// ClickObserver 界面点击观察者
// 调色板等组件在成功点击后按名称通知
type ClickObserver interface {
	NotifyClickUI(name string)
}

// ROPWait 脚本等待点：记录界面点击并唤醒等待中的脚本步骤
type ROPWait struct {
	clicked  *signals.Signal[string]
	history  []string
	maxTrail int
}

// NewROPWait 创建等待点
// maxTrail 为保留的点击历史条数，<= 0 时使用默认值 32
func NewROPWait(maxTrail int) *ROPWait {
	if maxTrail <= 0 {
		maxTrail = 32
	}
	return &ROPWait{
		clicked:  signals.New[string](),
		maxTrail: maxTrail,
	}
}

// NotifyClickUI 通知某个界面元素被点击
func (w *ROPWait) NotifyClickUI(name string) {
	log.Printf("[ROPWait] UI clicked: %s", name)

	w.history = append(w.history, name)
	if len(w.history) > w.maxTrail {
		w.history = w.history[len(w.history)-w.maxTrail:]
	}

	w.clicked.Emit(name)
}

// WaitForClickUI 等待指定名称的元素被点击一次
// 回调触发后自动注销；返回的连接可用于提前取消等待
func (w *ROPWait) WaitForClickUI(name string, fn func()) signals.Connection {
	var conn signals.Connection
	conn = w.clicked.Connect(func(clicked string) {
		if clicked != name {
			return
		}
		conn.Close()
		fn()
	})
	return conn
}

// OnAnyClick 监听所有界面点击
func (w *ROPWait) OnAnyClick(fn func(name string)) signals.Connection {
	return w.clicked.Connect(fn)
}

// History 返回最近的点击记录（从旧到新）
func (w *ROPWait) History() []string {
	out := make([]string, len(w.history))
	copy(out, w.history)
	return out
}

// PendingWaits 返回尚未满足的等待数量（含 OnAnyClick 监听）
func (w *ROPWait) PendingWaits() int {
	return w.clicked.NumConnections()
}
