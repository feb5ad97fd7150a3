package ui

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// AlphaTarget 支持透明度动画的对象
type AlphaTarget interface {
	Alpha() float64
	SetAlpha(alpha float64)
}

// AlphaTask 透明度过渡任务
// 由持有者每帧调用 Update 推进，完成后不再修改目标
type AlphaTask struct {
	tween  *gween.Tween
	target AlphaTarget
	done   bool
}

// NewAlphaTask 创建从目标当前透明度过渡到 to 的任务
//
// 参数：
//   - target: 动画目标
//   - to: 最终透明度（0-1）
//   - duration: 时长（秒），<= 0 时立即完成
//   - fn: 缓动函数，nil 时使用线性缓动
func NewAlphaTask(target AlphaTarget, to, duration float64, fn ease.TweenFunc) *AlphaTask {
	if fn == nil {
		fn = ease.Linear
	}
	task := &AlphaTask{target: target}
	if duration <= 0 {
		target.SetAlpha(to)
		task.done = true
		return task
	}
	task.tween = gween.New(float32(target.Alpha()), float32(to), float32(duration), fn)
	return task
}

// Update 推进 dt 秒，返回任务是否已完成
func (t *AlphaTask) Update(dt float64) bool {
	if t.done {
		return true
	}
	val, finished := t.tween.Update(float32(dt))
	t.target.SetAlpha(float64(val))
	t.done = finished
	return finished
}

// Done 任务是否已完成
func (t *AlphaTask) Done() bool {
	return t.done
}
