package rscript

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestROPWait_WaitForClickUI 测试等待指定元素点击
func TestROPWait_WaitForClickUI(t *testing.T) {
	w := NewROPWait(0)
	fired := 0
	w.WaitForClickUI("AU", func() { fired++ })

	w.NotifyClickUI("A")
	if fired != 0 {
		t.Fatalf("wait fired on wrong name")
	}

	w.NotifyClickUI("AU")
	w.NotifyClickUI("AU")
	if fired != 1 {
		t.Errorf("fired = %d, want 1 (one-shot)", fired)
	}
	if w.PendingWaits() != 0 {
		t.Errorf("PendingWaits() = %d, want 0", w.PendingWaits())
	}
}

// TestROPWait_CancelWait 测试取消等待
func TestROPWait_CancelWait(t *testing.T) {
	w := NewROPWait(0)
	fired := false
	conn := w.WaitForClickUI("G", func() { fired = true })
	conn.Close()

	w.NotifyClickUI("G")
	if fired {
		t.Error("cancelled wait should not fire")
	}
}

// TestROPWait_History 测试点击历史截断
func TestROPWait_History(t *testing.T) {
	w := NewROPWait(3)
	for _, n := range []string{"A", "U", "G", "C"} {
		w.NotifyClickUI(n)
	}

	if diff := cmp.Diff([]string{"U", "G", "C"}, w.History()); diff != "" {
		t.Errorf("History mismatch (-want +got):\n%s", diff)
	}
}

// TestROPWait_OnAnyClick 测试监听所有点击
func TestROPWait_OnAnyClick(t *testing.T) {
	w := NewROPWait(0)
	var got []string
	conn := w.OnAnyClick(func(name string) { got = append(got, name) })

	w.NotifyClickUI("A")
	w.NotifyClickUI("GC")
	conn.Close()
	w.NotifyClickUI("U")

	if diff := cmp.Diff([]string{"A", "GC"}, got); diff != "" {
		t.Errorf("OnAnyClick mismatch (-want +got):\n%s", diff)
	}
}
