package game

import (
	"context"
	"errors"
	"testing"
)

// TestResourceManager_LoadFonts 测试字体加载与缓存
func TestResourceManager_LoadFonts(t *testing.T) {
	rm := NewResourceManager()
	if err := rm.LoadFonts(context.Background()); err != nil {
		t.Fatalf("LoadFonts() error: %v", err)
	}
	// 重复加载无副作用
	if err := rm.LoadFonts(context.Background()); err != nil {
		t.Fatalf("second LoadFonts() error: %v", err)
	}

	face := rm.Arial(12)
	if face == nil {
		t.Fatal("Arial(12) returned nil")
	}
	if face.Size != 12 {
		t.Errorf("face size = %v, want 12", face.Size)
	}
	if rm.Arial(12) != face {
		t.Error("Arial(12) should return the cached face")
	}
	if rm.ArialBold(12) == face {
		t.Error("bold face should differ from regular face")
	}
}

// TestResourceManager_LazyLoad 测试未显式加载时按需加载
func TestResourceManager_LazyLoad(t *testing.T) {
	rm := NewResourceManager()
	if rm.ArialBold(16) == nil {
		t.Error("ArialBold(16) should load fonts on demand")
	}
	if rm.Font("Comic Sans", 12) != nil {
		t.Error("unknown font should return nil")
	}
}

// TestResourceManager_Cancelled 测试上下文取消
func TestResourceManager_Cancelled(t *testing.T) {
	rm := NewResourceManager()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := rm.LoadFonts(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("LoadFonts() error = %v, want context.Canceled", err)
	}
}
