package game

import (
	"os"
	"testing"

	"github.com/decker502/eterna/pkg/utils"
	"github.com/quasilyte/gdata/v2"
)

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	t.Setenv(utils.MobileEmulateEnv, "")
	settings := DefaultSettings()

	if settings == nil {
		t.Fatal("DefaultSettings() returned nil")
	}

	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}

	if !settings.ShowTooltips {
		t.Error("ShowTooltips: got false, want true")
	}

	if !settings.ConfirmModeSwitch {
		t.Error("ConfirmModeSwitch: got false, want true")
	}
}

// TestDefaultSettings_Mobile 触摸设备默认关闭提示框
func TestDefaultSettings_Mobile(t *testing.T) {
	t.Setenv(utils.MobileEmulateEnv, "1")
	if DefaultSettings().ShowTooltips {
		t.Error("ShowTooltips: got true, want false on mobile")
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}

	if sm.IsPersistent() {
		t.Error("IsPersistent() should be false without gdata")
	}

	// 降级模式下保存不报错
	sm.SetFullscreen(true)
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode error: %v", err)
	}
	if !sm.GetSettings().Fullscreen {
		t.Error("in-memory setting should be kept")
	}
}

// TestSettingsLoadSave 测试 Load() 和 Save() 功能
func TestSettingsLoadSave(t *testing.T) {
	// 使用临时目录创建 gdata manager
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	defer os.Setenv("HOME", originalHome)

	gdataManager, err := gdata.Open(gdata.Config{
		AppName: "test_eterna_settings",
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}

	sm1, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}

	sm1.SetFullscreen(true)
	sm1.SetShowTooltips(false)
	sm1.SetConfirmModeSwitch(false)

	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// 创建新的设置管理器，验证加载
	sm2, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error on reload: %v", err)
	}

	settings := sm2.GetSettings()
	if !settings.Fullscreen {
		t.Error("Loaded Fullscreen: got false, want true")
	}
	if settings.ShowTooltips {
		t.Error("Loaded ShowTooltips: got true, want false")
	}
	if settings.ConfirmModeSwitch {
		t.Error("Loaded ConfirmModeSwitch: got true, want false")
	}
}

// TestSettingsLoadPartial 测试缺失字段保持默认值
func TestSettingsLoadPartial(t *testing.T) {
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	defer os.Setenv("HOME", originalHome)

	gdataManager, err := gdata.Open(gdata.Config{
		AppName: "test_eterna_settings_partial",
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}

	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("fullscreen: true\n")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	sm, _ := NewSettingsManager(gdataManager)
	settings := sm.GetSettings()
	if !settings.Fullscreen {
		t.Error("Fullscreen should be loaded from storage")
	}
	if !settings.ShowTooltips || !settings.ConfirmModeSwitch {
		t.Error("missing fields should keep their defaults")
	}
}
