package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestGdata 在临时 HOME 下打开 gdata 存储
func openTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_DATA_HOME", tempDir)

	gm, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Skipf("gdata storage unavailable: %v", err)
	}
	return gm
}

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.SoundVolume != 0.8 {
		t.Errorf("SoundVolume: got %v, want 0.8", settings.SoundVolume)
	}
	if !settings.SoundEnabled {
		t.Error("SoundEnabled: got false, want true")
	}
	if settings.ShowBoundaries {
		t.Error("ShowBoundaries: got true, want false")
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)

	settings := sm.GetSettings()
	if settings == nil {
		t.Fatal("GetSettings() returned nil in degraded mode")
	}
	if settings.SoundVolume != 0.8 {
		t.Errorf("Degraded mode SoundVolume: got %v, want 0.8", settings.SoundVolume)
	}
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should not fail: %v", err)
	}
}

// TestSettingsLoadSave 测试 Load() 和 Save() 功能
func TestSettingsLoadSave(t *testing.T) {
	gm := openTestGdata(t, "breakout_test_settings")

	sm1 := NewSettingsManager(gm)
	sm1.SetSoundVolume(0.6)
	sm1.SetSoundEnabled(false)
	sm1.ToggleBoundaries()

	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	sm2 := NewSettingsManager(gm)
	settings := sm2.GetSettings()

	if settings.SoundVolume != 0.6 {
		t.Errorf("Loaded SoundVolume: got %v, want 0.6", settings.SoundVolume)
	}
	if settings.SoundEnabled {
		t.Error("Loaded SoundEnabled: got true, want false")
	}
	if !settings.ShowBoundaries {
		t.Error("Loaded ShowBoundaries: got false, want true")
	}
}

// TestSettingsLoadCorrupted 损坏的设置数据回退到默认值
func TestSettingsLoadCorrupted(t *testing.T) {
	gm := openTestGdata(t, "breakout_test_settings_corrupt")

	if err := gm.SaveObjectProp(settingsObject, settingsProperty, []byte("soundVolume: [")); err != nil {
		t.Fatalf("SaveObjectProp failed: %v", err)
	}

	sm := &SettingsManager{gdataManager: gm, settings: DefaultSettings()}
	if err := sm.Load(); err == nil {
		t.Error("Expected Load() to fail on corrupted data")
	}
	if sm.GetSettings().SoundVolume != 0.8 {
		t.Errorf("Expected defaults after failed load, got %+v", sm.GetSettings())
	}
}

func TestSetSoundVolumeClamp(t *testing.T) {
	sm := NewSettingsManager(nil)

	tests := []struct {
		input    float64
		expected float64
	}{
		{0.5, 0.5},
		{-0.1, 0.0},
		{1.5, 1.0},
		{0.0, 0.0},
		{1.0, 1.0},
	}

	for _, tt := range tests {
		sm.SetSoundVolume(tt.input)
		if got := sm.GetSettings().SoundVolume; got != tt.expected {
			t.Errorf("SetSoundVolume(%v): got %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestToggles(t *testing.T) {
	sm := NewSettingsManager(nil)

	if sm.ToggleSound() {
		t.Error("First ToggleSound should disable sound")
	}
	if !sm.ToggleSound() {
		t.Error("Second ToggleSound should enable sound")
	}
	if !sm.ToggleBoundaries() {
		t.Error("First ToggleBoundaries should enable boundaries")
	}
}
