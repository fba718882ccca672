package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestGdata 在临时 HOME 下打开 gdata
func openTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return manager
}

// TestDefaultPreferences 测试默认偏好
func TestDefaultPreferences(t *testing.T) {
	prefs := DefaultPreferences()

	if prefs.RTL {
		t.Error("RTL: got true, want false")
	}
	if prefs.Verbose {
		t.Error("Verbose: got true, want false")
	}
	if prefs.ConfirmCount != 0 {
		t.Errorf("ConfirmCount: got %d, want 0", prefs.ConfirmCount)
	}
	if !prefs.SoundEnabled {
		t.Error("SoundEnabled: got false, want true")
	}
	if prefs.SoundVolume != DefaultSoundVolume {
		t.Errorf("SoundVolume: got %v, want %v", prefs.SoundVolume, DefaultSoundVolume)
	}
}

// TestSetSoundVolumeClamped 测试音量截断
func TestSetSoundVolumeClamped(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.3, 0.3},
		{-1, 0},
		{1.5, 1},
	}
	sm := NewSettingsManager(nil)
	for _, tt := range tests {
		sm.SetSoundVolume(tt.in)
		if got := sm.GetPreferences().SoundVolume; got != tt.want {
			t.Errorf("SetSoundVolume(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)

	if sm.Persistent() {
		t.Error("Persistent() = true in degraded mode")
	}
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode error: %v", err)
	}

	sm.SetRTL(true)
	if !sm.GetPreferences().RTL {
		t.Error("SetRTL(true) not reflected in degraded mode")
	}
}

// TestPreferencesLoadSave 测试 Load() 和 Save()
func TestPreferencesLoadSave(t *testing.T) {
	manager := openTestGdata(t, "test_slidebutton_prefs")

	sm1 := NewSettingsManager(manager)
	if !sm1.Persistent() {
		t.Fatal("Persistent() = false with a gdata manager")
	}
	sm1.SetRTL(true)
	sm1.SetVerbose(true)
	sm1.SetSoundEnabled(false)
	sm1.IncrementConfirmCount()
	sm1.IncrementConfirmCount()

	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	sm2 := NewSettingsManager(manager)
	prefs := sm2.GetPreferences()

	if !prefs.RTL {
		t.Error("Loaded RTL: got false, want true")
	}
	if !prefs.Verbose {
		t.Error("Loaded Verbose: got false, want true")
	}
	if prefs.ConfirmCount != 2 {
		t.Errorf("Loaded ConfirmCount: got %d, want 2", prefs.ConfirmCount)
	}
	if prefs.SoundEnabled {
		t.Error("Loaded SoundEnabled: got true, want false")
	}
}

// TestLoadCorruptedPreferences 测试数据损坏时回退到默认值
func TestLoadCorruptedPreferences(t *testing.T) {
	manager := openTestGdata(t, "test_slidebutton_corrupt")

	if err := manager.SaveObjectProp(settingsObject, settingsProperty, []byte("rtl: [not a bool")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	sm := NewSettingsManager(manager)
	if sm.GetPreferences() != *DefaultPreferences() {
		t.Errorf("preferences = %+v, want defaults", sm.GetPreferences())
	}
	if err := sm.Load(); err == nil {
		t.Error("Load() should report the unmarshal error")
	}
}

// TestToggleRTL 测试布局方向切换
func TestToggleRTL(t *testing.T) {
	sm := NewSettingsManager(nil)

	if got := sm.ToggleRTL(); !got {
		t.Error("first ToggleRTL() = false, want true")
	}
	if got := sm.ToggleRTL(); got {
		t.Error("second ToggleRTL() = true, want false")
	}
}

// TestGetPreferencesIsCopy 测试返回值不会修改内部状态
func TestGetPreferencesIsCopy(t *testing.T) {
	sm := NewSettingsManager(nil)
	prefs := sm.GetPreferences()
	prefs.ConfirmCount = 99

	if sm.GetPreferences().ConfirmCount != 0 {
		t.Error("mutating the returned Preferences changed the manager")
	}
}
