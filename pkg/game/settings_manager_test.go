package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

func openTestGdata(t *testing.T) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	m, err := gdata.Open(gdata.Config{AppName: "hunt3d_test"})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return m
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if !s.ShowSpeedPlot {
		t.Error("ShowSpeedPlot: got false, want true")
	}
	if s.ShowColliders {
		t.Error("ShowColliders: got true, want false")
	}
	if s.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
}

// TestSettingsManager_NilGdata 降级模式：只在内存中修改，Save 不报错
func TestSettingsManager_NilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)
	if got := sm.ToggleColliders(); !got {
		t.Error("ToggleColliders should return the new value true")
	}
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in fallback mode: %v", err)
	}
}

// TestSettingsManager_Persistence 保存后由新的管理器读回
func TestSettingsManager_Persistence(t *testing.T) {
	m := openTestGdata(t)

	sm := NewSettingsManager(m)
	sm.ToggleSpeedPlot()
	sm.ToggleColliders()
	sm.SetFullscreen(true)

	reloaded := NewSettingsManager(m)
	got := reloaded.GetSettings()
	if got.ShowSpeedPlot {
		t.Error("ShowSpeedPlot should have been saved as false")
	}
	if !got.ShowColliders {
		t.Error("ShowColliders should have been saved as true")
	}
	if !got.Fullscreen {
		t.Error("Fullscreen should have been saved as true")
	}
}

// TestSettingsManager_CorruptData 损坏的数据退回默认设置
func TestSettingsManager_CorruptData(t *testing.T) {
	m := openTestGdata(t)
	if err := m.SaveObjectProp(settingsObject, settingsProperty, []byte("showSpeedPlot: [oops")); err != nil {
		t.Fatalf("SaveObjectProp: %v", err)
	}

	sm := &SettingsManager{gdataManager: m}
	if err := sm.Load(); err == nil {
		t.Error("Load() should fail on corrupt data")
	}
	if *sm.GetSettings() != *DefaultSettings() {
		t.Errorf("settings after failed load = %+v, want defaults", *sm.GetSettings())
	}
}
