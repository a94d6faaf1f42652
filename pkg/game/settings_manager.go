package game

import (
	"fmt"

	"github.com/decker502/hunt3d/pkg/logger"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// GameSettings 跨会话保存的调试/显示设置
type GameSettings struct {
	// 调试视图
	ShowSpeedPlot bool `yaml:"showSpeedPlot"` // F3: 玩家速度曲线
	ShowColliders bool `yaml:"showColliders"` // F4: 碰撞体轮廓

	// 显示设置
	Fullscreen bool `yaml:"fullscreen"` // 启动时是否全屏
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		ShowSpeedPlot: true,
		ShowColliders: false,
		Fullscreen:    false,
	}
}

// SettingsManager 设置管理器
// 负责设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，仅内存设置）
	settings     *GameSettings
}

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// NewSettingsManager 创建设置管理器，加载失败时退回默认设置
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}
	if err := sm.Load(); err != nil {
		logger.Log.Warnf("[SettingsManager] Failed to load settings: %v (using defaults)", err)
	}
	return sm
}

// Load 从 gdata 加载设置
//
// gdataManager 为 nil 或尚未保存过时使用默认设置
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()
	if sm.gdataManager == nil {
		return nil
	}
	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	sm.settings = loaded
	logger.Log.Debug("[SettingsManager] Settings loaded")
	return nil
}

// Save 保存设置到 gdata，降级模式下什么也不做
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}
	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	logger.Log.Debug("[SettingsManager] Settings saved")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// ToggleSpeedPlot 切换速度曲线显示并立即保存
func (sm *SettingsManager) ToggleSpeedPlot() bool {
	sm.settings.ShowSpeedPlot = !sm.settings.ShowSpeedPlot
	sm.saveQuietly()
	return sm.settings.ShowSpeedPlot
}

// ToggleColliders 切换碰撞体显示并立即保存
func (sm *SettingsManager) ToggleColliders() bool {
	sm.settings.ShowColliders = !sm.settings.ShowColliders
	sm.saveQuietly()
	return sm.settings.ShowColliders
}

// SetFullscreen 设置全屏模式并立即保存
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
	sm.saveQuietly()
}

func (sm *SettingsManager) saveQuietly() {
	if err := sm.Save(); err != nil {
		logger.Log.Warnf("[SettingsManager] %v", err)
	}
}
