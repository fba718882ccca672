package game

import (
	"fmt"
	"log"

	"github.com/decker502/slidebutton/pkg/utils"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// DefaultSoundVolume 默认音效音量
const DefaultSoundVolume = 0.6

// Preferences 宿主偏好设置
// 布局方向由宿主提供给每个滑动按钮；ConfirmCount 统计累计完成确认的次数
type Preferences struct {
	RTL          bool    `yaml:"rtl"`          // 从右到左布局
	Verbose      bool    `yaml:"verbose"`      // 详细日志
	ConfirmCount int     `yaml:"confirmCount"` // 滑到终点的累计次数
	SoundEnabled bool    `yaml:"soundEnabled"` // 反馈音效开关
	SoundVolume  float64 `yaml:"soundVolume"`  // 音效音量 0.0 - 1.0
}

// DefaultPreferences 返回默认偏好
func DefaultPreferences() *Preferences {
	return &Preferences{
		SoundEnabled: true,
		SoundVolume:  DefaultSoundVolume,
	}
}

// SettingsManager 偏好设置管理器
// 负责偏好的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储，可为 nil（降级模式）
	prefs        *Preferences
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "preferences"
)

// NewSettingsManager 创建偏好设置管理器
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存）
//
// 返回：
//   - *SettingsManager: 设置管理器实例，加载失败时使用默认值
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		prefs:        DefaultPreferences(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load preferences: %v (using defaults)", err)
	}
	return sm
}

// OpenSettingsManager 打开 gdata 存储并创建设置管理器
// 存储不可用时降级为内存模式，不返回错误
func OpenSettingsManager(appName string) *SettingsManager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[SettingsManager] Warning: storage dir unavailable: %v", err)
	} else if dir := utils.StoragePath(); dir != "" {
		log.Printf("[SettingsManager] Preferences dir: %s", dir)
	}

	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[SettingsManager] Warning: gdata unavailable: %v (preferences will not persist)", err)
		return NewSettingsManager(nil)
	}
	return NewSettingsManager(manager)
}

// Load 从 gdata 加载偏好
//
// 返回：
//   - error: 数据存在但读取或反序列化失败时返回错误
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.prefs = DefaultPreferences()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.prefs = DefaultPreferences()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.prefs = DefaultPreferences()
		return fmt.Errorf("failed to load preferences: %w", err)
	}

	loaded := DefaultPreferences()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.prefs = DefaultPreferences()
		return fmt.Errorf("failed to unmarshal preferences: %w", err)
	}

	sm.prefs = loaded
	log.Printf("[SettingsManager] Preferences loaded: rtl=%v confirmCount=%d", loaded.RTL, loaded.ConfirmCount)
	return nil
}

// Save 保存偏好到 gdata
// gdataManager 为 nil 时直接返回 nil
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}

	log.Printf("[SettingsManager] Preferences saved")
	return nil
}

// Persistent 偏好是否会被持久化
func (sm *SettingsManager) Persistent() bool {
	return sm.gdataManager != nil
}

// GetPreferences 返回当前偏好（只读使用）
func (sm *SettingsManager) GetPreferences() Preferences {
	return *sm.prefs
}

// SetRTL 设置布局方向
// 注意：仅修改内存，需调用 Save() 持久化
func (sm *SettingsManager) SetRTL(rtl bool) {
	sm.prefs.RTL = rtl
}

// ToggleRTL 切换布局方向并返回新值
func (sm *SettingsManager) ToggleRTL() bool {
	sm.prefs.RTL = !sm.prefs.RTL
	return sm.prefs.RTL
}

// SetVerbose 设置详细日志开关
func (sm *SettingsManager) SetVerbose(verbose bool) {
	sm.prefs.Verbose = verbose
}

// SetSoundEnabled 设置音效开关
func (sm *SettingsManager) SetSoundEnabled(enabled bool) {
	sm.prefs.SoundEnabled = enabled
}

// SetSoundVolume 设置音效音量，超出 0.0 - 1.0 时截断
func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.prefs.SoundVolume = max(0, min(1, volume))
}

// IncrementConfirmCount 累计一次完成确认，返回新值
func (sm *SettingsManager) IncrementConfirmCount() int {
	sm.prefs.ConfirmCount++
	return sm.prefs.ConfirmCount
}
