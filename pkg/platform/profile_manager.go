package platform

import (
	"fmt"
	"log"

	"github.com/gonewx/propanim/pkg/property"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Profile 平台配置档
// 只保存能力相关的用户选择，不保存任何动画状态
type Profile struct {
	// FeatureLevel 强制使用的特性等级，0 表示自动检测
	FeatureLevel int `yaml:"featureLevel"`

	// DepthEffects 是否启用深度效果（TranslationZ / Z）
	// 关闭后即使平台支持也按不支持处理
	DepthEffects bool `yaml:"depthEffects"`

	// Preset 演示程序上次选择的预设名称
	Preset string `yaml:"preset"`
}

// DefaultProfile 返回默认配置档
func DefaultProfile() *Profile {
	return &Profile{
		FeatureLevel: 0,
		DepthEffects: true,
		Preset:       "swipe_back",
	}
}

// Capabilities 将配置档叠加到检测到的平台能力上
func (p *Profile) Capabilities(detected property.Capabilities) property.Capabilities {
	level := detected.FeatureLevel
	if p.FeatureLevel > 0 {
		level = p.FeatureLevel
	}
	if !p.DepthEffects && level >= property.DepthFeatureLevel {
		level = property.DepthFeatureLevel - 1
	}
	return property.Capabilities{FeatureLevel: level}
}

// ProfileManager 配置档管理器
// 负责配置档的加载、保存和内存管理
type ProfileManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	profile      *Profile
}

// 存储路径常量
const (
	profileObject   = "platform"
	profileProperty = "profile"
)

// NewProfileManager 创建配置档管理器
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存配置）
//
// 加载失败不是致命错误，使用默认配置档。
func NewProfileManager(gdataManager *gdata.Manager) *ProfileManager {
	pm := &ProfileManager{
		gdataManager: gdataManager,
		profile:      DefaultProfile(),
	}

	if err := pm.Load(); err != nil {
		log.Printf("[ProfileManager] Warning: Failed to load profile: %v (using defaults)", err)
	}

	return pm
}

// Load 从 gdata 加载配置档
//
// 如果 gdataManager 为 nil 或数据不存在，使用默认配置档
func (pm *ProfileManager) Load() error {
	if pm.gdataManager == nil {
		pm.profile = DefaultProfile()
		return nil
	}

	if !pm.gdataManager.ObjectPropExists(profileObject, profileProperty) {
		pm.profile = DefaultProfile()
		return nil
	}

	data, err := pm.gdataManager.LoadObjectProp(profileObject, profileProperty)
	if err != nil {
		pm.profile = DefaultProfile()
		return fmt.Errorf("failed to load profile: %w", err)
	}

	loaded := DefaultProfile()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		pm.profile = DefaultProfile()
		return fmt.Errorf("failed to unmarshal profile: %w", err)
	}

	pm.profile = loaded
	log.Printf("[ProfileManager] Profile loaded (featureLevel=%d, depthEffects=%v)", loaded.FeatureLevel, loaded.DepthEffects)
	return nil
}

// Save 保存配置档到 gdata
// 降级模式下不做任何事，也不报错
func (pm *ProfileManager) Save() error {
	if pm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(pm.profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	if err := pm.gdataManager.SaveObjectProp(profileObject, profileProperty, data); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	log.Printf("[ProfileManager] Profile saved")
	return nil
}

// GetProfile 获取当前配置档
func (pm *ProfileManager) GetProfile() *Profile {
	return pm.profile
}

// SetFeatureLevel 设置强制特性等级（0 = 自动检测）
func (pm *ProfileManager) SetFeatureLevel(level int) {
	if level < 0 {
		level = 0
	}
	pm.profile.FeatureLevel = level
}

// SetDepthEffects 启用/禁用深度效果
func (pm *ProfileManager) SetDepthEffects(enabled bool) {
	pm.profile.DepthEffects = enabled
}

// SetPreset 记录选择的预设
func (pm *ProfileManager) SetPreset(name string) {
	pm.profile.Preset = name
}

// NewRegistry 按当前配置档构建属性注册表
// 在启动时调用一次；之后修改配置档需要重新构建动画才会生效
func (pm *ProfileManager) NewRegistry() *property.Registry {
	return pm.NewRegistryWithLevel(0)
}

// NewRegistryWithLevel 与 NewRegistry 相同，但本次使用 level 作为强制特性等级
// level <= 0 时使用配置档中的设置。配置档本身不会被修改。
func (pm *ProfileManager) NewRegistryWithLevel(level int) *property.Registry {
	profile := *pm.profile
	if level > 0 {
		profile.FeatureLevel = level
	}
	caps := profile.Capabilities(property.DetectCapabilities())
	log.Printf("[ProfileManager] Using feature level %d (depth supported: %v)",
		caps.FeatureLevel, caps.Supports(property.TranslationZ))
	return property.NewRegistry(caps)
}
