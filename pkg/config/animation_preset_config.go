package config

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"github.com/gonewx/propanim/pkg/property"
	"gopkg.in/yaml.v3"
)

//go:embed default_presets.yaml
var defaultPresetsYAML []byte

// PresetMode 属性条目的注册方式
type PresetMode string

const (
	// PresetRange from + to：显式区间，不读取元素当前值
	PresetRange PresetMode = "range"
	// PresetTarget to：从当前值到目标值
	PresetTarget PresetMode = "to"
	// PresetBy by：从当前值偏移
	PresetBy PresetMode = "by"
)

// PropertyPreset 单个属性的动画配置
type PropertyPreset struct {
	Property string   `yaml:"property"`
	From     *float64 `yaml:"from,omitempty"`
	To       *float64 `yaml:"to,omitempty"`
	By       *float64 `yaml:"by,omitempty"`

	// ID 解析后的属性（验证时填充）
	ID property.ID `yaml:"-"`
	// Mode 解析后的注册方式（验证时填充，仅供查看；注册时以 ResolveMode 为准）
	Mode PresetMode `yaml:"-"`
}

// AnimationPreset 一组属性动画的声明式描述
type AnimationPreset struct {
	// Name 预设名称（来自 presets 映射的键）
	Name string `yaml:"-"`

	// EndProgress 终止进度，缺省为 1.0
	EndProgress *float64 `yaml:"endProgress,omitempty"`

	Properties []PropertyPreset `yaml:"properties"`
}

// EndProgressOrDefault 返回终止进度，未配置时为 1.0
func (p *AnimationPreset) EndProgressOrDefault() float64 {
	if p.EndProgress == nil {
		return 1.0
	}
	return *p.EndProgress
}

// PresetConfig 预设文件的根结构
type PresetConfig struct {
	Presets map[string]*AnimationPreset `yaml:"presets"`
}

// LoadPresetConfig 从 YAML 文件加载动画预设
//
// 参数：
//   - path: 配置文件路径
//
// 返回：
//   - *PresetConfig: 解析并验证后的预设
//   - error: 读取、解析或验证失败
func LoadPresetConfig(path string) (*PresetConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("无法读取预设文件 %s: %w", path, err)
	}

	config, err := ParsePresetConfig(data)
	if err != nil {
		return nil, fmt.Errorf("预设文件 %s: %w", path, err)
	}
	return config, nil
}

// DefaultPresetConfig 返回内置预设
func DefaultPresetConfig() (*PresetConfig, error) {
	return ParsePresetConfig(defaultPresetsYAML)
}

// ParsePresetConfig 解析并验证 YAML 预设数据
func ParsePresetConfig(data []byte) (*PresetConfig, error) {
	var config PresetConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("无法解析预设: %w", err)
	}

	if err := validatePresetConfig(&config); err != nil {
		return nil, fmt.Errorf("预设验证失败: %w", err)
	}

	return &config, nil
}

// validatePresetConfig 验证预设并填充 Name / ID / Mode
func validatePresetConfig(config *PresetConfig) error {
	if len(config.Presets) == 0 {
		return fmt.Errorf("没有定义任何预设")
	}

	for name, preset := range config.Presets {
		if preset == nil {
			return fmt.Errorf("预设 '%s' 为空", name)
		}
		preset.Name = name

		if len(preset.Properties) == 0 {
			return fmt.Errorf("预设 '%s' 没有属性", name)
		}

		for i := range preset.Properties {
			p := &preset.Properties[i]

			id, err := property.ParseID(p.Property)
			if err != nil {
				return fmt.Errorf("预设 '%s' 第 %d 个属性: %w", name, i+1, err)
			}
			p.ID = id

			mode, err := p.ResolveMode()
			if err != nil {
				return fmt.Errorf("预设 '%s' 属性 '%s': %w", name, p.Property, err)
			}
			p.Mode = mode
		}
	}

	return nil
}

// ResolveMode 根据已设置的 from / to / by 推导注册方式
// 不依赖 Mode 字段，手工构造的条目同样适用
func (p *PropertyPreset) ResolveMode() (PresetMode, error) {
	switch {
	case p.By != nil && (p.From != nil || p.To != nil):
		return "", fmt.Errorf("'by' 不能与 'from'/'to' 同时使用")
	case p.By != nil:
		return PresetBy, nil
	case p.From != nil && p.To != nil:
		return PresetRange, nil
	case p.To != nil:
		return PresetTarget, nil
	case p.From != nil:
		return "", fmt.Errorf("'from' 需要同时指定 'to'")
	default:
		return "", fmt.Errorf("必须指定 'to'、'from'+'to' 或 'by'")
	}
}

// Get 按名称获取预设
func (c *PresetConfig) Get(name string) (*AnimationPreset, error) {
	preset, ok := c.Presets[name]
	if !ok {
		return nil, fmt.Errorf("未知预设 '%s'", name)
	}
	return preset, nil
}

// Names 返回所有预设名称（排序）
func (c *PresetConfig) Names() []string {
	names := make([]string, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
