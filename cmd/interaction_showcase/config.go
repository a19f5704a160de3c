// cmd/interaction_showcase/config.go
// 展示程序的配置文件加载和解析

package main

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/gonewx/propanim/pkg/components"
	"gopkg.in/yaml.v3"
)

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// CardConfig 被拖动的卡片
type CardConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Color  string  `yaml:"color"` // "#rrggbb"
}

// InteractionConfig 手势驱动参数
type InteractionConfig struct {
	DragRange         float64 `yaml:"drag_range"`
	CompleteThreshold float64 `yaml:"complete_threshold"`
	SettleDuration    float64 `yaml:"settle_duration"`
	Axis              string  `yaml:"axis"`
}

// ShowcaseConfig 展示程序完整配置
type ShowcaseConfig struct {
	Window      WindowConfig      `yaml:"window"`
	Card        CardConfig        `yaml:"card"`
	Interaction InteractionConfig `yaml:"interaction"`
	PresetsFile string            `yaml:"presets_file"`
}

// LoadConfig 从文件加载配置
func LoadConfig(path string) (*ShowcaseConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("无法读取配置文件 %s: %w", path, err)
	}

	config := defaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("无法解析配置文件 %s: %w", path, err)
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("配置文件 %s 验证失败: %w", path, err)
	}
	return config, nil
}

func defaultConfig() *ShowcaseConfig {
	return &ShowcaseConfig{
		Window: WindowConfig{Width: 800, Height: 600, Title: "交互动画展示"},
		Card:   CardConfig{Width: 240, Height: 320, Color: "#4a90d9"},
		Interaction: InteractionConfig{
			DragRange:         360,
			CompleteThreshold: 0.5,
			SettleDuration:    0.35,
			Axis:              "horizontal",
		},
	}
}

func (c *ShowcaseConfig) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("窗口尺寸无效: %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Card.Width < 1 || c.Card.Height < 1 {
		return fmt.Errorf("卡片尺寸无效: %vx%v", c.Card.Width, c.Card.Height)
	}
	if c.Interaction.DragRange == 0 {
		return fmt.Errorf("drag_range 不能为 0")
	}
	if _, err := c.Interaction.dragAxis(); err != nil {
		return err
	}
	if _, err := c.Card.rgba(); err != nil {
		return err
	}
	return nil
}

func (c InteractionConfig) dragAxis() (components.DragAxis, error) {
	switch strings.ToLower(c.Axis) {
	case "", "horizontal":
		return components.DragHorizontal, nil
	case "vertical":
		return components.DragVertical, nil
	}
	return 0, fmt.Errorf("未知拖动方向 '%s'", c.Axis)
}

func (c CardConfig) rgba() (color.RGBA, error) {
	hex := strings.TrimPrefix(c.Color, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("颜色格式应为 #rrggbb: '%s'", c.Color)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("颜色格式应为 #rrggbb: '%s'", c.Color)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
