package main

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/gonewx/propanim/pkg/components"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	config, err := LoadConfig(writeConfig(t, "window:\n  title: demo\n"))
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if config.Window.Title != "demo" || config.Window.Width != 800 {
		t.Errorf("Window = %+v", config.Window)
	}
	if config.Interaction.DragRange != 360 {
		t.Errorf("DragRange = %v, want default 360", config.Interaction.DragRange)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"窗口尺寸", "window:\n  width: 0\n"},
		{"卡片宽度", "card:\n  width: 0\n"},
		{"卡片高度", "card:\n  height: -10\n"},
		{"卡片宽度不足一像素", "card:\n  width: 0.5\n"},
		{"拖动距离", "interaction:\n  drag_range: 0\n"},
		{"拖动方向", "interaction:\n  axis: diagonal\n"},
		{"颜色", "card:\n  color: blue\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig(writeConfig(t, tt.content)); err == nil {
				t.Error("LoadConfig() should fail")
			}
		})
	}
}

func TestCardColorAndAxis(t *testing.T) {
	c, err := CardConfig{Color: "#102030"}.rgba()
	if err != nil || c != (color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}) {
		t.Errorf("rgba() = (%v, %v)", c, err)
	}

	axis, err := InteractionConfig{Axis: "Vertical"}.dragAxis()
	if err != nil || axis != components.DragVertical {
		t.Errorf("dragAxis() = (%v, %v)", axis, err)
	}
}
