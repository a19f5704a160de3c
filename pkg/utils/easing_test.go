package utils

import (
	"math"
	"testing"
)

func TestEaseLinear(t *testing.T) {
	for _, v := range []float64{0, 0.25, 0.5, 1} {
		if got := EaseLinear(v); got != v {
			t.Errorf("EaseLinear(%v) = %v", v, got)
		}
	}
}

// TestEaseOutCubic 测试三次方缓出函数
func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"终点", 1.0, 1.0},
		{"中点", 0.5, 0.875}, // 1 - (1-0.5)^3 = 1 - 0.125 = 0.875
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseOutCubic(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseOutCubic(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		name    string
		a, b, t float64
		want    float64
	}{
		{"起点", 10, 20, 0, 10},
		{"终点", 10, 20, 1, 20},
		{"中点", 10, 20, 0.5, 15},
		{"外推", 10, 20, 2, 30},
		{"反向", 1, 0, 0.25, 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lerp(tt.a, tt.b, tt.t); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Lerp(%v, %v, %v) = %v, 期望 %v", tt.a, tt.b, tt.t, got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-0.5, 0, 1); got != 0 {
		t.Errorf("Clamp(-0.5) = %v", got)
	}
	if got := Clamp(1.5, 0, 1); got != 1 {
		t.Errorf("Clamp(1.5) = %v", got)
	}
	if got := Clamp(0.3, 0, 1); got != 0.3 {
		t.Errorf("Clamp(0.3) = %v", got)
	}
}
