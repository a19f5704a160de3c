package systems

import (
	"math"
	"testing"

	"github.com/gonewx/propanim/pkg/components"
	"github.com/gonewx/propanim/pkg/ecs"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestViewDrawOptions_Translation(t *testing.T) {
	layout := &components.LayoutComponent{Left: 100, Top: 50, Width: 40, Height: 20}
	transform := components.NewTransformComponent()
	transform.TranslationX = 10
	transform.TranslationY = -5

	op := ViewDrawOptions(layout, transform, 1, 40, 20)

	x, y := op.GeoM.Apply(0, 0)
	if !approx(x, 110) || !approx(y, 45) {
		t.Errorf("top-left maps to (%v, %v), want (110, 45)", x, y)
	}
	x, y = op.GeoM.Apply(40, 20)
	if !approx(x, 150) || !approx(y, 65) {
		t.Errorf("bottom-right maps to (%v, %v), want (150, 65)", x, y)
	}
}

func TestViewDrawOptions_SourceStretch(t *testing.T) {
	layout := &components.LayoutComponent{Width: 100, Height: 50}
	op := ViewDrawOptions(layout, components.NewTransformComponent(), 1, 10, 10)

	x, y := op.GeoM.Apply(10, 10)
	if !approx(x, 100) || !approx(y, 50) {
		t.Errorf("source corner maps to (%v, %v), want (100, 50)", x, y)
	}
}

func TestViewDrawOptions_ScaleAroundCenter(t *testing.T) {
	layout := &components.LayoutComponent{Left: 0, Top: 0, Width: 100, Height: 100}
	transform := components.NewTransformComponent()
	transform.ScaleX = 0.5
	transform.ScaleY = 0.5

	op := ViewDrawOptions(layout, transform, 1, 100, 100)

	// 中心不动
	x, y := op.GeoM.Apply(50, 50)
	if !approx(x, 50) || !approx(y, 50) {
		t.Errorf("center maps to (%v, %v), want (50, 50)", x, y)
	}
	x, y = op.GeoM.Apply(0, 0)
	if !approx(x, 25) || !approx(y, 25) {
		t.Errorf("top-left maps to (%v, %v), want (25, 25)", x, y)
	}
}

func TestViewDrawOptions_Rotation(t *testing.T) {
	layout := &components.LayoutComponent{Width: 100, Height: 100}
	transform := components.NewTransformComponent()
	transform.Rotation = 90

	op := ViewDrawOptions(layout, transform, 1, 100, 100)

	// 右边中点 (100, 50) 绕中心顺时针旋转 90° → 底边中点 (50, 100)
	x, y := op.GeoM.Apply(100, 50)
	if !approx(x, 50) || !approx(y, 100) {
		t.Errorf("rotated point = (%v, %v), want (50, 100)", x, y)
	}
}

func TestViewDrawOptions_RotationYFoldsWidth(t *testing.T) {
	layout := &components.LayoutComponent{Width: 100, Height: 100}
	transform := components.NewTransformComponent()
	transform.RotationY = 60 // cos 60° = 0.5

	op := ViewDrawOptions(layout, transform, 1, 100, 100)

	x, y := op.GeoM.Apply(100, 100)
	if !approx(x, 75) || !approx(y, 100) {
		t.Errorf("corner = (%v, %v), want (75, 100)", x, y)
	}
}

func TestViewDrawOptions_AlphaClamped(t *testing.T) {
	layout := &components.LayoutComponent{Width: 1, Height: 1}
	tests := []struct {
		alpha float64
		want  float32
	}{
		{0.5, 0.5},
		{-1, 0},
		{3, 1},
	}
	for _, tt := range tests {
		op := ViewDrawOptions(layout, components.NewTransformComponent(), tt.alpha, 1, 1)
		if got := op.ColorScale.A(); got != tt.want {
			t.Errorf("alpha %v: ColorScale.A() = %v, want %v", tt.alpha, got, tt.want)
		}
	}
}

func TestRenderSystem_DrawOrder(t *testing.T) {
	em := ecs.NewEntityManager()

	newView := func(elevation, translationZ float64) ecs.EntityID {
		id := em.CreateEntity()
		em.AddComponent(id, &SpriteComponent{})
		em.AddComponent(id, &components.LayoutComponent{Elevation: elevation})
		transform := components.NewTransformComponent()
		transform.TranslationZ = translationZ
		em.AddComponent(id, transform)
		return id
	}

	a := newView(2, 0)
	b := newView(0, 0)
	c := newView(0, 3)
	d := newView(0, 0)

	// 没有 SpriteComponent 的实体不参与绘制
	plain := em.CreateEntity()
	em.AddComponent(plain, &components.LayoutComponent{})
	em.AddComponent(plain, components.NewTransformComponent())

	got := NewRenderSystem(em).drawOrder()
	want := []ecs.EntityID{b, d, a, c}
	if len(got) != len(want) {
		t.Fatalf("drawOrder() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("drawOrder()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}
