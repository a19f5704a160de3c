package property

import (
	"errors"
	"testing"

	"github.com/gonewx/propanim/pkg/components"
	"github.com/gonewx/propanim/pkg/ecs"
)

// newTestView 创建一个带布局、变换、不透明度组件的测试实体
func newTestView(em *ecs.EntityManager) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.LayoutComponent{Left: 100, Top: 50, Elevation: 4, Width: 80, Height: 120})
	em.AddComponent(id, &components.TransformComponent{
		TranslationX: 10,
		TranslationY: -5,
		TranslationZ: 2,
		ScaleX:       1.5,
		ScaleY:       0.5,
		Rotation:     30,
		RotationX:    15,
		RotationY:    45,
	})
	em.AddComponent(id, &components.AlphaComponent{Alpha: 0.75})
	return id
}

func fullRegistry() *Registry {
	return NewRegistry(Capabilities{FeatureLevel: LatestFeatureLevel})
}

func TestResolve_Get(t *testing.T) {
	em := ecs.NewEntityManager()
	el := NewEntityElement(em, newTestView(em))
	reg := fullRegistry()

	tests := []struct {
		id   ID
		want float64
	}{
		{TranslationX, 10},
		{TranslationY, -5},
		{TranslationZ, 2},
		{ScaleX, 1.5},
		{ScaleY, 0.5},
		{Rotation, 30},
		{RotationX, 15},
		{RotationY, 45},
		{X, 110},
		{Y, 45},
		{Z, 6},
		{Alpha, 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.id.String(), func(t *testing.T) {
			acc := reg.Resolve(el, tt.id)
			if !acc.Available {
				t.Fatalf("Resolve(%v).Available = false, want true", tt.id)
			}
			got, err := acc.Get()
			if err != nil {
				t.Fatalf("Get() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Get() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolve_SetAbsoluteWritesTranslationOnly(t *testing.T) {
	em := ecs.NewEntityManager()
	id := newTestView(em)
	el := NewEntityElement(em, id)
	reg := fullRegistry()

	if err := reg.Resolve(el, X).Set(250); err != nil {
		t.Fatalf("Set(X) error: %v", err)
	}
	if err := reg.Resolve(el, Z).Set(10); err != nil {
		t.Fatalf("Set(Z) error: %v", err)
	}

	layout, _ := ecs.GetComponent[*components.LayoutComponent](em, id)
	transform, _ := ecs.GetComponent[*components.TransformComponent](em, id)

	if layout.Left != 100 || layout.Elevation != 4 {
		t.Errorf("layout changed: Left=%v Elevation=%v", layout.Left, layout.Elevation)
	}
	if transform.TranslationX != 150 {
		t.Errorf("TranslationX = %v, want 150", transform.TranslationX)
	}
	if transform.TranslationZ != 6 {
		t.Errorf("TranslationZ = %v, want 6", transform.TranslationZ)
	}

	got, _ := reg.Resolve(el, X).Get()
	if got != 250 {
		t.Errorf("X after Set = %v, want 250", got)
	}
}

func TestResolve_SetPlainProperties(t *testing.T) {
	em := ecs.NewEntityManager()
	id := newTestView(em)
	el := NewEntityElement(em, id)
	reg := fullRegistry()

	for _, pid := range AllIDs() {
		if err := reg.Resolve(el, pid).Set(3); err != nil {
			t.Fatalf("Set(%v) error: %v", pid, err)
		}
		got, err := reg.Resolve(el, pid).Get()
		if err != nil {
			t.Fatalf("Get(%v) error: %v", pid, err)
		}
		if got != 3 {
			t.Errorf("%v: Get after Set(3) = %v", pid, got)
		}
	}
}

func TestRegistry_UnsupportedDepth(t *testing.T) {
	em := ecs.NewEntityManager()
	id := newTestView(em)
	el := NewEntityElement(em, id)
	reg := NewRegistry(Capabilities{FeatureLevel: DepthFeatureLevel - 1})

	for _, pid := range []ID{TranslationZ, Z} {
		t.Run(pid.String(), func(t *testing.T) {
			if reg.IsSupported(pid) {
				t.Errorf("IsSupported(%v) = true, want false", pid)
			}
			acc := reg.Resolve(el, pid)
			if acc.Available {
				t.Errorf("Resolve(%v).Available = true, want false", pid)
			}
			if v, err := acc.Get(); v != 0 || err != nil {
				t.Errorf("Get() = (%v, %v), want (0, nil)", v, err)
			}
			if err := acc.Set(99); err != nil {
				t.Errorf("Set() error: %v", err)
			}
		})
	}

	transform, _ := ecs.GetComponent[*components.TransformComponent](em, id)
	if transform.TranslationZ != 2 {
		t.Errorf("TranslationZ = %v, want untouched 2", transform.TranslationZ)
	}

	if !reg.IsSupported(TranslationX) || !reg.IsSupported(Alpha) {
		t.Error("non-depth properties should stay supported")
	}
}

func TestRegistry_UnknownID(t *testing.T) {
	reg := fullRegistry()
	if reg.IsSupported(None) {
		t.Error("None should not be supported")
	}
	if reg.IsSupported(TranslationX | TranslationY) {
		t.Error("combined flags are not a catalog entry")
	}
	em := ecs.NewEntityManager()
	if reg.Resolve(NewEntityElement(em, newTestView(em)), None).Available {
		t.Error("Resolve(None) should be unavailable")
	}
}

func TestResolve_DestroyedElement(t *testing.T) {
	em := ecs.NewEntityManager()
	id := newTestView(em)
	el := NewEntityElement(em, id)
	reg := fullRegistry()
	acc := reg.Resolve(el, TranslationX)

	em.DestroyEntity(id)
	em.RemoveMarkedEntities()

	if _, err := acc.Get(); !errors.Is(err, ErrElementUnavailable) {
		t.Errorf("Get() error = %v, want ErrElementUnavailable", err)
	}
	if err := acc.Set(1); !errors.Is(err, ErrElementUnavailable) {
		t.Errorf("Set() error = %v, want ErrElementUnavailable", err)
	}
}

func TestResolve_MissingComponent(t *testing.T) {
	em := ecs.NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, components.NewTransformComponent())
	el := NewEntityElement(em, id)

	// 没有 LayoutComponent 时无法读取绝对坐标
	if _, err := fullRegistry().Resolve(el, X).Get(); !errors.Is(err, ErrElementUnavailable) {
		t.Errorf("Get(X) error = %v, want ErrElementUnavailable", err)
	}
	v, err := fullRegistry().Resolve(el, ScaleX).Get()
	if err != nil || v != 1 {
		t.Errorf("Get(ScaleX) = (%v, %v), want (1, nil)", v, err)
	}
}

func TestDefaultRegistryIsCached(t *testing.T) {
	if DefaultRegistry() != DefaultRegistry() {
		t.Error("DefaultRegistry should return the same instance")
	}
}

func TestDetectCapabilities_EnvOverride(t *testing.T) {
	t.Setenv(FeatureLevelEnv, "19")
	if got := DetectCapabilities().FeatureLevel; got != 19 {
		t.Errorf("FeatureLevel = %d, want 19", got)
	}

	t.Setenv(FeatureLevelEnv, "not-a-number")
	if got := DetectCapabilities().FeatureLevel; got != hostFeatureLevel() {
		t.Errorf("FeatureLevel = %d, want host level %d", got, hostFeatureLevel())
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		want    ID
		wantErr bool
	}{
		{"translationX", TranslationX, false},
		{"TRANSLATIONZ", TranslationZ, false},
		{" scaleY ", ScaleY, false},
		{"x", X, false},
		{"alpha", Alpha, false},
		{"opacity", Alpha, false},
		{"skew", None, true},
		{"", None, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseID(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseID(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseID(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestIDString(t *testing.T) {
	if got := RotationY.String(); got != "rotationY" {
		t.Errorf("RotationY.String() = %q", got)
	}
	if got := ID(0x1000).String(); got != "ID(0x1000)" {
		t.Errorf("unknown String() = %q", got)
	}
	if len(AllIDs()) != 12 {
		t.Errorf("AllIDs() has %d entries, want 12", len(AllIDs()))
	}
}
