package property

import (
	"sync"

	"github.com/gonewx/propanim/pkg/components"
)

// Accessor 是某个属性在某个元素上的读写对
//
// Available 为 false 表示当前平台不支持该属性：
// Get 返回 0，Set 不做任何事，两者都不会报错。
type Accessor struct {
	ID        ID
	Available bool

	get func() (float64, error)
	set func(float64) error
}

// Get 读取属性当前值
func (a Accessor) Get() (float64, error) {
	if !a.Available {
		return 0, nil
	}
	return a.get()
}

// Set 写入属性值
func (a Accessor) Set(value float64) error {
	if !a.Available {
		return nil
	}
	return a.set(value)
}

// binding 是与具体元素无关的读写实现
type binding struct {
	get func(el Element) (float64, error)
	set func(el Element, value float64) error
}

// catalog 固定的属性目录
var catalog = map[ID]binding{
	TranslationX: transformField(func(t *components.TransformComponent) *float64 { return &t.TranslationX }),
	TranslationY: transformField(func(t *components.TransformComponent) *float64 { return &t.TranslationY }),
	TranslationZ: transformField(func(t *components.TransformComponent) *float64 { return &t.TranslationZ }),
	ScaleX:       transformField(func(t *components.TransformComponent) *float64 { return &t.ScaleX }),
	ScaleY:       transformField(func(t *components.TransformComponent) *float64 { return &t.ScaleY }),
	Rotation:     transformField(func(t *components.TransformComponent) *float64 { return &t.Rotation }),
	RotationX:    transformField(func(t *components.TransformComponent) *float64 { return &t.RotationX }),
	RotationY:    transformField(func(t *components.TransformComponent) *float64 { return &t.RotationY }),
	X: absoluteAxis(
		func(l *components.LayoutComponent) float64 { return l.Left },
		func(t *components.TransformComponent) *float64 { return &t.TranslationX },
	),
	Y: absoluteAxis(
		func(l *components.LayoutComponent) float64 { return l.Top },
		func(t *components.TransformComponent) *float64 { return &t.TranslationY },
	),
	Z: absoluteAxis(
		func(l *components.LayoutComponent) float64 { return l.Elevation },
		func(t *components.TransformComponent) *float64 { return &t.TranslationZ },
	),
	Alpha: {
		get: func(el Element) (float64, error) {
			a, err := el.Alpha()
			if err != nil {
				return 0, err
			}
			return a.Alpha, nil
		},
		set: func(el Element, value float64) error {
			a, err := el.Alpha()
			if err != nil {
				return err
			}
			a.Alpha = value
			return nil
		},
	},
}

func transformField(field func(*components.TransformComponent) *float64) binding {
	return binding{
		get: func(el Element) (float64, error) {
			t, err := el.Transform()
			if err != nil {
				return 0, err
			}
			return *field(t), nil
		},
		set: func(el Element, value float64) error {
			t, err := el.Transform()
			if err != nil {
				return err
			}
			*field(t) = value
			return nil
		},
	}
}

// absoluteAxis 绝对坐标 = 布局位置 + 平移偏移
// 写入时只改变平移偏移，布局位置保持不变
func absoluteAxis(position func(*components.LayoutComponent) float64, offset func(*components.TransformComponent) *float64) binding {
	return binding{
		get: func(el Element) (float64, error) {
			l, err := el.Layout()
			if err != nil {
				return 0, err
			}
			t, err := el.Transform()
			if err != nil {
				return 0, err
			}
			return position(l) + *offset(t), nil
		},
		set: func(el Element, value float64) error {
			l, err := el.Layout()
			if err != nil {
				return err
			}
			t, err := el.Transform()
			if err != nil {
				return err
			}
			*offset(t) = value - position(l)
			return nil
		},
	}
}

// Registry 将属性 ID 解析为元素上的读写对，并报告平台支持情况
// 创建后只读，可在多个 goroutine 间共享
type Registry struct {
	caps      Capabilities
	supported map[ID]bool
}

// NewRegistry 按给定能力构建注册表
func NewRegistry(caps Capabilities) *Registry {
	supported := make(map[ID]bool, len(allIDs))
	for _, id := range allIDs {
		supported[id] = caps.Supports(id)
	}
	return &Registry{caps: caps, supported: supported}
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry 返回进程级注册表
// 平台能力只在第一次调用时检测，之后不再变化
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry(DetectCapabilities())
	})
	return defaultRegistry
}

// Capabilities 返回构建注册表时使用的平台能力
func (r *Registry) Capabilities() Capabilities {
	return r.caps
}

// IsSupported 检查属性在当前平台是否可用
func (r *Registry) IsSupported(id ID) bool {
	return r.supported[id]
}

// Resolve 返回属性在元素上的读写对
// 不支持的属性返回 Available=false 的占位读写对
func (r *Registry) Resolve(el Element, id ID) Accessor {
	b, ok := catalog[id]
	if !ok || !r.supported[id] {
		return Accessor{ID: id}
	}
	return Accessor{
		ID:        id,
		Available: true,
		get:       func() (float64, error) { return b.get(el) },
		set:       func(value float64) error { return b.set(el, value) },
	}
}
