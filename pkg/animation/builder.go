// Package animation 组合多个属性动画，由外部进度驱动
//
// 用法:
//
//	anim, err := animation.With(el).
//		TranslationXBy(360).
//		AlphaRange(1, 0.6).
//		Build()
//	...
//	anim.Apply(progress) // 每帧由手势或补间驱动
package animation

import (
	"log"

	"github.com/gonewx/propanim/pkg/config"
	"github.com/gonewx/propanim/pkg/property"
)

// Builder 为一个元素累积属性注册，Build 时冻结为 ProgressAnimation
//
// 规则：
//   - 每个属性最多一条注册，后一次调用覆盖前一次（不合并增量）
//   - 当前平台不支持的属性静默跳过
//   - "当前值"在调用时从元素实时读取，而不是在 Build 时
//   - 读取失败时记录第一个错误，之后的调用不再生效，由 Build 返回
//
// Builder 可以多次 Build，每次得到独立的快照。
type Builder struct {
	element       property.Element
	registry      *property.Registry
	endProgress   float64
	registrations map[property.ID]PropertyDelta
	skipped       map[property.ID]bool
	err           error
}

// With 使用进程级注册表为元素创建 Builder
func With(el property.Element) *Builder {
	return WithRegistry(property.DefaultRegistry(), el)
}

// WithRegistry 使用指定注册表为元素创建 Builder
func WithRegistry(registry *property.Registry, el property.Element) *Builder {
	return &Builder{
		element:       el,
		registry:      registry,
		endProgress:   1.0,
		registrations: make(map[property.ID]PropertyDelta),
		skipped:       make(map[property.ID]bool),
	}
}

// AnimateRange 注册显式区间 from → to，不读取元素当前值
func (b *Builder) AnimateRange(id property.ID, from, to float64) *Builder {
	b.register(id, from, to-from)
	return b
}

// AnimateBy 注册从当前值开始偏移 delta
//
// 多次调用不会累加：每次都重新读取元素的实时状态。
// 元素在两次调用之间没有被写入时，后一次调用的起点与前一次相同。
func (b *Builder) AnimateBy(id property.ID, delta float64) *Builder {
	from, ok := b.currentValue(id)
	if !ok {
		return b
	}
	b.register(id, from, delta)
	return b
}

// Animate 注册从当前值到目标值 to
func (b *Builder) Animate(id property.ID, to float64) *Builder {
	from, ok := b.currentValue(id)
	if !ok {
		return b
	}
	b.register(id, from, to-from)
	return b
}

// EndProgress 设置终止进度（仅供驱动方参考，动画本身不限制进度）
func (b *Builder) EndProgress(endProgress float64) *Builder {
	b.endProgress = endProgress
	return b
}

// ApplyPreset 按声明式预设注册属性，并使用预设的终止进度
// 注册方式由条目中设置的 from / to / by 推导，缺值的条目记录警告后跳过
func (b *Builder) ApplyPreset(preset *config.AnimationPreset) *Builder {
	for i := range preset.Properties {
		p := &preset.Properties[i]
		mode, err := p.ResolveMode()
		if err != nil {
			log.Printf("[InteractionAnimationBuilder] Warning: preset '%s' property %v: %v, skipped", preset.Name, p.ID, err)
			continue
		}
		switch mode {
		case config.PresetRange:
			b.AnimateRange(p.ID, *p.From, *p.To)
		case config.PresetTarget:
			b.Animate(p.ID, *p.To)
		case config.PresetBy:
			b.AnimateBy(p.ID, *p.By)
		}
	}
	return b.EndProgress(preset.EndProgressOrDefault())
}

// Skipped 报告属性是否因平台不支持而被跳过
func (b *Builder) Skipped(id property.ID) bool {
	return b.skipped[id]
}

// Registration 返回属性当前的注册（用于调试和测试）
func (b *Builder) Registration(id property.ID) (PropertyDelta, bool) {
	d, ok := b.registrations[id]
	return d, ok
}

// Err 返回注册过程中遇到的第一个错误
func (b *Builder) Err() error {
	return b.err
}

// Reset 清空所有注册、错误和跳过记录，终止进度保持不变
func (b *Builder) Reset() *Builder {
	b.registrations = make(map[property.ID]PropertyDelta)
	b.skipped = make(map[property.ID]bool)
	b.err = nil
	return b
}

// Build 冻结当前注册，返回独立的 ProgressAnimation
// 之后对 Builder 的修改不会影响已返回的动画
func (b *Builder) Build() (*ProgressAnimation, error) {
	if b.err != nil {
		return nil, b.err
	}

	entries := make(map[property.ID]entry, len(b.registrations))
	for id, delta := range b.registrations {
		entries[id] = entry{
			delta:    delta,
			accessor: b.registry.Resolve(b.element, id),
		}
	}

	return &ProgressAnimation{
		endProgress: b.endProgress,
		entries:     entries,
	}, nil
}

// currentValue 读取元素上属性的实时值
// 返回 false 表示调用应被忽略（不支持的属性、已有错误或读取失败）
func (b *Builder) currentValue(id property.ID) (float64, bool) {
	if b.err != nil {
		return 0, false
	}
	if !b.registry.IsSupported(id) {
		b.skip(id)
		return 0, false
	}

	value, err := b.registry.Resolve(b.element, id).Get()
	if err != nil {
		b.err = err
		return 0, false
	}
	return value, true
}

func (b *Builder) register(id property.ID, start, delta float64) {
	if b.err != nil {
		return
	}
	if !b.registry.IsSupported(id) {
		b.skip(id)
		return
	}
	b.registrations[id] = PropertyDelta{Start: start, Delta: delta}
}

func (b *Builder) skip(id property.ID) {
	if b.skipped[id] {
		return
	}
	b.skipped[id] = true
	log.Printf("[InteractionAnimationBuilder] %v not supported at feature level %d, skipped",
		id, b.registry.Capabilities().FeatureLevel)
}
