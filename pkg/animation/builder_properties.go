package animation

import "github.com/gonewx/propanim/pkg/property"

// 每个属性三种写法：
//   - Foo(to)          从当前值到 to
//   - FooRange(from, to) 显式区间
//   - FooBy(delta)     从当前值偏移 delta

// TranslationX 平移 X：从当前值到 value
func (b *Builder) TranslationX(value float64) *Builder {
	return b.Animate(property.TranslationX, value)
}

// TranslationXRange 平移 X：from → to
func (b *Builder) TranslationXRange(from, to float64) *Builder {
	return b.AnimateRange(property.TranslationX, from, to)
}

// TranslationXBy 平移 X：从当前值偏移 delta
func (b *Builder) TranslationXBy(delta float64) *Builder {
	return b.AnimateBy(property.TranslationX, delta)
}

// TranslationY 平移 Y：从当前值到 value
func (b *Builder) TranslationY(value float64) *Builder {
	return b.Animate(property.TranslationY, value)
}

// TranslationYRange 平移 Y：from → to
func (b *Builder) TranslationYRange(from, to float64) *Builder {
	return b.AnimateRange(property.TranslationY, from, to)
}

// TranslationYBy 平移 Y：从当前值偏移 delta
func (b *Builder) TranslationYBy(delta float64) *Builder {
	return b.AnimateBy(property.TranslationY, delta)
}

// TranslationZ 平移 Z（需要深度支持）：从当前值到 value
func (b *Builder) TranslationZ(value float64) *Builder {
	return b.Animate(property.TranslationZ, value)
}

// TranslationZRange 平移 Z（需要深度支持）：from → to
func (b *Builder) TranslationZRange(from, to float64) *Builder {
	return b.AnimateRange(property.TranslationZ, from, to)
}

// TranslationZBy 平移 Z（需要深度支持）：从当前值偏移 delta
func (b *Builder) TranslationZBy(delta float64) *Builder {
	return b.AnimateBy(property.TranslationZ, delta)
}

// ScaleX 缩放 X：从当前值到 value
func (b *Builder) ScaleX(value float64) *Builder {
	return b.Animate(property.ScaleX, value)
}

// ScaleXRange 缩放 X：from → to
func (b *Builder) ScaleXRange(from, to float64) *Builder {
	return b.AnimateRange(property.ScaleX, from, to)
}

// ScaleXBy 缩放 X：从当前值偏移 delta
func (b *Builder) ScaleXBy(delta float64) *Builder {
	return b.AnimateBy(property.ScaleX, delta)
}

// ScaleY 缩放 Y：从当前值到 value
func (b *Builder) ScaleY(value float64) *Builder {
	return b.Animate(property.ScaleY, value)
}

// ScaleYRange 缩放 Y：from → to
func (b *Builder) ScaleYRange(from, to float64) *Builder {
	return b.AnimateRange(property.ScaleY, from, to)
}

// ScaleYBy 缩放 Y：从当前值偏移 delta
func (b *Builder) ScaleYBy(delta float64) *Builder {
	return b.AnimateBy(property.ScaleY, delta)
}

// Rotation 旋转：从当前值到 value
func (b *Builder) Rotation(value float64) *Builder {
	return b.Animate(property.Rotation, value)
}

// RotationRange 旋转：from → to
func (b *Builder) RotationRange(from, to float64) *Builder {
	return b.AnimateRange(property.Rotation, from, to)
}

// RotationBy 旋转：从当前值偏移 delta
func (b *Builder) RotationBy(delta float64) *Builder {
	return b.AnimateBy(property.Rotation, delta)
}

// RotationX 绕 X 轴旋转：从当前值到 value
func (b *Builder) RotationX(value float64) *Builder {
	return b.Animate(property.RotationX, value)
}

// RotationXRange 绕 X 轴旋转：from → to
func (b *Builder) RotationXRange(from, to float64) *Builder {
	return b.AnimateRange(property.RotationX, from, to)
}

// RotationXBy 绕 X 轴旋转：从当前值偏移 delta
func (b *Builder) RotationXBy(delta float64) *Builder {
	return b.AnimateBy(property.RotationX, delta)
}

// RotationY 绕 Y 轴旋转：从当前值到 value
func (b *Builder) RotationY(value float64) *Builder {
	return b.Animate(property.RotationY, value)
}

// RotationYRange 绕 Y 轴旋转：from → to
func (b *Builder) RotationYRange(from, to float64) *Builder {
	return b.AnimateRange(property.RotationY, from, to)
}

// RotationYBy 绕 Y 轴旋转：从当前值偏移 delta
func (b *Builder) RotationYBy(delta float64) *Builder {
	return b.AnimateBy(property.RotationY, delta)
}

// X 绝对 X（动画平移偏移）：从当前值到 value
func (b *Builder) X(value float64) *Builder {
	return b.Animate(property.X, value)
}

// XRange 绝对 X（动画平移偏移）：from → to
func (b *Builder) XRange(from, to float64) *Builder {
	return b.AnimateRange(property.X, from, to)
}

// XBy 绝对 X（动画平移偏移）：从当前值偏移 delta
func (b *Builder) XBy(delta float64) *Builder {
	return b.AnimateBy(property.X, delta)
}

// Y 绝对 Y（动画平移偏移）：从当前值到 value
func (b *Builder) Y(value float64) *Builder {
	return b.Animate(property.Y, value)
}

// YRange 绝对 Y（动画平移偏移）：from → to
func (b *Builder) YRange(from, to float64) *Builder {
	return b.AnimateRange(property.Y, from, to)
}

// YBy 绝对 Y（动画平移偏移）：从当前值偏移 delta
func (b *Builder) YBy(delta float64) *Builder {
	return b.AnimateBy(property.Y, delta)
}

// Z 绝对 Z（需要深度支持）：从当前值到 value
func (b *Builder) Z(value float64) *Builder {
	return b.Animate(property.Z, value)
}

// ZRange 绝对 Z（需要深度支持）：from → to
func (b *Builder) ZRange(from, to float64) *Builder {
	return b.AnimateRange(property.Z, from, to)
}

// ZBy 绝对 Z（需要深度支持）：从当前值偏移 delta
func (b *Builder) ZBy(delta float64) *Builder {
	return b.AnimateBy(property.Z, delta)
}

// Alpha 不透明度：从当前值到 value
func (b *Builder) Alpha(value float64) *Builder {
	return b.Animate(property.Alpha, value)
}

// AlphaRange 不透明度：from → to
func (b *Builder) AlphaRange(from, to float64) *Builder {
	return b.AnimateRange(property.Alpha, from, to)
}

// AlphaBy 不透明度：从当前值偏移 delta
func (b *Builder) AlphaBy(delta float64) *Builder {
	return b.AnimateBy(property.Alpha, delta)
}
