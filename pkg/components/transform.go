package components

// TransformComponent 存储视图级别的变换
// 所有字段都可以被属性动画直接驱动
//
// 与 LayoutComponent 不同：
//   - LayoutComponent 是布局结果（动画只读）
//   - TransformComponent 是叠加在布局之上的偏移量和缩放/旋转
type TransformComponent struct {
	// TranslationX/Y/Z 相对布局位置的平移偏移（像素）
	TranslationX float64
	TranslationY float64
	TranslationZ float64

	// ScaleX, ScaleY 缩放因子（1.0 = 原始大小，0.5 = 50%，2.0 = 200%）
	ScaleX float64
	ScaleY float64

	// Rotation 平面内旋转角度（度，顺时针）
	Rotation float64

	// RotationX, RotationY 绕 X/Y 轴的旋转角度（度）
	// 渲染时按余弦投影为垂直/水平方向的压缩
	RotationX float64
	RotationY float64
}

// NewTransformComponent 创建单位变换（无平移、无旋转、缩放为 1）
func NewTransformComponent() *TransformComponent {
	return &TransformComponent{ScaleX: 1, ScaleY: 1}
}
