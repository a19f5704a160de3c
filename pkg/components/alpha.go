package components

// AlphaComponent 存储视图的不透明度
type AlphaComponent struct {
	// Alpha 不透明度（0.0 = 完全透明，1.0 = 完全不透明）
	// 动画外推时可能超出 [0, 1]，渲染时再钳制
	Alpha float64
}
