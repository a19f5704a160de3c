package components

// LayoutComponent 存储视图的布局位置
//
// 布局位置由宿主布局系统决定，属性动画永远不会写入它：
// 动画“绝对坐标”时只改变 TransformComponent 中的平移偏移。
//
// 视觉位置 = Layout + Translation
//   - 视觉 X = Left + TranslationX
//   - 视觉 Y = Top + TranslationY
//   - 视觉 Z = Elevation + TranslationZ
type LayoutComponent struct {
	// Left 布局左上角 X 坐标（像素）
	Left float64

	// Top 布局左上角 Y 坐标（像素）
	Top float64

	// Elevation 基础高度（深度），用于绘制排序
	Elevation float64

	// Width, Height 布局尺寸（像素），缩放和旋转围绕中心点进行
	Width, Height float64
}
