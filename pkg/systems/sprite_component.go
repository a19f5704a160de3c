package systems

import "github.com/hajimehoshi/ebiten/v2"

// SpriteComponent 存储视图的视觉表现(当前绘制的图像)
// 图像按 LayoutComponent 的 Width/Height 拉伸绘制
//
// 只有渲染系统关心图像，放在这里使属性动画相关的包不依赖图形库。
type SpriteComponent struct {
	Image *ebiten.Image
}
