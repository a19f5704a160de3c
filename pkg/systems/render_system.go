package systems

import (
	"math"
	"sort"

	"github.com/gonewx/propanim/pkg/components"
	"github.com/gonewx/propanim/pkg/ecs"
	"github.com/gonewx/propanim/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// RenderSystem 绘制所有视图实体
//
// 组件要求：SpriteComponent + LayoutComponent + TransformComponent，
// AlphaComponent 可选（缺省完全不透明）。
//
// 绘制顺序按深度 Elevation + TranslationZ 从低到高，
// 深度相同时按实体 ID（创建顺序）。
type RenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewRenderSystem 创建一个新的渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{entityManager: em}
}

// Draw 将所有视图绘制到屏幕
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range s.drawOrder() {
		sprite, _ := ecs.GetComponent[*SpriteComponent](s.entityManager, id)
		if sprite.Image == nil {
			continue
		}
		layout, _ := ecs.GetComponent[*components.LayoutComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

		alpha := 1.0
		if a, ok := ecs.GetComponent[*components.AlphaComponent](s.entityManager, id); ok {
			alpha = a.Alpha
		}

		bounds := sprite.Image.Bounds()
		op := ViewDrawOptions(layout, transform, alpha, bounds.Dx(), bounds.Dy())
		screen.DrawImage(sprite.Image, op)
	}
}

// drawOrder 返回按深度排序的可绘制实体
func (s *RenderSystem) drawOrder() []ecs.EntityID {
	entities := ecs.GetEntitiesWith3[
		*SpriteComponent,
		*components.LayoutComponent,
		*components.TransformComponent,
	](s.entityManager)

	depth := make(map[ecs.EntityID]float64, len(entities))
	for _, id := range entities {
		layout, _ := ecs.GetComponent[*components.LayoutComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		depth[id] = viewDepth(layout, transform)
	}

	sort.Slice(entities, func(i, j int) bool {
		di, dj := depth[entities[i]], depth[entities[j]]
		if di != dj {
			return di < dj
		}
		return entities[i] < entities[j]
	})
	return entities
}

// ViewDrawOptions 计算视图的绘制选项
//
// 变换顺序：
//  1. 源图像拉伸到布局尺寸
//  2. 以中心为原点缩放；RotationX/RotationY 按余弦投影压缩 Y/X 方向
//  3. 平面旋转 Rotation（度）
//  4. 平移到布局中心 + 平移偏移
//
// 不透明度钳制到 [0, 1]。
func ViewDrawOptions(layout *components.LayoutComponent, transform *components.TransformComponent, alpha float64, srcW, srcH int) *ebiten.DrawImageOptions {
	op := &ebiten.DrawImageOptions{}

	w, h := layout.Width, layout.Height
	if srcW > 0 && srcH > 0 {
		op.GeoM.Scale(w/float64(srcW), h/float64(srcH))
	}

	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(
		transform.ScaleX*math.Cos(degToRad(transform.RotationY)),
		transform.ScaleY*math.Cos(degToRad(transform.RotationX)),
	)
	op.GeoM.Rotate(degToRad(transform.Rotation))
	op.GeoM.Translate(layout.Left+w/2+transform.TranslationX, layout.Top+h/2+transform.TranslationY)

	op.ColorScale.ScaleAlpha(float32(utils.Clamp(alpha, 0, 1)))
	return op
}

func viewDepth(layout *components.LayoutComponent, transform *components.TransformComponent) float64 {
	return layout.Elevation + transform.TranslationZ
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
