package entities

import (
	"log"

	"github.com/gonewx/propanim/pkg/components"
	"github.com/gonewx/propanim/pkg/ecs"
	"github.com/gonewx/propanim/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// NewViewEntity 创建可被属性动画驱动的视图实体
//
// 参数：
//   - em: 实体管理器
//   - image: 视图图像（可为 nil，此时只参与动画不参与渲染）
//   - layout: 布局位置与尺寸
//
// 返回：
//   - ecs.EntityID: 视图实体ID
//
// 初始状态：单位变换（缩放 1，无平移/旋转），完全不透明。
func NewViewEntity(em *ecs.EntityManager, image *ebiten.Image, layout components.LayoutComponent) ecs.EntityID {
	entityID := em.CreateEntity()

	l := layout
	ecs.AddComponent(em, entityID, &l)
	ecs.AddComponent(em, entityID, components.NewTransformComponent())
	ecs.AddComponent(em, entityID, &components.AlphaComponent{Alpha: 1.0})

	if image != nil {
		ecs.AddComponent(em, entityID, &systems.SpriteComponent{Image: image})
	}

	log.Printf("[ViewFactory] Created view entity %d at (%.1f, %.1f) size %.0fx%.0f",
		entityID, l.Left, l.Top, l.Width, l.Height)

	return entityID
}
