package property

import (
	"errors"
	"fmt"

	"github.com/gonewx/propanim/pkg/components"
	"github.com/gonewx/propanim/pkg/ecs"
)

// ErrElementUnavailable 元素已被销毁或缺少必要组件
var ErrElementUnavailable = errors.New("element unavailable")

// Element 是属性动画作用的可视元素
//
// 每次调用都返回元素当前的组件实例；元素失效时返回包装了
// ErrElementUnavailable 的错误。
type Element interface {
	Layout() (*components.LayoutComponent, error)
	Transform() (*components.TransformComponent, error)
	Alpha() (*components.AlphaComponent, error)
}

// EntityElement 以 ECS 实体作为可视元素
type EntityElement struct {
	entityManager *ecs.EntityManager
	id            ecs.EntityID
}

// NewEntityElement 将实体包装为 Element
func NewEntityElement(em *ecs.EntityManager, id ecs.EntityID) *EntityElement {
	return &EntityElement{entityManager: em, id: id}
}

// EntityID 返回绑定的实体 ID
func (e *EntityElement) EntityID() ecs.EntityID {
	return e.id
}

// Layout 返回实体的布局组件
func (e *EntityElement) Layout() (*components.LayoutComponent, error) {
	layout, ok := ecs.GetComponent[*components.LayoutComponent](e.entityManager, e.id)
	if !ok {
		return nil, e.unavailable("layout")
	}
	return layout, nil
}

// Transform 返回实体的变换组件
func (e *EntityElement) Transform() (*components.TransformComponent, error) {
	transform, ok := ecs.GetComponent[*components.TransformComponent](e.entityManager, e.id)
	if !ok {
		return nil, e.unavailable("transform")
	}
	return transform, nil
}

// Alpha 返回实体的不透明度组件
func (e *EntityElement) Alpha() (*components.AlphaComponent, error) {
	alpha, ok := ecs.GetComponent[*components.AlphaComponent](e.entityManager, e.id)
	if !ok {
		return nil, e.unavailable("alpha")
	}
	return alpha, nil
}

func (e *EntityElement) unavailable(component string) error {
	if !e.entityManager.IsAlive(e.id) {
		return fmt.Errorf("entity %d destroyed: %w", e.id, ErrElementUnavailable)
	}
	return fmt.Errorf("entity %d has no %s component: %w", e.id, component, ErrElementUnavailable)
}
