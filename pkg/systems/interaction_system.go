package systems

import (
	"errors"
	"log"

	"github.com/gonewx/propanim/pkg/components"
	"github.com/gonewx/propanim/pkg/ecs"
	"github.com/gonewx/propanim/pkg/property"
	"github.com/gonewx/propanim/pkg/utils"
)

// InteractionSystem 用手势驱动 InteractionComponent 上的动画
//
// 拖动期间进度直接跟随指针（不钳制，允许拖过头）；
// 松手后按 EaseOutCubic 在 SettleDuration 内回到 0 或推进到 EndProgress。
// 动画报告元素不可用时，该组件被标记为 Detached，不再被驱动。
type InteractionSystem struct {
	entityManager *ecs.EntityManager
}

// NewInteractionSystem 创建交互驱动系统
func NewInteractionSystem(em *ecs.EntityManager) *InteractionSystem {
	return &InteractionSystem{entityManager: em}
}

// BeginDrag 开始拖动实体
// 返回 false 表示实体不可拖动（没有组件或已脱离）
func (s *InteractionSystem) BeginDrag(id ecs.EntityID, x, y float64) bool {
	comp, ok := ecs.GetComponent[*components.InteractionComponent](s.entityManager, id)
	if !ok || comp.Detached || comp.Animation == nil {
		return false
	}

	comp.Dragging = true
	comp.Settling = false
	comp.Completed = false
	comp.DragStart = axisValue(comp.Axis, x, y)
	comp.DragBaseProgress = comp.Progress
	return true
}

// DragTo 指针移动到 (x, y)
func (s *InteractionSystem) DragTo(id ecs.EntityID, x, y float64) {
	comp, ok := ecs.GetComponent[*components.InteractionComponent](s.entityManager, id)
	if !ok || !comp.Dragging {
		return
	}

	offset := axisValue(comp.Axis, x, y) - comp.DragStart
	if comp.DragRange != 0 {
		comp.Progress = comp.DragBaseProgress + offset/comp.DragRange
	}
	s.apply(id, comp)
}

// EndDrag 松手，根据当前进度决定回弹或完成
func (s *InteractionSystem) EndDrag(id ecs.EntityID) {
	comp, ok := ecs.GetComponent[*components.InteractionComponent](s.entityManager, id)
	if !ok || !comp.Dragging {
		return
	}
	comp.Dragging = false

	end := comp.Animation.EndProgress()
	target := 0.0
	if comp.Progress >= end*comp.CompleteThreshold {
		target = end
	}

	comp.Settling = true
	comp.SettleFrom = comp.Progress
	comp.SettleTarget = target
	comp.SettleElapsed = 0

	log.Printf("[InteractionSystem] Entity %d released at progress %.3f, settling to %.3f", id, comp.Progress, target)

	if comp.SettleDuration <= 0 {
		s.finishSettle(id, comp)
	}
}

// Update 推进所有正在回弹的动画
func (s *InteractionSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith1[*components.InteractionComponent](s.entityManager)

	for _, id := range entities {
		comp, ok := ecs.GetComponent[*components.InteractionComponent](s.entityManager, id)
		if !ok || !comp.Settling || comp.Detached {
			continue
		}

		comp.SettleElapsed += deltaTime
		t := utils.Clamp(comp.SettleElapsed/comp.SettleDuration, 0, 1)
		if t >= 1 {
			s.finishSettle(id, comp)
			continue
		}

		comp.Progress = utils.Lerp(comp.SettleFrom, comp.SettleTarget, utils.EaseOutCubic(t))
		s.apply(id, comp)
	}
}

// HitTest 返回包含 (x, y) 的最上层可交互视图
// 视觉矩形 = 布局矩形 + 平移偏移（忽略缩放和旋转）
func (s *InteractionSystem) HitTest(x, y float64) (ecs.EntityID, bool) {
	entities := ecs.GetEntitiesWith3[
		*components.InteractionComponent,
		*components.LayoutComponent,
		*components.TransformComponent,
	](s.entityManager)

	var (
		hit      ecs.EntityID
		hitDepth float64
		found    bool
	)
	for _, id := range entities {
		layout, _ := ecs.GetComponent[*components.LayoutComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

		left := layout.Left + transform.TranslationX
		top := layout.Top + transform.TranslationY
		if x < left || x >= left+layout.Width || y < top || y >= top+layout.Height {
			continue
		}

		depth := viewDepth(layout, transform)
		if !found || depth > hitDepth || (depth == hitDepth && id > hit) {
			hit, hitDepth, found = id, depth, true
		}
	}
	return hit, found
}

func (s *InteractionSystem) finishSettle(id ecs.EntityID, comp *components.InteractionComponent) {
	comp.Settling = false
	comp.Progress = comp.SettleTarget
	comp.Completed = comp.SettleTarget != 0
	s.apply(id, comp)
}

func (s *InteractionSystem) apply(id ecs.EntityID, comp *components.InteractionComponent) {
	err := comp.Animation.Apply(comp.Progress)
	if err == nil {
		return
	}

	if errors.Is(err, property.ErrElementUnavailable) {
		comp.Detached = true
		comp.Dragging = false
		comp.Settling = false
		log.Printf("[InteractionSystem] Entity %d detached: %v", id, err)
		return
	}
	log.Printf("[InteractionSystem] Warning: entity %d apply failed: %v", id, err)
}

func axisValue(axis components.DragAxis, x, y float64) float64 {
	if axis == components.DragVertical {
		return y
	}
	return x
}
