package animation

import (
	"fmt"
	"sort"

	"github.com/gonewx/propanim/pkg/property"
)

// PropertyDelta 进度从 0 到 1 时，属性从 Start 变化到 Start+Delta
type PropertyDelta struct {
	Start float64
	Delta float64
}

// At 返回给定进度下的属性值（不钳制，允许外推）
func (d PropertyDelta) At(progress float64) float64 {
	return d.Start + d.Delta*progress
}

type entry struct {
	delta    PropertyDelta
	accessor property.Accessor
}

// ProgressAnimation 由外部进度驱动的属性动画
//
// 构建后不可变，不持有定时器；Apply 是进度的纯函数，
// 与之前调用过的进度无关。多个属性之间的写入顺序不确定。
type ProgressAnimation struct {
	endProgress float64
	entries     map[property.ID]entry
}

// Apply 将每个属性写为 Start + Delta*progress
//
// 元素失效时直接返回底层写入错误（可用 errors.Is 匹配
// property.ErrElementUnavailable），驱动方应停止驱动。
func (a *ProgressAnimation) Apply(progress float64) error {
	for id, e := range a.entries {
		if err := e.accessor.Set(e.delta.At(progress)); err != nil {
			return fmt.Errorf("apply %v: %w", id, err)
		}
	}
	return nil
}

// EndProgress 返回动画逻辑完成时的进度值
func (a *ProgressAnimation) EndProgress() float64 {
	return a.endProgress
}

// Len 返回注册的属性数量
func (a *ProgressAnimation) Len() int {
	return len(a.entries)
}

// Delta 返回属性的注册
func (a *ProgressAnimation) Delta(id property.ID) (PropertyDelta, bool) {
	e, ok := a.entries[id]
	return e.delta, ok
}

// IDs 返回已注册的属性（按 ID 排序）
func (a *ProgressAnimation) IDs() []property.ID {
	ids := make([]property.ID, 0, len(a.entries))
	for id := range a.entries {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
