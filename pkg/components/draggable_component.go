package components

import (
	"image/color"

	"github.com/decker502/dressup/pkg/ecs"
)

// DragState 服装拖拽状态
type DragState int

const (
	// DragIdle 未拖拽
	DragIdle DragState = iota
	// DragDragging 拖拽中
	DragDragging
)

// DraggableComponent 可拖拽的服装
// 位置由 PositionComponent 提供，颜色由 SpriteComponent 提供
//
// 不变量：EquippedDropPoint 非 0 当且仅当该投放点的 Occupant 是本实体
type DraggableComponent struct {
	// Name 布局文件中的ID，用于日志
	Name string

	// State 当前拖拽状态
	State DragState

	// AcceptableDropPoints 候选投放点（按优先顺序）
	// 0 表示缺失的条目，搜索时跳过
	AcceptableDropPoints []ecs.EntityID

	// ValidDropColor 悬停在有效投放点上时的着色
	ValidDropColor color.NRGBA

	// InvalidDropColor 不在任何有效投放点附近时的着色
	InvalidDropColor color.NRGBA

	// StartX, StartY 本次拖拽开始前的位置
	StartX, StartY float64

	// OriginalColor 拖拽开始时记录的颜色，结束时恢复
	OriginalColor color.NRGBA

	// HoveredDropPoint 当前悬停的投放点（同一时刻最多一个）
	HoveredDropPoint ecs.EntityID

	// EquippedDropPoint 当前吸附的投放点（弱引用）
	EquippedDropPoint ecs.EntityID
}

// IsEquipped 是否已吸附到投放点
func (d *DraggableComponent) IsEquipped() bool {
	return d.EquippedDropPoint != 0
}
