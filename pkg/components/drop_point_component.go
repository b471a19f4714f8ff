package components

import (
	"image/color"

	"github.com/decker502/dressup/pkg/ecs"
)

// HighlightImage 投放点的可选高亮图片
// 默认隐藏，服装悬停时显示为 HighlightColor
type HighlightImage struct {
	Width          float64
	Height         float64
	Color          color.NRGBA // 当前显示颜色
	HighlightColor color.NRGBA // 悬停时的颜色
	OriginalColor  color.NRGBA // 创建时的颜色，隐藏时恢复
	Enabled        bool
}

// DropPointComponent 投放点（服装可以吸附的固定位置）
// 位置由同一实体的 PositionComponent 提供
//
// 不变量：IsOccupied 为 true 时高亮一定处于隐藏状态
type DropPointComponent struct {
	// Name 布局文件中的ID，用于日志
	Name string

	// SnapRadius 吸附半径（画布像素，≥0）
	SnapRadius float64

	// IsOccupied 是否已被服装占用
	IsOccupied bool

	// Occupant 占用者实体ID（弱引用，未占用时为 0）
	Occupant ecs.EntityID

	// Highlight 可选的高亮图片，为 nil 时悬停不产生视觉变化
	Highlight *HighlightImage
}

// OnHoverEnter 服装开始悬停在此投放点
// 已占用的投放点不会显示高亮
func (d *DropPointComponent) OnHoverEnter() {
	if d.Highlight != nil && !d.IsOccupied {
		d.Highlight.Enabled = true
		d.Highlight.Color = d.Highlight.HighlightColor
	}
}

// OnHoverExit 服装离开此投放点（幂等）
func (d *DropPointComponent) OnHoverExit() {
	if d.Highlight != nil {
		d.Highlight.Enabled = false
		d.Highlight.Color = d.Highlight.OriginalColor
	}
}

// Occupy 服装吸附到此投放点
// 调用方需要先检查 IsOccupied；重复占用会直接覆盖占用者
func (d *DropPointComponent) Occupy(item ecs.EntityID) {
	d.IsOccupied = true
	d.Occupant = item
	d.OnHoverExit()
}

// Release 释放投放点（幂等）
func (d *DropPointComponent) Release() {
	d.IsOccupied = false
	d.Occupant = 0
}

// IsHighlighted 高亮图片当前是否可见
func (d *DropPointComponent) IsHighlighted() bool {
	return d.Highlight != nil && d.Highlight.Enabled
}
