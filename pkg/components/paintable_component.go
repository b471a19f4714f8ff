package components

import "github.com/decker502/dressup/pkg/ecs"

// PaintableComponent 标记实体可以被画笔上色
type PaintableComponent struct {
	// Target 上色目标实体；为 0 时给自身上色
	Target ecs.EntityID
}
