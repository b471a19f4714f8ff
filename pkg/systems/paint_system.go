package systems

import (
	"image/color"
	"log"

	"github.com/decker502/dressup/pkg/components"
	"github.com/decker502/dressup/pkg/config"
	"github.com/decker502/dressup/pkg/ecs"
	"github.com/decker502/dressup/pkg/game"
	"github.com/decker502/dressup/pkg/types"
)

// PaintSystem 上色系统
//
// 此系统负责：
//   - 点击可上色区域时，若当前工具为画笔则应用画笔颜色
//   - 点击调色板色块时，激活画笔并使用色块颜色（覆盖任何其他工具）
//   - ApplyColor 直接上色，不受工具状态限制
type PaintSystem struct {
	entityManager *ecs.EntityManager
	tools         *game.ToolManager
}

// NewPaintSystem 创建上色系统
func NewPaintSystem(em *ecs.EntityManager, tools *game.ToolManager) *PaintSystem {
	if tools == nil {
		log.Printf("[PaintSystem] Warning: ToolManager is nil, painting disabled")
	}
	return &PaintSystem{
		entityManager: em,
		tools:         tools,
	}
}

// HandleClick 处理可上色区域的点击
// 返回是否实际上色
func (s *PaintSystem) HandleClick(entityID ecs.EntityID) bool {
	if s.tools == nil {
		return false
	}
	if s.tools.CurrentTool() != types.ToolPaintBrush {
		return false
	}
	return s.ApplyColor(entityID, s.tools.CurrentPaintColor())
}

// HandleSwatchClick 处理调色板色块的点击
func (s *PaintSystem) HandleSwatchClick(swatchID ecs.EntityID) bool {
	swatch, ok := ecs.GetComponent[*components.ColorSwatchComponent](s.entityManager, swatchID)
	if !ok {
		return false
	}
	if s.tools == nil {
		log.Printf("[PaintSystem] Warning: swatch clicked but ToolManager is nil")
		return false
	}

	c := swatch.SwatchColor
	if swatch.UseImageColor {
		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, swatchID); ok {
			c = sprite.Color
		}
	}
	s.tools.SetPaintBrush(c)
	return true
}

// ApplyColor 给可上色区域的目标上色
// 目标为 PaintableComponent.Target，未设置时为自身
func (s *PaintSystem) ApplyColor(entityID ecs.EntityID, c color.NRGBA) bool {
	sprite, ok := s.targetSprite(entityID)
	if !ok {
		log.Printf("[PaintSystem] Warning: entity %d has no paint target image", entityID)
		return false
	}
	sprite.Color = c

	// 服装的回滚颜色同步为新颜色，避免重置或下次拖拽结束时被还原
	target := s.resolveTarget(entityID)
	if drag, ok := ecs.GetComponent[*components.DraggableComponent](s.entityManager, target); ok && drag.State == components.DragIdle {
		drag.OriginalColor = c
	}
	return true
}

// GetCurrentColor 返回目标当前颜色，没有视觉元素时返回白色
func (s *PaintSystem) GetCurrentColor(entityID ecs.EntityID) color.NRGBA {
	sprite, ok := s.targetSprite(entityID)
	if !ok {
		return config.DefaultPaintColor
	}
	return sprite.Color
}

func (s *PaintSystem) resolveTarget(entityID ecs.EntityID) ecs.EntityID {
	if paintable, ok := ecs.GetComponent[*components.PaintableComponent](s.entityManager, entityID); ok && paintable.Target != 0 {
		return paintable.Target
	}
	return entityID
}

func (s *PaintSystem) targetSprite(entityID ecs.EntityID) (*components.SpriteComponent, bool) {
	return ecs.GetComponent[*components.SpriteComponent](s.entityManager, s.resolveTarget(entityID))
}
