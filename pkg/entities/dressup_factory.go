package entities

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/dressup/pkg/components"
	"github.com/decker502/dressup/pkg/config"
	"github.com/decker502/dressup/pkg/ecs"
)

// 各类实体的基础层级（LayerComponent.Z）
// 服装按创建顺序在 LayerClothing 之上递增，拖拽时再提到最前
const (
	LayerCharacter = 0
	LayerPaintable = 10
	LayerShaveable = 20
	LayerDropPoint = 30
	LayerClothing  = 100
	LayerUI        = 1000
)

// addVisual 添加位置、纯色矩形和层级组件
func addVisual(em *ecs.EntityManager, entity ecs.EntityID, rect config.Rect, c color.NRGBA, z int) {
	ecs.AddComponent(em, entity, &components.PositionComponent{X: rect.X, Y: rect.Y})
	ecs.AddComponent(em, entity, &components.SpriteComponent{
		Width:  rect.Width,
		Height: rect.Height,
		Color:  c,
	})
	ecs.AddComponent(em, entity, &components.LayerComponent{Z: z})
}

// addClickable 添加可点击区域
func addClickable(em *ecs.EntityManager, entity ecs.EntityID, rect config.Rect) {
	ecs.AddComponent(em, entity, &components.ClickableComponent{
		Width:          rect.Width,
		Height:         rect.Height,
		BlocksRaycasts: true,
	})
}

// NewCharacterPart 创建角色身体部位（纯视觉，可作为上色目标）
func NewCharacterPart(em *ecs.EntityManager, cfg config.VisualConfig) ecs.EntityID {
	entity := em.CreateEntity()
	addVisual(em, entity, cfg.Rect, cfg.Color.Or(config.DefaultPaintColor), LayerCharacter)
	return entity
}

// NewDropPoint 创建投放点实体
// highlight 为 false 时投放点没有高亮图片，悬停只改变状态不改变外观
func NewDropPoint(em *ecs.EntityManager, cfg config.DropPointConfig) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{X: cfg.X, Y: cfg.Y})
	ecs.AddComponent(em, entity, &components.LayerComponent{Z: LayerDropPoint})

	dp := &components.DropPointComponent{
		Name:       cfg.ID,
		SnapRadius: cfg.SnapRadiusOf(),
	}
	if cfg.Highlight {
		highlightColor := cfg.HighlightColor.Or(config.DefaultHighlightColor)
		dp.Highlight = &components.HighlightImage{
			Width:          cfg.Width,
			Height:         cfg.Height,
			HighlightColor: highlightColor,
			OriginalColor:  color.NRGBA{},
		}
	} else {
		log.Printf("[DropPoint] %q has no highlight image, hover will not be shown", cfg.ID)
	}
	ecs.AddComponent(em, entity, dp)

	return entity
}

// NewClothing 创建可拖拽服装
//
// 参数：
//   - em: 实体管理器
//   - cfg: 服装配置
//   - dropPoints: 投放点ID到实体的映射，找不到的条目记为 0（搜索时跳过）
//   - order: 服装序号，决定初始层级
//
// 返回：
//   - 服装实体ID
func NewClothing(em *ecs.EntityManager, cfg config.ClothingConfig, dropPoints map[string]ecs.EntityID, order int) ecs.EntityID {
	entity := em.CreateEntity()

	c := cfg.Color.Or(config.DefaultPaintColor)
	addVisual(em, entity, cfg.Rect, c, LayerClothing+order)
	addClickable(em, entity, cfg.Rect)

	candidates := make([]ecs.EntityID, 0, len(cfg.DropPoints))
	for _, ref := range cfg.DropPoints {
		id, ok := dropPoints[ref]
		if !ok {
			log.Printf("[Clothing] Warning: %q references unknown drop point %q", cfg.ID, ref)
		}
		candidates = append(candidates, id)
	}
	if len(candidates) == 0 {
		log.Printf("[Clothing] Warning: %q has no drop points, it will always return to start", cfg.ID)
	}

	ecs.AddComponent(em, entity, &components.DraggableComponent{
		Name:                 cfg.ID,
		State:                components.DragIdle,
		AcceptableDropPoints: candidates,
		ValidDropColor:       cfg.ValidColor.Or(config.DefaultValidDropColor),
		InvalidDropColor:     cfg.InvalidColor.Or(config.DefaultInvalidDropColor),
		StartX:               cfg.X,
		StartY:               cfg.Y,
		OriginalColor:        c,
	})

	if cfg.Paintable {
		ecs.AddComponent(em, entity, &components.PaintableComponent{})
	}

	return entity
}

// NewPaintable 创建可上色区域
// target 为上色目标实体，0 表示给自身上色
func NewPaintable(em *ecs.EntityManager, cfg config.PaintableConfig, target ecs.EntityID) ecs.EntityID {
	entity := em.CreateEntity()
	addVisual(em, entity, cfg.Rect, cfg.Color.Or(config.DefaultPaintColor), LayerPaintable)
	addClickable(em, entity, cfg.Rect)
	ecs.AddComponent(em, entity, &components.PaintableComponent{Target: target})
	return entity
}

// SetPaintTarget 设置可上色区域的上色目标
func SetPaintTarget(em *ecs.EntityManager, paintable, target ecs.EntityID) error {
	comp, ok := ecs.GetComponent[*components.PaintableComponent](em, paintable)
	if !ok {
		return fmt.Errorf("entity %d is not paintable", paintable)
	}
	if !ecs.HasComponent[*components.SpriteComponent](em, target) {
		return fmt.Errorf("paint target %d has no image", target)
	}
	comp.Target = target
	return nil
}

// NewColorSwatch 创建调色板色块
func NewColorSwatch(em *ecs.EntityManager, cfg config.SwatchConfig) ecs.EntityID {
	entity := em.CreateEntity()
	addVisual(em, entity, cfg.Rect, cfg.Color.Or(config.DefaultPaintColor), LayerUI)
	addClickable(em, entity, cfg.Rect)
	ecs.AddComponent(em, entity, &components.ColorSwatchComponent{
		SwatchColor:   cfg.SwatchColor.NRGBA,
		UseImageColor: cfg.UsesImageColor(),
	})
	return entity
}

// NewShaveable 创建可剃除部位
func NewShaveable(em *ecs.EntityManager, cfg config.VisualConfig) ecs.EntityID {
	entity := em.CreateEntity()
	addVisual(em, entity, cfg.Rect, cfg.Color.Or(config.DefaultPaintColor), LayerShaveable)
	addClickable(em, entity, cfg.Rect)
	ecs.AddComponent(em, entity, &components.ShaveableComponent{})
	return entity
}

// NewButton 创建界面按钮
// label 为已翻译的文字，onClick 为点击回调
func NewButton(em *ecs.EntityManager, cfg config.ButtonConfig, label string, onClick func()) ecs.EntityID {
	entity := em.CreateEntity()
	addVisual(em, entity, cfg.Rect, cfg.Color.Or(defaultButtonColor), LayerUI)
	addClickable(em, entity, cfg.Rect)
	ecs.AddComponent(em, entity, &components.ButtonComponent{
		LabelKey: cfg.Label,
		Label:    label,
		State:    components.UINormal,
		OnClick:  onClick,
	})
	return entity
}

// defaultButtonColor 未指定颜色的按钮底色
var defaultButtonColor = color.NRGBA{R: 110, G: 80, B: 60, A: 255}
