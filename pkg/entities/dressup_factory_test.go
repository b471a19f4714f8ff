package entities

import (
	"testing"

	"github.com/decker502/dressup/pkg/components"
	"github.com/decker502/dressup/pkg/config"
	"github.com/decker502/dressup/pkg/ecs"
)

// TestNewDropPoint 测试投放点创建和默认吸附半径
func TestNewDropPoint(t *testing.T) {
	em := ecs.NewEntityManager()
	radius := 60.0

	withHighlight := NewDropPoint(em, config.DropPointConfig{
		ID:        "hat-slot",
		Rect:      config.Rect{X: 400, Y: 120, Width: 80, Height: 40},
		Highlight: true,
	})
	plain := NewDropPoint(em, config.DropPointConfig{
		ID:         "feet-slot",
		Rect:       config.Rect{X: 400, Y: 520},
		SnapRadius: &radius,
	})

	dp, ok := ecs.GetComponent[*components.DropPointComponent](em, withHighlight)
	if !ok {
		t.Fatal("Expected DropPointComponent")
	}
	if dp.SnapRadius != config.DefaultSnapRadius {
		t.Errorf("Expected default snap radius %v, got %v", config.DefaultSnapRadius, dp.SnapRadius)
	}
	if dp.Highlight == nil || dp.Highlight.HighlightColor != config.DefaultHighlightColor {
		t.Error("Expected highlight image with default color")
	}
	if dp.IsHighlighted() {
		t.Error("Expected highlight hidden initially")
	}

	dp, _ = ecs.GetComponent[*components.DropPointComponent](em, plain)
	if dp.SnapRadius != 60 {
		t.Errorf("Expected snap radius 60, got %v", dp.SnapRadius)
	}
	if dp.Highlight != nil {
		t.Error("Expected no highlight image")
	}

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, plain)
	if pos.X != 400 || pos.Y != 520 {
		t.Errorf("Expected (400, 520), got (%.1f, %.1f)", pos.X, pos.Y)
	}
}

// TestNewClothing 测试服装创建和投放点引用解析
func TestNewClothing(t *testing.T) {
	em := ecs.NewEntityManager()
	slot := NewDropPoint(em, config.DropPointConfig{ID: "torso-slot", Rect: config.Rect{X: 400, Y: 260}})

	item := NewClothing(em, config.ClothingConfig{
		ID:         "shirt",
		Rect:       config.Rect{X: 120, Y: 260, Width: 90, Height: 80},
		DropPoints: []string{"missing", "torso-slot"},
		Paintable:  true,
	}, map[string]ecs.EntityID{"torso-slot": slot}, 2)

	drag, ok := ecs.GetComponent[*components.DraggableComponent](em, item)
	if !ok {
		t.Fatal("Expected DraggableComponent")
	}
	if len(drag.AcceptableDropPoints) != 2 || drag.AcceptableDropPoints[0] != 0 || drag.AcceptableDropPoints[1] != slot {
		t.Errorf("Expected [0 %d], got %v", slot, drag.AcceptableDropPoints)
	}
	if drag.State != components.DragIdle {
		t.Errorf("Expected DragIdle, got %v", drag.State)
	}
	if drag.StartX != 120 || drag.StartY != 260 {
		t.Errorf("Expected start (120, 260), got (%.1f, %.1f)", drag.StartX, drag.StartY)
	}
	if drag.ValidDropColor != config.DefaultValidDropColor || drag.InvalidDropColor != config.DefaultInvalidDropColor {
		t.Error("Expected default tint colors")
	}

	layer, _ := ecs.GetComponent[*components.LayerComponent](em, item)
	if layer.Z != LayerClothing+2 {
		t.Errorf("Expected layer %d, got %d", LayerClothing+2, layer.Z)
	}

	if !ecs.HasComponent[*components.PaintableComponent](em, item) {
		t.Error("Expected paintable clothing")
	}

	clickable, _ := ecs.GetComponent[*components.ClickableComponent](em, item)
	if !clickable.BlocksRaycasts || clickable.Width != 90 {
		t.Error("Expected clickable area matching clothing size")
	}
}

// TestSetPaintTarget 测试设置上色目标
func TestSetPaintTarget(t *testing.T) {
	em := ecs.NewEntityManager()
	hair := NewCharacterPart(em, config.VisualConfig{ID: "hair", Rect: config.Rect{X: 400, Y: 80, Width: 120, Height: 40}})
	zone := NewPaintable(em, config.PaintableConfig{ID: "hair-zone", Rect: config.Rect{X: 400, Y: 80, Width: 120, Height: 40}}, 0)

	if err := SetPaintTarget(em, zone, hair); err != nil {
		t.Fatalf("SetPaintTarget failed: %v", err)
	}
	paintable, _ := ecs.GetComponent[*components.PaintableComponent](em, zone)
	if paintable.Target != hair {
		t.Errorf("Expected target %d, got %d", hair, paintable.Target)
	}

	if err := SetPaintTarget(em, hair, zone); err == nil {
		t.Error("Expected error for non-paintable entity")
	}
	if err := SetPaintTarget(em, zone, ecs.EntityID(999)); err == nil {
		t.Error("Expected error for target without image")
	}
}

// TestNewColorSwatch 测试色块颜色来源
func TestNewColorSwatch(t *testing.T) {
	em := ecs.NewEntityManager()
	useImage := false

	fromImage := NewColorSwatch(em, config.SwatchConfig{ID: "red", Rect: config.Rect{Width: 30, Height: 30}})
	fixed := NewColorSwatch(em, config.SwatchConfig{
		ID:            "white",
		Rect:          config.Rect{Width: 30, Height: 30},
		UseImageColor: &useImage,
	})

	swatch, _ := ecs.GetComponent[*components.ColorSwatchComponent](em, fromImage)
	if !swatch.UseImageColor {
		t.Error("Expected swatch to use image color by default")
	}
	swatch, _ = ecs.GetComponent[*components.ColorSwatchComponent](em, fixed)
	if swatch.UseImageColor {
		t.Error("Expected swatch to use its own color")
	}
}

// TestNewShaveableAndButton 测试可剃除部位和按钮
func TestNewShaveableAndButton(t *testing.T) {
	em := ecs.NewEntityManager()

	beard := NewShaveable(em, config.VisualConfig{ID: "beard", Rect: config.Rect{Width: 60, Height: 30}})
	if !ecs.HasComponent[*components.ShaveableComponent](em, beard) {
		t.Error("Expected ShaveableComponent")
	}
	if !ecs.HasComponent[*components.ClickableComponent](em, beard) {
		t.Error("Expected shaveable to be clickable")
	}

	clicked := false
	button := NewButton(em, config.ButtonConfig{
		ID:     "quit",
		Rect:   config.Rect{X: 740, Y: 570, Width: 100, Height: 36},
		Label:  "hud.quit",
		Action: config.ActionQuit,
	}, "Quit", func() { clicked = true })

	comp, ok := ecs.GetComponent[*components.ButtonComponent](em, button)
	if !ok {
		t.Fatal("Expected ButtonComponent")
	}
	if comp.Label != "Quit" || comp.LabelKey != "hud.quit" {
		t.Errorf("Unexpected label %q / %q", comp.Label, comp.LabelKey)
	}
	comp.OnClick()
	if !clicked {
		t.Error("Expected callback to run")
	}

	layer, _ := ecs.GetComponent[*components.LayerComponent](em, button)
	if layer.Z != LayerUI {
		t.Errorf("Expected UI layer, got %d", layer.Z)
	}
}
