package systems

import (
	"testing"

	"github.com/decker502/dressup/pkg/components"
	"github.com/decker502/dressup/pkg/ecs"
	"github.com/decker502/dressup/pkg/game"
	"github.com/decker502/dressup/pkg/types"
	"github.com/decker502/dressup/pkg/utils"
)

// testInputRig 输入系统测试环境
type testInputRig struct {
	em      *ecs.EntityManager
	tools   *game.ToolManager
	shaving *game.ShavingManager
	cursor  *CursorSystem
	drag    *DragSystem
	input   *InputSystem
}

// createTestInputSystem 创建完整接线的输入系统
func createTestInputSystem(scale float64) *testInputRig {
	em := ecs.NewEntityManager()
	tools := game.NewToolManager()
	shaving := game.NewShavingManager(tools)
	cursor, _ := newTestCursorSystem()
	tools.SetCursorPresenter(cursor)

	drag := NewDragSystem(em, tools, scale)
	input := NewInputSystem(
		em,
		utils.NewDragManager(4),
		drag,
		NewPaintSystem(em, tools),
		NewShaveSystem(em, shaving),
		NewButtonSystem(em),
		cursor,
		tools,
		scale,
	)
	return &testInputRig{em: em, tools: tools, shaving: shaving, cursor: cursor, drag: drag, input: input}
}

// click 在屏幕坐标 (x, y) 处按下并释放
func (r *testInputRig) click(x, y int) {
	r.input.HandlePointerEvent(utils.PointerEvent{Kind: utils.PointerDown, X: x, Y: y, StartX: x, StartY: y})
	r.input.HandlePointerEvent(utils.PointerEvent{Kind: utils.PointerClick, X: x, Y: y, StartX: x, StartY: y})
}

// TestInputSystem_HitTest 测试命中检测取最上层实体
func TestInputSystem_HitTest(t *testing.T) {
	r := createTestInputSystem(1)
	low := createTestBox(r.em, 100, 100, 100, 100, 10)
	high := createTestBox(r.em, 120, 100, 100, 100, 20)

	if got := r.input.HitTest(110, 100); got != high {
		t.Errorf("Expected higher layer %d, got %d", high, got)
	}
	if got := r.input.HitTest(60, 100); got != low {
		t.Errorf("Expected %d outside the upper box, got %d", low, got)
	}
	if got := r.input.HitTest(500, 500); got != 0 {
		t.Errorf("Expected no hit, got %d", got)
	}

	// 同层级时后创建的优先
	same := createTestBox(r.em, 120, 100, 100, 100, 20)
	if got := r.input.HitTest(110, 100); got != same {
		t.Errorf("Expected later entity %d on tie, got %d", same, got)
	}

	// 隐藏和不阻挡射线的实体被跳过
	getSprite(r.em, same).Hidden = true
	clickable, _ := ecs.GetComponent[*components.ClickableComponent](r.em, high)
	clickable.BlocksRaycasts = false
	if got := r.input.HitTest(110, 100); got != low {
		t.Errorf("Expected %d after hiding upper boxes, got %d", low, got)
	}
}

// TestInputSystem_DragAndSnap 测试完整拖拽流程（含画布缩放）
func TestInputSystem_DragAndSnap(t *testing.T) {
	r := createTestInputSystem(2)
	dp := createTestDropPoint(r.em, "slot", 300, 100, 50)
	item := createTestItem(r.em, "shirt", 100, 100, dp)
	r.tools.SetShaver()

	r.input.HandlePointerEvent(utils.PointerEvent{Kind: utils.PointerDown, X: 200, Y: 200, StartX: 200, StartY: 200})
	r.input.HandlePointerEvent(utils.PointerEvent{Kind: utils.PointerDragStart, X: 210, Y: 200, StartX: 200, StartY: 200, DX: 10})

	if !r.input.IsDragging() {
		t.Fatal("Expected drag to start")
	}
	if r.tools.CurrentTool() != types.ToolNone {
		t.Errorf("Expected drag to clear active tool, got %v", r.tools.CurrentTool())
	}
	if pos := getPosition(r.em, item); pos.X != 105 {
		t.Errorf("Expected canvas X 105 after scaled move, got %.1f", pos.X)
	}

	r.input.HandlePointerEvent(utils.PointerEvent{Kind: utils.PointerDragMove, X: 600, Y: 200, StartX: 200, StartY: 200, DX: 390})
	if !getDropPoint(r.em, dp).IsHighlighted() {
		t.Error("Expected drop point highlighted while hovering")
	}

	r.input.HandlePointerEvent(utils.PointerEvent{Kind: utils.PointerDragEnd, X: 600, Y: 200, StartX: 200, StartY: 200})

	if r.input.IsDragging() {
		t.Error("Expected drag to end")
	}
	if getDropPoint(r.em, dp).Occupant != item {
		t.Error("Expected item to occupy drop point")
	}
	if pos := getPosition(r.em, item); pos.X != 300 || pos.Y != 100 {
		t.Errorf("Expected item at drop point, got (%.1f, %.1f)", pos.X, pos.Y)
	}
}

// TestInputSystem_DragOnNonDraggable 测试按在非服装上拖动不产生拖拽
func TestInputSystem_DragOnNonDraggable(t *testing.T) {
	r := createTestInputSystem(1)
	createTestBox(r.em, 100, 100, 50, 50, 0)

	r.input.HandlePointerEvent(utils.PointerEvent{Kind: utils.PointerDown, X: 100, Y: 100})
	r.input.HandlePointerEvent(utils.PointerEvent{Kind: utils.PointerDragStart, X: 120, Y: 100, DX: 20})

	if r.input.IsDragging() {
		t.Error("Expected no drag on non-draggable entity")
	}
}

// TestInputSystem_ClickRouting 测试点击分发到按钮、色块、可剃除部位和可上色区域
func TestInputSystem_ClickRouting(t *testing.T) {
	r := createTestInputSystem(1)

	clicks := 0
	createTestButton(r.em, 700, 500, func() { clicks++ })
	swatch := createTestSwatch(r.em, paintRed, paintRed, false)
	area := createTestPaintable(r.em, 0)
	beard := createTestShaveable(r.em, 400, 300)

	r.click(700, 500)
	if clicks != 1 {
		t.Errorf("Expected button callback once, got %d", clicks)
	}

	// 没有画笔时点击可上色区域无效
	r.click(100, 100)
	if got := getSprite(r.em, area).Color; got == paintRed {
		t.Error("Expected paintable unchanged without paint brush")
	}

	pos := getPosition(r.em, swatch)
	r.click(int(pos.X), int(pos.Y))
	if r.tools.CurrentTool() != types.ToolPaintBrush {
		t.Fatalf("Expected paint brush after swatch click, got %v", r.tools.CurrentTool())
	}

	r.click(100, 100)
	if got := getSprite(r.em, area).Color; got != paintRed {
		t.Errorf("Expected paintable painted %v, got %v", paintRed, got)
	}

	// 剃须模式下点击部位移除
	r.click(400, 300)
	r.em.RemoveMarkedEntities()
	if !r.em.IsAlive(beard) {
		t.Fatal("Expected beard to stay while paint brush is active")
	}
	r.shaving.ToggleShavingMode()
	r.click(400, 300)
	r.em.RemoveMarkedEntities()
	if r.em.IsAlive(beard) {
		t.Error("Expected beard shaved")
	}
}

// TestInputSystem_ClickRequiresSameTarget 测试按下和释放不在同一实体时不触发点击
func TestInputSystem_ClickRequiresSameTarget(t *testing.T) {
	r := createTestInputSystem(1)

	clicks := 0
	createTestButton(r.em, 100, 100, func() { clicks++ })
	createTestButton(r.em, 100, 300, func() { clicks++ })

	r.input.HandlePointerEvent(utils.PointerEvent{Kind: utils.PointerDown, X: 100, Y: 100})
	r.input.HandlePointerEvent(utils.PointerEvent{Kind: utils.PointerClick, X: 100, Y: 300})

	if clicks != 0 {
		t.Errorf("Expected no click, got %d", clicks)
	}
}

// TestInputSystem_UpdatesPointer 测试指针位置换算到画布坐标
func TestInputSystem_UpdatesPointer(t *testing.T) {
	r := createTestInputSystem(2)

	r.input.HandlePointerEvent(utils.PointerEvent{Kind: utils.PointerIdle, X: 100, Y: 60})

	if r.cursor.pointerX != 50 || r.cursor.pointerY != 30 {
		t.Errorf("Expected canvas pointer (50, 30), got (%.1f, %.1f)", r.cursor.pointerX, r.cursor.pointerY)
	}
}
