package systems

import (
	"image/color"

	"github.com/decker502/dressup/pkg/components"
	"github.com/decker502/dressup/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// 测试共用的颜色
var (
	testItemColor    = color.NRGBA{R: 200, G: 100, B: 50, A: 255}
	testValidColor   = color.NRGBA{R: 150, G: 255, B: 150, A: 255}
	testInvalidColor = color.NRGBA{R: 255, G: 150, B: 150, A: 255}
)

// mockToolCoordinator 记录 ClearTool 调用次数
type mockToolCoordinator struct {
	clears int
}

func (m *mockToolCoordinator) ClearTool() {
	m.clears++
}

// createTestDropPoint 创建测试用投放点（带高亮图片）
func createTestDropPoint(em *ecs.EntityManager, name string, x, y, radius float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.LayerComponent{Z: 30})
	ecs.AddComponent(em, id, &components.DropPointComponent{
		Name:       name,
		SnapRadius: radius,
		Highlight: &components.HighlightImage{
			Width:          40,
			Height:         40,
			HighlightColor: color.NRGBA{R: 255, G: 255, A: 120},
		},
	})
	return id
}

// createTestItem 创建测试用服装
func createTestItem(em *ecs.EntityManager, name string, x, y float64, dropPoints ...ecs.EntityID) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.SpriteComponent{Width: 40, Height: 40, Color: testItemColor})
	ecs.AddComponent(em, id, &components.LayerComponent{Z: 100})
	ecs.AddComponent(em, id, &components.ClickableComponent{Width: 40, Height: 40, BlocksRaycasts: true})
	ecs.AddComponent(em, id, &components.DraggableComponent{
		Name:                 name,
		State:                components.DragIdle,
		AcceptableDropPoints: dropPoints,
		ValidDropColor:       testValidColor,
		InvalidDropColor:     testInvalidColor,
		StartX:               x,
		StartY:               y,
		OriginalColor:        testItemColor,
	})
	return id
}

// createTestBox 创建带可点击区域的纯色矩形
func createTestBox(em *ecs.EntityManager, x, y, w, h float64, z int) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.SpriteComponent{Width: w, Height: h, Color: color.NRGBA{A: 255}})
	ecs.AddComponent(em, id, &components.LayerComponent{Z: z})
	ecs.AddComponent(em, id, &components.ClickableComponent{Width: w, Height: h, BlocksRaycasts: true})
	return id
}

// newTestCursorSystem 创建不操作硬件光标的光标系统，记录模式切换
func newTestCursorSystem() (*CursorSystem, *[]ebiten.CursorModeType) {
	modes := &[]ebiten.CursorModeType{}
	s := &CursorSystem{
		lastCursorMode: ebiten.CursorModeVisible,
		paintColor:     color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	}
	s.setCursorMode = func(mode ebiten.CursorModeType) {
		*modes = append(*modes, mode)
	}
	return s, modes
}

func getDraggable(em *ecs.EntityManager, id ecs.EntityID) *components.DraggableComponent {
	drag, _ := ecs.GetComponent[*components.DraggableComponent](em, id)
	return drag
}

func getDropPoint(em *ecs.EntityManager, id ecs.EntityID) *components.DropPointComponent {
	dp, _ := ecs.GetComponent[*components.DropPointComponent](em, id)
	return dp
}

func getPosition(em *ecs.EntityManager, id ecs.EntityID) *components.PositionComponent {
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	return pos
}

func getSprite(em *ecs.EntityManager, id ecs.EntityID) *components.SpriteComponent {
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
	return sprite
}
