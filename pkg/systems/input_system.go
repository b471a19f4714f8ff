package systems

import (
	"log"

	"github.com/decker502/dressup/pkg/components"
	"github.com/decker502/dressup/pkg/ecs"
	"github.com/decker502/dressup/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSystem 处理所有用户输入，把指针事件分发给各交互系统
//
// 分发规则：
//   - 悬停：剃须高亮、按钮状态
//   - 按下后超过死区：若按下的是服装则开始拖拽
//   - 拖拽移动 / 结束：交给 DragSystem
//   - 点击（按下和释放命中同一实体）：按钮 > 色块 > 可剃除部位 > 可上色区域
//
// 命中检测取层级最高的实体，拖拽中的服装不阻挡射线
type InputSystem struct {
	entityManager *ecs.EntityManager
	dragManager   *utils.DragManager
	dragSystem    *DragSystem
	paintSystem   *PaintSystem
	shaveSystem   *ShaveSystem
	buttonSystem  *ButtonSystem
	cursorSystem  *CursorSystem
	tools         ToolCoordinator
	canvasScale   float64

	pressedEntity  ecs.EntityID // 按下时命中的实体
	draggingEntity ecs.EntityID // 正在拖拽的服装
}

// NewInputSystem 创建输入系统
// cursorSystem 和 tools 可为 nil
func NewInputSystem(
	em *ecs.EntityManager,
	dm *utils.DragManager,
	drag *DragSystem,
	paint *PaintSystem,
	shave *ShaveSystem,
	buttons *ButtonSystem,
	cursor *CursorSystem,
	tools ToolCoordinator,
	canvasScale float64,
) *InputSystem {
	return &InputSystem{
		entityManager: em,
		dragManager:   dm,
		dragSystem:    drag,
		paintSystem:   paint,
		shaveSystem:   shave,
		buttonSystem:  buttons,
		cursorSystem:  cursor,
		tools:         tools,
		canvasScale:   utils.EffectiveScale(canvasScale),
	}
}

// Update 读取本帧输入并分发
func (s *InputSystem) Update(deltaTime float64) {
	// ESC 放下当前工具
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && s.tools != nil {
		s.tools.ClearTool()
	}

	s.HandlePointerEvent(s.dragManager.Update())
}

// HandlePointerEvent 处理一帧的指针事件
func (s *InputSystem) HandlePointerEvent(ev utils.PointerEvent) {
	x, y := utils.ScreenToCanvas(ev.X, ev.Y, s.canvasScale)
	if s.cursorSystem != nil {
		s.cursorSystem.SetPointer(x, y)
	}

	switch ev.Kind {
	case utils.PointerDown:
		s.pressedEntity = s.HitTest(x, y)

	case utils.PointerDragStart:
		if ecs.HasComponent[*components.DraggableComponent](s.entityManager, s.pressedEntity) &&
			s.dragSystem.BeginDrag(s.pressedEntity) {
			s.draggingEntity = s.pressedEntity
			s.dragSystem.MoveDrag(s.draggingEntity, ev.DX, ev.DY)
		}

	case utils.PointerDragMove:
		if s.draggingEntity != 0 {
			s.dragSystem.MoveDrag(s.draggingEntity, ev.DX, ev.DY)
		}

	case utils.PointerDragEnd:
		if s.draggingEntity != 0 {
			s.dragSystem.MoveDrag(s.draggingEntity, ev.DX, ev.DY)
			s.dragSystem.EndDrag(s.draggingEntity)
		}
		s.draggingEntity = 0
		s.pressedEntity = 0

	case utils.PointerClick:
		target := s.HitTest(x, y)
		if target != 0 && target == s.pressedEntity {
			s.dispatchClick(target)
		}
		s.pressedEntity = 0
	}

	// 拖拽期间不更新悬停反馈
	hovered := ecs.EntityID(0)
	if s.draggingEntity == 0 {
		hovered = s.HitTest(x, y)
	}
	if s.shaveSystem != nil {
		s.shaveSystem.UpdateHover(hovered)
	}
	if s.buttonSystem != nil {
		pressed := s.dragManager != nil && s.dragManager.GetState() != utils.DragStateNone
		s.buttonSystem.UpdateHover(hovered, pressed)
	}
}

// IsDragging 是否有服装正在被拖拽
func (s *InputSystem) IsDragging() bool {
	return s.draggingEntity != 0
}

// dispatchClick 把点击交给对应的系统
func (s *InputSystem) dispatchClick(target ecs.EntityID) {
	if s.buttonSystem != nil && s.buttonSystem.HandleClick(target) {
		return
	}
	if s.paintSystem != nil && s.paintSystem.HandleSwatchClick(target) {
		return
	}
	if s.shaveSystem != nil && s.shaveSystem.HandleClick(target) {
		return
	}
	if s.paintSystem != nil && ecs.HasComponent[*components.PaintableComponent](s.entityManager, target) {
		if !s.paintSystem.HandleClick(target) {
			log.Printf("[InputSystem] Click on paintable %d ignored: paint brush not active", target)
		}
	}
}

// HitTest 返回画布坐标 (x, y) 处层级最高的可点击实体，没有时返回 0
// 层级相同时后创建的实体优先（与绘制顺序一致）
func (s *InputSystem) HitTest(x, y float64) ecs.EntityID {
	var hit ecs.EntityID
	hitZ := 0

	for _, id := range ecs.GetEntitiesWith2[*components.ClickableComponent, *components.PositionComponent](s.entityManager) {
		if !s.entityManager.IsAlive(id) {
			continue
		}
		clickable, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)
		if !clickable.BlocksRaycasts {
			continue
		}
		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok && sprite.Hidden {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !clickable.Contains(pos.X, pos.Y, x, y) {
			continue
		}

		z := 0
		if layer, ok := ecs.GetComponent[*components.LayerComponent](s.entityManager, id); ok {
			z = layer.Z
		}
		if hit == 0 || z >= hitZ {
			hit = id
			hitZ = z
		}
	}

	return hit
}
