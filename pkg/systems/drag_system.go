package systems

import (
	"log"
	"math"

	"github.com/decker502/dressup/pkg/components"
	"github.com/decker502/dressup/pkg/config"
	"github.com/decker502/dressup/pkg/ecs"
	"github.com/decker502/dressup/pkg/utils"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ToolCoordinator 拖拽系统需要的工具状态接口
// 开始拖拽服装时清除当前工具（拖拽和工具操作互斥）
type ToolCoordinator interface {
	ClearTool()
}

// DragSystem 服装拖拽系统
//
// 此系统负责：
//   - 拖拽开始：记录起点和颜色，提到最前，取消射线阻挡，释放已吸附的投放点，清除当前工具
//   - 拖拽移动：按画布缩放换算位移，寻找最近的有效投放点，边沿触发悬停进入/离开，更新着色
//   - 拖拽结束：恢复颜色和射线阻挡，吸附到未占用的最近投放点或回到起点
//   - 外部重置：ResetToStart / ResetAll
//
// 拖拽结束只有两种结果：位置等于某个投放点且该投放点的占用者是本服装，或者回到拖拽起点
type DragSystem struct {
	entityManager *ecs.EntityManager
	tools         ToolCoordinator
	canvasScale   float64
}

// NewDragSystem 创建拖拽系统
//
// 参数：
//   - em: 实体管理器
//   - tools: 工具状态（可为 nil，此时拖拽开始不清除工具）
//   - canvasScale: 画布缩放系数，屏幕位移除以此值得到画布位移
func NewDragSystem(em *ecs.EntityManager, tools ToolCoordinator, canvasScale float64) *DragSystem {
	if tools == nil {
		log.Printf("[DragSystem] Warning: no tool coordinator, active tool will not be cleared on drag")
	}
	return &DragSystem{
		entityManager: em,
		tools:         tools,
		canvasScale:   utils.EffectiveScale(canvasScale),
	}
}

// draggableParts 取出服装拖拽需要的组件
func (s *DragSystem) draggableParts(itemID ecs.EntityID) (*components.DraggableComponent, *components.PositionComponent, bool) {
	drag, ok := ecs.GetComponent[*components.DraggableComponent](s.entityManager, itemID)
	if !ok {
		return nil, nil, false
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, itemID)
	if !ok {
		log.Printf("[DragSystem] Warning: draggable %q has no position", drag.Name)
		return nil, nil, false
	}
	return drag, pos, true
}

// BeginDrag 开始拖拽服装（Idle → Dragging）
// 返回是否成功进入拖拽状态
func (s *DragSystem) BeginDrag(itemID ecs.EntityID) bool {
	drag, pos, ok := s.draggableParts(itemID)
	if !ok {
		return false
	}
	if drag.State == components.DragDragging {
		return true
	}

	drag.State = components.DragDragging
	drag.StartX, drag.StartY = pos.X, pos.Y
	drag.HoveredDropPoint = 0

	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, itemID); ok {
		drag.OriginalColor = sprite.Color
	}

	// 拖拽中不显示吸附动画偏移
	ecs.RemoveComponent[*components.SnapTweenComponent](s.entityManager, itemID)

	s.bringToFront(itemID)

	if clickable, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, itemID); ok {
		clickable.BlocksRaycasts = false
	}

	if drag.IsEquipped() {
		s.unequip(itemID, drag)
	}

	if s.tools != nil {
		s.tools.ClearTool()
	}

	log.Printf("[DragSystem] Begin drag %q at (%.1f, %.1f)", drag.Name, pos.X, pos.Y)
	return true
}

// MoveDrag 拖拽移动（Dragging → Dragging）
// 参数 screenDX, screenDY 为本帧指针在屏幕上的位移
func (s *DragSystem) MoveDrag(itemID ecs.EntityID, screenDX, screenDY int) {
	drag, pos, ok := s.draggableParts(itemID)
	if !ok || drag.State != components.DragDragging {
		return
	}

	dx, dy := utils.ScreenDeltaToCanvas(screenDX, screenDY, s.canvasScale)
	pos.X += dx
	pos.Y += dy

	nearest := s.FindNearestValidDropPoint(itemID)
	if nearest != drag.HoveredDropPoint {
		// 先离开旧目标再进入新目标，保证同一时刻最多一个投放点高亮
		if dp, ok := ecs.GetComponent[*components.DropPointComponent](s.entityManager, drag.HoveredDropPoint); ok {
			dp.OnHoverExit()
		}
		if dp, ok := ecs.GetComponent[*components.DropPointComponent](s.entityManager, nearest); ok {
			dp.OnHoverEnter()
		}
		drag.HoveredDropPoint = nearest
	}

	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, itemID); ok {
		if nearest != 0 {
			sprite.Color = drag.ValidDropColor
		} else {
			sprite.Color = drag.InvalidDropColor
		}
	}
}

// EndDrag 结束拖拽（Dragging → Idle）
// 返回服装是否吸附到了投放点
func (s *DragSystem) EndDrag(itemID ecs.EntityID) bool {
	drag, pos, ok := s.draggableParts(itemID)
	if !ok || drag.State != components.DragDragging {
		return false
	}
	drag.State = components.DragIdle

	if clickable, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, itemID); ok {
		clickable.BlocksRaycasts = true
	}
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, itemID); ok {
		sprite.Color = drag.OriginalColor
	}

	releaseX, releaseY := pos.X, pos.Y
	snapped := false

	target := s.FindNearestValidDropPoint(itemID)
	dp, hasDP := ecs.GetComponent[*components.DropPointComponent](s.entityManager, target)
	dpPos, hasPos := ecs.GetComponent[*components.PositionComponent](s.entityManager, target)
	if target != 0 && hasDP && hasPos && !dp.IsOccupied {
		pos.X, pos.Y = dpPos.X, dpPos.Y
		dp.Occupy(itemID)
		drag.EquippedDropPoint = target
		snapped = true
		log.Printf("[DragSystem] %q snapped to drop point %q", drag.Name, dp.Name)
	} else {
		pos.X, pos.Y = drag.StartX, drag.StartY
		if target != 0 && hasDP {
			log.Printf("[DragSystem] %q rejected: drop point %q is occupied", drag.Name, dp.Name)
		} else {
			log.Printf("[DragSystem] %q returned to start (%.1f, %.1f)", drag.Name, pos.X, pos.Y)
		}
	}

	if hovered, ok := ecs.GetComponent[*components.DropPointComponent](s.entityManager, drag.HoveredDropPoint); ok {
		hovered.OnHoverExit()
	}
	drag.HoveredDropPoint = 0

	s.startSnapTween(itemID, releaseX-pos.X, releaseY-pos.Y)
	return snapped
}

// FindNearestValidDropPoint 在服装的候选投放点中寻找最近的有效目标
//
// 候选点有效的条件是距离 ≤ 该点的吸附半径；多个有效点时取距离最小者，
// 距离相同时按候选顺序先出现者优先。缺失的条目（0 或实体已不存在）被跳过。
// 没有有效目标时返回 0。
func (s *DragSystem) FindNearestValidDropPoint(itemID ecs.EntityID) ecs.EntityID {
	drag, pos, ok := s.draggableParts(itemID)
	if !ok {
		return 0
	}
	if len(drag.AcceptableDropPoints) == 0 {
		return 0
	}

	var nearest ecs.EntityID
	minDistance := math.Inf(1)

	for _, candidate := range drag.AcceptableDropPoints {
		if candidate == 0 {
			continue
		}
		dp, ok := ecs.GetComponent[*components.DropPointComponent](s.entityManager, candidate)
		if !ok {
			continue
		}
		dpPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, candidate)
		if !ok {
			continue
		}

		distance := utils.Distance(pos.X, pos.Y, dpPos.X, dpPos.Y)
		if distance <= dp.SnapRadius && distance < minDistance {
			minDistance = distance
			nearest = candidate
		}
	}

	return nearest
}

// ResetToStart 服装回到拖拽起点
// 已吸附时先释放投放点，然后恢复位置和颜色
func (s *DragSystem) ResetToStart(itemID ecs.EntityID) {
	drag, pos, ok := s.draggableParts(itemID)
	if !ok {
		return
	}

	if drag.IsEquipped() {
		s.unequip(itemID, drag)
	}
	if hovered, ok := ecs.GetComponent[*components.DropPointComponent](s.entityManager, drag.HoveredDropPoint); ok {
		hovered.OnHoverExit()
	}
	drag.HoveredDropPoint = 0

	if drag.State == components.DragDragging {
		drag.State = components.DragIdle
		if clickable, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, itemID); ok {
			clickable.BlocksRaycasts = true
		}
	}

	oldX, oldY := pos.X, pos.Y
	pos.X, pos.Y = drag.StartX, drag.StartY

	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, itemID); ok {
		sprite.Color = drag.OriginalColor
	}

	s.startSnapTween(itemID, oldX-pos.X, oldY-pos.Y)
}

// ResetAll 所有服装回到起点
func (s *DragSystem) ResetAll() {
	items := ecs.GetEntitiesWith1[*components.DraggableComponent](s.entityManager)
	for _, itemID := range items {
		s.ResetToStart(itemID)
	}
	log.Printf("[DragSystem] Reset %d clothing items", len(items))
}

// unequip 同时清除投放点的占用和服装的回引用
func (s *DragSystem) unequip(itemID ecs.EntityID, drag *components.DraggableComponent) {
	if dp, ok := ecs.GetComponent[*components.DropPointComponent](s.entityManager, drag.EquippedDropPoint); ok {
		if dp.Occupant == itemID {
			dp.Release()
		}
	}
	drag.EquippedDropPoint = 0
}

// bringToFront 把实体的层级提到所有实体之上
func (s *DragSystem) bringToFront(itemID ecs.EntityID) {
	layer, ok := ecs.GetComponent[*components.LayerComponent](s.entityManager, itemID)
	if !ok {
		return
	}

	maxZ := layer.Z
	for _, id := range ecs.GetEntitiesWith1[*components.LayerComponent](s.entityManager) {
		if id == itemID {
			continue
		}
		other, _ := ecs.GetComponent[*components.LayerComponent](s.entityManager, id)
		if other.Z >= maxZ {
			maxZ = other.Z + 1
		}
	}
	layer.Z = maxZ
}

// startSnapTween 为服装添加从 (offsetX, offsetY) 缓动到 0 的视觉偏移
func (s *DragSystem) startSnapTween(itemID ecs.EntityID, offsetX, offsetY float64) {
	if offsetX == 0 && offsetY == 0 {
		ecs.RemoveComponent[*components.SnapTweenComponent](s.entityManager, itemID)
		return
	}
	duration := float32(config.SnapTweenDuration)
	ecs.AddComponent(s.entityManager, itemID, &components.SnapTweenComponent{
		TweenX:  gween.New(float32(offsetX), 0, duration, ease.OutCubic),
		TweenY:  gween.New(float32(offsetY), 0, duration, ease.OutCubic),
		OffsetX: offsetX,
		OffsetY: offsetY,
	})
}
