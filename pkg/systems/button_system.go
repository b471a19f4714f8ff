package systems

import (
	"github.com/decker502/dressup/pkg/components"
	"github.com/decker502/dressup/pkg/ecs"
)

// ButtonSystem 按钮交互系统
// 负责处理按钮的悬停、按下和点击
//
// 职责：
//   - 根据指针下的实体更新按钮状态（UINormal / UIHovered / UIClicked）
//   - 点击（按下和释放都在同一按钮内）时触发 OnClick 回调
//
// 命中检测由 InputSystem 统一完成，本系统只接收结果
type ButtonSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
	}
}

// UpdateHover 更新所有按钮的状态
// hovered 为指针下最上层的实体，pressed 表示指针是否按下
func (s *ButtonSystem) UpdateHover(hovered ecs.EntityID, pressed bool) {
	for _, entityID := range ecs.GetEntitiesWith1[*components.ButtonComponent](s.entityManager) {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)

		switch {
		case entityID != hovered:
			button.State = components.UINormal
		case pressed:
			button.State = components.UIClicked
		default:
			button.State = components.UIHovered
		}
	}
}

// HandleClick 触发按钮回调
// 返回 entityID 是否为按钮
func (s *ButtonSystem) HandleClick(entityID ecs.EntityID) bool {
	button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
	if !ok {
		return false
	}
	if button.OnClick != nil {
		button.OnClick()
	}
	button.State = components.UIHovered
	return true
}
