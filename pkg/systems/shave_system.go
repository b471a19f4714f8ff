package systems

import (
	"log"

	"github.com/decker502/dressup/pkg/components"
	"github.com/decker502/dressup/pkg/ecs"
	"github.com/decker502/dressup/pkg/game"
)

// shaveHighlightIntensity 剃须模式下悬停部位的高亮强度
const shaveHighlightIntensity = 0.3

// ShaveSystem 剃须系统
//
// 此系统负责：
//   - 剃须模式下高亮指针悬停的可剃除部位
//   - 剃须模式下点击可剃除部位时永久移除该部位（不可撤销）
type ShaveSystem struct {
	entityManager   *ecs.EntityManager
	shaving         *game.ShavingManager
	lastHighlighted ecs.EntityID // 上一帧高亮的部位实体ID
}

// NewShaveSystem 创建剃须系统
func NewShaveSystem(em *ecs.EntityManager, shaving *game.ShavingManager) *ShaveSystem {
	if shaving == nil {
		log.Printf("[ShaveSystem] Warning: ShavingManager is nil, shaving disabled")
	}
	return &ShaveSystem{
		entityManager: em,
		shaving:       shaving,
	}
}

func (s *ShaveSystem) isActive() bool {
	return s.shaving != nil && s.shaving.IsShavingActive()
}

// UpdateHover 更新悬停高亮
// hovered 为指针下最上层的实体（0 表示没有）
func (s *ShaveSystem) UpdateHover(hovered ecs.EntityID) {
	if !s.isActive() || !ecs.HasComponent[*components.ShaveableComponent](s.entityManager, hovered) {
		hovered = 0
	}
	if hovered == s.lastHighlighted {
		return
	}

	// 移除旧部位的高亮效果
	if s.lastHighlighted != 0 {
		ecs.RemoveComponent[*components.HoverHighlightComponent](s.entityManager, s.lastHighlighted)
	}

	// 添加新部位的高亮效果
	if hovered != 0 {
		ecs.AddComponent(s.entityManager, hovered, &components.HoverHighlightComponent{
			Intensity: shaveHighlightIntensity,
			IsActive:  true,
		})
	}
	s.lastHighlighted = hovered
}

// HandleClick 处理可剃除部位的点击
// 剃须模式未激活时不做任何事；返回部位是否被移除
func (s *ShaveSystem) HandleClick(entityID ecs.EntityID) bool {
	if !s.isActive() {
		return false
	}
	if !ecs.HasComponent[*components.ShaveableComponent](s.entityManager, entityID) {
		return false
	}
	if !s.entityManager.IsAlive(entityID) {
		return false
	}

	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID); ok {
		log.Printf("[ShaveSystem] 剃除部位: 实体=%d, 位置=(%.1f, %.1f)", entityID, pos.X, pos.Y)
	}

	s.entityManager.DestroyEntity(entityID)
	if s.lastHighlighted == entityID {
		s.lastHighlighted = 0
	}
	return true
}
