package systems

import (
	"github.com/decker502/dressup/pkg/components"
	"github.com/decker502/dressup/pkg/ecs"
)

// SnapAnimationSystem 推进服装吸附/回弹的滑动动画
// 动画结束后移除 SnapTweenComponent
type SnapAnimationSystem struct {
	entityManager *ecs.EntityManager
}

// NewSnapAnimationSystem 创建吸附动画系统
func NewSnapAnimationSystem(em *ecs.EntityManager) *SnapAnimationSystem {
	return &SnapAnimationSystem{entityManager: em}
}

// Update 推进所有吸附动画
func (s *SnapAnimationSystem) Update(deltaTime float64) {
	dt := float32(deltaTime)
	for _, id := range ecs.GetEntitiesWith1[*components.SnapTweenComponent](s.entityManager) {
		tween, _ := ecs.GetComponent[*components.SnapTweenComponent](s.entityManager, id)

		doneX, doneY := true, true
		if tween.TweenX != nil {
			x, finished := tween.TweenX.Update(dt)
			tween.OffsetX = float64(x)
			doneX = finished
		}
		if tween.TweenY != nil {
			y, finished := tween.TweenY.Update(dt)
			tween.OffsetY = float64(y)
			doneY = finished
		}

		if doneX && doneY {
			ecs.RemoveComponent[*components.SnapTweenComponent](s.entityManager, id)
		}
	}
}
