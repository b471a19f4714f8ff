package components

import "github.com/tanema/gween"

// SnapTweenComponent 吸附/回弹滑动动画
//
// 逻辑位置（PositionComponent）在拖拽结束时立即确定，
// 此组件只负责视觉偏移：偏移量从"旧位置 - 新位置"缓动到 0。
// 渲染时绘制位置 = Position + Offset
type SnapTweenComponent struct {
	TweenX *gween.Tween
	TweenY *gween.Tween

	// OffsetX, OffsetY 当前视觉偏移
	OffsetX float64
	OffsetY float64
}
