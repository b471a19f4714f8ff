package components

// PositionComponent 实体中心点位置（画布坐标）
// 服装吸附时直接把 X/Y 设置为投放点的 X/Y
type PositionComponent struct {
	X float64
	Y float64
}
