package components

// LayerComponent 渲染与命中检测层级
// Z 越大越靠前；拖拽开始时服装被提到最前
type LayerComponent struct {
	Z int
}
