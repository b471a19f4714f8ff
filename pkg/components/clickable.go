package components

// ClickableComponent 标记实体可以被鼠标点击或拖拽命中
// 定义了可点击区域的尺寸和是否参与命中检测
type ClickableComponent struct {
	Width  float64 // 可点击区域的宽度(像素)
	Height float64 // 可点击区域的高度(像素)
	// BlocksRaycasts 是否阻挡命中检测
	// 服装拖拽期间设为 false，让下方的元素仍能被检测到
	BlocksRaycasts bool
}

// Contains 判断画布坐标 (x, y) 是否落在以 (cx, cy) 为中心的可点击区域内
func (c *ClickableComponent) Contains(cx, cy, x, y float64) bool {
	halfW := c.Width / 2
	halfH := c.Height / 2
	return x >= cx-halfW && x <= cx+halfW && y >= cy-halfH && y <= cy+halfH
}
