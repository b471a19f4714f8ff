package components

// UIState represents the current state of a UI element (e.g., button).
type UIState int

const (
	// UINormal indicates the UI element is in its default state.
	UINormal UIState = iota
	// UIHovered indicates the mouse cursor is hovering over the UI element.
	UIHovered
	// UIClicked indicates the UI element is being pressed.
	UIClicked
)

// ButtonComponent 界面按钮
// 位置由 PositionComponent 提供，尺寸和颜色由 SpriteComponent 提供
type ButtonComponent struct {
	// LabelKey 语言目录中的文字键
	LabelKey string
	// Label 已翻译的文字（场景创建时填充）
	Label string
	// State 当前交互状态
	State UIState
	// OnClick 点击回调
	OnClick func()
}
