// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// ToolType 定义当前激活的工具
// 任意时刻只有一种工具处于激活状态
type ToolType int

const (
	// ToolNone 无工具（默认状态，可以拖拽服装）
	ToolNone ToolType = iota
	// ToolShaver 剃刀：点击可剃除的部位将其移除
	ToolShaver
	// ToolPaintBrush 画笔：点击可上色的区域应用当前颜色
	ToolPaintBrush
)

// String 返回工具类型的字符串表示
func (t ToolType) String() string {
	switch t {
	case ToolNone:
		return "None"
	case ToolShaver:
		return "Shaver"
	case ToolPaintBrush:
		return "PaintBrush"
	default:
		return "Unknown"
	}
}

// LabelKey 返回工具名称在语言目录中的文字键
func (t ToolType) LabelKey() string {
	switch t {
	case ToolShaver:
		return "tool.shaver"
	case ToolPaintBrush:
		return "tool.paintbrush"
	default:
		return "tool.none"
	}
}
