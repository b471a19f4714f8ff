package components

import "image/color"

// ColorSwatchComponent 调色板色块
// 点击后激活画笔工具并使用色块颜色
type ColorSwatchComponent struct {
	// SwatchColor 色块代表的颜色
	SwatchColor color.NRGBA
	// UseImageColor 为 true 时改用同一实体 SpriteComponent 的颜色
	UseImageColor bool
}
