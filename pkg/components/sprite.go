package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteComponent 存储实体的视觉表现
// Image 为空时按 Width/Height 绘制纯色矩形
// Color 同时承担"着色"和"上色"两种含义：画笔改的是它，拖拽反馈改的也是它
type SpriteComponent struct {
	Image  *ebiten.Image
	Width  float64
	Height float64
	Color  color.NRGBA
	Hidden bool
}
