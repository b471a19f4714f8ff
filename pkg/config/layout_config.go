package config

import "image/color"

// 布局配置常量
// 本文件定义了窗口尺寸、默认着色、光标偏移等与具体场景无关的参数
// 所有坐标使用"画布坐标系"（相对于参考分辨率左上角），
// 屏幕坐标 = 画布坐标 × 画布缩放系数

// Window Configuration (窗口配置)
const (
	// GameWindowWidth 是参考分辨率宽度（画布坐标）
	GameWindowWidth = 800

	// GameWindowHeight 是参考分辨率高度（画布坐标）
	GameWindowHeight = 600

	// GameWindowTitle 窗口标题
	GameWindowTitle = "Dress Up"
)

// Drag & Drop Configuration (拖放配置)
const (
	// DefaultSnapRadius 默认吸附半径（画布像素）
	// 场景文件未指定 snapRadius 时使用
	DefaultSnapRadius = 100.0

	// DefaultDragDeadZone 按下后指针移动超过此距离才视为拖拽，否则视为点击
	DefaultDragDeadZone = 4.0

	// SnapTweenDuration 吸附/回弹滑动动画时长（秒）
	SnapTweenDuration = 0.18

	// DebugGizmoSegments 调试模式下吸附半径圆的线段数
	DebugGizmoSegments = 32
)

// Cursor Configuration (光标配置)
const (
	// PaintCursorSize 画笔光标（跟随指针的色块）边长
	PaintCursorSize = 22.0

	// PaintCursorOffsetX 画笔光标相对指针的X偏移
	// 让色块出现在指针右下方，不遮挡点击位置
	PaintCursorOffsetX = 14.0

	// PaintCursorOffsetY 画笔光标相对指针的Y偏移
	PaintCursorOffsetY = 14.0

	// ShaverCursorWidth 剃刀光标宽度
	ShaverCursorWidth = 34.0

	// ShaverCursorHeight 剃刀光标高度
	ShaverCursorHeight = 14.0

	// ShaverCursorHotspotX 剃刀刀口相对图片左上角的X偏移
	ShaverCursorHotspotX = 0.0

	// ShaverCursorHotspotY 剃刀刀口相对图片左上角的Y偏移
	ShaverCursorHotspotY = 0.0
)

// HUD Configuration (界面文字配置)
const (
	// HUDFontSize 按钮文字字号
	HUDFontSize = 14.0

	// HUDStatusX 工具状态文字X坐标
	HUDStatusX = 12.0

	// HUDStatusY 工具状态文字Y坐标
	HUDStatusY = 10.0
)

// 默认着色
// 对应 (0.5,1,0.5,1)、(1,0.5,0.5,0.7)、(1,1,0,0.5) 的 8 位非预乘表示
var (
	// DefaultValidDropColor 拖拽物悬停在有效投放点上时的着色
	DefaultValidDropColor = color.NRGBA{R: 128, G: 255, B: 128, A: 255}

	// DefaultInvalidDropColor 拖拽物不在任何有效投放点附近时的着色
	DefaultInvalidDropColor = color.NRGBA{R: 255, G: 128, B: 128, A: 179}

	// DefaultHighlightColor 投放点悬停高亮色
	DefaultHighlightColor = color.NRGBA{R: 255, G: 255, B: 0, A: 128}

	// DefaultPaintColor 画笔默认颜色
	DefaultPaintColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	// DefaultBackgroundColor 场景文件未指定背景色时使用
	DefaultBackgroundColor = color.NRGBA{R: 243, G: 233, B: 220, A: 255}
)
