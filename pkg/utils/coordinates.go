// Package utils 提供游戏开发中常用的工具函数
//
// coordinates.go 提供坐标转换工具，统一屏幕坐标和画布坐标之间的换算。
//
// # 坐标系统概述
//
// 本项目使用以下坐标系统：
//   - **画布坐标**：相对于参考画布左上角（场景布局文件中的尺寸，默认 800x600）
//   - **屏幕坐标**：相对于游戏窗口左上角，等于画布坐标乘以画布缩放系数
//   - **实体锚点**：PositionComponent.X/Y 代表实体的视觉中心
//   - **图片锚点**：左上角（Ebiten 默认行为）
//
// # 核心转换公式
//
//	canvasX = screenX / scale
//	canvasY = screenY / scale
//
// 拖拽位移同样除以缩放系数，保证物体始终跟随指针，
// 吸附距离也在画布坐标中计算，与窗口大小无关。
package utils

import "math"

// EffectiveScale 返回有效的缩放系数，非正数按 1 处理
func EffectiveScale(scale float64) float64 {
	if scale <= 0 {
		return 1
	}
	return scale
}

// ScreenToCanvas 将屏幕坐标转换为画布坐标
//
// # 参数
//
//   - screenX, screenY: 指针的屏幕坐标
//   - scale: 画布缩放系数
//
// # 返回值
//
//   - canvasX, canvasY: 画布坐标
func ScreenToCanvas(screenX, screenY int, scale float64) (canvasX, canvasY float64) {
	s := EffectiveScale(scale)
	return float64(screenX) / s, float64(screenY) / s
}

// ScreenDeltaToCanvas 将屏幕上的位移转换为画布上的位移
func ScreenDeltaToCanvas(dx, dy int, scale float64) (float64, float64) {
	s := EffectiveScale(scale)
	return float64(dx) / s, float64(dy) / s
}

// CanvasToScreen 将画布坐标转换为屏幕坐标
func CanvasToScreen(canvasX, canvasY float64, scale float64) (screenX, screenY float64) {
	s := EffectiveScale(scale)
	return canvasX * s, canvasY * s
}

// Distance 两点间的欧氏距离
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// GetRenderOrigin 由中心点和尺寸计算左上角绘制原点
func GetRenderOrigin(centerX, centerY, width, height float64) (left, top float64) {
	return centerX - width/2, centerY - height/2
}
