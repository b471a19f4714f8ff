// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// PointerSample 某一帧的指针采样
// 统一鼠标左键和触摸输入
type PointerSample struct {
	// Pressed 指针是否处于按下状态
	Pressed bool
	// X, Y 指针位置（屏幕坐标）
	X, Y int
	// IsTouch 是否来自触摸输入
	IsTouch bool
}

// 保存最后一次触摸位置（用于触摸释放时获取位置）
var (
	lastTouchX, lastTouchY int
	lastSampleWasTouch     bool
)

// SamplePointer 读取当前帧的指针状态
// 优先检测触摸，触摸刚释放的那一帧返回最后的触摸位置
func SamplePointer() PointerSample {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		lastTouchX, lastTouchY = x, y
		lastSampleWasTouch = true
		return PointerSample{Pressed: true, X: x, Y: y, IsTouch: true}
	}

	mousePressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if lastSampleWasTouch && !mousePressed {
		lastSampleWasTouch = false
		return PointerSample{X: lastTouchX, Y: lastTouchY, IsTouch: true}
	}
	lastSampleWasTouch = false

	x, y := ebiten.CursorPosition()
	return PointerSample{Pressed: mousePressed, X: x, Y: y}
}

// ============================================================================
// 拖拽状态管理器 - 区分点击和拖拽，并给出逐帧位移
// ============================================================================

// DragState 拖拽状态
type DragState int

const (
	// DragStateNone 无拖拽
	DragStateNone DragState = iota
	// DragStatePressed 已按下，移动距离尚未超过死区
	DragStatePressed
	// DragStateDragging 拖拽中（按住移动）
	DragStateDragging
)

// PointerEventKind 本帧产生的指针事件
type PointerEventKind int

const (
	// PointerIdle 无事件，仅更新位置（用于悬停）
	PointerIdle PointerEventKind = iota
	// PointerDown 刚按下
	PointerDown
	// PointerDragStart 移动超过死区，拖拽开始
	PointerDragStart
	// PointerDragMove 拖拽中移动
	PointerDragMove
	// PointerDragEnd 拖拽后释放
	PointerDragEnd
	// PointerClick 未形成拖拽的释放
	PointerClick
)

// PointerEvent 指针事件
type PointerEvent struct {
	Kind PointerEventKind
	// X, Y 当前指针位置（屏幕坐标）
	X, Y int
	// StartX, StartY 按下位置（屏幕坐标）
	StartX, StartY int
	// DX, DY 位移（屏幕像素）
	// PointerDragStart 为从按下点到当前位置的累计位移，PointerDragMove 为相对上一帧的位移
	DX, DY int
}

// DragInfo 拖拽信息
type DragInfo struct {
	// State 当前拖拽状态
	State DragState
	// StartX, StartY 拖拽起始位置（屏幕坐标）
	StartX, StartY int
	// CurrentX, CurrentY 当前位置（屏幕坐标）
	CurrentX, CurrentY int
	// IsTouchInput 是否为触摸输入（区分触摸和鼠标）
	IsTouchInput bool
}

// DragManager 拖拽管理器
// 跟踪触摸/鼠标的拖拽状态，按下后移动超过死区才算拖拽，否则释放时视为点击
type DragManager struct {
	info     DragInfo
	deadZone float64
}

// NewDragManager 创建拖拽管理器
// deadZone 为判定拖拽的最小移动距离（屏幕像素），负数按 0 处理
func NewDragManager(deadZone float64) *DragManager {
	if deadZone < 0 {
		deadZone = 0
	}
	return &DragManager{deadZone: deadZone}
}

// Update 读取当前帧的指针并更新拖拽状态（每帧调用一次）
func (dm *DragManager) Update() PointerEvent {
	return dm.Feed(SamplePointer())
}

// Feed 用一帧指针采样推进状态机，返回本帧事件
func (dm *DragManager) Feed(s PointerSample) PointerEvent {
	ev := PointerEvent{Kind: PointerIdle, X: s.X, Y: s.Y, StartX: dm.info.StartX, StartY: dm.info.StartY}

	switch dm.info.State {
	case DragStateNone:
		if s.Pressed {
			dm.info = DragInfo{
				State:        DragStatePressed,
				StartX:       s.X,
				StartY:       s.Y,
				CurrentX:     s.X,
				CurrentY:     s.Y,
				IsTouchInput: s.IsTouch,
			}
			ev.Kind = PointerDown
			ev.StartX, ev.StartY = s.X, s.Y
		}

	case DragStatePressed:
		if !s.Pressed {
			ev.Kind = PointerClick
			dm.Reset()
			return ev
		}
		dm.info.CurrentX, dm.info.CurrentY = s.X, s.Y
		dx, dy := s.X-dm.info.StartX, s.Y-dm.info.StartY
		if float64(dx*dx+dy*dy) > dm.deadZone*dm.deadZone {
			dm.info.State = DragStateDragging
			ev.Kind = PointerDragStart
			ev.DX, ev.DY = dx, dy
		}

	case DragStateDragging:
		ev.DX, ev.DY = s.X-dm.info.CurrentX, s.Y-dm.info.CurrentY
		if !s.Pressed {
			ev.Kind = PointerDragEnd
			dm.Reset()
			return ev
		}
		dm.info.CurrentX, dm.info.CurrentY = s.X, s.Y
		ev.Kind = PointerDragMove
	}

	return ev
}

// Reset 重置拖拽状态
func (dm *DragManager) Reset() {
	dm.info = DragInfo{State: DragStateNone}
}

// GetState 获取当前拖拽状态
func (dm *DragManager) GetState() DragState {
	return dm.info.State
}

// GetInfo 获取完整拖拽信息
func (dm *DragManager) GetInfo() DragInfo {
	return dm.info
}

// IsDragging 是否正在拖拽
func (dm *DragManager) IsDragging() bool {
	return dm.info.State == DragStateDragging
}

// GetDragDistance 获取拖拽距离（从起点到当前位置）
func (dm *DragManager) GetDragDistance() (dx, dy int) {
	return dm.info.CurrentX - dm.info.StartX, dm.info.CurrentY - dm.info.StartY
}

// IsTouchDrag 是否为触摸拖拽
func (dm *DragManager) IsTouchDrag() bool {
	return dm.info.IsTouchInput
}
