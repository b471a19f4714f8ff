package game

import (
	"image/color"
	"log"

	"github.com/decker502/dressup/pkg/config"
	"github.com/decker502/dressup/pkg/types"
)

// CursorPresenter 工具相关的光标表现
// ToolManager 在工具切换时调用它更换光标，
// 由 systems.CursorSystem 实现；为 nil 时只更新状态
type CursorPresenter interface {
	// ApplyTool 根据工具切换光标（硬件光标 / 画笔色块 / 剃刀图标）
	ApplyTool(tool types.ToolType)
	// SetPaintColor 更新画笔光标颜色
	SetPaintColor(c color.NRGBA)
	// Reset 恢复默认硬件光标并隐藏所有工具光标
	Reset()
}

// ToolChangedFunc 工具切换通知
type ToolChangedFunc func(tool types.ToolType)

// PaintColorChangedFunc 画笔颜色变化通知
type PaintColorChangedFunc func(c color.NRGBA)

// ListenerHandle 订阅句柄，调用 Remove 取消订阅
type ListenerHandle struct {
	id      int
	manager *ToolManager
}

// Remove 取消订阅（可重复调用）
func (h ListenerHandle) Remove() {
	if h.manager == nil {
		return
	}
	h.manager.removeListener(h.id)
}

type toolListener struct {
	id int
	fn ToolChangedFunc
}

type colorListener struct {
	id int
	fn PaintColorChangedFunc
}

// ToolManager 当前工具状态（无 / 剃刀 / 画笔）和画笔颜色
//
// 进程内只创建一个实例，由 App 持有并通过参数传给各系统，
// 所有修改都发生在游戏主循环的同一个 goroutine 中，无需加锁。
type ToolManager struct {
	currentTool       types.ToolType
	currentPaintColor color.NRGBA

	cursor CursorPresenter

	toolListeners  []toolListener
	colorListeners []colorListener
	nextListenerID int
}

// NewToolManager 创建工具管理器，初始工具为 None，画笔颜色为白色
func NewToolManager() *ToolManager {
	return &ToolManager{
		currentTool:       types.ToolNone,
		currentPaintColor: config.DefaultPaintColor,
	}
}

// SetCursorPresenter 设置光标表现
func (tm *ToolManager) SetCursorPresenter(p CursorPresenter) {
	tm.cursor = p
	if p != nil {
		p.SetPaintColor(tm.currentPaintColor)
		p.ApplyTool(tm.currentTool)
	}
}

// CurrentTool 返回当前工具
func (tm *ToolManager) CurrentTool() types.ToolType {
	return tm.currentTool
}

// CurrentPaintColor 返回当前画笔颜色
func (tm *ToolManager) CurrentPaintColor() color.NRGBA {
	return tm.currentPaintColor
}

// SetTool 切换工具
// 与当前工具相同时不做任何事（不发重复通知）
func (tm *ToolManager) SetTool(tool types.ToolType) {
	if tm.currentTool == tool {
		return
	}

	log.Printf("[ToolManager] 工具切换: %v -> %v", tm.currentTool, tool)
	tm.currentTool = tool
	tm.updateCursor()

	for _, l := range tm.snapshotToolListeners() {
		l.fn(tool)
	}
}

// SetPaintBrush 激活画笔并设置颜色
// 已经是画笔时只发颜色变化通知，不发工具切换通知
func (tm *ToolManager) SetPaintBrush(c color.NRGBA) {
	tm.currentPaintColor = c

	if tm.cursor != nil {
		tm.cursor.SetPaintColor(c)
	}

	if tm.currentTool != types.ToolPaintBrush {
		tm.SetTool(types.ToolPaintBrush)
	}

	for _, l := range tm.snapshotColorListeners() {
		l.fn(c)
	}
}

// SetShaver 激活剃刀
func (tm *ToolManager) SetShaver() {
	tm.SetTool(types.ToolShaver)
}

// ClearTool 清除当前工具
func (tm *ToolManager) ClearTool() {
	tm.SetTool(types.ToolNone)
}

// Disable 场景卸载时调用，恢复默认光标
func (tm *ToolManager) Disable() {
	if tm.cursor != nil {
		tm.cursor.Reset()
	}
}

// OnToolChanged 订阅工具切换通知
func (tm *ToolManager) OnToolChanged(fn ToolChangedFunc) ListenerHandle {
	tm.nextListenerID++
	tm.toolListeners = append(tm.toolListeners, toolListener{id: tm.nextListenerID, fn: fn})
	return ListenerHandle{id: tm.nextListenerID, manager: tm}
}

// OnPaintColorChanged 订阅画笔颜色变化通知
func (tm *ToolManager) OnPaintColorChanged(fn PaintColorChangedFunc) ListenerHandle {
	tm.nextListenerID++
	tm.colorListeners = append(tm.colorListeners, colorListener{id: tm.nextListenerID, fn: fn})
	return ListenerHandle{id: tm.nextListenerID, manager: tm}
}

// removeListener 按ID移除订阅（两个列表共用ID空间）
func (tm *ToolManager) removeListener(id int) {
	for i, l := range tm.toolListeners {
		if l.id == id {
			tm.toolListeners = append(tm.toolListeners[:i], tm.toolListeners[i+1:]...)
			return
		}
	}
	for i, l := range tm.colorListeners {
		if l.id == id {
			tm.colorListeners = append(tm.colorListeners[:i], tm.colorListeners[i+1:]...)
			return
		}
	}
}

// snapshotToolListeners 复制订阅列表，回调中取消订阅不影响本轮通知
func (tm *ToolManager) snapshotToolListeners() []toolListener {
	out := make([]toolListener, len(tm.toolListeners))
	copy(out, tm.toolListeners)
	return out
}

func (tm *ToolManager) snapshotColorListeners() []colorListener {
	out := make([]colorListener, len(tm.colorListeners))
	copy(out, tm.colorListeners)
	return out
}

// updateCursor 把工具切换同步到光标表现
func (tm *ToolManager) updateCursor() {
	if tm.cursor == nil {
		return
	}
	tm.cursor.ApplyTool(tm.currentTool)
}
