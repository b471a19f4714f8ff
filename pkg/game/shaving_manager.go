package game

import (
	"log"

	"github.com/decker502/dressup/pkg/types"
)

// ShavingManager 剃须模式状态
// 本身不存储状态，剃须模式等价于 ToolManager 当前工具为 Shaver
type ShavingManager struct {
	tools        *ToolManager
	subscription ListenerHandle
	wasShaving   bool
}

// NewShavingManager 创建剃须模式管理器并订阅工具切换
// tools 为 nil 时所有操作都是空操作
func NewShavingManager(tools *ToolManager) *ShavingManager {
	sm := &ShavingManager{tools: tools}
	if tools == nil {
		log.Printf("[ShavingManager] Warning: ToolManager not set")
		return sm
	}
	sm.wasShaving = tools.CurrentTool() == types.ToolShaver
	sm.subscription = tools.OnToolChanged(sm.onToolChanged)
	return sm
}

// Close 取消订阅
func (sm *ShavingManager) Close() {
	sm.subscription.Remove()
}

// onToolChanged 记录剃须模式开关
func (sm *ShavingManager) onToolChanged(tool types.ToolType) {
	if tool == types.ToolShaver {
		log.Printf("[ShavingManager] 剃须模式开启")
	} else if sm.wasShaving {
		log.Printf("[ShavingManager] 剃须模式关闭")
	}
	sm.wasShaving = tool == types.ToolShaver
}

// IsShavingActive 剃须模式是否开启
func (sm *ShavingManager) IsShavingActive() bool {
	return sm.tools != nil && sm.tools.CurrentTool() == types.ToolShaver
}

// ToggleShavingMode 切换剃须模式（绑定到剃刀按钮）
// 开启时会取消其他工具
func (sm *ShavingManager) ToggleShavingMode() {
	if sm.tools == nil {
		log.Printf("[ShavingManager] Warning: ToolManager not set")
		return
	}
	if sm.IsShavingActive() {
		sm.tools.ClearTool()
	} else {
		sm.tools.SetShaver()
	}
}

// ActivateShaving 直接开启剃须模式
func (sm *ShavingManager) ActivateShaving() {
	if sm.tools != nil {
		sm.tools.SetShaver()
	}
}

// DeactivateShaving 关闭剃须模式（仅当当前是剃刀时）
func (sm *ShavingManager) DeactivateShaving() {
	if sm.tools != nil && sm.IsShavingActive() {
		sm.tools.ClearTool()
	}
}
