package game

import (
	"testing"

	"github.com/decker502/dressup/pkg/types"
)

// TestShavingManager_Toggle 测试剃须模式切换
func TestShavingManager_Toggle(t *testing.T) {
	tm := NewToolManager()
	sm := NewShavingManager(tm)
	defer sm.Close()

	if sm.IsShavingActive() {
		t.Fatal("Expected shaving inactive initially")
	}

	sm.ToggleShavingMode()
	if !sm.IsShavingActive() || tm.CurrentTool() != types.ToolShaver {
		t.Fatal("Expected shaving active after toggle")
	}

	sm.ToggleShavingMode()
	if sm.IsShavingActive() || tm.CurrentTool() != types.ToolNone {
		t.Fatal("Expected shaving inactive after second toggle")
	}
}

// TestShavingManager_TogglePaintBrush 测试画笔激活时切换到剃刀
func TestShavingManager_TogglePaintBrush(t *testing.T) {
	tm := NewToolManager()
	sm := NewShavingManager(tm)
	defer sm.Close()

	tm.SetPaintBrush(testRed)
	sm.ToggleShavingMode()

	if tm.CurrentTool() != types.ToolShaver {
		t.Errorf("Expected toggle to cancel paint brush, got %v", tm.CurrentTool())
	}
}

// TestShavingManager_Deactivate 测试只在剃刀激活时才清除工具
func TestShavingManager_Deactivate(t *testing.T) {
	tm := NewToolManager()
	sm := NewShavingManager(tm)
	defer sm.Close()

	tm.SetPaintBrush(testRed)
	sm.DeactivateShaving()
	if tm.CurrentTool() != types.ToolPaintBrush {
		t.Errorf("DeactivateShaving must not clear paint brush, got %v", tm.CurrentTool())
	}

	sm.ActivateShaving()
	sm.DeactivateShaving()
	if tm.CurrentTool() != types.ToolNone {
		t.Errorf("Expected None after deactivate, got %v", tm.CurrentTool())
	}
}

// TestShavingManager_TracksState 测试订阅同步
func TestShavingManager_TracksState(t *testing.T) {
	tm := NewToolManager()
	sm := NewShavingManager(tm)

	tm.SetShaver()
	if !sm.wasShaving {
		t.Error("Expected wasShaving after SetShaver")
	}
	tm.ClearTool()
	if sm.wasShaving {
		t.Error("Expected wasShaving cleared after ClearTool")
	}

	sm.Close()
	tm.SetShaver()
	if sm.wasShaving {
		t.Error("Closed manager must not receive notifications")
	}
}

// TestShavingManager_NilTools 测试缺少 ToolManager 时静默降级
func TestShavingManager_NilTools(t *testing.T) {
	sm := NewShavingManager(nil)

	sm.ToggleShavingMode()
	sm.ActivateShaving()
	sm.DeactivateShaving()
	sm.Close()

	if sm.IsShavingActive() {
		t.Error("Expected shaving inactive without ToolManager")
	}
}
