package game

import (
	"image/color"
	"testing"

	"github.com/decker502/dressup/pkg/config"
	"github.com/decker502/dressup/pkg/types"
)

// mockCursorPresenter 记录光标调用
type mockCursorPresenter struct {
	applied    []types.ToolType
	paintColor color.NRGBA
	resets     int
}

func (m *mockCursorPresenter) ApplyTool(tool types.ToolType) { m.applied = append(m.applied, tool) }
func (m *mockCursorPresenter) SetPaintColor(c color.NRGBA)   { m.paintColor = c }
func (m *mockCursorPresenter) Reset()                        { m.resets++ }

// notificationRecorder 记录通知
type notificationRecorder struct {
	tools  []types.ToolType
	colors []color.NRGBA
}

func recordNotifications(tm *ToolManager) *notificationRecorder {
	r := &notificationRecorder{}
	tm.OnToolChanged(func(tool types.ToolType) { r.tools = append(r.tools, tool) })
	tm.OnPaintColorChanged(func(c color.NRGBA) { r.colors = append(r.colors, c) })
	return r
}

var (
	testRed  = color.NRGBA{R: 255, A: 255}
	testBlue = color.NRGBA{B: 255, A: 255}
)

// TestNewToolManager_Defaults 测试初始状态
func TestNewToolManager_Defaults(t *testing.T) {
	tm := NewToolManager()

	if tm.CurrentTool() != types.ToolNone {
		t.Errorf("Expected ToolNone, got %v", tm.CurrentTool())
	}
	if tm.CurrentPaintColor() != config.DefaultPaintColor {
		t.Errorf("Expected default paint color, got %v", tm.CurrentPaintColor())
	}
}

// TestSetTool_Idempotent 测试重复选择同一工具不发通知
func TestSetTool_Idempotent(t *testing.T) {
	tm := NewToolManager()
	r := recordNotifications(tm)

	tm.SetShaver()
	tm.SetShaver()

	if len(r.tools) != 1 || r.tools[0] != types.ToolShaver {
		t.Errorf("Expected exactly one Shaver notification, got %v", r.tools)
	}

	// 初始就是 None，ClearTool 不发通知
	tm2 := NewToolManager()
	r2 := recordNotifications(tm2)
	tm2.ClearTool()
	if len(r2.tools) != 0 {
		t.Errorf("Expected no notification for None -> None, got %v", r2.tools)
	}
}

// TestSetPaintBrush_Notifications 测试画笔通知语义
func TestSetPaintBrush_Notifications(t *testing.T) {
	tm := NewToolManager()
	r := recordNotifications(tm)

	// 首次激活：一次工具切换 + 一次颜色变化
	tm.SetPaintBrush(testRed)
	if len(r.tools) != 1 || r.tools[0] != types.ToolPaintBrush {
		t.Fatalf("Expected one PaintBrush notification, got %v", r.tools)
	}
	if len(r.colors) != 1 || r.colors[0] != testRed {
		t.Fatalf("Expected one red color notification, got %v", r.colors)
	}

	// 已是画笔，换颜色：零次工具切换 + 一次颜色变化
	tm.SetPaintBrush(testBlue)
	if len(r.tools) != 1 {
		t.Errorf("Expected no extra tool notification, got %v", r.tools)
	}
	if len(r.colors) != 2 || r.colors[1] != testBlue {
		t.Errorf("Expected second color notification blue, got %v", r.colors)
	}
	if tm.CurrentPaintColor() != testBlue {
		t.Errorf("Expected current color blue, got %v", tm.CurrentPaintColor())
	}
}

// TestSetPaintBrush_OverridesShaver 测试色块覆盖剃刀
func TestSetPaintBrush_OverridesShaver(t *testing.T) {
	tm := NewToolManager()
	tm.SetShaver()

	r := recordNotifications(tm)
	tm.SetPaintBrush(testRed)

	if tm.CurrentTool() != types.ToolPaintBrush {
		t.Errorf("Expected PaintBrush, got %v", tm.CurrentTool())
	}
	if len(r.tools) != 1 || r.tools[0] != types.ToolPaintBrush {
		t.Errorf("Expected single PaintBrush notification, got %v", r.tools)
	}
}

// TestToolChange_OrderToolBeforeColor 测试切换时工具通知先于颜色通知
func TestToolChange_OrderToolBeforeColor(t *testing.T) {
	tm := NewToolManager()
	var order []string
	tm.OnToolChanged(func(types.ToolType) { order = append(order, "tool") })
	tm.OnPaintColorChanged(func(color.NRGBA) { order = append(order, "color") })

	tm.SetPaintBrush(testRed)

	if len(order) != 2 || order[0] != "tool" || order[1] != "color" {
		t.Errorf("Expected [tool color], got %v", order)
	}
}

// TestCursorPresenter 测试光标同步
func TestCursorPresenter(t *testing.T) {
	tm := NewToolManager()
	cursor := &mockCursorPresenter{}
	tm.SetCursorPresenter(cursor)

	// 设置时同步一次当前状态
	if len(cursor.applied) != 1 || cursor.applied[0] != types.ToolNone {
		t.Fatalf("Expected initial ApplyTool(None), got %v", cursor.applied)
	}

	tm.SetPaintBrush(testRed)
	tm.SetPaintBrush(testBlue)
	tm.SetShaver()
	tm.SetShaver()

	want := []types.ToolType{types.ToolNone, types.ToolPaintBrush, types.ToolShaver}
	if len(cursor.applied) != len(want) {
		t.Fatalf("Expected %v, got %v", want, cursor.applied)
	}
	for i := range want {
		if cursor.applied[i] != want[i] {
			t.Errorf("ApplyTool[%d] = %v, want %v", i, cursor.applied[i], want[i])
		}
	}
	if cursor.paintColor != testBlue {
		t.Errorf("Expected cursor paint color blue, got %v", cursor.paintColor)
	}

	tm.Disable()
	if cursor.resets != 1 {
		t.Errorf("Expected one Reset, got %d", cursor.resets)
	}
}

// TestListenerHandle_Remove 测试取消订阅
func TestListenerHandle_Remove(t *testing.T) {
	tm := NewToolManager()

	calls := 0
	handle := tm.OnToolChanged(func(types.ToolType) { calls++ })
	other := 0
	tm.OnToolChanged(func(types.ToolType) { other++ })

	tm.SetShaver()
	handle.Remove()
	handle.Remove()
	tm.ClearTool()

	if calls != 1 {
		t.Errorf("Expected removed listener called once, got %d", calls)
	}
	if other != 2 {
		t.Errorf("Expected remaining listener called twice, got %d", other)
	}

	// 零值句柄安全
	ListenerHandle{}.Remove()
}

// TestListener_RemoveDuringNotify 测试回调中取消订阅
func TestListener_RemoveDuringNotify(t *testing.T) {
	tm := NewToolManager()

	var handle ListenerHandle
	second := 0
	handle = tm.OnToolChanged(func(types.ToolType) { handle.Remove() })
	tm.OnToolChanged(func(types.ToolType) { second++ })

	tm.SetShaver()
	if second != 1 {
		t.Errorf("Expected second listener to still run, got %d", second)
	}
}
