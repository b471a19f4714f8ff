package app

import (
	"os"
	"testing"

	"github.com/decker502/dressup/pkg/config"
	"github.com/decker502/dressup/pkg/embedded"
	"github.com/decker502/dressup/pkg/types"
)

// TestConfigFromAppConfig 测试环境变量配置转换
func TestConfigFromAppConfig(t *testing.T) {
	cfg := ConfigFromAppConfig(&config.AppConfig{
		Verbose:      true,
		Scene:        "barbershop",
		Locale:       "tr-TR",
		CanvasScale:  1.5,
		DragDeadZone: 6,
	})

	if !cfg.Verbose || cfg.Scene != "barbershop" || cfg.Locale != "tr-TR" {
		t.Errorf("Unexpected config %+v", cfg)
	}
	if cfg.CanvasScale != 1.5 || cfg.DragDeadZone != 6 {
		t.Errorf("Unexpected scale or dead zone in %+v", cfg)
	}
}

// TestNewApp 测试应用初始化加载启动场景
func TestNewApp(t *testing.T) {
	embedded.Init(os.DirFS("../.."))

	a, err := NewApp(Config{Scene: "wardrobe", Locale: "en-US", CanvasScale: 2, DragDeadZone: 4})
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}

	if a.GetSceneManager().CurrentSceneName() != "wardrobe" {
		t.Errorf("Expected wardrobe, got %q", a.GetSceneManager().CurrentSceneName())
	}
	if a.ToolManager().CurrentTool() != types.ToolNone {
		t.Errorf("Expected no tool at start, got %v", a.ToolManager().CurrentTool())
	}

	w, h := a.WindowSize()
	if w != config.GameWindowWidth*2 || h != config.GameWindowHeight*2 {
		t.Errorf("Expected scaled window %dx%d, got %dx%d", config.GameWindowWidth*2, config.GameWindowHeight*2, w, h)
	}
	if lw, lh := a.Layout(100, 100); lw != w || lh != h {
		t.Errorf("Expected layout to match window size, got %dx%d", lw, lh)
	}

	a.ToolManager().SetShaver()
	a.Shutdown()
	if a.ToolManager().CurrentTool() != types.ToolNone {
		t.Errorf("Expected tool cleared on shutdown, got %v", a.ToolManager().CurrentTool())
	}
}

// TestNewApp_Errors 测试启动失败的情况
func TestNewApp_Errors(t *testing.T) {
	embedded.Init(os.DirFS("../.."))

	if _, err := NewApp(Config{}); err == nil {
		t.Error("Expected error without start scene")
	}
	if _, err := NewApp(Config{Scene: "no-such-scene"}); err == nil {
		t.Error("Expected error for unknown scene")
	}
}
