package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// AppConfig 应用启动配置
// 从环境变量读取，命令行参数可以在 main 中覆盖
type AppConfig struct {
	// Verbose 启用详细日志输出和调试绘制（吸附半径圆）
	Verbose bool `env:"DRESSUP_VERBOSE" envDefault:"false"`

	// Scene 启动时加载的场景名（对应 data/scenes/<name>.yaml）
	Scene string `env:"DRESSUP_SCENE" envDefault:"wardrobe"`

	// Locale 界面语言标签，如 en-US、tr-TR、zh-CN
	Locale string `env:"DRESSUP_LOCALE" envDefault:"en-US"`

	// CanvasScale 画布缩放系数（屏幕像素 / 画布像素）
	CanvasScale float64 `env:"DRESSUP_CANVAS_SCALE" envDefault:"1.0"`

	// DragDeadZone 拖拽死区（屏幕像素）
	DragDeadZone float64 `env:"DRESSUP_DRAG_DEAD_ZONE" envDefault:"4"`
}

// LoadAppConfig 从环境变量加载应用配置
func LoadAppConfig() (*AppConfig, error) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate 校验配置合法性
func (c *AppConfig) Validate() error {
	if c.Scene == "" {
		return fmt.Errorf("scene name is required")
	}
	if c.CanvasScale <= 0 {
		return fmt.Errorf("canvas scale must be positive, got %v", c.CanvasScale)
	}
	if c.DragDeadZone < 0 {
		return fmt.Errorf("drag dead zone cannot be negative, got %v", c.DragDeadZone)
	}
	return nil
}

// WindowSize 返回按画布缩放后的窗口尺寸（屏幕像素）
func (c *AppConfig) WindowSize() (int, int) {
	return int(float64(GameWindowWidth) * c.CanvasScale), int(float64(GameWindowHeight) * c.CanvasScale)
}
