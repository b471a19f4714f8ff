// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/dressup/pkg/config"
	"github.com/decker502/dressup/pkg/embedded"
	"github.com/decker502/dressup/pkg/game"
	"github.com/decker502/dressup/pkg/i18n"
	"github.com/decker502/dressup/pkg/scenes"
	"github.com/decker502/dressup/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出和调试绘制
	Verbose bool
	// Scene 启动场景名
	Scene string
	// Locale 界面语言
	Locale string
	// CanvasScale 画布缩放系数
	CanvasScale float64
	// DragDeadZone 拖拽死区（屏幕像素）
	DragDeadZone float64
}

// ConfigFromAppConfig 由环境变量配置生成应用配置
func ConfigFromAppConfig(c *config.AppConfig) Config {
	return Config{
		Verbose:      c.Verbose,
		Scene:        c.Scene,
		Locale:       c.Locale,
		CanvasScale:  c.CanvasScale,
		DragDeadZone: c.DragDeadZone,
	}
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
//
// 工具状态、剃须模式和工具光标在进程内只有一份，由 App 持有并传给每个场景
type App struct {
	sceneManager    *game.SceneManager
	resourceManager *game.ResourceManager
	tools           *game.ToolManager
	shaving         *game.ShavingManager
	cursor          *systems.CursorSystem
	catalog         *i18n.Catalog

	cfg    Config
	canvas *ebiten.Image
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	if cfg.CanvasScale <= 0 {
		cfg.CanvasScale = 1
	}
	if cfg.Scene == "" {
		return nil, fmt.Errorf("start scene is required")
	}

	localeFS, err := embedded.Sub(config.LocaleDir)
	if err != nil {
		return nil, fmt.Errorf("语言目录加载失败: %w", err)
	}
	catalog, err := i18n.Load(localeFS)
	if err != nil {
		return nil, fmt.Errorf("语言目录加载失败: %w", err)
	}
	log.Printf("[App] Locales: %v", catalog.Locales())

	a := &App{
		sceneManager:    game.NewSceneManager(),
		resourceManager: game.NewResourceManager(),
		tools:           game.NewToolManager(),
		cursor:          systems.NewCursorSystem(),
		catalog:         catalog,
		cfg:             cfg,
	}
	a.shaving = game.NewShavingManager(a.tools)
	a.tools.SetCursorPresenter(a.cursor)

	if _, err := a.resourceManager.LoadDefaultFont(config.HUDFontSize); err != nil {
		return nil, fmt.Errorf("字体加载失败: %w", err)
	}

	a.sceneManager.SetSceneFactory(a.createScene)
	if err := a.sceneManager.LoadSceneNow(cfg.Scene); err != nil {
		return nil, err
	}

	log.Printf("[App] Started with scene %q, locale %q, canvas scale %.2f", cfg.Scene, cfg.Locale, cfg.CanvasScale)
	return a, nil
}

// createScene 场景工厂：加载布局并创建换装场景
func (a *App) createScene(name string) (game.Scene, error) {
	layout, err := config.LoadSceneConfig(name)
	if err != nil {
		return nil, err
	}
	return scenes.NewDressUpScene(layout, scenes.SceneContext{
		Tools:           a.tools,
		Shaving:         a.shaving,
		Cursor:          a.cursor,
		ResourceManager: a.resourceManager,
		SceneManager:    a.sceneManager,
		Printer:         a.catalog.Printer(a.cfg.Locale),
		CanvasScale:     a.cfg.CanvasScale,
		DragDeadZone:    a.cfg.DragDeadZone,
		Debug:           a.cfg.Verbose,
	})
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)

	if a.sceneManager.QuitRequested() {
		a.Shutdown()
		return ebiten.Termination
	}
	return nil
}

// Draw 绘制游戏画面
// 场景绘制在参考尺寸的画布上，再按缩放系数绘制到窗口
func (a *App) Draw(screen *ebiten.Image) {
	if a.canvas == nil {
		a.canvas = ebiten.NewImage(config.GameWindowWidth, config.GameWindowHeight)
	}
	a.canvas.Clear()
	a.sceneManager.Draw(a.canvas)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(a.cfg.CanvasScale, a.cfg.CanvasScale)
	op.Filter = ebiten.FilterLinear
	screen.Fill(color.Black)
	screen.DrawImage(a.canvas, op)
}

// Layout 返回游戏的屏幕尺寸（画布尺寸乘以缩放系数）
// 指针坐标因此是屏幕像素，输入系统再除以缩放系数换算回画布
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.WindowSize()
}

// WindowSize 返回窗口尺寸
func (a *App) WindowSize() (int, int) {
	return int(float64(config.GameWindowWidth) * a.cfg.CanvasScale),
		int(float64(config.GameWindowHeight) * a.cfg.CanvasScale)
}

// Shutdown 卸载当前场景并恢复默认光标
func (a *App) Shutdown() {
	if u, ok := a.sceneManager.GetCurrentScene().(game.Unloadable); ok {
		u.Unload()
	}
	a.shaving.Close()
	log.Printf("[App] Shutdown")
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// ToolManager 返回工具状态
func (a *App) ToolManager() *game.ToolManager {
	return a.tools
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.cfg.Verbose
}
