package main

import (
	"flag"
	"log"

	"github.com/decker502/dressup/pkg/app"
	"github.com/decker502/dressup/pkg/config"
	"github.com/decker502/dressup/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose = flag.Bool("verbose", false, "显示详细调试信息并绘制吸附半径")
	scene   = flag.String("scene", "", "启动场景名（覆盖 DRESSUP_SCENE）")
	locale  = flag.String("locale", "", "界面语言，如 en-US、tr-TR、zh-CN（覆盖 DRESSUP_LOCALE）")
)

func main() {
	flag.Parse()

	// 环境变量提供默认值，命令行参数优先
	appConfig, err := config.LoadAppConfig()
	if err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}
	if *verbose {
		appConfig.Verbose = true
	}
	if *scene != "" {
		appConfig.Scene = *scene
	}
	if *locale != "" {
		appConfig.Locale = *locale
	}

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.ConfigFromAppConfig(appConfig))
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(gameApp.WindowSize())
	ebiten.SetWindowTitle(config.GameWindowTitle)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
