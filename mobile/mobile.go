//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译。构建前需要把场景和语言目录复制到本目录：
//
//	mkdir -p mobile/data && cp -r data/scenes data/locales mobile/data/
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.dressup -o build/android/dressup.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/DressUp.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/dressup/pkg/app"
	"github.com/decker502/dressup/pkg/config"
	"github.com/decker502/dressup/pkg/embedded"
)

func init() {
	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	// 移动端没有命令行参数，只读取环境变量默认值
	appConfig, err := config.LoadAppConfig()
	if err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}
	appConfig.Verbose = true

	gameApp, err := app.NewApp(app.ConfigFromAppConfig(appConfig))
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	// 注册游戏到 ebitenmobile
	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
