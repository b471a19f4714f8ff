// validate_scenes 校验场景布局和语言目录
//
// 检查内容：
//   - data/scenes/*.yaml 能否解析并通过布局校验
//   - load_scene 按钮的目标场景是否存在
//   - 每种语言是否定义了全部按钮文字和工具名
//
// 用法：
//
//	go run ./cmd/validate_scenes [-root .]
package main

import (
	"flag"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/decker502/dressup/pkg/config"
	"github.com/decker502/dressup/pkg/embedded"
	"github.com/decker502/dressup/pkg/i18n"
	"github.com/decker502/dressup/pkg/types"
)

var root = flag.String("root", ".", "项目根目录（包含 data/）")

func main() {
	flag.Parse()
	embedded.Init(os.DirFS(*root))

	problems := 0
	report := func(format string, args ...interface{}) {
		fmt.Printf("❌ "+format+"\n", args...)
		problems++
	}

	paths, err := embedded.Glob(config.SceneDir + "/*.yaml")
	if err != nil || len(paths) == 0 {
		fmt.Printf("❌ 找不到场景文件: %v\n", err)
		os.Exit(1)
	}

	sceneNames := make(map[string]bool, len(paths))
	for _, p := range paths {
		sceneNames[strings.TrimSuffix(path.Base(p), ".yaml")] = true
	}

	// 界面需要的全部文字键
	keySet := map[string]bool{"hud.status": true}
	for _, tool := range []types.ToolType{types.ToolNone, types.ToolShaver, types.ToolPaintBrush} {
		keySet[tool.LabelKey()] = true
	}

	for _, p := range paths {
		name := strings.TrimSuffix(path.Base(p), ".yaml")
		layout, err := config.LoadSceneConfig(name)
		if err != nil {
			report("%v", err)
			continue
		}
		for _, b := range layout.Buttons {
			if b.Label != "" {
				keySet[b.Label] = true
			}
			if b.Action == config.ActionLoadScene && !sceneNames[b.Scene] {
				report("%s: button %q loads unknown scene %q", name, b.ID, b.Scene)
			}
		}
		fmt.Printf("✅ %s: %d 件服装, %d 个投放点, %d 个按钮\n",
			name, len(layout.Clothing), len(layout.DropPoints), len(layout.Buttons))
	}

	localeFS, err := embedded.Sub(config.LocaleDir)
	if err != nil {
		fmt.Printf("❌ 语言目录加载失败: %v\n", err)
		os.Exit(1)
	}
	catalog, err := i18n.Load(localeFS)
	if err != nil {
		fmt.Printf("❌ 语言目录加载失败: %v\n", err)
		os.Exit(1)
	}

	keys := make([]string, 0, len(keySet))
	for key := range keySet {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, locale := range catalog.Locales() {
		missing := catalog.MissingKeys(locale, keys)
		if len(missing) > 0 {
			report("%s: 缺少 %s", locale, strings.Join(missing, ", "))
			continue
		}
		fmt.Printf("✅ %s: %d 个文字键齐全\n", locale, len(keys))
	}

	if problems > 0 {
		fmt.Printf("❌ 共 %d 个问题\n", problems)
		os.Exit(1)
	}
}
