package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/decker502/dressup/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// 数据目录
const (
	// SceneDir 场景布局文件所在目录
	SceneDir = "data/scenes"
	// LocaleDir 语言目录所在路径
	LocaleDir = "data/locales"
)

// HexColor 场景文件中的颜色值
// 支持 "#RRGGBB" 和 "#RRGGBBAA" 两种写法（非预乘 alpha）
type HexColor struct {
	color.NRGBA
	// Set 标记文件中是否显式给出了该颜色
	Set bool
}

// UnmarshalYAML 实现 yaml.Unmarshaler
func (c *HexColor) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("line %d: color must be a string: %w", node.Line, err)
	}
	parsed, err := ParseHexColor(raw)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	c.NRGBA = parsed
	c.Set = true
	return nil
}

// Or 返回已设置的颜色，未设置时返回 fallback
func (c HexColor) Or(fallback color.NRGBA) color.NRGBA {
	if c.Set {
		return c.NRGBA
	}
	return fallback
}

// ParseHexColor 解析 "#RRGGBB" 或 "#RRGGBBAA"
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// Rect 以中心点描述的矩形区域（画布坐标）
type Rect struct {
	X      float64 `yaml:"x"`      // 中心X
	Y      float64 `yaml:"y"`      // 中心Y
	Width  float64 `yaml:"width"`  // 宽度
	Height float64 `yaml:"height"` // 高度
}

// CanvasConfig 场景参考画布尺寸
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// VisualConfig 纯色矩形视觉元素
type VisualConfig struct {
	ID    string `yaml:"id"`
	Rect  `yaml:",inline"`
	Color HexColor `yaml:"color"`
}

// DropPointConfig 投放点配置
type DropPointConfig struct {
	ID   string `yaml:"id"`
	Rect `yaml:",inline"`
	// SnapRadius 吸附半径，省略时使用 DefaultSnapRadius
	SnapRadius *float64 `yaml:"snapRadius"`
	// Highlight 是否带悬停高亮图片（可选）
	Highlight bool `yaml:"highlight"`
	// HighlightColor 高亮颜色
	HighlightColor HexColor `yaml:"highlightColor"`
}

// ClothingConfig 可拖拽服装配置
type ClothingConfig struct {
	ID    string `yaml:"id"`
	Rect  `yaml:",inline"`
	Color HexColor `yaml:"color"`
	// DropPoints 可接受的投放点ID列表（按优先顺序，距离相同时靠前者胜出）
	DropPoints []string `yaml:"dropPoints"`
	// ValidColor 悬停在有效投放点时的着色
	ValidColor HexColor `yaml:"validColor"`
	// InvalidColor 不在有效投放点附近时的着色
	InvalidColor HexColor `yaml:"invalidColor"`
	// Paintable 服装是否可以被画笔上色
	Paintable bool `yaml:"paintable"`
}

// PaintableConfig 可上色区域配置
type PaintableConfig struct {
	ID    string `yaml:"id"`
	Rect  `yaml:",inline"`
	Color HexColor `yaml:"color"`
	// Target 上色目标的视觉元素ID，省略时给自身上色
	Target string `yaml:"target"`
}

// SwatchConfig 调色板色块配置
type SwatchConfig struct {
	ID    string `yaml:"id"`
	Rect  `yaml:",inline"`
	Color HexColor `yaml:"color"`
	// SwatchColor 色块代表的颜色，UseImageColor 为 false 时生效
	SwatchColor HexColor `yaml:"swatchColor"`
	// UseImageColor 是否直接使用色块自身的颜色（默认 true）
	UseImageColor *bool `yaml:"useImageColor"`
}

// UsesImageColor 返回色块是否使用自身颜色
func (s SwatchConfig) UsesImageColor() bool {
	return s.UseImageColor == nil || *s.UseImageColor
}

// ButtonAction 按钮动作类型
type ButtonAction string

const (
	// ActionToggleShaver 切换剃须模式
	ActionToggleShaver ButtonAction = "toggle_shaver"
	// ActionClearTool 清除当前工具
	ActionClearTool ButtonAction = "clear_tool"
	// ActionResetOutfit 所有服装回到初始位置
	ActionResetOutfit ButtonAction = "reset_outfit"
	// ActionReloadScene 重新加载当前场景
	ActionReloadScene ButtonAction = "reload_scene"
	// ActionLoadScene 加载指定场景
	ActionLoadScene ButtonAction = "load_scene"
	// ActionQuit 退出游戏
	ActionQuit ButtonAction = "quit"
)

// ButtonConfig 界面按钮配置
type ButtonConfig struct {
	ID     string `yaml:"id"`
	Rect   `yaml:",inline"`
	Color  HexColor     `yaml:"color"`
	Label  string       `yaml:"label"` // 语言目录中的文字键
	Action ButtonAction `yaml:"action"`
	Scene  string       `yaml:"scene"` // ActionLoadScene 的目标场景
}

// SceneConfig 单个场景的完整布局
type SceneConfig struct {
	Name       string            `yaml:"name"`
	Canvas     CanvasConfig      `yaml:"canvas"`
	Background HexColor          `yaml:"background"`
	Character  []VisualConfig    `yaml:"character"`
	DropPoints []DropPointConfig `yaml:"dropPoints"`
	Clothing   []ClothingConfig  `yaml:"clothing"`
	Paintables []PaintableConfig `yaml:"paintables"`
	Swatches   []SwatchConfig    `yaml:"swatches"`
	Shaveables []VisualConfig    `yaml:"shaveables"`
	Buttons    []ButtonConfig    `yaml:"buttons"`
}

// ScenePath 返回场景名对应的文件路径
func ScenePath(name string) string {
	return SceneDir + "/" + name + ".yaml"
}

// LoadSceneConfig 从嵌入文件系统加载并校验场景布局
// 参数：
//
//	name - 场景名（不含扩展名），如 "wardrobe"
//
// 返回：
//
//	*SceneConfig - 解析后的布局
//	error - 文件读取、解析或校验失败
func LoadSceneConfig(name string) (*SceneConfig, error) {
	path := ScenePath(name)
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file %s: %w", path, err)
	}

	cfg, err := ParseSceneConfig(data)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	if cfg.Name == "" {
		cfg.Name = name
	}
	return cfg, nil
}

// ParseSceneConfig 解析场景 YAML 内容并校验
func ParseSceneConfig(data []byte) (*SceneConfig, error) {
	var cfg SceneConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene YAML: %w", err)
	}

	if cfg.Canvas.Width == 0 {
		cfg.Canvas.Width = GameWindowWidth
	}
	if cfg.Canvas.Height == 0 {
		cfg.Canvas.Height = GameWindowHeight
	}

	if err := validateSceneConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid scene: %w", err)
	}
	return &cfg, nil
}

// SnapRadiusOf 返回投放点的吸附半径（含默认值）
func (d DropPointConfig) SnapRadiusOf() float64 {
	if d.SnapRadius == nil {
		return DefaultSnapRadius
	}
	return *d.SnapRadius
}

// validateSceneConfig 校验场景布局的完整性和合法性
func validateSceneConfig(cfg *SceneConfig) error {
	if cfg.Canvas.Width < 0 || cfg.Canvas.Height < 0 {
		return fmt.Errorf("canvas size cannot be negative")
	}

	ids := make(map[string]string)
	claim := func(kind, id string) error {
		if id == "" {
			return fmt.Errorf("%s: id is required", kind)
		}
		if prev, ok := ids[id]; ok {
			return fmt.Errorf("%s %q: id already used by %s", kind, id, prev)
		}
		ids[id] = kind
		return nil
	}

	for _, v := range cfg.Character {
		if err := claim("character", v.ID); err != nil {
			return err
		}
	}

	dropPoints := make(map[string]bool, len(cfg.DropPoints))
	for _, dp := range cfg.DropPoints {
		if err := claim("dropPoint", dp.ID); err != nil {
			return err
		}
		if dp.SnapRadiusOf() < 0 {
			return fmt.Errorf("dropPoint %q: snapRadius cannot be negative, got %v", dp.ID, *dp.SnapRadius)
		}
		dropPoints[dp.ID] = true
	}

	for _, item := range cfg.Clothing {
		if err := claim("clothing", item.ID); err != nil {
			return err
		}
		if item.Width <= 0 || item.Height <= 0 {
			return fmt.Errorf("clothing %q: width and height must be positive", item.ID)
		}
		for _, ref := range item.DropPoints {
			if !dropPoints[ref] {
				return fmt.Errorf("clothing %q: unknown dropPoint %q", item.ID, ref)
			}
		}
	}

	for _, p := range cfg.Paintables {
		if err := claim("paintable", p.ID); err != nil {
			return err
		}
	}
	// 上色目标可以是任意已声明的视觉元素，需要在全部ID登记后再检查
	for _, p := range cfg.Paintables {
		if p.Target == "" {
			continue
		}
		if _, ok := ids[p.Target]; !ok {
			return fmt.Errorf("paintable %q: unknown target %q", p.ID, p.Target)
		}
	}

	for _, s := range cfg.Swatches {
		if err := claim("swatch", s.ID); err != nil {
			return err
		}
		if !s.UsesImageColor() && !s.SwatchColor.Set {
			return fmt.Errorf("swatch %q: swatchColor is required when useImageColor is false", s.ID)
		}
	}

	for _, s := range cfg.Shaveables {
		if err := claim("shaveable", s.ID); err != nil {
			return err
		}
	}

	for _, b := range cfg.Buttons {
		if err := claim("button", b.ID); err != nil {
			return err
		}
		switch b.Action {
		case ActionToggleShaver, ActionClearTool, ActionResetOutfit, ActionReloadScene, ActionQuit:
		case ActionLoadScene:
			if b.Scene == "" {
				return fmt.Errorf("button %q: scene is required for %s", b.ID, b.Action)
			}
		default:
			return fmt.Errorf("button %q: unknown action %q", b.ID, b.Action)
		}
	}

	return nil
}
