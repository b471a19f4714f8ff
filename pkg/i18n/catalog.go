// Package i18n 加载界面文字目录并注册到 golang.org/x/text/message
//
// 目录文件位于 data/locales/<locale>/<namespace>.yaml，格式：
//
//	locale: en-US
//	messages:
//	  hud.shaver: "Shaver"
//
// 文字键直接作为 message.Printer 的格式串使用，未翻译的键原样输出。
package i18n

import (
	"fmt"
	"io/fs"
	"log"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// BaseLocale 基础语言，其他语言缺失的键回退到这里
const BaseLocale = "en-US"

// catalogFile 目录文件结构
type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Catalog 已加载的全部语言文字
type Catalog struct {
	locales map[string]map[string]string
	matcher language.Matcher
	tags    []language.Tag
}

// Load 从文件系统加载所有语言目录
// 参数 fsys 的根目录应包含 <locale>/<namespace>.yaml
func Load(fsys fs.FS) (*Catalog, error) {
	paths, err := fs.Glob(fsys, "*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	c := &Catalog{locales: make(map[string]map[string]string)}
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		if err := c.add(p, file); err != nil {
			return nil, err
		}
	}

	if _, ok := c.locales[BaseLocale]; !ok {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}

	if err := c.register(); err != nil {
		return nil, err
	}
	return c, nil
}

// add 合并一个目录文件
func (c *Catalog) add(p string, file catalogFile) error {
	locale := strings.TrimSpace(file.Locale)
	dirLocale := path.Base(path.Dir(p))
	if locale == "" {
		return fmt.Errorf("catalog %s: locale is required", p)
	}
	if locale != dirLocale {
		return fmt.Errorf("catalog %s: locale %q must match directory %q", p, locale, dirLocale)
	}

	messages, ok := c.locales[locale]
	if !ok {
		messages = make(map[string]string)
		c.locales[locale] = messages
	}
	for key, value := range file.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("catalog %s: message key cannot be blank", p)
		}
		if _, dup := messages[key]; dup {
			return fmt.Errorf("catalog %s: duplicate key %q in locale %q", p, key, locale)
		}
		messages[key] = value
	}
	return nil
}

// register 将文字注册到 x/text/message 的默认目录
// 基础语言排在首位，使匹配失败时回退到基础语言
func (c *Catalog) register() error {
	locales := c.Locales()
	tags := make([]language.Tag, 0, len(locales))
	base, err := language.Parse(BaseLocale)
	if err != nil {
		return fmt.Errorf("parse base locale: %w", err)
	}
	tags = append(tags, base)

	for _, locale := range locales {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("parse locale tag %q: %w", locale, err)
		}
		if locale != BaseLocale {
			tags = append(tags, tag)
		}

		// 缺失的键用基础语言补齐
		merged := make(map[string]string, len(c.locales[BaseLocale]))
		for k, v := range c.locales[BaseLocale] {
			merged[k] = v
		}
		for k, v := range c.locales[locale] {
			merged[k] = v
		}
		for k, v := range merged {
			if err := message.SetString(tag, k, v); err != nil {
				return fmt.Errorf("register %s/%s: %w", locale, k, err)
			}
		}
	}

	c.tags = tags
	c.matcher = language.NewMatcher(tags)
	return nil
}

// Locales 返回所有已加载的语言
func (c *Catalog) Locales() []string {
	out := make([]string, 0, len(c.locales))
	for locale := range c.locales {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Printer 返回与 locale 最匹配的打印器
// 无法识别的语言标签会记录警告并回退到基础语言
func (c *Catalog) Printer(locale string) *message.Printer {
	tag, err := language.Parse(locale)
	if err != nil {
		log.Printf("[i18n] Warning: invalid locale %q, falling back to %s", locale, BaseLocale)
		return message.NewPrinter(c.tags[0])
	}
	_, index, _ := c.matcher.Match(tag)
	return message.NewPrinter(c.tags[index])
}

// MissingKeys 返回 locale 自身目录中没有定义的键（不计回退）
// 未加载的语言返回全部键
func (c *Catalog) MissingKeys(locale string, keys []string) []string {
	messages := c.locales[locale]
	var missing []string
	for _, key := range keys {
		if _, ok := messages[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}
