package i18n

import (
	"strings"
	"testing"
	"testing/fstest"
)

func newTestCatalogFS() fstest.MapFS {
	return fstest.MapFS{
		"en-US/hud.yaml": {Data: []byte(`
locale: en-US
messages:
  test.shaver: "Shaver"
  test.reset: "Reset"
  test.status: "Tool: %s"
`)},
		"tr-TR/hud.yaml": {Data: []byte(`
locale: tr-TR
messages:
  test.shaver: "Tıraş Makinesi"
  test.status: "Araç: %s"
`)},
	}
}

// TestLoad_Printer 测试按语言取文字
func TestLoad_Printer(t *testing.T) {
	c, err := Load(newTestCatalogFS())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := c.Locales(); len(got) != 2 || got[0] != "en-US" || got[1] != "tr-TR" {
		t.Errorf("Unexpected locales: %v", got)
	}

	tests := []struct {
		name   string
		locale string
		key    string
		args   []interface{}
		want   string
	}{
		{"english", "en-US", "test.shaver", nil, "Shaver"},
		{"turkish", "tr-TR", "test.shaver", nil, "Tıraş Makinesi"},
		{"turkish base language", "tr", "test.shaver", nil, "Tıraş Makinesi"},
		{"turkish falls back for missing key", "tr-TR", "test.reset", nil, "Reset"},
		{"format args", "tr-TR", "test.status", []interface{}{"Boya"}, "Araç: Boya"},
		{"unknown locale uses base", "ja-JP", "test.shaver", nil, "Shaver"},
		{"invalid locale uses base", "!!", "test.shaver", nil, "Shaver"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Printer(tt.locale).Sprintf(tt.key, tt.args...)
			if got != tt.want {
				t.Errorf("Printer(%q).Sprintf(%q) = %q, want %q", tt.locale, tt.key, got, tt.want)
			}
		})
	}
}

// TestLoad_Errors 测试目录文件错误
func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		fs      fstest.MapFS
		wantErr string
	}{
		{"empty", fstest.MapFS{}, "no catalog files"},
		{
			"missing base",
			fstest.MapFS{"tr-TR/hud.yaml": {Data: []byte("locale: tr-TR\nmessages: {a: b}\n")}},
			"base locale",
		},
		{
			"locale mismatch",
			fstest.MapFS{"en-US/hud.yaml": {Data: []byte("locale: en-GB\nmessages: {a: b}\n")}},
			"must match directory",
		},
		{
			"duplicate key across namespaces",
			fstest.MapFS{
				"en-US/a.yaml": {Data: []byte("locale: en-US\nmessages: {k: one}\n")},
				"en-US/b.yaml": {Data: []byte("locale: en-US\nmessages: {k: two}\n")},
			},
			"duplicate key",
		},
		{
			"bad yaml",
			fstest.MapFS{"en-US/hud.yaml": {Data: []byte("locale: [\n")}},
			"parse catalog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.fs)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

// TestMissingKeys 测试按语言检查缺失的键
func TestMissingKeys(t *testing.T) {
	c, err := Load(newTestCatalogFS())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	keys := []string{"test.shaver", "test.reset"}
	if got := c.MissingKeys("en-US", keys); len(got) != 0 {
		t.Errorf("Expected no missing keys for en-US, got %v", got)
	}
	if got := c.MissingKeys("tr-TR", keys); len(got) != 1 || got[0] != "test.reset" {
		t.Errorf("Expected [test.reset] missing for tr-TR, got %v", got)
	}
	if got := c.MissingKeys("ja-JP", keys); len(got) != 2 {
		t.Errorf("Expected all keys missing for unknown locale, got %v", got)
	}
}
