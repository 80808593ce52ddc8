package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/yc815/depviz/internal/layout"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := DefaultConfig()
	if cfg.Port != want.Port || cfg.Elements != want.Elements {
		t.Errorf("defaults not applied: got %+v", cfg)
	}
	if cfg.Layout.Direction != "TB" {
		t.Errorf("default direction = %q", cfg.Layout.Direction)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".depviz.yml")
	content := `port: 9000
elements: my-elements.json
layout:
  direction: LR
  rank_sep: 120
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != 9000 {
		t.Errorf("port = %d, want 9000", cfg.Port)
	}
	if cfg.Elements != "my-elements.json" {
		t.Errorf("elements = %q", cfg.Elements)
	}
	if cfg.Layout.Direction != "LR" || cfg.Layout.RankSep != 120 {
		t.Errorf("layout = %+v", cfg.Layout)
	}
	// Unspecified fields keep their defaults.
	if cfg.Summaries != DefaultConfig().Summaries {
		t.Errorf("summaries = %q", cfg.Summaries)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("DEPVIZ_PORT", "8123")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 8123 {
		t.Errorf("port = %d, want env override 8123", cfg.Port)
	}
}

func TestLoadEnvOverrideNestedAndFlat(t *testing.T) {
	t.Setenv("DEPVIZ_LAYOUT__DIRECTION", "LR")
	t.Setenv("DEPVIZ_LAYOUT__RANK_SEP", "150")
	t.Setenv("DEPVIZ_ALLOW_ALL_CORS", "true")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Layout.Direction != "LR" {
		t.Errorf("layout direction = %q, want LR", cfg.Layout.Direction)
	}
	if cfg.Layout.RankSep != 150 {
		t.Errorf("rank sep = %f, want 150", cfg.Layout.RankSep)
	}
	if !cfg.AllowAllCORS {
		t.Error("flat underscore key allow_all_cors not applied")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".depviz.yml")

	cfg := DefaultConfig()
	cfg.Port = 5151
	cfg.Ignore = []string{"vendor/**"}
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Port != 5151 {
		t.Errorf("port = %d, want 5151", loaded.Port)
	}
	if len(loaded.Ignore) != 1 || loaded.Ignore[0] != "vendor/**" {
		t.Errorf("ignore = %v", loaded.Ignore)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"zero port", func(c *Config) { c.Port = 0 }, true},
		{"port too large", func(c *Config) { c.Port = 70000 }, true},
		{"missing elements", func(c *Config) { c.Elements = "" }, true},
		{"bad direction", func(c *Config) { c.Layout.Direction = "diagonal" }, true},
		{"empty direction ok", func(c *Config) { c.Layout.Direction = "" }, false},
		{"negative node sep", func(c *Config) { c.Layout.NodeSep = -1 }, true},
		{"negative node width", func(c *Config) { c.Layout.NodeWidth = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLayoutSettings(t *testing.T) {
	cfg := DefaultConfig()
	lc := cfg.LayoutSettings()
	if lc.Direction != layout.TopBottom {
		t.Errorf("direction = %q", lc.Direction)
	}
	if lc.NodeWidth != 180 || lc.RankSep != 90 {
		t.Errorf("settings = %+v", lc)
	}

	// An unset direction falls back to top-to-bottom.
	cfg.Layout.Direction = ""
	if d := cfg.LayoutSettings().Direction; d != layout.TopBottom {
		t.Errorf("fallback direction = %q", d)
	}
}
