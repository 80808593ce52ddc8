// Package config loads the depviz configuration from YAML with environment
// variable overrides.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/yc815/depviz/internal/layout"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (DEPVIZ_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: DEPVIZ_PORT -> port. A double
	// underscore descends into a section (DEPVIZ_LAYOUT__DIRECTION ->
	// layout.direction) so single underscores stay literal for flat keys
	// like allow_all_cors.
	if err := k.Load(env.Provider("DEPVIZ_", ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, "DEPVIZ_"))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validDirections is the set of recognized layout directions.
var validDirections = map[string]bool{
	string(layout.TopBottom): true,
	string(layout.BottomTop): true,
	string(layout.LeftRight): true,
	string(layout.RightLeft): true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}

	if c.Elements == "" {
		return fmt.Errorf("elements path is required")
	}

	if c.Layout.Direction != "" && !validDirections[c.Layout.Direction] {
		return fmt.Errorf("invalid layout direction %q: must be one of TB, BT, LR, RL", c.Layout.Direction)
	}

	if c.Layout.NodeWidth < 0 || c.Layout.NodeHeight < 0 {
		return fmt.Errorf("node dimensions must be non-negative")
	}

	if c.Layout.NodeSep < 0 || c.Layout.RankSep < 0 {
		return fmt.Errorf("layout spacing must be non-negative")
	}

	return nil
}

// LayoutSettings converts the configured layout section into the engine's
// config type.
func (c *Config) LayoutSettings() layout.Config {
	lc := layout.Config{
		Direction:  layout.Direction(c.Layout.Direction),
		NodeWidth:  c.Layout.NodeWidth,
		NodeHeight: c.Layout.NodeHeight,
		NodeSep:    c.Layout.NodeSep,
		RankSep:    c.Layout.RankSep,
	}
	if lc.Direction == "" {
		lc.Direction = layout.TopBottom
	}
	return lc
}
