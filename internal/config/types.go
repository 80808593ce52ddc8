package config

// Config is the top-level depviz configuration, corresponding to .depviz.yml.
type Config struct {
	Port         int          `yaml:"port" koanf:"port"`
	AllowAllCORS bool         `yaml:"allow_all_cors" koanf:"allow_all_cors"`
	Elements     string       `yaml:"elements" koanf:"elements"`
	Summaries    string       `yaml:"summaries" koanf:"summaries"`
	Docker       string       `yaml:"docker" koanf:"docker"`
	Combined     string       `yaml:"combined" koanf:"combined"`
	Ignore       []string     `yaml:"ignore" koanf:"ignore"`
	Layout       LayoutConfig `yaml:"layout" koanf:"layout"`
}

// LayoutConfig holds the layout engine parameters.
type LayoutConfig struct {
	Direction  string  `yaml:"direction" koanf:"direction"`
	NodeWidth  float64 `yaml:"node_width" koanf:"node_width"`
	NodeHeight float64 `yaml:"node_height" koanf:"node_height"`
	NodeSep    float64 `yaml:"node_sep" koanf:"node_sep"`
	RankSep    float64 `yaml:"rank_sep" koanf:"rank_sep"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Port:      4810,
		Elements:  "cytoscape-elements.json",
		Summaries: "summaries.json",
		Docker:    "docker-analysis.json",
		Combined:  "combined-analysis.json",
		Ignore:    []string{"node_modules/**", "**/*.test.*", "dist/**"},
		Layout: LayoutConfig{
			Direction:  "TB",
			NodeWidth:  180,
			NodeHeight: 48,
			NodeSep:    40,
			RankSep:    90,
		},
	}
}
