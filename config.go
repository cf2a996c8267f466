package png2svg

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds defaults loaded from an optional YAML config file.
// Command-line flags take precedence over config values.
type Config struct {
	Method    string `yaml:"method,omitempty"`
	Options   string `yaml:"options,omitempty"`
	Overwrite bool   `yaml:"overwrite,omitempty"`
}

// DefaultConfigPath returns ~/.png2svg.yaml, or empty when no home
// directory can be determined
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".png2svg.yaml")
}

// LoadConfig reads a YAML config file. A missing file at the default
// location is not an error; callers pass explicit paths when the file
// must exist.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// ApplyTo copies config values onto flags that were not explicitly set on
// the command line
func (c *Config) ApplyTo(flags *ConvertFlags, changed func(name string) bool) {
	if c == nil {
		return
	}
	if c.Method != "" && !changed("method") {
		flags.Method = c.Method
	}
	if c.Options != "" && !changed("options") {
		flags.Options = c.Options
	}
	if c.Overwrite && !changed("overwrite") {
		flags.Overwrite = true
	}
}
