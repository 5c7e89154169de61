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
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (DESKHUB_*).
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

	// Overlay environment variables. Double underscore nests:
	// DESKHUB_DATA_DIR -> data_dir, DESKHUB_SERVER__PORT -> server.port.
	if err := k.Load(env.Provider("DESKHUB_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "DESKHUB_")), "__", ".")
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

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}

	p := c.Pomodoro
	if p.WorkMinutes <= 0 || p.ShortBreakMinutes <= 0 || p.LongBreakMinutes <= 0 {
		return fmt.Errorf("pomodoro durations must be positive")
	}
	if p.LongBreakInterval <= 0 {
		return fmt.Errorf("pomodoro long_break_interval must be positive")
	}

	m := c.Mindmap
	if m.BaseDistance <= 0 {
		return fmt.Errorf("mindmap base_distance must be positive")
	}
	if m.Decay <= 0 || m.Decay > 1 {
		return fmt.Errorf("mindmap decay must be in (0, 1]")
	}
	if len(m.Palette) == 0 {
		return fmt.Errorf("mindmap palette must not be empty")
	}

	return nil
}
