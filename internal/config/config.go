// Package config loads the application configuration from YAML with
// environment variable overrides.
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

// envPrefix namespaces the environment overrides. A double underscore
// separates nesting levels so multi-word keys keep their single
// underscores: STARFIELD_WINDOW__WIDTH overrides window.width,
// STARFIELD_FIELD__LINK_THRESHOLD overrides field.link_threshold.
const envPrefix = "STARFIELD_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides. A missing file is not an error; defaults
// apply.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".")
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
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window dimensions must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.Window.TPS)
	}
	if c.Field.Density <= 0 {
		return fmt.Errorf("field density must be positive, got %g", c.Field.Density)
	}
	if c.Field.LinkThreshold < 0 || c.Field.PointerThreshold < 0 {
		return fmt.Errorf("thresholds must be non-negative")
	}
	if c.Field.Attraction < 0 || c.Field.Attraction > 1 {
		return fmt.Errorf("attraction must be in [0, 1], got %g", c.Field.Attraction)
	}
	if c.Field.MinRadius > c.Field.MaxRadius {
		return fmt.Errorf("min_radius %g exceeds max_radius %g", c.Field.MinRadius, c.Field.MaxRadius)
	}
	if c.Field.MaxSpeed < 0 {
		return fmt.Errorf("max_speed must be non-negative, got %g", c.Field.MaxSpeed)
	}
	if c.Settings.Path == "" {
		return fmt.Errorf("settings path is required")
	}
	return nil
}
