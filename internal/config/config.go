package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment overrides. Nested keys use a double
// underscore: JAYSHREE_SERVER__PORT -> server.port.
const EnvPrefix = "JAYSHREE_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (JAYSHREE_*).
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

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
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
	if c.SiteName == "" {
		return fmt.Errorf("site_name is required")
	}
	if c.DefaultCategory == "" {
		return fmt.Errorf("default_category is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Server.RateLimit < 0 {
		return fmt.Errorf("server.rate_limit must be non-negative")
	}
	if c.Server.RateLimit > 0 && c.Server.RateBurst < 1 {
		return fmt.Errorf("server.rate_burst must be at least 1 when rate limiting")
	}

	if err := ValidateNumber(c.WhatsApp.Number); err != nil {
		return fmt.Errorf("whatsapp.number: %w", err)
	}

	if _, err := time.LoadLocation(c.Hours.Timezone); err != nil {
		return fmt.Errorf("invalid hours.timezone %q: %w", c.Hours.Timezone, err)
	}
	if c.Hours.OpenHour < 0 || c.Hours.CloseHour > 24 || c.Hours.OpenHour >= c.Hours.CloseHour {
		return fmt.Errorf("hours must satisfy 0 <= open_hour < close_hour <= 24")
	}

	if c.Scroll.HeaderOffset < 0 || c.Scroll.NarrowHeaderOffset < 0 {
		return fmt.Errorf("scroll header offsets must be non-negative")
	}
	if c.Scroll.BandBottom <= 0 || c.Scroll.BandBottom >= 1 {
		return fmt.Errorf("scroll.band_bottom must be between 0 and 1")
	}
	if c.Scroll.TopThreshold < 0 {
		return fmt.Errorf("scroll.top_threshold must be non-negative")
	}

	return nil
}

// ValidateNumber checks a WhatsApp number: digits only, international format,
// no leading '+' or zeros.
func ValidateNumber(n string) error {
	if n == "" {
		return fmt.Errorf("number is required")
	}
	if n[0] == '0' {
		return fmt.Errorf("number %q must not start with 0", n)
	}
	for _, r := range n {
		if r < '0' || r > '9' {
			return fmt.Errorf("number %q must contain digits only", n)
		}
	}
	if len(n) < 8 || len(n) > 15 {
		return fmt.Errorf("number %q must have 8 to 15 digits", n)
	}
	return nil
}
