// Package config handles configuration loading and validation for reviews.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/hay-kot/criterio"
	"gopkg.in/yaml.v3"
)

// SourceFixture selects the embedded review feed.
const SourceFixture = "fixture"

// Config holds the application configuration.
type Config struct {
	// Source is "fixture" or the http(s) base URL of a review feed.
	Source         string        `yaml:"source"`
	Token          string        `yaml:"token"`
	PageSize       int           `yaml:"page_size"`
	LoadMultiplier float64       `yaml:"load_multiplier"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	FixtureLatency time.Duration `yaml:"fixture_latency"`
	MaxLines       int           `yaml:"max_lines"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Source:         SourceFixture,
		PageSize:       20,
		LoadMultiplier: 2.5,
		RequestTimeout: 10 * time.Second,
		FixtureLatency: 300 * time.Millisecond,
		MaxLines:       3,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/reviews/config.yaml, falling back to
// ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "reviews", "config.yaml")
}

// Load reads the config at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("config.Load: parse %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("config.Load: read %s: %w", path, err)
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config.Load: invalid config: %w", err)
	}
	return &cfg, nil
}

// IsFixture reports whether the embedded feed is selected.
func (c *Config) IsFixture() bool {
	return c.Source == SourceFixture
}

// applyDefaults sets default values for zero-valued options.
func (c *Config) applyDefaults() {
	d := DefaultConfig()
	if c.Source == "" {
		c.Source = d.Source
	}
	if c.PageSize == 0 {
		c.PageSize = d.PageSize
	}
	if c.LoadMultiplier == 0 {
		c.LoadMultiplier = d.LoadMultiplier
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = d.RequestTimeout
	}
	if c.MaxLines == 0 {
		c.MaxLines = d.MaxLines
	}
}

// Validate checks that the configuration is usable. Errors are
// criterio.FieldErrors keyed by yaml field name.
func (c *Config) Validate() error {
	var errs criterio.FieldErrorsBuilder

	if err := validateSource(c.Source); err != nil {
		errs = errs.Append("source", err)
	}
	if c.PageSize < 1 || c.PageSize > 100 {
		errs = errs.Append("page_size", fmt.Errorf("must be between 1 and 100, got %d", c.PageSize))
	}
	if c.LoadMultiplier <= 0 {
		errs = errs.Append("load_multiplier", fmt.Errorf("must be positive, got %g", c.LoadMultiplier))
	}
	if c.RequestTimeout < 0 {
		errs = errs.Append("request_timeout", fmt.Errorf("must not be negative"))
	}
	if c.FixtureLatency < 0 {
		errs = errs.Append("fixture_latency", fmt.Errorf("must not be negative"))
	}
	if c.MaxLines < 1 {
		errs = errs.Append("max_lines", fmt.Errorf("must be at least 1, got %d", c.MaxLines))
	}

	return errs.ToError()
}

// SourceField returns a criterio validator for a source flag value.
func SourceField(field, source string) error {
	return criterio.Run(field, source, validateSource)
}

func validateSource(source string) error {
	if source == SourceFixture {
		return nil
	}
	u, err := url.Parse(source)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("must be %q or an http(s) url, got %q", SourceFixture, source)
	}
	if u.Host == "" {
		return fmt.Errorf("url %q has no host", source)
	}
	return nil
}
