// Package config loads the gaugectl configuration: output settings, logging
// and the list of gauges to render.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the root configuration.
type Config struct {
	Output  OutputConfig  `mapstructure:"output"  yaml:"output"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
	Gauges  []GaugeSpec   `mapstructure:"gauges"  yaml:"gauges"`
}

// OutputConfig controls where and how gauges are written.
type OutputConfig struct {
	Dir         string   `mapstructure:"dir"         yaml:"dir"`
	Formats     []string `mapstructure:"formats"     yaml:"formats"` // "svg", "html", "png"
	Scale       float64  `mapstructure:"scale"       yaml:"scale"`   // png pixels per viewport unit
	Concurrency int      `mapstructure:"concurrency" yaml:"concurrency"`
	Stylesheet  string   `mapstructure:"stylesheet"  yaml:"stylesheet"` // linked from html output
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format"` // "text" or "json"
}

// Formats accepted in output.formats.
const (
	FormatSVG  = "svg"
	FormatHTML = "html"
	FormatPNG  = "png"
)

// Load reads ./gaugectl.yaml or ~/.gaugectl/gaugectl.yaml when present,
// applies GAUGECTL_ environment overrides and validates the result.
func Load() (*Config, error) {
	v := newViper()
	v.SetConfigName("gaugectl")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath(filepath.Join(homeDir(), ".gaugectl"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return decode(v)
}

// LoadFromFile reads configuration from an explicit path.
func LoadFromFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("GAUGECTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output.dir", "out")
	v.SetDefault("output.formats", []string{FormatSVG, FormatHTML})
	v.SetDefault("output.scale", 2.0)
	v.SetDefault("output.concurrency", 4)
	v.SetDefault("output.stylesheet", "gauge.css")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// Validate checks settings that would otherwise fail midway through a render.
func (c *Config) Validate() error {
	var errs []error
	for _, f := range c.Output.Formats {
		switch f {
		case FormatSVG, FormatHTML, FormatPNG:
		default:
			errs = append(errs, fmt.Errorf("output.formats: unknown format %q", f))
		}
	}
	if c.Output.Concurrency < 1 {
		errs = append(errs, fmt.Errorf("output.concurrency: must be at least 1, got %d", c.Output.Concurrency))
	}
	if _, err := ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, err)
	}
	if f := c.Logging.Format; f != "text" && f != "json" {
		errs = append(errs, fmt.Errorf("logging.format: unknown format %q", f))
	}

	seen := make(map[string]bool, len(c.Gauges))
	for i, g := range c.Gauges {
		if g.Name == "" {
			errs = append(errs, fmt.Errorf("gauges[%d]: name is required", i))
			continue
		}
		if seen[g.Name] {
			errs = append(errs, fmt.Errorf("gauges[%d]: duplicate name %q", i, g.Name))
		}
		seen[g.Name] = true
		if err := g.validate(); err != nil {
			errs = append(errs, fmt.Errorf("gauges[%d] %s: %w", i, g.Name, err))
		}
	}
	return errors.Join(errs...)
}

// Gauge returns the gauge entry with the given name.
func (c *Config) Gauge(name string) (GaugeSpec, bool) {
	for _, g := range c.Gauges {
		if g.Name == name {
			return g, true
		}
	}
	return GaugeSpec{}, false
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("logging.level: unknown level %q", s)
	}
	return l, nil
}

// NewLogger builds a logger writing to w according to the logging section.
func (l LoggingConfig) NewLogger(w io.Writer) *slog.Logger {
	level, err := ParseLevel(l.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
