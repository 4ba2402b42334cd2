// Package config loads the optional clockface.yaml configuration and
// resolves it into concrete display settings. A missing file yields
// defaults; a malformed file or invalid values are fatal configuration
// errors.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/clockface/pkg/dial"
	"github.com/go-drift/clockface/pkg/driver"
	"github.com/go-drift/clockface/pkg/rendering"
	"github.com/go-drift/clockface/pkg/timesync"
)

// Default display settings.
const (
	DefaultWidth  = 480.0
	DefaultHeight = 480.0
	DefaultAddr   = ":8650"
	DefaultFormat = "svg"
	DefaultOutput = "clock.svg"
)

// Config represents the optional clockface.yaml configuration.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Theme    ThemeConfig    `yaml:"theme"`
	Time     TimeConfig     `yaml:"time"`
	Tick     TickConfig     `yaml:"tick"`
	Preview  PreviewConfig  `yaml:"preview"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
}

// WindowConfig contains the viewport dimensions.
type WindowConfig struct {
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
}

// ThemeConfig selects a base color scheme and optional per-element
// overrides as #rrggbb strings.
type ThemeConfig struct {
	Variant    string `yaml:"variant,omitempty"` // "light" or "dark"
	Background string `yaml:"background,omitempty"`
	Tick       string `yaml:"tick,omitempty"`
	HourTick   string `yaml:"hour_tick,omitempty"`
	Numeral    string `yaml:"numeral,omitempty"`
	HourHand   string `yaml:"hour_hand,omitempty"`
	MinuteHand string `yaml:"minute_hand,omitempty"`
	SecondHand string `yaml:"second_hand,omitempty"`
	Ornament   string `yaml:"ornament,omitempty"`
}

// TimeConfig controls the startup time acquisition.
type TimeConfig struct {
	Endpoint string `yaml:"endpoint,omitempty"`
	Local    bool   `yaml:"local,omitempty"` // skip the network lookup entirely
}

// TickConfig controls update scheduling.
type TickConfig struct {
	Interval string `yaml:"interval,omitempty"` // e.g. "1s"
	Debounce string `yaml:"debounce,omitempty"` // e.g. "200ms"
}

// PreviewConfig contains the preview server settings.
type PreviewConfig struct {
	Addr string `yaml:"addr,omitempty"`
}

// SnapshotConfig contains one-shot rendering settings.
type SnapshotConfig struct {
	Format string `yaml:"format,omitempty"` // "svg" or "png"
	Output string `yaml:"output,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Size           rendering.Size
	Theme          dial.Theme
	Endpoint       string
	LocalOnly      bool
	TickInterval   time.Duration
	ResizeDebounce time.Duration
	Addr           string
	SnapshotFormat string
	SnapshotOutput string
}

// LoadOptional reads clockface.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "clockface.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read clockface.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse clockface.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads clockface.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	resolved := &Resolved{
		Size:           rendering.Size{Width: DefaultWidth, Height: DefaultHeight},
		Endpoint:       timesync.DefaultEndpoint,
		TickInterval:   driver.DefaultTickInterval,
		ResizeDebounce: driver.DefaultResizeDebounce,
		Addr:           DefaultAddr,
		SnapshotFormat: DefaultFormat,
		SnapshotOutput: DefaultOutput,
	}

	if cfg.Window.Width != 0 || cfg.Window.Height != 0 {
		resolved.Size = rendering.Size{Width: cfg.Window.Width, Height: cfg.Window.Height}
		if resolved.Size.IsEmpty() {
			return nil, fmt.Errorf("window %gx%g is not a valid viewport", cfg.Window.Width, cfg.Window.Height)
		}
	}

	theme, err := resolveTheme(cfg.Theme)
	if err != nil {
		return nil, err
	}
	resolved.Theme = theme

	if cfg.Time.Endpoint != "" {
		resolved.Endpoint = cfg.Time.Endpoint
	}
	resolved.LocalOnly = cfg.Time.Local

	if cfg.Tick.Interval != "" {
		d, err := time.ParseDuration(cfg.Tick.Interval)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid tick interval %q", cfg.Tick.Interval)
		}
		resolved.TickInterval = d
	}
	if cfg.Tick.Debounce != "" {
		d, err := time.ParseDuration(cfg.Tick.Debounce)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid resize debounce %q", cfg.Tick.Debounce)
		}
		resolved.ResizeDebounce = d
	}

	if cfg.Preview.Addr != "" {
		resolved.Addr = cfg.Preview.Addr
	}

	switch cfg.Snapshot.Format {
	case "":
	case "svg", "png":
		resolved.SnapshotFormat = cfg.Snapshot.Format
		if cfg.Snapshot.Output == "" {
			resolved.SnapshotOutput = "clock." + cfg.Snapshot.Format
		}
	default:
		return nil, fmt.Errorf("invalid snapshot format %q (expected svg or png)", cfg.Snapshot.Format)
	}
	if cfg.Snapshot.Output != "" {
		resolved.SnapshotOutput = cfg.Snapshot.Output
	}

	return resolved, nil
}

// ResolveVariant returns the named base theme without overrides.
func ResolveVariant(variant string) (dial.Theme, error) {
	return resolveTheme(ThemeConfig{Variant: variant})
}

// resolveTheme builds a theme from the named variant plus overrides.
func resolveTheme(cfg ThemeConfig) (dial.Theme, error) {
	var theme dial.Theme
	switch cfg.Variant {
	case "", "light":
		theme = dial.DefaultLightTheme()
	case "dark":
		theme = dial.DefaultDarkTheme()
	default:
		return theme, fmt.Errorf("unknown theme variant %q (expected light or dark)", cfg.Variant)
	}

	overrides := []struct {
		value string
		dst   *rendering.Color
	}{
		{cfg.Background, &theme.Background},
		{cfg.Tick, &theme.Tick},
		{cfg.HourTick, &theme.HourTick},
		{cfg.Numeral, &theme.Numeral},
		{cfg.HourHand, &theme.HourHand},
		{cfg.MinuteHand, &theme.MinuteHand},
		{cfg.SecondHand, &theme.SecondHand},
		{cfg.Ornament, &theme.Ornament},
	}
	for _, o := range overrides {
		if o.value == "" {
			continue
		}
		color, err := rendering.ParseHex(o.value)
		if err != nil {
			return theme, err
		}
		*o.dst = color
	}

	return theme, nil
}
