package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/bamsammich/sysgraph/internal/chart"
)

// Config represents the optional sysgraph configuration file.
type Config struct {
	Chart    ChartConfig     `toml:"chart"`
	Monitors []MonitorConfig `toml:"monitors"`
	Theme    ThemeConfig     `toml:"theme"`
}

// ChartConfig holds chart parameter overrides.
type ChartConfig struct {
	LineWidth        *float64 `toml:"line_width"`
	FillAlpha        *float64 `toml:"fill_alpha"`
	SpacingPerSecond *float64 `toml:"spacing_per_second"`
	ReleaseMargin    *int     `toml:"release_margin"`
	CornerRadius     *float64 `toml:"corner_radius"`
	RedrawHz         *float64 `toml:"redraw_hz"`
	Interval         *string  `toml:"interval"`
}

// MonitorConfig describes one chart card.
type MonitorConfig struct {
	Title  string `toml:"title"`
	Source string `toml:"source"`
	Color  string `toml:"color"`
}

// ThemeConfig holds optional color overrides for the terminal UI.
type ThemeConfig struct {
	Background *string `toml:"background"`
	Title      *string `toml:"title"`
	Border     *string `toml:"border"`
	Muted      *string `toml:"muted"`
}

// Path returns the resolved path to the config file.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "sysgraph", "config.toml")
}

// Load reads the config file from the XDG path. Returns a zero Config
// (no error) if the file does not exist. Config is always optional.
func Load() (Config, error) {
	path := Path()
	if path == "" {
		return Config{}, nil
	}
	return LoadFile(path)
}

// LoadFile reads a config file from an explicit path. A missing file
// yields a zero Config.
func LoadFile(path string) (Config, error) {
	var cfg Config
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Apply overlays the set fields onto p.
func (c ChartConfig) Apply(p chart.Params) (chart.Params, error) {
	if c.LineWidth != nil {
		p.LineWidth = *c.LineWidth
	}
	if c.FillAlpha != nil {
		p.FillAlpha = *c.FillAlpha
	}
	if c.SpacingPerSecond != nil {
		p.SpacingPerSecond = *c.SpacingPerSecond
	}
	if c.ReleaseMargin != nil {
		p.ReleaseMargin = *c.ReleaseMargin
	}
	if c.CornerRadius != nil {
		p.CornerRadius = *c.CornerRadius
	}
	if c.RedrawHz != nil {
		p.TickFrequency = *c.RedrawHz
	}
	if c.Interval != nil {
		d, err := time.ParseDuration(*c.Interval)
		if err != nil {
			return p, fmt.Errorf("chart.interval: %w", err)
		}
		if d <= 0 {
			return p, fmt.Errorf("chart.interval: must be positive, got %s", d)
		}
		p.SampleInterval = d
	}
	return p, nil
}

// ParseColor parses "#rrggbb", "rrggbb" or "#rgb" into an opaque color.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 0xff}, nil
}
