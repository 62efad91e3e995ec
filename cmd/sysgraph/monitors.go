package main

import (
	"fmt"
	"strings"

	"github.com/bamsammich/sysgraph/internal/config"
	"github.com/bamsammich/sysgraph/internal/stats"
	"github.com/bamsammich/sysgraph/internal/ui"
	"github.com/bamsammich/sysgraph/internal/ui/tui"
)

// defaultSources are charted when neither flags nor config name any.
var defaultSources = []string{"cpu", "mem"}

// monitorFlag is a custom pflag.Value that collects repeated --monitor
// flags in CLI order. Each value is SOURCE or SOURCE=#rrggbb.
type monitorFlag struct {
	monitors *[]config.MonitorConfig
}

func (*monitorFlag) String() string { return "" }
func (*monitorFlag) Type() string   { return "source[=#color]" }

func (f *monitorFlag) Set(val string) error {
	source, clr, hasColor := strings.Cut(val, "=")
	source = strings.TrimSpace(source)
	if source == "" {
		return fmt.Errorf("empty monitor source in %q", val)
	}
	if hasColor {
		if _, err := config.ParseColor(clr); err != nil {
			return err
		}
	}
	*f.monitors = append(*f.monitors, config.MonitorConfig{Source: source, Color: clr})
	return nil
}

// titleFor derives a card title from a source name.
func titleFor(source string) string {
	name, arg, _ := strings.Cut(source, ":")
	switch name {
	case "cpu":
		return "CPU"
	case "mem":
		return "Memory"
	case "swap":
		return "Swap"
	case "disk":
		if arg == "" {
			arg = "/"
		}
		return "Disk " + arg
	case "sine":
		return "Sine"
	default:
		return source
	}
}

// resolveMonitors picks the monitor list (flags, then config, then the
// defaults) and fills in titles, colors and stats.
func resolveMonitors(fromFlags, fromConfig []config.MonitorConfig) ([]ui.Monitor, error) {
	entries := fromFlags
	if len(entries) == 0 {
		entries = fromConfig
	}
	if len(entries) == 0 {
		for _, s := range defaultSources {
			entries = append(entries, config.MonitorConfig{Source: s})
		}
	}

	monitors := make([]ui.Monitor, len(entries))
	for i, mc := range entries {
		if mc.Source == "" {
			return nil, fmt.Errorf("monitor %d: missing source", i+1)
		}
		m := ui.Monitor{
			Title:  mc.Title,
			Source: mc.Source,
			Color:  tui.SeriesColor(i),
			Stats:  stats.NewSeries(),
		}
		if m.Title == "" {
			m.Title = titleFor(mc.Source)
		}
		if mc.Color != "" {
			c, err := config.ParseColor(mc.Color)
			if err != nil {
				return nil, fmt.Errorf("monitor %s: %w", m.Title, err)
			}
			m.Color = c
		}
		monitors[i] = m
	}
	return monitors, nil
}
