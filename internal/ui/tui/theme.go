package tui

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/lipgloss"

	"github.com/bamsammich/sysgraph/internal/config"
)

// Catppuccin Mocha palette, overridable from config.
var (
	ColorBackground = lipgloss.Color("#1e1e2e")
	ColorTitle      = lipgloss.Color("#cdd6f4")
	ColorBorder     = lipgloss.Color("#3a4055")
	ColorMuted      = lipgloss.Color("#5a6278")
	ColorYellow     = lipgloss.Color("#f9e2af")
	ColorMauve      = lipgloss.Color("#cba6f7")
)

// SeriesColors are assigned to monitors without an explicit color.
var SeriesColors = []string{
	"#89b4fa", // blue
	"#a6e3a1", // green
	"#f9e2af", // yellow
	"#cba6f7", // mauve
	"#f38ba8", // red
	"#94e2d5", // teal
}

// SeriesColor returns the default color of the i-th monitor.
func SeriesColor(i int) color.RGBA {
	c, _ := config.ParseColor(SeriesColors[i%len(SeriesColors)]) //nolint:errcheck // palette is constant
	return c
}

// Pre-built styles, rebuilt by rebuildStyles() after color changes.
var (
	styleHeader       lipgloss.Style
	styleHeaderLabel  lipgloss.Style
	styleCard         lipgloss.Style
	styleStat         lipgloss.Style
	styleKeybindKey   lipgloss.Style
	styleKeybindLabel lipgloss.Style
	styleStatus       lipgloss.Style
	styleSavePrompt   lipgloss.Style
	styleSaveInput    lipgloss.Style

	// background is ColorBackground as an RGBA value for blending.
	background color.RGBA
)

func init() {
	rebuildStyles()
}

// rebuildStyles reconstructs all lipgloss styles from the current color vars.
func rebuildStyles() {
	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(ColorTitle)
	styleHeaderLabel = lipgloss.NewStyle().Bold(true).Foreground(ColorMauve)
	styleCard = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)
	styleStat = lipgloss.NewStyle().Foreground(ColorMuted)
	styleKeybindKey = lipgloss.NewStyle().Foreground(ColorMauve).Bold(true)
	styleKeybindLabel = lipgloss.NewStyle().Foreground(ColorMuted)
	styleStatus = lipgloss.NewStyle().Foreground(ColorYellow).Italic(true)
	styleSavePrompt = lipgloss.NewStyle().Foreground(ColorMuted)
	styleSaveInput = lipgloss.NewStyle().Foreground(ColorTitle)

	bg, err := config.ParseColor(string(ColorBackground))
	if err != nil {
		bg = color.RGBA{R: 0x1e, G: 0x1e, B: 0x2e, A: 0xff}
	}
	background = bg
}

// ApplyTheme overrides colors from a config ThemeConfig and rebuilds all styles.
func ApplyTheme(tc config.ThemeConfig) {
	if tc.Background != nil {
		ColorBackground = lipgloss.Color(*tc.Background)
	}
	if tc.Title != nil {
		ColorTitle = lipgloss.Color(*tc.Title)
	}
	if tc.Border != nil {
		ColorBorder = lipgloss.Color(*tc.Border)
	}
	if tc.Muted != nil {
		ColorMuted = lipgloss.Color(*tc.Muted)
	}
	rebuildStyles()
}

func hexColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
