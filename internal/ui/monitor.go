package ui

import (
	"image/color"

	"github.com/bamsammich/sysgraph/internal/stats"
)

// Monitor describes one charted metric as seen by presenters.
type Monitor struct {
	Title  string
	Source string
	Color  color.RGBA
	Stats  *stats.Series
}

// summaryWindow is how many recent samples summaries are computed over.
const summaryWindow = 60
