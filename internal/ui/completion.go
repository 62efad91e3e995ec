package ui

import (
	"fmt"
	"strings"
)

// CompletionSummary builds a final summary line from the monitors' stats.
// Format: done ✓  CPU avg 12% max 48%  Memory avg 61% max 62%  samples 120  errors 0
func CompletionSummary(monitors []Monitor) string {
	var (
		b       strings.Builder
		samples int64
		failed  int64
	)

	icon := "✓"
	for _, m := range monitors {
		if m.Stats != nil && m.Stats.Snapshot(0).Failed > 0 {
			icon = "✗"
		}
	}
	b.WriteString("done " + icon)

	for _, m := range monitors {
		if m.Stats == nil {
			continue
		}
		snap := m.Stats.Snapshot(summaryWindow)
		samples += snap.Samples
		failed += snap.Failed
		if snap.Samples == 0 {
			fmt.Fprintf(&b, "  %s --", m.Title)
			continue
		}
		fmt.Fprintf(&b, "  %s avg %s max %s", m.Title, FormatPercent(snap.Avg), FormatPercent(snap.Max))
	}

	fmt.Fprintf(&b, "  samples %s  errors %d", FormatCount(samples), failed)
	return b.String()
}
