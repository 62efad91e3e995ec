package ui

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
)

// plainSparkWidth is the number of samples shown per line.
const plainSparkWidth = 20

// plainPresenter prints one line per sample, for pipes and dumb terminals.
type plainPresenter struct {
	w        io.Writer
	errW     io.Writer
	monitors []Monitor
	verbose  bool
}

func (p *plainPresenter) Run(events <-chan Event) error {
	for ev := range events {
		p.handleEvent(ev)
	}
	return nil
}

func (p *plainPresenter) handleEvent(ev Event) {
	if !record(p.monitors, ev) {
		return
	}
	m := p.monitors[ev.Monitor]
	switch ev.Type {
	case SampleReceived:
		line := fmt.Sprintf("%s %6s", PadRight(m.Title, p.titleWidth()), FormatPercent(ev.Value))
		if m.Stats != nil {
			snap := m.Stats.Snapshot(summaryWindow)
			spark := Sparkline(m.Stats.SparklineData(plainSparkWidth), plainSparkWidth, 100)
			line += fmt.Sprintf("  %s  avg %s", spark, FormatPercent(snap.Avg))
		}
		fmt.Fprintln(p.w, line)
	case SampleFailed:
		errMsg := "error"
		if ev.Error != nil {
			errMsg = ev.Error.Error()
		}
		fmt.Fprintf(p.errW, "%s  %s\n", m.Title, errMsg)
	case SamplerStarted, SamplerStopped:
		if p.verbose {
			fmt.Fprintf(p.errW, "%s: %s (%s)\n", m.Title, ev.Type, ev.Source)
		}
	}
}

func (p *plainPresenter) titleWidth() int {
	w := 0
	for _, m := range p.monitors {
		w = max(w, runewidth.StringWidth(m.Title))
	}
	return w
}

func (p *plainPresenter) Summary() string {
	return CompletionSummary(p.monitors)
}
