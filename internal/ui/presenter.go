package ui

import (
	"io"
)

// Presenter consumes sampler events and displays them.
type Presenter interface {
	// Run consumes events until the channel closes. Blocks until done.
	Run(events <-chan Event) error
	// Summary returns the final summary line.
	Summary() string
}

// Config configures a Presenter.
type Config struct {
	Writer    io.Writer
	ErrWriter io.Writer
	Monitors  []Monitor
	Quiet     bool
	Verbose   bool
}

// NewPresenter creates the line-oriented presenter used when no terminal
// UI is available.
//
//nolint:ireturn // factory function returns interface by design
func NewPresenter(cfg Config) Presenter {
	if cfg.Quiet {
		return &quietPresenter{monitors: cfg.Monitors}
	}
	return &plainPresenter{
		w:        cfg.Writer,
		errW:     cfg.ErrWriter,
		monitors: cfg.Monitors,
		verbose:  cfg.Verbose,
	}
}

// record applies a sample event to the monitor's stats. It reports false
// for events that name no known monitor.
func record(monitors []Monitor, ev Event) bool {
	if ev.Monitor < 0 || ev.Monitor >= len(monitors) {
		return false
	}
	s := monitors[ev.Monitor].Stats
	if s == nil {
		return true
	}
	switch ev.Type {
	case SampleReceived:
		s.Add(ev.Value)
	case SampleFailed:
		s.AddFailed()
	}
	return true
}
