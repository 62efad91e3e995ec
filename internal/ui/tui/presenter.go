package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bamsammich/sysgraph/internal/chart"
	"github.com/bamsammich/sysgraph/internal/config"
	"github.com/bamsammich/sysgraph/internal/event"
	"github.com/bamsammich/sysgraph/internal/ui"
)

// Config configures the TUI presenter.
type Config struct {
	Context  context.Context //nolint:containedctx // bubbletea takes the context at program construction
	Monitors []ui.Monitor
	Params   chart.Params
	Theme    config.ThemeConfig
}

// DefaultParams returns chart parameters sized for terminal cells, where
// one pixel is a column wide and half a row tall.
func DefaultParams() chart.Params {
	p := chart.DefaultParams()
	p.SpacingPerSecond = 2
	p.CornerRadius = 2
	return p
}

// Presenter wraps a Bubble Tea program and implements ui.Presenter.
type Presenter struct {
	cfg   Config
	model Model
}

// NewPresenter creates a new TUI presenter.
func NewPresenter(cfg Config) *Presenter {
	ApplyTheme(cfg.Theme)
	if cfg.Context == nil {
		cfg.Context = context.Background()
	}
	return &Presenter{cfg: cfg}
}

// Run starts the Bubble Tea program and blocks until the user quits or
// the context is cancelled.
func (p *Presenter) Run(events <-chan event.Event) error {
	p.model = NewModel(events, p.cfg.Monitors, p.cfg.Params)
	prog := tea.NewProgram(
		p.model,
		tea.WithAltScreen(),
		tea.WithContext(p.cfg.Context),
		tea.WithoutSignalHandler(),
	)
	finalModel, err := prog.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && p.cfg.Context.Err() != nil {
			return nil
		}
		return err
	}
	p.model = finalModel.(Model) //nolint:forcetypeassert // the program only ever holds a Model
	return nil
}

// Summary returns the final summary line.
func (p *Presenter) Summary() string {
	return ui.CompletionSummary(p.cfg.Monitors)
}
