package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/bamsammich/sysgraph/internal/chart"
	"github.com/bamsammich/sysgraph/internal/config"
	"github.com/bamsammich/sysgraph/internal/event"
	"github.com/bamsammich/sysgraph/internal/sampler"
	"github.com/bamsammich/sysgraph/internal/ui"
)

// chartFlags are the chart-tuning flags shared by every command.
type chartFlags struct {
	monitors []config.MonitorConfig
	redrawHz float64
	interval time.Duration
	logFile  string
	verbose  bool
}

// chartParams overlays the config file and then explicitly set flags
// onto base.
func (f *chartFlags) chartParams(cmd *cobra.Command, cfg config.ChartConfig, base chart.Params) (chart.Params, error) {
	p, err := cfg.Apply(base)
	if err != nil {
		return p, fmt.Errorf("config: %w", err)
	}
	if cmd.Flags().Changed("redraw-hz") {
		if f.redrawHz <= 0 {
			return p, fmt.Errorf("--redraw-hz must be positive, got %g", f.redrawHz)
		}
		p.TickFrequency = f.redrawHz
	}
	if cmd.Flags().Changed("interval") {
		if f.interval <= 0 {
			return p, fmt.Errorf("--interval must be positive, got %s", f.interval)
		}
		p.SampleInterval = f.interval
	}
	return p, nil
}

// setupLogging installs the default slog logger: text on stderr at
// stderrLevel, plus a JSON log file at Debug when --log is set. The
// returned func closes the log file.
func (f *chartFlags) setupLogging(stderr io.Writer, stderrLevel slog.Level) (func(), error) {
	textHandler := slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: stderrLevel,
	})
	var logHandler slog.Handler = textHandler
	closeLog := func() {}
	if f.logFile != "" {
		lf, err := os.Create(f.logFile)
		if err != nil {
			return closeLog, fmt.Errorf("open log file: %w", err)
		}
		closeLog = func() { _ = lf.Close() } //nolint:errcheck // best effort on exit
		jsonHandler := slog.NewJSONHandler(lf, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
		logHandler = ui.NewMultiHandler(textHandler, jsonHandler)
	}
	slog.SetDefault(slog.New(logHandler))
	return closeLog, nil
}

// logLevel is the stderr level for the given verbosity.
func (f *chartFlags) logLevel() slog.Level {
	if f.verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// samplerSet runs one poller per monitor and publishes their values as
// events.
type samplerSet struct {
	pollers []*sampler.Poller
	events  chan event.Event
	cancel  context.CancelFunc
}

// startSamplers creates and starts a poller for every monitor. Sends on
// the events channel give up once ctx is done.
func startSamplers(ctx context.Context, monitors []ui.Monitor, interval time.Duration) (*samplerSet, error) {
	pollers := make([]*sampler.Poller, len(monitors))
	for i, m := range monitors {
		p, err := sampler.New(m.Source, interval)
		if err != nil {
			return nil, fmt.Errorf("monitor %s: %w", m.Title, err)
		}
		pollers[i] = p
	}

	ctx, cancel := context.WithCancel(ctx)
	set := &samplerSet{
		pollers: pollers,
		events:  make(chan event.Event, 256),
		cancel:  cancel,
	}
	send := func(ev event.Event) {
		select {
		case set.events <- ev:
		case <-ctx.Done():
		}
	}

	for i, p := range pollers {
		source := monitors[i].Source
		p.OnSample(func(v float64) {
			send(event.Event{
				Type:      event.SampleReceived,
				Timestamp: time.Now(),
				Monitor:   i,
				Source:    source,
				Value:     v,
			})
		})
		p.OnError(func(err error) {
			send(event.Event{
				Type:      event.SampleFailed,
				Timestamp: time.Now(),
				Monitor:   i,
				Source:    source,
				Error:     err,
			})
		})
		send(event.Event{
			Type:      event.SamplerStarted,
			Timestamp: time.Now(),
			Monitor:   i,
			Source:    source,
		})
		p.Start(ctx)
		slog.Debug("sampler started", "source", source, "interval", p.Interval())
	}
	return set, nil
}

// stop halts every poller, reports them stopped if there is room, and
// closes the events channel.
func (s *samplerSet) stop() {
	s.cancel()
	var wg sync.WaitGroup
	for _, p := range s.pollers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Stop()
		}()
	}
	wg.Wait()

	for i, p := range s.pollers {
		select {
		case s.events <- event.Event{
			Type:      event.SamplerStopped,
			Timestamp: time.Now(),
			Monitor:   i,
			Source:    p.Source(),
		}:
		default:
		}
	}
	close(s.events)
}

// teeEvents writes a structured record for every event before forwarding
// it.
func teeEvents(events <-chan event.Event) <-chan event.Event {
	teed := make(chan event.Event, 256)
	go func() {
		for ev := range events {
			attrs := []slog.Attr{
				slog.String("type", ev.Type.String()),
				slog.Int("monitor", ev.Monitor),
				slog.String("source", ev.Source),
			}
			if ev.Type == event.SampleReceived {
				attrs = append(attrs, slog.Float64("value", ev.Value))
			}
			if ev.Error != nil {
				attrs = append(attrs, slog.String("error", ev.Error.Error()))
			}
			slog.LogAttrs(context.Background(), slog.LevelInfo, "sysgraph.event", attrs...)
			teed <- ev
		}
		close(teed)
	}()
	return teed
}
