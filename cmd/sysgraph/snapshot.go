package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bamsammich/sysgraph/internal/chart"
	"github.com/bamsammich/sysgraph/internal/config"
	"github.com/bamsammich/sysgraph/internal/raster"
	"github.com/bamsammich/sysgraph/internal/sampler"
	"github.com/bamsammich/sysgraph/internal/tick"
	"github.com/bamsammich/sysgraph/internal/ui"
	"github.com/bamsammich/sysgraph/internal/ui/tui"
)

// snapshotGap is the vertical spacing between stacked charts, in pixels.
const snapshotGap = 8

type snapshotOpts struct {
	duration time.Duration
	width    int
	height   int
	out      string
}

func newSnapshotCmd(flags *chartFlags) *cobra.Command {
	var opts snapshotOpts

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Sample for a while and write the charts to a PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.duration <= 0 {
				return fmt.Errorf("--duration must be positive, got %s", opts.duration)
			}
			if opts.width <= 0 || opts.height <= 0 {
				return fmt.Errorf("invalid chart size %dx%d", opts.width, opts.height)
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			closeLog, err := flags.setupLogging(cmd.ErrOrStderr(), flags.logLevel())
			if err != nil {
				return err
			}
			defer closeLog()

			params, err := flags.chartParams(cmd, cfg.Chart, chart.DefaultParams())
			if err != nil {
				return err
			}
			monitors, err := resolveMonitors(flags.monitors, cfg.Monitors)
			if err != nil {
				return err
			}
			tui.ApplyTheme(cfg.Theme)
			bg, err := config.ParseColor(string(tui.ColorBackground))
			if err != nil {
				return fmt.Errorf("theme background: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			graphs, err := sampleCharts(ctx, monitors, params, opts.duration)
			if err != nil {
				return err
			}

			canvases := make([]*raster.Canvas, len(graphs))
			for i, g := range graphs {
				c := raster.New(opts.width, opts.height)
				c.Execute(g.Draw(float64(opts.width), float64(opts.height)))
				canvases[i] = c
				slog.Info("chart rendered", "monitor", monitors[i].Title, "samples", g.Len())
			}
			img := raster.Stack(canvases, snapshotGap, bg)

			f, err := os.Create(opts.out)
			if err != nil {
				return fmt.Errorf("create %s: %w", opts.out, err)
			}
			if err := raster.WritePNG(f, img); err != nil {
				_ = f.Close() //nolint:errcheck // already failing
				return fmt.Errorf("write %s: %w", opts.out, err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close %s: %w", opts.out, err)
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%dx%d)\n", opts.out, img.Rect.Dx(), img.Rect.Dy())
			return nil
		},
	}

	cmd.Flags().DurationVar(&opts.duration, "duration", 10*time.Second, "how long to sample before drawing")
	cmd.Flags().IntVar(&opts.width, "width", 400, "chart width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", 100, "chart height in pixels")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "sysgraph.png", "output PNG file")

	return cmd
}

// sampleCharts drives one GraphArea per monitor from its sampler and a
// redraw ticker for the given duration. Each GraphArea is owned by its
// Run goroutine until the function returns.
func sampleCharts(
	ctx context.Context,
	monitors []ui.Monitor,
	params chart.Params,
	duration time.Duration,
) ([]*chart.GraphArea, error) {
	ctx, cancel := context.WithTimeout(ctx, duration)
	defer cancel()

	pollers := make([]*sampler.Poller, len(monitors))
	for i, m := range monitors {
		p, err := sampler.New(m.Source, params.SampleInterval)
		if err != nil {
			return nil, fmt.Errorf("monitor %s: %w", m.Title, err)
		}
		pollers[i] = p
	}

	graphs := make([]*chart.GraphArea, len(monitors))
	errs := make([]error, len(monitors))
	var wg sync.WaitGroup
	for i, m := range monitors {
		p := params
		p.Color = m.Color
		g := chart.NewGraphArea(p, nil)
		graphs[i] = g

		samples := sampler.Chan(ctx, pollers[i], 16)
		ticks := make(chan time.Time, 1)
		ticker := tick.New(p.TickFrequency, tick.Forward(ticks))

		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = g.Run(ctx, samples, ticks)
		}()

		pollers[i].Start(ctx)
		ticker.Start()
		defer ticker.Stop()
		defer pollers[i].Stop()
	}

	wg.Wait()
	err := errors.Join(errs...)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
		return nil, err
	}
	return graphs, nil
}
