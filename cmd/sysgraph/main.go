package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bamsammich/sysgraph/internal/chart"
	"github.com/bamsammich/sysgraph/internal/config"
	"github.com/bamsammich/sysgraph/internal/event"
	"github.com/bamsammich/sysgraph/internal/sampler"
	"github.com/bamsammich/sysgraph/internal/ui"
	"github.com/bamsammich/sysgraph/internal/ui/tui"
)

var version = "dev"

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI with args and returns the process exit code. ctx
// bounds the whole run in addition to SIGINT and SIGTERM.
//
//nolint:revive // cognitive-complexity: main CLI entry point wires config, logging, samplers and presenter
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var (
		flags       chartFlags
		quiet       bool
		noTUI       bool
		showVersion bool
	)

	rootCmd := &cobra.Command{
		Use:   "sysgraph [flags]",
		Short: "Live scrolling charts of system metrics",
		Long: "sysgraph draws one smoothly scrolling sparkline card per monitored source.\n" +
			"Sources: " + fmt.Sprint(sampler.Sources()),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
			if showVersion {
				fmt.Fprintf(stdout, "sysgraph %s\n", version)
				return nil
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			useTUI := !noTUI && isTerminal(stdout)

			// The alternate screen owns the terminal; only errors go to stderr.
			stderrLevel := flags.logLevel()
			if useTUI {
				stderrLevel = slog.LevelError
			}
			closeLog, err := flags.setupLogging(stderr, stderrLevel)
			if err != nil {
				return err
			}
			defer closeLog()

			base := chart.DefaultParams()
			if useTUI {
				base = tui.DefaultParams()
			}
			params, err := flags.chartParams(cmd, cfg.Chart, base)
			if err != nil {
				return err
			}

			monitors, err := resolveMonitors(flags.monitors, cfg.Monitors)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			samplers, err := startSamplers(ctx, monitors, params.SampleInterval)
			if err != nil {
				return err
			}

			presenterEvents := (<-chan event.Event)(samplers.events)
			if flags.logFile != "" {
				presenterEvents = teeEvents(samplers.events)
			}

			slog.Debug("starting",
				"monitors", len(monitors),
				"interval", params.SampleInterval,
				"redraw_hz", params.TickFrequency,
				"tui", useTUI,
			)

			presenter := newPresenter(presenterOpts{
				ctx:      ctx,
				tui:      useTUI,
				stdout:   stdout,
				stderr:   stderr,
				monitors: monitors,
				params:   params,
				theme:    cfg.Theme,
				quiet:    quiet,
				verbose:  flags.verbose,
			})
			if useTUI {
				// TUI runs in the foreground until the user quits or a signal arrives.
				runErr := presenter.Run(presenterEvents)
				samplers.stop()
				if runErr != nil {
					return fmt.Errorf("tui: %w", runErr)
				}
			} else {
				// Inline mode: presenter in the background until interrupted.
				var presenterErr error
				var presenterWg sync.WaitGroup
				presenterWg.Add(1)
				go func() {
					defer presenterWg.Done()
					presenterErr = presenter.Run(presenterEvents)
				}()

				<-ctx.Done()
				samplers.stop()
				presenterWg.Wait()
				if presenterErr != nil {
					fmt.Fprintf(stderr, "presenter: %v\n", presenterErr)
				}
			}

			if !quiet {
				if summary := presenter.Summary(); summary != "" {
					fmt.Fprintln(stderr, summary)
				}
			}

			if noSamples(monitors) {
				slog.Error("no samples collected", "monitors", len(monitors))
				return &exitError{code: 1}
			}
			return nil
		},
	}

	rootCmd.Flags().BoolVar(&showVersion, "version", false, "print version and exit")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress all output except errors")
	rootCmd.Flags().BoolVar(&noTUI, "no-tui", false, "print one line per sample instead of the full-screen UI")

	registerChartFlags(rootCmd.PersistentFlags(), &flags)

	rootCmd.AddCommand(newSnapshotCmd(&flags))
	rootCmd.AddCommand(newDocsCmd())

	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	return 0
}

type presenterOpts struct {
	ctx      context.Context //nolint:containedctx // handed to the bubbletea program
	tui      bool
	stdout   io.Writer
	stderr   io.Writer
	monitors []ui.Monitor
	params   chart.Params
	theme    config.ThemeConfig
	quiet    bool
	verbose  bool
}

// newPresenter picks the full-screen UI or the line-oriented presenter.
//
//nolint:ireturn // factory returns interface by design
func newPresenter(o presenterOpts) ui.Presenter {
	if o.tui {
		return tui.NewPresenter(tui.Config{
			Context:  o.ctx,
			Monitors: o.monitors,
			Params:   o.params,
			Theme:    o.theme,
		})
	}
	return ui.NewPresenter(ui.Config{
		Writer:    o.stdout,
		ErrWriter: o.stderr,
		Monitors:  o.monitors,
		Quiet:     o.quiet,
		Verbose:   o.verbose,
	})
}

// isTerminal reports whether w is a terminal file.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && ui.IsTTY(f.Fd())
}

// registerChartFlags adds the flags shared by the root and snapshot commands.
func registerChartFlags(fs *pflag.FlagSet, flags *chartFlags) {
	fs.VarP(&monitorFlag{monitors: &flags.monitors}, "monitor", "m",
		"chart SOURCE, optionally SOURCE=#rrggbb (repeatable; default cpu and mem)")
	fs.Float64Var(&flags.redrawHz, "redraw-hz", chart.DefaultTickFrequency, "scroll animation frequency")
	fs.DurationVar(&flags.interval, "interval", chart.DefaultSampleInterval, "sampling interval")
	fs.StringVar(&flags.logFile, "log", "", "write structured JSON log to FILE")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "verbose output")
}

// noSamples reports whether every monitor failed all of its reads.
func noSamples(monitors []ui.Monitor) bool {
	failed := false
	for _, m := range monitors {
		snap := m.Stats.Snapshot(1)
		if snap.Samples > 0 {
			return false
		}
		failed = failed || snap.Failed > 0
	}
	return failed
}

type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}
