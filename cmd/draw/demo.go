package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/midbel/linechart"
	"github.com/midbel/linechart/dash"
	"github.com/spf13/cobra"
)

type demoOptions struct {
	ISIN  string
	Seed  int64
	Delay time.Duration
	Dir   string

	// the x grid follows the period titles, the y grid keeps the dashboard
	// count unless --yticks is given.
	YTicks bool
}

func demoCommand(opts *options) *cobra.Command {
	var (
		demo demoOptions
		cmd  = &cobra.Command{
			Use:   "demo",
			Short: "Load a simulated instrument and render one chart per period",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				demo.YTicks = cmd.Flags().Changed("yticks")
				return runDemo(cmd.Context(), *opts, demo)
			},
		}
	)
	flags := cmd.Flags()
	flags.StringVar(&demo.ISIN, "isin", "RU000A0JX0J2", "instrument identifier")
	flags.Int64Var(&demo.Seed, "seed", time.Now().UnixNano(), "seed of the simulated data")
	flags.DurationVar(&demo.Delay, "delay", 100*time.Millisecond, "simulated loading delay")
	flags.StringVar(&demo.Dir, "dir", ".", "directory of the generated files")
	return cmd
}

func runDemo(ctx context.Context, opts options, demo demoOptions) error {
	if err := os.MkdirAll(demo.Dir, 0755); err != nil {
		return err
	}
	var (
		logger = newLogger(opts.Verbose)
		queue  = dash.NewQueue()
		model  = dash.NewViewModel(queue,
			dash.WithDelay(demo.Delay),
			dash.WithLoader(dash.Simulate(demo.Seed)),
			dash.WithLogger(logger),
		)
		ctrl  = dash.NewController(queue, model, logger)
		ready = make(chan struct{})
		once  sync.Once
	)
	defer queue.Close()

	queue.Sync(func() {
		ctrl.OnDraw(func(ch *linechart.LineChart) {
			if !ctrl.Loading() && ch.HasData() {
				once.Do(func() { close(ready) })
			}
		})
		configure(ctrl.Chart, opts)
		if demo.YTicks {
			ctrl.Chart.Y.Grid.Count = opts.YTicks
		}
		ctrl.Resize(opts.Width, opts.Height)
		ctrl.SetISIN(ctx, demo.ISIN)
	})
	select {
	case <-ready:
	case <-ctx.Done():
		return ctx.Err()
	}

	var periods []string
	queue.Sync(func() {
		periods = ctrl.Buttons.Titles()
	})
	for i, title := range periods {
		queue.Sync(func() {
			ctrl.Buttons.Tap(i)
		})
		var err error
		queue.Sync(func() {
			file := filepath.Join(demo.Dir, fmt.Sprintf("%s_%s.svg", demo.ISIN, strings.ToLower(title)))
			err = renderPeriod(logger, ctrl.Chart, file)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func renderPeriod(logger *slog.Logger, ch *linechart.LineChart, file string) error {
	if err := writeChart(ch, file); err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	logger.Info("chart written", "file", file, "series", ch.Len())
	return nil
}
