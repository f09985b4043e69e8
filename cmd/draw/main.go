package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/fsnotify/fsnotify"
	"github.com/midbel/linechart"
	"github.com/spf13/cobra"
)

const (
	defaultWidth  = 800
	defaultHeight = 600
)

type options struct {
	Width     float64
	Height    float64
	XTicks    int
	YTicks    int
	XCol      int
	Cols      []int
	Dots      bool
	Precision int32
	Cycle     bool
	Output    string
	Watch     bool
	Verbose   bool
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		opts options
		root = &cobra.Command{
			Use:          "draw [file.csv...]",
			Short:        "Render csv columns as a line chart",
			Long:         "draw reads value columns from csv files and writes them as an svg line chart.",
			Args:         cobra.MinimumNArgs(1),
			SilenceUsage: true,
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(cmd.Context(), opts, args)
			},
		}
	)
	flags := root.PersistentFlags()
	flags.Float64Var(&opts.Width, "width", defaultWidth, "chart width")
	flags.Float64Var(&opts.Height, "height", defaultHeight, "chart height")
	flags.IntVar(&opts.XTicks, "xticks", linechart.DefaultGridCount, "grid lines on x axis")
	flags.IntVar(&opts.YTicks, "yticks", linechart.DefaultGridCount, "grid lines on y axis")
	flags.BoolVar(&opts.Dots, "dots", false, "show a label above each point")
	flags.Int32Var(&opts.Precision, "precision", 2, "decimal places of dot labels")
	flags.BoolVar(&opts.Cycle, "cycle", false, "cycle through the palette")
	flags.StringVarP(&opts.Output, "output", "o", "", "output file (default: stdout)")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose logging")

	flags = root.Flags()
	flags.IntVar(&opts.XCol, "xcol", 0, "index of the label column, negative for none")
	flags.IntSliceVar(&opts.Cols, "col", []int{1}, "index of value columns")
	flags.BoolVarP(&opts.Watch, "watch", "w", false, "render again when a file changes")

	root.AddCommand(demoCommand(&opts))
	return root
}

func run(ctx context.Context, opts options, files []string) error {
	logger := newLogger(opts.Verbose)
	if err := draw(logger, opts, files); err != nil {
		return err
	}
	if !opts.Watch {
		return nil
	}
	return watch(ctx, logger, opts, files)
}

func draw(logger *slog.Logger, opts options, files []string) error {
	tab, err := readFiles(files, opts.XCol, opts.Cols)
	if err != nil {
		return err
	}
	ch := newChart(opts)
	if err := ch.Validate(); err != nil {
		logger.Warn("invalid chart configuration", "err", err)
	}
	ch.X.Labels.Values = tab.Labels
	for _, s := range tab.Series {
		ch.AddLine(s)
	}
	logger.Debug("series loaded", "files", len(files), "series", ch.Len(), "labels", len(tab.Labels))
	return writeChart(ch, opts.Output)
}

func watch(ctx context.Context, logger *slog.Logger, opts options, files []string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed creating file watcher: %w", err)
	}
	defer w.Close()
	for _, f := range files {
		if err := w.Add(f); err != nil {
			return fmt.Errorf("%s: %w", f, err)
		}
	}
	logger.Info("watching files", "files", files)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			logger.Info("file changed", "file", ev.Name)
			if err := draw(logger, opts, files); err != nil {
				logger.Error("render failed", "file", ev.Name, "err", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher failed", "err", err)
		}
	}
}

func newChart(opts options) *linechart.LineChart {
	ch := linechart.NewWithSize(opts.Width, opts.Height)
	ch.X.Grid.Count = opts.XTicks
	ch.Y.Grid.Count = opts.YTicks
	configure(ch, opts)
	return ch
}

func configure(ch *linechart.LineChart, opts options) {
	ch.DotLabels.Visible = opts.Dots
	ch.DotLabels.Precision = opts.Precision
	ch.CycleColors = opts.Cycle
	ch.SetNeedsDisplay()
}

func writeChart(ch *linechart.LineChart, file string) error {
	if file == "" {
		return ch.Render(os.Stdout)
	}
	w, err := os.Create(file)
	if err != nil {
		return err
	}
	defer w.Close()
	if err := ch.Render(w); err != nil {
		return err
	}
	return w.Close()
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
