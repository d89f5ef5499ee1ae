package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/plotart/canvas"
	"github.com/katalvlaran/plotart/config"
	"github.com/katalvlaran/plotart/painting"
	"github.com/katalvlaran/plotart/plotter"
)

// flags holds the persistent command-line flags.
type flags struct {
	configPath  string
	seed        int64
	logLevel    string
	interactive bool
}

// session is everything one command needs to draw.
type session struct {
	cfg     config.Config
	log     *slog.Logger
	bounds  canvas.Bounds
	device  *plotter.DryRun
	painter *painting.Painter
}

func newRootCmd() *cobra.Command {
	var f flags
	root := &cobra.Command{
		Use:           "plotart",
		Short:         "Compose procedural drawings for a pen plotter",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "configuration file (.toml, .yaml)")
	pf.Int64Var(&f.seed, "seed", 0, "random seed (default: config seed, else the clock)")
	pf.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.BoolVar(&f.interactive, "interactive", false, "wait for Enter at every pause")

	root.AddCommand(
		drawCmd(&f, "paint", "Paint a random composition of circles, spirals and ray spreads",
			func(ctx context.Context, s *session) error { return s.painter.Compose(ctx) }),
		drawCmd(&f, "frame", "Trace the margin of the canvas",
			func(ctx context.Context, s *session) error { return s.painter.Frame(ctx) }),
		drawCmd(&f, "nautilus", "Paint the nautilus shell at the golden-ratio focal point",
			func(ctx context.Context, s *session) error {
				return s.painter.PaintNautilus(ctx, painting.NautilusPiece(painting.FocalPoint(s.bounds)))
			}),
	)

	return root
}

// drawCmd builds a sub-command that opens a session, runs draw, homes the
// pen and prints the travel summary.
func drawCmd(f *flags, use, short string, draw func(context.Context, *session) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(cmd, f)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			start := time.Now()
			drawErr := draw(ctx, s)
			if err = s.device.Home(context.WithoutCancel(ctx)); err != nil {
				s.log.Error("return home", "err", err)
			}
			printSummary(cmd.OutOrStdout(), use, s.device.Stats(), time.Since(start))
			if drawErr != nil {
				return fmt.Errorf("%s: %w", use, drawErr)
			}

			return nil
		},
	}
}

// openSession resolves configuration, flags and logging, then wires the
// painter to a dry-run plotter.
func openSession(cmd *cobra.Command, f *flags) (*session, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = f.seed
	}
	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
	if f.interactive {
		cfg.Interactive = true
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	lvl, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
	bounds, err := cfg.Bounds()
	if err != nil {
		return nil, err
	}

	device := plotter.NewDryRun(log)
	var pauser painting.Pauser = device
	if cfg.Interactive {
		pauser = plotter.NewPrompt(cmd.InOrStdin(), cmd.ErrOrStderr())
	}
	p, err := painting.New(bounds, device,
		painting.WithSeed(cfg.Seed),
		painting.WithLogger(log),
		painting.WithPauser(pauser),
		painting.WithRanges(cfg.Ranges),
	)
	if err != nil {
		return nil, err
	}
	log.Info("session", "seed", cfg.Seed, "min", bounds.Min, "max", bounds.Max)

	return &session{cfg: cfg, log: log, bounds: bounds, device: device, painter: p}, nil
}

// printSummary writes the dry-run totals; colors only on a terminal.
func printSummary(w io.Writer, title string, st plotter.Stats, elapsed time.Duration) {
	out := termenv.NewOutput(w)
	head := out.String(title).Bold().Foreground(out.Color("2"))
	fmt.Fprintf(w, "%s: %d paths, %d points, %d pauses\n", head, st.Paths, st.Points, st.Pauses)
	fmt.Fprintf(w, "  pen down %.1f mm, pen up %.1f mm, planned in %s\n",
		st.PenDown, st.PenUp, elapsed.Round(time.Millisecond))
}
