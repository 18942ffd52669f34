// Command wordclock shows the time, a countdown, or a pomodoro timer in
// English words.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/espeon/wordclock/clock"
	"github.com/espeon/wordclock/internal/config"
	"github.com/espeon/wordclock/internal/logging"
	"github.com/espeon/wordclock/render"
)

// app carries what every command needs. Tests build one with a fake clock,
// a buffer for out and a no-op logger.
type app struct {
	clock  clock.Clock
	out    io.Writer
	logger *zap.Logger
	cfg    *config.Config

	// Global flags
	configPath string
	align      string
	tick       time.Duration
	verbose    bool
	jsonOut    bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{clock: clock.Real(), out: os.Stdout}
	if err := newRootCmd(a).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "wordclock",
		Short: "Tell the time in words",
		Long: `wordclock renders the current time, a countdown, or a pomodoro
work/break timer as English words instead of digits.

Values from 0 to 999 are spelled out ("three hundred fifty-seven");
anything larger is shown as a plain numeral.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", config.DefaultPath(), "path to wordclock.yaml")
	pf.StringVar(&a.align, "align", "", "align words to the left or right edge (overrides config)")
	pf.DurationVar(&a.tick, "tick", 0, "redraw period in --watch mode (overrides config)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.BoolVar(&a.jsonOut, "json", false, "emit frames as JSON lines")

	root.AddCommand(
		newNowCmd(a),
		newCountdownCmd(a),
		newPomodoroCmd(a),
		newSayCmd(a),
		newConfigCmd(a),
	)
	return root
}

// setup loads configuration, applies global flag overrides and builds the
// logger unless one was injected.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("align") {
		cfg.Align = a.align
	}
	if cmd.Flags().Changed("tick") {
		cfg.Tick = a.tick.String()
	}
	a.cfg = cfg

	if a.logger == nil {
		logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Format, a.verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		a.logger = logger
	}

	a.logger.Debug("config loaded",
		zap.String("path", a.configPath),
		zap.String("align", cfg.Align),
		zap.Duration("tick", cfg.GetTick()))
	return nil
}

// validate checks the configuration after command-specific overrides.
func (a *app) validate() error {
	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration:\n%w", err)
	}
	return nil
}

func (a *app) renderOptions() render.Options {
	return render.Options{Align: a.cfg.GetAlign()}
}
