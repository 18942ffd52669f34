package main

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/espeon/wordclock/duration"
	"github.com/espeon/wordclock/render"
	"github.com/espeon/wordclock/timer"
)

func newCountdownCmd(a *app) *cobra.Command {
	var (
		watch                   bool
		hours, minutes, seconds int
	)

	cmd := &cobra.Command{
		Use:   "countdown",
		Short: "Count down a duration in words",
		Long: `Counts down from the configured duration, showing hours, minutes,
seconds and milliseconds remaining in words.

Example:
  wordclock countdown --minutes 10 --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			if f.Changed("hours") {
				a.cfg.Countdown.Hours = hours
			}
			if f.Changed("minutes") {
				a.cfg.Countdown.Minutes = minutes
			}
			if f.Changed("seconds") {
				a.cfg.Countdown.Seconds = seconds
			}
			if err := a.validate(); err != nil {
				return err
			}

			cd := timer.NewCountdown(a.cfg.CountdownTotal())
			frame := func(now time.Time) (render.Face, map[string]any, bool) {
				rem := cd.Tick(now)
				info := map[string]any{"remaining_ms": rem.Milliseconds()}
				return render.Countdown(duration.FromDuration(rem)), info, cd.Done()
			}

			if !watch {
				return a.show(frame)
			}

			a.logger.Info("countdown started", zap.Duration("total", cd.Total()))
			cd.Start(a.clock.Now())
			if err := a.watch(cmd.Context(), frame); err != nil {
				return err
			}
			if cd.Done() {
				a.logger.Info("countdown finished")
				a.bell()
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&watch, "watch", "w", false, "run the countdown, redrawing until it reaches zero")
	f.IntVar(&hours, "hours", 0, "hours")
	f.IntVar(&minutes, "minutes", 0, "minutes (0-59)")
	f.IntVar(&seconds, "seconds", 0, "seconds (0-59)")
	return cmd
}
