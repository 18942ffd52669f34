package main

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/espeon/wordclock/duration"
	"github.com/espeon/wordclock/render"
	"github.com/espeon/wordclock/timer"
)

func newPomodoroCmd(a *app) *cobra.Command {
	var (
		watch                       bool
		work, short, long, sessions int
	)

	cmd := &cobra.Command{
		Use:   "pomodoro",
		Short: "Run a pomodoro work/break timer in words",
		Long: `Cycles through work sessions and breaks. After each work session
comes a short break, except after the last session of a cycle, which is
followed by a long break.

Example:
  wordclock pomodoro --work 50 --short 10 --sessions 3 --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			if f.Changed("work") {
				a.cfg.Pomodoro.Work = work
			}
			if f.Changed("short") {
				a.cfg.Pomodoro.Short = short
			}
			if f.Changed("long") {
				a.cfg.Pomodoro.Long = long
			}
			if f.Changed("sessions") {
				a.cfg.Pomodoro.Sessions = sessions
			}
			if err := a.validate(); err != nil {
				return err
			}

			p := timer.NewPomodoro(a.cfg.PomodoroTimer(), a.clock.Now())
			p.OnPhaseChange = func(ph timer.Phase) {
				a.logger.Info("phase changed",
					zap.Stringer("phase", ph),
					zap.Int("session", p.Session()),
					zap.Duration("length", p.Remaining()))
				a.bell()
			}

			frame := func(now time.Time) (render.Face, map[string]any, bool) {
				if p.Tick(now) {
					p.Next(now)
				}
				mp := duration.SplitMinutes(p.Remaining().Milliseconds())
				info := map[string]any{
					"phase":   p.Phase(),
					"session": p.Session(),
					"running": p.Running(),
				}
				return render.Pomodoro(p.Phase(), p.Session(), p.Config().Sessions, mp), info, false
			}

			if !watch {
				return a.show(frame)
			}
			a.logger.Info("pomodoro started",
				zap.Duration("work", p.Config().Work),
				zap.Int("sessions", p.Config().Sessions))
			return a.watch(cmd.Context(), frame)
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&watch, "watch", "w", false, "run the timer, redrawing until interrupted")
	f.IntVar(&work, "work", 0, "work session length in minutes (1-120)")
	f.IntVar(&short, "short", 0, "short break length in minutes (1-60)")
	f.IntVar(&long, "long", 0, "long break length in minutes (1-60)")
	f.IntVar(&sessions, "sessions", 0, "work sessions before a long break (1-12)")
	return cmd
}
