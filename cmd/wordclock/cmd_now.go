package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/espeon/wordclock/duration"
	"github.com/espeon/wordclock/render"
)

func newNowCmd(a *app) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "now",
		Short: "Show the current time in words",
		Long: `Shows the local wall-clock time as four lines: hours (0-23), minutes,
seconds, and "and <milliseconds>".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.validate(); err != nil {
				return err
			}
			frame := func(now time.Time) (render.Face, map[string]any, bool) {
				return render.Clock(duration.FromClock(now)), nil, false
			}
			if watch {
				return a.watch(cmd.Context(), frame)
			}
			return a.show(frame)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep redrawing until interrupted")
	return cmd
}
