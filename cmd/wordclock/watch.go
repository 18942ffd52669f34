package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/espeon/wordclock/render"
)

const clearScreen = "\x1b[H\x1b[2J"

// frameFunc builds the face for now. done reports that the display has
// reached its final state and the watch loop should stop.
type frameFunc func(now time.Time) (face render.Face, extra map[string]any, done bool)

// frameJSON is one line of --json output.
type frameJSON struct {
	At   time.Time      `json:"at"`
	Face render.Face    `json:"face"`
	Info map[string]any `json:"info,omitempty"`
}

// show draws a single frame.
func (a *app) show(frame frameFunc) error {
	now := a.clock.Now()
	face, extra, _ := frame(now)
	return a.draw(now, face, extra, false)
}

// watch redraws every tick until ctx is cancelled or frame reports done.
func (a *app) watch(ctx context.Context, frame frameFunc) error {
	period := a.cfg.GetTick()
	ticker := a.clock.NewTicker(period)
	defer ticker.Stop()

	a.logger.Debug("watch started", zap.Duration("tick", period))

	for {
		now := a.clock.Now()
		face, extra, done := frame(now)
		if err := a.draw(now, face, extra, true); err != nil {
			return err
		}
		if done {
			a.logger.Debug("watch finished")
			return nil
		}

		select {
		case <-ctx.Done():
			a.logger.Debug("watch interrupted", zap.Error(ctx.Err()))
			return nil
		case <-ticker.C():
		}
	}
}

func (a *app) draw(now time.Time, face render.Face, extra map[string]any, redraw bool) error {
	if a.jsonOut {
		enc := json.NewEncoder(a.out)
		if err := enc.Encode(frameJSON{At: now, Face: face, Info: extra}); err != nil {
			return fmt.Errorf("write frame: %w", err)
		}
		return nil
	}

	prefix := ""
	if redraw {
		prefix = clearScreen
	}
	if _, err := fmt.Fprintf(a.out, "%s%s\n", prefix, face.Render(a.renderOptions())); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// bell rings the terminal bell when enabled and output is not JSON.
func (a *app) bell() {
	if a.cfg.Bell && !a.jsonOut {
		fmt.Fprint(a.out, "\a")
	}
}
