// Package timer holds the countdown and pomodoro state machines behind the
// word clock faces.
//
// Timers never read a clock. Every method that depends on elapsed time takes
// the current instant, so a caller drives them from whatever clock it owns
// and tests drive them with fixed instants.
//
// Timers are not safe for concurrent use; a single watch loop owns each one.
package timer

import "time"

// Countdown counts a fixed duration down to zero.
type Countdown struct {
	total     time.Duration
	remaining time.Duration
	running   bool
	last      time.Time
}

// NewCountdown returns a stopped countdown of total. Negative totals are
// treated as zero.
func NewCountdown(total time.Duration) *Countdown {
	total = max(total, 0)
	return &Countdown{total: total, remaining: total}
}

// Total returns the configured duration.
func (c *Countdown) Total() time.Duration { return c.total }

// Remaining returns the time left as of the last Tick.
func (c *Countdown) Remaining() time.Duration { return c.remaining }

// Running reports whether the countdown is advancing.
func (c *Countdown) Running() bool { return c.running }

// Done reports whether the countdown has reached zero.
func (c *Countdown) Done() bool { return c.remaining == 0 }

// Start resumes the countdown from now. It is a no-op when already running
// or when nothing remains.
func (c *Countdown) Start(now time.Time) {
	if c.running || c.remaining == 0 {
		return
	}
	c.running = true
	c.last = now
}

// Pause folds the time elapsed up to now into Remaining and stops.
func (c *Countdown) Pause(now time.Time) {
	if !c.running {
		return
	}
	c.Tick(now)
	c.running = false
}

// Toggle pauses a running countdown and starts a stopped one.
func (c *Countdown) Toggle(now time.Time) {
	if c.running {
		c.Pause(now)
		return
	}
	c.Start(now)
}

// Reset restores the full duration and stops.
func (c *Countdown) Reset() {
	c.remaining = c.total
	c.running = false
}

// Tick subtracts the time elapsed since the previous Tick or Start and
// returns what remains. Reaching zero stops the countdown. A clock that
// moved backwards counts as no elapsed time.
func (c *Countdown) Tick(now time.Time) time.Duration {
	if !c.running {
		return c.remaining
	}
	elapsed := max(now.Sub(c.last), 0)
	c.last = now
	c.remaining = max(c.remaining-elapsed, 0)
	if c.remaining == 0 {
		c.running = false
	}
	return c.remaining
}
