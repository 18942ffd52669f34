package timer

import "time"

// Defaults for a classic pomodoro cycle.
const (
	DefaultWork     = 25 * time.Minute
	DefaultShort    = 5 * time.Minute
	DefaultLong     = 15 * time.Minute
	DefaultSessions = 4

	minPhase = time.Minute
)

// PomodoroConfig sets the phase lengths and how many work sessions run
// before a long break.
type PomodoroConfig struct {
	Work     time.Duration
	Short    time.Duration
	Long     time.Duration
	Sessions int
}

// DefaultPomodoroConfig returns 25/5/15 minutes with four sessions.
func DefaultPomodoroConfig() PomodoroConfig {
	return PomodoroConfig{
		Work:     DefaultWork,
		Short:    DefaultShort,
		Long:     DefaultLong,
		Sessions: DefaultSessions,
	}
}

// Normalize raises every phase to at least one minute and Sessions to at
// least one.
func (c PomodoroConfig) Normalize() PomodoroConfig {
	c.Work = max(c.Work, minPhase)
	c.Short = max(c.Short, minPhase)
	c.Long = max(c.Long, minPhase)
	c.Sessions = max(c.Sessions, 1)
	return c
}

// length returns the configured duration of p.
func (c PomodoroConfig) length(p Phase) time.Duration {
	switch p {
	case PhaseShortBreak:
		return c.Short
	case PhaseLongBreak:
		return c.Long
	default:
		return c.Work
	}
}

// Pomodoro cycles through work and break phases.
type Pomodoro struct {
	cfg     PomodoroConfig
	phase   Phase
	session int
	cd      *Countdown

	// OnPhaseChange, when set, is called after every phase transition with
	// the phase just entered.
	OnPhaseChange func(Phase)
}

// NewPomodoro returns a pomodoro running the first work session from now.
// cfg is normalized first.
func NewPomodoro(cfg PomodoroConfig, now time.Time) *Pomodoro {
	cfg = cfg.Normalize()
	p := &Pomodoro{
		cfg:     cfg,
		phase:   PhaseWork,
		session: 1,
		cd:      NewCountdown(cfg.Work),
	}
	p.cd.Start(now)
	return p
}

// Config returns the normalized configuration.
func (p *Pomodoro) Config() PomodoroConfig { return p.cfg }

// Phase returns the current phase.
func (p *Pomodoro) Phase() Phase { return p.phase }

// Session returns the 1-based work session within the cycle.
func (p *Pomodoro) Session() int { return p.session }

// Remaining returns the time left in the current phase.
func (p *Pomodoro) Remaining() time.Duration { return p.cd.Remaining() }

// Running reports whether the current phase is advancing.
func (p *Pomodoro) Running() bool { return p.cd.Running() }

// Toggle pauses or resumes the current phase.
func (p *Pomodoro) Toggle(now time.Time) { p.cd.Toggle(now) }

// Reset restores the current phase's full duration and stops.
func (p *Pomodoro) Reset() { p.cd.Reset() }

// Tick advances the current phase. It returns true exactly once per phase,
// on the tick that brings the remaining time to zero; the caller then
// decides when to call Next.
func (p *Pomodoro) Tick(now time.Time) (expired bool) {
	if !p.cd.Running() {
		return false
	}
	p.cd.Tick(now)
	return p.cd.Done()
}

// Next moves to the following phase and starts it from now.
//
// Work is followed by a short break until the last session of the cycle,
// which is followed by a long break. A short break returns to work in the
// next session; a long break starts a new cycle at session one.
func (p *Pomodoro) Next(now time.Time) Phase {
	switch p.phase {
	case PhaseWork:
		if p.session < p.cfg.Sessions {
			p.phase = PhaseShortBreak
		} else {
			p.phase = PhaseLongBreak
		}
	case PhaseShortBreak:
		p.phase = PhaseWork
		p.session++
	case PhaseLongBreak:
		p.phase = PhaseWork
		p.session = 1
	}

	p.cd = NewCountdown(p.cfg.length(p.phase))
	p.cd.Start(now)

	if p.OnPhaseChange != nil {
		p.OnPhaseChange(p.phase)
	}
	return p.phase
}
