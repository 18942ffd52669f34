package timer

import (
	"encoding/json"
	"fmt"
)

// Phase is a pomodoro cycle stage.
type Phase int

const (
	PhaseWork       Phase = iota // Focused work interval
	PhaseShortBreak              // Break between work sessions
	PhaseLongBreak               // Break after the last session of a cycle
)

// phaseNames maps Phase values to their string names.
var phaseNames = [...]string{
	PhaseWork:       "work",
	PhaseShortBreak: "short",
	PhaseLongBreak:  "long",
}

// phaseLabels maps Phase values to display titles.
var phaseLabels = [...]string{
	PhaseWork:       "Work",
	PhaseShortBreak: "Short Break",
	PhaseLongBreak:  "Long Break",
}

// phaseFromName maps string names back to Phase values.
var phaseFromName = map[string]Phase{
	"work":  PhaseWork,
	"short": PhaseShortBreak,
	"long":  PhaseLongBreak,
}

// String returns the short name of the phase.
func (p Phase) String() string {
	if p >= 0 && int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Label returns the display title of the phase, e.g. "Short Break".
func (p Phase) Label() string {
	if p >= 0 && int(p) < len(phaseLabels) {
		return phaseLabels[p]
	}
	return p.String()
}

// MarshalJSON encodes the phase as a JSON string (e.g. "work").
func (p Phase) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON decodes a JSON string (e.g. "short") into a Phase.
func (p *Phase) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return p.UnmarshalText([]byte(s))
}

// UnmarshalText decodes a phase name, so Phase works as a flag or YAML value.
func (p *Phase) UnmarshalText(text []byte) error {
	s := string(text)
	pp, ok := phaseFromName[s]
	if !ok {
		const maxErrLen = 50
		if len(s) > maxErrLen {
			s = s[:maxErrLen] + "..."
		}
		return fmt.Errorf("timer: unknown phase: %q", s)
	}
	*p = pp
	return nil
}
