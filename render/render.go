// Package render turns decomposed durations into word faces and lays them
// out for a terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/espeon/wordclock/duration"
	"github.com/espeon/wordclock/numtext"
	"github.com/espeon/wordclock/timer"
)

const (
	markDone    = "●"
	markCurrent = "◉"
	markPending = "○"
)

// Face is one screenful of words.
type Face struct {
	Title    string   `json:"title,omitempty"`
	Progress string   `json:"progress,omitempty"`
	Lines    []string `json:"lines"`
	Footer   string   `json:"footer,omitempty"`
}

// Clock returns the face for a wall-clock reading: hours, minutes and
// seconds on their own lines, then "and <milliseconds>".
func Clock(p duration.Parts) Face {
	return Face{Lines: hmsLines(p)}
}

// Countdown returns the face for a remaining duration. Hours are not
// clamped, so very long countdowns fall back to a numeral hour line.
func Countdown(p duration.Parts) Face {
	return Face{Lines: hmsLines(p)}
}

func hmsLines(p duration.Parts) []string {
	return []string{
		numtext.Convert(p.Hours),
		numtext.Convert(p.Minutes),
		numtext.Convert(p.Seconds),
		"and " + numtext.Convert(p.Millis),
	}
}

// Pomodoro returns the face for a pomodoro phase with mp remaining.
// session is 1-based; one progress marker is drawn per session in the cycle.
func Pomodoro(phase timer.Phase, session, sessions int, mp duration.MinuteParts) Face {
	return Face{
		Title:    phase.Label(),
		Progress: progress(session, sessions),
		Lines: []string{
			numtext.Plural(mp.Minutes, "minute"),
			"and " + numtext.Plural(mp.Seconds, "second"),
		},
		Footer: fmt.Sprintf("%03d ms", mp.Centis*10),
	}
}

func progress(session, sessions int) string {
	marks := make([]string, max(sessions, 0))
	for i := range marks {
		switch {
		case i < session-1:
			marks[i] = markDone
		case i == session-1:
			marks[i] = markCurrent
		default:
			marks[i] = markPending
		}
	}
	return strings.Join(marks, " ")
}

// Render lays the face out according to opts.
func (f Face) Render(opts Options) string {
	pos := opts.Align.position()

	blocks := make([]string, 0, 4)
	if f.Title != "" {
		blocks = append(blocks, lipgloss.NewStyle().Bold(true).Render(f.Title))
	}
	if f.Progress != "" {
		blocks = append(blocks, f.Progress)
	}
	blocks = append(blocks, strings.Join(f.Lines, "\n"))
	if f.Footer != "" {
		blocks = append(blocks, lipgloss.NewStyle().Faint(true).Render(f.Footer))
	}

	body := lipgloss.JoinVertical(pos, blocks...)

	style := lipgloss.NewStyle().Align(pos)
	if opts.Width > 0 {
		style = style.Width(opts.Width)
	}
	return style.Render(body)
}
