// Package duration splits millisecond counts and wall-clock readings into
// the whole-number fields that numtext renders as words.
//
// Two decompositions are provided:
//
//   - Split breaks a count into hours, minutes, seconds and milliseconds.
//     Hours are not clamped and may exceed 23 for long countdowns.
//   - SplitMinutes breaks a count into total minutes, seconds and
//     hundredths, the shape a pomodoro display uses.
//
// FromClock reads the same fields off a time.Time in its own location.
//
// All functions are pure and safe for concurrent use.
package duration

import (
	"fmt"
	"time"
)

const (
	msPerSecond int64 = 1000
	msPerMinute int64 = 60 * msPerSecond
	msPerHour   int64 = 60 * msPerMinute
	msPerCenti  int64 = 10
)

// Parts holds a duration or clock reading broken into display fields.
type Parts struct {
	Hours   int64 `json:"hours"`
	Minutes int64 `json:"minutes"`
	Seconds int64 `json:"seconds"`
	Millis  int64 `json:"millis"`
}

// String returns a debug representation, e.g. "01:02:03.004".
func (p Parts) String() string {
	return fmt.Sprintf("%02d:%02d:%02d.%03d", p.Hours, p.Minutes, p.Seconds, p.Millis)
}

// Milliseconds returns the total count p represents.
func (p Parts) Milliseconds() int64 {
	return p.Hours*msPerHour + p.Minutes*msPerMinute + p.Seconds*msPerSecond + p.Millis
}

// MinuteParts holds a duration as total minutes, seconds and hundredths.
type MinuteParts struct {
	Minutes int64 `json:"minutes"`
	Seconds int64 `json:"seconds"`
	Centis  int64 `json:"centis"`
}

// String returns a debug representation, e.g. "25:00.00".
func (p MinuteParts) String() string {
	return fmt.Sprintf("%02d:%02d.%02d", p.Minutes, p.Seconds, p.Centis)
}

// Split breaks ms into hours, minutes, seconds and milliseconds.
// Negative counts are treated as zero.
func Split(ms int64) Parts {
	if ms < 0 {
		ms = 0
	}
	return Parts{
		Hours:   ms / msPerHour,
		Minutes: (ms % msPerHour) / msPerMinute,
		Seconds: (ms % msPerMinute) / msPerSecond,
		Millis:  ms % msPerSecond,
	}
}

// FromDuration is Split(d.Milliseconds()).
func FromDuration(d time.Duration) Parts {
	return Split(d.Milliseconds())
}

// FromClock returns the wall-clock hour (0–23), minute, second and
// millisecond of t in t's location.
func FromClock(t time.Time) Parts {
	return Parts{
		Hours:   int64(t.Hour()),
		Minutes: int64(t.Minute()),
		Seconds: int64(t.Second()),
		Millis:  int64(t.Nanosecond() / int(time.Millisecond)),
	}
}

// SplitMinutes breaks ms into total minutes, seconds and hundredths of a
// second. Minutes do not roll over into hours. Negative counts are treated
// as zero.
func SplitMinutes(ms int64) MinuteParts {
	if ms < 0 {
		ms = 0
	}
	return MinuteParts{
		Minutes: ms / msPerMinute,
		Seconds: (ms % msPerMinute) / msPerSecond,
		Centis:  (ms % msPerSecond) / msPerCenti,
	}
}

// Join returns the millisecond count of h hours, m minutes and s seconds.
func Join(h, m, s int64) int64 {
	return h*msPerHour + m*msPerMinute + s*msPerSecond
}
