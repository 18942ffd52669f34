package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/espeon/wordclock/data"
	"github.com/espeon/wordclock/render"
	"github.com/espeon/wordclock/timer"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wordclock.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 50*time.Millisecond, cfg.GetTick())
	assert.Equal(t, render.AlignLeft, cfg.GetAlign())
	assert.Equal(t, 5*time.Minute, cfg.CountdownTotal())
	assert.Equal(t, timer.DefaultPomodoroConfig(), cfg.PomodoroTimer())
}

func TestExampleConfigMatchesDefaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, Decode(data.ExampleConfig, cfg))
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeFile(t, "align: right\npomodoro:\n  work: 50\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, render.AlignRight, cfg.GetAlign())
	assert.Equal(t, 50, cfg.Pomodoro.Work)
	assert.Equal(t, 5, cfg.Pomodoro.Short, "unset keys keep their defaults")
	assert.Equal(t, 4, cfg.Pomodoro.Sessions)
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(writeFile(t, "colour: green\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: parse")
}

func TestLoadRejectsBadYAML(t *testing.T) {
	_, err := Load(writeFile(t, "pomodoro: [1, 2\n"))
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("applied over file values", func(t *testing.T) {
		t.Setenv("WORDCLOCK_ALIGN", "right")
		t.Setenv("WORDCLOCK_TICK", "1s")
		t.Setenv("WORDCLOCK_LOG_LEVEL", "debug")

		cfg, err := Load(writeFile(t, "align: left\ntick: 10ms\n"))
		require.NoError(t, err)

		assert.Equal(t, "right", cfg.Align)
		assert.Equal(t, time.Second, cfg.GetTick())
		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("applied without a file", func(t *testing.T) {
		t.Setenv("WORDCLOCK_ALIGN", "right")

		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "right", cfg.Align)
	})
}

func TestGetTickFallback(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tick = "soon"
	assert.Equal(t, 50*time.Millisecond, cfg.GetTick())

	cfg.Tick = "0s"
	assert.Equal(t, 50*time.Millisecond, cfg.GetTick())
}

func TestValidateReportsEveryField(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Align = "center"
	cfg.Tick = "fast"
	cfg.Countdown = CountdownConfig{Hours: -1, Minutes: -1, Seconds: 60}
	cfg.Pomodoro = PomodoroConfig{Work: 121, Short: 0, Long: 61, Sessions: 13}
	cfg.Logging = LoggingConfig{Level: "trace", Format: "xml"}

	err := cfg.Validate()
	require.Error(t, err)

	for _, field := range []string{
		"align", "tick",
		"countdown.hours", "countdown.minutes", "countdown.seconds",
		"pomodoro.work", "pomodoro.short", "pomodoro.long", "pomodoro.sessions",
		"logging.level", "logging.format",
	} {
		assert.Contains(t, err.Error(), field+":")
	}
}

func TestValidateBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Countdown = CountdownConfig{Hours: 23, Minutes: 59, Seconds: 59}
	cfg.Pomodoro = PomodoroConfig{Work: 120, Short: 1, Long: 60, Sessions: 12}
	assert.NoError(t, cfg.Validate())

	cfg.Tick = "500us"
	assert.ErrorContains(t, cfg.Validate(), "below")
}

func TestValidateCountdownHoursUnbounded(t *testing.T) {
	cfg := DefaultConfig()
	for _, h := range []int{24, 1500, maxCountdownHours} {
		cfg.Countdown = CountdownConfig{Hours: h, Minutes: 59, Seconds: 59}
		require.NoError(t, cfg.Validate(), "hours=%d", h)
		assert.Positive(t, cfg.CountdownTotal(), "hours=%d", h)
	}

	cfg.Countdown.Hours = maxCountdownHours + 1
	assert.ErrorContains(t, cfg.Validate(), "countdown.hours:")
}

func TestCountdownTotal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Countdown = CountdownConfig{Hours: 1, Minutes: 2, Seconds: 3}
	assert.Equal(t, time.Hour+2*time.Minute+3*time.Second, cfg.CountdownTotal())
}
