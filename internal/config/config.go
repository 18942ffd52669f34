// Package config loads wordclock preferences from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/espeon/wordclock/duration"
	"github.com/espeon/wordclock/render"
	"github.com/espeon/wordclock/timer"
)

// Config holds all wordclock configuration.
type Config struct {
	// Layout
	Align string `yaml:"align"` // left, right

	// Watch mode redraw period
	Tick string `yaml:"tick"`

	// Ring the terminal bell on pomodoro phase changes
	Bell bool `yaml:"bell"`

	Countdown CountdownConfig `yaml:"countdown"`
	Pomodoro  PomodoroConfig  `yaml:"pomodoro"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// CountdownConfig is the starting point of the countdown.
type CountdownConfig struct {
	Hours   int `yaml:"hours"`
	Minutes int `yaml:"minutes"`
	Seconds int `yaml:"seconds"`
}

// PomodoroConfig holds phase lengths in whole minutes.
type PomodoroConfig struct {
	Work     int `yaml:"work"`
	Short    int `yaml:"short"`
	Long     int `yaml:"long"`
	Sessions int `yaml:"sessions"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

// Field bounds enforced by Validate.
const (
	// Countdown hours are only bounded so the total fits in a time.Duration.
	maxCountdownHours = int(math.MaxInt64/int64(time.Hour)) - 1
	maxMinuteSecond   = 59
	maxWorkMinutes    = 120
	maxBreakMinutes   = 60
	maxSessions       = 12

	defaultTick = 50 * time.Millisecond
	minTick     = time.Millisecond
)

// DefaultPath returns wordclock/wordclock.yaml under the user config
// directory, or wordclock.yaml in the working directory when there is none.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "wordclock.yaml"
	}
	return filepath.Join(dir, "wordclock", "wordclock.yaml")
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Align: "left",
		Tick:  defaultTick.String(),
		Bell:  true,

		Countdown: CountdownConfig{
			Minutes: 5,
		},

		Pomodoro: PomodoroConfig{
			Work:     int(timer.DefaultWork / time.Minute),
			Short:    int(timer.DefaultShort / time.Minute),
			Long:     int(timer.DefaultLong / time.Minute),
			Sessions: timer.DefaultSessions,
		},

		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err == nil {
		if err := Decode(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Decode overlays YAML data onto cfg. Unknown keys are rejected.
func Decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("WORDCLOCK_ALIGN"); v != "" {
		c.Align = v
	}
	if v := os.Getenv("WORDCLOCK_TICK"); v != "" {
		c.Tick = v
	}
	if v := os.Getenv("WORDCLOCK_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// GetTick returns the watch-mode redraw period.
func (c *Config) GetTick() time.Duration {
	d, err := time.ParseDuration(c.Tick)
	if err != nil || d < minTick {
		return defaultTick
	}
	return d
}

// GetAlign returns the parsed alignment, defaulting to left.
func (c *Config) GetAlign() render.Align {
	a, err := render.ParseAlign(c.Align)
	if err != nil {
		return render.AlignLeft
	}
	return a
}

// CountdownTotal returns the configured countdown length.
func (c *Config) CountdownTotal() time.Duration {
	ms := duration.Join(int64(c.Countdown.Hours), int64(c.Countdown.Minutes), int64(c.Countdown.Seconds))
	return time.Duration(ms) * time.Millisecond
}

// PomodoroTimer converts the minute counts to a timer configuration.
func (c *Config) PomodoroTimer() timer.PomodoroConfig {
	return timer.PomodoroConfig{
		Work:     time.Duration(c.Pomodoro.Work) * time.Minute,
		Short:    time.Duration(c.Pomodoro.Short) * time.Minute,
		Long:     time.Duration(c.Pomodoro.Long) * time.Minute,
		Sessions: c.Pomodoro.Sessions,
	}
}

// ValidLogLevels lists the accepted logging levels.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// ValidLogFormats lists the accepted logging formats.
var ValidLogFormats = []string{"console", "json"}

// Validate reports every out-of-range field at once.
func (c *Config) Validate() error {
	var errs []error

	if _, err := render.ParseAlign(c.Align); err != nil {
		errs = append(errs, fmt.Errorf("align: %w", err))
	}
	if d, err := time.ParseDuration(c.Tick); err != nil {
		errs = append(errs, fmt.Errorf("tick: %w", err))
	} else if d < minTick {
		errs = append(errs, fmt.Errorf("tick: %s is below %s", d, minTick))
	}

	errs = appendRange(errs, "countdown.hours", c.Countdown.Hours, 0, maxCountdownHours)
	errs = appendRange(errs, "countdown.minutes", c.Countdown.Minutes, 0, maxMinuteSecond)
	errs = appendRange(errs, "countdown.seconds", c.Countdown.Seconds, 0, maxMinuteSecond)

	errs = appendRange(errs, "pomodoro.work", c.Pomodoro.Work, 1, maxWorkMinutes)
	errs = appendRange(errs, "pomodoro.short", c.Pomodoro.Short, 1, maxBreakMinutes)
	errs = appendRange(errs, "pomodoro.long", c.Pomodoro.Long, 1, maxBreakMinutes)
	errs = appendRange(errs, "pomodoro.sessions", c.Pomodoro.Sessions, 1, maxSessions)

	if !slices.Contains(ValidLogLevels, c.Logging.Level) {
		errs = append(errs, fmt.Errorf("logging.level: invalid %q (valid: %v)", c.Logging.Level, ValidLogLevels))
	}
	if !slices.Contains(ValidLogFormats, c.Logging.Format) {
		errs = append(errs, fmt.Errorf("logging.format: invalid %q (valid: %v)", c.Logging.Format, ValidLogFormats))
	}

	return errors.Join(errs...)
}

func appendRange(errs []error, field string, v, lo, hi int) []error {
	if v < lo || v > hi {
		return append(errs, fmt.Errorf("%s: %d out of range [%d, %d]", field, v, lo, hi))
	}
	return errs
}
