package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/espeon/wordclock/clock"
	"github.com/espeon/wordclock/data"
)

// syncBuffer lets the watch loop write while the test reads.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

var testNow = time.Date(2026, time.October, 16, 9, 30, 15, 250_000_000, time.UTC)

func newTestApp() (*app, *clock.Fake, *syncBuffer) {
	f := clock.NewFake(testNow)
	out := &syncBuffer{}
	return &app{clock: f, out: out, logger: zap.NewNop()}, f, out
}

func run(ctx context.Context, t *testing.T, a *app, args ...string) error {
	t.Helper()
	root := newRootCmd(a)
	root.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "absent.yaml")}, args...))
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.ExecuteContext(ctx)
}

// faceLines strips styling and trailing padding from rendered output.
func faceLines(s string) []string {
	s = strings.TrimSuffix(ansi.Strip(s), "\n")
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return lines
}

type frame struct {
	Face struct {
		Title string   `json:"title"`
		Lines []string `json:"lines"`
	} `json:"face"`
	Info map[string]any `json:"info"`
}

func frames(t *testing.T, s string) []frame {
	t.Helper()
	var out []frame
	sc := bufio.NewScanner(strings.NewReader(s))
	for sc.Scan() {
		var f frame
		require.NoError(t, json.Unmarshal(sc.Bytes(), &f), "line %q", sc.Text())
		out = append(out, f)
	}
	require.NoError(t, sc.Err())
	return out
}

func TestSay(t *testing.T) {
	a, _, out := newTestApp()
	require.NoError(t, run(context.Background(), t, a, "say", "0", "15", "42", "100", "219", "1001"))
	assert.Equal(t, "zero\nfifteen\nforty-two\none hundred\ntwo hundred nineteen\n1001\n", out.String())
}

func TestSayNegative(t *testing.T) {
	a, _, out := newTestApp()
	require.NoError(t, run(context.Background(), t, a, "say", "--", "-3"))
	assert.Equal(t, "-3\n", out.String())
}

func TestSayRejectsFractions(t *testing.T) {
	a, _, _ := newTestApp()
	err := run(context.Background(), t, a, "say", "1.5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a whole number")
}

func TestSayStrict(t *testing.T) {
	a, _, _ := newTestApp()
	err := run(context.Background(), t, a, "say", "--strict", "999", "1000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no word form")
}

func TestSayJSON(t *testing.T) {
	a, _, out := newTestApp()
	require.NoError(t, run(context.Background(), t, a, "--json", "say", "7", "5000"))
	assert.JSONEq(t, `[{"input":7,"words":"seven","plain":false},{"input":5000,"words":"5000","plain":true}]`, out.String())
}

func TestNow(t *testing.T) {
	a, _, out := newTestApp()
	require.NoError(t, run(context.Background(), t, a, "now"))
	assert.Equal(t, []string{"nine", "thirty", "fifteen", "and two hundred fifty"}, faceLines(out.String()))
}

func TestNowAlignRight(t *testing.T) {
	a, _, out := newTestApp()
	require.NoError(t, run(context.Background(), t, a, "--align", "right", "now"))

	lines := strings.Split(strings.TrimSuffix(ansi.Strip(out.String()), "\n"), "\n")
	require.Len(t, lines, 4)
	width := len(lines[3])
	for _, l := range lines {
		assert.Len(t, l, width, "right-aligned lines share a width")
	}
	assert.Equal(t, strings.Repeat(" ", width-len("nine"))+"nine", lines[0])
}

func TestNowRejectsBadAlign(t *testing.T) {
	a, _, _ := newTestApp()
	err := run(context.Background(), t, a, "--align", "center", "now")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "align")
}

func TestNowWatchStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	a, f, out := newTestApp()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- run(ctx, t, a, "--json", "--tick", "1s", "now", "--watch") }()

	require.Eventually(t, func() bool {
		f.Add(time.Second)
		return len(frames(t, out.String())) >= 3
	}, 5*time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestCountdownSnapshot(t *testing.T) {
	a, _, out := newTestApp()
	require.NoError(t, run(context.Background(), t, a, "countdown", "--hours", "1", "--minutes", "2", "--seconds", "3"))
	assert.Equal(t, []string{"one", "two", "three", "and zero"}, faceLines(out.String()))
}

func TestCountdownHoursPastOneDay(t *testing.T) {
	a, _, out := newTestApp()
	require.NoError(t, run(context.Background(), t, a, "countdown", "--hours", "1500"))
	assert.Equal(t, []string{"1500", "zero", "zero", "and zero"}, faceLines(out.String()))

	a, _, out = newTestApp()
	require.NoError(t, run(context.Background(), t, a, "countdown", "--hours", "24", "--minutes", "0"))
	assert.Equal(t, "twenty-four", faceLines(out.String())[0])
}

func TestCountdownRejectsOutOfRange(t *testing.T) {
	a, _, _ := newTestApp()
	err := run(context.Background(), t, a, "countdown", "--minutes", "60")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "countdown.minutes")
}

func TestCountdownWatchRunsToZero(t *testing.T) {
	defer goleak.VerifyNone(t)

	a, f, out := newTestApp()
	done := make(chan error, 1)
	go func() {
		done <- run(context.Background(), t, a, "--json", "--tick", "1s",
			"countdown", "--minutes", "0", "--seconds", "2", "--watch")
	}()

	var err error
	require.Eventually(t, func() bool {
		select {
		case err = <-done:
			return true
		default:
			f.Add(time.Second)
			return false
		}
	}, 5*time.Second, 5*time.Millisecond)
	require.NoError(t, err)

	got := frames(t, out.String())
	require.GreaterOrEqual(t, len(got), 2)
	assert.Equal(t, []string{"zero", "zero"}, got[0].Face.Lines[:2])
	last := got[len(got)-1]
	assert.Equal(t, []string{"zero", "zero", "zero", "and zero"}, last.Face.Lines)
	assert.EqualValues(t, 0, last.Info["remaining_ms"])
	assert.NotContains(t, out.String(), "\a", "no bell in JSON mode")
}

func TestPomodoroSnapshot(t *testing.T) {
	a, _, out := newTestApp()
	require.NoError(t, run(context.Background(), t, a, "pomodoro", "--work", "1", "--sessions", "2"))
	assert.Equal(t, []string{"Work", "◉ ○", "one minute", "and zero seconds", "000 ms"}, faceLines(out.String()))
}

func TestPomodoroWatchAdvancesPhase(t *testing.T) {
	defer goleak.VerifyNone(t)

	a, f, out := newTestApp()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- run(ctx, t, a, "--json", "--tick", "1s",
			"pomodoro", "--work", "1", "--short", "2", "--sessions", "2", "--watch")
	}()

	require.Eventually(t, func() bool {
		f.Add(30 * time.Second)
		return strings.Contains(out.String(), `"phase":"short"`)
	}, 5*time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-done)

	var sawShort bool
	for _, fr := range frames(t, out.String()) {
		if fr.Info["phase"] == "short" {
			sawShort = true
			assert.Equal(t, "Short Break", fr.Face.Title)
			assert.EqualValues(t, 1, fr.Info["session"])
		}
	}
	assert.True(t, sawShort)
}

func TestConfigExample(t *testing.T) {
	a, _, out := newTestApp()
	require.NoError(t, run(context.Background(), t, a, "config", "--example"))
	assert.Equal(t, string(data.ExampleConfig), out.String())
}

func TestConfigEffective(t *testing.T) {
	a, _, out := newTestApp()
	require.NoError(t, run(context.Background(), t, a, "--align", "right", "config"))
	assert.Contains(t, out.String(), "align: right")
	assert.Contains(t, out.String(), "sessions: 4")
}
