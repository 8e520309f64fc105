package cmd

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"web/frontkit/internal/clock"
	"web/frontkit/internal/viewport"
)

// run выполняет корневую команду с ручными часами и возвращает stdout.
func run(t *testing.T, clk clock.Clock, stdin io.Reader, args ...string) (string, error) {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "absent.yaml")

	root := newRootCmd(&app{clock: clk})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	if stdin != nil {
		root.SetIn(stdin)
	}
	root.SetArgs(append([]string{"--config", cfgPath}, args...))

	err := root.Execute()
	return out.String(), err
}

func manualClock() *clock.Manual {
	return clock.NewManual(time.Unix(0, 0))
}

func TestClassifyCmd_JSON(t *testing.T) {
	out, err := run(t, manualClock(), nil, "classify", "--width", "800", "--height", "900", "--json")
	require.NoError(t, err)

	var flags viewport.Flags
	require.NoError(t, json.Unmarshal([]byte(out), &flags))
	assert.Equal(t, viewport.Flags{IsMedium: true, IsTall: true}, flags)
}

func TestClassifyCmd_Table(t *testing.T) {
	out, err := run(t, manualClock(), nil, "classify", "--width", "3000", "--height", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "3000x100")
	assert.Contains(t, out, "larger")
	assert.Contains(t, out, "true")
}

func TestClassifyCmd_RequiresDimensions(t *testing.T) {
	_, err := run(t, manualClock(), nil, "classify", "--width", "800")
	assert.Error(t, err)
}

func TestPreloadCmd(t *testing.T) {
	out, err := run(t, manualClock(), nil, "preload", "a.png", "b.png", "c.png")
	require.NoError(t, err)
	assert.Equal(t, "<img src=\"a.png\"/>\n<img src=\"b.png\"/>\n<img src=\"c.png\"/>\n", out)
}

func TestLandmarksCmd_Stdin(t *testing.T) {
	in := strings.NewReader(`<header class="aria-landmark-banner aria-label-site-header"></header><div class="aria-landmark-header"></div>`)
	out, err := run(t, manualClock(), in, "landmarks")
	require.NoError(t, err)
	assert.Contains(t, out, `role="banner"`)
	assert.Contains(t, out, `aria-label="site header"`)
	assert.NotContains(t, out, `role="header"`)
}

func TestLandmarksCmd_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte(`<main class="aria-landmark-main"></main>`), 0o600))

	out, err := run(t, manualClock(), nil, "landmarks", path)
	require.NoError(t, err)
	assert.Contains(t, out, `role="main"`)

	_, err = run(t, manualClock(), nil, "landmarks", filepath.Join(t.TempDir(), "missing.html"))
	assert.Error(t, err)
}

func decodeEvents(t *testing.T, out string) []refreshEvent {
	t.Helper()
	var events []refreshEvent
	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		var ev refreshEvent
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &ev))
		events = append(events, ev)
	}
	return events
}

// TestWatchCmd_FlushesLastEvent проверяет, что из серии событий печатается
// только результат последнего.
func TestWatchCmd_FlushesLastEvent(t *testing.T) {
	in := strings.NewReader("320 600\n# comment\n\n800 700\n1280 900\n")
	out, err := run(t, manualClock(), in, "watch")
	require.NoError(t, err)

	events := decodeEvents(t, out)
	require.Len(t, events, 1)
	assert.Equal(t, refreshEvent{Width: 1280, Height: 900, Flags: viewport.Flags{IsLarge: true, IsTall: true}}, events[0])
}

// tickingReader отдает по одной строке за Read и сдвигает часы перед каждой
// строкой, кроме первой.
type tickingReader struct {
	clk   *clock.Manual
	step  time.Duration
	lines []string
	read  int
}

func (r *tickingReader) Read(p []byte) (int, error) {
	if r.read >= len(r.lines) {
		return 0, io.EOF
	}
	if r.read > 0 {
		r.clk.Advance(r.step)
	}
	n := copy(p, r.lines[r.read])
	r.read++
	return n, nil
}

// TestWatchCmd_QuietPeriodTriggersRefresh проверяет, что пауза длиннее
// интервала приводит к промежуточному обновлению.
func TestWatchCmd_QuietPeriodTriggersRefresh(t *testing.T) {
	clk := manualClock()
	in := &tickingReader{clk: clk, step: time.Second, lines: []string{"320 600\n", "2100 900\n"}}

	out, err := run(t, clk, in, "watch")
	require.NoError(t, err)

	events := decodeEvents(t, out)
	require.Len(t, events, 2)
	assert.True(t, events[0].Flags.IsSmall)
	assert.Equal(t, viewport.Flags{IsLarger: true, IsTall: true}, events[1].Flags)
}

func TestWatchCmd_InvalidLine(t *testing.T) {
	_, err := run(t, manualClock(), strings.NewReader("wide tall\n"), "watch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestParseSize(t *testing.T) {
	w, h, err := parseSize("1024 768")
	require.NoError(t, err)
	assert.Equal(t, 1024.0, w)
	assert.Equal(t, 768.0, h)

	_, _, err = parseSize("1024")
	assert.Error(t, err)
	_, _, err = parseSize("1024 x")
	assert.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	SetVersionInfo("1.2.3", "abc123", "2026-10-19")
	out, err := run(t, manualClock(), nil, "version")
	require.NoError(t, err)
	assert.Equal(t, "frontkit 1.2.3 (commit abc123, built 2026-10-19)\n", out)
}

// TestLandmarksCmd_EmptyAllowedRoles проверяет, что пустой allowed_roles
// в конфигурации запрещает все роли.
func TestLandmarksCmd_EmptyAllowedRoles(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "frontkit.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("landmarks:\n  allowed_roles: []\n"), 0o600))

	root := newRootCmd(&app{clock: manualClock()})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetIn(strings.NewReader(`<main class="aria-landmark-main aria-label-body"></main>`))
	root.SetArgs([]string{"--config", cfgPath, "landmarks"})

	require.NoError(t, root.Execute())
	assert.NotContains(t, out.String(), `role="main"`)
	assert.Contains(t, out.String(), `aria-label="body"`)
}
