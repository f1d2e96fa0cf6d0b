package zerologsink

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/trickstertwo/xclock"

	"github.com/trickstertwo/clog"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("json unmarshal: %v; line=%s", err, line)
		}
		out = append(out, m)
	}
	return out
}

func TestSink_GatesAndMapsLevels(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := New(zerolog.New(&buf).Level(zerolog.TraceLevel), clog.Config{Threshold: clog.LevelDebug})

	_ = s.Trace("filtered by clog")
	_ = s.Debug("d")
	_ = s.Warn("w")
	_ = s.Error("e")

	lines := decodeLines(t, &buf)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %s", len(lines), buf.String())
	}
	want := []struct{ level, msg string }{{"debug", "d"}, {"warn", "w"}, {"error", "e"}}
	for i, w := range want {
		if lines[i]["level"] != w.level || lines[i]["message"] != w.msg {
			t.Fatalf("line %d mismatch: %v", i, lines[i])
		}
	}
}

func TestSink_AppendsStamp(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	clock := xclock.NewFrozen(time.Date(2026, 1, 2, 8, 9, 10, 0, time.Local))
	s := New(zerolog.New(&buf), clog.Config{Timestamp: clog.TimestampTimeOnly, Clock: clock})

	_ = s.Info("ready")
	lines := decodeLines(t, &buf)
	if len(lines) != 1 || lines[0]["message"] != "ready 8:9:10" {
		t.Fatalf("unexpected output: %s", buf.String())
	}
}

func TestSink_BackendLevelStillApplies(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := New(zerolog.New(&buf).Level(zerolog.ErrorLevel), clog.Config{Threshold: clog.LevelTrace})

	_ = s.Warn("dropped by zerolog")
	if buf.Len() != 0 {
		t.Fatalf("expected zerolog to drop WARN, got %s", buf.String())
	}
}

func TestMapLevel(t *testing.T) {
	t.Parallel()

	cases := map[clog.Level]zerolog.Level{
		clog.LevelTrace: zerolog.TraceLevel,
		clog.LevelDebug: zerolog.DebugLevel,
		clog.LevelInfo:  zerolog.InfoLevel,
		clog.LevelWarn:  zerolog.WarnLevel,
		clog.LevelError: zerolog.ErrorLevel,
	}
	for in, want := range cases {
		if got := mapLevel(in); got != want {
			t.Fatalf("mapLevel(%s) = %s, want %s", in, got, want)
		}
	}
}

// Not parallel: Use replaces the global logger.
func TestUse_SetsGlobal(t *testing.T) {
	defer clog.SetGlobal(nil)

	var buf bytes.Buffer
	s := Use(Config{Writer: &buf, Threshold: clog.LevelInfo})
	if clog.L() != clog.Logger(s) {
		t.Fatalf("Use did not set the global logger")
	}
	_ = clog.Info("via facade")
	lines := decodeLines(t, &buf)
	if len(lines) != 1 || lines[0]["message"] != "via facade" {
		t.Fatalf("unexpected output: %s", buf.String())
	}
	if _, ok := lines[0]["time"]; !ok {
		t.Fatalf("zerolog timestamp missing: %v", lines[0])
	}
}
