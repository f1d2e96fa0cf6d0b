package clog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func newTestFile(path string, threshold Level, format TimestampFormat) *FileLogger {
	return NewBuilder().
		WithThreshold(threshold).
		WithTimestamp(format).
		WithClock(frozenAt(14, 5, 9)).
		File(path)
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	return string(content)
}

func TestFile_WritesPlainLines(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "app.log")
	l := newTestFile(path, LevelInfo, TimestampTimeOnly)
	defer l.Close()

	if err := l.Warn("disk low"); err != nil {
		t.Fatalf("warn: %v", err)
	}
	if err := l.Debug("filtered"); err != nil {
		t.Fatalf("debug: %v", err)
	}
	if err := l.Error("boom"); err != nil {
		t.Fatalf("error: %v", err)
	}

	want := "[WARN]: disk low 14:5:9\n[ERROR]: boom 14:5:9\n"
	if got := readFile(t, path); got != want {
		t.Fatalf("unexpected file content:\n got %q\nwant %q", got, want)
	}
}

func TestFile_DefaultTimestampIsNone(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "app.log")
	l := NewBuilder().File(path)
	defer l.Close()

	_ = l.Info("plain")
	if got := readFile(t, path); got != "[INFO]: plain\n" {
		t.Fatalf("unexpected file content %q", got)
	}
}

func TestFile_AppendsToExisting(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "app.log")
	if err := os.WriteFile(path, []byte("previous run\n"), 0644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	l := newTestFile(path, LevelInfo, TimestampNone)
	_ = l.Info("next run")
	if err := l.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	if got := readFile(t, path); got != "previous run\n[INFO]: next run\n" {
		t.Fatalf("unexpected file content %q", got)
	}
}

func TestFile_FilteredDoesNotCreateFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "quiet.log")
	l := newTestFile(path, LevelError, TimestampNone)
	defer l.Close()

	_ = l.Info("x")
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("file should not exist before any line passes, stat err=%v", err)
	}
}

func TestFile_UnwritablePathReturnsError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "app.log")
	l := newTestFile(path, LevelInfo, TimestampNone)
	defer l.Close()

	err := l.Warn("hello")
	if err == nil {
		t.Fatal("expected sink error for missing directory")
	}
	if !errors.Is(err, ErrSinkUnavailable) {
		t.Fatalf("expected ErrSinkUnavailable, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped os error, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("error should name the path: %v", err)
	}

	if err := l.Open(); !errors.Is(err, ErrSinkUnavailable) {
		t.Fatalf("Open should report the same failure, got %v", err)
	}
}

func TestFile_RecoversWhenPathBecomesWritable(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "later")
	path := filepath.Join(dir, "app.log")
	l := newTestFile(path, LevelInfo, TimestampNone)
	defer l.Close()

	if err := l.Info("lost"); !errors.Is(err, ErrSinkUnavailable) {
		t.Fatalf("expected sink error, got %v", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := l.Info("kept"); err != nil {
		t.Fatalf("expected recovery, got %v", err)
	}
	if got := readFile(t, path); got != "[INFO]: kept\n" {
		t.Fatalf("failed line must not be replayed, got %q", got)
	}
}

func TestFile_WriteFailureDropsHandle(t *testing.T) {
	t.Parallel()

	const full = "/dev/full"
	if _, err := os.Stat(full); err != nil {
		t.Skipf("%s not available: %v", full, err)
	}
	l := newTestFile(full, LevelInfo, TimestampNone)
	defer l.Close()

	for i := 0; i < 2; i++ {
		err := l.Warn("no space")
		if !errors.Is(err, ErrSinkUnavailable) {
			t.Fatalf("emit %d: expected ErrSinkUnavailable, got %v", i, err)
		}
		if !strings.Contains(err.Error(), full) {
			t.Fatalf("emit %d: error should name the file, got %v", i, err)
		}
		if l.f != nil {
			t.Fatalf("emit %d: handle should be dropped after a failed write", i)
		}
	}

	// The next attempt reopens the file.
	if err := l.Open(); err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if l.f == nil {
		t.Fatalf("expected an open handle after Open")
	}
}

func TestFile_UnsetTimestampRestoresNone(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "app.log")
	l := newTestFile(path, LevelInfo, TimestampTimeOnly)
	defer l.Close()

	l.SetTimestampFormat(0)
	if l.TimestampFormat() != TimestampNone {
		t.Fatalf("unset format should restore none, got %s", l.TimestampFormat())
	}
	_ = l.Info("plain")
	if got := readFile(t, path); got != "[INFO]: plain\n" {
		t.Fatalf("unexpected content %q", got)
	}
}

func TestFile_OpenEagerlyAndReopenAfterClose(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "app.log")
	l := newTestFile(path, LevelInfo, TimestampNone)

	if err := l.Open(); err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := l.Open(); err != nil {
		t.Fatalf("second open should be a no-op: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Open should create the file: %v", err)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("double close should be a no-op: %v", err)
	}

	if err := l.Info("after close"); err != nil {
		t.Fatalf("emit after close: %v", err)
	}
	_ = l.Close()
	if got := readFile(t, path); got != "[INFO]: after close\n" {
		t.Fatalf("unexpected file content %q", got)
	}
	if l.Path() != path {
		t.Fatalf("Path() = %q, want %q", l.Path(), path)
	}
}

func TestFile_ConcurrentLinesDoNotInterleave(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "concurrent.log")
	l := newTestFile(path, LevelInfo, TimestampNone)

	const goroutines = 20
	const perGoroutine = 100
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for range goroutines {
		go func() {
			defer wg.Done()
			for range perGoroutine {
				_ = l.Info("concurrent-line")
			}
		}()
	}
	wg.Wait()
	_ = l.Close()

	lines := strings.Split(strings.TrimSuffix(readFile(t, path), "\n"), "\n")
	if len(lines) != goroutines*perGoroutine {
		t.Fatalf("expected %d lines, got %d", goroutines*perGoroutine, len(lines))
	}
	for i, line := range lines {
		if line != "[INFO]: concurrent-line" {
			t.Fatalf("line %d garbled: %q", i, line)
		}
	}
}
