package clog

import (
	"fmt"
	"os"
)

// FileLogger appends plain "[LEVEL]: message" lines to a file.
//
// The file is opened on the first emitted line (or by Open) and held until
// Close. When the file cannot be opened or written, the emit returns an
// error wrapping ErrSinkUnavailable; the handle is dropped and the next emit
// tries again. One FileLogger per path is assumed.
type FileLogger struct {
	*Core
	path string
	f    *os.File
}

var _ Logger = (*FileLogger)(nil)

// NewFile builds a file sink for cfg.Path. Nothing is opened yet, so it
// never fails; use Open to surface problems early. An unset Timestamp
// means none.
func NewFile(cfg Config) *FileLogger {
	l := &FileLogger{path: cfg.Path}
	l.Core = NewCore(fileRenderer{l}, cfg.Threshold, cfg.Timestamp, cfg.Clock)
	return l
}

func (l *FileLogger) Trace(msg string) error { return l.Emit(LevelTrace, msg) }
func (l *FileLogger) Debug(msg string) error { return l.Emit(LevelDebug, msg) }
func (l *FileLogger) Info(msg string) error  { return l.Emit(LevelInfo, msg) }
func (l *FileLogger) Warn(msg string) error  { return l.Emit(LevelWarn, msg) }
func (l *FileLogger) Error(msg string) error { return l.Emit(LevelError, msg) }

// Path returns the target file path.
func (l *FileLogger) Path() string { return l.path }

// Open opens the target file now instead of on the first line.
// It is a no-op when the file is already open.
func (l *FileLogger) Open() error {
	var err error
	l.Locked(func() { err = l.open() })
	return err
}

// Close releases the file handle. A later emit reopens the file.
func (l *FileLogger) Close() error {
	var err error
	l.Locked(func() {
		if l.f == nil {
			return
		}
		err = l.f.Close()
		l.f = nil
	})
	return err
}

// open must be called with the lock held.
func (l *FileLogger) open() error {
	if l.f != nil {
		return nil
	}
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSinkUnavailable, err)
	}
	l.f = f
	return nil
}

type fileRenderer struct{ l *FileLogger }

func (r fileRenderer) Render(level Level, msg, stamp string) error {
	l := r.l
	if err := l.open(); err != nil {
		return err
	}

	buf := getBuf()
	defer putBuf(buf)
	plainLine(buf, level, msg, stamp)

	if _, err := l.f.Write(buf.b); err != nil {
		_ = l.f.Close()
		l.f = nil
		return fmt.Errorf("%w: %w", ErrSinkUnavailable, err)
	}
	return nil
}
