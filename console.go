package clog

import (
	"fmt"
	"io"

	"github.com/mattn/go-colorable"
)

// ConsoleLogger writes human-readable lines to a terminal, optionally
// wrapping them in ANSI color sequences. It is flushed after every line.
//
// Thread Safety:
//   - All methods are safe for concurrent use from multiple goroutines.
type ConsoleLogger struct {
	*Core
	w       io.Writer
	style   Style
	palette Palette
}

var _ Logger = (*ConsoleLogger)(nil)

// NewConsole builds a console sink from cfg. A nil Writer means stdout
// (through go-colorable so escapes render on Windows consoles), an unset
// Timestamp means date and time, and a zero Palette means DefaultPalette.
func NewConsole(cfg Config) *ConsoleLogger {
	w := cfg.Writer
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	palette := cfg.Palette
	if palette == (Palette{}) {
		palette = DefaultPalette()
	}
	l := &ConsoleLogger{
		w:       w,
		style:   cfg.Style.orDefault(),
		palette: palette,
	}
	l.Core = newCore(consoleRenderer{l}, cfg.Threshold, cfg.Timestamp, TimestampDateAndTime, cfg.Clock)
	return l
}

func (l *ConsoleLogger) Trace(msg string) error { return l.Emit(LevelTrace, msg) }
func (l *ConsoleLogger) Debug(msg string) error { return l.Emit(LevelDebug, msg) }
func (l *ConsoleLogger) Info(msg string) error  { return l.Emit(LevelInfo, msg) }
func (l *ConsoleLogger) Warn(msg string) error  { return l.Emit(LevelWarn, msg) }
func (l *ConsoleLogger) Error(msg string) error { return l.Emit(LevelError, msg) }

// SetStyle changes the colorization style. An unset style means no color.
func (l *ConsoleLogger) SetStyle(s Style) {
	l.Locked(func() { l.style = s.orDefault() })
}

// Style returns the current colorization style.
func (l *ConsoleLogger) Style() Style {
	var s Style
	l.Locked(func() { s = l.style })
	return s
}

// SetColor assigns c to level.
func (l *ConsoleLogger) SetColor(level Level, c Color) {
	l.Locked(func() { l.palette.Set(level, c) })
}

// Palette returns a copy of the current color assignment.
func (l *ConsoleLogger) Palette() Palette {
	var p Palette
	l.Locked(func() { p = l.palette })
	return p
}

type consoleRenderer struct{ l *ConsoleLogger }

// Render composes the whole line and hands it to the writer in one Write.
// Console failures are not reported.
func (r consoleRenderer) Render(level Level, msg, stamp string) error {
	l := r.l
	buf := getBuf()
	defer putBuf(buf)

	switch l.style {
	case StyleNoColor:
		plainLine(buf, level, msg, stamp)
	case StyleLevelOnly:
		buf.writeColor(l.palette.For(level))
		buf.writeTag(level)
		buf.writeColor(FgDefault)
		buf.writeString(msg)
		buf.writeString(stamp)
		buf.writeByte('\n')
	case StyleAll:
		buf.writeColor(l.palette.For(level))
		buf.writeTag(level)
		buf.writeString(msg)
		buf.writeString(stamp)
		buf.writeColor(FgDefault)
		buf.writeByte('\n')
	default:
		panic(fmt.Sprintf("clog: invalid color style %d", l.style))
	}

	_, _ = l.w.Write(buf.b)
	flush(l.w)
	return nil
}

type flusher interface{ Flush() error }
type syncer interface{ Sync() error }

// flush pushes buffered writers through. Files are written unbuffered and
// are never fsynced here.
func flush(w io.Writer) {
	switch f := w.(type) {
	case flusher:
		_ = f.Flush()
	case syncer:
		if _, isFile := w.(interface{ Fd() uintptr }); !isFile {
			_ = f.Sync()
		}
	}
}
