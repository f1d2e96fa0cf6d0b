// Package zerologsink routes clog lines through an rs/zerolog logger.
package zerologsink

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/clog"
)

// Sink is a clog.Logger backed by a zerolog.Logger.
//
// clog's threshold is applied first; the zerolog logger's own level then
// applies as usual. The clog timestamp suffix (none by default) is appended
// to the message.
type Sink struct {
	*clog.Core
	l zerolog.Logger
}

var _ clog.Logger = (*Sink)(nil)

// New wraps l. Threshold, Timestamp and Clock are taken from cfg.
func New(l zerolog.Logger, cfg clog.Config) *Sink {
	s := &Sink{l: l}
	s.Core = clog.NewCore(renderer{s}, cfg.Threshold, cfg.Timestamp, cfg.Clock)
	return s
}

func (s *Sink) Trace(msg string) error { return s.Emit(clog.LevelTrace, msg) }
func (s *Sink) Debug(msg string) error { return s.Emit(clog.LevelDebug, msg) }
func (s *Sink) Info(msg string) error  { return s.Emit(clog.LevelInfo, msg) }
func (s *Sink) Warn(msg string) error  { return s.Emit(clog.LevelWarn, msg) }
func (s *Sink) Error(msg string) error { return s.Emit(clog.LevelError, msg) }

type renderer struct{ s *Sink }

// Render hands the line to zerolog. A disabled level yields a nil event,
// on which Msg is a no-op.
func (r renderer) Render(level clog.Level, msg, stamp string) error {
	r.s.l.WithLevel(mapLevel(level)).Msg(msg + stamp)
	return nil
}

// mapLevel converts clog.Level to zerolog.Level.
func mapLevel(l clog.Level) zerolog.Level {
	switch {
	case l <= clog.LevelTrace:
		return zerolog.TraceLevel
	case l <= clog.LevelDebug:
		return zerolog.DebugLevel
	case l <= clog.LevelInfo:
		return zerolog.InfoLevel
	case l <= clog.LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

// Config is an explicit, code-first configuration for a zerolog-backed sink.
type Config struct {
	Writer            io.Writer // default: os.Stdout
	Threshold         clog.Level
	Console           bool   // zerolog.ConsoleWriter instead of JSON
	ConsoleTimeFormat string // only used if Console; default time.RFC3339
}

// Use builds a zerolog-backed sink from cfg, sets it as the global clog
// logger, and returns it.
func Use(cfg Config) *Sink {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	if cfg.Console {
		cw := zerolog.ConsoleWriter{Out: w, TimeFormat: cfg.ConsoleTimeFormat}
		if cw.TimeFormat == "" {
			cw.TimeFormat = time.RFC3339
		}
		w = cw
	}
	zl := zerolog.New(w).Level(mapLevel(cfg.Threshold)).With().Timestamp().Logger()

	s := New(zl, clog.Config{Threshold: cfg.Threshold})
	clog.SetGlobal(s)
	return s
}
