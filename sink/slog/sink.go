// Package slogsink routes clog lines through a log/slog logger.
package slogsink

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/trickstertwo/clog"
)

// Sink is a clog.Logger backed by a *slog.Logger. clog levels share slog's
// numbering, so TRACE is written at slog.Level(-8).
type Sink struct {
	*clog.Core
	l *slog.Logger
}

var _ clog.Logger = (*Sink)(nil)

// New wraps l (slog.Default() when nil). Threshold, Timestamp and Clock are
// taken from cfg.
func New(l *slog.Logger, cfg clog.Config) *Sink {
	if l == nil {
		l = slog.Default()
	}
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

func (r renderer) Render(level clog.Level, msg, stamp string) error {
	r.s.l.LogAttrs(context.Background(), slog.Level(level), msg+stamp)
	return nil
}

// Config is an explicit, code-first configuration for a slog-backed sink.
type Config struct {
	Writer    io.Writer // default: os.Stdout
	Threshold clog.Level
	JSON      bool // JSON handler instead of text
}

// Use builds a slog-backed sink from cfg, sets it as the global clog logger,
// and returns it.
func Use(cfg Config) *Sink {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	opts := &slog.HandlerOptions{Level: slog.Level(cfg.Threshold)}
	var h slog.Handler
	if cfg.JSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	s := New(slog.New(h), clog.Config{Threshold: cfg.Threshold})
	clog.SetGlobal(s)
	return s
}
