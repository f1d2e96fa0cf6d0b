// Package zapsink routes clog lines through a go.uber.org/zap logger.
package zapsink

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/clog"
)

// Sink is a clog.Logger backed by a *zap.Logger. zap has no trace level, so
// TRACE lines are written at zap's Debug level.
type Sink struct {
	*clog.Core
	l *zap.Logger
}

var _ clog.Logger = (*Sink)(nil)

// New wraps l. Threshold, Timestamp and Clock are taken from cfg.
func New(l *zap.Logger, cfg clog.Config) *Sink {
	if l == nil {
		l = zap.NewNop()
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

// Sync flushes the underlying zap core.
func (s *Sink) Sync() error { return s.l.Sync() }

type renderer struct{ s *Sink }

func (r renderer) Render(level clog.Level, msg, stamp string) error {
	if ce := r.s.l.Check(toZapLevel(level), msg+stamp); ce != nil {
		ce.Write()
	}
	return nil
}

func toZapLevel(l clog.Level) zapcore.Level {
	switch {
	case l <= clog.LevelDebug:
		return zapcore.DebugLevel
	case l <= clog.LevelInfo:
		return zapcore.InfoLevel
	case l <= clog.LevelWarn:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

// Config is an explicit, code-first configuration for a zap-backed sink.
type Config struct {
	Writer    io.Writer // default: os.Stdout
	Threshold clog.Level
	Console   bool // console encoder instead of JSON
}

// Use builds a zap-backed sink from cfg, sets it as the global clog logger,
// and returns it.
func Use(cfg Config) *Sink {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var enc zapcore.Encoder
	if cfg.Console {
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(w), toZapLevel(cfg.Threshold))

	s := New(zap.New(core), clog.Config{Threshold: cfg.Threshold})
	clog.SetGlobal(s)
	return s
}
