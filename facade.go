package clog

import "sync/atomic"

// Facade: global access (Singleton + Facade).
// Usage: clog.SetGlobal(clog.Default()); clog.Info("ready")

type holder struct{ l Logger }

var global atomic.Pointer[holder]

// SetGlobal sets the global Logger. Passing nil restores the no-op logger.
func SetGlobal(l Logger) {
	if l == nil {
		global.Store(nil)
		return
	}
	global.Store(&holder{l: l})
}

// L returns the global Logger, or Nop() when none has been set.
func L() Logger {
	h := global.Load()
	if h == nil {
		return Nop()
	}
	return h.l
}

// Default builds a console logger on stdout at LevelInfo with date and time
// suffixes and no color.
func Default() *ConsoleLogger {
	return NewBuilder().Console()
}

func Trace(msg string) error { return L().Trace(msg) }
func Debug(msg string) error { return L().Debug(msg) }
func Info(msg string) error  { return L().Info(msg) }
func Warn(msg string) error  { return L().Warn(msg) }
func Error(msg string) error { return L().Error(msg) }
