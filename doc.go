// Package clog is a small leveled logger for human-readable status lines.
//
// A line looks like
//
//	[WARN]: disk almost full 14:5:9 17/10/2026
//
// and is written to a console (optionally colored with ANSI sequences) or
// appended to a file. Each sink owns a threshold; messages below it are
// dropped before any formatting happens.
//
// # Sinks
//
//	console := clog.NewBuilder().
//	    WithThreshold(clog.LevelDebug).
//	    WithStyle(clog.StyleLevelOnly).
//	    Console()
//	file := clog.NewBuilder().WithTimestamp(clog.TimestampTimeOnly).File("app.log")
//	defer file.Close()
//
//	log := clog.Multi(console, file)
//	if err := log.Warn("disk almost full"); err != nil {
//	    // the file could not be written; console output is best-effort
//	}
//
// Every emit method returns an error. Console sinks always return nil; file
// sinks return an error wrapping ErrSinkUnavailable when the file cannot be
// opened or written.
//
// # Custom sinks
//
// A sink embeds *Core and implements Renderer. Core does the gating, the
// locking and the timestamp; the Renderer only writes the line. See the
// sink/zerolog, sink/zap and sink/slog packages.
//
// # Time
//
// Timestamps come from github.com/trickstertwo/xclock. Tests can freeze
// time process-wide with xclock.SetDefault(xclock.NewFrozen(t)) or per
// logger with Builder.WithClock.
package clog
