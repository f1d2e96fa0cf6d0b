package clog

import (
	"sync"
	"sync/atomic"

	"github.com/trickstertwo/xclock"
)

// Logger is the emit contract every sink implements in full.
// Emit methods return nil when the message is filtered or delivered, and a
// sink error otherwise. Implementations are safe for concurrent use.
type Logger interface {
	Trace(msg string) error
	Debug(msg string) error
	Info(msg string) error
	Warn(msg string) error
	Error(msg string) error

	SetThreshold(level Level)
	Threshold() Level
	SetTimestampFormat(format TimestampFormat)
}

// Renderer is the sink capability: write one line that already passed the
// threshold gate. stamp is the formatted timestamp suffix, possibly empty.
// Render is called with the owning Core's lock held.
type Renderer interface {
	Render(level Level, msg, stamp string) error
}

// Core holds the state shared by every sink: threshold, timestamp format,
// clock, the per-instance lock and the sink's Renderer. Sinks embed *Core
// and route every emit through Emit. A Core must not be copied.
type Core struct {
	r         Renderer
	mu        sync.Mutex
	threshold atomic.Int64
	format    TimestampFormat
	def       TimestampFormat // what an unset format resolves to
	clock     xclock.Clock    // nil reads xclock.Now()
}

// NewCore returns a Core rendering through r. An unset format means
// TimestampNone; a nil clock uses the process-wide xclock default.
func NewCore(r Renderer, threshold Level, format TimestampFormat, clock xclock.Clock) *Core {
	return newCore(r, threshold, format, TimestampNone, clock)
}

func newCore(r Renderer, threshold Level, format, def TimestampFormat, clock xclock.Clock) *Core {
	c := &Core{r: r, format: format.orDefault(def), def: def, clock: clock}
	c.threshold.Store(int64(threshold))
	return c
}

// Emit gates level against the threshold, then composes the timestamp and
// renders under the lock so concurrent lines never interleave.
// Suppressed messages cost one atomic load.
func (c *Core) Emit(level Level, msg string) error {
	if !ShouldEmit(level, Level(c.threshold.Load())) {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	var tmp [32]byte
	stamp := appendTimestamp(tmp[:0], c.format, now(c.clock))
	return c.r.Render(level, msg, string(stamp))
}

// Locked runs fn while holding the emit lock. Sinks use it for their own
// configuration setters.
func (c *Core) Locked(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn()
}

func (c *Core) SetThreshold(level Level) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.threshold.Store(int64(level))
}

func (c *Core) Threshold() Level {
	return Level(c.threshold.Load())
}

// SetTimestampFormat changes the suffix format. An unset format restores the
// sink's default.
func (c *Core) SetTimestampFormat(format TimestampFormat) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.format = format.orDefault(c.def)
}

// TimestampFormat returns the current timestamp format.
func (c *Core) TimestampFormat() TimestampFormat {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.format
}

// Enabled reports whether a message at level would be rendered.
// Use it to skip building expensive messages.
func (c *Core) Enabled(level Level) bool {
	return ShouldEmit(level, c.Threshold())
}

// Nop returns a Logger that discards everything. Its setters have no effect.
func Nop() Logger { return nopLogger{} }

type nopLogger struct{}

func (nopLogger) Trace(string) error                 { return nil }
func (nopLogger) Debug(string) error                 { return nil }
func (nopLogger) Info(string) error                  { return nil }
func (nopLogger) Warn(string) error                  { return nil }
func (nopLogger) Error(string) error                 { return nil }
func (nopLogger) SetThreshold(Level)                 {}
func (nopLogger) Threshold() Level                   { return LevelError }
func (nopLogger) SetTimestampFormat(TimestampFormat) {}
