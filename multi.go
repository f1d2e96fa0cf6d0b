package clog

import (
	"io"

	"go.uber.org/multierr"
)

// MultiLogger fans every emit out to a fixed set of sinks, in order.
// Each child applies its own threshold; errors from all children are
// combined with multierr.
type MultiLogger struct {
	loggers []Logger
}

var _ Logger = (*MultiLogger)(nil)

// Multi returns a MultiLogger over loggers. Nil entries are skipped.
func Multi(loggers ...Logger) *MultiLogger {
	m := &MultiLogger{loggers: make([]Logger, 0, len(loggers))}
	for _, l := range loggers {
		if l != nil {
			m.loggers = append(m.loggers, l)
		}
	}
	return m
}

// Loggers returns the child sinks.
func (m *MultiLogger) Loggers() []Logger {
	out := make([]Logger, len(m.loggers))
	copy(out, m.loggers)
	return out
}

func (m *MultiLogger) Trace(msg string) error { return m.each(func(l Logger) error { return l.Trace(msg) }) }
func (m *MultiLogger) Debug(msg string) error { return m.each(func(l Logger) error { return l.Debug(msg) }) }
func (m *MultiLogger) Info(msg string) error  { return m.each(func(l Logger) error { return l.Info(msg) }) }
func (m *MultiLogger) Warn(msg string) error  { return m.each(func(l Logger) error { return l.Warn(msg) }) }
func (m *MultiLogger) Error(msg string) error { return m.each(func(l Logger) error { return l.Error(msg) }) }

func (m *MultiLogger) each(fn func(Logger) error) error {
	var err error
	for _, l := range m.loggers {
		err = multierr.Append(err, fn(l))
	}
	return err
}

// SetThreshold sets the threshold on every child.
func (m *MultiLogger) SetThreshold(level Level) {
	for _, l := range m.loggers {
		l.SetThreshold(level)
	}
}

// Threshold returns the lowest child threshold, i.e. the most verbose
// level any child emits. An empty MultiLogger reports LevelError.
func (m *MultiLogger) Threshold() Level {
	if len(m.loggers) == 0 {
		return LevelError
	}
	lowest := m.loggers[0].Threshold()
	for _, l := range m.loggers[1:] {
		if t := l.Threshold(); t < lowest {
			lowest = t
		}
	}
	return lowest
}

// SetTimestampFormat sets the format on every child.
func (m *MultiLogger) SetTimestampFormat(format TimestampFormat) {
	for _, l := range m.loggers {
		l.SetTimestampFormat(format)
	}
}

// Close closes every child that implements io.Closer.
func (m *MultiLogger) Close() error {
	var err error
	for _, l := range m.loggers {
		if c, ok := l.(io.Closer); ok {
			err = multierr.Append(err, c.Close())
		}
	}
	return err
}
