package clog

import (
	"io"

	"github.com/trickstertwo/xclock"
)

// Config for constructing a sink (Factory data structure).
// Zero values select each sink's defaults.
type Config struct {
	Threshold Level
	Timestamp TimestampFormat // console: date+time, others: none
	Style     Style           // console only; default no color
	Palette   Palette         // console only; default DefaultPalette()
	Writer    io.Writer       // console only; default stdout
	Path      string          // file only
	Clock     xclock.Clock    // optional; defaults to xclock.Now()
}

// Builder separates construction from representation (Builder pattern).
type Builder struct {
	cfg Config
}

func NewBuilder() *Builder {
	return &Builder{cfg: Config{Threshold: LevelInfo}}
}

func (b *Builder) WithThreshold(l Level) *Builder {
	b.cfg.Threshold = l
	return b
}

func (b *Builder) WithTimestamp(f TimestampFormat) *Builder {
	b.cfg.Timestamp = f
	return b
}

func (b *Builder) WithStyle(s Style) *Builder {
	b.cfg.Style = s
	return b
}

func (b *Builder) WithPalette(p Palette) *Builder {
	b.cfg.Palette = p
	return b
}

// WithColor overrides one level's color, starting from DefaultPalette.
func (b *Builder) WithColor(level Level, c Color) *Builder {
	if b.cfg.Palette == (Palette{}) {
		b.cfg.Palette = DefaultPalette()
	}
	b.cfg.Palette.Set(level, c)
	return b
}

func (b *Builder) WithWriter(w io.Writer) *Builder {
	b.cfg.Writer = w
	return b
}

func (b *Builder) WithClock(c xclock.Clock) *Builder {
	b.cfg.Clock = c
	return b
}

// Config returns a copy of the accumulated configuration.
func (b *Builder) Config() Config { return b.cfg }

// Console constructs a console sink.
func (b *Builder) Console() *ConsoleLogger {
	return NewConsole(b.cfg)
}

// File constructs a file sink appending to path.
func (b *Builder) File(path string) *FileLogger {
	cfg := b.cfg
	cfg.Path = path
	return NewFile(cfg)
}
