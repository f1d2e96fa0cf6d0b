package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/trickstertwo/clog"
)

// ErrInvalidOutput is returned for a console output other than stdout or stderr.
var ErrInvalidOutput = errors.New("config: console.output must be stdout or stderr")

// Config is the root of a logging configuration file.
type Config struct {
	Level   string        `yaml:"level"`
	Console ConsoleConfig `yaml:"console"`
	File    FileConfig    `yaml:"file"`
}

// ConsoleConfig configures the console sink.
type ConsoleConfig struct {
	Enabled   bool              `yaml:"enabled"`
	Output    string            `yaml:"output"`
	Timestamp string            `yaml:"timestamp"`
	Style     string            `yaml:"style"`
	Colors    map[string]string `yaml:"colors"` // level name -> color name
}

// FileConfig configures the file sink. An empty Path disables it.
type FileConfig struct {
	Path      string `yaml:"path"`
	Timestamp string `yaml:"timestamp"`
}

// Load reads path, applies environment overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns the configuration used when no file is given: INFO and
// above to stdout with date and time suffixes, no colors, no file.
func Default() *Config {
	return &Config{
		Level: "info",
		Console: ConsoleConfig{
			Enabled:   true,
			Output:    "stdout",
			Timestamp: "date_and_time",
			Style:     "no_color",
		},
		File: FileConfig{
			Timestamp: "none",
		},
	}
}

// FromEnv returns Default with CLOG_* environment overrides applied. It is
// the configuration used when there is no file to Load.
func FromEnv() *Config {
	cfg := Default()
	applyEnvOverrides(cfg)
	return cfg
}

// applyEnvOverrides applies CLOG_* environment variables on top of cfg.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("CLOG_LEVEL"); v != "" {
		cfg.Level = v
	}
	if v := os.Getenv("CLOG_CONSOLE_STYLE"); v != "" {
		cfg.Console.Style = v
	}
	if v := os.Getenv("CLOG_FILE_PATH"); v != "" {
		cfg.File.Path = v
	}
}

// Validate reports every invalid field, combined into one error.
// Each part wraps the matching clog sentinel.
func (c *Config) Validate() error {
	var err error
	if _, e := clog.ParseLevel(c.Level); e != nil {
		err = multierr.Append(err, fmt.Errorf("level: %w", e))
	}

	if c.Console.Enabled {
		if _, e := c.Console.output(); e != nil {
			err = multierr.Append(err, e)
		}
		if _, e := clog.ParseTimestampFormat(c.Console.Timestamp); e != nil {
			err = multierr.Append(err, fmt.Errorf("console.timestamp: %w", e))
		}
		if _, e := clog.ParseStyle(c.Console.Style); e != nil {
			err = multierr.Append(err, fmt.Errorf("console.style: %w", e))
		}
		if _, e := c.Console.palette(); e != nil {
			err = multierr.Append(err, e)
		}
	}

	if c.File.Path != "" {
		if _, e := clog.ParseTimestampFormat(c.File.Timestamp); e != nil {
			err = multierr.Append(err, fmt.Errorf("file.timestamp: %w", e))
		}
	}
	return err
}

// Build constructs the configured sinks behind one MultiLogger. The file
// is opened lazily, so an unwritable path surfaces on the first emit.
func (c *Config) Build() (*clog.MultiLogger, error) {
	return c.BuildTo(nil)
}

// BuildTo is Build with the console sink writing to w instead of
// console.output. A nil w keeps console.output.
func (c *Config) BuildTo(w io.Writer) (*clog.MultiLogger, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	threshold, _ := clog.ParseLevel(c.Level)

	var sinks []clog.Logger
	if c.Console.Enabled {
		if w == nil {
			w, _ = c.Console.output()
		}
		format, _ := clog.ParseTimestampFormat(c.Console.Timestamp)
		style, _ := clog.ParseStyle(c.Console.Style)
		palette, _ := c.Console.palette()
		sinks = append(sinks, clog.NewConsole(clog.Config{
			Threshold: threshold,
			Timestamp: format,
			Style:     style,
			Palette:   palette,
			Writer:    w,
		}))
	}
	if c.File.Path != "" {
		format, _ := clog.ParseTimestampFormat(c.File.Timestamp)
		sinks = append(sinks, clog.NewFile(clog.Config{
			Threshold: threshold,
			Timestamp: format,
			Path:      c.File.Path,
		}))
	}
	return clog.Multi(sinks...), nil
}

func (c ConsoleConfig) output() (io.Writer, error) {
	switch strings.ToLower(c.Output) {
	case "stdout", "":
		return colorable.NewColorableStdout(), nil
	case "stderr":
		return colorable.NewColorableStderr(), nil
	default:
		return nil, fmt.Errorf("%w, got %q", ErrInvalidOutput, c.Output)
	}
}

func (c ConsoleConfig) palette() (clog.Palette, error) {
	p := clog.DefaultPalette()
	var err error
	for name, value := range c.Colors {
		level, e := clog.ParseLevel(name)
		if e != nil {
			err = multierr.Append(err, fmt.Errorf("console.colors: %w", e))
			continue
		}
		col, e := clog.ParseColor(value)
		if e != nil {
			err = multierr.Append(err, fmt.Errorf("console.colors.%s: %w", name, e))
			continue
		}
		p.Set(level, col)
	}
	return p, err
}
