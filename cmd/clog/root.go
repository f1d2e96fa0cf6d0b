package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/trickstertwo/clog"
	"github.com/trickstertwo/clog/config"
)

type options struct {
	threshold string
	timestamp string
	style     string
	file      string
	config    string
}

// newRootCmd builds the clog command. out replaces stdout for the console
// sink when non-nil; with nil the style is downgraded on non-terminals.
func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "clog [flags] <level> <message...>",
		Short: "Emit one leveled log line to the console and an optional file.",
		Long: `clog writes a single leveled status line, for use from shell scripts.

The line is written to stdout and, with --file, appended to a log file.
Lines below the threshold are dropped silently.

Examples:
  clog info "backup started"
  clog --style all --timestamp time_only warn "disk at 91%"
  clog --file /var/log/backup.log error "backup failed"
  clog --config logging.yaml debug "retrying"`,
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Flags(), opts, args, out)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.threshold, "threshold", "l", "info", "lowest level emitted (trace, debug, info, warn, error)")
	f.StringVarP(&opts.timestamp, "timestamp", "t", "date_and_time", "timestamp suffix (none, time_only, date_only, date_and_time)")
	f.StringVarP(&opts.style, "style", "s", "no_color", "console color style (no_color, level_only, all)")
	f.StringVarP(&opts.file, "file", "f", "", "also append the line to this file")
	f.StringVarP(&opts.config, "config", "c", "", "YAML configuration file; explicit flags take precedence")
	return cmd
}

func run(flags *pflag.FlagSet, opts *options, args []string, out io.Writer) error {
	level, err := clog.ParseLevel(args[0])
	if err != nil {
		return err
	}
	msg := strings.Join(args[1:], " ")

	cfg := config.FromEnv()
	if opts.config != "" {
		if cfg, err = config.Load(opts.config); err != nil {
			return err
		}
	}
	flags.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "threshold":
			cfg.Level = opts.threshold
		case "timestamp":
			cfg.Console.Timestamp = opts.timestamp
			cfg.File.Timestamp = opts.timestamp
		case "style":
			cfg.Console.Style = opts.style
		case "file":
			cfg.File.Path = opts.file
		}
	})

	log, err := cfg.BuildTo(out)
	if err != nil {
		return err
	}
	if out == nil {
		for _, l := range log.Loggers() {
			if c, ok := l.(*clog.ConsoleLogger); ok {
				c.SetStyle(terminalStyle(cfg.Console.Output, c.Style()))
			}
		}
	}

	emitErr := emit(log, level, msg)
	if err := log.Close(); err != nil && emitErr == nil {
		emitErr = err
	}
	if emitErr != nil {
		return fmt.Errorf("clog: %w", emitErr)
	}
	return nil
}

// terminalStyle downgrades preferred to no color when the configured
// console stream cannot show colors.
func terminalStyle(output string, preferred clog.Style) clog.Style {
	if !strings.EqualFold(output, "stderr") {
		return clog.TerminalStyle(preferred)
	}
	return fileStyle(os.Stderr, preferred)
}

// fileStyle applies the NO_COLOR, TERM=dumb and tty checks to f.
func fileStyle(f *os.File, preferred clog.Style) clog.Style {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return clog.StyleNoColor
	}
	fd := f.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return clog.StyleNoColor
	}
	return preferred
}

func emit(l clog.Logger, level clog.Level, msg string) error {
	switch level {
	case clog.LevelTrace:
		return l.Trace(msg)
	case clog.LevelDebug:
		return l.Debug(msg)
	case clog.LevelInfo:
		return l.Info(msg)
	case clog.LevelWarn:
		return l.Warn(msg)
	default:
		return l.Error(msg)
	}
}
