package clog

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Color is a terminal SGR code. Writing it emits "\033[<code>m".
type Color color.Attribute

// Foreground colors.
const (
	FgDefault      Color = 39
	FgBlack              = Color(color.FgBlack)
	FgRed                = Color(color.FgRed)
	FgGreen              = Color(color.FgGreen)
	FgYellow             = Color(color.FgYellow)
	FgBlue               = Color(color.FgBlue)
	FgMagenta            = Color(color.FgMagenta)
	FgCyan               = Color(color.FgCyan)
	FgLightGray          = Color(color.FgWhite)
	FgDarkGray           = Color(color.FgHiBlack)
	FgLightRed           = Color(color.FgHiRed)
	FgLightGreen         = Color(color.FgHiGreen)
	FgLightYellow        = Color(color.FgHiYellow)
	FgLightBlue          = Color(color.FgHiBlue)
	FgLightMagenta       = Color(color.FgHiMagenta)
	FgLightCyan          = Color(color.FgHiCyan)
	FgWhite              = Color(color.FgHiWhite)
)

// Background colors.
const (
	BgDefault      Color = 49
	BgBlack              = Color(color.BgBlack)
	BgRed                = Color(color.BgRed)
	BgGreen              = Color(color.BgGreen)
	BgYellow             = Color(color.BgYellow)
	BgBlue               = Color(color.BgBlue)
	BgMagenta            = Color(color.BgMagenta)
	BgCyan               = Color(color.BgCyan)
	BgLightGray          = Color(color.BgWhite)
	BgDarkGray           = Color(color.BgHiBlack)
	BgLightRed           = Color(color.BgHiRed)
	BgLightGreen         = Color(color.BgHiGreen)
	BgLightYellow        = Color(color.BgHiYellow)
	BgLightBlue          = Color(color.BgHiBlue)
	BgLightMagenta       = Color(color.BgHiMagenta)
	BgLightCyan          = Color(color.BgHiCyan)
	BgWhite              = Color(color.BgHiWhite)
)

var colorNames = map[string]Color{
	"default":       FgDefault,
	"black":         FgBlack,
	"red":           FgRed,
	"green":         FgGreen,
	"yellow":        FgYellow,
	"blue":          FgBlue,
	"magenta":       FgMagenta,
	"cyan":          FgCyan,
	"light_gray":    FgLightGray,
	"dark_gray":     FgDarkGray,
	"light_red":     FgLightRed,
	"light_green":   FgLightGreen,
	"light_yellow":  FgLightYellow,
	"light_blue":    FgLightBlue,
	"light_magenta": FgLightMagenta,
	"light_cyan":    FgLightCyan,
	"white":         FgWhite,
}

// ParseColor maps a foreground color name such as "light_blue" to a Color.
func ParseColor(s string) (Color, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	if c, ok := colorNames[name]; ok {
		return c, nil
	}
	return FgDefault, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

// String returns the escape sequence.
func (c Color) String() string {
	var tmp [8]byte
	return string(c.appendTo(tmp[:0]))
}

// WriteTo writes the escape sequence to w.
func (c Color) WriteTo(w io.Writer) (int64, error) {
	var tmp [8]byte
	n, err := w.Write(c.appendTo(tmp[:0]))
	return int64(n), err
}

func (c Color) appendTo(dst []byte) []byte {
	dst = append(dst, "\033["...)
	dst = strconv.AppendInt(dst, int64(c), 10)
	return append(dst, 'm')
}

// Style controls how much of a console line is colored.
// The zero value is unset and behaves as StyleNoColor.
type Style uint8

const (
	StyleNoColor Style = iota + 1
	StyleLevelOnly
	StyleAll
)

func (s Style) String() string {
	switch s {
	case 0:
		return "unset"
	case StyleNoColor:
		return "no_color"
	case StyleLevelOnly:
		return "level_only"
	case StyleAll:
		return "all"
	default:
		return "Style(" + strconv.Itoa(int(s)) + ")"
	}
}

func (s Style) orDefault() Style {
	if s == 0 {
		return StyleNoColor
	}
	return s
}

// ParseStyle accepts the names produced by String, case-insensitively.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "no_color", "none", "":
		return StyleNoColor, nil
	case "level_only", "level":
		return StyleLevelOnly, nil
	case "all":
		return StyleAll, nil
	default:
		return StyleNoColor, fmt.Errorf("%w: %q", ErrUnknownStyle, s)
	}
}

// TerminalStyle returns preferred unless fatih/color has detected that the
// terminal cannot render colors (NO_COLOR, TERM=dumb, stdout not a tty).
func TerminalStyle(preferred Style) Style {
	if color.NoColor {
		return StyleNoColor
	}
	return preferred
}

// Palette assigns a color to each level.
type Palette struct {
	Trace Color
	Debug Color
	Info  Color
	Warn  Color
	Error Color
}

// DefaultPalette returns the stock assignment. WARN is green for
// compatibility with existing deployments; override it with Set.
func DefaultPalette() Palette {
	return Palette{
		Trace: FgLightBlue,
		Debug: FgDefault,
		Info:  FgYellow,
		Warn:  FgGreen,
		Error: FgRed,
	}
}

// For returns the color assigned to level.
func (p Palette) For(level Level) Color {
	switch level {
	case LevelTrace:
		return p.Trace
	case LevelDebug:
		return p.Debug
	case LevelInfo:
		return p.Info
	case LevelWarn:
		return p.Warn
	case LevelError:
		return p.Error
	default:
		panic(fmt.Sprintf("clog: invalid level %d", int(level)))
	}
}

// Set assigns c to level.
func (p *Palette) Set(level Level, c Color) {
	switch level {
	case LevelTrace:
		p.Trace = c
	case LevelDebug:
		p.Debug = c
	case LevelInfo:
		p.Info = c
	case LevelWarn:
		p.Warn = c
	case LevelError:
		p.Error = c
	default:
		panic(fmt.Sprintf("clog: invalid level %d", int(level)))
	}
}
