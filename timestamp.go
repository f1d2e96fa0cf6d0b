package clog

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/trickstertwo/xclock"
)

// TimestampFormat selects the suffix appended after each message.
// The zero value is unset and resolves to the sink's default.
type TimestampFormat uint8

const (
	TimestampNone TimestampFormat = iota + 1
	TimestampTimeOnly
	TimestampDateOnly
	TimestampDateAndTime
)

func (f TimestampFormat) String() string {
	switch f {
	case 0:
		return "unset"
	case TimestampNone:
		return "none"
	case TimestampTimeOnly:
		return "time_only"
	case TimestampDateOnly:
		return "date_only"
	case TimestampDateAndTime:
		return "date_and_time"
	default:
		return "TimestampFormat(" + strconv.Itoa(int(f)) + ")"
	}
}

// ParseTimestampFormat accepts the names produced by String, case-insensitively.
func ParseTimestampFormat(s string) (TimestampFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return TimestampNone, nil
	case "time_only", "time":
		return TimestampTimeOnly, nil
	case "date_only", "date":
		return TimestampDateOnly, nil
	case "date_and_time", "date_time", "datetime":
		return TimestampDateAndTime, nil
	default:
		return TimestampNone, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// orDefault resolves an unset format to def.
func (f TimestampFormat) orDefault(def TimestampFormat) TimestampFormat {
	if f == 0 {
		return def
	}
	return f
}

// FormatTimestamp renders t in local time as " H:M:S", " D/M/YYYY", both
// (time first) or nothing. Values are not zero padded.
func FormatTimestamp(format TimestampFormat, t time.Time) string {
	var tmp [32]byte
	return string(appendTimestamp(tmp[:0], format, t))
}

func appendTimestamp(dst []byte, format TimestampFormat, t time.Time) []byte {
	switch format {
	case TimestampNone:
		return dst
	case TimestampTimeOnly:
		return appendClock(dst, t.Local())
	case TimestampDateOnly:
		return appendDate(dst, t.Local())
	case TimestampDateAndTime:
		lt := t.Local()
		return appendDate(appendClock(dst, lt), lt)
	default:
		panic(fmt.Sprintf("clog: invalid timestamp format %d", format))
	}
}

func appendClock(dst []byte, t time.Time) []byte {
	dst = append(dst, ' ')
	dst = strconv.AppendInt(dst, int64(t.Hour()), 10)
	dst = append(dst, ':')
	dst = strconv.AppendInt(dst, int64(t.Minute()), 10)
	dst = append(dst, ':')
	return strconv.AppendInt(dst, int64(t.Second()), 10)
}

func appendDate(dst []byte, t time.Time) []byte {
	dst = append(dst, ' ')
	dst = strconv.AppendInt(dst, int64(t.Day()), 10)
	dst = append(dst, '/')
	dst = strconv.AppendInt(dst, int64(t.Month()), 10)
	dst = append(dst, '/')
	return strconv.AppendInt(dst, int64(t.Year()), 10)
}

// now reads c, falling back to the process-wide xclock default.
func now(c xclock.Clock) time.Time {
	if c == nil {
		return xclock.Now()
	}
	return c.Now()
}
