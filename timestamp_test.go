package clog

import (
	"errors"
	"testing"
	"time"
)

func TestFormatTimestamp(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 3, 7, 14, 5, 9, 0, time.Local)
	tests := []struct {
		format TimestampFormat
		want   string
	}{
		{TimestampNone, ""},
		{TimestampTimeOnly, " 14:5:9"},
		{TimestampDateOnly, " 7/3/2026"},
		{TimestampDateAndTime, " 14:5:9 7/3/2026"},
	}
	for _, tt := range tests {
		if got := FormatTimestamp(tt.format, at); got != tt.want {
			t.Fatalf("FormatTimestamp(%s) = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormatTimestamp_MidnightNotPadded(t *testing.T) {
	t.Parallel()

	at := time.Date(2031, 12, 31, 0, 0, 0, 0, time.Local)
	if got := FormatTimestamp(TimestampDateAndTime, at); got != " 0:0:0 31/12/2031" {
		t.Fatalf("unexpected stamp %q", got)
	}
}

func TestFormatTimestamp_UsesLocalTime(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 3, 7, 14, 5, 9, 0, time.UTC)
	want := FormatTimestamp(TimestampTimeOnly, at.Local())
	if got := FormatTimestamp(TimestampTimeOnly, at); got != want {
		t.Fatalf("expected local rendering %q, got %q", want, got)
	}
}

func TestFormatTimestamp_InvalidPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for invalid format")
		}
	}()
	FormatTimestamp(TimestampFormat(42), time.Now())
}

func TestParseTimestampFormat(t *testing.T) {
	t.Parallel()

	for _, f := range []TimestampFormat{TimestampNone, TimestampTimeOnly, TimestampDateOnly, TimestampDateAndTime} {
		got, err := ParseTimestampFormat(f.String())
		if err != nil {
			t.Fatalf("ParseTimestampFormat(%q): %v", f.String(), err)
		}
		if got != f {
			t.Fatalf("ParseTimestampFormat(%q) = %s, want %s", f.String(), got, f)
		}
	}
	if _, err := ParseTimestampFormat("iso8601"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}
