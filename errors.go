package clog

import "errors"

// ErrSinkUnavailable is wrapped by every error a sink returns when its
// destination cannot be opened or written.
var ErrSinkUnavailable = errors.New("clog: sink unavailable")

// Parse errors returned for unrecognised configuration names.
var (
	ErrUnknownLevel  = errors.New("clog: unknown level")
	ErrUnknownFormat = errors.New("clog: unknown timestamp format")
	ErrUnknownStyle  = errors.New("clog: unknown color style")
	ErrUnknownColor  = errors.New("clog: unknown color")
)
