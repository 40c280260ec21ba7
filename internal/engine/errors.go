package engine

import (
	"errors"
	"fmt"
)

// Configuration error kinds. A level that fails with any of these is never
// constructed.
var (
	ErrMalformed        = errors.New("malformed level file")
	ErrUnknownBrickID   = errors.New("unknown brick id in layout")
	ErrDuplicateBrickID = errors.New("duplicate brick id")
	ErrMissingAttribute = errors.New("missing required attribute")
	ErrInvalidAttribute = errors.New("invalid attribute value")
	ErrInvalidGrid      = errors.New("invalid grid dimensions")
	ErrLayoutTooShort   = errors.New("layout has fewer cells than the grid")
	ErrLayoutTooLong    = errors.New("layout has more cells than the grid")
)

// ConfigError describes a fatal level configuration problem, optionally
// located in its source file.
type ConfigError struct {
	Source string // file name, empty when unknown
	Line   int    // 1-based line, 0 when unknown
	Detail string
	Err    error
}

func (e *ConfigError) Error() string {
	msg := e.Err.Error()
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	switch {
	case e.Source != "" && e.Line > 0:
		return fmt.Sprintf("%s:%d: %s", e.Source, e.Line, msg)
	case e.Source != "":
		return fmt.Sprintf("%s: %s", e.Source, msg)
	default:
		return msg
	}
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// configErrorf builds a ConfigError without position information.
func configErrorf(kind error, format string, args ...any) *ConfigError {
	return &ConfigError{Err: kind, Detail: fmt.Sprintf(format, args...)}
}

// WithSource attaches a file name to err when it is a ConfigError without one.
func WithSource(err error, source string) error {
	var ce *ConfigError
	if errors.As(err, &ce) && ce.Source == "" {
		ce.Source = source
	}
	return err
}
