/*
Package fault defines the error kinds shared by the romgfx packages.

Every failure returned by the core packages wraps exactly one of the sentinel
errors below so callers can branch with errors.Is regardless of the message.
*/
package fault

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for a missing required input, a
	// non-positive dimension or the wrong kind of selection.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange is returned for an index, address or buffer capacity
	// outside of its valid bounds.
	ErrOutOfRange = errors.New("out of range")

	// ErrFormat is returned when a buffer length is not a multiple of the
	// record size it is expected to hold.
	ErrFormat = errors.New("format error")
)

func wrap(kind error, format string, a ...interface{}) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, a...))
}

// InvalidArgument returns an error wrapping ErrInvalidArgument.
func InvalidArgument(format string, a ...interface{}) error {
	return wrap(ErrInvalidArgument, format, a...)
}

// OutOfRange returns an error wrapping ErrOutOfRange.
func OutOfRange(format string, a ...interface{}) error {
	return wrap(ErrOutOfRange, format, a...)
}

// Format returns an error wrapping ErrFormat.
func Format(format string, a ...interface{}) error {
	return wrap(ErrFormat, format, a...)
}
