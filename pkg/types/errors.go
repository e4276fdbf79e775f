package types

import "github.com/pkg/errors"

var (
	// ErrInvalidValue is returned when a constructor parameter is outside of its domain,
	// e.g. a non-positive window or a smoothing factor outside of (0, 1).
	ErrInvalidValue = errors.New("invalid value")

	// ErrValueOutOfRange is returned when a configured value can not be represented,
	// e.g. a period that converts into a smoothing factor outside of (0, 1).
	ErrValueOutOfRange = errors.New("value out of range")

	// ErrUnsupportedOperation is returned by any attempt to rewrite history:
	// decoding into a non-empty sequence or into a derived indicator output.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrIndexOutOfRange is returned by positional access beyond the sequence bounds.
	ErrIndexOutOfRange = errors.New("index out of range")
)
