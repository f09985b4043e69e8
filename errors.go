package linechart

import (
	"errors"
)

var (
	// ErrInvalidArgument is reported for non-positive tick counts and similar
	// settings. The chart clamps them instead of failing.
	ErrInvalidArgument = errors.New("linechart: invalid argument")

	// ErrDegenerateDomain is reported when a domain has no width.
	ErrDegenerateDomain = errors.New("linechart: degenerate domain")

	// ErrIndexOutOfRange is reported by lookups past the end of a list.
	ErrIndexOutOfRange = errors.New("linechart: index out of range")
)
