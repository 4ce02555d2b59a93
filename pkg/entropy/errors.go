package entropy

import "errors"

// Package-level error definitions for entropy operations.
var (
	// ErrUnavailable wraps failures reading the underlying random stream.
	// Callers must treat it as fatal; there is no weaker fallback source.
	ErrUnavailable = errors.New("entropy source unavailable")

	// ErrInvalidBound reports a non-positive bound or a malformed probability.
	ErrInvalidBound = errors.New("invalid sampling bound")
)
