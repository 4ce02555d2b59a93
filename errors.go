package pwgen

import "errors"

// Package-level error definitions for password generation.
var (
	// ErrInvalidLength reports a non-positive password length.
	ErrInvalidLength = errors.New("password length must be at least 1")

	// ErrInvalidCount reports a non-positive password count.
	ErrInvalidCount = errors.New("password count must be at least 1")

	// ErrEmptyPool reports a character class that was requested but emptied
	// out by the exclusion flags. It is always wrapped with the class name.
	ErrEmptyPool = errors.New("character pool is empty after exclusions")
)
