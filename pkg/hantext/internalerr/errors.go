package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrBackendUnavailable = errors.New("backend unavailable")
	ErrInvalidConfig      = errors.New("invalid configuration")
	ErrSpellTimeout       = errors.New("spell check timed out")
)
