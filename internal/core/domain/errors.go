// internal/core/domain/errors.go
package domain

import "errors"

// Common domain errors.
var (
	// Target errors
	ErrMalformedTarget = errors.New("malformed target line")
	ErrNoTargets       = errors.New("target list is empty")

	// Rule errors
	ErrEmptyRule    = errors.New("rule has no generator segment")
	ErrUnknownRule  = errors.New("unknown rule")
	ErrDigitWidth   = errors.New("digit width out of range")
	ErrInvalidRange = errors.New("invalid digit range")

	// Run errors
	ErrWordSource = errors.New("word source unavailable")
)
