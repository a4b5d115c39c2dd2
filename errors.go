package conform

import "errors"

var (
	// ErrValidationFailed matches any Violations value via errors.Is, so
	// callers can branch on "did validation fail" without touching messages.
	ErrValidationFailed = errors.New("validation failed")

	// ErrEnvConfig is returned when environment-based settings cannot be parsed.
	ErrEnvConfig = errors.New("invalid environment configuration")
)
