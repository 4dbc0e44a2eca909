package cli

import "fmt"

// Error codes for structured error responses. These codes are stable and
// can be relied upon by scripts.
const (
	// Criteria errors
	ErrCriteriaInvalid = "CRITERIA_INVALID"
	ErrQueryInvalid    = "QUERY_INVALID"

	// File errors
	ErrFileNotFound  = "FILE_NOT_FOUND"
	ErrFileReadError = "FILE_READ_ERROR"

	// Config errors
	ErrConfigInvalid = "CONFIG_INVALID"

	// General errors
	ErrInternal = "INTERNAL_ERROR"
)

// codedError pairs a stable code with the underlying cause.
type codedError struct {
	Code string
	Err  error
}

func (e *codedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Err)
}

func (e *codedError) Unwrap() error {
	return e.Err
}
