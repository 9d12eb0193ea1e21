package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned for operations on ids that do not exist.
	// Most callers treat it as a silent no-op rather than a user-visible failure.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned when registering an email that already has an account.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials is returned on a login credential mismatch.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports a missing or malformed user-supplied field.
// The operation that produced it must not have changed any state.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation returns true if err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
