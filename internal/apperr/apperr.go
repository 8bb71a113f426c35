// Package apperr defines the error taxonomy surfaced by the API: validation
// failures, missing lookups, and storage faults. Handlers map these onto
// HTTP statuses with errors.Is.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrStorage    = errors.New("storage error")
)

// Validationf builds a validation error with a formatted message.
func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NotFoundf builds a not-found error with a formatted message.
func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// Storage tags an underlying store failure so callers can tell it apart from
// input errors. Returns nil when err is nil.
func Storage(err error) error {
	if err == nil {
		return nil
	}
	return errors.Join(ErrStorage, err)
}
