// Package services provides the persistence layer over ent: mission, note,
// execution log, and event services.
package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a uniqueness conflict on create.
	ErrAlreadyExists = errors.New("already exists")

	// ErrTerminalStatus indicates an update was rejected because the
	// mission is in a sticky terminal state.
	ErrTerminalStatus = errors.New("mission is in a terminal state")

	// ErrNotClaimed indicates a conditional claim found the mission in an
	// unexpected status (another worker got it, or it was never requested).
	ErrNotClaimed = errors.New("mission not claimed")
)

// ValidationError describes a rejected input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
