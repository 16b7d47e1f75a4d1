// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// Every more specific validation error below wraps it, so callers only
	// need errors.Is(err, ErrValidation) to detect the whole family.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an identity is missing or malformed.
	ErrInvalidID = fmt.Errorf("%w: invalid ID", ErrValidation)

	// ErrIdentityAssigned is returned when an entity handed to a create
	// operation already carries an identity.
	ErrIdentityAssigned = fmt.Errorf("%w: identity already assigned", ErrValidation)

	// ErrBirthDateNotPast is returned when a birth date is not strictly in the past.
	ErrBirthDateNotPast = fmt.Errorf("%w: birth date must be in the past", ErrValidation)
)

// ValidationError describes a single field that violates an entity invariant.
type ValidationError struct {
	Field   string // Name of the offending field as exposed on the wire
	Message string // Human readable description of the violation
	Err     error  // Underlying sentinel, always wrapping ErrValidation
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns the wrapped sentinel to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError for field. A nil err defaults
// to ErrValidation.
func NewValidationError(field, message string, err error) *ValidationError {
	if err == nil {
		err = ErrValidation
	}
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}
