package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrNotFound indicates that a requested entity was not found
	ErrNotFound = errors.New("entity not found")

	// ErrValidationFailed indicates that validation checks have failed
	ErrValidationFailed = errors.New("validation failed")
)

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Unwrap lets errors.Is(err, ErrValidationFailed) match any ValidationError.
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// NotFoundError names the missing resource and matches ErrNotFound.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// MaxLookupID bounds ids accepted by the blog lookups: 1 <= id < MaxLookupID.
const MaxLookupID = 100

// ValidateLookupID rejects ids outside [1, MaxLookupID).
func ValidateLookupID(field string, id int64) error {
	if id < 1 || id >= MaxLookupID {
		return &ValidationError{Field: field, Message: fmt.Sprintf("must be between 1 and %d", MaxLookupID-1)}
	}
	return nil
}
