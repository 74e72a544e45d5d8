package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors domain operations wrap with fmt.Errorf("...: %w", ...) so
// callers can branch with errors.Is instead of string matching.
var (
	// ErrNotFound is returned when a lookup by name, hash, or URL has no
	// matching entity (registry.Registry.Get, repository Get calls that
	// choose to surface "missing" as an error rather than nil, nil).
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidInput marks a caller-supplied value (a CLI flag, a search
	// keyword) as unusable before it ever reaches storage or a fetch.
	ErrInvalidInput = errors.New("invalid input")

	// ErrValidationFailed marks a domain object that failed its own
	// Validate method (Source.Validate, Article invariants).
	ErrValidationFailed = errors.New("validation failed")
)

// ValidationError names the specific field that failed validation and why,
// for sources and articles rejected before they reach storage.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %q: %s", e.Field, e.Message)
}
