package domain

import "strings"

// ValidationError carries every violated field from a single validation pass.
// Handlers return it as-is; the HTTP error handler renders all messages
// together rather than just the first.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Fields, "; ")
}

// NewValidationError builds a ValidationError from field-level messages.
func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}
