package types

import (
	"errors"
	"fmt"
)

// The engine performs no I/O, so every failure is deterministic and surfaced
// synchronously. Two outcomes are deliberately NOT errors: the matcher
// finding no template (valid result) and the intent parser detecting no
// campaign intent (means "do not synthesize").

// ErrTemplateNotFound is returned for lookups with an unknown template id.
var ErrTemplateNotFound = errors.New("template not found")

// ValidationError reports invalid caller input: an empty channel set, an
// out-of-range step count, and similar. Never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
