package tree

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// ErrSchemaViolation is matched by every SchemaViolationError.
var ErrSchemaViolation = errors.New("schema violation")

// SchemaViolationError reports dotted path which does not name a leaf.
type SchemaViolationError struct {
	Path   string
	Reason string
}

func (e *SchemaViolationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Path)
}

func (e *SchemaViolationError) Is(target error) bool {
	return target == ErrSchemaViolation
}

// ErrValidation is matched by every ValidationError.
var ErrValidation = errors.New("invalid category structure detected")

// ValidationError aggregates every malformed leaf entry found by Validate.
type ValidationError struct {
	err error
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + e.err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.err
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Problems returns individual problems, one per malformed entry.
func (e *ValidationError) Problems() []error {
	return multierr.Errors(e.err)
}
