package service

import (
	"errors"
	"fmt"

	"github.com/blog-platform-api/internal/validation"
)

var (
	// ErrNotFound is returned for slug/id lookup misses.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized is returned when a write operation runs without an
	// authenticated session. The operation is a no-op.
	ErrUnauthorized = errors.New("authentication required")
)

// ValidationFailure carries field-level validation errors for a rejected
// form submission.
type ValidationFailure struct {
	Errors []validation.ValidationError
}

func (e *ValidationFailure) Error() string {
	return fmt.Sprintf("validation failed with %d error(s)", len(e.Errors))
}

// AsValidationFailure unwraps err as a ValidationFailure, if it is one.
func AsValidationFailure(err error) (*ValidationFailure, bool) {
	var vf *ValidationFailure
	if errors.As(err, &vf) {
		return vf, true
	}
	return nil, false
}
