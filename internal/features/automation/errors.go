package automation

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an automation id does not resolve.
var ErrNotFound = errors.New("automation not found")

// ValidationError rejects a create, update, or status change that would leave
// an automation in an invalid state.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func validationErrorf(format string, args ...interface{}) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}
