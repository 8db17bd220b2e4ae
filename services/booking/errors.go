package booking

import (
	"fmt"

	bookingRepo "voyago/database/repository/booking"
)

// ErrNotFound is returned when the referenced booking does not exist.
var ErrNotFound = bookingRepo.ErrNotFound

// TransitionError reports a status change the lifecycle does not allow.
type TransitionError struct {
	From string
	To   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot transition booking from %q to %q", e.From, e.To)
}

// ValidationError reports a create or update request missing required fields.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid booking: %s %s", e.Field, e.Message)
}

func newValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
