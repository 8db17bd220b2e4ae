package invoice

import (
	"errors"
	"fmt"
)

// ErrNoBookings is returned when invoice generation finds nothing to bill:
// an invoice with zero line items is never created.
var ErrNoBookings = errors.New("no eligible bookings to invoice")

// ErrNoLineItems is returned when a custom invoice is requested without any
// line items.
var ErrNoLineItems = errors.New("an invoice needs at least one line item")

// EligibilityError reports a booking that cannot be rolled into the
// requested invoice: wrong entity, not completed, or already claimed by an
// invoice of the same type.
type EligibilityError struct {
	BookingID string
	Reason    string
}

func (e *EligibilityError) Error() string {
	return fmt.Sprintf("booking %s cannot be invoiced: %s", e.BookingID, e.Reason)
}

// StateError reports a lifecycle operation applied to an invoice in the
// wrong status, e.g. issuing a voided invoice.
type StateError struct {
	InvoiceID string
	Status    string
	Operation string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("cannot %s invoice %s in status %q", e.Operation, e.InvoiceID, e.Status)
}
