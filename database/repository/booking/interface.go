// File: database/repository/booking/interface.go
package bookingRepo

import (
	"errors"

	"voyago/models"
)

// ErrNotFound is returned when the referenced booking does not exist.
var ErrNotFound = errors.New("booking not found")

// ErrAlreadyInvoiced is returned when a booking already carries an invoice
// reference of the requested type.
var ErrAlreadyInvoiced = errors.New("booking already attached to an invoice of this type")

// ErrStatusConflict is returned when a conditional status transition finds the
// booking no longer in the expected state.
var ErrStatusConflict = errors.New("booking not in expected status")

// PricingUpdate carries every derived money field written by one atomic
// update. Profit is computed by the caller from the same values being
// written, so a concurrent writer can never interleave between price and
// profit.
type PricingUpdate struct {
	CustomerPrice float64
	DriverPrice   float64
	Extras        []models.BookingExtra
	ExtrasTotal   float64
	Profit        float64

	// Operator reassignment applied in the same write. Nil leaves the field
	// untouched; a pointer to the empty string clears it.
	SetFleetID  *string
	SetDriverID *string
}

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// NextReference reserves the next human-facing booking reference.
	NextReference() (string, error)
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// Update modifies an existing booking record.
	Update(booking *models.Booking) error
	// Delete removes a booking record by its ID.
	Delete(id string) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// GetByReference retrieves a booking by its human-facing reference.
	GetByReference(reference string) (*models.Booking, error)
	// GetByIDs retrieves the bookings matching the given IDs.
	GetByIDs(ids []string) ([]models.Booking, error)
	// ListByCustomer retrieves bookings for a customer, newest first.
	ListByCustomer(customerID string) ([]models.Booking, error)
	// ListByFleet retrieves bookings assigned to a fleet, newest first.
	ListByFleet(fleetID string) ([]models.Booking, error)
	// ListByDriver retrieves bookings assigned to a driver, newest first.
	ListByDriver(driverID string) ([]models.Booking, error)
	// ListUninvoiced retrieves completed bookings for an entity that do not
	// yet carry an invoice reference of the given type.
	ListUninvoiced(invoiceType, entityID string) ([]models.Booking, error)
	// UpdateStatus transitions a booking from one status to another as a
	// conditional single-document update. Returns ErrStatusConflict when the
	// booking is no longer in the from status.
	UpdateStatus(id, from, to string) error
	// ApplyPricing writes the full derived pricing state in one atomic update.
	ApplyPricing(id string, update PricingUpdate) error
	// MarkInvoiced sets the invoice reference of the given type only if it is
	// currently unset. Returns ErrAlreadyInvoiced otherwise.
	MarkInvoiced(id, invoiceType, invoiceID string) error
	// ClearInvoiceRef removes the invoice reference of the given type,
	// releasing the booking for future invoicing.
	ClearInvoiceRef(id, invoiceType string) error
}
