package booking

import (
	bookingRepo "voyago/database/repository/booking"
	fleetRepo "voyago/database/repository/fleet"
	"voyago/models"
	"voyago/services/pricing"

	"github.com/hibiken/asynq"
)

// BookingService defines the transfer booking lifecycle: creation with dual
// pricing, price and extras mutation, operator assignment and status
// transitions. Every operation that touches a price recomputes the derived
// breakdown before anything is written.
type BookingService interface {
	Create(input models.BookingInput) (*models.Booking, error)
	GetByID(id string) (*models.Booking, error)
	GetByReference(reference string) (*models.Booking, error)
	ListByCustomer(customerID string) ([]models.Booking, error)
	ListByFleet(fleetID string) ([]models.Booking, error)
	ListByDriver(driverID string) ([]models.Booking, error)
	UpdatePricing(id string, customerPrice, driverPrice float64, extras []models.BookingExtra) (*models.Booking, error)
	AssignFleet(bookingID, fleetID string, driverPrice *float64) (*models.Booking, error)
	AssignDriver(bookingID, driverID string, driverPrice *float64) (*models.Booking, error)
	UpdateStatus(id, to string) (*models.Booking, error)
	Delete(id string) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo   bookingRepo.BookingRepository
	Fleets fleetRepo.FleetRepository
	Quotes pricing.QuoteService

	// AsynqClient enqueues push notification tasks. Nil disables dispatch;
	// enqueue failures are logged, never surfaced to the caller.
	AsynqClient *asynq.Client
}
