// File: services/booking/service.go
package booking

import (
	"fmt"
	"strings"

	bookingRepo "voyago/database/repository/booking"
	"voyago/models"
	"voyago/services/pricing"

	"github.com/google/uuid"
)

// Create validates the input, resolves the dual prices and persists a new
// pending booking. A request without an explicit customer price is priced
// through the quote engine for its vehicle class; the operator payout
// defaults to zero until an operator is assigned.
func (svc *DefaultBookingService) Create(input models.BookingInput) (*models.Booking, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var driverPrice float64
	if input.DriverPrice != nil {
		driverPrice = *input.DriverPrice
	}

	var customerPrice float64
	var source string
	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if input.CustomerPrice != nil {
		customerPrice = *input.CustomerPrice
	} else {
		quote, err := svc.quoteForClass(input)
		if err != nil {
			return nil, err
		}
		customerPrice = quote.Price
		currency = quote.Currency
		source = quote.Source
	}
	if currency == "" {
		currency = pricing.DefaultCurrency()
	}

	breakdown := ComputeBreakdown(customerPrice, driverPrice, input.Extras)

	reference, err := svc.Repo.NextReference()
	if err != nil {
		return nil, fmt.Errorf("failed to reserve booking reference: %w", err)
	}

	bk := &models.Booking{
		ID:              uuid.New().String(),
		Reference:       reference,
		CustomerID:      input.CustomerID,
		Status:          models.BookingStatusPending,
		PickupLocation:  input.PickupLocation,
		DropoffLocation: input.DropoffLocation,
		PickupLat:       input.PickupLat,
		PickupLng:       input.PickupLng,
		DropoffLat:      input.DropoffLat,
		DropoffLng:      input.DropoffLng,
		DistanceKm:      input.DistanceKm,
		VehicleClassID:  input.VehicleClassID,
		PickupAt:        input.PickupAt,
		Passengers:      input.Passengers,
		Luggage:         input.Luggage,
		MeetGreet:       input.MeetGreet,
		AirportPickup:   input.AirportPickup,
		CustomerPrice:   breakdown.CustomerPrice,
		DriverPrice:     breakdown.DriverPrice,
		Extras:          breakdown.Extras,
		ExtrasTotal:     breakdown.ExtrasTotal,
		Profit:          breakdown.Profit,
		Currency:        currency,
		QuoteSource:     source,
	}
	if err := svc.Repo.Create(bk); err != nil {
		return nil, err
	}

	svc.notifyCustomer(bk, models.NotifyBookingStatus, "Booking received",
		fmt.Sprintf("Your transfer %s is booked for %s and awaiting confirmation.",
			bk.Reference, bk.PickupAt.Format("2 January, 3:04 PM")))
	return bk, nil
}

// quoteForClass prices an unpriced booking with the same engine customers
// are quoted by, then picks out the booking's vehicle class.
func (svc *DefaultBookingService) quoteForClass(input models.BookingInput) (*models.Quote, error) {
	if svc.Quotes == nil {
		return nil, newValidationError("customerPrice", "is required")
	}
	quotes, err := svc.Quotes.Quote(input.QuoteRequest())
	if err != nil {
		return nil, fmt.Errorf("failed to price booking: %w", err)
	}
	for i := range quotes {
		if quotes[i].VehicleClassID == input.VehicleClassID {
			return &quotes[i], nil
		}
	}
	return nil, newValidationError("vehicleClassId", "cannot be priced for this journey")
}

// GetByID retrieves a booking by its unique ID.
func (svc *DefaultBookingService) GetByID(id string) (*models.Booking, error) {
	return svc.Repo.GetByID(id)
}

// GetByReference retrieves a booking by its human-facing reference.
func (svc *DefaultBookingService) GetByReference(reference string) (*models.Booking, error) {
	return svc.Repo.GetByReference(reference)
}

// ListByCustomer retrieves a customer's bookings, newest first.
func (svc *DefaultBookingService) ListByCustomer(customerID string) ([]models.Booking, error) {
	return svc.Repo.ListByCustomer(customerID)
}

// ListByFleet retrieves a fleet's assigned bookings, newest first.
func (svc *DefaultBookingService) ListByFleet(fleetID string) ([]models.Booking, error) {
	return svc.Repo.ListByFleet(fleetID)
}

// ListByDriver retrieves a driver's assigned bookings, newest first.
func (svc *DefaultBookingService) ListByDriver(driverID string) ([]models.Booking, error) {
	return svc.Repo.ListByDriver(driverID)
}

// UpdatePricing rewrites a booking's dual prices and extras. The derived
// breakdown is recomputed here and written in a single atomic update, so the
// stored profit always matches the stored inputs.
func (svc *DefaultBookingService) UpdatePricing(id string, customerPrice, driverPrice float64, extras []models.BookingExtra) (*models.Booking, error) {
	bk, err := svc.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	breakdown := ComputeBreakdown(customerPrice, driverPrice, extras)
	if err := svc.Repo.ApplyPricing(id, pricingUpdate(breakdown)); err != nil {
		return nil, err
	}

	if breakdown.CustomerPrice != bk.CustomerPrice || breakdown.ExtrasTotal != bk.ExtrasTotal {
		svc.notifyCustomer(bk, models.NotifyBookingPriceChanged, "Booking price updated",
			fmt.Sprintf("The price of transfer %s is now %s %.2f.",
				bk.Reference, bk.Currency, breakdown.CustomerPrice+breakdown.ExtrasTotal))
	}
	return svc.Repo.GetByID(id)
}

// AssignFleet hands the booking to a fleet, optionally at a new payout. The
// direct-driver assignment is cleared in the same update: a booking is paid
// out to one operator only.
func (svc *DefaultBookingService) AssignFleet(bookingID, fleetID string, driverPrice *float64) (*models.Booking, error) {
	fleet, err := svc.Fleets.GetFleetByID(fleetID)
	if err != nil {
		return nil, newValidationError("fleetId", "does not reference a known fleet")
	}
	bk, err := svc.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}

	payout := bk.DriverPrice
	if driverPrice != nil {
		payout = *driverPrice
	}
	breakdown := ComputeBreakdown(bk.CustomerPrice, payout, bk.Extras)

	cleared := ""
	update := pricingUpdate(breakdown)
	update.SetFleetID = &fleetID
	update.SetDriverID = &cleared
	if err := svc.Repo.ApplyPricing(bookingID, update); err != nil {
		return nil, err
	}

	svc.enqueuePush(models.PushPayload{
		Target: models.NotifyTargetFleet,
		ID:     fleet.ID,
		Type:   models.NotifyOperatorAssigned,
		Title:  "New job assigned",
		Body: fmt.Sprintf("Transfer %s (%s) has been assigned to %s.",
			bk.Reference, bk.Route(), fleet.Name),
		Data: map[string]string{"bookingId": bk.ID, "reference": bk.Reference},
	})
	return svc.Repo.GetByID(bookingID)
}

// AssignDriver hands the booking to a directly-contracted driver, optionally
// at a new payout, clearing any fleet assignment in the same update.
func (svc *DefaultBookingService) AssignDriver(bookingID, driverID string, driverPrice *float64) (*models.Booking, error) {
	driver, err := svc.Fleets.GetDriverByID(driverID)
	if err != nil {
		return nil, newValidationError("driverId", "does not reference a known driver")
	}
	bk, err := svc.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}

	payout := bk.DriverPrice
	if driverPrice != nil {
		payout = *driverPrice
	}
	breakdown := ComputeBreakdown(bk.CustomerPrice, payout, bk.Extras)

	cleared := ""
	update := pricingUpdate(breakdown)
	update.SetDriverID = &driverID
	update.SetFleetID = &cleared
	if err := svc.Repo.ApplyPricing(bookingID, update); err != nil {
		return nil, err
	}

	svc.enqueuePush(models.PushPayload{
		Target: models.NotifyTargetDriver,
		ID:     driver.ID,
		Type:   models.NotifyOperatorAssigned,
		Title:  "New job assigned",
		Body: fmt.Sprintf("Transfer %s (%s) on %s is yours.",
			bk.Reference, bk.Route(), bk.PickupAt.Format("2 January, 3:04 PM")),
		Data: map[string]string{"bookingId": bk.ID, "reference": bk.Reference},
	})
	return svc.Repo.GetByID(bookingID)
}

// UpdateStatus moves a booking through its lifecycle. The write is
// conditional on the status the transition was checked against, so two
// concurrent transitions cannot both win.
func (svc *DefaultBookingService) UpdateStatus(id, to string) (*models.Booking, error) {
	bk, err := svc.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(bk.Status, to) {
		return nil, &TransitionError{From: bk.Status, To: to}
	}
	if err := svc.Repo.UpdateStatus(id, bk.Status, to); err != nil {
		return nil, err
	}

	svc.notifyCustomer(bk, models.NotifyBookingStatus, "Booking "+to, statusMessage(bk, to))
	return svc.Repo.GetByID(id)
}

// Delete removes a booking that no invoice has claimed.
func (svc *DefaultBookingService) Delete(id string) error {
	bk, err := svc.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if bk.CustomerInvoiceID != "" || bk.FleetInvoiceID != "" || bk.DriverInvoiceID != "" {
		return newValidationError("id", "is attached to an invoice and cannot be deleted")
	}
	return svc.Repo.Delete(id)
}

// pricingUpdate shapes a breakdown into the repository's atomic write.
func pricingUpdate(b PriceBreakdown) bookingRepo.PricingUpdate {
	return bookingRepo.PricingUpdate{
		CustomerPrice: b.CustomerPrice,
		DriverPrice:   b.DriverPrice,
		Extras:        b.Extras,
		ExtrasTotal:   b.ExtrasTotal,
		Profit:        b.Profit,
	}
}

func statusMessage(bk *models.Booking, to string) string {
	switch to {
	case models.BookingStatusConfirmed:
		return fmt.Sprintf("Your transfer %s is confirmed for %s.",
			bk.Reference, bk.PickupAt.Format("2 January, 3:04 PM"))
	case models.BookingStatusCompleted:
		return fmt.Sprintf("Transfer %s is complete. Thank you for travelling with us.", bk.Reference)
	case models.BookingStatusCancelled:
		return fmt.Sprintf("Transfer %s has been cancelled.", bk.Reference)
	default:
		return fmt.Sprintf("Transfer %s is now %s.", bk.Reference, to)
	}
}

func validateInput(input models.BookingInput) error {
	switch {
	case strings.TrimSpace(input.CustomerID) == "":
		return newValidationError("customerId", "is required")
	case strings.TrimSpace(input.PickupLocation) == "":
		return newValidationError("pickupLocation", "is required")
	case strings.TrimSpace(input.DropoffLocation) == "":
		return newValidationError("dropoffLocation", "is required")
	case strings.TrimSpace(input.VehicleClassID) == "":
		return newValidationError("vehicleClassId", "is required")
	case input.Passengers < 1:
		return newValidationError("passengers", "must be at least 1")
	case input.PickupAt.IsZero():
		return newValidationError("pickupAt", "is required")
	case input.DistanceKm < 0:
		return newValidationError("distanceKm", "must not be negative")
	}
	return nil
}
