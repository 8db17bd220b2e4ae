package models

import "time"

// BookingInput is the create-booking request body. Prices are optional: a
// request may carry explicit dual prices (back-office entry), or just a
// customer price taken from a quote, or neither, in which case the booking
// is priced on creation from the current tariffs.
type BookingInput struct {
	CustomerID      string         `json:"customerId"`
	PickupLocation  string         `json:"pickupLocation"`
	DropoffLocation string         `json:"dropoffLocation"`
	PickupLat       *float64       `json:"pickupLat,omitempty"`
	PickupLng       *float64       `json:"pickupLng,omitempty"`
	DropoffLat      *float64       `json:"dropoffLat,omitempty"`
	DropoffLng      *float64       `json:"dropoffLng,omitempty"`
	DistanceKm      float64        `json:"distanceKm"`
	VehicleClassID  string         `json:"vehicleClassId"`
	PickupAt        time.Time      `json:"pickupAt"`
	Passengers      int            `json:"passengers"`
	Luggage         int            `json:"luggage"`
	MeetGreet       bool           `json:"meetGreet"`
	AirportPickup   bool           `json:"isAirportPickup"`
	CustomerPrice   *float64       `json:"customerPrice,omitempty"`
	DriverPrice     *float64       `json:"driverPrice,omitempty"`
	Extras          []BookingExtra `json:"extras,omitempty"`
	Currency        string         `json:"currency,omitempty"`
}

// QuoteRequest shapes the booking's journey fields into a quote request, so
// unpriced bookings are priced by the same engine customers were quoted by.
func (in BookingInput) QuoteRequest() QuoteRequest {
	req := QuoteRequest{
		PickupLocation:  in.PickupLocation,
		DropoffLocation: in.DropoffLocation,
		PickupLat:       in.PickupLat,
		PickupLng:       in.PickupLng,
		DropoffLat:      in.DropoffLat,
		DropoffLng:      in.DropoffLng,
		DistanceKm:      in.DistanceKm,
		Passengers:      in.Passengers,
		Luggage:         in.Luggage,
		MeetGreet:       in.MeetGreet,
		AirportPickup:   in.AirportPickup,
		Currency:        in.Currency,
	}
	if !in.PickupAt.IsZero() {
		pickupAt := in.PickupAt
		req.PickupAt = &pickupAt
	}
	return req
}
