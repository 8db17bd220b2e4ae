package models

import "time"

// Pricing tiers, in the order the quote engine tries them. The value is
// recorded on every quote and booking so mispriced journeys can be traced
// back to the rule that produced them.
const (
	QuoteSourceFixedRoute = "fixed_route"
	QuoteSourceTextRoute  = "text_route"
	QuoteSourceScheme     = "scheme"
	QuoteSourceRateCard   = "rate_card"
	QuoteSourceDefault    = "default"
)

// QuoteRequest describes a prospective journey. Coordinates are optional;
// without them the geofenced fixed-route tier is skipped. DistanceKm is
// supplied by the caller (route distance, not straight-line).
type QuoteRequest struct {
	PickupLocation  string     `json:"pickupLocation"`
	DropoffLocation string     `json:"dropoffLocation"`
	PickupLat       *float64   `json:"pickupLat,omitempty"`
	PickupLng       *float64   `json:"pickupLng,omitempty"`
	DropoffLat      *float64   `json:"dropoffLat,omitempty"`
	DropoffLng      *float64   `json:"dropoffLng,omitempty"`
	DistanceKm      float64    `json:"distanceKm"`
	Passengers      int        `json:"passengers"`
	Luggage         int        `json:"luggage"`
	ChildSeats      int        `json:"childSeats,omitempty"`
	MeetGreet       bool       `json:"meetGreet"`
	AirportPickup   bool       `json:"isAirportPickup"`
	PickupAt        *time.Time `json:"pickupAt,omitempty"` // Enables night/weekend surcharges when set.
	Currency        string     `json:"currency,omitempty"` // Display currency; prices are converted, not recomputed.
}

// HasCoordinates reports whether both ends of the journey carry a position.
func (q QuoteRequest) HasCoordinates() bool {
	return q.PickupLat != nil && q.PickupLng != nil && q.DropoffLat != nil && q.DropoffLng != nil
}

// Quote is an ephemeral price for one vehicle class. Quotes are never
// persisted; callers re-quote rather than reuse a stale one.
type Quote struct {
	VehicleClassID   string  `json:"vehicleClassId"`
	VehicleClassName string  `json:"vehicleClassName"`
	MaxPassengers    int     `json:"maxPassengers"`
	MaxLuggage       int     `json:"maxLuggage"`
	Price            float64 `json:"price"`
	Currency         string  `json:"currency"`
	Source           string  `json:"source"`           // One of the QuoteSource* tiers.
	EstimatedMinutes int     `json:"estimatedMinutes"` // Placeholder heuristic, not a routing ETA.
}
