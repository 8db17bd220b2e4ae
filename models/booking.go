package models

import "time"

// Booking lifecycle states.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// BookingExtra is a chargeable add-on. Price is what the customer pays;
// AffectsDriverCost marks extras the operator also bears (and which
// therefore cancel out of the profit).
type BookingExtra struct {
	Name              string  `bson:"name" json:"name"` // e.g., "Child seat", "Waiting time".
	Price             float64 `bson:"price" json:"price"`
	AffectsDriverCost bool    `bson:"affectsDriverCost" json:"affectsDriverCost"`
}

// Booking is a confirmed transfer job. It carries two prices: what the
// customer pays and what the assigned operator is owed. Profit is derived
// from those plus the extras and is only ever rewritten inside the same
// update that changes one of its inputs.
type Booking struct {
	ID              string   `bson:"id" json:"id"`
	Reference       string   `bson:"reference" json:"reference"` // Human-facing, e.g., "VY-100041".
	CustomerID      string   `bson:"customerId" json:"customerId"`
	Status          string   `bson:"status" json:"status"`
	PickupLocation  string   `bson:"pickupLocation" json:"pickupLocation"`
	DropoffLocation string   `bson:"dropoffLocation" json:"dropoffLocation"`
	PickupLat       *float64 `bson:"pickupLat,omitempty" json:"pickupLat,omitempty"`
	PickupLng       *float64 `bson:"pickupLng,omitempty" json:"pickupLng,omitempty"`
	DropoffLat      *float64 `bson:"dropoffLat,omitempty" json:"dropoffLat,omitempty"`
	DropoffLng      *float64 `bson:"dropoffLng,omitempty" json:"dropoffLng,omitempty"`
	DistanceKm      float64  `bson:"distanceKm" json:"distanceKm"`
	VehicleClassID  string   `bson:"vehicleClassId" json:"vehicleClassId"`
	PickupAt        time.Time `bson:"pickupAt" json:"pickupAt"`
	Passengers      int      `bson:"passengers" json:"passengers"`
	Luggage         int      `bson:"luggage" json:"luggage"`
	MeetGreet       bool     `bson:"meetGreet" json:"meetGreet"`
	AirportPickup   bool     `bson:"airportPickup" json:"airportPickup"`

	// Dual pricing. CustomerPrice is customer-facing; DriverPrice is the
	// operator payout. ExtrasTotal and Profit are derived fields.
	CustomerPrice float64        `bson:"customerPrice" json:"customerPrice"`
	DriverPrice   float64        `bson:"driverPrice" json:"driverPrice"`
	Extras        []BookingExtra `bson:"extras" json:"extras"`
	ExtrasTotal   float64        `bson:"extrasTotal" json:"extrasTotal"`
	Profit        float64        `bson:"profit" json:"profit"`
	Currency      string         `bson:"currency" json:"currency"`
	QuoteSource   string         `bson:"quoteSource,omitempty" json:"quoteSource,omitempty"`

	// Operator assignment. A booking is paid out to a fleet or to a
	// directly-contracted driver, never both.
	FleetID  string `bson:"fleetId,omitempty" json:"fleetId,omitempty"`
	DriverID string `bson:"driverId,omitempty" json:"driverId,omitempty"`

	// Per-type invoice references. Empty until the booking is rolled into
	// an invoice of that type; at most one of each may ever be set.
	CustomerInvoiceID string `bson:"customerInvoiceId,omitempty" json:"customerInvoiceId,omitempty"`
	FleetInvoiceID    string `bson:"fleetInvoiceId,omitempty" json:"fleetInvoiceId,omitempty"`
	DriverInvoiceID   string `bson:"driverInvoiceId,omitempty" json:"driverInvoiceId,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// InvoiceRefField returns the booking field that records membership in an
// invoice of the given type, or "" for types that don't claim bookings.
func InvoiceRefField(invoiceType string) string {
	switch invoiceType {
	case InvoiceTypeCustomer:
		return "customerInvoiceId"
	case InvoiceTypeFleet:
		return "fleetInvoiceId"
	case InvoiceTypeDriver:
		return "driverInvoiceId"
	default:
		return ""
	}
}

// Route is the display form of the journey used on invoice line items.
func (b Booking) Route() string {
	return b.PickupLocation + " to " + b.DropoffLocation
}
