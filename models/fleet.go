package models

import "time"

// CommissionConfig is the platform's cut of an operator's payout, taken per
// invoice. Percentage commissions apply to the invoice subtotal; flat
// commissions are charged per job.
type CommissionConfig struct {
	Type  string  `bson:"type" json:"type"` // "percentage" or "flat".
	Value float64 `bson:"value" json:"value"`
}

// Fleet is an operator company that runs jobs under its own drivers and is
// settled with a fleet invoice.
type Fleet struct {
	ID         string           `bson:"id" json:"id"`
	Name       string           `bson:"name" json:"name"`
	Email      string           `bson:"email" json:"email"`
	Phone      string           `bson:"phone,omitempty" json:"phone,omitempty"`
	Address    string           `bson:"address,omitempty" json:"address,omitempty"`
	Commission CommissionConfig `bson:"commission" json:"commission"`
	Currency   string           `bson:"currency,omitempty" json:"currency,omitempty"`
	FCMToken   string           `bson:"fcmToken,omitempty" json:"-"`
	Active     bool             `bson:"active" json:"active"`
	CreatedAt  time.Time        `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time        `bson:"updatedAt" json:"updatedAt"`
}

// Driver is either one of a fleet's drivers or a directly-contracted
// operator paid through driver invoices.
type Driver struct {
	ID         string           `bson:"id" json:"id"`
	FleetID    string           `bson:"fleetId,omitempty" json:"fleetId,omitempty"` // Empty for direct contractors.
	Name       string           `bson:"name" json:"name"`
	Email      string           `bson:"email" json:"email"`
	Phone      string           `bson:"phone,omitempty" json:"phone,omitempty"`
	LicenceNo  string           `bson:"licenceNo,omitempty" json:"licenceNo,omitempty"`
	Commission CommissionConfig `bson:"commission" json:"commission"`
	Currency   string           `bson:"currency,omitempty" json:"currency,omitempty"`
	FCMToken   string           `bson:"fcmToken,omitempty" json:"-"`
	Active     bool             `bson:"active" json:"active"`
	CreatedAt  time.Time        `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time        `bson:"updatedAt" json:"updatedAt"`
}
