package models

import "time"

// Customer is an account that books transfers and receives customer
// invoices, typically a corporate travel desk rather than a passenger.
type Customer struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Address   string    `bson:"address,omitempty" json:"address,omitempty"`
	Currency  string    `bson:"currency,omitempty" json:"currency,omitempty"` // Preferred display currency.
	TaxExempt bool      `bson:"taxExempt" json:"taxExempt"`
	FCMToken  string    `bson:"fcmToken,omitempty" json:"-"`
	Active    bool      `bson:"active" json:"active"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
