// File: voyago/models/notification.go
package models

import "time"

// Push notification recipients.
const (
	NotifyTargetCustomer = "customer"
	NotifyTargetFleet    = "fleet"
	NotifyTargetDriver   = "driver"
)

// Notification event types emitted by the booking and invoice services.
const (
	NotifyBookingPriceChanged = "booking_price_changed"
	NotifyOperatorAssigned    = "operator_assigned"
	NotifyBookingStatus       = "booking_status"
	NotifyInvoiceIssued       = "invoice_issued"
	NotifyInvoiceDue          = "invoice_due"
)

// PushPayload is the asynq task body for a deferred push notification.
type PushPayload struct {
	Target string            `json:"target"` // One of the NotifyTarget* values.
	ID     string            `json:"id"`     // Recipient entity ID.
	Type   string            `json:"type"`   // One of the Notify* event types.
	Title  string            `json:"title"`
	Body   string            `json:"body"`
	Data   map[string]string `json:"data,omitempty"`
}

// Notification is the stored copy of a dispatched message, kept for the
// recipient's in-app feed.
type Notification struct {
	ID        string    `bson:"id" json:"id"`
	Target    string    `bson:"target" json:"target"`
	TargetID  string    `bson:"targetId" json:"targetId"`
	Type      string    `bson:"type" json:"type"`
	Title     string    `bson:"title" json:"title"`
	Body      string    `bson:"body" json:"body"`
	Read      bool      `bson:"read" json:"read"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
