package models

import "time"

// Invoice types. Customer invoices bill revenue; fleet and driver invoices
// settle operator payouts net of commission. Custom invoices hold free-form
// line items and skip the booking roll-up entirely.
const (
	InvoiceTypeCustomer = "customer"
	InvoiceTypeFleet    = "fleet"
	InvoiceTypeDriver   = "driver"
	InvoiceTypeCustom   = "custom"
)

// Commission configuration on fleets and drivers.
const (
	CommissionTypePercentage = "percentage"
	CommissionTypeFlat       = "flat" // Per-job amount.
)

// Invoice statuses. Issued invoices are immutable; corrections are made by
// an amendment invoice that supersedes the original.
const (
	InvoiceStatusDraft      = "draft"
	InvoiceStatusIssued     = "issued"
	InvoiceStatusPaid       = "paid"
	InvoiceStatusVoid       = "void"
	InvoiceStatusSuperseded = "superseded"
)

// InvoiceLineItem is a snapshot of one booking at generation time, so later
// booking edits never retroactively change an issued invoice.
type InvoiceLineItem struct {
	BookingID string    `bson:"bookingId" json:"bookingId"`
	Reference string    `bson:"reference" json:"reference"`
	Date      time.Time `bson:"date" json:"date"`
	Route     string    `bson:"route" json:"route"`
	Amount    float64   `bson:"amount" json:"amount"`
	Profit    float64   `bson:"profit,omitempty" json:"profit,omitempty"` // Customer invoices only.
}

// Invoice aggregates completed bookings into a payable document.
type Invoice struct {
	ID         string            `bson:"id" json:"id"`
	Number     string            `bson:"number" json:"number"` // e.g., "INV-2026-000184".
	Type       string            `bson:"type" json:"type"`
	EntityID   string            `bson:"entityId" json:"entityId"`     // Customer, fleet or driver being invoiced.
	EntityName string            `bson:"entityName" json:"entityName"` // Snapshot; entity renames don't touch issued invoices.
	LineItems  []InvoiceLineItem `bson:"lineItems" json:"lineItems"`

	Subtotal        float64 `bson:"subtotal" json:"subtotal"`
	CommissionType  string  `bson:"commissionType,omitempty" json:"commissionType,omitempty"`
	CommissionValue float64 `bson:"commissionValue,omitempty" json:"commissionValue,omitempty"`
	Commission      float64 `bson:"commission" json:"commission"`
	TaxRatePct      float64 `bson:"taxRatePct" json:"taxRatePct"`
	Tax             float64 `bson:"tax" json:"tax"`
	Total           float64 `bson:"total" json:"total"`
	ProfitTotal     float64 `bson:"profitTotal,omitempty" json:"profitTotal,omitempty"` // Customer invoices only.
	Currency        string  `bson:"currency" json:"currency"`

	Status       string     `bson:"status" json:"status"`
	PaymentTerms string     `bson:"paymentTerms,omitempty" json:"paymentTerms,omitempty"` // e.g., "14 days".
	DueAt        *time.Time `bson:"dueAt,omitempty" json:"dueAt,omitempty"`
	IssuedAt     *time.Time `bson:"issuedAt,omitempty" json:"issuedAt,omitempty"`
	SupersededBy string     `bson:"supersededBy,omitempty" json:"supersededBy,omitempty"`
	Amends       string     `bson:"amends,omitempty" json:"amends,omitempty"` // ID of the invoice this one replaces.

	// Stripe payment collection, populated when a payment intent is opened.
	PaymentIntentID string `bson:"paymentIntentId,omitempty" json:"paymentIntentId,omitempty"`

	// Cloudinary public ID of the archived rendered document, if uploaded.
	DocumentID string `bson:"documentId,omitempty" json:"documentId,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ValidInvoiceType reports whether t names a supported invoice type.
func ValidInvoiceType(t string) bool {
	switch t {
	case InvoiceTypeCustomer, InvoiceTypeFleet, InvoiceTypeDriver, InvoiceTypeCustom:
		return true
	}
	return false
}
