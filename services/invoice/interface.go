package invoice

import (
	bookingRepo "voyago/database/repository/booking"
	customerRepo "voyago/database/repository/customer"
	fleetRepo "voyago/database/repository/fleet"
	invoiceRepo "voyago/database/repository/invoice"
	"voyago/models"

	"github.com/hibiken/asynq"
)

// GenerateInput describes an invoice generation request. An empty booking
// list means "everything billable": all completed bookings for the entity
// not yet claimed by an invoice of this type.
type GenerateInput struct {
	Type         string   `json:"type"`
	EntityID     string   `json:"entityId"`
	BookingIDs   []string `json:"bookingIds,omitempty"`
	TaxRatePct   *float64 `json:"taxRatePct,omitempty"` // Nil applies the configured default rate.
	PaymentTerms string   `json:"paymentTerms,omitempty"`
}

// CustomInput describes a free-form invoice: explicit line items, no booking
// roll-up. The billed party may be outside the customer/operator records.
type CustomInput struct {
	EntityID     string                   `json:"entityId,omitempty"`
	EntityName   string                   `json:"entityName"`
	LineItems    []models.InvoiceLineItem `json:"lineItems"`
	TaxRatePct   *float64                 `json:"taxRatePct,omitempty"`
	PaymentTerms string                   `json:"paymentTerms,omitempty"`
	Currency     string                   `json:"currency,omitempty"`
}

// InvoiceService defines the invoice lifecycle: generation over completed
// bookings, issue, payment collection, amendment and void.
type InvoiceService interface {
	Generate(input GenerateInput) (*models.Invoice, error)
	GenerateCustom(input CustomInput) (*models.Invoice, error)
	GetByID(id string) (*models.Invoice, error)
	GetByNumber(number string) (*models.Invoice, error)
	ListByEntity(entityID string) ([]models.Invoice, error)
	ListByType(invoiceType string) ([]models.Invoice, error)
	Issue(id string) (*models.Invoice, error)
	MarkPaid(id string) (*models.Invoice, error)
	Void(id string) (*models.Invoice, error)
	Amend(id string, taxRatePct *float64) (*models.Invoice, error)
	OpenPaymentIntent(id string) (*models.Invoice, error)
}

// DefaultInvoiceService implements InvoiceService.
type DefaultInvoiceService struct {
	Repo      invoiceRepo.InvoiceRepository
	Bookings  bookingRepo.BookingRepository
	Fleets    fleetRepo.FleetRepository
	Customers customerRepo.CustomerRepository

	// AsynqClient enqueues issue notifications and due-date reminders.
	// Nil disables both; enqueue failures are logged, never surfaced.
	AsynqClient *asynq.Client
}
