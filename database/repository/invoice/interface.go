package invoiceRepo

import (
	"voyago/models"
)

// InvoiceRepository defines methods for invoice data access.
type InvoiceRepository interface {
	// NextNumber reserves the next invoice number for the given year.
	NextNumber(year int) (string, error)
	// Create inserts a new invoice record.
	Create(invoice *models.Invoice) error
	// GetByID retrieves an invoice by its unique ID.
	GetByID(id string) (*models.Invoice, error)
	// GetByNumber retrieves an invoice by its human-facing number.
	GetByNumber(number string) (*models.Invoice, error)
	// ListByEntity retrieves invoices for an entity, newest first.
	ListByEntity(entityID string) ([]models.Invoice, error)
	// ListByType retrieves invoices of one type, newest first.
	ListByType(invoiceType string) ([]models.Invoice, error)
	// UpdateStatus transitions an invoice from one status to another as a
	// conditional single-document update. Extra carries additional fields
	// written in the same update (issuedAt, dueAt, supersededBy, ...).
	UpdateStatus(id, from, to string, extra map[string]interface{}) error
	// SetPaymentIntent records the Stripe payment intent opened for an invoice.
	SetPaymentIntent(id, paymentIntentID string) error
	// SetDocumentID records the archived document handle for an invoice.
	SetDocumentID(id, documentID string) error
}
