package invoice

import (
	"fmt"
	"math"
	"strings"

	"voyago/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// OpenPaymentIntent opens a Stripe payment intent for an issued invoice and
// records its ID on the document. Calling again on an invoice that already
// has one returns the invoice unchanged. Amounts go to Stripe in minor units.
func (svc *DefaultInvoiceService) OpenPaymentIntent(id string) (*models.Invoice, error) {
	inv, err := svc.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv.Status != models.InvoiceStatusIssued {
		return nil, &StateError{InvoiceID: id, Status: inv.Status, Operation: "collect payment for"}
	}
	if inv.PaymentIntentID != "" {
		return inv, nil
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(inv.Total * 100))),
		Currency: stripe.String(strings.ToLower(inv.Currency)),
	}
	params.AddMetadata("invoiceId", inv.ID)
	params.AddMetadata("invoiceNumber", inv.Number)

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to open payment intent for invoice %s: %w", inv.Number, err)
	}
	if err := svc.Repo.SetPaymentIntent(id, intent.ID); err != nil {
		return nil, fmt.Errorf("failed to record payment intent: %w", err)
	}

	inv.PaymentIntentID = intent.ID
	return inv, nil
}
