package invoice

import (
	"fmt"
	"strings"
	"time"

	"voyago/config"
	"voyago/models"
	"voyago/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// defaultPaymentTermsDays applies when an invoice carries no payment terms.
const defaultPaymentTermsDays = 14

// Generate rolls completed bookings into a new draft invoice.
//
// Bookings are claimed before the invoice document is written: each booking's
// per-type invoice reference is set by a conditional update, so two
// concurrent generations can never bill the same booking twice. If any claim
// or the final write fails, claims taken so far are released.
func (svc *DefaultInvoiceService) Generate(input GenerateInput) (*models.Invoice, error) {
	if input.Type == models.InvoiceTypeCustom {
		return nil, fmt.Errorf("custom invoices take explicit line items; use GenerateCustom")
	}
	if !models.ValidInvoiceType(input.Type) {
		return nil, fmt.Errorf("unsupported invoice type %q", input.Type)
	}
	if strings.TrimSpace(input.EntityID) == "" {
		return nil, fmt.Errorf("entityId is required")
	}

	party, taxExempt, err := svc.resolveParty(input.Type, input.EntityID)
	if err != nil {
		return nil, err
	}

	bookings, err := svc.billableBookings(input)
	if err != nil {
		return nil, err
	}

	taxRate := config.AppConfig.DefaultTaxRatePct
	if input.TaxRatePct != nil {
		taxRate = *input.TaxRatePct
	}
	if taxExempt {
		taxRate = 0
	}

	inv, err := BuildInvoice(input.Type, party, bookings, taxRate)
	if err != nil {
		return nil, err
	}
	inv.ID = uuid.New().String()
	inv.PaymentTerms = input.PaymentTerms
	if inv.Number, err = svc.Repo.NextNumber(time.Now().Year()); err != nil {
		return nil, fmt.Errorf("failed to reserve invoice number: %w", err)
	}

	claimed := make([]string, 0, len(bookings))
	for _, bk := range bookings {
		if err := svc.Bookings.MarkInvoiced(bk.ID, input.Type, inv.ID); err != nil {
			svc.releaseClaims(claimed, input.Type)
			return nil, fmt.Errorf("failed to claim booking %s: %w", bk.ID, err)
		}
		claimed = append(claimed, bk.ID)
	}

	if err := svc.Repo.Create(inv); err != nil {
		svc.releaseClaims(claimed, input.Type)
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}
	return inv, nil
}

// GenerateCustom creates a draft invoice from explicit line items. No
// bookings are claimed and no commission applies.
func (svc *DefaultInvoiceService) GenerateCustom(input CustomInput) (*models.Invoice, error) {
	if strings.TrimSpace(input.EntityName) == "" {
		return nil, fmt.Errorf("entityName is required")
	}

	taxRate := config.AppConfig.DefaultTaxRatePct
	if input.TaxRatePct != nil {
		taxRate = *input.TaxRatePct
	}

	party := Party{ID: input.EntityID, Name: input.EntityName, Currency: input.Currency}
	inv, err := BuildCustomInvoice(party, input.LineItems, taxRate)
	if err != nil {
		return nil, err
	}
	inv.ID = uuid.New().String()
	inv.PaymentTerms = input.PaymentTerms
	if inv.Number, err = svc.Repo.NextNumber(time.Now().Year()); err != nil {
		return nil, fmt.Errorf("failed to reserve invoice number: %w", err)
	}

	if err := svc.Repo.Create(inv); err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}
	return inv, nil
}

// GetByID retrieves an invoice by its unique ID.
func (svc *DefaultInvoiceService) GetByID(id string) (*models.Invoice, error) {
	return svc.Repo.GetByID(id)
}

// GetByNumber retrieves an invoice by its human-facing number.
func (svc *DefaultInvoiceService) GetByNumber(number string) (*models.Invoice, error) {
	return svc.Repo.GetByNumber(number)
}

// ListByEntity retrieves an entity's invoices, newest first.
func (svc *DefaultInvoiceService) ListByEntity(entityID string) ([]models.Invoice, error) {
	return svc.Repo.ListByEntity(entityID)
}

// ListByType retrieves invoices of one type, newest first.
func (svc *DefaultInvoiceService) ListByType(invoiceType string) ([]models.Invoice, error) {
	if !models.ValidInvoiceType(invoiceType) {
		return nil, fmt.Errorf("unsupported invoice type %q", invoiceType)
	}
	return svc.Repo.ListByType(invoiceType)
}

// Issue moves a draft invoice to issued, stamping the issue and due dates.
// Once issued the document is immutable; corrections go through Amend.
func (svc *DefaultInvoiceService) Issue(id string) (*models.Invoice, error) {
	inv, err := svc.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv.Status != models.InvoiceStatusDraft {
		return nil, &StateError{InvoiceID: id, Status: inv.Status, Operation: "issue"}
	}

	now := time.Now()
	due := now.AddDate(0, 0, paymentTermsDays(inv.PaymentTerms))
	extra := map[string]interface{}{"issuedAt": now, "dueAt": due}
	if err := svc.Repo.UpdateStatus(id, models.InvoiceStatusDraft, models.InvoiceStatusIssued, extra); err != nil {
		return nil, err
	}

	svc.scheduleDueReminder(inv, due)
	svc.notifyEntity(inv, models.NotifyInvoiceIssued,
		"Invoice "+inv.Number,
		fmt.Sprintf("Invoice %s for %s %.2f is due by %s.",
			inv.Number, inv.Currency, inv.Total, due.Format("2 January")))
	return svc.Repo.GetByID(id)
}

// MarkPaid settles an issued invoice.
func (svc *DefaultInvoiceService) MarkPaid(id string) (*models.Invoice, error) {
	inv, err := svc.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv.Status != models.InvoiceStatusIssued {
		return nil, &StateError{InvoiceID: id, Status: inv.Status, Operation: "mark paid"}
	}
	if err := svc.Repo.UpdateStatus(id, models.InvoiceStatusIssued, models.InvoiceStatusPaid, nil); err != nil {
		return nil, err
	}
	return svc.Repo.GetByID(id)
}

// Void cancels a draft or issued invoice and releases its bookings for
// future invoicing. Paid invoices cannot be voided.
func (svc *DefaultInvoiceService) Void(id string) (*models.Invoice, error) {
	inv, err := svc.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv.Status != models.InvoiceStatusDraft && inv.Status != models.InvoiceStatusIssued {
		return nil, &StateError{InvoiceID: id, Status: inv.Status, Operation: "void"}
	}
	if err := svc.Repo.UpdateStatus(id, inv.Status, models.InvoiceStatusVoid, nil); err != nil {
		return nil, err
	}

	if inv.Type != models.InvoiceTypeCustom {
		ids := make([]string, 0, len(inv.LineItems))
		for _, item := range inv.LineItems {
			ids = append(ids, item.BookingID)
		}
		svc.releaseClaims(ids, inv.Type)
	}
	return svc.Repo.GetByID(id)
}

// Amend replaces an issued invoice with a fresh draft over the same bookings,
// re-snapshotting their current prices. The replacement records which invoice
// it amends; the original moves to superseded and points forward. Booking
// claims transfer to the replacement, so the pair never double-bills.
func (svc *DefaultInvoiceService) Amend(id string, taxRatePct *float64) (*models.Invoice, error) {
	original, err := svc.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if original.Status != models.InvoiceStatusIssued {
		return nil, &StateError{InvoiceID: id, Status: original.Status, Operation: "amend"}
	}
	if original.Type == models.InvoiceTypeCustom {
		return nil, fmt.Errorf("custom invoices cannot be amended; void and reissue instead")
	}

	party, taxExempt, err := svc.resolveParty(original.Type, original.EntityID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(original.LineItems))
	for _, item := range original.LineItems {
		ids = append(ids, item.BookingID)
	}
	bookings, err := svc.Bookings.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	if len(bookings) != len(ids) {
		return nil, fmt.Errorf("invoice %s references bookings that no longer exist", id)
	}

	taxRate := original.TaxRatePct
	if taxRatePct != nil {
		taxRate = *taxRatePct
	}
	if taxExempt {
		taxRate = 0
	}

	replacement, err := BuildInvoice(original.Type, party, bookings, taxRate)
	if err != nil {
		return nil, err
	}
	replacement.ID = uuid.New().String()
	replacement.Amends = original.ID
	replacement.PaymentTerms = original.PaymentTerms
	if replacement.Number, err = svc.Repo.NextNumber(time.Now().Year()); err != nil {
		return nil, fmt.Errorf("failed to reserve invoice number: %w", err)
	}

	if err := svc.Repo.Create(replacement); err != nil {
		return nil, fmt.Errorf("failed to create amendment: %w", err)
	}

	// Move each booking's claim from the original to the replacement.
	for _, bk := range bookings {
		if err := svc.Bookings.ClearInvoiceRef(bk.ID, original.Type); err != nil {
			utils.GetLogger().Warn("failed to release booking claim during amendment",
				zap.String("bookingId", bk.ID), zap.String("invoiceId", id), zap.Error(err))
			continue
		}
		if err := svc.Bookings.MarkInvoiced(bk.ID, original.Type, replacement.ID); err != nil {
			utils.GetLogger().Warn("failed to reclaim booking for amendment",
				zap.String("bookingId", bk.ID), zap.String("invoiceId", replacement.ID), zap.Error(err))
		}
	}

	extra := map[string]interface{}{"supersededBy": replacement.ID}
	if err := svc.Repo.UpdateStatus(id, models.InvoiceStatusIssued, models.InvoiceStatusSuperseded, extra); err != nil {
		return nil, fmt.Errorf("failed to supersede invoice %s: %w", id, err)
	}
	return replacement, nil
}

// resolveParty loads the billed entity for an invoice type. The second
// return reports tax exemption, which only customer accounts carry.
func (svc *DefaultInvoiceService) resolveParty(invoiceType, entityID string) (Party, bool, error) {
	switch invoiceType {
	case models.InvoiceTypeCustomer:
		customer, err := svc.Customers.GetByID(entityID)
		if err != nil {
			return Party{}, false, err
		}
		return Party{ID: customer.ID, Name: customer.Name, Currency: customer.Currency}, customer.TaxExempt, nil
	case models.InvoiceTypeFleet:
		fleet, err := svc.Fleets.GetFleetByID(entityID)
		if err != nil {
			return Party{}, false, err
		}
		return Party{ID: fleet.ID, Name: fleet.Name, Commission: fleet.Commission, Currency: fleet.Currency}, false, nil
	case models.InvoiceTypeDriver:
		driver, err := svc.Fleets.GetDriverByID(entityID)
		if err != nil {
			return Party{}, false, err
		}
		return Party{ID: driver.ID, Name: driver.Name, Commission: driver.Commission, Currency: driver.Currency}, false, nil
	}
	return Party{}, false, fmt.Errorf("unsupported invoice type %q", invoiceType)
}

// billableBookings resolves the bookings an invoice will cover. Explicit IDs
// are validated one by one; an empty list sweeps everything billable.
func (svc *DefaultInvoiceService) billableBookings(input GenerateInput) ([]models.Booking, error) {
	if len(input.BookingIDs) == 0 {
		bookings, err := svc.Bookings.ListUninvoiced(input.Type, input.EntityID)
		if err != nil {
			return nil, err
		}
		if len(bookings) == 0 {
			return nil, ErrNoBookings
		}
		return bookings, nil
	}

	bookings, err := svc.Bookings.GetByIDs(input.BookingIDs)
	if err != nil {
		return nil, err
	}
	if len(bookings) != len(input.BookingIDs) {
		return nil, fmt.Errorf("%d of %d requested bookings not found",
			len(input.BookingIDs)-len(bookings), len(input.BookingIDs))
	}
	for _, bk := range bookings {
		if err := billable(bk, input.Type, input.EntityID); err != nil {
			return nil, err
		}
	}
	return bookings, nil
}

// billable checks that one booking can be rolled into an invoice of the
// given type for the given entity.
func billable(bk models.Booking, invoiceType, entityID string) error {
	if bk.Status != models.BookingStatusCompleted {
		return &EligibilityError{BookingID: bk.ID, Reason: "not completed"}
	}

	var owner string
	switch invoiceType {
	case models.InvoiceTypeCustomer:
		owner = bk.CustomerID
	case models.InvoiceTypeFleet:
		owner = bk.FleetID
	case models.InvoiceTypeDriver:
		owner = bk.DriverID
	}
	if owner != entityID {
		return &EligibilityError{BookingID: bk.ID, Reason: "not assigned to entity " + entityID}
	}

	if invoiceRef(bk, invoiceType) != "" {
		return &EligibilityError{BookingID: bk.ID, Reason: "already invoiced"}
	}
	return nil
}

// invoiceRef reads the booking's invoice reference for a type.
func invoiceRef(bk models.Booking, invoiceType string) string {
	switch invoiceType {
	case models.InvoiceTypeCustomer:
		return bk.CustomerInvoiceID
	case models.InvoiceTypeFleet:
		return bk.FleetInvoiceID
	case models.InvoiceTypeDriver:
		return bk.DriverInvoiceID
	}
	return ""
}

// releaseClaims clears the invoice references taken on the given bookings.
// Failures are logged and skipped; a stuck claim is visible in the booking
// document and can be released by hand.
func (svc *DefaultInvoiceService) releaseClaims(bookingIDs []string, invoiceType string) {
	for _, id := range bookingIDs {
		if err := svc.Bookings.ClearInvoiceRef(id, invoiceType); err != nil {
			utils.GetLogger().Warn("failed to release booking claim",
				zap.String("bookingId", id), zap.String("invoiceType", invoiceType), zap.Error(err))
		}
	}
}

// paymentTermsDays parses the day count out of terms like "14 days" or "30".
func paymentTermsDays(terms string) int {
	var days int
	if _, err := fmt.Sscanf(strings.TrimSpace(terms), "%d", &days); err != nil || days <= 0 {
		return defaultPaymentTermsDays
	}
	return days
}
