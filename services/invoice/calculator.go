package invoice

import (
	"fmt"

	"voyago/models"
	"voyago/services/pricing"
	"voyago/utils"
)

// Party is the entity an invoice is made out to. The commission config is
// only consulted for operator payouts; a zero value takes no commission.
type Party struct {
	ID         string
	Name       string
	Commission models.CommissionConfig
	Currency   string
}

// BuildInvoice rolls a set of completed bookings into a draft invoice of the
// given type.
//
// Customer invoices bill revenue: the subtotal sums customer prices, tax is
// added on top, and the profit roll-up is kept for reporting. Fleet and
// driver invoices settle payouts: the subtotal sums operator payouts and the
// platform commission is deducted before tax.
//
// Line items snapshot each booking's reference, date, route and money at
// generation time, so later booking edits never reach into an invoice.
// The calculator is pure: IDs, numbers and timestamps are the caller's job.
func BuildInvoice(invoiceType string, party Party, bookings []models.Booking, taxRatePct float64) (*models.Invoice, error) {
	switch invoiceType {
	case models.InvoiceTypeCustomer, models.InvoiceTypeFleet, models.InvoiceTypeDriver:
	case models.InvoiceTypeCustom:
		return nil, fmt.Errorf("custom invoices take explicit line items, not bookings")
	default:
		return nil, fmt.Errorf("unsupported invoice type %q", invoiceType)
	}
	if len(bookings) == 0 {
		return nil, ErrNoBookings
	}

	inv := &models.Invoice{
		Type:       invoiceType,
		EntityID:   party.ID,
		EntityName: party.Name,
		TaxRatePct: taxRatePct,
		Currency:   invoiceCurrency(party, bookings),
		Status:     models.InvoiceStatusDraft,
		LineItems:  make([]models.InvoiceLineItem, 0, len(bookings)),
	}

	var subtotal, driverCosts float64
	for _, bk := range bookings {
		item := models.InvoiceLineItem{
			BookingID: bk.ID,
			Reference: bk.Reference,
			Date:      bk.PickupAt,
			Route:     bk.Route(),
		}
		switch invoiceType {
		case models.InvoiceTypeCustomer:
			item.Amount = utils.RoundMoney(bk.CustomerPrice)
			item.Profit = utils.RoundMoney(bk.CustomerPrice - bk.DriverPrice)
			subtotal += bk.CustomerPrice
			driverCosts += bk.DriverPrice
		default:
			item.Amount = utils.RoundMoney(bk.DriverPrice)
			subtotal += bk.DriverPrice
		}
		inv.LineItems = append(inv.LineItems, item)
	}

	inv.Subtotal = utils.RoundMoney(subtotal)
	inv.Tax = utils.RoundMoney(subtotal * taxRatePct / 100)

	switch invoiceType {
	case models.InvoiceTypeCustomer:
		inv.ProfitTotal = utils.RoundMoney(subtotal - driverCosts)
		inv.Total = utils.RoundMoney(inv.Subtotal + inv.Tax)
	default:
		inv.CommissionType = party.Commission.Type
		inv.CommissionValue = party.Commission.Value
		inv.Commission = commissionFor(party.Commission, inv.Subtotal, len(bookings))
		inv.Total = utils.RoundMoney(inv.Subtotal - inv.Commission + inv.Tax)
	}
	return inv, nil
}

// BuildCustomInvoice assembles a free-form draft invoice from explicit line
// items: ad-hoc charges with no booking roll-up and no commission.
func BuildCustomInvoice(party Party, lineItems []models.InvoiceLineItem, taxRatePct float64) (*models.Invoice, error) {
	if len(lineItems) == 0 {
		return nil, ErrNoLineItems
	}

	var subtotal float64
	for _, item := range lineItems {
		subtotal += item.Amount
	}

	inv := &models.Invoice{
		Type:       models.InvoiceTypeCustom,
		EntityID:   party.ID,
		EntityName: party.Name,
		LineItems:  lineItems,
		Subtotal:   utils.RoundMoney(subtotal),
		TaxRatePct: taxRatePct,
		Tax:        utils.RoundMoney(subtotal * taxRatePct / 100),
		Currency:   invoiceCurrency(party, nil),
		Status:     models.InvoiceStatusDraft,
	}
	inv.Total = utils.RoundMoney(inv.Subtotal + inv.Tax)
	return inv, nil
}

// commissionFor computes the platform's cut of an operator payout. A missing
// or unknown commission configuration charges nothing.
func commissionFor(cfg models.CommissionConfig, subtotal float64, jobs int) float64 {
	switch cfg.Type {
	case models.CommissionTypePercentage:
		return utils.RoundMoney(subtotal * cfg.Value / 100)
	case models.CommissionTypeFlat:
		return utils.RoundMoney(float64(jobs) * cfg.Value)
	default:
		return 0
	}
}

// invoiceCurrency prefers the billed party's currency, then the bookings',
// then the configured default.
func invoiceCurrency(party Party, bookings []models.Booking) string {
	if party.Currency != "" {
		return party.Currency
	}
	for _, bk := range bookings {
		if bk.Currency != "" {
			return bk.Currency
		}
	}
	return pricing.DefaultCurrency()
}
