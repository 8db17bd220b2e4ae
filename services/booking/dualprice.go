package booking

import (
	"voyago/models"
	"voyago/utils"
)

// PriceBreakdown is the full derived money state of a booking. Everything a
// price mutation writes travels together, so profit can never drift from the
// inputs it was derived from.
type PriceBreakdown struct {
	CustomerPrice float64
	DriverPrice   float64
	Extras        []models.BookingExtra
	ExtrasTotal   float64
	Profit        float64
}

// ComputeBreakdown derives the extras total and profit for a customer price,
// an operator payout and a set of extras. Extras the operator also bears
// (affectsDriverCost) cancel out of the profit. A nil extras slice is
// normalised to an empty one, so callers and storage always see the same
// shape.
//
//	profit = (customerPrice + extrasTotal) - (driverPrice + extrasDriverTotal)
func ComputeBreakdown(customerPrice, driverPrice float64, extras []models.BookingExtra) PriceBreakdown {
	if extras == nil {
		extras = []models.BookingExtra{}
	}

	var extrasTotal, extrasDriverTotal float64
	for _, extra := range extras {
		extrasTotal += extra.Price
		if extra.AffectsDriverCost {
			extrasDriverTotal += extra.Price
		}
	}

	return PriceBreakdown{
		CustomerPrice: customerPrice,
		DriverPrice:   driverPrice,
		Extras:        extras,
		ExtrasTotal:   utils.RoundMoney(extrasTotal),
		Profit:        utils.RoundMoney((customerPrice + extrasTotal) - (driverPrice + extrasDriverTotal)),
	}
}
