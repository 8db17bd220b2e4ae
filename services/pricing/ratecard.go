package pricing

import "voyago/models"

// TripFlags are the per-request switches that attract flat surcharges.
type TripFlags struct {
	AirportPickup bool
	MeetGreet     bool
}

// RateCardPrice prices a journey on the legacy flat per-distance tariff:
// base fee plus metered kilometres, plus the flagged surcharges, floored at
// the card's minimum fare.
func RateCardPrice(distanceKm float64, card *models.RateCard, flags TripFlags) float64 {
	price := card.BaseFee + distanceKm*card.PerKmRate
	if flags.AirportPickup {
		price += card.AirportSurcharge
	}
	if flags.MeetGreet {
		price += card.MeetGreetFee
	}
	if price < card.MinimumFare {
		price = card.MinimumFare
	}
	return price
}
