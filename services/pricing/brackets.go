package pricing

import (
	"sort"

	"voyago/models"
)

// BracketPrice evaluates a scheme's cumulative mileage brackets for a
// journey distance. It reports false when the scheme defines no brackets and
// therefore cannot price anything.
//
// The running total starts at the scheme's base fare. A first bracket
// (minMiles == 0) carrying a fixed price REPLACES the running total, the
// "flat first N miles" tariff shape. Later fixed-price brackets add flat
// increments and metered brackets add miles in range times their rate. A
// bracket defining neither a fixed price nor a per-mile rate is a
// configuration fault and contributes nothing. The result is floored at the
// scheme's minimum fare.
func BracketPrice(distanceMiles float64, scheme *models.PricingScheme) (float64, bool) {
	if !scheme.HasBrackets() {
		return 0, false
	}

	brackets := make([]models.MileageBracket, len(scheme.Brackets))
	copy(brackets, scheme.Brackets)
	sort.SliceStable(brackets, func(i, j int) bool {
		return brackets[i].Order < brackets[j].Order
	})

	total := scheme.BaseFare
	for _, b := range brackets {
		if distanceMiles < b.MinMiles {
			continue
		}
		upper := distanceMiles
		if b.MaxMiles != nil && *b.MaxMiles < upper {
			upper = *b.MaxMiles
		}
		milesIn := upper - b.MinMiles
		if milesIn <= 0 {
			continue
		}

		switch {
		case b.MinMiles == 0 && b.FixedPrice != nil:
			total = *b.FixedPrice
		case b.PerMileRate != nil:
			total += milesIn * *b.PerMileRate
		case b.FixedPrice != nil:
			total += *b.FixedPrice
		}
	}

	if total < scheme.MinimumFare {
		total = scheme.MinimumFare
	}
	return total, true
}
