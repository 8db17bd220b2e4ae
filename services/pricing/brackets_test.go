package pricing

import (
	"math"
	"testing"

	"voyago/models"
)

func fp(v float64) *float64 { return &v }

// tieredScheme is the canonical two-bracket tariff: a flat 20 for the first
// five miles, then 2 per mile up to fifteen, floored at 25.
func tieredScheme() *models.PricingScheme {
	return &models.PricingScheme{
		ID:          "scheme-exec",
		MinimumFare: 25,
		Brackets: []models.MileageBracket{
			{MinMiles: 0, MaxMiles: fp(5), FixedPrice: fp(20), Order: 1},
			{MinMiles: 5, MaxMiles: fp(15), PerMileRate: fp(2), Order: 2},
		},
	}
}

func TestBracketPrice(t *testing.T) {
	tests := []struct {
		name      string
		distance  float64
		scheme    *models.PricingScheme
		wantPrice float64
		wantOK    bool
	}{
		{
			name:      "ten miles spans both brackets",
			distance:  10,
			scheme:    tieredScheme(),
			wantPrice: 30, // 20 flat + 5 metered miles at 2.
			wantOK:    true,
		},
		{
			name:      "short journey floored at minimum fare",
			distance:  3,
			scheme:    tieredScheme(),
			wantPrice: 25, // Brackets give 20, floor lifts to 25.
			wantOK:    true,
		},
		{
			name:      "metered miles capped at bracket upper bound",
			distance:  20,
			scheme:    tieredScheme(),
			wantPrice: 40, // 20 flat + capped 10 metered miles at 2.
			wantOK:    true,
		},
		{
			name:     "unbounded final bracket meters to full distance",
			distance: 30,
			scheme: &models.PricingScheme{
				Brackets: []models.MileageBracket{
					{MinMiles: 0, MaxMiles: fp(5), FixedPrice: fp(20), Order: 1},
					{MinMiles: 5, PerMileRate: fp(2), Order: 2},
				},
			},
			wantPrice: 70, // 20 flat + 25 metered miles at 2.
			wantOK:    true,
		},
		{
			name:     "base fare plus single metered bracket",
			distance: 8,
			scheme: &models.PricingScheme{
				BaseFare: 10,
				Brackets: []models.MileageBracket{
					{MinMiles: 0, PerMileRate: fp(1.5), Order: 1},
				},
			},
			wantPrice: 22, // 10 base + 8 miles at 1.5.
			wantOK:    true,
		},
		{
			name:     "flat first bracket replaces base fare",
			distance: 4,
			scheme: &models.PricingScheme{
				BaseFare: 10,
				Brackets: []models.MileageBracket{
					{MinMiles: 0, MaxMiles: fp(5), FixedPrice: fp(20), Order: 1},
				},
			},
			wantPrice: 20, // Not 30: the flat first bracket is the whole tariff so far.
			wantOK:    true,
		},
		{
			name:     "later flat bracket adds an increment",
			distance: 12,
			scheme: &models.PricingScheme{
				BaseFare: 5,
				Brackets: []models.MileageBracket{
					{MinMiles: 0, MaxMiles: fp(10), PerMileRate: fp(1), Order: 1},
					{MinMiles: 10, FixedPrice: fp(5), Order: 2},
				},
			},
			wantPrice: 20, // 5 base + 10 metered + 5 flat long-trip increment.
			wantOK:    true,
		},
		{
			name:     "bracket below journey start is skipped",
			distance: 3,
			scheme: &models.PricingScheme{
				Brackets: []models.MileageBracket{
					{MinMiles: 0, MaxMiles: fp(5), PerMileRate: fp(2), Order: 1},
					{MinMiles: 5, PerMileRate: fp(4), Order: 2},
				},
			},
			wantPrice: 6, // Second bracket never reached.
			wantOK:    true,
		},
		{
			name:     "malformed bracket contributes nothing",
			distance: 10,
			scheme: &models.PricingScheme{
				BaseFare: 12,
				Brackets: []models.MileageBracket{
					{MinMiles: 0, MaxMiles: fp(5), Order: 1}, // Neither fixed nor per-mile.
					{MinMiles: 5, PerMileRate: fp(2), Order: 2},
				},
			},
			wantPrice: 22, // 12 base + 5 metered miles; broken bracket is a no-op.
			wantOK:    true,
		},
		{
			name:     "brackets evaluated in order field, not slice order",
			distance: 10,
			scheme: &models.PricingScheme{
				Brackets: []models.MileageBracket{
					{MinMiles: 5, MaxMiles: fp(15), PerMileRate: fp(2), Order: 2},
					{MinMiles: 0, MaxMiles: fp(5), FixedPrice: fp(20), Order: 1},
				},
			},
			wantPrice: 30, // Same tariff as the canonical scheme, stored shuffled.
			wantOK:    true,
		},
		{
			name:      "zero distance floored at minimum fare",
			distance:  0,
			scheme:    tieredScheme(),
			wantPrice: 25,
			wantOK:    true,
		},
		{
			name:     "no brackets cannot price",
			distance: 10,
			scheme:   &models.PricingScheme{BaseFare: 10, MinimumFare: 25},
			wantOK:   false,
		},
		{
			name:     "nil scheme cannot price",
			distance: 10,
			scheme:   nil,
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := BracketPrice(tt.distance, tt.scheme)
			if ok != tt.wantOK {
				t.Fatalf("BracketPrice() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && math.Abs(got-tt.wantPrice) > 1e-9 {
				t.Errorf("BracketPrice() = %f, want %f", got, tt.wantPrice)
			}
		})
	}
}

// Whatever the distance, a priced journey never comes out below the
// scheme's minimum fare.
func TestBracketPrice_MinimumFareHolds(t *testing.T) {
	scheme := tieredScheme()
	scheme.MinimumFare = 32.5

	for d := 0.0; d <= 60; d += 0.5 {
		price, ok := BracketPrice(d, scheme)
		if !ok {
			t.Fatalf("BracketPrice(%f) unexpectedly declined", d)
		}
		if price < scheme.MinimumFare {
			t.Fatalf("BracketPrice(%f) = %f, below minimum fare %f", d, price, scheme.MinimumFare)
		}
	}
}

// Longer journeys never price below shorter ones on the same tariff.
func TestBracketPrice_MonotonicInDistance(t *testing.T) {
	scheme := tieredScheme()

	prev := 0.0
	for d := 0.0; d <= 40; d += 1 {
		price, _ := BracketPrice(d, scheme)
		if price < prev {
			t.Fatalf("price decreased with distance: %f miles -> %f, previous %f", d, price, prev)
		}
		prev = price
	}
}
