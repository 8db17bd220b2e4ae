package booking

import (
	"testing"

	"voyago/models"
)

func TestComputeBreakdown(t *testing.T) {
	tests := []struct {
		name            string
		customerPrice   float64
		driverPrice     float64
		extras          []models.BookingExtra
		wantExtrasTotal float64
		wantProfit      float64
	}{
		{
			name:          "no extras",
			customerPrice: 85,
			driverPrice:   50,
			wantProfit:    35,
		},
		{
			name:          "payout renegotiated down raises profit",
			customerPrice: 85,
			driverPrice:   45,
			wantProfit:    40,
		},
		{
			name:          "customer-only extra is pure margin",
			customerPrice: 100,
			driverPrice:   60,
			extras: []models.BookingExtra{
				{Name: "Child seat", Price: 10},
			},
			wantExtrasTotal: 10,
			wantProfit:      50,
		},
		{
			name:          "operator-borne extra cancels out",
			customerPrice: 100,
			driverPrice:   60,
			extras: []models.BookingExtra{
				{Name: "Waiting time", Price: 12, AffectsDriverCost: true},
			},
			wantExtrasTotal: 12,
			wantProfit:      40, // (100+12) - (60+12).
		},
		{
			name:          "mixed extras",
			customerPrice: 100,
			driverPrice:   60,
			extras: []models.BookingExtra{
				{Name: "Child seat", Price: 10},
				{Name: "Waiting time", Price: 12, AffectsDriverCost: true},
			},
			wantExtrasTotal: 22,
			wantProfit:      50, // (100+22) - (60+12).
		},
		{
			name:          "result rounded to two decimal places",
			customerPrice: 100.333,
			driverPrice:   50.111,
			wantProfit:    50.22,
		},
		{
			name:          "loss-making booking keeps its negative profit",
			customerPrice: 50,
			driverPrice:   80,
			wantProfit:    -30,
		},
		{
			name: "zero booking",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeBreakdown(tt.customerPrice, tt.driverPrice, tt.extras)
			if got.ExtrasTotal != tt.wantExtrasTotal {
				t.Errorf("ExtrasTotal = %f, want %f", got.ExtrasTotal, tt.wantExtrasTotal)
			}
			if got.Profit != tt.wantProfit {
				t.Errorf("Profit = %f, want %f", got.Profit, tt.wantProfit)
			}
			if got.CustomerPrice != tt.customerPrice || got.DriverPrice != tt.driverPrice {
				t.Errorf("prices not carried through: %+v", got)
			}
		})
	}
}

func TestComputeBreakdown_NilExtrasNormalised(t *testing.T) {
	got := ComputeBreakdown(85, 50, nil)
	if got.Extras == nil {
		t.Fatal("Extras = nil, want explicit empty slice")
	}
	if len(got.Extras) != 0 {
		t.Fatalf("Extras = %v, want empty", got.Extras)
	}
}
