package utils

import (
	"math"
	"strings"
	"testing"

	"voyago/config"
)

func TestRoundMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{12.345, 12.35},
		{12.344, 12.34},
		{-3.005, -3},
		{99.999, 100},
	}
	for _, tt := range tests {
		if got := RoundMoney(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("RoundMoney(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestConvertCurrency(t *testing.T) {
	prev := config.AppConfig.CurrencyRates
	config.AppConfig.CurrencyRates = map[string]float64{
		"GBP": 1.0,
		"EUR": 1.2,
		"USD": 1.25,
	}
	t.Cleanup(func() { config.AppConfig.CurrencyRates = prev })

	tests := []struct {
		name    string
		amount  float64
		from    string
		to      string
		want    float64
		wantErr string
	}{
		{name: "same currency is identity", amount: 42.424, from: "GBP", to: "GBP", want: 42.42},
		{name: "case insensitive codes", amount: 10, from: "gbp", to: "eur", want: 12},
		{name: "pivot through the default", amount: 120, from: "EUR", to: "USD", want: 125},
		{name: "to the default", amount: 12.5, from: "USD", to: "GBP", want: 10},
		{name: "unknown source", amount: 10, from: "JPY", to: "GBP", wantErr: "JPY"},
		{name: "unknown target", amount: 10, from: "GBP", to: "CHF", wantErr: "CHF"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertCurrency(tt.amount, tt.from, tt.to)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("error = %v, want it to name %s", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ConvertCurrency: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("ConvertCurrency(%v, %s, %s) = %v, want %v", tt.amount, tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestConvertCurrencyRejectsZeroRate(t *testing.T) {
	prev := config.AppConfig.CurrencyRates
	config.AppConfig.CurrencyRates = map[string]float64{"GBP": 1.0, "XXX": 0}
	t.Cleanup(func() { config.AppConfig.CurrencyRates = prev })

	if _, err := ConvertCurrency(5, "XXX", "GBP"); err == nil {
		t.Fatalf("expected an error for a zero-valued rate")
	}
}
