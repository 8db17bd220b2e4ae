package utils

import (
	"fmt"
	"math"
	"strings"

	"voyago/config"
)

// RoundMoney rounds an amount to two decimal places.
func RoundMoney(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// ConvertCurrency converts an amount between currencies using the static rate
// table from configuration. Rates are expressed as units per the default
// currency, so conversion goes through the default as a pivot.
func ConvertCurrency(amount float64, fromCurrency, toCurrency string) (float64, error) {
	from := strings.ToUpper(fromCurrency)
	to := strings.ToUpper(toCurrency)
	if from == to {
		return RoundMoney(amount), nil
	}

	fromRate, ok := config.AppConfig.CurrencyRates[from]
	if !ok || fromRate == 0 {
		return 0, fmt.Errorf("no conversion rate configured for %s", from)
	}
	toRate, ok := config.AppConfig.CurrencyRates[to]
	if !ok {
		return 0, fmt.Errorf("no conversion rate configured for %s", to)
	}

	converted := amount / fromRate * toRate
	return RoundMoney(converted), nil
}
