// Package viewmodel holds presentation adapters that sit between the billing
// engine and whatever renders its figures. Formatting is display-only and
// never feeds back into spend computation.
package viewmodel

import (
	"github.com/shopspring/decimal"

	"github.com/subkeeper/subkeeper/app/models"
)

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CHF": "CHF ",
	"SEK": "kr ",
}

// FormatAmount renders an amount with its currency symbol, falling back to
// "CODE amount" for codes without a known symbol.
func FormatAmount(amount decimal.Decimal, currency string) string {
	if symbol, ok := currencySymbols[currency]; ok {
		return symbol + amount.StringFixed(2)
	}
	if currency == "" {
		return amount.StringFixed(2)
	}
	return currency + " " + amount.StringFixed(2)
}

// DominantCurrency returns the currency shared by the most active
// subscriptions, defaulting to USD for an empty set. Aggregate displays use a
// single symbol; stored per-subscription currencies stay untouched.
func DominantCurrency(subs []models.Subscription) string {
	counts := make(map[string]int)
	for _, sub := range subs {
		if !sub.Active {
			continue
		}
		counts[sub.Currency]++
	}

	best := models.DefaultCurrency
	bestCount := 0
	for currency, count := range counts {
		if count > bestCount || (count == bestCount && currency < best && bestCount > 0) {
			best = currency
			bestCount = count
		}
	}
	return best
}
