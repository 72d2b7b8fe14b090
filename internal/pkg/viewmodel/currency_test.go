package viewmodel

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/subkeeper/subkeeper/app/models"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		currency string
		want     string
	}{
		{"usd symbol", "15.99", "USD", "$15.99"},
		{"eur symbol", "9.5", "EUR", "€9.50"},
		{"unknown code", "100", "NOK", "NOK 100.00"},
		{"empty code", "3", "", "3.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tt.amount)
			assert.Equal(t, tt.want, FormatAmount(amount, tt.currency))
		})
	}
}

func TestDominantCurrency(t *testing.T) {
	subs := []models.Subscription{
		{Currency: "EUR", Active: true},
		{Currency: "EUR", Active: true},
		{Currency: "USD", Active: true},
		{Currency: "GBP", Active: false},
	}

	assert.Equal(t, "EUR", DominantCurrency(subs))
}

func TestDominantCurrencyEmptyDefaultsToUSD(t *testing.T) {
	assert.Equal(t, "USD", DominantCurrency(nil))
	assert.Equal(t, "USD", DominantCurrency([]models.Subscription{{Currency: "GBP", Active: false}}))
}
