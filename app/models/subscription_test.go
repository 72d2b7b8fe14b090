package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubscription() Subscription {
	return Subscription{
		UserID:          1,
		Name:            "Netflix",
		Description:     "Standard subscription",
		Amount:          decimal.RequireFromString("15.99"),
		Currency:        "USD",
		BillingCycle:    "monthly",
		StartDate:       time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC),
		NextPaymentDate: time.Date(2023, time.February, 15, 0, 0, 0, 0, time.UTC),
		Category:        "Entertainment",
		Website:         "https://netflix.com",
		ReminderDays:    3,
		Active:          true,
	}
}

func TestSubscriptionValidate(t *testing.T) {
	s := validSubscription()
	require.NoError(t, s.Validate())
}

func TestSubscriptionValidateRejectsBadFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Subscription)
	}{
		{name: "empty name", mutate: func(s *Subscription) { s.Name = "" }},
		{name: "negative amount", mutate: func(s *Subscription) { s.Amount = decimal.RequireFromString("-1") }},
		{name: "bad currency", mutate: func(s *Subscription) { s.Currency = "DOLLARS" }},
		{name: "unknown cycle", mutate: func(s *Subscription) { s.BillingCycle = "daily" }},
		{name: "missing start date", mutate: func(s *Subscription) { s.StartDate = time.Time{} }},
		{name: "missing category", mutate: func(s *Subscription) { s.Category = "" }},
		{name: "negative reminder days", mutate: func(s *Subscription) { s.ReminderDays = -1 }},
		{name: "invalid website", mutate: func(s *Subscription) { s.Website = "not a url" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSubscription()
			tt.mutate(&s)
			assert.Error(t, s.Validate())
		})
	}
}

func TestSubscriptionZeroAmountAllowed(t *testing.T) {
	s := validSubscription()
	s.Amount = decimal.Zero
	assert.NoError(t, s.Validate())
}
