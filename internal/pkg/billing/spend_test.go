package billing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subkeeper/subkeeper/app/models"
)

func sub(amount string, cycle Cycle, active bool) models.Subscription {
	return models.Subscription{
		Name:            "sub",
		Amount:          decimal.RequireFromString(amount),
		BillingCycle:    string(cycle),
		Category:        "Other",
		Active:          active,
		NextPaymentDate: date(2025, time.June, 1),
	}
}

func TestMonthlyAmount(t *testing.T) {
	tests := []struct {
		cycle Cycle
		in    string
		want  string
	}{
		{cycle: CycleWeekly, in: "12", want: "52"},       // 12*52/12
		{cycle: CycleBiweekly, in: "6", want: "13"},      // 6*26/12
		{cycle: CycleMonthly, in: "15.99", want: "15.99"},
		{cycle: CycleQuarterly, in: "30", want: "10"},
		{cycle: CycleYearly, in: "120", want: "10"},
	}

	for _, tt := range tests {
		got, err := MonthlyAmount(decimal.RequireFromString(tt.in), tt.cycle)
		require.NoError(t, err, "cycle %s", tt.cycle)
		assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
			"MonthlyAmount(%s, %s) = %s, want %s", tt.in, tt.cycle, got, tt.want)
	}

	_, err := MonthlyAmount(decimal.NewFromInt(10), Cycle("daily"))
	assert.ErrorIs(t, err, ErrInvalidCycle)
}

func TestMonthlySpendingEmpty(t *testing.T) {
	total, err := MonthlySpending(nil)
	require.NoError(t, err)
	assert.True(t, total.IsZero())

	total, err = MonthlySpending([]models.Subscription{sub("9.99", CycleMonthly, false)})
	require.NoError(t, err)
	assert.True(t, total.IsZero(), "inactive subscriptions must contribute zero")
}

func TestMonthlySpendingScenario(t *testing.T) {
	subs := []models.Subscription{
		sub("15.99", CycleMonthly, true),
		sub("119", CycleYearly, true),
	}

	monthly, err := MonthlySpending(subs)
	require.NoError(t, err)
	assert.Equal(t, "25.9067", monthly.Round(4).String())

	avg, err := AveragePerSubscription(subs)
	require.NoError(t, err)
	assert.Equal(t, "12.9533", avg.Round(4).String())
}

func TestMonthlySpendingOrderInvariant(t *testing.T) {
	a := sub("4.50", CycleWeekly, true)
	b := sub("9.99", CycleMonthly, true)
	c := sub("120", CycleYearly, true)

	forward, err := MonthlySpending([]models.Subscription{a, b, c})
	require.NoError(t, err)
	backward, err := MonthlySpending([]models.Subscription{c, b, a})
	require.NoError(t, err)

	assert.True(t, forward.Equal(backward))
}

func TestYearlySpendingIsTwelveTimesMonthly(t *testing.T) {
	subs := []models.Subscription{
		sub("15.99", CycleMonthly, true),
		sub("119", CycleYearly, true),
		sub("7", CycleBiweekly, true),
		sub("45", CycleQuarterly, false),
	}

	monthly, err := MonthlySpending(subs)
	require.NoError(t, err)
	yearly := YearlySpending(monthly)

	assert.True(t, yearly.Equal(monthly.Mul(decimal.NewFromInt(12))))
}

func TestMonthlySpendingRejectsBadCycle(t *testing.T) {
	subs := []models.Subscription{sub("10", Cycle("daily"), true)}

	_, err := MonthlySpending(subs)
	assert.ErrorIs(t, err, ErrInvalidCycle)

	// The same bad row is ignored once inactive.
	subs[0].Active = false
	total, err := MonthlySpending(subs)
	require.NoError(t, err)
	assert.True(t, total.IsZero())
}

func TestAveragePerSubscriptionNoActive(t *testing.T) {
	avg, err := AveragePerSubscription(nil)
	require.NoError(t, err)
	assert.True(t, avg.IsZero())

	avg, err = AveragePerSubscription([]models.Subscription{sub("9.99", CycleMonthly, false)})
	require.NoError(t, err)
	assert.True(t, avg.IsZero())
}

func TestCountByCategory(t *testing.T) {
	a := sub("10", CycleMonthly, true)
	a.Category = "Music"
	b := sub("10", CycleMonthly, true)
	b.Category = "Music"
	c := sub("10", CycleMonthly, true)
	c.Category = "Software"
	d := sub("10", CycleMonthly, false)
	d.Category = "Entertainment"

	got := CountByCategory([]models.Subscription{a, b, c, d})

	assert.Equal(t, map[string]int{"Music": 2, "Software": 1}, got)
}
