package billing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/subkeeper/subkeeper/app/models"
)

var (
	twelve = decimal.NewFromInt(12)
	three  = decimal.NewFromInt(3)

	weeksPerYear      = decimal.NewFromInt(52)
	fortnightsPerYear = decimal.NewFromInt(26)
)

// MonthlyAmount normalizes a periodic amount into its monthly equivalent so
// subscriptions on different cycles can be summed.
func MonthlyAmount(amount decimal.Decimal, cycle Cycle) (decimal.Decimal, error) {
	switch cycle {
	case CycleWeekly:
		return amount.Mul(weeksPerYear).Div(twelve), nil
	case CycleBiweekly:
		return amount.Mul(fortnightsPerYear).Div(twelve), nil
	case CycleMonthly:
		return amount, nil
	case CycleQuarterly:
		return amount.Div(three), nil
	case CycleYearly:
		return amount.Div(twelve), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidCycle, cycle)
	}
}

// MonthlySpending sums the monthly equivalents of all active subscriptions.
// Inactive subscriptions contribute zero. A bad cycle value on an active
// subscription fails the whole computation instead of silently mis-costing it.
func MonthlySpending(subs []models.Subscription) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, sub := range subs {
		if !sub.Active {
			continue
		}
		monthly, err := MonthlyAmount(sub.Amount, Cycle(sub.BillingCycle))
		if err != nil {
			return decimal.Zero, fmt.Errorf("subscription %d: %w", sub.ID, err)
		}
		total = total.Add(monthly)
	}
	return total, nil
}

// YearlySpending derives the yearly figure from an already computed monthly
// figure, keeping the two consistent by construction.
func YearlySpending(monthly decimal.Decimal) decimal.Decimal {
	return monthly.Mul(twelve)
}

// ActiveCount returns how many of the given subscriptions are active.
func ActiveCount(subs []models.Subscription) int {
	n := 0
	for _, sub := range subs {
		if sub.Active {
			n++
		}
	}
	return n
}

// AveragePerSubscription returns the monthly spending divided by the number of
// active subscriptions, or zero when there are none.
func AveragePerSubscription(subs []models.Subscription) (decimal.Decimal, error) {
	active := ActiveCount(subs)
	if active == 0 {
		return decimal.Zero, nil
	}
	monthly, err := MonthlySpending(subs)
	if err != nil {
		return decimal.Zero, err
	}
	return monthly.Div(decimal.NewFromInt(int64(active))), nil
}

// CountByCategory counts active subscriptions per category.
func CountByCategory(subs []models.Subscription) map[string]int {
	categories := make(map[string]int)
	for _, sub := range subs {
		if !sub.Active {
			continue
		}
		categories[sub.Category]++
	}
	return categories
}
