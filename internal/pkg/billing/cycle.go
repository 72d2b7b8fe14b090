package billing

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Cycle is the recurrence interval of a subscription. The set is closed;
// anything else is rejected with ErrInvalidCycle.
type Cycle string

const (
	CycleWeekly    Cycle = "weekly"
	CycleBiweekly  Cycle = "biweekly"
	CycleMonthly   Cycle = "monthly"
	CycleQuarterly Cycle = "quarterly"
	CycleYearly    Cycle = "yearly"
)

var (
	// ErrInvalidCycle is returned for billing cycle values outside the closed set.
	ErrInvalidCycle = errors.New("invalid billing cycle")
	// ErrInvalidDate is returned when an anchor date is missing or unusable.
	ErrInvalidDate = errors.New("invalid anchor date")
)

// Cycles lists all supported billing cycles.
func Cycles() []Cycle {
	return []Cycle{CycleWeekly, CycleBiweekly, CycleMonthly, CycleQuarterly, CycleYearly}
}

// ParseCycle normalizes and validates a billing cycle value.
func ParseCycle(s string) (Cycle, error) {
	switch c := Cycle(strings.ToLower(strings.TrimSpace(s))); c {
	case CycleWeekly, CycleBiweekly, CycleMonthly, CycleQuarterly, CycleYearly:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidCycle, s)
	}
}

// IsValid reports whether the cycle belongs to the supported set.
func (c Cycle) IsValid() bool {
	_, err := ParseCycle(string(c))
	return err == nil
}

// NextPaymentDate projects the anchor date exactly one billing cycle forward
// using calendar arithmetic.
//
// Month- and year-based cycles use AddDate semantics: when the target month is
// shorter than the anchor's day-of-month the date overflows into the following
// month (2023-01-31 + monthly = 2023-03-03, 2024-02-29 + yearly = 2025-03-01).
// This matches the stored dates produced by earlier versions and is applied
// consistently for monthly, quarterly and yearly cycles.
func NextPaymentDate(anchor time.Time, cycle Cycle) (time.Time, error) {
	if anchor.IsZero() {
		return time.Time{}, fmt.Errorf("%w: anchor date is not set", ErrInvalidDate)
	}

	switch cycle {
	case CycleWeekly:
		return anchor.AddDate(0, 0, 7), nil
	case CycleBiweekly:
		return anchor.AddDate(0, 0, 14), nil
	case CycleMonthly:
		return anchor.AddDate(0, 1, 0), nil
	case CycleQuarterly:
		return anchor.AddDate(0, 3, 0), nil
	case CycleYearly:
		return anchor.AddDate(1, 0, 0), nil
	default:
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidCycle, cycle)
	}
}
