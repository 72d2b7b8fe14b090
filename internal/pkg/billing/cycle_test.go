package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseCycle(t *testing.T) {
	tests := []struct {
		in      string
		want    Cycle
		wantErr bool
	}{
		{in: "weekly", want: CycleWeekly},
		{in: "biweekly", want: CycleBiweekly},
		{in: "monthly", want: CycleMonthly},
		{in: "quarterly", want: CycleQuarterly},
		{in: "yearly", want: CycleYearly},
		{in: " Monthly ", want: CycleMonthly},
		{in: "daily", wantErr: true},
		{in: "", wantErr: true},
		{in: "bimonthly", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseCycle(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidCycle, "ParseCycle(%q)", tt.in)
			continue
		}
		require.NoError(t, err, "ParseCycle(%q)", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestNextPaymentDate(t *testing.T) {
	tests := []struct {
		name   string
		anchor time.Time
		cycle  Cycle
		want   time.Time
	}{
		{name: "weekly", anchor: date(2023, time.January, 15), cycle: CycleWeekly, want: date(2023, time.January, 22)},
		{name: "biweekly", anchor: date(2023, time.January, 15), cycle: CycleBiweekly, want: date(2023, time.January, 29)},
		{name: "monthly mid-month", anchor: date(2023, time.January, 15), cycle: CycleMonthly, want: date(2023, time.February, 15)},
		{name: "monthly across year", anchor: date(2023, time.December, 10), cycle: CycleMonthly, want: date(2024, time.January, 10)},
		{name: "quarterly", anchor: date(2023, time.January, 15), cycle: CycleQuarterly, want: date(2023, time.April, 15)},
		{name: "yearly", anchor: date(2023, time.May, 10), cycle: CycleYearly, want: date(2024, time.May, 10)},
		// Month-end policy is overflow, not clamping.
		{name: "monthly overflow jan 31", anchor: date(2023, time.January, 31), cycle: CycleMonthly, want: date(2023, time.March, 3)},
		{name: "monthly overflow into leap feb", anchor: date(2024, time.January, 31), cycle: CycleMonthly, want: date(2024, time.March, 2)},
		{name: "quarterly overflow nov 30", anchor: date(2023, time.November, 30), cycle: CycleQuarterly, want: date(2024, time.March, 1)},
		{name: "yearly overflow feb 29", anchor: date(2024, time.February, 29), cycle: CycleYearly, want: date(2025, time.March, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextPaymentDate(tt.anchor, tt.cycle)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextPaymentDateDeterministic(t *testing.T) {
	anchor := date(2023, time.January, 15)
	for _, cycle := range Cycles() {
		first, err := NextPaymentDate(anchor, cycle)
		require.NoError(t, err)
		second, err := NextPaymentDate(anchor, cycle)
		require.NoError(t, err)
		assert.Equal(t, first, second, "cycle %s", cycle)
	}
}

func TestNextPaymentDateRejectsBadInput(t *testing.T) {
	_, err := NextPaymentDate(date(2023, time.January, 15), Cycle("daily"))
	assert.ErrorIs(t, err, ErrInvalidCycle)

	_, err = NextPaymentDate(time.Time{}, CycleMonthly)
	assert.ErrorIs(t, err, ErrInvalidDate)
}
