package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/subkeeper/subkeeper/app/models"
)

func dueSub(name string, due time.Time, active bool) models.Subscription {
	s := sub("9.99", CycleMonthly, active)
	s.Name = name
	s.NextPaymentDate = due
	return s
}

func TestUpcomingPayments(t *testing.T) {
	now := date(2025, time.May, 1)

	subs := []models.Subscription{
		dueSub("today", now, true),
		dueSub("boundary", now.AddDate(0, 0, 7), true),
		dueSub("past boundary", now.AddDate(0, 0, 8), true),
		dueSub("overdue", now.AddDate(0, 0, -1), true),
		dueSub("inactive", now.AddDate(0, 0, 2), false),
		dueSub("midweek", now.AddDate(0, 0, 3), true),
	}

	got := UpcomingPayments(subs, now, 7)

	names := make([]string, 0, len(got))
	for _, s := range got {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"today", "midweek", "boundary"}, names)
}

func TestUpcomingPaymentsZeroWindow(t *testing.T) {
	now := date(2025, time.May, 1)

	subs := []models.Subscription{
		dueSub("due now", now, true),
		dueSub("tomorrow", now.AddDate(0, 0, 1), true),
		dueSub("inactive due now", now, false),
	}

	got := UpcomingPayments(subs, now, 0)

	assert.Len(t, got, 1)
	assert.Equal(t, "due now", got[0].Name)
}

func TestUpcomingPaymentsDoesNotMutateInput(t *testing.T) {
	now := date(2025, time.May, 1)
	subs := []models.Subscription{
		dueSub("b", now.AddDate(0, 0, 2), true),
		dueSub("a", now.AddDate(0, 0, 1), true),
	}

	_ = UpcomingPayments(subs, now, 7)

	assert.Equal(t, "b", subs[0].Name)
	assert.Equal(t, "a", subs[1].Name)
}

func TestDaysTillPayment(t *testing.T) {
	now := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		next time.Time
		want int
	}{
		{name: "same instant", next: now, want: 0},
		{name: "twelve hours away rounds up", next: now.Add(12 * time.Hour), want: 1},
		{name: "two days", next: date(2025, time.May, 3), want: 2},
		{name: "nine days", next: date(2025, time.May, 10), want: 9},
		{name: "yesterday", next: now.AddDate(0, 0, -1), want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysTillPayment(tt.next, now))
		})
	}
}

func TestClassify(t *testing.T) {
	now := date(2025, time.May, 1)

	tests := []struct {
		name         string
		next         time.Time
		reminderDays int
		want         PaymentStatus
	}{
		{name: "overdue is highest urgency regardless of reminder", next: now.AddDate(0, 0, -1), reminderDays: 0, want: StatusDueToday},
		{name: "due today", next: now, reminderDays: 3, want: StatusDueToday},
		{name: "inside reminder window", next: date(2025, time.May, 3), reminderDays: 3, want: StatusDueSoon},
		{name: "reminder boundary inclusive", next: now.AddDate(0, 0, 3), reminderDays: 3, want: StatusDueSoon},
		{name: "one past the boundary", next: now.AddDate(0, 0, 4), reminderDays: 3, want: StatusUpcoming},
		{name: "far out", next: date(2025, time.May, 10), reminderDays: 3, want: StatusUpcoming},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.next, tt.reminderDays, now))
		})
	}
}

func TestStatusLabels(t *testing.T) {
	assert.Equal(t, "Due Today", StatusDueToday.Label())
	assert.Equal(t, "Due Soon", StatusDueSoon.Label())
	assert.Equal(t, "Upcoming", StatusUpcoming.Label())

	assert.Equal(t, "Overdue", DaysLabel(-2))
	assert.Equal(t, "Due Today", DaysLabel(0))
	assert.Equal(t, "1 day left", DaysLabel(1))
	assert.Equal(t, "9 days left", DaysLabel(9))
}
