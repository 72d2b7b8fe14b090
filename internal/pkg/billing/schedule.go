package billing

import (
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/subkeeper/subkeeper/app/models"
)

// DefaultUpcomingWindowDays is the lookahead used when callers do not supply one.
const DefaultUpcomingWindowDays = 7

// PaymentStatus classifies how urgent a subscription's next payment is.
type PaymentStatus string

const (
	StatusDueToday PaymentStatus = "due_today"
	StatusDueSoon  PaymentStatus = "due_soon"
	StatusUpcoming PaymentStatus = "upcoming"
)

// Label returns the status badge text.
func (s PaymentStatus) Label() string {
	switch s {
	case StatusDueToday:
		return "Due Today"
	case StatusDueSoon:
		return "Due Soon"
	default:
		return "Upcoming"
	}
}

// UpcomingPayments returns the active subscriptions whose next payment date
// falls within [now, now+daysAhead], inclusive of both endpoints. Payments
// already in the past are overdue, not upcoming, and are excluded. The result
// is sorted by next payment date and never shares backing storage with the
// input.
func UpcomingPayments(subs []models.Subscription, now time.Time, daysAhead int) []models.Subscription {
	end := now.AddDate(0, 0, daysAhead)

	upcoming := make([]models.Subscription, 0)
	for _, sub := range subs {
		if !sub.Active {
			continue
		}
		due := sub.NextPaymentDate
		if due.Before(now) || due.After(end) {
			continue
		}
		upcoming = append(upcoming, sub)
	}

	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].NextPaymentDate.Before(upcoming[j].NextPaymentDate)
	})

	return upcoming
}

// DaysTillPayment returns the number of whole days between now and the next
// payment, rounding fractional days up: a payment twelve hours away counts as
// one day left, not zero. Past dates yield negative values.
func DaysTillPayment(next, now time.Time) int {
	return int(math.Ceil(next.Sub(now).Hours() / 24))
}

// Classify tags a subscription's urgency relative to now and its reminder
// lead time. Zero or negative days remaining is due today (overdue payments
// carry the same urgency), within the reminder window is due soon, anything
// later is upcoming.
func Classify(next time.Time, reminderDays int, now time.Time) PaymentStatus {
	days := DaysTillPayment(next, now)
	switch {
	case days <= 0:
		return StatusDueToday
	case days <= reminderDays:
		return StatusDueSoon
	default:
		return StatusUpcoming
	}
}

// DaysLabel renders a days-remaining value as display text, distinguishing
// overdue from due-today even though both classify identically.
func DaysLabel(days int) string {
	switch {
	case days < 0:
		return "Overdue"
	case days == 0:
		return "Due Today"
	case days == 1:
		return "1 day left"
	default:
		return strconv.Itoa(days) + " days left"
	}
}
