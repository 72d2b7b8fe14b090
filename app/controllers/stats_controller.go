package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/subkeeper/subkeeper/app/repository"
	"github.com/subkeeper/subkeeper/internal/pkg/billing"
	"github.com/subkeeper/subkeeper/internal/pkg/usercontext"
	"github.com/subkeeper/subkeeper/internal/pkg/viewmodel"
)

// HandleStats computes the dashboard figures for the current user: monthly and
// yearly spending, counts, upcoming payments and the category breakdown. All
// date math runs against a single "now" captured at the start of the request.
func HandleStats(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	repo := repository.GetGlobalFactory().GetSubscriptionRepository()
	subs, err := repo.GetByUserID(userCtx.UserID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load subscriptions")
	}

	now := time.Now()

	monthly, err := billing.MonthlySpending(subs)
	if err != nil {
		if errors.Is(err, billing.ErrInvalidCycle) {
			return jsonError(c, fiber.StatusUnprocessableEntity, "invalid_cycle", err.Error())
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to compute spending")
	}
	yearly := billing.YearlySpending(monthly)

	average, err := billing.AveragePerSubscription(subs)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to compute spending")
	}

	upcoming := billing.UpcomingPayments(subs, now, billing.DefaultUpcomingWindowDays)

	// Display figures assume a single currency per user; mixed-currency sets
	// are summed as-is, conversion is out of scope.
	currency := viewmodel.DominantCurrency(subs)

	return c.JSON(fiber.Map{
		"monthly_spending":         monthly.Round(2),
		"yearly_spending":          yearly.Round(2),
		"monthly_spending_display": viewmodel.FormatAmount(monthly, currency),
		"yearly_spending_display":  viewmodel.FormatAmount(yearly, currency),
		"average_per_subscription": average.Round(2),
		"active_subscriptions":     billing.ActiveCount(subs),
		"total_subscriptions":      len(subs),
		"upcoming_payments":        len(upcoming),
		"upcoming_window_days":     billing.DefaultUpcomingWindowDays,
		"by_category":              billing.CountByCategory(subs),
	})
}
