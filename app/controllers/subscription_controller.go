package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/subkeeper/subkeeper/app/models"
	"github.com/subkeeper/subkeeper/app/repository"
	"github.com/subkeeper/subkeeper/internal/pkg/billing"
	"github.com/subkeeper/subkeeper/internal/pkg/usercontext"
)

// subscriptionRequest is the JSON body for create and update. Pointer fields
// distinguish "absent" from zero values on partial updates.
type subscriptionRequest struct {
	Name            *string          `json:"name"`
	Description     *string          `json:"description"`
	Amount          *decimal.Decimal `json:"amount"`
	Currency        *string          `json:"currency"`
	BillingCycle    *string          `json:"billing_cycle"`
	StartDate       *string          `json:"start_date"`
	NextPaymentDate *string          `json:"next_payment_date"`
	Category        *string          `json:"category"`
	Logo            *string          `json:"logo"`
	Website         *string          `json:"website"`
	ReminderDays    *int             `json:"reminder_days"`
	Color           *string          `json:"color"`
	Active          *bool            `json:"active"`
}

// HandleSubscriptionList returns all subscriptions owned by the current user.
func HandleSubscriptionList(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	repo := repository.GetGlobalFactory().GetSubscriptionRepository()
	subs, err := repo.GetByUserID(userCtx.UserID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load subscriptions")
	}

	now := time.Now()
	items := make([]fiber.Map, 0, len(subs))
	for i := range subs {
		items = append(items, subscriptionResponse(&subs[i], now))
	}

	return c.JSON(fiber.Map{"subscriptions": items})
}

// HandleSubscriptionGet returns a single owned subscription.
func HandleSubscriptionGet(c *fiber.Ctx) error {
	sub, errResp := loadOwnedSubscription(c)
	if sub == nil {
		return errResp
	}

	return c.JSON(fiber.Map{"subscription": subscriptionResponse(sub, time.Now())})
}

// HandleSubscriptionCreate stores a new subscription. The next payment date is
// projected from the start date by the billing engine unless the client sets
// it explicitly.
func HandleSubscriptionCreate(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	var req subscriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}

	sub := models.Subscription{
		UserID:       userCtx.UserID,
		Currency:     models.DefaultCurrency,
		BillingCycle: string(billing.CycleMonthly),
		ReminderDays: models.DefaultReminderDays,
		Active:       true,
	}
	if err := applySubscriptionRequest(&sub, &req); err != nil {
		return subscriptionInputError(c, err)
	}

	cycle, err := billing.ParseCycle(sub.BillingCycle)
	if err != nil {
		return subscriptionInputError(c, err)
	}

	if req.NextPaymentDate == nil {
		next, err := billing.NextPaymentDate(sub.StartDate, cycle)
		if err != nil {
			return subscriptionInputError(c, err)
		}
		sub.NextPaymentDate = next
	}

	if err := sub.Validate(); err != nil {
		return jsonError(c, fiber.StatusUnprocessableEntity, "validation_failed", err.Error())
	}

	repo := repository.GetGlobalFactory().GetSubscriptionRepository()
	if err := repo.Create(&sub); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to create subscription")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"subscription": subscriptionResponse(&sub, time.Now())})
}

// HandleSubscriptionUpdate applies a partial field update to an owned
// subscription. Setting the next payment date by hand is allowed and not
// re-derived afterwards.
func HandleSubscriptionUpdate(c *fiber.Ctx) error {
	sub, errResp := loadOwnedSubscription(c)
	if sub == nil {
		return errResp
	}

	var req subscriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}

	if err := applySubscriptionRequest(sub, &req); err != nil {
		return subscriptionInputError(c, err)
	}

	if _, err := billing.ParseCycle(sub.BillingCycle); err != nil {
		return subscriptionInputError(c, err)
	}

	if err := sub.Validate(); err != nil {
		return jsonError(c, fiber.StatusUnprocessableEntity, "validation_failed", err.Error())
	}

	repo := repository.GetGlobalFactory().GetSubscriptionRepository()
	if err := repo.Update(sub); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to update subscription")
	}

	return c.JSON(fiber.Map{"subscription": subscriptionResponse(sub, time.Now())})
}

// HandleSubscriptionDelete removes an owned subscription.
func HandleSubscriptionDelete(c *fiber.Ctx) error {
	sub, errResp := loadOwnedSubscription(c)
	if sub == nil {
		return errResp
	}

	repo := repository.GetGlobalFactory().GetSubscriptionRepository()
	if err := repo.Delete(sub.ID); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to delete subscription")
	}

	return c.JSON(fiber.Map{"message": "Subscription removed"})
}

// HandleSubscriptionUpcoming returns the user's active subscriptions due
// within the requested lookahead window (default 7 days).
func HandleSubscriptionUpcoming(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	days := billing.DefaultUpcomingWindowDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return jsonError(c, fiber.StatusBadRequest, "bad_request", "days must be a non-negative integer")
		}
		days = parsed
	}

	repo := repository.GetGlobalFactory().GetSubscriptionRepository()
	subs, err := repo.GetByUserID(userCtx.UserID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load subscriptions")
	}

	now := time.Now()
	upcoming := billing.UpcomingPayments(subs, now, days)

	items := make([]fiber.Map, 0, len(upcoming))
	for i := range upcoming {
		items = append(items, subscriptionResponse(&upcoming[i], now))
	}

	return c.JSON(fiber.Map{
		"days_ahead":    days,
		"subscriptions": items,
	})
}

// loadOwnedSubscription resolves the :id route param and enforces ownership.
// A nil subscription means the error response has already been written.
func loadOwnedSubscription(c *fiber.Ctx) (*models.Subscription, error) {
	userCtx := usercontext.GetUserContext(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		return nil, jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid subscription id")
	}

	repo := repository.GetGlobalFactory().GetSubscriptionRepository()
	sub, err := repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, jsonError(c, fiber.StatusNotFound, "not_found", "Subscription not found")
		}
		return nil, jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load subscription")
	}

	if sub.UserID != userCtx.UserID {
		return nil, jsonError(c, fiber.StatusUnauthorized, "unauthorized", "Not authorized")
	}

	return sub, nil
}

func applySubscriptionRequest(sub *models.Subscription, req *subscriptionRequest) error {
	if req.Name != nil {
		sub.Name = *req.Name
	}
	if req.Description != nil {
		sub.Description = *req.Description
	}
	if req.Amount != nil {
		sub.Amount = *req.Amount
	}
	if req.Currency != nil {
		sub.Currency = *req.Currency
	}
	if req.BillingCycle != nil {
		cycle, err := billing.ParseCycle(*req.BillingCycle)
		if err != nil {
			return err
		}
		sub.BillingCycle = string(cycle)
	}
	if req.StartDate != nil {
		t, err := parseDate(*req.StartDate)
		if err != nil {
			return billing.ErrInvalidDate
		}
		sub.StartDate = t
	}
	if req.NextPaymentDate != nil {
		t, err := parseDate(*req.NextPaymentDate)
		if err != nil {
			return billing.ErrInvalidDate
		}
		sub.NextPaymentDate = t
	}
	if req.Category != nil {
		sub.Category = *req.Category
	}
	if req.Logo != nil {
		sub.Logo = *req.Logo
	}
	if req.Website != nil {
		sub.Website = *req.Website
	}
	if req.ReminderDays != nil {
		sub.ReminderDays = *req.ReminderDays
	}
	if req.Color != nil {
		sub.Color = *req.Color
	}
	if req.Active != nil {
		sub.Active = *req.Active
	}
	return nil
}

func subscriptionInputError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, billing.ErrInvalidCycle):
		return jsonError(c, fiber.StatusUnprocessableEntity, "invalid_cycle", err.Error())
	case errors.Is(err, billing.ErrInvalidDate):
		return jsonError(c, fiber.StatusBadRequest, "invalid_date", err.Error())
	default:
		return jsonError(c, fiber.StatusBadRequest, "bad_request", err.Error())
	}
}

func subscriptionResponse(sub *models.Subscription, now time.Time) fiber.Map {
	days := billing.DaysTillPayment(sub.NextPaymentDate, now)
	status := billing.Classify(sub.NextPaymentDate, sub.ReminderDays, now)

	return fiber.Map{
		"id":                sub.ID,
		"name":              sub.Name,
		"description":       sub.Description,
		"amount":            sub.Amount,
		"currency":          sub.Currency,
		"billing_cycle":     sub.BillingCycle,
		"start_date":        formatDate(sub.StartDate),
		"next_payment_date": formatDate(sub.NextPaymentDate),
		"category":          sub.Category,
		"logo":              sub.Logo,
		"website":           sub.Website,
		"reminder_days":     sub.ReminderDays,
		"color":             sub.Color,
		"active":            sub.Active,
		"days_till_payment": days,
		"status":            status,
		"status_label":      status.Label(),
		"days_label":        billing.DaysLabel(days),
		"created_at":        sub.CreatedAt.UTC().Format(time.RFC3339),
		"updated_at":        sub.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
