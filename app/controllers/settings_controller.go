package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/subkeeper/subkeeper/app/models"
	"github.com/subkeeper/subkeeper/internal/pkg/database"
	"github.com/subkeeper/subkeeper/internal/pkg/usercontext"
)

type reminderSettingsRequest struct {
	RemindersEnabled    *bool   `json:"reminders_enabled"`
	DefaultReminderDays *int    `json:"default_reminder_days"`
	NotifyEmail         *string `json:"notify_email"`
}

// HandleGetReminderSettings returns the user's reminder preferences.
func HandleGetReminderSettings(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	settings, err := models.GetOrCreateUserSettings(database.GetDB(), userCtx.UserID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load user settings")
	}

	return c.JSON(reminderSettingsResponse(settings))
}

// HandleUpdateReminderSettings applies a partial update to the user's
// reminder preferences.
func HandleUpdateReminderSettings(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	var req reminderSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}

	if req.DefaultReminderDays != nil && *req.DefaultReminderDays < 0 {
		return jsonError(c, fiber.StatusUnprocessableEntity, "validation_failed", "default_reminder_days must not be negative")
	}

	db := database.GetDB()
	settings, err := models.GetOrCreateUserSettings(db, userCtx.UserID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load user settings")
	}

	if req.RemindersEnabled != nil {
		settings.RemindersEnabled = *req.RemindersEnabled
	}
	if req.DefaultReminderDays != nil {
		settings.DefaultReminderDays = *req.DefaultReminderDays
	}
	if req.NotifyEmail != nil {
		settings.NotifyEmail = *req.NotifyEmail
	}

	if err := db.Save(settings).Error; err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to store user settings")
	}

	return c.JSON(reminderSettingsResponse(settings))
}

func reminderSettingsResponse(settings *models.UserSettings) fiber.Map {
	return fiber.Map{
		"reminders_enabled":     settings.RemindersEnabled,
		"default_reminder_days": settings.DefaultReminderDays,
		"notify_email":          settings.NotifyEmail,
	}
}
