package controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/subkeeper/subkeeper/app/repository"
	"github.com/subkeeper/subkeeper/internal/pkg/usercontext"
)

const notificationPageSize = 50

// HandleNotificationList returns the user's payment reminders, newest first.
func HandleNotificationList(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	offset := 0
	if raw := c.Query("offset"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			offset = parsed
		}
	}

	repo := repository.GetGlobalFactory().GetNotificationRepository()
	notifications, err := repo.GetByUserID(userCtx.UserID, offset, notificationPageSize)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load notifications")
	}

	unread, err := repo.CountUnread(userCtx.UserID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to count notifications")
	}

	items := make([]fiber.Map, 0, len(notifications))
	for _, n := range notifications {
		items = append(items, fiber.Map{
			"id":           n.ID,
			"type":         n.Type,
			"content":      n.Content,
			"is_read":      n.IsRead,
			"reference_id": n.ReferenceID,
			"created_at":   n.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	return c.JSON(fiber.Map{
		"notifications": items,
		"unread_count":  unread,
	})
}

// HandleNotificationMarkAllRead marks every unread notification as read.
func HandleNotificationMarkAllRead(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	repo := repository.GetGlobalFactory().GetNotificationRepository()
	if err := repo.MarkAllRead(userCtx.UserID); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to update notifications")
	}

	return c.JSON(fiber.Map{"message": "all notifications marked read"})
}
