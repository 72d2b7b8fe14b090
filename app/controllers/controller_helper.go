package controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

// jsonError writes the standard error envelope used by all API handlers.
func jsonError(c *fiber.Ctx, status int, code string, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error":   code,
		"message": message,
	})
}

// parseIDParam reads a numeric route parameter.
func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// dateOnly is the wire format for calendar dates. Parsing also accepts full
// RFC3339 timestamps, since the previous web client sent those.
const dateOnly = "2006-01-02"

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(dateOnly, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

func formatDate(t time.Time) string {
	return t.Format(dateOnly)
}

func formatTimePtr(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}
