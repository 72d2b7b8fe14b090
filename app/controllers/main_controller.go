package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/subkeeper/subkeeper/internal/pkg/statistics"
	"github.com/subkeeper/subkeeper/internal/pkg/usercontext"
)

// HandleStart renders the landing page with service-wide counters.
func HandleStart(c *fiber.Ctx) error {
	stats := statistics.GetStatistics()

	return c.Render("index", fiber.Map{
		"Title":              "SubKeeper",
		"LoggedIn":           usercontext.IsLoggedIn(c),
		"Username":           usercontext.GetUsername(c),
		"TotalUsers":         stats.TotalUsers,
		"TotalSubscriptions": stats.TotalSubscriptions,
	})
}

// HandlePing is the API liveness check.
func HandlePing(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"ping": "pong"})
}
