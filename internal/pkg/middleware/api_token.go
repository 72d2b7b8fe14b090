package middleware

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/subkeeper/subkeeper/app/models"
	"github.com/subkeeper/subkeeper/app/repository"
	"github.com/subkeeper/subkeeper/internal/pkg/database"
	"github.com/subkeeper/subkeeper/internal/pkg/usercontext"
)

// APITokenAuthMiddleware authenticates requests carrying a user API token.
// A session cookie already resolved by UserContextMiddleware is also accepted,
// so browser and token clients share the same routes.
func APITokenAuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if usercontext.IsLoggedIn(c) {
			return c.Next()
		}

		token := ExtractAPIToken(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized", "message": "Missing API token"})
		}

		db := database.GetDB()
		if db == nil {
			log.Print("api token middleware: database unavailable")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Database unavailable"})
		}

		hash := models.HashAPIToken(token)
		repo := repository.GetGlobalFactory().GetUserRepository()
		user, settings, err := repo.GetByAPITokenHash(hash)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized", "message": "Invalid API token"})
			}
			log.Printf("api token lookup failed: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "API token verification failed"})
		}

		if !user.IsActive() {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden", "message": "User inactive"})
		}

		// Refresh last-used timestamp best-effort.
		now := time.Now()
		if err := db.Model(&models.UserSettings{}).
			Where("id = ?", settings.ID).
			Updates(map[string]any{"api_token_last_used_at": now}).Error; err != nil {
			log.Printf("failed to update api token usage timestamp for user %d: %v", user.ID, err)
		}

		usercontext.SetUserContext(c, usercontext.UserContext{
			UserID:     user.ID,
			Username:   user.Name,
			IsLoggedIn: true,
			IsAdmin:    user.Role == models.ROLE_ADMIN,
		})

		return c.Next()
	}
}

// ExtractAPIToken pulls the raw token from the X-Auth-Token header used by the
// web client, or from a standard bearer Authorization header.
func ExtractAPIToken(c *fiber.Ctx) string {
	token := strings.TrimSpace(c.Get("X-Auth-Token"))
	if token != "" {
		return token
	}
	auth := strings.TrimSpace(c.Get("Authorization"))
	if strings.HasPrefix(strings.ToLower(auth), "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}
