package router

import (
	apiv1 "github.com/subkeeper/subkeeper/internal/api/v1"

	"github.com/subkeeper/subkeeper/app/controllers"
	"github.com/subkeeper/subkeeper/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New())
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})
	api.Get("/ping", controllers.HandlePing)

	// Accounts. Register and login are the only unauthenticated endpoints.
	users := api.Group("/users")
	users.Post("/register", controllers.HandleAuthRegister)
	users.Post("/login", controllers.HandleAuthLogin)
	users.Post("/logout", middleware.RequireAuth, controllers.HandleAuthLogout)
	users.Get("/me", middleware.APITokenAuthMiddleware(), middleware.RequireAuth, controllers.HandleAuthMe)
	users.Post("/token/rotate", middleware.APITokenAuthMiddleware(), middleware.RequireAuth, controllers.HandleAuthRotateToken)

	// Everything below accepts either a session cookie or an API token.
	authed := api.Group("/", middleware.APITokenAuthMiddleware(), middleware.RequireAuth)

	subs := authed.Group("/subscriptions")
	subs.Get("/", controllers.HandleSubscriptionList)
	subs.Post("/", controllers.HandleSubscriptionCreate)
	subs.Get("/upcoming", controllers.HandleSubscriptionUpcoming)
	subs.Get("/:id", controllers.HandleSubscriptionGet)
	subs.Put("/:id", controllers.HandleSubscriptionUpdate)
	subs.Delete("/:id", controllers.HandleSubscriptionDelete)

	authed.Get("/stats", controllers.HandleStats)

	settings := authed.Group("/settings")
	settings.Get("/reminders", controllers.HandleGetReminderSettings)
	settings.Put("/reminders", controllers.HandleUpdateReminderSettings)

	notifications := authed.Group("/notifications")
	notifications.Get("/", controllers.HandleNotificationList)
	notifications.Post("/read-all", controllers.HandleNotificationMarkAllRead)

	// API v1 routes
	v1 := api.Group("/v1")
	apiServer := apiv1.NewAPIServer()
	apiv1.RegisterHandlers(v1, apiServer)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
