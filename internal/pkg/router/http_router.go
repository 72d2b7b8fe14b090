package router

import (
	"github.com/subkeeper/subkeeper/app/controllers"
	"github.com/subkeeper/subkeeper/internal/pkg/middleware"
	"github.com/subkeeper/subkeeper/internal/pkg/session"

	"github.com/gofiber/fiber/v2"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// Apply UserContext middleware globally as first middleware
	app.Use(middleware.UserContextMiddleware)

	// Landing page
	app.Get("/", controllers.HandleStart)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
