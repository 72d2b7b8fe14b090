package apiv1

import (
	"github.com/gofiber/fiber/v2"

	// Delegate to existing controllers to keep behavior consistent
	"github.com/subkeeper/subkeeper/app/controllers"
	"github.com/subkeeper/subkeeper/internal/pkg/middleware"
)

// Pong is the response body of the ping endpoint.
type Pong struct {
	Ping string `json:"ping"`
}

// ServerInterface lists the handlers of the public v1 API.
type ServerInterface interface {
	GetPing(c *fiber.Ctx) error
	GetUserProfile(c *fiber.Ctx) error
	GetSubscriptions(c *fiber.Ctx) error
	GetUpcomingPayments(c *fiber.Ctx) error
	GetStats(c *fiber.Ctx) error
}

// RegisterHandlers attaches the v1 routes to the given router group. Every
// route except ping requires an API token.
func RegisterHandlers(router fiber.Router, si ServerInterface) {
	router.Get("/ping", si.GetPing)

	tokenAuth := middleware.APITokenAuthMiddleware()
	router.Get("/user/profile", tokenAuth, middleware.RequireAuth, si.GetUserProfile)
	router.Get("/subscriptions", tokenAuth, middleware.RequireAuth, si.GetSubscriptions)
	router.Get("/subscriptions/upcoming", tokenAuth, middleware.RequireAuth, si.GetUpcomingPayments)
	router.Get("/stats", tokenAuth, middleware.RequireAuth, si.GetStats)
}

// APIServer implements the ServerInterface
type APIServer struct{}

// NewAPIServer creates a new API server instance
func NewAPIServer() *APIServer {
	return &APIServer{}
}

// GetPing handles the ping endpoint
func (s *APIServer) GetPing(c *fiber.Ctx) error {
	response := Pong{
		Ping: "pong",
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

// GetUserProfile returns account information for the authenticated user.
// Security is enforced via the API token middleware attached in the router.
func (s *APIServer) GetUserProfile(c *fiber.Ctx) error {
	return controllers.HandleAuthMe(c)
}

// GetSubscriptions returns the authenticated user's subscriptions.
func (s *APIServer) GetSubscriptions(c *fiber.Ctx) error {
	return controllers.HandleSubscriptionList(c)
}

// GetUpcomingPayments returns subscriptions due within the lookahead window.
func (s *APIServer) GetUpcomingPayments(c *fiber.Ctx) error {
	return controllers.HandleSubscriptionUpcoming(c)
}

// GetStats returns the derived spending metrics.
func (s *APIServer) GetStats(c *fiber.Ctx) error {
	return controllers.HandleStats(c)
}
