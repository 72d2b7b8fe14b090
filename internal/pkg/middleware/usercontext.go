package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/subkeeper/subkeeper/internal/pkg/session"
	"github.com/subkeeper/subkeeper/internal/pkg/usercontext"
)

// UserContextMiddleware sets up the complete user context for every request.
// This centralizes session handling so controllers only look at the context.
func UserContextMiddleware(c *fiber.Ctx) error {
	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		// On error: treat as anonymous user
		usercontext.SetUserContext(c, usercontext.UserContext{})
		return c.Next()
	}

	userID := sess.Get(usercontext.KeyUserID)
	if userID == nil {
		// Anonymous user - no session data
		usercontext.SetUserContext(c, usercontext.UserContext{})
		return c.Next()
	}

	username := session.GetSessionValue(c, usercontext.KeyUsername)
	isAdmin := sess.Get(usercontext.KeyIsAdmin)

	usercontext.SetUserContext(c, usercontext.UserContext{
		UserID:     userID.(uint),
		Username:   username,
		IsLoggedIn: true,
		IsAdmin:    isAdmin != nil && isAdmin.(bool),
	})

	return c.Next()
}
