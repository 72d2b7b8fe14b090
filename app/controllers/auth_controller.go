package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/subkeeper/subkeeper/app/models"
	"github.com/subkeeper/subkeeper/app/repository"
	"github.com/subkeeper/subkeeper/internal/pkg/database"
	"github.com/subkeeper/subkeeper/internal/pkg/session"
	"github.com/subkeeper/subkeeper/internal/pkg/usercontext"
	"github.com/subkeeper/subkeeper/internal/pkg/utils"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleAuthRegister creates a new account and returns its first API token.
// The raw token is only ever returned here and on explicit rotation.
func HandleAuthRegister(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}

	user, err := models.CreateUser(req.Name, req.Email, req.Password)
	if err != nil {
		return jsonError(c, fiber.StatusUnprocessableEntity, "validation_failed", err.Error())
	}

	repo := repository.GetGlobalFactory().GetUserRepository()
	if _, err := repo.GetByEmail(user.Email); err == nil {
		return jsonError(c, fiber.StatusConflict, "conflict", "Email already registered")
	}

	if err := repo.Create(user); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to create user")
	}

	settings, err := models.GetOrCreateUserSettings(database.GetDB(), user.ID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to create user settings")
	}
	token, err := settings.IssueAPIToken()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to issue API token")
	}
	if err := database.GetDB().Save(settings).Error; err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to store API token")
	}

	if err := establishSession(c, user); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to create session")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user":  userResponse(user),
		"token": token,
	})
}

// HandleAuthLogin verifies credentials and establishes a session.
func HandleAuthLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}

	repo := repository.GetGlobalFactory().GetUserRepository()
	user, err := repo.GetByEmail(req.Email)
	if err != nil {
		// do not leak whether the account exists
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized", "Invalid credentials")
	}

	if !user.CheckPassword(req.Password) {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized", "Invalid credentials")
	}

	if !user.IsActive() {
		return jsonError(c, fiber.StatusForbidden, "forbidden", "Account disabled")
	}

	if err := establishSession(c, user); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to create session")
	}

	// best effort, a failed timestamp update must not block the login
	_ = repo.TouchLastLogin(user.ID, time.Now())

	return c.JSON(fiber.Map{"user": userResponse(user)})
}

// HandleAuthLogout destroys the current session.
func HandleAuthLogout(c *fiber.Ctx) error {
	sess, err := session.GetSessionStore().Get(c)
	if err == nil {
		_ = sess.Destroy()
	}
	return c.JSON(fiber.Map{"message": "logged out"})
}

// HandleAuthMe returns the authenticated user's account.
func HandleAuthMe(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	repo := repository.GetGlobalFactory().GetUserRepository()
	user, err := repo.GetByID(userCtx.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "User not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load user")
	}

	return c.JSON(fiber.Map{"user": userResponse(user)})
}

// HandleAuthRotateToken revokes the current API token and issues a fresh one.
func HandleAuthRotateToken(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	db := database.GetDB()
	settings, err := models.GetOrCreateUserSettings(db, userCtx.UserID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load user settings")
	}

	token, err := settings.IssueAPIToken()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to issue API token")
	}
	if err := db.Save(settings).Error; err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to store API token")
	}

	return c.JSON(fiber.Map{
		"token":        token,
		"token_prefix": settings.APITokenPrefix,
		"created_at":   formatTimePtr(settings.APITokenCreatedAt),
	})
}

func establishSession(c *fiber.Ctx, user *models.User) error {
	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		return err
	}

	sess.Set(usercontext.AuthKey, true)
	sess.Set(usercontext.KeyUserID, user.ID)
	sess.Set(usercontext.KeyUsername, user.Name)
	sess.Set(usercontext.KeyIsAdmin, user.Role == models.ROLE_ADMIN)

	return sess.Save()
}

func userResponse(user *models.User) fiber.Map {
	return fiber.Map{
		"id":            user.ID,
		"name":          user.Name,
		"email":         user.Email,
		"role":          user.Role,
		"status":        user.Status,
		"avatar_url":    utils.GetGravatarURL(user.Email, 200),
		"last_login_at": formatTimePtr(user.LastLoginAt),
		"created_at":    user.CreatedAt.UTC().Format(time.RFC3339),
	}
}
