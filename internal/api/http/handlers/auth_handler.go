package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/supportcrm/dashboard-service/internal/api/dto"
	"github.com/supportcrm/dashboard-service/internal/domain"
	"github.com/supportcrm/dashboard-service/internal/session"
	apperrors "github.com/supportcrm/dashboard-service/pkg/util"
)

// AuthHandler exposes the session endpoints.
type AuthHandler struct {
	sessions *session.Service
}

// NewAuthHandler constructs handler.
func NewAuthHandler(sessions *session.Service) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// Login POST /auth/login. Failures are deliberately indistinguishable:
// same generic message whichever field was wrong.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	user, err := h.sessions.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	if user == nil {
		return apperrors.NewUnauthorized("invalid credentials")
	}
	return c.JSON(fiber.Map{"data": userResponse(user)})
}

// Logout POST /auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.sessions.Logout(c.UserContext()); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Me GET /auth/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.sessions.Current(c.UserContext())
	if err != nil {
		return err
	}
	if user == nil {
		return apperrors.NewUnauthorized("not logged in")
	}
	return c.JSON(fiber.Map{"data": userResponse(user)})
}

func userResponse(user *domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
		Avatar: user.Avatar,
	}
}
