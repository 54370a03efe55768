package session

import (
	"github.com/gofiber/fiber/v2"

	"github.com/supportcrm/dashboard-service/internal/domain"
	apperrors "github.com/supportcrm/dashboard-service/pkg/util"
)

const principalKey = "session_principal"

// Middleware loads the session's user into request locals so handlers and
// services receive the acting user explicitly instead of reading ambient
// state.
type Middleware struct {
	sessions *Service
}

// NewMiddleware constructs middleware.
func NewMiddleware(sessions *Service) *Middleware {
	return &Middleware{sessions: sessions}
}

// Handle rejects requests without a session and stashes the user.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	user, err := m.sessions.Current(c.UserContext())
	if err != nil {
		return apperrors.MapError(err)
	}
	if user == nil {
		return apperrors.NewUnauthorized("login required")
	}
	c.Locals(principalKey, user)
	return c.Next()
}

// RequireAdmin gates the admin-only views.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := UserFromContext(c)
		if !ok || user.Role != domain.UserRoleAdmin {
			return apperrors.NewForbidden("admin role required")
		}
		return c.Next()
	}
}

// UserFromContext retrieves the acting user placed by Handle.
func UserFromContext(c *fiber.Ctx) (*domain.User, bool) {
	user, ok := c.Locals(principalKey).(*domain.User)
	return user, ok
}
