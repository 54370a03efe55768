package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/supportcrm/dashboard-service/internal/api/dto"
	"github.com/supportcrm/dashboard-service/internal/repository"
)

// UsersHandler exposes the user roster for assignment pickers.
type UsersHandler struct {
	users repository.UserRepository
}

// NewUsersHandler constructs handler.
func NewUsersHandler(users repository.UserRepository) *UsersHandler {
	return &UsersHandler{users: users}
}

// ListUsers GET /api/users. Customers are excluded when staff_only=true,
// matching the assignment picker which only offers team members.
func (h *UsersHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.users.List(c.UserContext())
	if err != nil {
		return err
	}
	staffOnly := c.QueryBool("staff_only", false)

	items := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		if staffOnly && !users[i].Role.IsStaff() {
			continue
		}
		items = append(items, userResponse(&users[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}
