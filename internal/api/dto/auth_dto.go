package dto

import "github.com/supportcrm/dashboard-service/internal/domain"

// LoginRequest carries the credential pair.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the wire shape of a dashboard user.
type UserResponse struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Email  string          `json:"email"`
	Role   domain.UserRole `json:"role"`
	Avatar string          `json:"avatar,omitempty"`
}
