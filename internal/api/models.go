package api

import (
	"github.com/google/uuid"

	"github.com/learnly-app/learnly-api/internal/domain"
)

// Common request/response structures.
// Validation is presence-only: the service does not enforce email shape or
// password strength, matching the registration contract.

// RegisterRequest defines the payload for the registration endpoints.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserPayload is the outward-facing projection of a user record.
// It deliberately omits the password hash.
type UserPayload struct {
	ID        uuid.UUID   `json:"id"`
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	CreatedAt string      `json:"created_at"`
	UpdatedAt string      `json:"updated_at"`
}

// NewUserPayload builds the outward projection of a stored user.
func NewUserPayload(user *domain.User) UserPayload {
	return UserPayload{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt.Format(timeFormat),
		UpdatedAt: user.UpdatedAt.Format(timeFormat),
	}
}

// timeFormat is RFC 3339 with second precision, the serialization used for
// all outward-facing timestamps.
const timeFormat = "2006-01-02T15:04:05Z07:00"

// RegisterResponse defines the successful response for the registration endpoints.
type RegisterResponse struct {
	Message string      `json:"message"`
	User    UserPayload `json:"user"`
	Token   string      `json:"token"`
}

// LoginResponse defines the successful response for the login endpoint.
// Login returns the token and role only, never the full record.
type LoginResponse struct {
	Token string      `json:"token"`
	Role  domain.Role `json:"role"`
}

// UserNameResponse defines the response for the username endpoint.
type UserNameResponse struct {
	Username string `json:"username"`
}
