// Package auth provides the token issuance and password hashing collaborators
// used by the credential service.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/learnly-app/learnly-api/internal/domain"
)

// SessionTokenLifetime is the fixed lifetime of tokens issued at login.
// Registration tokens use the configured lifetime instead.
const SessionTokenLifetime = time.Hour

// JWTService defines operations for issuing and validating signed tokens.
type JWTService interface {
	// GenerateRegistrationToken creates a signed token carrying only the user ID.
	// It is issued on signup with the configured lifetime.
	GenerateRegistrationToken(ctx context.Context, userID uuid.UUID) (string, error)

	// GenerateSessionToken creates a signed token carrying the user ID, the
	// user's display name and role. It is issued on login with a fixed
	// one-hour lifetime.
	GenerateSessionToken(ctx context.Context, userID uuid.UUID, fullName string, role domain.Role) (string, error)

	// ValidateToken validates the provided token string and extracts the claims.
	// Returns an error if validation fails (expired, invalid signature, etc.).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the payload embedded in issued tokens.
// FullName and Role are present only on session tokens.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID uuid.UUID `json:"userId"`

	// FullName is the user's display name. Empty on registration tokens.
	FullName string `json:"fullName,omitempty"`

	// Role is the user's role. Empty on registration tokens.
	Role domain.Role `json:"role,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
