package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/learnly-app/learnly-api/internal/domain"
	"github.com/learnly-app/learnly-api/internal/service/auth"
)

// MockJWTService implements auth.JWTService for testing.
type MockJWTService struct {
	// Token is returned by the generate methods when no function override is set.
	Token string
	// Err is returned by all methods when set.
	Err error

	GenerateRegistrationTokenFn func(ctx context.Context, userID uuid.UUID) (string, error)
	GenerateSessionTokenFn      func(ctx context.Context, userID uuid.UUID, fullName string, role domain.Role) (string, error)
	ValidateTokenFn             func(ctx context.Context, tokenString string) (*auth.Claims, error)

	// Claims returned by ValidateToken when no override is set.
	Claims *auth.Claims

	// Recorded arguments for test verification
	LastUserID   uuid.UUID
	LastFullName string
	LastRole     domain.Role
}

// Ensure MockJWTService implements auth.JWTService
var _ auth.JWTService = (*MockJWTService)(nil)

// GenerateRegistrationToken implements the JWTService interface.
func (m *MockJWTService) GenerateRegistrationToken(
	ctx context.Context,
	userID uuid.UUID,
) (string, error) {
	if m.GenerateRegistrationTokenFn != nil {
		return m.GenerateRegistrationTokenFn(ctx, userID)
	}
	m.LastUserID = userID
	if m.Err != nil {
		return "", m.Err
	}
	return m.Token, nil
}

// GenerateSessionToken implements the JWTService interface.
func (m *MockJWTService) GenerateSessionToken(
	ctx context.Context,
	userID uuid.UUID,
	fullName string,
	role domain.Role,
) (string, error) {
	if m.GenerateSessionTokenFn != nil {
		return m.GenerateSessionTokenFn(ctx, userID, fullName, role)
	}
	m.LastUserID = userID
	m.LastFullName = fullName
	m.LastRole = role
	if m.Err != nil {
		return "", m.Err
	}
	return m.Token, nil
}

// ValidateToken implements the JWTService interface.
func (m *MockJWTService) ValidateToken(
	ctx context.Context,
	tokenString string,
) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Claims != nil {
		return m.Claims, nil
	}
	return nil, auth.ErrInvalidToken
}
