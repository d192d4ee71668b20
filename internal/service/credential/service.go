// Package credential implements the registration, login and profile-fetch
// workflow. It owns the validation and error contracts of those operations
// and delegates persistence, password hashing and token signing to its
// collaborators.
package credential

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/learnly-app/learnly-api/internal/domain"
	"github.com/learnly-app/learnly-api/internal/platform/logger"
	"github.com/learnly-app/learnly-api/internal/service/auth"
	"github.com/learnly-app/learnly-api/internal/store"
)

// Service implements the credential workflow over a user store, a password
// hasher/verifier and a token issuer. Each operation is stateless and atomic
// from the caller's perspective.
type Service struct {
	userStore  store.UserStore
	jwtService auth.JWTService
	hasher     auth.PasswordHasher
	verifier   auth.PasswordVerifier
}

// NewService creates a new credential Service with the given collaborators.
func NewService(
	userStore store.UserStore,
	jwtService auth.JWTService,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
) *Service {
	return &Service{
		userStore:  userStore,
		jwtService: jwtService,
		hasher:     hasher,
		verifier:   verifier,
	}
}

// RegisterRequest carries the untrusted signup input.
type RegisterRequest struct {
	Username string
	Email    string
	Password string
}

// RegisterResult carries the created user and the issued registration token.
type RegisterResult struct {
	User  *domain.User
	Token string
}

// LoginRequest carries the untrusted login input.
type LoginRequest struct {
	Email    string
	Password string
}

// LoginResult carries the issued session token and the user's role.
// Login deliberately returns no other account details.
type LoginResult struct {
	Token string
	Role  domain.Role
}

// RegisterInstructor registers a new instructor account.
// Returns ErrDuplicateEmail if the email is already in use.
func (s *Service) RegisterInstructor(ctx context.Context, req RegisterRequest) (*RegisterResult, error) {
	return s.register(ctx, req, domain.RoleInstructor)
}

// RegisterStudent registers a new student account.
// Returns ErrDuplicateEmail if the email is already in use.
func (s *Service) RegisterStudent(ctx context.Context, req RegisterRequest) (*RegisterResult, error) {
	return s.register(ctx, req, domain.RoleStudent)
}

// register is the shared registration workflow; only the assigned role
// differs between the instructor and student entry points.
func (s *Service) register(
	ctx context.Context,
	req RegisterRequest,
	role domain.Role,
) (*RegisterResult, error) {
	log := logger.FromContext(ctx)

	// Pre-check for an existing account. The store's unique constraint is
	// still the authority: a racing registration that passes this check is
	// caught at insert and reported the same way.
	_, err := s.userStore.GetByEmail(ctx, req.Email)
	if err == nil {
		return nil, ErrDuplicateEmail
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}

	user, err := domain.NewUser(req.Username, req.Email, req.Password, role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = hash
	user.Password = "" // Plaintext is never persisted.

	if err := s.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.jwtService.GenerateRegistrationToken(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate registration token: %w", err)
	}

	log.Info("user registered", "user_id", user.ID, "role", role)

	return &RegisterResult{User: user, Token: token}, nil
}

// Login authenticates a user by email and password and issues a session token.
// An unknown email and a wrong password both return ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	log := logger.FromContext(ctx)

	user, err := s.userStore.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("login failed: unknown email")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.verifier.Compare(user.PasswordHash, req.Password); err != nil {
		log.Debug("login failed: password mismatch", "user_id", user.ID)
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateSessionToken(ctx, user.ID, user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	log.Info("login successful", "user_id", user.ID)

	return &LoginResult{Token: token, Role: user.Role}, nil
}

// GetUserName returns the display name of the authenticated user.
// Returns ErrUserNotFound if the id has no stored record.
func (s *Service) GetUserName(ctx context.Context, userID uuid.UUID) (string, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return "", err
	}
	return user.Username, nil
}

// GetCurrentUser returns the stored record of the authenticated user.
// Returns ErrUserNotFound if the id has no stored record.
func (s *Service) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return s.getUser(ctx, userID)
}

func (s *Service) getUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return user, nil
}
