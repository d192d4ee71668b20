package credential

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnly-app/learnly-api/internal/domain"
	"github.com/learnly-app/learnly-api/internal/mocks"
	"github.com/learnly-app/learnly-api/internal/store"
)

type testDeps struct {
	userStore *mocks.MockUserStore
	jwt       *mocks.MockJWTService
	hasher    *mocks.MockPasswordHasher
	verifier  *mocks.MockPasswordVerifier
}

func newTestService() (*Service, *testDeps) {
	deps := &testDeps{
		userStore: mocks.NewMockUserStore(),
		jwt:       &mocks.MockJWTService{Token: "test-token"},
		hasher:    &mocks.MockPasswordHasher{},
		verifier:  &mocks.MockPasswordVerifier{ShouldSucceed: true},
	}
	svc := NewService(deps.userStore, deps.jwt, deps.hasher, deps.verifier)
	return svc, deps
}

func TestRegister(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		register func(*Service, context.Context, RegisterRequest) (*RegisterResult, error)
		wantRole domain.Role
	}{
		{
			name:     "instructor endpoint assigns Instructor role",
			register: (*Service).RegisterInstructor,
			wantRole: domain.RoleInstructor,
		},
		{
			name:     "student endpoint assigns Student role",
			register: (*Service).RegisterStudent,
			wantRole: domain.RoleStudent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newTestService()

			result, err := tt.register(svc, context.Background(), RegisterRequest{
				Username: "alice",
				Email:    "a@x.com",
				Password: "secret",
			})
			require.NoError(t, err)

			// Exactly one record is created, with the role of the endpoint called.
			assert.Equal(t, 1, deps.userStore.Count())
			assert.Equal(t, tt.wantRole, result.User.Role)
			assert.Equal(t, "alice", result.User.Username)
			assert.Equal(t, "test-token", result.Token)

			// The stored hash comes from the hasher; plaintext is dropped.
			assert.Equal(t, "hashed:secret", result.User.PasswordHash)
			assert.Empty(t, result.User.Password)
			assert.Equal(t, 1, deps.hasher.HashCallCount)

			// The registration token was issued for the created user.
			assert.Equal(t, result.User.ID, deps.jwt.LastUserID)
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	svc, deps := newTestService()
	ctx := context.Background()

	_, err := svc.RegisterStudent(ctx, RegisterRequest{
		Username: "alice", Email: "a@x.com", Password: "secret",
	})
	require.NoError(t, err)

	// Same email again, even via the other endpoint, is rejected and no
	// second record is created.
	_, err = svc.RegisterInstructor(ctx, RegisterRequest{
		Username: "other", Email: "a@x.com", Password: "different",
	})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.Equal(t, 1, deps.userStore.Count())
}

func TestRegister_DuplicateFromStoreConstraint(t *testing.T) {
	t.Parallel()

	// Simulate the race where the pre-check misses but the store's unique
	// constraint rejects the insert.
	svc, deps := newTestService()
	deps.userStore.GetByEmailFn = func(ctx context.Context, email string) (*domain.User, error) {
		return nil, store.ErrUserNotFound
	}
	deps.userStore.CreateFn = func(ctx context.Context, user *domain.User) error {
		return store.ErrEmailExists
	}

	_, err := svc.RegisterStudent(context.Background(), RegisterRequest{
		Username: "alice", Email: "a@x.com", Password: "secret",
	})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestRegister_CollaboratorFailures(t *testing.T) {
	t.Parallel()

	storeErr := errors.New("store down")
	hashErr := errors.New("hash failed")
	signErr := errors.New("sign failed")

	tests := []struct {
		name  string
		setup func(*testDeps)
		cause error
	}{
		{
			name: "store lookup failure",
			setup: func(d *testDeps) {
				d.userStore.GetByEmailError = storeErr
			},
			cause: storeErr,
		},
		{
			name: "hasher failure",
			setup: func(d *testDeps) {
				d.hasher.Err = hashErr
			},
			cause: hashErr,
		},
		{
			name: "insert failure",
			setup: func(d *testDeps) {
				d.userStore.CreateError = storeErr
			},
			cause: storeErr,
		},
		{
			name: "token issuance failure",
			setup: func(d *testDeps) {
				d.jwt.Err = signErr
			},
			cause: signErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newTestService()
			tt.setup(deps)

			_, err := svc.RegisterStudent(context.Background(), RegisterRequest{
				Username: "alice", Email: "a@x.com", Password: "secret",
			})
			require.Error(t, err)
			// Collaborator failures are not mapped to an expected failure.
			assert.NotErrorIs(t, err, ErrDuplicateEmail)
			assert.ErrorIs(t, err, tt.cause)
		})
	}
}

func TestLogin(t *testing.T) {
	t.Parallel()

	svc, deps := newTestService()
	ctx := context.Background()

	registered, err := svc.RegisterStudent(ctx, RegisterRequest{
		Username: "alice", Email: "a@x.com", Password: "secret",
	})
	require.NoError(t, err)

	result, err := svc.Login(ctx, LoginRequest{Email: "a@x.com", Password: "secret"})
	require.NoError(t, err)

	assert.Equal(t, "test-token", result.Token)
	assert.Equal(t, domain.RoleStudent, result.Role)

	// The verifier received the stored hash and the presented password.
	assert.Equal(t, "hashed:secret", deps.verifier.CompareCalledWith.HashedPassword)
	assert.Equal(t, "secret", deps.verifier.CompareCalledWith.Password)

	// The session token carries the user's identity and role.
	assert.Equal(t, registered.User.ID, deps.jwt.LastUserID)
	assert.Equal(t, "alice", deps.jwt.LastFullName)
	assert.Equal(t, domain.RoleStudent, deps.jwt.LastRole)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	t.Parallel()

	svc, deps := newTestService()
	ctx := context.Background()

	_, err := svc.RegisterStudent(ctx, RegisterRequest{
		Username: "alice", Email: "a@x.com", Password: "secret",
	})
	require.NoError(t, err)

	// Unknown email.
	_, err = svc.Login(ctx, LoginRequest{Email: "nobody@x.com", Password: "secret"})
	unknownEmailErr := err
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Wrong password for a known email.
	deps.verifier.ShouldSucceed = false
	_, err = svc.Login(ctx, LoginRequest{Email: "a@x.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Both causes are externally indistinguishable.
	assert.Equal(t, unknownEmailErr.Error(), err.Error())
}

func TestLogin_StoreFailure(t *testing.T) {
	t.Parallel()

	svc, deps := newTestService()
	deps.userStore.GetByEmailError = errors.New("store down")

	_, err := svc.Login(context.Background(), LoginRequest{Email: "a@x.com", Password: "secret"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetUserName(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()
	ctx := context.Background()

	registered, err := svc.RegisterStudent(ctx, RegisterRequest{
		Username: "alice", Email: "a@x.com", Password: "secret",
	})
	require.NoError(t, err)

	username, err := svc.GetUserName(ctx, registered.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)

	_, err = svc.GetUserName(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetCurrentUser(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()
	ctx := context.Background()

	registered, err := svc.RegisterStudent(ctx, RegisterRequest{
		Username: "alice", Email: "a@x.com", Password: "secret",
	})
	require.NoError(t, err)

	user, err := svc.GetCurrentUser(ctx, registered.User.ID)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, user.ID)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, domain.RoleStudent, user.Role)

	_, err = svc.GetCurrentUser(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}
