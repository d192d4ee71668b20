package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnly-app/learnly-api/internal/api/shared"
	"github.com/learnly-app/learnly-api/internal/domain"
	"github.com/learnly-app/learnly-api/internal/mocks"
	"github.com/learnly-app/learnly-api/internal/service/credential"
)

func newTestHandlers() (*AuthHandler, *UserHandler, *mocks.MockUserStore) {
	userStore := mocks.NewMockUserStore()
	jwtService := &mocks.MockJWTService{Token: "test-token"}
	hasher := &mocks.MockPasswordHasher{}
	verifier := &mocks.MockPasswordVerifier{
		CompareFn: func(hashedPassword, password string) error {
			// Mirror the mock hasher so correct passwords verify.
			if hashedPassword == "hashed:"+password {
				return nil
			}
			return assert.AnError
		},
	}

	service := credential.NewService(userStore, jwtService, hasher, verifier)
	return NewAuthHandler(service), NewUserHandler(service), userStore
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	handler(recorder, req)
	return recorder
}

func decodeError(t *testing.T, recorder *httptest.ResponseRecorder) shared.ErrorResponse {
	t.Helper()

	var resp shared.ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	return resp
}

func TestRegisterEndpoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		endpoint func(*AuthHandler) http.HandlerFunc
		wantRole domain.Role
	}{
		{
			name:     "instructor",
			endpoint: func(h *AuthHandler) http.HandlerFunc { return h.RegisterInstructor },
			wantRole: domain.RoleInstructor,
		},
		{
			name:     "student",
			endpoint: func(h *AuthHandler) http.HandlerFunc { return h.RegisterStudent },
			wantRole: domain.RoleStudent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authHandler, _, userStore := newTestHandlers()

			recorder := postJSON(t, tt.endpoint(authHandler), "/api/auth/register", map[string]string{
				"username": "alice",
				"email":    "a@x.com",
				"password": "secret",
			})

			require.Equal(t, http.StatusCreated, recorder.Code)

			var resp RegisterResponse
			require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))

			assert.Contains(t, resp.Message, "registered successfully")
			assert.Equal(t, tt.wantRole, resp.User.Role)
			assert.Equal(t, "alice", resp.User.Username)
			assert.Equal(t, "test-token", resp.Token)
			assert.Equal(t, 1, userStore.Count())

			// The payload never carries the password hash.
			raw := recorder.Body.String()
			assert.NotContains(t, raw, "hashed:")
			assert.NotContains(t, raw, "password")
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	authHandler, _, userStore := newTestHandlers()

	payload := map[string]string{
		"username": "alice",
		"email":    "a@x.com",
		"password": "secret",
	}

	recorder := postJSON(t, authHandler.RegisterStudent, "/api/auth/register/student", payload)
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = postJSON(t, authHandler.RegisterStudent, "/api/auth/register/student", payload)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Email already in use.", decodeError(t, recorder).Message)
	assert.Equal(t, 1, userStore.Count())
}

func TestRegister_BadRequests(t *testing.T) {
	t.Parallel()

	authHandler, _, _ := newTestHandlers()

	tests := []struct {
		name    string
		payload map[string]string
	}{
		{
			name:    "missing username",
			payload: map[string]string{"email": "a@x.com", "password": "secret"},
		},
		{
			name:    "missing email",
			payload: map[string]string{"username": "alice", "password": "secret"},
		},
		{
			name:    "missing password",
			payload: map[string]string{"username": "alice", "email": "a@x.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := postJSON(t, authHandler.RegisterStudent, "/api/auth/register/student", tt.payload)
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
		})
	}

	// Malformed body
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register/student",
		bytes.NewReader([]byte("{not json")))
	recorder := httptest.NewRecorder()
	authHandler.RegisterStudent(recorder, req)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestRegister_ServerError(t *testing.T) {
	t.Parallel()

	authHandler, _, userStore := newTestHandlers()
	userStore.GetByEmailError = assert.AnError

	recorder := postJSON(t, authHandler.RegisterInstructor, "/api/auth/register/instructor", map[string]string{
		"username": "alice",
		"email":    "a@x.com",
		"password": "secret",
	})

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	resp := decodeError(t, recorder)
	assert.Equal(t, "Server error during instructor registration.", resp.Message)
	// Internal error text never crosses the boundary.
	assert.NotContains(t, recorder.Body.String(), assert.AnError.Error())
}

func TestLoginEndpoint(t *testing.T) {
	t.Parallel()

	authHandler, _, _ := newTestHandlers()

	recorder := postJSON(t, authHandler.RegisterStudent, "/api/auth/register/student", map[string]string{
		"username": "alice",
		"email":    "a@x.com",
		"password": "secret",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = postJSON(t, authHandler.Login, "/api/auth/login", map[string]string{
		"email":    "a@x.com",
		"password": "secret",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp LoginResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, "test-token", resp.Token)
	assert.Equal(t, domain.RoleStudent, resp.Role)

	// Login returns the token and role only, never the record.
	assert.NotContains(t, recorder.Body.String(), "a@x.com")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	t.Parallel()

	authHandler, _, _ := newTestHandlers()

	recorder := postJSON(t, authHandler.RegisterStudent, "/api/auth/register/student", map[string]string{
		"username": "alice",
		"email":    "a@x.com",
		"password": "secret",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	// Wrong password for a known email.
	recorder = postJSON(t, authHandler.Login, "/api/auth/login", map[string]string{
		"email":    "a@x.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	wrongPassword := decodeError(t, recorder).Message

	// Unknown email.
	recorder = postJSON(t, authHandler.Login, "/api/auth/login", map[string]string{
		"email":    "nobody@x.com",
		"password": "secret",
	})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	unknownEmail := decodeError(t, recorder).Message

	// The message is byte-identical across both causes.
	assert.Equal(t, "Invalid email or password", wrongPassword)
	assert.Equal(t, wrongPassword, unknownEmail)
}

// TestCredentialWorkflow runs the full scenario: register a student, reject a
// duplicate registration, reject a wrong-password login, accept the correct
// login.
func TestCredentialWorkflow(t *testing.T) {
	t.Parallel()

	authHandler, _, _ := newTestHandlers()

	payload := map[string]string{
		"username": "alice",
		"email":    "a@x.com",
		"password": "secret",
	}

	recorder := postJSON(t, authHandler.RegisterStudent, "/api/auth/register/student", payload)
	require.Equal(t, http.StatusCreated, recorder.Code)
	var registered RegisterResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&registered))
	assert.Equal(t, domain.RoleStudent, registered.User.Role)

	recorder = postJSON(t, authHandler.RegisterStudent, "/api/auth/register/student", payload)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = postJSON(t, authHandler.Login, "/api/auth/login", map[string]string{
		"email":    "a@x.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = postJSON(t, authHandler.Login, "/api/auth/login", map[string]string{
		"email":    "a@x.com",
		"password": "secret",
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	var login LoginResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&login))
	assert.Equal(t, domain.RoleStudent, login.Role)
}
