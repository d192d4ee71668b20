package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnly-app/learnly-api/internal/api/shared"
	"github.com/learnly-app/learnly-api/internal/domain"
)

func getAsUser(t *testing.T, handler http.HandlerFunc, path string, userID uuid.UUID) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	ctx := context.WithValue(req.Context(), shared.UserIDContextKey, userID)
	req = req.WithContext(ctx)

	recorder := httptest.NewRecorder()
	handler(recorder, req)
	return recorder
}

func registerAlice(t *testing.T, authHandler *AuthHandler) uuid.UUID {
	t.Helper()

	recorder := postJSON(t, authHandler.RegisterStudent, "/api/auth/register/student", map[string]string{
		"username": "alice",
		"email":    "a@x.com",
		"password": "secret",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	var resp RegisterResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	return resp.User.ID
}

func TestGetUserName(t *testing.T) {
	t.Parallel()

	authHandler, userHandler, _ := newTestHandlers()
	userID := registerAlice(t, authHandler)

	recorder := getAsUser(t, userHandler.GetUserName, "/api/users/me/name", userID)
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp UserNameResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, "alice", resp.Username)
}

func TestGetUserName_NotFound(t *testing.T) {
	t.Parallel()

	_, userHandler, _ := newTestHandlers()

	recorder := getAsUser(t, userHandler.GetUserName, "/api/users/me/name", uuid.New())
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "User not found", decodeError(t, recorder).Message)
}

func TestGetCurrentUser(t *testing.T) {
	t.Parallel()

	authHandler, userHandler, _ := newTestHandlers()
	userID := registerAlice(t, authHandler)

	recorder := getAsUser(t, userHandler.GetCurrentUser, "/api/users/me", userID)
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp UserPayload
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, userID, resp.ID)
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, "a@x.com", resp.Email)
	assert.Equal(t, domain.RoleStudent, resp.Role)

	// The stored hash must never appear in the response.
	assert.NotContains(t, recorder.Body.String(), "hashed:")
}

func TestGetCurrentUser_NotFound(t *testing.T) {
	t.Parallel()

	_, userHandler, _ := newTestHandlers()

	recorder := getAsUser(t, userHandler.GetCurrentUser, "/api/users/me", uuid.New())
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "User not found", decodeError(t, recorder).Message)
}

func TestProfileEndpoints_MissingIdentity(t *testing.T) {
	t.Parallel()

	_, userHandler, _ := newTestHandlers()

	// No user ID in the context at all.
	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	recorder := httptest.NewRecorder()
	userHandler.GetCurrentUser(recorder, req)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	// Nil UUID in the context.
	recorder = getAsUser(t, userHandler.GetUserName, "/api/users/me/name", uuid.Nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
