package api

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/learnly-app/learnly-api/internal/api/shared"
	"github.com/learnly-app/learnly-api/internal/platform/logger"
	"github.com/learnly-app/learnly-api/internal/service/credential"
)

// UserHandler handles the authenticated profile endpoints.
type UserHandler struct {
	service *credential.Service
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(service *credential.Service) *UserHandler {
	return &UserHandler{service: service}
}

// GetUserName handles GET /api/users/me/name.
// The user ID comes from the identity context populated by the auth middleware.
func (h *UserHandler) GetUserName(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
		return
	}

	username, err := h.service.GetUserName(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err),
			GetSafeErrorMessage(err, "Server error"),
			err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UserNameResponse{Username: username})
}

// GetCurrentUser handles GET /api/users/me.
// Returns the stored record projected without the password hash.
func (h *UserHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
		return
	}

	user, err := h.service.GetCurrentUser(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err),
			GetSafeErrorMessage(err, "Server Error"),
			err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewUserPayload(user))
}

// getUserIDFromContext extracts the authenticated user's UUID from the request
// context. The user ID is placed in the context by the authentication
// middleware.
func getUserIDFromContext(r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		log := logger.FromContext(r.Context())
		log.Warn("user ID not found or invalid in request context")
		return uuid.Nil, false
	}
	return userID, true
}
