package api

import (
	"errors"
	"net/http"

	"github.com/learnly-app/learnly-api/internal/service/auth"
	"github.com/learnly-app/learnly-api/internal/service/credential"
)

// Fixed user-facing messages for the expected failures. These are part of the
// external contract: clients match on them, and the invalid-credentials
// message is byte-identical whether the email was unknown or the password
// wrong.
const (
	MsgDuplicateEmail     = "Email already in use."
	MsgInvalidCredentials = "Invalid email or password"
	MsgUserNotFound       = "User not found"
)

// MapErrorToStatusCode maps service errors to appropriate HTTP status codes.
// This prevents leaking internal error types or messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, credential.ErrDuplicateEmail):
		return http.StatusBadRequest

	case errors.Is(err, credential.ErrInvalidCredentials):
		return http.StatusUnauthorized

	case errors.Is(err, credential.ErrUserNotFound):
		return http.StatusNotFound

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the fixed, user-safe message for an expected
// failure, or the provided fallback for anything unexpected. Internal error
// text never crosses the boundary.
func GetSafeErrorMessage(err error, fallback string) string {
	switch {
	case errors.Is(err, credential.ErrDuplicateEmail):
		return MsgDuplicateEmail

	case errors.Is(err, credential.ErrInvalidCredentials):
		return MsgInvalidCredentials

	case errors.Is(err, credential.ErrUserNotFound):
		return MsgUserNotFound

	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	default:
		return fallback
	}
}
