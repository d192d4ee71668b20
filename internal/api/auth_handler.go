package api

import (
	"context"
	"net/http"

	"github.com/learnly-app/learnly-api/internal/api/shared"
	"github.com/learnly-app/learnly-api/internal/service/credential"
)

// AuthHandler handles the registration and login endpoints.
type AuthHandler struct {
	service *credential.Service
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(service *credential.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

// RegisterInstructor handles POST /api/auth/register/instructor.
func (h *AuthHandler) RegisterInstructor(w http.ResponseWriter, r *http.Request) {
	h.register(w, r,
		h.service.RegisterInstructor,
		"Instructor registered successfully.",
		"Server error during instructor registration.")
}

// RegisterStudent handles POST /api/auth/register/student.
func (h *AuthHandler) RegisterStudent(w http.ResponseWriter, r *http.Request) {
	h.register(w, r,
		h.service.RegisterStudent,
		"Student registered successfully.",
		"Server error during student registration.")
}

func (h *AuthHandler) register(
	w http.ResponseWriter,
	r *http.Request,
	register func(context.Context, credential.RegisterRequest) (*credential.RegisterResult, error),
	successMessage string,
	serverErrorMessage string,
) {
	var req RegisterRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	result, err := register(r.Context(), credential.RegisterRequest{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err),
			GetSafeErrorMessage(err, serverErrorMessage),
			err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, RegisterResponse{
		Message: successMessage,
		User:    NewUserPayload(result.User),
		Token:   result.Token,
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	result, err := h.service.Login(r.Context(), credential.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err),
			GetSafeErrorMessage(err, "Server error during login."),
			err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		Token: result.Token,
		Role:  result.Role,
	})
}
