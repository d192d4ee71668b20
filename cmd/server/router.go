package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/learnly-app/learnly-api/internal/api"
	apiMiddleware "github.com/learnly-app/learnly-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)
	if app.obsServer != nil {
		r.Use(apiMiddleware.MetricsMiddleware(app.obsServer.Metrics()))
	}

	authHandler := api.NewAuthHandler(app.credentialService)
	userHandler := api.NewUserHandler(app.credentialService)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Registration and login endpoints (public)
		r.Post("/auth/register/instructor", authHandler.RegisterInstructor)
		r.Post("/auth/register/student", authHandler.RegisterStudent)
		r.Post("/auth/login", authHandler.Login)

		// Profile endpoints require an authenticated identity
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Get("/users/me", userHandler.GetCurrentUser)
			r.Get("/users/me/name", userHandler.GetUserName)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
