// Package http provides HTTP routing and middleware configuration
// for the user registration service.
package http

import (
	"net/http"

	"github.com/atinyakov/userkeeper/internal/middleware"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs and returns an HTTP handler that serves
// the user API under /api.
//
// Routes:
//
//	POST /api/users          → userHandler.CreateUser
//	GET  /api/users/{login}  → userHandler.GetUser
//
// Middleware chain (applied in order):
//  1. RequestID                      assigns X-Request-ID
//  2. WithRequestLogging(logger)     logs every request
//  3. Recoverer                      turns panics into 500
//  4. AllowContentType (POST only)   rejects non-JSON bodies
func NewRouter(userHandler *UserHandler, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.WithRequestLogging(logger))
	r.Use(chiMiddleware.Recoverer)

	r.Route("/api/users", func(r chi.Router) {
		r.With(chiMiddleware.AllowContentType("application/json")).Post("/", userHandler.CreateUser)
		r.Get("/{login}", userHandler.GetUser)
	})

	return r
}
