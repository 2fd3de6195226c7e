// Package http provides HTTP handlers for user registration and lookup.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/atinyakov/userkeeper/internal/models"
)

// UserService defines the interface for user operations
// required by the HTTP handlers.
type UserService interface {
	// CreateNewUser validates and registers a new user.
	CreateNewUser(context.Context, models.NewUser) error
	// GetUserByLogin returns a registered user.
	GetUserByLogin(context.Context, string) (models.User, error)
}

// maxBodyBytes caps the size of a registration request body.
const maxBodyBytes = 1 << 20

// UserHandler handles HTTP requests for user registration and lookup.
type UserHandler struct {
	// UserService performs the underlying user operations.
	UserService UserService
}

// CreateUser handles POST /api/users.
// It expects a JSON body with "fullName", "login" and "password".
// On success it responds 201 with the created user (without password).
// A malformed or oversized body, trailing data after the object, or an
// empty login is rejected with 400.
// Domain errors map to 409 (login taken) and 422 (constraint violation).
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))

	var req models.NewUser
	if err := dec.Decode(&req); err != nil || req.Login == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := h.UserService.CreateNewUser(r.Context(), req); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, req.ToUser())
}

// GetUser handles GET /api/users/{login}.
// The login segment may be percent-encoded (e.g. "a%2Fb" for "a/b").
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	login, err := loginParam(r)
	if err != nil {
		http.Error(w, "invalid login", http.StatusBadRequest)
		return
	}

	user, err := h.UserService.GetUserByLogin(r.Context(), login)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// loginParam returns the decoded {login} segment. chi matches routes
// against URL.RawPath when it is set, leaving params still escaped.
func loginParam(r *http.Request) (string, error) {
	login := chi.URLParam(r, "login")
	if r.URL.RawPath == "" {
		return login, nil
	}
	return url.PathUnescape(login)
}

// writeError maps domain errors to HTTP status codes. Messages of
// domain errors are part of the API and written as-is.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrLoginExists):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, models.ErrConstraintViolation):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, models.ErrUserNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
