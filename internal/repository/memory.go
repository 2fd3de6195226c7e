package repository

import (
	"context"
	"sync"

	"github.com/atinyakov/userkeeper/internal/models"
)

// MemoryUserRepository keeps users in a map keyed by login.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

// NewMemoryUserRepository creates an empty in-memory repository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[string]models.User)}
}

// IsLoginExists reports whether a user with the given login is stored.
func (r *MemoryUserRepository) IsLoginExists(_ context.Context, login string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.users[login]
	return ok, nil
}

// GetUserByLogin returns the stored user or a *models.UserNotFoundError.
func (r *MemoryUserRepository) GetUserByLogin(_ context.Context, login string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[login]
	if !ok {
		return models.User{}, &models.UserNotFoundError{Login: login}
	}
	return user, nil
}

// Save stores the user. An existing login is never overwritten;
// a *models.LoginExistsError is returned instead.
func (r *MemoryUserRepository) Save(_ context.Context, user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Login]; ok {
		return &models.LoginExistsError{Login: user.Login}
	}
	r.users[user.Login] = user
	return nil
}
