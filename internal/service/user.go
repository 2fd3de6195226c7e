// Package service provides user registration business logic,
// delegating validation to a Validator and persistence to a UserRepository.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/atinyakov/userkeeper/internal/models"
)

// UserRepository defines the persistence operations
// required by the user service.
type UserRepository interface {
	// IsLoginExists returns true if a user with the given login is stored.
	IsLoginExists(ctx context.Context, login string) (bool, error)
	// GetUserByLogin returns the stored user or *models.UserNotFoundError.
	GetUserByLogin(ctx context.Context, login string) (models.User, error)
	// Save persists a new user.
	Save(ctx context.Context, user models.User) error
}

// Validator checks a registration request before it is persisted.
type Validator interface {
	ValidateNewUser(ctx context.Context, user models.NewUser) error
}

// UserService implements user registration and lookup.
type UserService struct {
	repo      UserRepository
	validator Validator
	log       *zap.Logger
}

// NewUserService constructs a UserService. A nil log disables logging.
func NewUserService(repo UserRepository, validator Validator, log *zap.Logger) *UserService {
	if log == nil {
		log = zap.NewNop()
	}
	return &UserService{repo: repo, validator: validator, log: log.Named("user_service")}
}

// CreateNewUser validates newUser and, on success, stores it.
// Validation errors are returned unchanged and nothing is persisted.
func (s *UserService) CreateNewUser(ctx context.Context, newUser models.NewUser) error {
	log := s.log.With(zap.String("login", newUser.Login))

	if err := s.validator.ValidateNewUser(ctx, newUser); err != nil {
		log.Warn("new user rejected", zap.Error(err))
		return err
	}

	if err := s.repo.Save(ctx, newUser.ToUser()); err != nil {
		log.Error("failed to save user", zap.Error(err))
		return err
	}

	log.Info("user created")
	return nil
}

// GetUserByLogin returns the registered user for login.
func (s *UserService) GetUserByLogin(ctx context.Context, login string) (models.User, error) {
	user, err := s.repo.GetUserByLogin(ctx, login)
	if err != nil {
		s.log.Debug("user lookup failed", zap.String("login", login), zap.Error(err))
		return models.User{}, err
	}
	return user, nil
}
