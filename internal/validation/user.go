// Package validation checks registration requests against business rules
// before they reach persistence.
package validation

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"unicode/utf8"

	"go.uber.org/multierr"

	"github.com/atinyakov/userkeeper/internal/models"
)

// Password rules.
const (
	PasswordMinLength = 6
	PasswordMaxLength = 8
)

var passwordPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)

var (
	errPasswordLength = fmt.Errorf("password: length must be between %d and %d", PasswordMinLength, PasswordMaxLength)
	errPasswordChars  = errors.New("password: only latin letters and digits are allowed")
)

// LoginChecker answers whether a login is already registered.
type LoginChecker interface {
	IsLoginExists(ctx context.Context, login string) (bool, error)
}

// UserValidator validates NewUser requests.
type UserValidator struct {
	repo LoginChecker
}

// NewUserValidator constructs a UserValidator backed by repo.
func NewUserValidator(repo LoginChecker) *UserValidator {
	return &UserValidator{repo: repo}
}

// ValidateNewUser returns *models.LoginExistsError if the login is taken,
// otherwise *models.ConstraintViolationError if the password breaks any rule.
// A nil return means the user can be created.
func (v *UserValidator) ValidateNewUser(ctx context.Context, user models.NewUser) error {
	exists, err := v.repo.IsLoginExists(ctx, user.Login)
	if err != nil {
		return fmt.Errorf("check login: %w", err)
	}
	if exists {
		return &models.LoginExistsError{Login: user.Login}
	}

	if violations := validatePassword(user.Password); violations != nil {
		return &models.ConstraintViolationError{Violations: violations}
	}
	return nil
}

// validatePassword evaluates every password rule and combines the failures.
func validatePassword(password string) error {
	var errs error

	n := utf8.RuneCountInString(password)
	if n < PasswordMinLength || n > PasswordMaxLength {
		errs = multierr.Append(errs, errPasswordLength)
	}
	if !passwordPattern.MatchString(password) {
		errs = multierr.Append(errs, errPasswordChars)
	}
	return errs
}
