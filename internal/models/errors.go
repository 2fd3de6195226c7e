package models

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// Sentinel errors for matching with errors.Is.
var (
	ErrLoginExists         = errors.New("login already taken")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrUserNotFound        = errors.New("user not found")
)

// constraintViolationMessage is returned for every failed validation,
// regardless of which or how many rules were broken.
const constraintViolationMessage = "You have errors in you object"

// LoginExistsError is returned when a login is already registered.
type LoginExistsError struct {
	Login string
}

func (e *LoginExistsError) Error() string {
	return fmt.Sprintf("Login %s already taken", e.Login)
}

// Is reports whether target is ErrLoginExists.
func (e *LoginExistsError) Is(target error) bool {
	return target == ErrLoginExists
}

// ConstraintViolationError is returned when a NewUser breaks one or more
// field rules. Violations holds the individual failures combined with multierr.
type ConstraintViolationError struct {
	Violations error
}

func (e *ConstraintViolationError) Error() string {
	return constraintViolationMessage
}

// Is reports whether target is ErrConstraintViolation.
func (e *ConstraintViolationError) Is(target error) bool {
	return target == ErrConstraintViolation
}

// Fields returns the messages of the individual violations.
func (e *ConstraintViolationError) Fields() []string {
	errs := multierr.Errors(e.Violations)
	out := make([]string, 0, len(errs))
	for _, err := range errs {
		out = append(out, err.Error())
	}
	return out
}

// UserNotFoundError is returned when no user is stored for a login.
type UserNotFoundError struct {
	Login string
}

func (e *UserNotFoundError) Error() string {
	return fmt.Sprintf("user %s not found", e.Login)
}

// Is reports whether target is ErrUserNotFound.
func (e *UserNotFoundError) Is(target error) bool {
	return target == ErrUserNotFound
}
