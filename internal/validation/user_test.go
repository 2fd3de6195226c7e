package validation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atinyakov/userkeeper/internal/models"
)

const (
	fullName      = "Anton Kononko"
	login         = "anton888"
	validPassword = "abcde1"
)

type mockLoginChecker struct {
	IsLoginExistsFunc func(ctx context.Context, login string) (bool, error)
}

func (m *mockLoginChecker) IsLoginExists(ctx context.Context, login string) (bool, error) {
	return m.IsLoginExistsFunc(ctx, login)
}

func freeLogin(t *testing.T) *mockLoginChecker {
	return &mockLoginChecker{
		IsLoginExistsFunc: func(_ context.Context, got string) (bool, error) {
			if got != login {
				t.Errorf("IsLoginExists received login = %q; want %q", got, login)
			}
			return false, nil
		},
	}
}

func newUser(password string) models.NewUser {
	return models.NewUser{FullName: fullName, Login: login, Password: password}
}

func TestValidateNewUser_Valid(t *testing.T) {
	v := NewUserValidator(freeLogin(t))

	assert.NoError(t, v.ValidateNewUser(context.Background(), newUser(validPassword)))
}

func TestValidateNewUser_BoundaryLengths(t *testing.T) {
	v := NewUserValidator(freeLogin(t))

	assert.NoError(t, v.ValidateNewUser(context.Background(), newUser("abcdef")))
	assert.NoError(t, v.ValidateNewUser(context.Background(), newUser("abcd1234")))
}

func TestValidateNewUser_LoginExists(t *testing.T) {
	v := NewUserValidator(&mockLoginChecker{
		IsLoginExistsFunc: func(context.Context, string) (bool, error) { return true, nil },
	})

	// the password is invalid too, but the login check wins
	err := v.ValidateNewUser(context.Background(), newUser("ab"))

	var le *models.LoginExistsError
	require.ErrorAs(t, err, &le)
	assert.EqualError(t, err, "Login anton888 already taken")
}

func TestValidateNewUser_RepositoryError(t *testing.T) {
	dbErr := errors.New("db down")
	v := NewUserValidator(&mockLoginChecker{
		IsLoginExistsFunc: func(context.Context, string) (bool, error) { return false, dbErr },
	})

	err := v.ValidateNewUser(context.Background(), newUser(validPassword))

	require.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, models.ErrConstraintViolation)
}

func TestValidateNewUser_InvalidPasswords(t *testing.T) {
	tests := []struct {
		name       string
		password   string
		violations int
	}{
		{"empty", "", 2},
		{"short", "ab", 1},
		{"long", "123456789", 1},
		{"not matching regex", "її№;$", 2},
		{"symbol within length", "abc$12", 1},
		{"space", "abc 12", 1},
	}

	v := NewUserValidator(freeLogin(t))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateNewUser(context.Background(), newUser(tt.password))

			var cv *models.ConstraintViolationError
			require.ErrorAs(t, err, &cv)
			assert.EqualError(t, err, "You have errors in you object")
			assert.Len(t, cv.Fields(), tt.violations)
		})
	}
}
