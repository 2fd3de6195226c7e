// Package repository provides persistence implementations for registered users.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atinyakov/userkeeper/internal/models"
)

// PostgresUserRepository implements user persistence using a PostgreSQL database.
type PostgresUserRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository with the given database connection.
// db must be a valid *sql.DB connected to a PostgreSQL instance.
func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{DB: db}
}

// IsLoginExists checks whether a user with the specified login exists in the database.
func (r *PostgresUserRepository) IsLoginExists(ctx context.Context, login string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE login = $1)`,
		login,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("IsLoginExists: %w", err)
	}
	return exists, nil
}

// GetUserByLogin fetches a single user by login.
// Returns *models.UserNotFoundError when no row matches.
func (r *PostgresUserRepository) GetUserByLogin(ctx context.Context, login string) (models.User, error) {
	var user models.User
	err := r.DB.QueryRowContext(ctx, `
		SELECT full_name, login, password FROM users WHERE login = $1
	`, login).Scan(&user.FullName, &user.Login, &user.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, &models.UserNotFoundError{Login: login}
	}
	if err != nil {
		return models.User{}, fmt.Errorf("GetUserByLogin: %w", err)
	}
	return user, nil
}

// Save inserts the user. The ON CONFLICT DO NOTHING clause leaves an existing
// row untouched, and the conflict is reported as *models.LoginExistsError.
func (r *PostgresUserRepository) Save(ctx context.Context, user models.User) error {
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO users (login, full_name, password) VALUES ($1, $2, $3)
		ON CONFLICT (login) DO NOTHING
	`, user.Login, user.FullName, user.Password)
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Save: rows affected: %w", err)
	}
	if rows == 0 {
		return &models.LoginExistsError{Login: user.Login}
	}
	return nil
}
