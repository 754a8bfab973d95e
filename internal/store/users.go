// ABOUTME: User persistence methods on SQLiteStore
// ABOUTME: Credential store backing registration, login, and the auth gate

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// CreateUser inserts a new user. Returns ErrEmailExists if the email is
// already registered.
func (s *SQLiteStore) CreateUser(ctx context.Context, user *User) error {
	if !user.Role.Valid() {
		return fmt.Errorf("invalid role: %q", user.Role)
	}

	query := `
		INSERT INTO users (id, name, email, phone, role, password_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.Phone,
		string(user.Role),
		user.PasswordHash,
		user.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return ErrEmailExists
		}
		return fmt.Errorf("inserting user: %w", err)
	}

	s.logger.Info("created user", "id", user.ID, "email", user.Email, "role", user.Role)
	return nil
}

// GetUser retrieves a user by ID. The password hash is not populated.
func (s *SQLiteStore) GetUser(ctx context.Context, id string) (*User, error) {
	query := `
		SELECT id, name, email, phone, role, created_at
		FROM users
		WHERE id = ?
	`
	return s.scanUser(s.db.QueryRowContext(ctx, query, id), false)
}

// GetUserByEmail retrieves a user by email. The password hash is not populated.
func (s *SQLiteStore) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	query := `
		SELECT id, name, email, phone, role, created_at
		FROM users
		WHERE email = ?
	`
	return s.scanUser(s.db.QueryRowContext(ctx, query, email), false)
}

// GetUserByEmailWithPassword retrieves a user by email including the password
// hash. Only the login path should call this.
func (s *SQLiteStore) GetUserByEmailWithPassword(ctx context.Context, email string) (*User, error) {
	query := `
		SELECT id, name, email, phone, role, password_hash, created_at
		FROM users
		WHERE email = ?
	`
	return s.scanUser(s.db.QueryRowContext(ctx, query, email), true)
}

// scanUser scans a single user row, optionally including the password hash.
func (s *SQLiteStore) scanUser(row *sql.Row, withPassword bool) (*User, error) {
	var user User
	var role string
	var createdAtStr string
	var err error

	if withPassword {
		err = row.Scan(&user.ID, &user.Name, &user.Email, &user.Phone, &role, &user.PasswordHash, &createdAtStr)
	} else {
		err = row.Scan(&user.ID, &user.Name, &user.Email, &user.Phone, &role, &createdAtStr)
	}

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying user: %w", err)
	}

	user.Role = Role(role)
	user.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}

	return &user, nil
}
