package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"stylelove/internal/models"

	"github.com/google/uuid"
)

var (
	ErrEmailExists  = errors.New("email already exists")
	ErrUserNotFound = errors.New("user not found")
)

// CreateUser stores a new account and fills in its generated ID and creation time.
func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	user.ID = uuid.New().String()
	user.CreatedAt = s.now()

	query := s.rebind(`INSERT INTO users (id, email, name, password_hash, created_at) VALUES (?, ?, ?, ?, ?)`)
	_, err := s.db.ExecContext(ctx, query, user.ID, user.Email, nullString(user.Name), user.PasswordHash, user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrEmailExists
		}
		return fmt.Errorf("CreateUser(): %w", err)
	}
	return nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getUser(ctx, "email", email)
}

func (s *Store) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.getUser(ctx, "id", id)
}

func (s *Store) getUser(ctx context.Context, column, value string) (*models.User, error) {
	query := s.rebind(`SELECT id, email, name, password_hash, created_at FROM users WHERE ` + column + ` = ?`)

	var user models.User
	var name sql.NullString
	err := s.db.QueryRowContext(ctx, query, value).Scan(&user.ID, &user.Email, &name, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("getUser(): %w", err)
	}
	if name.Valid {
		user.Name = name.String
	}
	return &user, nil
}
