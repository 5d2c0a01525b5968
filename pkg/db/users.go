package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/altdir/altdir/models"
	"github.com/google/uuid"
)

// CreateUser inserts a new account and returns it with its generated ID.
func (db *DB) CreateUser(email, name, provider, passwordHash string) (*models.User, error) {
	user := &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         name,
		Provider:     provider,
		PasswordHash: passwordHash,
	}

	_, err := db.Exec(`
		INSERT INTO users (user_id, email, name, provider, password_hash)
		VALUES (?, ?, ?, ?, ?)
	`, user.ID, email, nullable(name), nullable(provider), nullable(passwordHash))
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// GetUserByEmail finds an account by email. Returns nil when absent.
func (db *DB) GetUserByEmail(email string) (*models.User, error) {
	return db.scanUser(db.QueryRow(`
		SELECT user_id, email, COALESCE(name, ''), COALESCE(provider, ''),
		       COALESCE(password_hash, ''), created_at
		FROM users WHERE email = ?
	`, email))
}

// GetUserByID finds an account by ID. Returns nil when absent.
func (db *DB) GetUserByID(id string) (*models.User, error) {
	return db.scanUser(db.QueryRow(`
		SELECT user_id, email, COALESCE(name, ''), COALESCE(provider, ''),
		       COALESCE(password_hash, ''), created_at
		FROM users WHERE user_id = ?
	`, id))
}

func (db *DB) scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Provider, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return &u, nil
}
