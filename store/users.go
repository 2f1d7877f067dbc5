// Copyright (c) 2025 Pollhive Authors.
// Licensed under the MIT License; see LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/pollhive/pollhive/models"
)

// CreateUser inserts a new user. A duplicate email is reported as
// models.ErrEmailTaken via the unique constraint on users.email.
func (s *Store) CreateUser(u *models.User) error {
	_, err := s.db.Exec(`
		INSERT INTO users (id, name, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, u.ID, u.Name, u.Email, u.PasswordHash, u.CreatedAt)

	if isUniqueViolation(err) {
		return models.ErrEmailTaken
	}
	if err != nil {
		return fmt.Errorf("store: failed to insert user: %w", err)
	}
	return nil
}

func (s *Store) UserByEmail(email string) (*models.User, error) {
	return s.scanUser(s.db.QueryRow(`
		SELECT id, name, email, password_hash, created_at
		FROM users
		WHERE email = $1
	`, email))
}

func (s *Store) UserByID(id string) (*models.User, error) {
	return s.scanUser(s.db.QueryRow(`
		SELECT id, name, email, password_hash, created_at
		FROM users
		WHERE id = $1
	`, id))
}

func (s *Store) scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, models.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: failed to query user: %w", err)
	}
	return &u, nil
}

// CreateSession inserts a login session row.
func (s *Store) CreateSession(sess *models.Session) error {
	_, err := s.db.Exec(`
		INSERT INTO session (token, user_id, created_at, expires_at)
		VALUES ($1, $2, $3, $4)
	`, sess.Token, sess.UserID, sess.CreatedAt, sess.ExpiresAt)

	if err != nil {
		return fmt.Errorf("store: failed to insert session: %w", err)
	}
	return nil
}

// DeleteSession removes a session. Deleting an unknown token is not an
// error, which makes logout idempotent.
func (s *Store) DeleteSession(token string) error {
	_, err := s.db.Exec(`DELETE FROM session WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("store: failed to delete session: %w", err)
	}
	return nil
}

// UserBySessionToken resolves a session token to its user. Expired and
// unknown tokens both return models.ErrSessionNotFound.
func (s *Store) UserBySessionToken(token string, now time.Time) (*models.User, error) {
	var u models.User
	err := s.db.QueryRow(`
		SELECT u.id, u.name, u.email, u.password_hash, u.created_at
		FROM session s
		JOIN users u ON u.id = s.user_id
		WHERE s.token = $1 AND s.expires_at > $2
	`, token, now).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, models.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: failed to query session: %w", err)
	}
	return &u, nil
}
