// Copyright (c) 2025 Pollhive Authors.
// Licensed under the MIT License; see LICENSE.

package service

import (
	"log/slog"
	"strings"
	"time"

	"github.com/pollhive/pollhive/auth"
	"github.com/pollhive/pollhive/models"
	"github.com/pollhive/pollhive/store"
)

// AccountService is the identity provider: registration, login
// sessions, and token-to-user resolution.
type AccountService struct {
	store      *store.Store
	sessionTTL time.Duration
	bcryptCost int
}

func NewAccountService(st *store.Store, sessionTTL time.Duration, bcryptCost int) *AccountService {
	return &AccountService{store: st, sessionTTL: sessionTTL, bcryptCost: bcryptCost}
}

const minPasswordLen = 8

// Register creates an account. The email is lowercased so lookups are
// case-insensitive; a duplicate comes back as models.ErrEmailTaken from
// the store's unique constraint.
func (s *AccountService) Register(name, email, password string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" {
		return nil, models.ErrNameRequired
	}
	if email == "" {
		return nil, models.ErrEmailRequired
	}
	if len(password) < minPasswordLen {
		return nil, models.ErrPasswordTooShort
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           auth.NewID(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.store.CreateUser(user); err != nil {
		return nil, err
	}

	slog.Info("user registered", "user_id", user.ID)
	return user, nil
}

// Login verifies credentials and opens a session. Unknown email and
// wrong password return the same error so the response reveals neither.
func (s *AccountService) Login(email, password string) (*models.Session, *models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.store.UserByEmail(email)
	if err != nil {
		if err == models.ErrUserNotFound {
			return nil, nil, models.ErrInvalidCredentials
		}
		return nil, nil, err
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, nil, models.ErrInvalidCredentials
	}

	token, err := auth.GenerateSessionToken()
	if err != nil {
		return nil, nil, err
	}
	now := time.Now().UTC()
	session := &models.Session{
		Token:     token,
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.store.CreateSession(session); err != nil {
		return nil, nil, err
	}

	slog.Info("user logged in", "user_id", user.ID)
	return session, user, nil
}

// Logout revokes a session. Unknown tokens are a no-op.
func (s *AccountService) Logout(token string) error {
	return s.store.DeleteSession(token)
}

// UserByToken resolves a session token to its user, or
// models.ErrNotAuthenticated when the token is empty, unknown, or
// expired.
func (s *AccountService) UserByToken(token string) (*models.User, error) {
	if token == "" {
		return nil, models.ErrNotAuthenticated
	}
	user, err := s.store.UserBySessionToken(token, time.Now().UTC())
	if err != nil {
		if err == models.ErrSessionNotFound {
			return nil, models.ErrNotAuthenticated
		}
		return nil, err
	}
	return user, nil
}
