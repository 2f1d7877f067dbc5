// Copyright (c) 2025 Pollhive Authors.
// Licensed under the MIT License; see LICENSE.

package service

import (
	"errors"
	"testing"
	"time"

	"github.com/pollhive/pollhive/models"
	"github.com/pollhive/pollhive/store"
	"github.com/pollhive/pollhive/testutil"
)

func newTestAccounts(t *testing.T) (*AccountService, *store.Store, func()) {
	t.Helper()
	conn := testutil.SetupTestDB(t)
	st := store.New(conn)
	return NewAccountService(st, time.Hour, 4), st, func() { conn.Close() }
}

func TestRegister(t *testing.T) {
	svc, _, cleanup := newTestAccounts(t)
	defer cleanup()

	tests := []struct {
		name     string
		userName string
		email    string
		password string
		wantErr  error
	}{
		{"valid", "Ada", "ada@example.com", "long enough", nil},
		{"missing name", "", "x@example.com", "long enough", models.ErrNameRequired},
		{"missing email", "Ada", "  ", "long enough", models.ErrEmailRequired},
		{"short password", "Ada", "short@example.com", "tiny", models.ErrPasswordTooShort},
		{"duplicate email", "Second Ada", "ADA@example.com", "long enough", models.ErrEmailTaken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.Register(tt.userName, tt.email, tt.password)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Register() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Register() error = %v", err)
			}
			if user.ID == "" {
				t.Error("registered user has no ID")
			}
			if user.Email != "ada@example.com" {
				t.Errorf("email not normalized: %q", user.Email)
			}
			if user.PasswordHash == tt.password {
				t.Error("password stored in plaintext")
			}
		})
	}
}

func TestLoginAndLogout(t *testing.T) {
	svc, st, cleanup := newTestAccounts(t)
	defer cleanup()

	if _, err := svc.Register("Ada", "ada@example.com", "long enough"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	// Wrong password and unknown email report the same error
	if _, _, err := svc.Login("ada@example.com", "wrong"); !errors.Is(err, models.ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login("nobody@example.com", "long enough"); !errors.Is(err, models.ErrInvalidCredentials) {
		t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}

	session, user, err := svc.Login("Ada@Example.com", "long enough")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if session.Token == "" {
		t.Fatal("login returned empty token")
	}
	if user.Email != "ada@example.com" {
		t.Errorf("login returned wrong user: %q", user.Email)
	}

	resolved, err := svc.UserByToken(session.Token)
	if err != nil {
		t.Fatalf("UserByToken() error = %v", err)
	}
	if resolved.ID != user.ID {
		t.Errorf("token resolved to wrong user: %s", resolved.ID)
	}

	if err := svc.Logout(session.Token); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if _, err := svc.UserByToken(session.Token); !errors.Is(err, models.ErrNotAuthenticated) {
		t.Errorf("after logout: expected ErrNotAuthenticated, got %v", err)
	}

	// Logging out an already-revoked token is fine
	if err := svc.Logout(session.Token); err != nil {
		t.Errorf("second Logout() error = %v", err)
	}

	_ = st
}

func TestUserByToken_ExpiredAndEmpty(t *testing.T) {
	svc, st, cleanup := newTestAccounts(t)
	defer cleanup()

	user, err := svc.Register("Ada", "ada@example.com", "long enough")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	now := time.Now().UTC()
	expired := &models.Session{
		Token:     "stale-token",
		UserID:    user.ID,
		CreatedAt: now.Add(-2 * time.Hour),
		ExpiresAt: now.Add(-time.Hour),
	}
	if err := st.CreateSession(expired); err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}

	if _, err := svc.UserByToken("stale-token"); !errors.Is(err, models.ErrNotAuthenticated) {
		t.Errorf("expired token: expected ErrNotAuthenticated, got %v", err)
	}
	if _, err := svc.UserByToken(""); !errors.Is(err, models.ErrNotAuthenticated) {
		t.Errorf("empty token: expected ErrNotAuthenticated, got %v", err)
	}
}
