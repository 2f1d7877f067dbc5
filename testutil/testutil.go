// Copyright (c) 2025 Pollhive Authors.
// Licensed under the MIT License; see LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/pollhive/pollhive/auth"
	"github.com/pollhive/pollhive/cliparse"
	"github.com/pollhive/pollhive/db"
	"github.com/pollhive/pollhive/models"
)

// TestPassword is the plaintext behind every test user's hash.
const TestPassword = "password123"

// testBcryptCost keeps hashing fast in tests; bcrypt's minimum.
const testBcryptCost = 4

// SetupTestDB creates a fresh in-memory SQLite database with the full
// schema. Each call gets its own database, so tests stay independent.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// A named shared-cache memory DB survives as long as one
	// connection is open; pinning the pool to one connection keeps it
	// alive and serializes writers.
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         4000,
		DatabaseURL:  "file:test?mode=memory",
		DatabaseType: "sqlite",
		SessionTTL:   time.Hour,
		BcryptCost:   testBcryptCost,
	}
}

// CreateTestUser inserts a user whose password is TestPassword.
func CreateTestUser(t *testing.T, conn *sql.DB, name, email string) *models.User {
	t.Helper()

	hash, err := auth.HashPassword(TestPassword, testBcryptCost)
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}

	u := &models.User{
		ID:           auth.NewID(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	_, err = conn.Exec(`
		INSERT INTO users (id, name, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, u.ID, u.Name, u.Email, u.PasswordHash, u.CreatedAt)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return u
}

// CreateTestSession inserts a session for a user and returns its token.
func CreateTestSession(t *testing.T, conn *sql.DB, userID string) string {
	t.Helper()

	token, err := auth.GenerateSessionToken()
	if err != nil {
		t.Fatalf("Failed to generate session token: %v", err)
	}
	now := time.Now().UTC()
	_, err = conn.Exec(`
		INSERT INTO session (token, user_id, created_at, expires_at)
		VALUES ($1, $2, $3, $4)
	`, token, userID, now, now.Add(time.Hour))
	if err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}

	return token
}

// CreateTestPoll inserts a poll and returns its ID. createdAt lets
// callers control list ordering.
func CreateTestPoll(t *testing.T, conn *sql.DB, ownerID, question string, options []string, createdAt time.Time) string {
	t.Helper()

	pollID := auth.NewID()
	encoded, err := json.Marshal(options)
	if err != nil {
		t.Fatalf("Failed to encode options: %v", err)
	}
	_, err = conn.Exec(`
		INSERT INTO poll (id, owner_id, question, options, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, pollID, ownerID, question, string(encoded), createdAt)
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}

	return pollID
}

// CastTestVote inserts a vote directly, bypassing the service layer.
func CastTestVote(t *testing.T, conn *sql.DB, pollID, voterID string, optionIndex int) string {
	t.Helper()

	voteID := auth.NewID()
	_, err := conn.Exec(`
		INSERT INTO vote (id, poll_id, voter_id, option_index, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, voteID, pollID, voterID, optionIndex, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}

	return voteID
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
