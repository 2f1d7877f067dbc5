// Copyright (c) 2025 Pollhive Authors.
// Licensed under the MIT License; see LICENSE.

package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/pollhive/pollhive/middleware"
	"github.com/pollhive/pollhive/models"
	"github.com/pollhive/pollhive/testutil"
)

func TestRegister(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name       string
		body       interface{}
		wantStatus int
	}{
		{"valid", models.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "long enough"}, http.StatusCreated},
		{"missing name", models.RegisterRequest{Email: "x@example.com", Password: "long enough"}, http.StatusBadRequest},
		{"short password", models.RegisterRequest{Name: "Ada", Email: "y@example.com", Password: "tiny"}, http.StatusBadRequest},
		{"duplicate email", models.RegisterRequest{Name: "Ada II", Email: "ada@example.com", Password: "long enough"}, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/auth/register", tt.body, nil)
			w := env.serve(env.auth.Register, req)
			testutil.AssertStatus(t, w, tt.wantStatus)

			if tt.wantStatus == http.StatusCreated {
				var user models.User
				testutil.AssertJSON(t, w, &user)
				if user.ID == "" || user.Email != "ada@example.com" {
					t.Errorf("registered user = %+v", user)
				}
				// The hash must never appear in a response
				if strings.Contains(w.Body.String(), "password") {
					t.Errorf("response leaks password material: %s", w.Body.String())
				}
			}
		})
	}
}

func TestRegister_InvalidJSON(t *testing.T) {
	env := newTestEnv(t)

	req := testutil.MakeRequest("POST", "/auth/register", nil, nil)
	req.Body = http.NoBody
	w := env.serve(env.auth.Register, req)
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	testutil.CreateTestUser(t, env.conn, "Ada", "ada@example.com")

	// Success: token in body and cookie on the response
	req := testutil.MakeRequest("POST", "/auth/login", models.LoginRequest{
		Email:    "ada@example.com",
		Password: testutil.TestPassword,
	}, nil)
	w := env.serve(env.auth.Login, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.LoginResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Token == "" {
		t.Fatal("login response has no token")
	}
	if resp.User.Email != "ada@example.com" {
		t.Errorf("login user = %+v", resp.User)
	}

	var sessionCookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			sessionCookie = c
		}
	}
	if sessionCookie == nil || sessionCookie.Value != resp.Token {
		t.Error("session cookie missing or mismatched")
	}
	if sessionCookie != nil && !sessionCookie.HttpOnly {
		t.Error("session cookie is not HttpOnly")
	}

	// Bad credentials: one generic 401 for both failure modes
	for _, body := range []models.LoginRequest{
		{Email: "ada@example.com", Password: "wrong"},
		{Email: "nobody@example.com", Password: testutil.TestPassword},
	} {
		req := testutil.MakeRequest("POST", "/auth/login", body, nil)
		w := env.serve(env.auth.Login, req)
		testutil.AssertStatus(t, w, http.StatusUnauthorized)

		var errResp models.ErrorResponse
		testutil.AssertJSON(t, w, &errResp)
		if errResp.Message != models.ErrInvalidCredentials.Error() {
			t.Errorf("message = %q, want the generic credentials error", errResp.Message)
		}
	}
}

func TestLogoutAndMe(t *testing.T) {
	env := newTestEnv(t)
	user := testutil.CreateTestUser(t, env.conn, "Ada", "ada@example.com")
	token := testutil.CreateTestSession(t, env.conn, user.ID)

	// Me with a valid session
	req := testutil.MakeRequest("GET", "/auth/me", nil, bearer(token))
	w := env.serve(env.auth.Me, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var me models.User
	testutil.AssertJSON(t, w, &me)
	if me.ID != user.ID {
		t.Errorf("me = %+v, want %s", me, user.ID)
	}

	// Me without a session
	req = testutil.MakeRequest("GET", "/auth/me", nil, nil)
	w = env.serve(env.auth.Me, req)
	testutil.AssertStatus(t, w, http.StatusUnauthorized)

	// Logout requires a session
	req = testutil.MakeRequest("POST", "/auth/logout", nil, nil)
	w = env.serve(env.auth.Logout, req)
	testutil.AssertStatus(t, w, http.StatusUnauthorized)

	// Logout revokes the token
	req = testutil.MakeRequest("POST", "/auth/logout", nil, bearer(token))
	w = env.serve(env.auth.Logout, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	req = testutil.MakeRequest("GET", "/auth/me", nil, bearer(token))
	w = env.serve(env.auth.Me, req)
	testutil.AssertStatus(t, w, http.StatusUnauthorized)
}
