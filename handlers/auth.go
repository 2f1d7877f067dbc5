// Copyright (c) 2025 Pollhive Authors.
// Licensed under the MIT License; see LICENSE.

package handlers

import (
	"net/http"
	"time"

	"github.com/pollhive/pollhive/middleware"
	"github.com/pollhive/pollhive/models"
	"github.com/pollhive/pollhive/service"
)

type AuthHandler struct {
	accounts *service.AccountService
}

func NewAuthHandler(accounts *service.AccountService) *AuthHandler {
	return &AuthHandler{accounts: accounts}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	user, err := h.accounts.Register(req.Name, req.Email, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, user)
}

// Login handles POST /auth/login
// On success the session token is returned in the body and set as an
// HttpOnly cookie, so both browser and API clients can authenticate.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	session, user, err := h.accounts.Login(req.Email, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Token: session.Token,
		User:  *user,
	})
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if middleware.UserFrom(r.Context()) == nil {
		respondError(w, models.ErrNotAuthenticated)
		return
	}

	if token := middleware.SessionToken(r); token != "" {
		if err := h.accounts.Logout(token); err != nil {
			respondError(w, err)
			return
		}
	}

	// Expire the cookie
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	middleware.JSONResponse(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())
	if user == nil {
		respondError(w, models.ErrNotAuthenticated)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, user)
}
