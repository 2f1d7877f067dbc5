// Copyright (c) 2025 Pollhive Authors.
// Licensed under the MIT License; see LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/pollhive/pollhive/middleware"
	"github.com/pollhive/pollhive/models"
)

// statusForError maps the sentinel error taxonomy to HTTP status
// codes. Anything unrecognized is a storage failure.
func statusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrQuestionRequired),
		errors.Is(err, models.ErrNotEnoughOptions),
		errors.Is(err, models.ErrOptionOutOfRange),
		errors.Is(err, models.ErrNameRequired),
		errors.Is(err, models.ErrEmailRequired),
		errors.Is(err, models.ErrPasswordTooShort):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrNotAuthenticated),
		errors.Is(err, models.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, models.ErrPollNotFound),
		errors.Is(err, models.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrAlreadyVoted),
		errors.Is(err, models.ErrEmailTaken),
		errors.Is(err, models.ErrOptionsInUse):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError translates a service error into a JSON error response.
// Store failures keep their message intact.
func respondError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "error", err)
	}
	middleware.ErrorResponse(w, status, err.Error())
}
