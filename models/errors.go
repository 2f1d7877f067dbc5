// Copyright (c) 2025 Pollhive Authors.
// Licensed under the MIT License; see LICENSE.

package models

import "errors"

// Validation errors (bad input).
var (
	ErrQuestionRequired = errors.New("a question is required")
	ErrNotEnoughOptions = errors.New("at least two options are required")
	ErrOptionOutOfRange = errors.New("option index is out of range")
	ErrNameRequired     = errors.New("a name is required")
	ErrEmailRequired    = errors.New("an email address is required")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
)

// Authentication and authorization errors.
var (
	ErrNotAuthenticated   = errors.New("you must be logged in")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotOwner           = errors.New("only the poll owner may do that")
)

// Lookup and conflict errors.
var (
	ErrPollNotFound    = errors.New("poll not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrSessionNotFound = errors.New("session not found or expired")
	ErrEmailTaken      = errors.New("email is already registered")
	ErrAlreadyVoted    = errors.New("you have already voted on this poll")
	ErrOptionsInUse    = errors.New("options referenced by existing votes cannot be removed")
)
