// Copyright (c) 2025 Pollhive Authors.
// Licensed under the MIT License; see LICENSE.

package models

import "time"

// Request types

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreatePollRequest struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type UpdatePollRequest struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type CastVoteRequest struct {
	OptionIndex *int `json:"optionIndex"`
}

// Response types

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type ListPollsResponse struct {
	Polls []Poll `json:"polls"`
}

type GetPollResponse struct {
	Poll PollWithVotes `json:"poll"`
}

type DeletePollResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Domain types

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
}

type Session struct {
	Token     string    `json:"-"` // Never expose in JSON
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Poll struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Question  string    `json:"question"`
	Options   []string  `json:"options"`
	CreatedAt time.Time `json:"created_at"`
}

type Vote struct {
	ID          string    `json:"id"`
	PollID      string    `json:"poll_id"`
	VoterID     string    `json:"voter_id"`
	OptionIndex int       `json:"option_index"`
	CreatedAt   time.Time `json:"created_at"`
}

type PollWithVotes struct {
	Poll
	Votes []Vote `json:"votes"`
}

// Tally types

type OptionTally struct {
	OptionIndex int    `json:"option_index"`
	Label       string `json:"label"`
	Votes       int    `json:"votes"`
	Percentage  int    `json:"percentage"`
}

type PollResults struct {
	PollID     string        `json:"poll_id"`
	Question   string        `json:"question"`
	TotalVotes int           `json:"total_votes"`
	Options    []OptionTally `json:"options"`
}
