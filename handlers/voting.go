// Copyright (c) 2025 Pollhive Authors.
// Licensed under the MIT License; see LICENSE.

package handlers

import (
	"net/http"

	"github.com/pollhive/pollhive/middleware"
	"github.com/pollhive/pollhive/models"
	"github.com/pollhive/pollhive/service"
)

type VotingHandler struct {
	polls *service.PollService
}

func NewVotingHandler(polls *service.PollService) *VotingHandler {
	return &VotingHandler{polls: polls}
}

// CastVote handles POST /polls/:id/vote
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id is required")
		return
	}

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// An absent index is a validation error distinct from index 0
	if req.OptionIndex == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "optionIndex is required")
		return
	}

	vote, err := h.polls.CastVote(middleware.UserFrom(r.Context()), pollID, *req.OptionIndex)
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, vote)
}
