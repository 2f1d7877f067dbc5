// Copyright (c) 2025 Pollhive Authors.
// Licensed under the MIT License; see LICENSE.

package handlers

import (
	"net/http"

	"github.com/pollhive/pollhive/middleware"
	"github.com/pollhive/pollhive/service"
)

type ResultsHandler struct {
	polls *service.PollService
}

func NewResultsHandler(polls *service.PollService) *ResultsHandler {
	return &ResultsHandler{polls: polls}
}

// GetResults handles GET /polls/:id/results
// Public. The tally is recomputed from stored votes on every call;
// there is no cached or client-maintained count to trust.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id is required")
		return
	}

	results, err := h.polls.Tally(pollID)
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, results)
}
