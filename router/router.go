// Copyright (c) 2025 Pollhive Authors.
// Licensed under the MIT License; see LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/pollhive/pollhive/cliparse"
	"github.com/pollhive/pollhive/handlers"
	"github.com/pollhive/pollhive/middleware"
	"github.com/pollhive/pollhive/service"
	"github.com/pollhive/pollhive/store"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Wire store, services, handlers
	st := store.New(db)
	accounts := service.NewAccountService(st, cfg.SessionTTL, cfg.BcryptCost)
	polls := service.NewPollService(st)

	authHandler := handlers.NewAuthHandler(accounts)
	pollHandler := handlers.NewPollHandler(polls)
	votingHandler := handlers.NewVotingHandler(polls)
	resultsHandler := handlers.NewResultsHandler(polls)

	// Every route gets logging; session resolution everywhere it can
	// matter, so handlers only ever look at the request context.
	route := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.WithUser(accounts, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Accounts and sessions
	mux.HandleFunc("POST /auth/register", middleware.WithLogging(authHandler.Register))
	mux.HandleFunc("POST /auth/login", middleware.WithLogging(authHandler.Login))
	mux.HandleFunc("POST /auth/logout", route(authHandler.Logout))
	mux.HandleFunc("GET /auth/me", route(authHandler.Me))

	// Poll management
	mux.HandleFunc("POST /polls", route(pollHandler.CreatePoll))
	mux.HandleFunc("GET /polls", route(pollHandler.ListPolls))
	mux.HandleFunc("GET /polls/{id}", route(pollHandler.GetPoll))
	mux.HandleFunc("PUT /polls/{id}", route(pollHandler.UpdatePoll))
	mux.HandleFunc("DELETE /polls/{id}", route(pollHandler.DeletePoll))

	// Voting and results
	mux.HandleFunc("POST /polls/{id}/vote", route(votingHandler.CastVote))
	mux.HandleFunc("GET /polls/{id}/results", route(resultsHandler.GetResults))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pollhive API v1"))
	})

	return mux
}
