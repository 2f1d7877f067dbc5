// Copyright (c) 2025 Pollhive Authors.
// Licensed under the MIT License; see LICENSE.

package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pollhive/pollhive/middleware"
	"github.com/pollhive/pollhive/service"
	"github.com/pollhive/pollhive/store"
	"github.com/pollhive/pollhive/testutil"
)

// testEnv bundles the wired handlers and their backing database.
type testEnv struct {
	conn     *sql.DB
	accounts *service.AccountService
	polls    *service.PollService
	auth     *AuthHandler
	poll     *PollHandler
	voting   *VotingHandler
	results  *ResultsHandler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	conn := testutil.SetupTestDB(t)
	t.Cleanup(func() { conn.Close() })

	st := store.New(conn)
	accounts := service.NewAccountService(st, time.Hour, 4)
	polls := service.NewPollService(st)

	return &testEnv{
		conn:     conn,
		accounts: accounts,
		polls:    polls,
		auth:     NewAuthHandler(accounts),
		poll:     NewPollHandler(polls),
		voting:   NewVotingHandler(polls),
		results:  NewResultsHandler(polls),
	}
}

// serve runs a request through session resolution and the handler,
// exactly as the router wires them.
func (e *testEnv) serve(h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	middleware.WithUser(e.accounts, h)(w, req)
	return w
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}
