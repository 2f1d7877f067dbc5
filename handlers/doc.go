// Copyright (c) 2025 Pollhive Authors.
// Licensed under the MIT License; see LICENSE.

/*
Package handlers contains HTTP request handlers for the Pollhive API.

# Handler Types

Each handler is a struct holding the service it fronts:

  - AuthHandler: registration, login, logout, current user
  - PollHandler: poll lifecycle (create, list, get, update, delete)
  - VotingHandler: vote casting
  - ResultsHandler: tally retrieval

Handlers are created via constructor functions:

	pollHandler := handlers.NewPollHandler(pollService)

They parse the request, read the acting user out of the request context
(placed there by middleware.WithUser), call the service, and map the
returned sentinel error to a status code via statusForError. No
handler touches the database directly.

# Auth Flow

	POST /auth/register → Register (201)
	POST /auth/login    → Login (200, token + cookie)
	POST /auth/logout   → Logout (200, cookie cleared)
	GET  /auth/me       → Me (200 or 401)

# Poll Flow

	POST   /polls              → CreatePoll (auth required)
	GET    /polls              → ListPolls (caller's own polls)
	GET    /polls/{id}         → GetPoll (public, embeds votes)
	PUT    /polls/{id}         → UpdatePoll (owner only)
	DELETE /polls/{id}         → DeletePoll (owner only)
	POST   /polls/{id}/vote    → CastVote (auth required, once per poll)
	GET    /polls/{id}/results → GetResults (public, server-computed)
*/
package handlers
