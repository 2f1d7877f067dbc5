// Copyright (c) 2025 Pollhive Authors.
// Licensed under the MIT License; see LICENSE.

/*
Package models defines request, response, and domain types for the API,
along with the sentinel error taxonomy shared by every layer.

# Request Types

Types for parsing incoming JSON:

  - RegisterRequest: name, email, password
  - LoginRequest: email, password
  - CreatePollRequest / UpdatePollRequest: question, options
  - CastVoteRequest: optionIndex (pointer, so "absent" is detectable)

# Response Types

Types for JSON responses:

  - LoginResponse: token, user
  - ListPollsResponse: polls
  - GetPollResponse: poll (with embedded votes)
  - DeletePollResponse: message
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - User: registered account (password hash never serialized)
  - Session: opaque login token with expiry
  - Poll: question with an ordered list of option labels
  - Vote: one user's choice of one option on one poll
  - PollResults / OptionTally: server-computed counts and percentages

# Errors

Sentinel errors in errors.go classify every failure the service can
produce. Handlers map them to HTTP status codes with errors.Is:
validation errors to 400, ErrNotAuthenticated and ErrInvalidCredentials
to 401, ErrNotOwner to 403, not-found errors to 404, and conflict
errors (ErrAlreadyVoted, ErrEmailTaken, ErrOptionsInUse) to 409.
Anything unrecognized is a storage failure and surfaces as 500 with its
message intact.
*/
package models
