// Copyright (c) 2025 Pollhive Authors.
// Licensed under the MIT License; see LICENSE.

/*
Package main provides the entry point for the Pollhive API server.

Pollhive is a polling service: registered users create polls with
multiple options, other users vote once per poll, and results are
served as aggregated counts and percentages.

# Starting the Server

The server takes configuration from environment variables (optionally
via a .env file) or CLI flags:

	DATABASE_URL=postgres://... DATABASE_TYPE=postgres go run main.go

Or with flags:

	go run main.go -p 4000 -d "file:pollhive.db" -t sqlite

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL connection string or SQLite file

Optional settings:

  - PORT (-p): server port (default 4000)
  - DATABASE_TYPE (-t): sqlite or postgres (default sqlite)
  - SESSION_TTL (-session-ttl): login session lifetime (default 168h)
  - BCRYPT_COST (-bcrypt-cost): password hash cost (default 10)

# Architecture

The server uses a layered architecture with dependency injection:

  - handlers: HTTP request handlers (auth, polls, voting, results)
  - router: route definitions using Go 1.22+ routing
  - service: business rules (validation, ownership, voting, tallies)
  - store: SQL persistence for users, sessions, polls, and votes
  - middleware: logging, CORS, JSON helpers, session resolution
  - models: domain types and the sentinel error taxonomy
  - auth: password hashing and token generation
  - db: schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
