// Copyright (c) 2025 Pollhive Authors.
// Licensed under the MIT License; see LICENSE.

/*
Package db creates the relational schema.

The schema is written in the SQL dialect common to PostgreSQL (lib/pq,
production) and SQLite (modernc.org/sqlite, tests and local dev), which
is why there are no NOW() defaults and no SERIAL columns: IDs are
application-generated UUIDs and timestamps are bound parameters.

Tables:

  - users: registered accounts, unique email
  - session: opaque login tokens with expiry
  - poll: question plus options as a JSON array column
  - vote: one row per (poll, voter), enforced by a UNIQUE constraint

Votes and sessions cascade-delete with their parent rows.
*/
package db
