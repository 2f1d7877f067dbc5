// Copyright (c) 2025 Pollhive Authors.
// Licensed under the MIT License; see LICENSE.

/*
Package store is the persistence layer over database/sql.

One Store serves all four tables (users, session, poll, vote). Queries
use $N placeholders, which both lib/pq and modernc sqlite accept, so
the layer is driver-agnostic.

Two write paths rely on unique constraints rather than check-then-insert:
CreateUser (users.email) and CreateVote (vote poll_id+voter_id). The
store translates the driver's constraint-violation error into
models.ErrEmailTaken / models.ErrAlreadyVoted; everything else is
wrapped with a "store:" prefix and propagated unchanged.
*/
package store
