// Copyright (c) 2025 Pollhive Authors.
// Licensed under the MIT License; see LICENSE.

/*
Package service holds the business rules between HTTP handlers and the
store.

# PollService

The poll lifecycle: create, read (public), list-by-owner, owner-only
update and delete, vote casting, and tallying. Every mutating call
takes the acting user as an explicit argument and returns a sentinel
error from models when the caller is missing, not the owner, or the
input is invalid.

Two rules are worth calling out:

  - A vote is unique per (poll, voter). The service does not pre-check;
    it inserts and lets the store's unique constraint decide, so
    concurrent duplicate casts cannot both succeed.
  - An update may not shrink options below the highest option index any
    existing vote references. Such updates fail with ErrOptionsInUse
    and leave the poll untouched.

Tallies are always recomputed from stored votes. Percentage rounds
half-up and reports 0 for a voteless poll.

# AccountService

Registration, login, logout, and session-token resolution. Passwords
are bcrypt-hashed; login failures collapse to a single
ErrInvalidCredentials regardless of cause.
*/
package service
