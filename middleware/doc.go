// Copyright (c) 2025 Pollhive Authors.
// Licensed under the MIT License; see LICENSE.

/*
Package middleware provides HTTP cross-cutting concerns: request
logging, CORS, JSON request/response helpers, and session resolution.

WithUser turns the process-free session token (Authorization: Bearer or
the pollhive_session cookie) into a request-scoped *models.User stored
in the context. It never rejects a request itself; handlers decide
whether an absent user is an error. UserFrom reads the user back out.
*/
package middleware
