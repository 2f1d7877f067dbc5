// Copyright (c) 2025 Pollhive Authors.
// Licensed under the MIT License; see LICENSE.

/*
Package cliparse parses server configuration from CLI flags with
environment-variable fallback.

CLI flags always win over the environment. Settings:

  - -p / PORT: server port (default 4000)
  - -d / DATABASE_URL: connection string (required)
  - -t / DATABASE_TYPE: sqlite or postgres (default sqlite)
  - -session-ttl / SESSION_TTL: login session lifetime (default 168h)
  - -bcrypt-cost / BCRYPT_COST: password hash cost factor (default 10)
*/
package cliparse
