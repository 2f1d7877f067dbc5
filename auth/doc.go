// Copyright (c) 2025 Pollhive Authors.
// Licensed under the MIT License; see LICENSE.

/*
Package auth provides the cryptographic primitives behind accounts and
sessions: UUID entity IDs, random session tokens, and bcrypt password
hashing.

Session tokens are 256-bit random values encoded as unpadded URL-safe
base64. They carry no claims; the session row in the database is the
source of truth for the user and the expiry.
*/
package auth
