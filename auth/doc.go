// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides admin keys and client hashing.

# Admin Keys

Admin keys use HMAC-SHA256 over a scope to create deterministic, verifiable keys:

	key := auth.GenerateAdminKey(auth.ScopeAnalytics, salt)
	err := auth.ValidateAdminKey(auth.ScopeAnalytics, key, salt)

The key is URL-safe base64 encoded without padding. The same scope and salt
always produce the same key, so nothing is stored. Print one with:

	countmore admin-key

# IP Hashing

Analytics events carry a hash of the client IP instead of the address:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
