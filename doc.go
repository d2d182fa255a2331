// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Count More API server and CLI.

Count More tells a student whether their vote counts more in their home
state or their school state, quotes how close the last presidential result
was there, and sends them to the right place to register.

# Commands

	countmore serve                 Run the HTTP API
	countmore select HOME SCHOOL    Compare two states in the terminal
	countmore margin STATE          Show one state's result and margin
	countmore admin-key             Print the X-Admin-Key for /admin routes

# Starting the Server

The server reads a .env file, then config.yaml, then environment variables,
then flags (later sources win):

	ADMIN_KEY_SALT=... IP_HASH_SALT=... go run . serve

Or with flags:

	go run . serve -p 3318 -t postgres -d "postgres://..."

# Configuration

Required settings:

  - ADMIN_KEY_SALT (--admin-salt): Secret for admin key HMAC
  - IP_HASH_SALT (--ip-salt): Secret for hashing client IPs on events

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): sqlite path or PostgreSQL URL (default: countmore.db)
  - DATA_DIR (--data-dir): Directory overriding the embedded election tables
  - LOG_LEVEL (--log-level), LOG_FORMAT: zap level and json|console
  - REFERENCE_YEAR: Election quoted in margin messages (default: 2020)
  - REGISTRATION_DEFAULT_HANDLER: direct, voteamerica or rockthevote

# Architecture

  - election: States, power rankings, results, margins, vote.gov table
  - summary: Headline, details and margin copy for a selection
  - analytics: Event model and tracker
  - registration: Register/verify handlers and the VoteAmerica bridge
  - handlers: HTTP request handlers
  - router: Route definitions using chi
  - middleware: CORS, logging, rate limiting, JSON helpers
  - models: Request/response types
  - auth: Admin key and client IP hashing
  - db: SQLite/PostgreSQL connection, schema and event store
  - cliparse: Configuration parsing and logger setup

See package documentation for each component.
*/
package main
