// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line flags and configuration.

# Configuration

Load merges, lowest precedence first: defaults, config.yaml, .env and
environment variables, then flags.

	cliparse.RegisterFlags(cmd.Flags())
	cfg, err := cliparse.Load(cmd.Flags())

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DatabaseURL: sqlite path or postgres connection string (default: countmore.db)
  - AdminKeySalt: Secret for admin key HMAC (required)
  - IPHashSalt: Secret for client IP hashing (required)
  - DataDir: Directory overriding the embedded election tables
  - ReferenceYear: Election year used in summaries (default: 2020)
  - Registration: default handler and partner URLs
  - RateLimit: per-IP event rate and burst
  - TrustProxy: honor X-Forwarded-For/X-Real-IP (only behind a proxy that sets them)

# CLI Flags

	-p, --port           Server port
	-d, --database-url   Database URL
	-t, --database-type  sqlite or postgres
	--admin-salt         Admin key salt
	--ip-salt            IP hash salt
	--data-dir           Election table directory
	--log-level          Log level
	--trust-proxy        Take client IPs from forwarding headers
	--config             Config file path

# Environment Variables

Nested keys use underscores:

	PORT, DATABASE_URL, DATABASE_TYPE, ADMIN_KEY_SALT, IP_HASH_SALT,
	LOG_LEVEL, TRUST_PROXY, REGISTRATION_DEFAULT_HANDLER, RATE_LIMIT_PER_SECOND

# Logging

	if err := cliparse.InitLogger(cfg.Log); err != nil {
		return err
	}

Replaces the zap globals; format "console" selects the development encoder.
*/
package cliparse
