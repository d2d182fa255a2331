// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"

	"github.com/rotisserie/eris"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// The DDL sticks to types SQLite and PostgreSQL both accept.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return eris.Wrap(err, "db: create schema")
	}

	return nil
}

const schema = `
-- Engagement events
CREATE TABLE IF NOT EXISTS analytics_event (
    id TEXT PRIMARY KEY,
    kind TEXT NOT NULL,
    occurred_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    home_state TEXT NOT NULL DEFAULT '',
    school_state TEXT NOT NULL DEFAULT '',
    selection TEXT NOT NULL DEFAULT '',
    swing BOOLEAN NOT NULL DEFAULT FALSE,
    state TEXT NOT NULL DEFAULT '',
    intended TEXT NOT NULL DEFAULT '',
    battleground BOOLEAN NOT NULL DEFAULT FALSE,
    handler TEXT NOT NULL DEFAULT '',
    method TEXT NOT NULL DEFAULT '',
    url TEXT NOT NULL DEFAULT '',
    client_hash TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_analytics_event_kind ON analytics_event(kind);
CREATE INDEX IF NOT EXISTS idx_analytics_event_occurred_at ON analytics_event(occurred_at);
CREATE INDEX IF NOT EXISTS idx_analytics_event_state ON analytics_event(state);
`
