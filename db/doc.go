// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and stores analytics events.

# Connecting

	conn, err := db.Open(cfg)

sqlite (modernc.org/sqlite, the default) is opened in WAL mode with a single
connection. postgres (lib/pq) is pinged before returning.

# Schema Creation

	if err := db.CreateSchema(conn); err != nil {
		return err
	}

Safe to call multiple times - uses IF NOT EXISTS for the table and indexes.

# Tables

  - analytics_event: one row per analytics event, indexed on kind,
    occurred_at and state

# Events

EventStore implements analytics.Recorder and answers the admin queries:

	store := db.NewEventStore(conn)
	sum, err := store.Summarize(ctx)
	recent, err := store.Recent(ctx, 50)

Recent is capped at MaxRecent rows.
*/
package db
