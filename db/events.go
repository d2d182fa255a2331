// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"

	"github.com/rotisserie/eris"

	"github.com/countmore/countmore/analytics"
	"github.com/countmore/countmore/election"
)

// MaxRecent caps how many events Recent returns.
const MaxRecent = 500

// EventStore persists analytics events. It satisfies analytics.Recorder.
type EventStore struct {
	db *sql.DB
}

func NewEventStore(db *sql.DB) *EventStore {
	return &EventStore{db: db}
}

func (s *EventStore) Record(ctx context.Context, ev analytics.Event) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO analytics_event (
			id, kind, occurred_at, home_state, school_state, selection, swing,
			state, intended, battleground, handler, method, url, client_hash
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`,
		ev.ID, string(ev.Kind), ev.OccurredAt.UTC(),
		string(ev.HomeState), string(ev.SchoolState), string(ev.Selection), ev.Swing,
		string(ev.State), string(ev.Intended), ev.Battleground,
		string(ev.Handler), ev.Method, ev.URL, ev.ClientHash,
	)
	if err != nil {
		return eris.Wrapf(err, "db: insert event %s", ev.ID)
	}
	return nil
}

// Summarize counts stored events by kind and by selection.
func (s *EventStore) Summarize(ctx context.Context) (analytics.Summary, error) {
	sum := analytics.Summary{
		ByKind:      make(map[analytics.Kind]int, len(analytics.Kinds)),
		BySelection: make(map[election.Selection]int),
	}
	for _, k := range analytics.Kinds {
		sum.ByKind[k] = 0
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT kind, COUNT(*) FROM analytics_event GROUP BY kind
	`)
	if err != nil {
		return sum, eris.Wrap(err, "db: count events by kind")
	}
	defer rows.Close()

	for rows.Next() {
		var kind string
		var n int
		if err := rows.Scan(&kind, &n); err != nil {
			return sum, eris.Wrap(err, "db: scan kind count")
		}
		sum.ByKind[analytics.Kind(kind)] = n
		sum.Total += n
	}
	if err := rows.Err(); err != nil {
		return sum, eris.Wrap(err, "db: iterate kind counts")
	}

	selRows, err := s.db.QueryContext(ctx, `
		SELECT selection, COUNT(*) FROM analytics_event
		WHERE kind = $1
		GROUP BY selection
	`, string(analytics.KindSelectStates))
	if err != nil {
		return sum, eris.Wrap(err, "db: count selections")
	}
	defer selRows.Close()

	for selRows.Next() {
		var sel string
		var n int
		if err := selRows.Scan(&sel, &n); err != nil {
			return sum, eris.Wrap(err, "db: scan selection count")
		}
		sum.BySelection[election.Selection(sel)] = n
	}
	if err := selRows.Err(); err != nil {
		return sum, eris.Wrap(err, "db: iterate selection counts")
	}

	err = s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM analytics_event WHERE battleground = $1
	`, true).Scan(&sum.Battleground)
	if err != nil {
		return sum, eris.Wrap(err, "db: count battleground events")
	}

	return sum, nil
}

// Recent returns the newest events first. limit is clamped to [1, MaxRecent].
func (s *EventStore) Recent(ctx context.Context, limit int) ([]analytics.Event, error) {
	if limit <= 0 || limit > MaxRecent {
		limit = MaxRecent
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, kind, occurred_at, home_state, school_state, selection, swing,
			state, intended, battleground, handler, method, url, client_hash
		FROM analytics_event
		ORDER BY occurred_at DESC, id
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, eris.Wrap(err, "db: query recent events")
	}
	defer rows.Close()

	events := []analytics.Event{}
	for rows.Next() {
		var (
			ev                                       analytics.Event
			kind, home, school, sel, st, intended, h string
		)
		err := rows.Scan(
			&ev.ID, &kind, &ev.OccurredAt, &home, &school, &sel, &ev.Swing,
			&st, &intended, &ev.Battleground, &h, &ev.Method, &ev.URL, &ev.ClientHash,
		)
		if err != nil {
			return nil, eris.Wrap(err, "db: scan event")
		}
		ev.Kind = analytics.Kind(kind)
		ev.HomeState = election.State(home)
		ev.SchoolState = election.State(school)
		ev.Selection = election.Selection(sel)
		ev.State = election.State(st)
		ev.Intended = election.State(intended)
		ev.Handler = analytics.HandlerName(h)
		ev.OccurredAt = ev.OccurredAt.UTC()
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "db: iterate events")
	}

	return events, nil
}
