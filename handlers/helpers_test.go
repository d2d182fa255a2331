// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/countmore/countmore/analytics"
	"github.com/countmore/countmore/cliparse"
	"github.com/countmore/countmore/db"
	"github.com/countmore/countmore/election"
	"github.com/countmore/countmore/registration"
	"github.com/countmore/countmore/summary"
	"github.com/countmore/countmore/testutil"
)

type testDeps struct {
	conn     *sql.DB
	cfg      cliparse.Config
	data     *election.Dataset
	store    *db.EventStore
	tracker  *analytics.Tracker
	writer   *summary.Writer
	registry *registration.Registry
}

func setupTestDeps(t *testing.T) *testDeps {
	t.Helper()

	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()

	data, err := election.Default()
	require.NoError(t, err)
	writer, err := summary.NewWriter(data, cfg.ReferenceYear)
	require.NoError(t, err)

	direct := registration.NewDirect(data)
	registry := registration.NewRegistry(
		direct,
		&registration.VoteAmerica{
			RegisterPage: cfg.Registration.VoteAmericaRegister,
			VerifyPage:   cfg.Registration.VoteAmericaVerify,
		},
		&registration.RockTheVote{
			BaseURL:   cfg.Registration.RockTheVoteURL,
			PartnerID: cfg.Registration.RockTheVotePartner,
			Fallback:  direct,
		},
	)

	store := db.NewEventStore(conn)
	return &testDeps{
		conn:     conn,
		cfg:      cfg,
		data:     data,
		store:    store,
		tracker:  analytics.NewTracker(data.Rankings(), store),
		writer:   writer,
		registry: registry,
	}
}
