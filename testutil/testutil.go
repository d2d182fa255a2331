// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/countmore/countmore/cliparse"
	"github.com/countmore/countmore/db"
)

// TestDBURL is an in-memory SQLite database; each SetupTestDB call gets a
// fresh one.
const TestDBURL = ":memory:"

// SetupTestDB creates a fresh test database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(GetTestConfig())
	require.NoError(t, err, "open test database")
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, db.CreateSchema(conn), "create schema")
	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3318,
		DatabaseURL:   TestDBURL,
		DatabaseType:  cliparse.DatabaseSQLite,
		AdminKeySalt:  "test-admin-salt",
		IPHashSalt:    "test-ip-salt",
		ReferenceYear: 2020,
		SiteURL:       "https://countmore.us",
		Origins:       []string{"https://countmore.us"},
		Log:           cliparse.LogConfig{Level: "debug", Format: "console"},
		Registration: cliparse.RegistrationConfig{
			DefaultHandler:      "direct",
			VoteAmericaRegister: "https://countmore.us/register",
			VoteAmericaVerify:   "https://countmore.us/verify",
			RockTheVoteURL:      "https://register.rockthevote.com/registrants/new",
			RockTheVotePartner:  "42",
		},
		RateLimit: cliparse.RateLimitConfig{PerSecond: 100, Burst: 100},
	}
}

// CountEvents returns how many stored events have the given kind.
func CountEvents(t *testing.T, conn *sql.DB, kind string) int {
	t.Helper()

	var n int
	err := conn.QueryRow(`SELECT COUNT(*) FROM analytics_event WHERE kind = $1`, kind).Scan(&n)
	require.NoError(t, err, "count events")
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
