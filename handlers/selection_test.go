// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/countmore/countmore/analytics"
	"github.com/countmore/countmore/auth"
	"github.com/countmore/countmore/election"
	"github.com/countmore/countmore/middleware"
	"github.com/countmore/countmore/models"
	"github.com/countmore/countmore/testutil"
)

func TestSelectStates(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
		checkResponse  func(t *testing.T, resp *models.SelectionResponse)
	}{
		{
			name:           "school state counts more",
			body:           models.SelectStatesRequest{HomeState: "CA", SchoolState: "GA"},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *models.SelectionResponse) {
				assert.Equal(t, election.SelectionSchool, resp.Selection)
				assert.Equal(t, election.State("GA"), resp.SelectedState)
				assert.Equal(t, "Your vote counts more in Georgia.", resp.Headline)
				assert.Equal(t, "In 2020, Biden won Georgia by a razor-thin margin of 11,779 votes (<1%).", resp.MarginMessage)
				assert.Equal(t, []models.RegisterTarget{{State: "GA", Name: "Georgia"}}, resp.Register)
			},
		},
		{
			name:           "same state",
			body:           models.SelectStatesRequest{HomeState: "pa", SchoolState: "PA"},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *models.SelectionResponse) {
				assert.Equal(t, election.SelectionSame, resp.Selection)
				assert.Equal(t, "Your home and school states are both Pennsylvania.", resp.Headline)
				assert.Len(t, resp.Register, 1)
			},
		},
		{
			name:           "toss-up",
			body:           models.SelectStatesRequest{HomeState: "OH", SchoolState: "KS"},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *models.SelectionResponse) {
				assert.Equal(t, election.SelectionTossUp, resp.Selection)
				assert.Equal(t, "Your vote matters in both Ohio and Kansas.", resp.Headline)
				assert.Empty(t, resp.MarginMessage)
				assert.Len(t, resp.Register, 2)
			},
		},
		{
			name:           "invalid home state",
			body:           models.SelectStatesRequest{HomeState: "PR", SchoolState: "GA"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing school state",
			body:           models.SelectStatesRequest{HomeState: "CA"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed body",
			body:           "not an object",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := setupTestDeps(t)
			handler := NewSelectionHandler(deps.data, deps.writer, deps.tracker, deps.cfg)

			req := testutil.MakeRequest("POST", "/selections", tt.body, nil)
			w := httptest.NewRecorder()
			handler.SelectStates(w, req)
			testutil.AssertStatus(t, w, tt.expectedStatus)

			recorded := testutil.CountEvents(t, deps.conn, string(analytics.KindSelectStates))
			if tt.checkResponse == nil {
				assert.Zero(t, recorded, "rejected requests record nothing")
				return
			}

			var resp models.SelectionResponse
			testutil.AssertJSON(t, w, &resp)
			tt.checkResponse(t, &resp)
			assert.Equal(t, 1, recorded)
		})
	}
}

func TestSelectStatesRecordsClientHash(t *testing.T) {
	deps := setupTestDeps(t)
	handler := NewSelectionHandler(deps.data, deps.writer, deps.tracker, deps.cfg)

	req := testutil.MakeRequest("POST", "/selections",
		models.SelectStatesRequest{HomeState: "NY", SchoolState: "PA"},
		map[string]string{"X-Forwarded-For": "198.51.100.1"})
	req.RemoteAddr = "203.0.113.9:52100"
	w := httptest.NewRecorder()
	handler.SelectStates(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	events, err := deps.store.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, events, 1)

	ev := events[0]
	assert.Equal(t, auth.HashIP("203.0.113.9", deps.cfg.IPHashSalt), ev.ClientHash)
	assert.Equal(t, election.SelectionSchool, ev.Selection)
	assert.True(t, ev.Swing)
}

func TestSelectStatesRecorderFailure(t *testing.T) {
	deps := setupTestDeps(t)
	handler := NewSelectionHandler(deps.data, deps.writer, deps.tracker, deps.cfg)

	// Answers still go out when the event store is down.
	require.NoError(t, deps.conn.Close())

	req := testutil.MakeRequest("POST", "/selections", models.SelectStatesRequest{HomeState: "CA", SchoolState: "GA"}, nil)
	w := httptest.NewRecorder()
	handler.SelectStates(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)
}

func TestSelectStatesBodyTooLarge(t *testing.T) {
	deps := setupTestDeps(t)
	handler := NewSelectionHandler(deps.data, deps.writer, deps.tracker, deps.cfg)

	body := models.SelectStatesRequest{HomeState: "CA", SchoolState: strings.Repeat("G", middleware.MaxBodyBytes)}
	w := httptest.NewRecorder()
	handler.SelectStates(w, testutil.MakeRequest("POST", "/selections", body, nil))
	testutil.AssertStatus(t, w, http.StatusRequestEntityTooLarge)
	assert.Equal(t, 0, testutil.CountEvents(t, deps.conn, string(analytics.KindSelectStates)))
}
