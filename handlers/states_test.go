// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/countmore/countmore/election"
	"github.com/countmore/countmore/models"
	"github.com/countmore/countmore/testutil"
)

func TestListStates(t *testing.T) {
	deps := setupTestDeps(t)
	handler := NewStatesHandler(deps.data)

	w := httptest.NewRecorder()
	handler.ListStates(w, httptest.NewRequest("GET", "/states", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ListStatesResponse
	testutil.AssertJSON(t, w, &resp)
	require.Len(t, resp.States, 51)

	byCode := map[election.State]models.StateInfo{}
	for _, s := range resp.States {
		byCode[s.Code] = s
	}

	assert.Equal(t, "California", byCode["CA"].Name)
	assert.Equal(t, 54, byCode["CA"].ElectoralVotes)
	assert.Equal(t, 2024, byCode["CA"].EVYear)
	assert.False(t, byCode["CA"].Battleground)

	assert.Equal(t, 40, byCode["PA"].Rank)
	assert.True(t, byCode["PA"].Battleground)
	assert.Equal(t, 20, byCode["NC"].Rank)
	assert.Equal(t, "District of Columbia", byCode["DC"].Name)
}

func TestListStatesBattleground(t *testing.T) {
	deps := setupTestDeps(t)
	handler := NewStatesHandler(deps.data)

	tests := []struct {
		query          string
		expectedStatus int
		wantCodes      []election.State
		wantLen        int
	}{
		{"?battleground=true", http.StatusOK, []election.State{"AZ", "GA", "MI", "NV", "PA", "WI", "NC"}, 7},
		{"?battleground=false", http.StatusOK, nil, 51},
		{"?battleground=maybe", http.StatusBadRequest, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.ListStates(w, httptest.NewRequest("GET", "/states"+tt.query, nil))
			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var resp models.ListStatesResponse
			testutil.AssertJSON(t, w, &resp)
			require.Len(t, resp.States, tt.wantLen)
			if tt.wantCodes != nil {
				codes := make([]election.State, 0, len(resp.States))
				for _, s := range resp.States {
					assert.True(t, s.Battleground)
					codes = append(codes, s.Code)
				}
				assert.Equal(t, tt.wantCodes, codes)
			}
		})
	}
}

func TestGetState(t *testing.T) {
	deps := setupTestDeps(t)
	handler := NewStatesHandler(deps.data)

	tests := []struct {
		name           string
		code           string
		expectedStatus int
		checkResponse  func(t *testing.T, resp *models.StateDetailResponse)
	}{
		{
			name:           "battleground state",
			code:           "GA",
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *models.StateDetailResponse) {
				assert.Equal(t, "Georgia", resp.Name)
				assert.True(t, resp.Battleground)
				assert.True(t, resp.HasRegistration)
				assert.NotEmpty(t, resp.RegisterURL)
				require.Len(t, resp.Results, 2)
				assert.Equal(t, 2016, resp.Results[0].Year)
				assert.Equal(t, 2020, resp.Results[1].Year)
				assert.Equal(t, "Biden", resp.Results[1].Winner)
				assert.Equal(t, "a razor-thin margin of 11,779 votes (<1%)", resp.Results[1].Description)
			},
		},
		{
			name:           "lower case code",
			code:           "ca",
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *models.StateDetailResponse) {
				assert.Equal(t, election.State("CA"), resp.Code)
			},
		},
		{
			name:           "no registration",
			code:           "ND",
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *models.StateDetailResponse) {
				assert.False(t, resp.HasRegistration)
				assert.Empty(t, resp.RegisterURL)
			},
		},
		{
			name:           "missing from vote.gov table",
			code:           "DC",
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *models.StateDetailResponse) {
				assert.False(t, resp.HasRegistration)
				assert.Len(t, resp.Results, 2)
			},
		},
		{name: "invalid code", code: "PR", expectedStatus: http.StatusBadRequest},
		{name: "empty code", code: "", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/states/"+tt.code, nil)
			req.SetPathValue("code", tt.code)
			w := httptest.NewRecorder()

			handler.GetState(w, req)
			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.checkResponse != nil {
				var resp models.StateDetailResponse
				testutil.AssertJSON(t, w, &resp)
				tt.checkResponse(t, &resp)
			}
		})
	}
}

func TestGetElection(t *testing.T) {
	deps := setupTestDeps(t)
	handler := NewStatesHandler(deps.data)

	tests := []struct {
		name           string
		year           string
		code           string
		expectedStatus int
	}{
		{"found", "2020", "PA", http.StatusOK},
		{"unknown year", "1999", "PA", http.StatusNotFound},
		{"non-numeric year", "twenty", "PA", http.StatusBadRequest},
		{"invalid code", "2020", "XX", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/elections/"+tt.year+"/"+tt.code, nil)
			req.SetPathValue("year", tt.year)
			req.SetPathValue("code", tt.code)
			w := httptest.NewRecorder()

			handler.GetElection(w, req)
			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}

	t.Run("decorated result", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/elections/2020/PA", nil)
		req.SetPathValue("year", "2020")
		req.SetPathValue("code", "PA")
		w := httptest.NewRecorder()
		handler.GetElection(w, req)

		var resp models.ElectionResultResponse
		testutil.AssertJSON(t, w, &resp)
		assert.Equal(t, "Pennsylvania", resp.Name)
		assert.Equal(t, election.PartyDem, resp.WinningParty)
		assert.Equal(t, int64(80555), resp.Margin)
		assert.Equal(t, int64(20), resp.TotalEV)
		assert.Equal(t, "80,555", resp.MarginFormatted)
		assert.Equal(t, election.BandSlim, resp.Band)
		assert.Equal(t, "a slim margin of 80,555 votes (1%)", resp.Description)
	})
}
