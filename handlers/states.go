// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/countmore/countmore/election"
	"github.com/countmore/countmore/middleware"
	"github.com/countmore/countmore/models"
)

type StatesHandler struct {
	data *election.Dataset
}

func NewStatesHandler(data *election.Dataset) *StatesHandler {
	return &StatesHandler{data: data}
}

func (h *StatesHandler) stateInfo(st election.State) models.StateInfo {
	rankings := h.data.Rankings()
	ev, evYear := h.data.ElectoralVotes(st)
	return models.StateInfo{
		Code:           st,
		Name:           h.data.Name(st),
		Rank:           rankings.Rank(st),
		Battleground:   rankings.IsBattleground(st),
		ElectoralVotes: ev,
		EVYear:         evYear,
	}
}

// ListStates handles GET /states
// ?battleground=true narrows the list to ranked states, highest rank first.
func (h *StatesHandler) ListStates(w http.ResponseWriter, r *http.Request) {
	all := election.AllStates()
	if raw := r.URL.Query().Get("battleground"); raw != "" {
		only, err := strconv.ParseBool(raw)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid battleground: "+raw)
			return
		}
		if only {
			all = h.data.Rankings().Battlegrounds()
		}
	}

	states := make([]models.StateInfo, 0, len(all))
	for _, st := range all {
		states = append(states, h.stateInfo(st))
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListStatesResponse{States: states})
}

// GetState handles GET /states/{code}
// Returns the state's ranking, every loaded election result, and its
// vote.gov registration links when known.
func (h *StatesHandler) GetState(w http.ResponseWriter, r *http.Request) {
	st, ok := stateParam(w, r)
	if !ok {
		return
	}

	resp := models.StateDetailResponse{
		StateInfo: h.stateInfo(st),
		Results:   []models.ElectionResultResponse{},
	}

	info, err := h.data.VotingInfo(st)
	switch {
	case err == nil:
		resp.HasRegistration = info.HasRegistration
		resp.RegisterURL = info.BestRegistrationURL()
		resp.VerifyURL = info.VerifyURL()
	case !errors.Is(err, election.ErrNoVotingInfo):
		lookupError(w, err)
		return
	}

	for _, year := range h.data.Years() {
		e, err := h.data.Election(year)
		if err != nil {
			lookupError(w, err)
			return
		}
		result, err := e.Result(st)
		if err != nil {
			lookupError(w, err)
			return
		}
		resp.Results = append(resp.Results, h.resultResponse(e, st, result))
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// GetElection handles GET /elections/{year}/{code}
func (h *StatesHandler) GetElection(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.PathValue("year"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid year")
		return
	}

	st, ok := stateParam(w, r)
	if !ok {
		return
	}

	e, err := h.data.Election(year)
	if err != nil {
		lookupError(w, err)
		return
	}

	result, err := e.Result(st)
	if err != nil {
		lookupError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, h.resultResponse(e, st, result))
}

func (h *StatesHandler) resultResponse(e *election.Election, st election.State, r election.Result) models.ElectionResultResponse {
	total := r.TotalVotes()
	return models.ElectionResultResponse{
		Year:       e.Year,
		State:      st,
		Name:       h.data.Name(st),
		Source:     e.Source,
		Candidates: e.Candidates,
		EV:         r.EV,
		TotalEV:    r.TotalEV(),
		Votes:      r.Votes,

		TotalVotes:             total,
		TotalVotesFormatted:    election.FormatNumber(total),
		WinningParty:           r.WinningParty(),
		Winner:                 r.Winner(e.Candidates),
		Margin:                 r.Margin(),
		MarginFormatted:        r.FormatMargin(),
		MarginPercent:          r.MarginPercent(),
		MarginPercentFormatted: r.FormatMarginPercent(),
		Band:                   r.Band(),
		Description:            r.DescribeMargin(),
	}
}
