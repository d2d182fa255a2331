// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/countmore/countmore/analytics"
	"github.com/countmore/countmore/cliparse"
	"github.com/countmore/countmore/election"
	"github.com/countmore/countmore/middleware"
	"github.com/countmore/countmore/models"
	"github.com/countmore/countmore/summary"
)

type SelectionHandler struct {
	data    *election.Dataset
	writer  *summary.Writer
	tracker *analytics.Tracker
	cfg     cliparse.Config
}

func NewSelectionHandler(data *election.Dataset, writer *summary.Writer, tracker *analytics.Tracker, cfg cliparse.Config) *SelectionHandler {
	return &SelectionHandler{data: data, writer: writer, tracker: tracker, cfg: cfg}
}

// SelectStates handles POST /selections
// Decides where the visitor's vote counts more and records select_states.
func (h *SelectionHandler) SelectStates(w http.ResponseWriter, r *http.Request) {
	var req models.SelectStatesRequest
	if !decodeBody(w, r, &req) {
		return
	}

	home, ok := parseStateField(w, req.HomeState, "home_state")
	if !ok {
		return
	}
	school, ok := parseStateField(w, req.SchoolState, "school_state")
	if !ok {
		return
	}

	res := h.data.Rankings().NewSelectionResult(home, school)
	sum, err := h.writer.Describe(res)
	if err != nil {
		lookupError(w, err)
		return
	}

	// Analytics failures are logged, never returned.
	if err := h.tracker.SelectStates(r.Context(), res, clientHash(r, h.cfg.IPHashSalt)); err != nil {
		zap.L().Warn("failed to record selection", zap.Error(err))
	}

	register := make([]models.RegisterTarget, 0, len(sum.Register))
	for _, st := range sum.Register {
		register = append(register, models.RegisterTarget{State: st, Name: h.data.Name(st)})
	}

	middleware.JSONResponse(w, http.StatusOK, models.SelectionResponse{
		Selection:     res.Selection,
		HomeState:     res.Home,
		SchoolState:   res.School,
		SelectedState: sum.SelectedState,
		Headline:      sum.Headline,
		Details:       sum.Details,
		MarginMessage: sum.MarginMessage,
		Register:      register,
	})
}
