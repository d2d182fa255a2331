// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/countmore/countmore/auth"
	"github.com/countmore/countmore/cliparse"
	"github.com/countmore/countmore/db"
	"github.com/countmore/countmore/middleware"
	"github.com/countmore/countmore/models"
)

const defaultRecentLimit = 50

type AnalyticsHandler struct {
	store *db.EventStore
	cfg   cliparse.Config
}

func NewAnalyticsHandler(store *db.EventStore, cfg cliparse.Config) *AnalyticsHandler {
	return &AnalyticsHandler{store: store, cfg: cfg}
}

func (h *AnalyticsHandler) authorized(w http.ResponseWriter, r *http.Request) bool {
	adminKey := r.Header.Get("X-Admin-Key")
	if err := auth.ValidateAdminKey(auth.ScopeAnalytics, adminKey, h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return false
	}
	return true
}

// Summary handles GET /admin/events/summary
func (h *AnalyticsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(w, r) {
		return
	}

	sum, err := h.store.Summarize(r.Context())
	if err != nil {
		zap.L().Error("failed to summarize events", zap.Error(err))
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, sum)
}

// Recent handles GET /admin/events?limit=
func (h *AnalyticsHandler) Recent(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(w, r) {
		return
	}

	limit := defaultRecentLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	events, err := h.store.Recent(r.Context(), limit)
	if err != nil {
		zap.L().Error("failed to query events", zap.Error(err))
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.RecentEventsResponse{Events: events})
}
