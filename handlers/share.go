// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/countmore/countmore/cliparse"
	"github.com/countmore/countmore/middleware"
	"github.com/countmore/countmore/models"
	"github.com/countmore/countmore/summary"
)

type ShareHandler struct {
	cfg cliparse.Config
}

func NewShareHandler(cfg cliparse.Config) *ShareHandler {
	return &ShareHandler{cfg: cfg}
}

// Share handles GET /share
func (h *ShareHandler) Share(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.ShareResponse{
		Title: summary.ShareTitle,
		Text:  summary.ShareText,
		URL:   h.cfg.SiteURL,
	})
}
