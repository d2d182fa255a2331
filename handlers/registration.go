// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/countmore/countmore/analytics"
	"github.com/countmore/countmore/cliparse"
	"github.com/countmore/countmore/middleware"
	"github.com/countmore/countmore/models"
	"github.com/countmore/countmore/registration"
)

type RegistrationHandler struct {
	registry *registration.Registry
	tracker  *analytics.Tracker
	bridge   *registration.Bridge
	cfg      cliparse.Config
}

func NewRegistrationHandler(registry *registration.Registry, tracker *analytics.Tracker, cfg cliparse.Config) *RegistrationHandler {
	return &RegistrationHandler{
		registry: registry,
		tracker:  tracker,
		bridge:   registration.NewBridge(tracker),
		cfg:      cfg,
	}
}

// Register handles GET /states/{code}/register?handler=
// Returns the next URL for registering in the state and records click_register.
func (h *RegistrationHandler) Register(w http.ResponseWriter, r *http.Request) {
	h.next(w, r, analytics.KindClickRegister)
}

// Verify handles GET /states/{code}/verify?handler=
// Returns the next URL for checking registration and records click_verify.
func (h *RegistrationHandler) Verify(w http.ResponseWriter, r *http.Request) {
	h.next(w, r, analytics.KindClickVerify)
}

func (h *RegistrationHandler) next(w http.ResponseWriter, r *http.Request, kind analytics.Kind) {
	st, ok := stateParam(w, r)
	if !ok {
		return
	}

	handler, err := h.registry.Get(r.URL.Query().Get("handler"))
	if err != nil {
		lookupError(w, err)
		return
	}

	var url string
	if kind == analytics.KindClickRegister {
		url, err = handler.RegisterURL(st)
	} else {
		url, err = handler.VerifyURL(st)
	}
	if err != nil {
		lookupError(w, err)
		return
	}

	hash := clientHash(r, h.cfg.IPHashSalt)
	if kind == analytics.KindClickRegister {
		err = h.tracker.ClickRegister(r.Context(), st, handler.Name(), hash)
	} else {
		err = h.tracker.ClickVerify(r.Context(), st, handler.Name(), hash)
	}
	if err != nil {
		zap.L().Warn("failed to record click", zap.String("kind", string(kind)), zap.Error(err))
	}

	middleware.JSONResponse(w, http.StatusOK, models.NextURLResponse{
		State:   st,
		Handler: handler.Name(),
		URL:     url,
	})
}

// VoteAmericaEvent handles POST /events/voteamerica?state=XX
// The state query parameter is the state the embed page was opened for.
func (h *RegistrationHandler) VoteAmericaEvent(w http.ResponseWriter, r *http.Request) {
	intended, ok := parseStateField(w, r.URL.Query().Get("state"), "state")
	if !ok {
		return
	}

	var ev registration.EmbedEvent
	if !decodeBody(w, r, &ev) {
		return
	}

	kind, err := h.bridge.Handle(r.Context(), ev, intended, clientHash(r, h.cfg.IPHashSalt))
	if err != nil {
		lookupError(w, err)
		return
	}

	zap.L().Debug("embed event recorded",
		zap.String("kind", string(kind)),
		zap.String("intended", intended.String()),
	)
	middleware.JSONResponse(w, http.StatusAccepted, models.EventAcceptedResponse{Kind: kind})
}
