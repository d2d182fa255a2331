// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/countmore/countmore/auth"
	"github.com/countmore/countmore/election"
	"github.com/countmore/countmore/middleware"
	"github.com/countmore/countmore/registration"
)

// stateParam reads the {code} path value. It writes a 400 and returns false
// for anything outside the state enumeration.
func stateParam(w http.ResponseWriter, r *http.Request) (election.State, bool) {
	return parseStateField(w, r.PathValue("code"), "state code")
}

func parseStateField(w http.ResponseWriter, raw, field string) (election.State, bool) {
	if raw == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, field+" is required")
		return "", false
	}
	st, err := election.ParseState(raw)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid "+field+": "+raw)
		return "", false
	}
	return st, true
}

// decodeBody parses the JSON request body into v. It writes a 413 for
// oversized bodies and a 400 for anything else.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	err := middleware.ParseJSONBody(w, r, v)
	if err == nil {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		middleware.ErrorResponse(w, http.StatusRequestEntityTooLarge, "Request body too large")
		return false
	}
	middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
	return false
}

func clientHash(r *http.Request, salt string) string {
	return auth.HashIP(middleware.GetClientIP(r), salt)
}

// lookupError maps a data lookup failure to a response.
func lookupError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, election.ErrInvalidState),
		errors.Is(err, registration.ErrUnknownHandler),
		errors.Is(err, registration.ErrUnknownEmbedEvent),
		errors.Is(err, election.ErrUnknownSelection):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, election.ErrUnknownYear),
		errors.Is(err, election.ErrNoElectionData),
		errors.Is(err, election.ErrNoVotingInfo),
		errors.Is(err, registration.ErrNoRegistrationURL),
		errors.Is(err, registration.ErrNoVerifyURL):
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
	default:
		zap.L().Error("request failed", zap.Error(err))
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
	}
}
