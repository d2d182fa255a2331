// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	r.Get("/health", middleware.WithLogging(handler))

or a whole chi group with r.Use(middleware.Logging). Completion is logged
through zap with method, path, status and duration_ms.

# CORS

	r.Use(middleware.CORS(cfg.Origins))

Allows GET, POST and OPTIONS with headers Content-Type and X-Admin-Key.

# Rate Limiting

Event routes are limited per client IP with a token bucket:

	limiter := middleware.NewRateLimiter(cfg.RateLimit.PerSecond, cfg.RateLimit.Burst)
	r.With(limiter.Middleware).Post("/selections", ...)

Rejected requests get 429 with Retry-After. Call Prune periodically to drop
idle clients.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

	var req models.SelectStatesRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

Bodies are capped at MaxBodyBytes.

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Returns the host of RemoteAddr. Forwarding headers are only honored when
the router runs chi's RealIP ahead of it (cliparse TrustProxy).
*/
package middleware
