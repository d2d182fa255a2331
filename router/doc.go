// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Count More API.

# Route Registration

NewRouter loads the election tables, builds the handlers and returns a
configured chi router:

	limiter := middleware.NewRateLimiter(cfg.RateLimit.PerSecond, cfg.RateLimit.Burst)
	mux, err := router.NewRouter(db, cfg, limiter)

It fails when the data directory is unreadable, the reference year is not
loaded, or the default registration handler is unknown.

# Endpoints

Health:

	GET /health
	GET /

Static tables (public):

	GET /states                  - Every state with rank and electoral votes
	GET /states/{code}           - One state with all loaded results
	GET /elections/{year}/{code} - One state's result for one year
	GET /share                   - Share sheet payload

Event-recording routes (public, rate limited per client IP):

	POST /selections                 - Compare home and school states
	GET  /states/{code}/register     - Next URL for registering
	GET  /states/{code}/verify       - Next URL for checking registration
	POST /events/voteamerica?state=  - VoteAmerica embed event

Reporting (admin, requires X-Admin-Key):

	GET /admin/events/summary - Counts by kind and selection
	GET /admin/events         - Most recent events

# Middleware

CORS (go-chi/cors, restricted to the configured origins) wraps every route.
Request logging wraps everything except /health.
*/
package router
