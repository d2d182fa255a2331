// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Count More API.

# Handler Types

Each handler is a struct holding the dependencies it needs:

  - StatesHandler: State list, per-state detail, and election results
  - SelectionHandler: Home/school comparison and result copy
  - RegistrationHandler: Register/verify links and VoteAmerica embed events
  - ShareHandler: Share sheet payload
  - AnalyticsHandler: Event summary and recent events for admins

Handlers are created via constructor functions:

	statesHandler := handlers.NewStatesHandler(data)
	selectionHandler := handlers.NewSelectionHandler(data, writer, tracker, cfg)

# State Codes

Every route taking a {code} path value parses it with election.ParseState
before touching any table. Codes are case-insensitive; anything outside the
50 states plus DC is rejected with 400.

# Selection Flow

	POST /selections                      → SelectStates (records select_states)
	GET  /states/{code}/register?handler= → Register (records click_register)
	GET  /states/{code}/verify?handler=   → Verify (records click_verify)
	POST /events/voteamerica?state=XX     → VoteAmericaEvent

The handler query parameter picks direct, voteamerica or rockthevote; an
empty value uses the configured default. The VoteAmerica embed page posts
its action-start, action-finish and action-follow-up events back to
/events/voteamerica, where they become register_* and verify_* events.

Failing to record an event is logged and never changes the response.

# Error Mapping

	400  invalid state, unknown handler, unknown embed event, bad JSON
	401  missing or wrong X-Admin-Key
	404  unknown year, no registration page, no vote.gov record
	500  anything else

# Admin Endpoints

	GET /admin/events/summary → Summary
	GET /admin/events?limit=  → Recent

Both require the X-Admin-Key header generated for auth.ScopeAnalytics
(see the admin-key command).
*/
package handlers
