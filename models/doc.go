// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request and response types for the API.

# Requests

  - SelectStatesRequest: home, school

VoteAmerica embed events are decoded into registration.EmbedEvent.

# Responses

  - ListStatesResponse, StateInfo: ranking, battleground flag, electoral votes
  - StateDetailResponse: StateInfo plus registration links and results
  - ElectionResultResponse: tallies, winner, margin and its description
  - SelectionResponse: selected state, summary copy, registration targets
  - NextURLResponse: where register/verify sends the visitor
  - ShareResponse: share title, text and URL
  - EventAcceptedResponse, RecentEventsResponse: analytics
  - HealthResponse, ErrorResponse
*/
package models
