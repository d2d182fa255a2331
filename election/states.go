// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"strings"

	"github.com/rotisserie/eris"
)

// State is a two-letter postal code for one of the 50 states or DC.
type State string

var ErrInvalidState = eris.New("invalid state code")

// stateCodes is the closed set of valid codes, in vote.gov order.
var stateCodes = [...]State{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL",
	"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
	"MD", "MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH",
	"NJ", "NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI",
	"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI",
	"WY",
}

var validStates = func() map[State]struct{} {
	m := make(map[State]struct{}, len(stateCodes))
	for _, st := range stateCodes {
		m[st] = struct{}{}
	}
	return m
}()

// AllStates returns every valid state code.
func AllStates() []State {
	out := make([]State, len(stateCodes))
	copy(out, stateCodes[:])
	return out
}

// Valid reports whether s is one of the 51 known codes.
func (s State) Valid() bool {
	_, ok := validStates[s]
	return ok
}

// ParseState normalizes user input ("ga", " GA ") into a State.
func ParseState(raw string) (State, error) {
	st := State(strings.ToUpper(strings.TrimSpace(raw)))
	if !st.Valid() {
		return "", eris.Wrapf(ErrInvalidState, "election: parse %q", raw)
	}
	return st, nil
}

func (s State) String() string {
	return string(s)
}
