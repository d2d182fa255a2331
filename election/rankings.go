// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"sort"

	"github.com/rotisserie/eris"
)

// Selection is the outcome of comparing a home state against a school state.
type Selection string

const (
	SelectionHome   Selection = "home"
	SelectionSchool Selection = "school"
	SelectionTossUp Selection = "toss-up"
	SelectionSame   Selection = "same"
)

var ErrUnknownSelection = eris.New("unknown selection")

// Validate guards exhaustive switches against values outside the four tags.
func (s Selection) Validate() error {
	switch s {
	case SelectionHome, SelectionSchool, SelectionTossUp, SelectionSame:
		return nil
	default:
		return eris.Wrapf(ErrUnknownSelection, "election: selection %q", string(s))
	}
}

// Swing reports whether one state was strictly more pivotal than the other.
func (s Selection) Swing() bool {
	return s == SelectionHome || s == SelectionSchool
}

// Rankings maps states to their editorial power ranking. States that are not
// listed rank 0.
type Rankings map[State]int

// Rank returns the power ranking for st.
func (r Rankings) Rank(st State) int {
	return r[st]
}

// IsBattleground reports whether st has a nonzero power ranking.
func (r Rankings) IsBattleground(st State) bool {
	return r.Rank(st) > 0
}

// Battlegrounds returns ranked states, highest first, ties by code.
func (r Rankings) Battlegrounds() []State {
	var out []State
	for st, rank := range r {
		if rank > 0 {
			out = append(out, st)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if r[a] != r[b] {
			return r[a] > r[b]
		}
		return a < b
	})
	return out
}

// Select decides where a voter with the given home and school states should
// vote. Identical states short-circuit before ranks are compared.
func (r Rankings) Select(home, school State) Selection {
	if home == school {
		return SelectionSame
	}

	homeRank := r.Rank(home)
	schoolRank := r.Rank(school)
	switch {
	case homeRank > schoolRank:
		return SelectionHome
	case homeRank < schoolRank:
		return SelectionSchool
	default:
		return SelectionTossUp
	}
}

// SelectionResult pairs a selection with the states it was computed from.
type SelectionResult struct {
	Selection Selection `json:"selection"`
	Home      State     `json:"home_state"`
	School    State     `json:"school_state"`
}

// NewSelectionResult runs Select and keeps the inputs alongside the outcome.
func (r Rankings) NewSelectionResult(home, school State) SelectionResult {
	return SelectionResult{
		Selection: r.Select(home, school),
		Home:      home,
		School:    school,
	}
}

// SelectedState is the home state for a home selection and the school state
// otherwise.
func (res SelectionResult) SelectedState() State {
	if res.Selection == SelectionHome {
		return res.Home
	}
	return res.School
}

// OtherState is the state not returned by SelectedState.
func (res SelectionResult) OtherState() State {
	if res.Selection == SelectionHome {
		return res.School
	}
	return res.Home
}
