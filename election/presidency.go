// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"fmt"

	"github.com/rotisserie/eris"
)

// Party identifies one of the three vote buckets tracked per state.
type Party string

const (
	PartyDem   Party = "dem"
	PartyRep   Party = "rep"
	PartyOther Party = "other"
)

var ErrNoElectionData = eris.New("no election data for state")

// Tally holds one count per party.
type Tally struct {
	Dem   int64 `yaml:"dem" json:"dem"`
	Rep   int64 `yaml:"rep" json:"rep"`
	Other int64 `yaml:"other" json:"other"`
}

// Get returns the count for p.
func (t Tally) Get(p Party) int64 {
	switch p {
	case PartyDem:
		return t.Dem
	case PartyRep:
		return t.Rep
	default:
		return t.Other
	}
}

// Sum returns the total across all three parties.
func (t Tally) Sum() int64 {
	return t.Dem + t.Rep + t.Other
}

// Result is one state's presidential result for a single year.
type Result struct {
	EV    Tally `yaml:"ev" json:"ev"`
	Votes Tally `yaml:"votes" json:"votes"`
}

// Candidates maps each party to the name shown for that year.
type Candidates struct {
	Dem   string `yaml:"dem" json:"dem"`
	Rep   string `yaml:"rep" json:"rep"`
	Other string `yaml:"other" json:"other"`
}

// Name returns the display name for p.
func (c Candidates) Name(p Party) string {
	switch p {
	case PartyDem:
		return c.Dem
	case PartyRep:
		return c.Rep
	default:
		return c.Other
	}
}

// Election is a full presidential election table keyed by state.
type Election struct {
	Year       int              `yaml:"year" json:"year"`
	Source     string           `yaml:"source" json:"source"`
	Candidates Candidates       `yaml:"candidates" json:"candidates"`
	Results    map[State]Result `yaml:"results" json:"results"`
}

// Result returns the record for st. A missing record is a data integrity
// problem and is reported, never defaulted.
func (e *Election) Result(st State) (Result, error) {
	r, ok := e.Results[st]
	if !ok {
		return Result{}, eris.Wrapf(ErrNoElectionData, "election: %d %s", e.Year, st)
	}
	return r, nil
}

// TotalVotes returns the votes cast across all three buckets.
func (r Result) TotalVotes() int64 {
	return r.Votes.Sum()
}

// TotalEV returns the electoral votes allocated in the state.
func (r Result) TotalEV() int64 {
	return r.EV.Sum()
}

// VotesPercent returns p's share of the total vote.
func (r Result) VotesPercent(p Party) float64 {
	return float64(r.Votes.Get(p)) / float64(r.TotalVotes())
}

// WinningParty returns dem or rep only when that party strictly beats both
// other buckets. A dem/rep tie falls through to other.
func (r Result) WinningParty() Party {
	v := r.Votes
	if v.Dem > v.Rep && v.Dem > v.Other {
		return PartyDem
	}
	if v.Rep > v.Dem && v.Rep > v.Other {
		return PartyRep
	}
	return PartyOther
}

// Winner returns the display name of the winning party's candidate.
func (r Result) Winner(c Candidates) string {
	return c.Name(r.WinningParty())
}

// Margin is the absolute dem/rep difference. Other votes are excluded.
func (r Result) Margin() int64 {
	d := r.Votes.Dem - r.Votes.Rep
	if d < 0 {
		return -d
	}
	return d
}

// FormatMargin returns Margin with thousands separators.
func (r Result) FormatMargin() string {
	return FormatNumber(r.Margin())
}

// MarginPercent is the two-party margin over the three-way total.
func (r Result) MarginPercent() float64 {
	return float64(r.Margin()) / float64(r.TotalVotes())
}

// FormatMarginPercent returns the rounded margin percent, or "<1%" at or
// below one percent.
func (r Result) FormatMarginPercent() string {
	p := r.MarginPercent()
	if p <= 0.01 {
		return "<1%"
	}
	return FormatPercent(p, 0)
}

// MarginBand is a qualitative classification of a margin percent.
type MarginBand string

const (
	BandRazorThin MarginBand = "razor-thin margin"
	BandSlim      MarginBand = "slim margin"
	BandFair      MarginBand = "fair margin"
	BandSolid     MarginBand = "solid margin"
	BandLandslide MarginBand = "landslide"
)

// ClassifyMargin buckets p into half-open bands; each bound is exclusive.
func ClassifyMargin(p float64) MarginBand {
	switch {
	case p < 0.01:
		return BandRazorThin
	case p < 0.05:
		return BandSlim
	case p < 0.20:
		return BandFair
	case p < 0.50:
		return BandSolid
	default:
		return BandLandslide
	}
}

// Band returns the margin classification for r.
func (r Result) Band() MarginBand {
	return ClassifyMargin(r.MarginPercent())
}

// DescribeMargin renders e.g. "a razor-thin margin of 11,779 votes (<1%)".
func (r Result) DescribeMargin() string {
	band := r.Band()
	pct := "<1%"
	if band != BandRazorThin {
		pct = FormatPercent(r.MarginPercent(), 0)
	}
	return fmt.Sprintf("a %s of %s votes (%s)", band, r.FormatMargin(), pct)
}
