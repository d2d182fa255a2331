// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package summary renders the copy shown after a visitor picks their states.
package summary

import (
	"errors"
	"fmt"

	"github.com/countmore/countmore/election"
)

const (
	ShareTitle = "Count More"
	ShareText  = "Every vote counts... but some count more. Find out where *your* vote counts more in 2024."
)

// Summary is the rendered copy for one selection.
type Summary struct {
	Result        election.SelectionResult
	SelectedState election.State
	Headline      string
	Details       string
	// MarginMessage is empty unless the selected state was decided by less
	// than 2.5% in the reference election.
	MarginMessage string
	Register      []election.State
}

// Writer renders selection copy from a dataset and a reference election.
type Writer struct {
	data *election.Dataset
	ref  *election.Election

	registrationURL func(election.State) (string, error)
}

// NewWriter returns a Writer that quotes margins from the given year.
func NewWriter(data *election.Dataset, referenceYear int) (*Writer, error) {
	ref, err := data.Election(referenceYear)
	if err != nil {
		return nil, err
	}
	return &Writer{data: data, ref: ref, registrationURL: data.BestRegistrationURL}, nil
}

// Describe renders headline, details, margin message and registration
// targets for res.
func (w *Writer) Describe(res election.SelectionResult) (Summary, error) {
	if err := res.Selection.Validate(); err != nil {
		return Summary{}, err
	}

	headline := w.Headline(res)
	details := w.Details(res)

	margin, err := w.MarginMessage(res.SelectedState())
	if err != nil {
		return Summary{}, err
	}

	register, err := w.RegistrationTargets(res)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Result:        res,
		SelectedState: res.SelectedState(),
		Headline:      headline,
		Details:       details,
		MarginMessage: margin,
		Register:      register,
	}, nil
}

// Headline returns the one-line answer shown above the details.
func (w *Writer) Headline(res election.SelectionResult) string {
	switch res.Selection {
	case election.SelectionHome, election.SelectionSchool:
		return fmt.Sprintf("Your vote counts more in %s.", w.data.Name(res.SelectedState()))
	case election.SelectionTossUp:
		return fmt.Sprintf("Your vote matters in both %s and %s.", w.data.Name(res.Home), w.data.Name(res.School))
	case election.SelectionSame:
		return fmt.Sprintf("Your home and school states are both %s.", w.data.Name(res.SelectedState()))
	default:
		return ""
	}
}

// Details returns the explanatory paragraph for res.
func (w *Writer) Details(res election.SelectionResult) string {
	switch res.Selection {
	case election.SelectionHome, election.SelectionSchool:
		selected := w.data.Name(res.SelectedState())
		return fmt.Sprintf(
			"In this presidential election, your vote has more impact in %s than in %s. "+
				"%s is a “swing state” where a small number of votes can swing the election.",
			selected, w.data.Name(res.OtherState()), selected,
		)
	case election.SelectionTossUp:
		return "It’s a toss-up between your home and school states."
	case election.SelectionSame:
		return fmt.Sprintf("That makes things simple: vote in %s.", w.data.Name(res.Home))
	default:
		return ""
	}
}

// MarginMessage quotes the reference election for st when it was close.
func (w *Writer) MarginMessage(st election.State) (string, error) {
	r, err := w.ref.Result(st)
	if err != nil {
		return "", err
	}

	var qualifier string
	switch mp := r.MarginPercent(); {
	case mp < 0.01:
		qualifier = "a razor-thin margin of " + r.FormatMargin() + " votes (<1%)"
	case mp < 0.025:
		qualifier = "a slim margin of " + r.FormatMargin() + " votes (<2.5%)"
	default:
		return "", nil
	}

	return fmt.Sprintf("In %d, %s won %s by %s.",
		w.ref.Year, r.Winner(w.ref.Candidates), w.data.Name(st), qualifier), nil
}

// RegistrationTargets lists the states the visitor should be offered a
// registration link for. States without voting info or a registration page
// are skipped.
func (w *Writer) RegistrationTargets(res election.SelectionResult) ([]election.State, error) {
	var candidates []election.State
	if res.Selection != election.SelectionSchool {
		candidates = append(candidates, res.Home)
	}
	if res.Selection != election.SelectionHome && res.Selection != election.SelectionSame {
		candidates = append(candidates, res.School)
	}

	out := make([]election.State, 0, len(candidates))
	for _, st := range candidates {
		url, err := w.registrationURL(st)
		if errors.Is(err, election.ErrNoVotingInfo) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if url == "" {
			continue
		}
		out = append(out, st)
	}
	return out, nil
}
