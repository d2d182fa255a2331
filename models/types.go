package models

import (
	"time"

	"github.com/countmore/countmore/analytics"
	"github.com/countmore/countmore/election"
)

// Request types

type SelectStatesRequest struct {
	HomeState   string `json:"home_state"`
	SchoolState string `json:"school_state"`
}

// Response types

type StateInfo struct {
	Code           election.State `json:"code"`
	Name           string         `json:"name"`
	Rank           int            `json:"rank"`
	Battleground   bool           `json:"battleground"`
	ElectoralVotes int            `json:"electoral_votes"`
	EVYear         int            `json:"electoral_votes_year"`
}

type ListStatesResponse struct {
	States []StateInfo `json:"states"`
}

type StateDetailResponse struct {
	StateInfo
	HasRegistration bool                     `json:"has_registration"`
	RegisterURL     string                   `json:"register_url,omitempty"`
	VerifyURL       string                   `json:"verify_url,omitempty"`
	Results         []ElectionResultResponse `json:"results"`
}

type ElectionResultResponse struct {
	Year       int                 `json:"year"`
	State      election.State      `json:"state"`
	Name       string              `json:"name"`
	Source     string              `json:"source"`
	Candidates election.Candidates `json:"candidates"`
	EV         election.Tally      `json:"ev"`
	TotalEV    int64               `json:"total_ev"`
	Votes      election.Tally      `json:"votes"`

	TotalVotes             int64               `json:"total_votes"`
	TotalVotesFormatted    string              `json:"total_votes_formatted"`
	WinningParty           election.Party      `json:"winning_party"`
	Winner                 string              `json:"winner"`
	Margin                 int64               `json:"margin"`
	MarginFormatted        string              `json:"margin_formatted"`
	MarginPercent          float64             `json:"margin_percent"`
	MarginPercentFormatted string              `json:"margin_percent_formatted"`
	Band                   election.MarginBand `json:"band"`
	Description            string              `json:"description"`
}

type RegisterTarget struct {
	State election.State `json:"state"`
	Name  string         `json:"name"`
}

type SelectionResponse struct {
	Selection     election.Selection `json:"selection"`
	HomeState     election.State     `json:"home_state"`
	SchoolState   election.State     `json:"school_state"`
	SelectedState election.State     `json:"selected_state"`
	Headline      string             `json:"headline"`
	Details       string             `json:"details"`
	MarginMessage string             `json:"margin_message,omitempty"`
	Register      []RegisterTarget   `json:"register"`
}

type NextURLResponse struct {
	State   election.State        `json:"state"`
	Handler analytics.HandlerName `json:"handler"`
	URL     string                `json:"url"`
}

type ShareResponse struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	URL   string `json:"url"`
}

type EventAcceptedResponse struct {
	Kind analytics.Kind `json:"kind"`
}

type RecentEventsResponse struct {
	Events []analytics.Event `json:"events"`
}

type HealthResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
