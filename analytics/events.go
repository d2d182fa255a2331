// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package analytics models the engagement events Count More records: state
// selections, clicks on register and verify buttons, and progress through
// the registration embeds. A Tracker stamps each event with an id, a UTC
// time and the battleground flag for its state, then hands it to a Recorder.
package analytics

import (
	"context"
	"time"

	"github.com/countmore/countmore/election"
)

// Kind names an engagement event.
type Kind string

const (
	KindSelectStates     Kind = "select_states"
	KindClickRegister    Kind = "click_register"
	KindClickVerify      Kind = "click_verify"
	KindRegisterStart    Kind = "register_start"
	KindRegisterFinish   Kind = "register_finish"
	KindRegisterFollowUp Kind = "register_follow_up"
	KindVerifyStart      Kind = "verify_start"
	KindVerifyFinish     Kind = "verify_finish"
)

// Kinds lists every event kind.
var Kinds = []Kind{
	KindSelectStates,
	KindClickRegister,
	KindClickVerify,
	KindRegisterStart,
	KindRegisterFinish,
	KindRegisterFollowUp,
	KindVerifyStart,
	KindVerifyFinish,
}

// HandlerName identifies where a visitor is sent to register.
type HandlerName string

const (
	HandlerDirect      HandlerName = "direct"
	HandlerVoteAmerica HandlerName = "voteamerica"
	HandlerRockTheVote HandlerName = "rockthevote"
)

// FinishMethod is how a registration form was completed.
type FinishMethod string

const (
	FinishOnline     FinishMethod = "online"
	FinishPaper      FinishMethod = "paper"
	FinishIneligible FinishMethod = "ineligible"
)

// FollowUpMethod is a follow-up action taken after a registration form.
type FollowUpMethod string

const (
	FollowUpConfirmOnline FollowUpMethod = "confirm-online"
	FollowUpRequestPaper  FollowUpMethod = "request-paper"
)

// Event is a single recorded engagement event. Fields that do not apply to
// the event's kind are left zero.
type Event struct {
	ID         string    `json:"id"`
	Kind       Kind      `json:"kind"`
	OccurredAt time.Time `json:"occurred_at"`

	// select_states
	HomeState   election.State     `json:"home_state,omitempty"`
	SchoolState election.State     `json:"school_state,omitempty"`
	Selection   election.Selection `json:"selection,omitempty"`
	Swing       bool               `json:"swing,omitempty"`

	// registration and verification
	State        election.State `json:"state,omitempty"`
	Intended     election.State `json:"intended,omitempty"`
	Battleground bool           `json:"battleground,omitempty"`
	Handler      HandlerName    `json:"handler,omitempty"`
	Method       string         `json:"method,omitempty"`
	URL          string         `json:"url,omitempty"`

	ClientHash string `json:"-"`
}

// Recorder persists events.
type Recorder interface {
	Record(ctx context.Context, ev Event) error
}

// Summary aggregates recorded events.
type Summary struct {
	Total        int                        `json:"total"`
	ByKind       map[Kind]int               `json:"by_kind"`
	BySelection  map[election.Selection]int `json:"by_selection"`
	Battleground int                        `json:"battleground"`
}
