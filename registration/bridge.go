// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registration

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/countmore/countmore/analytics"
	"github.com/countmore/countmore/election"
)

var ErrUnknownEmbedEvent = eris.New("unknown embed event")

// EmbedEvent is the payload the VoteAmerica embed dispatches to the page.
// See https://docs.voteamerica.com/software/events/
type EmbedEvent struct {
	Event  string `json:"event"` // action-start, action-finish, action-follow-up
	Tool   string `json:"tool"`  // register, verify
	State  string `json:"state"`
	Method string `json:"method,omitempty"`
	URL    string `json:"url,omitempty"`
}

const (
	embedStart    = "action-start"
	embedFinish   = "action-finish"
	embedFollowUp = "action-follow-up"

	toolRegister = "register"
	toolVerify   = "verify"
)

// FinishMethod maps a VoteAmerica finish method onto ours.
func FinishMethod(method string) (analytics.FinishMethod, error) {
	switch method {
	case "external":
		return analytics.FinishOnline, nil
	case "pdf":
		return analytics.FinishPaper, nil
	case "ineligible-state", "redirect-to-future-voter":
		return analytics.FinishIneligible, nil
	default:
		return "", eris.Wrapf(ErrUnknownEmbedEvent, "registration: finish method %q", method)
	}
}

// FollowUpMethod maps a VoteAmerica follow-up method onto ours.
func FollowUpMethod(method string) (analytics.FollowUpMethod, error) {
	switch method {
	case "external-confirmed":
		return analytics.FollowUpConfirmOnline, nil
	case "pdf":
		return analytics.FollowUpRequestPaper, nil
	default:
		return "", eris.Wrapf(ErrUnknownEmbedEvent, "registration: follow-up method %q", method)
	}
}

// Bridge turns VoteAmerica embed events into analytics events.
type Bridge struct {
	tracker *analytics.Tracker
}

func NewBridge(tracker *analytics.Tracker) *Bridge {
	return &Bridge{tracker: tracker}
}

// Handle records ev. intended is the state the embed page was opened for;
// the embed may report a different state if the visitor changed it.
func (b *Bridge) Handle(ctx context.Context, ev EmbedEvent, intended election.State, clientHash string) (analytics.Kind, error) {
	st, err := election.ParseState(ev.State)
	if err != nil {
		return "", err
	}

	switch ev.Tool {
	case toolRegister:
		return b.register(ctx, ev, st, intended, clientHash)
	case toolVerify:
		return b.verify(ctx, ev, st, intended, clientHash)
	default:
		return "", eris.Wrapf(ErrUnknownEmbedEvent, "registration: tool %q", ev.Tool)
	}
}

func (b *Bridge) register(ctx context.Context, ev EmbedEvent, st, intended election.State, clientHash string) (analytics.Kind, error) {
	const h = analytics.HandlerVoteAmerica

	switch ev.Event {
	case embedStart:
		return analytics.KindRegisterStart, b.tracker.RegisterStart(ctx, st, intended, h, clientHash)
	case embedFinish:
		method, err := FinishMethod(ev.Method)
		if err != nil {
			return "", err
		}
		return analytics.KindRegisterFinish, b.tracker.RegisterFinish(ctx, st, intended, h, method, ev.URL, clientHash)
	case embedFollowUp:
		method, err := FollowUpMethod(ev.Method)
		if err != nil {
			return "", err
		}
		return analytics.KindRegisterFollowUp, b.tracker.RegisterFollowUp(ctx, st, intended, h, method, ev.URL, clientHash)
	default:
		return "", eris.Wrapf(ErrUnknownEmbedEvent, "registration: register event %q", ev.Event)
	}
}

func (b *Bridge) verify(ctx context.Context, ev EmbedEvent, st, intended election.State, clientHash string) (analytics.Kind, error) {
	const h = analytics.HandlerVoteAmerica

	switch ev.Event {
	case embedStart:
		return analytics.KindVerifyStart, b.tracker.VerifyStart(ctx, st, intended, h, clientHash)
	case embedFinish:
		return analytics.KindVerifyFinish, b.tracker.VerifyFinish(ctx, st, intended, h, clientHash)
	default:
		return "", eris.Wrapf(ErrUnknownEmbedEvent, "registration: verify event %q", ev.Event)
	}
}
