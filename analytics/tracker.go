// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package analytics

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"

	"github.com/countmore/countmore/election"
)

// Tracker builds events, tags them with battleground status, and hands them
// to a Recorder.
type Tracker struct {
	rankings election.Rankings
	rec      Recorder
	now      func() time.Time
}

func NewTracker(rankings election.Rankings, rec Recorder) *Tracker {
	return &Tracker{
		rankings: rankings,
		rec:      rec,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (t *Tracker) newEvent(kind Kind, clientHash string) Event {
	return Event{
		ID:         uuid.New().String(),
		Kind:       kind,
		OccurredAt: t.now(),
		ClientHash: clientHash,
	}
}

func (t *Tracker) record(ctx context.Context, ev Event) error {
	if err := t.rec.Record(ctx, ev); err != nil {
		return eris.Wrapf(err, "analytics: record %s", ev.Kind)
	}
	return nil
}

// SelectStates records a completed state selection. Swing is set when one
// state was strictly more pivotal than the other.
func (t *Tracker) SelectStates(ctx context.Context, res election.SelectionResult, clientHash string) error {
	ev := t.newEvent(KindSelectStates, clientHash)
	ev.HomeState = res.Home
	ev.SchoolState = res.School
	ev.Selection = res.Selection
	ev.Swing = res.Selection.Swing()
	return t.record(ctx, ev)
}

// ClickRegister records a click on a register-to-vote button.
func (t *Tracker) ClickRegister(ctx context.Context, st election.State, handler HandlerName, clientHash string) error {
	return t.record(ctx, t.stateEvent(KindClickRegister, st, "", handler, clientHash))
}

// ClickVerify records a click on a verify-registration button.
func (t *Tracker) ClickVerify(ctx context.Context, st election.State, handler HandlerName, clientHash string) error {
	return t.record(ctx, t.stateEvent(KindClickVerify, st, "", handler, clientHash))
}

// RegisterStart records the start of any registration form.
func (t *Tracker) RegisterStart(ctx context.Context, st, intended election.State, handler HandlerName, clientHash string) error {
	return t.record(ctx, t.stateEvent(KindRegisterStart, st, intended, handler, clientHash))
}

// RegisterFinish records a completed registration form.
func (t *Tracker) RegisterFinish(ctx context.Context, st, intended election.State, handler HandlerName, method FinishMethod, url, clientHash string) error {
	ev := t.stateEvent(KindRegisterFinish, st, intended, handler, clientHash)
	ev.Method = string(method)
	ev.URL = url
	return t.record(ctx, ev)
}

// RegisterFollowUp records a follow-up action after registration.
func (t *Tracker) RegisterFollowUp(ctx context.Context, st, intended election.State, handler HandlerName, method FollowUpMethod, url, clientHash string) error {
	ev := t.stateEvent(KindRegisterFollowUp, st, intended, handler, clientHash)
	ev.Method = string(method)
	ev.URL = url
	return t.record(ctx, ev)
}

// VerifyStart records the start of a verification form.
func (t *Tracker) VerifyStart(ctx context.Context, st, intended election.State, handler HandlerName, clientHash string) error {
	return t.record(ctx, t.stateEvent(KindVerifyStart, st, intended, handler, clientHash))
}

// VerifyFinish records a completed verification form.
func (t *Tracker) VerifyFinish(ctx context.Context, st, intended election.State, handler HandlerName, clientHash string) error {
	return t.record(ctx, t.stateEvent(KindVerifyFinish, st, intended, handler, clientHash))
}

func (t *Tracker) stateEvent(kind Kind, st, intended election.State, handler HandlerName, clientHash string) Event {
	ev := t.newEvent(kind, clientHash)
	ev.State = st
	ev.Intended = intended
	ev.Battleground = t.rankings.IsBattleground(st)
	ev.Handler = handler
	return ev
}
