// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package registration decides where visitors go to register or verify.
package registration

import (
	"net/url"
	"sort"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/countmore/countmore/analytics"
	"github.com/countmore/countmore/election"
)

var (
	ErrUnknownHandler    = eris.New("unknown registration handler")
	ErrNoRegistrationURL = eris.New("state has no registration page")
	ErrNoVerifyURL       = eris.New("state has no verification page")
)

// Handler decides where a visitor goes to register or verify in a state.
type Handler interface {
	Name() analytics.HandlerName
	RegisterURL(st election.State) (string, error)
	VerifyURL(st election.State) (string, error)
}

// Direct sends visitors straight to the state's vote.gov listing.
type Direct struct {
	data *election.Dataset
}

func NewDirect(data *election.Dataset) *Direct {
	return &Direct{data: data}
}

func (d *Direct) Name() analytics.HandlerName { return analytics.HandlerDirect }

func (d *Direct) RegisterURL(st election.State) (string, error) {
	u, err := d.data.BestRegistrationURL(st)
	if err != nil {
		return "", err
	}
	if u == "" {
		return "", eris.Wrapf(ErrNoRegistrationURL, "registration: %s", st)
	}
	return u, nil
}

func (d *Direct) VerifyURL(st election.State) (string, error) {
	u, err := d.data.VerifyURL(st)
	if err != nil {
		return "", err
	}
	if u == "" {
		return "", eris.Wrapf(ErrNoVerifyURL, "registration: %s", st)
	}
	return u, nil
}

// VoteAmerica sends visitors to the pages hosting the VoteAmerica register
// and verify embeds. The embed pages read the intended state from the
// "state" query parameter.
type VoteAmerica struct {
	RegisterPage string
	VerifyPage   string
}

func (v *VoteAmerica) Name() analytics.HandlerName { return analytics.HandlerVoteAmerica }

func (v *VoteAmerica) RegisterURL(st election.State) (string, error) {
	return withQuery(v.RegisterPage, url.Values{"state": {string(st)}})
}

func (v *VoteAmerica) VerifyURL(st election.State) (string, error) {
	return withQuery(v.VerifyPage, url.Values{"state": {string(st)}})
}

// RockTheVote sends visitors to the Rock the Vote partner form. Rock the
// Vote has no verification tool, so verification goes to Fallback.
type RockTheVote struct {
	BaseURL   string
	PartnerID string
	Fallback  Handler
}

func (r *RockTheVote) Name() analytics.HandlerName { return analytics.HandlerRockTheVote }

func (r *RockTheVote) RegisterURL(st election.State) (string, error) {
	q := url.Values{"home_state_id": {string(st)}}
	if r.PartnerID != "" {
		q.Set("partner", r.PartnerID)
	}
	return withQuery(r.BaseURL, q)
}

func (r *RockTheVote) VerifyURL(st election.State) (string, error) {
	if r.Fallback == nil {
		return "", eris.Wrapf(ErrNoVerifyURL, "registration: rockthevote %s", st)
	}
	return r.Fallback.VerifyURL(st)
}

func withQuery(base string, q url.Values) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", eris.Wrapf(err, "registration: parse %q", base)
	}
	existing := u.Query()
	for k, vs := range q {
		existing[k] = vs
	}
	u.RawQuery = existing.Encode()
	return u.String(), nil
}

// Registry resolves handlers by name.
type Registry struct {
	handlers map[analytics.HandlerName]Handler
	fallback analytics.HandlerName
}

// NewRegistry indexes handlers by name. The first handler is the default.
func NewRegistry(handlers ...Handler) *Registry {
	r := &Registry{handlers: make(map[analytics.HandlerName]Handler, len(handlers))}
	for i, h := range handlers {
		if i == 0 {
			r.fallback = h.Name()
		}
		r.handlers[h.Name()] = h
	}
	return r
}

// SetDefault changes the handler used for empty names.
func (r *Registry) SetDefault(name string) error {
	h, err := r.Get(name)
	if err != nil {
		return err
	}
	r.fallback = h.Name()
	return nil
}

// Get returns the handler named name, or the default for "".
func (r *Registry) Get(name string) (Handler, error) {
	key := analytics.HandlerName(strings.ToLower(strings.TrimSpace(name)))
	if key == "" {
		key = r.fallback
	}
	h, ok := r.handlers[key]
	if !ok {
		return nil, eris.Wrapf(ErrUnknownHandler, "registration: %q (want one of %s)", name, strings.Join(r.Names(), ", "))
	}
	return h, nil
}

// Names lists registered handler names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for n := range r.handlers {
		names = append(names, string(n))
	}
	sort.Strings(names)
	return names
}
