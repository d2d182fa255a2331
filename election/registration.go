// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"github.com/rotisserie/eris"
)

var ErrNoVotingInfo = eris.New("no voting info for state")

// RegistrationMethod is one way to register in a state, as listed on vote.gov.
type RegistrationMethod struct {
	URL string `yaml:"url" json:"url"`
	// Deadline is the number of days before election day.
	Deadline    int    `yaml:"deadline,omitempty" json:"deadline,omitempty"`
	Timeframe   string `yaml:"timeframe,omitempty" json:"timeframe,omitempty"` // postmarked or received
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Wrinkle     string `yaml:"wrinkle,omitempty" json:"wrinkle,omitempty"`
}

// VotingInfo is one state's registration record.
type VotingInfo struct {
	State           State               `yaml:"state" json:"state"`
	ScrapeURL       string              `yaml:"scrape_url" json:"scrape_url"`
	HasRegistration bool                `yaml:"has_registration" json:"has_registration"`
	Online          *RegistrationMethod `yaml:"online,omitempty" json:"online,omitempty"`
	Mail            *RegistrationMethod `yaml:"mail,omitempty" json:"mail,omitempty"`
	InPerson        *RegistrationMethod `yaml:"in_person,omitempty" json:"in_person,omitempty"`
	Confirm         *RegistrationMethod `yaml:"confirm,omitempty" json:"confirm,omitempty"`
	Fallback        *RegistrationMethod `yaml:"fallback,omitempty" json:"fallback,omitempty"`
}

// BestRegistrationURL picks the first available of online, mail, in person,
// fallback and confirm. States without registration return "".
func (v VotingInfo) BestRegistrationURL() string {
	if !v.HasRegistration {
		return ""
	}
	for _, m := range []*RegistrationMethod{v.Online, v.Mail, v.InPerson, v.Fallback, v.Confirm} {
		if m != nil && m.URL != "" {
			return m.URL
		}
	}
	return ""
}

// VerifyURL returns the registration lookup page, if any.
func (v VotingInfo) VerifyURL() string {
	if v.Confirm == nil {
		return ""
	}
	return v.Confirm.URL
}
