// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"sort"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var embedded embed.FS

var ErrUnknownYear = eris.New("unknown election year")

// Dataset bundles every static table the service reads. It is immutable once
// loaded and safe for concurrent use.
type Dataset struct {
	names          map[State]string
	rankings       Rankings
	elections      map[int]*Election
	evYear         int
	electoralVotes map[State]int
	registration   map[State]VotingInfo
}

type statesFile struct {
	States []struct {
		Code State  `yaml:"code"`
		Name string `yaml:"name"`
	} `yaml:"states"`
}

type rankingsFile struct {
	Rankings Rankings `yaml:"rankings"`
}

type electoralVotesFile struct {
	Year           int           `yaml:"year"`
	ElectoralVotes map[State]int `yaml:"electoral_votes"`
}

type registrationFile struct {
	States []VotingInfo `yaml:"states"`
}

// Default loads the tables compiled into the binary.
func Default() (*Dataset, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, eris.Wrap(err, "election: embedded data")
	}
	return LoadFS(sub)
}

// Load reads the tables from dir, or the embedded tables when dir is empty.
func Load(dir string) (*Dataset, error) {
	if dir == "" {
		return Default()
	}
	return LoadFS(os.DirFS(dir))
}

// LoadFS loads the tables from fsys. The layout matches the embedded data
// directory: states.yaml, power_rankings.yaml, registration.yaml,
// election_<year>.yaml and electoral_votes_<year>.yaml.
func LoadFS(fsys fs.FS) (*Dataset, error) {
	ds := &Dataset{
		names:        make(map[State]string),
		elections:    make(map[int]*Election),
		registration: make(map[State]VotingInfo),
	}

	var sf statesFile
	if err := decodeFile(fsys, "states.yaml", &sf); err != nil {
		return nil, err
	}
	for _, s := range sf.States {
		if !s.Code.Valid() {
			return nil, eris.Wrapf(ErrInvalidState, "election: states.yaml: %q", s.Code)
		}
		ds.names[s.Code] = s.Name
	}
	for _, st := range stateCodes {
		if ds.names[st] == "" {
			return nil, eris.Errorf("election: states.yaml: missing name for %s", st)
		}
	}

	var rf rankingsFile
	if err := decodeFile(fsys, "power_rankings.yaml", &rf); err != nil {
		return nil, err
	}
	if rf.Rankings == nil {
		rf.Rankings = Rankings{}
	}
	for st, rank := range rf.Rankings {
		if !st.Valid() {
			return nil, eris.Wrapf(ErrInvalidState, "election: power_rankings.yaml: %q", st)
		}
		if rank < 0 {
			return nil, eris.Errorf("election: power_rankings.yaml: negative rank %d for %s", rank, st)
		}
	}
	ds.rankings = rf.Rankings

	electionFiles, err := fs.Glob(fsys, "election_*.yaml")
	if err != nil {
		return nil, eris.Wrap(err, "election: glob election tables")
	}
	for _, name := range electionFiles {
		var e Election
		if err := decodeFile(fsys, name, &e); err != nil {
			return nil, err
		}
		if err := validateElection(&e); err != nil {
			return nil, eris.Wrapf(err, "election: %s", name)
		}
		ds.elections[e.Year] = &e
	}
	if len(ds.elections) == 0 {
		return nil, eris.New("election: no election tables found")
	}

	evFiles, err := fs.Glob(fsys, "electoral_votes_*.yaml")
	if err != nil {
		return nil, eris.Wrap(err, "election: glob electoral vote tables")
	}
	for _, name := range evFiles {
		var ef electoralVotesFile
		if err := decodeFile(fsys, name, &ef); err != nil {
			return nil, err
		}
		if ef.Year > ds.evYear {
			ds.evYear = ef.Year
			ds.electoralVotes = ef.ElectoralVotes
		}
	}

	var regf registrationFile
	if err := decodeFile(fsys, "registration.yaml", &regf); err != nil {
		return nil, err
	}
	for _, info := range regf.States {
		if !info.State.Valid() {
			return nil, eris.Wrapf(ErrInvalidState, "election: registration.yaml: %q", info.State)
		}
		ds.registration[info.State] = info
	}

	return ds, nil
}

func decodeFile(fsys fs.FS, name string, v any) error {
	f, err := fsys.Open(name)
	if err != nil {
		return eris.Wrapf(err, "election: open %s", name)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(v); err != nil {
		return eris.Wrapf(err, "election: decode %s", path.Base(name))
	}
	return nil
}

func validateElection(e *Election) error {
	if e.Year == 0 {
		return eris.New("missing year")
	}
	for st, r := range e.Results {
		if !st.Valid() {
			return eris.Wrapf(ErrInvalidState, "result for %q", st)
		}
		if r.Votes.Dem < 0 || r.Votes.Rep < 0 || r.Votes.Other < 0 {
			return eris.Errorf("negative vote count for %s", st)
		}
		if r.TotalVotes() == 0 {
			return eris.Errorf("zero votes recorded for %s", st)
		}
	}
	for _, st := range stateCodes {
		if _, ok := e.Results[st]; !ok {
			return eris.Wrapf(ErrNoElectionData, "%d %s", e.Year, st)
		}
	}
	return nil
}

// Name returns the full state name, or the code itself for unknown input.
func (d *Dataset) Name(st State) string {
	if n, ok := d.names[st]; ok {
		return n
	}
	return string(st)
}

// Rankings returns the power ranking table.
func (d *Dataset) Rankings() Rankings {
	return d.rankings
}

// Election returns the table for year.
func (d *Dataset) Election(year int) (*Election, error) {
	e, ok := d.elections[year]
	if !ok {
		return nil, eris.Wrapf(ErrUnknownYear, "election: %d", year)
	}
	return e, nil
}

// Years lists the loaded election years, oldest first.
func (d *Dataset) Years() []int {
	years := make([]int, 0, len(d.elections))
	for y := range d.elections {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// ElectoralVotes returns st's electoral votes for the most recent
// apportionment loaded, along with that year.
func (d *Dataset) ElectoralVotes(st State) (int, int) {
	return d.electoralVotes[st], d.evYear
}

// VotingInfo returns the vote.gov record for st.
func (d *Dataset) VotingInfo(st State) (VotingInfo, error) {
	info, ok := d.registration[st]
	if !ok {
		return VotingInfo{}, eris.Wrapf(ErrNoVotingInfo, "election: %s", st)
	}
	return info, nil
}

// BestRegistrationURL returns the preferred registration page for st, or ""
// when the state has no registration.
func (d *Dataset) BestRegistrationURL(st State) (string, error) {
	info, err := d.VotingInfo(st)
	if err != nil {
		return "", err
	}
	return info.BestRegistrationURL(), nil
}

// VerifyURL returns the registration lookup page for st.
func (d *Dataset) VerifyURL(st State) (string, error) {
	info, err := d.VotingInfo(st)
	if err != nil {
		return "", err
	}
	return info.VerifyURL(), nil
}
