package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// Score is a fixture's final score. The API represents it as a two-element
// array with the home side first; decoding onto named fields keeps that
// convention in one place.
type Score struct {
	Home int
	Away int
}

func (s Score) String() string {
	return fmt.Sprintf("%d - %d", s.Home, s.Away)
}

func (s Score) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{s.Home, s.Away})
}

func (s *Score) UnmarshalJSON(b []byte) error {
	var pair []int
	if err := json.Unmarshal(b, &pair); err != nil {
		return fmt.Errorf("error parsing final score: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("final score must have exactly 2 elements, got %d", len(pair))
	}
	s.Home = pair[0]
	s.Away = pair[1]
	return nil
}

// Fixture is a scheduled or played match between two teams. The wire format
// carries the teams as a positional participants array (home first); the
// decoded struct names the sides instead.
type Fixture struct {
	ID         ID
	Home       *Team
	Away       *Team
	Kickoff    Instant
	Venue      string
	Referee    string
	HasHalves  bool
	FinalScore *Score
	Events     []Event
	Archived   bool
}

type fixtureJSON struct {
	ID           ID      `json:"id"`
	Participants []*Team `json:"participants"`
	KickoffTime  Instant `json:"kickoffTime,omitempty"`
	Starts       Instant `json:"starts,omitempty"`
	Venue        string  `json:"venue,omitempty"`
	Referee      string  `json:"referee,omitempty"`
	HasHalves    bool    `json:"hasHalves"`
	FinalScore   *Score  `json:"finalScore"`
	Events       []Event `json:"events,omitempty"`
	Archived     bool    `json:"archived,omitempty"`
}

func (f *Fixture) UnmarshalJSON(b []byte) error {
	var w fixtureJSON
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	f.ID = w.ID
	if len(w.Participants) > 0 {
		f.Home = w.Participants[0]
	}
	if len(w.Participants) > 1 {
		f.Away = w.Participants[1]
	}
	// Older records use "starts" where newer ones use "kickoffTime".
	f.Kickoff = w.KickoffTime
	if f.Kickoff.IsZero() {
		f.Kickoff = w.Starts
	}
	f.Venue = w.Venue
	f.Referee = w.Referee
	f.HasHalves = w.HasHalves
	f.FinalScore = w.FinalScore
	f.Events = w.Events
	f.Archived = w.Archived
	return nil
}

func (f Fixture) MarshalJSON() ([]byte, error) {
	w := fixtureJSON{
		ID:          f.ID,
		KickoffTime: f.Kickoff,
		Venue:       f.Venue,
		Referee:     f.Referee,
		HasHalves:   f.HasHalves,
		FinalScore:  f.FinalScore,
		Events:      f.Events,
		Archived:    f.Archived,
	}
	if f.Home != nil || f.Away != nil {
		w.Participants = []*Team{f.Home, f.Away}
	}
	return json.Marshal(w)
}

// Completed reports whether the fixture counts toward standings: it has a
// final score and both participants.
func (f *Fixture) Completed() bool {
	return f.FinalScore != nil && f.Home != nil && f.Away != nil
}

type FixtureStatus string

const (
	FixtureScheduled FixtureStatus = "Scheduled"
	FixtureLive      FixtureStatus = "Live"
	FixtureFullTime  FixtureStatus = "Full Time"
)

func (f *Fixture) Status(now time.Time) FixtureStatus {
	switch {
	case f.FinalScore != nil:
		return FixtureFullTime
	case now.Before(f.Kickoff.Time):
		return FixtureScheduled
	default:
		return FixtureLive
	}
}
