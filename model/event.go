package model

import "strings"

// Event is something that happened during a fixture: a goal, a card, a
// substitution. The title is free text rather than an enum so leagues can
// record whatever they like.
type Event struct {
	ID           ID       `json:"id"`
	FixtureID    ID       `json:"fixture"`
	Title        string   `json:"eventTitle"`
	Description  string   `json:"description,omitempty"`
	Participants []Player `json:"participants"`
	Archived     bool     `json:"archived,omitempty"`
}

func (e *Event) IsGoal() bool {
	return strings.EqualFold(e.Title, "Goal")
}

// Scorer returns the goal scorer for a goal event. For a two-participant goal
// the first entry is the scorer and the second the assist provider.
func (e *Event) Scorer() *Player {
	if !e.IsGoal() || len(e.Participants) == 0 {
		return nil
	}
	return &e.Participants[0]
}

// Assist returns the assist provider for a two-participant goal, nil
// otherwise.
func (e *Event) Assist() *Player {
	if !e.IsGoal() || len(e.Participants) < 2 {
		return nil
	}
	return &e.Participants[1]
}
