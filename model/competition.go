package model

import "time"

// Format is one of the four supported competition formats.
type Format string

const (
	FormatRoundRobinSingle Format = "Round Robin: Single Legs"
	FormatRoundRobinDouble Format = "Round Robin: Double Legs"
	FormatKnockoutFinals   Format = "Knockout: Finals"
	FormatKnockoutGroups   Format = "Knockout: With Group Stage"
)

func Formats() []Format {
	return []Format{
		FormatRoundRobinSingle,
		FormatRoundRobinDouble,
		FormatKnockoutFinals,
		FormatKnockoutGroups,
	}
}

type Competition struct {
	ID       ID        `json:"id"`
	Year     int       `json:"year"`
	Starts   Instant   `json:"starts"`
	Ends     Instant   `json:"ends"`
	Format   Format    `json:"format"`
	Teams    []Team    `json:"teams"`
	Fixtures []Fixture `json:"fixtures"`
	Archived bool      `json:"archived,omitempty"`
}

type CompetitionStatus string

const (
	CompetitionUpcoming  CompetitionStatus = "Upcoming"
	CompetitionActive    CompetitionStatus = "Active"
	CompetitionCompleted CompetitionStatus = "Completed"
)

// Status derives the competition's lifecycle phase from its date range.
func (c *Competition) Status(now time.Time) CompetitionStatus {
	switch {
	case now.Before(c.Starts.Time):
		return CompetitionUpcoming
	case now.After(c.Ends.Time):
		return CompetitionCompleted
	default:
		return CompetitionActive
	}
}
