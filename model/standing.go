package model

// Standing is a team's aggregate competitive record within one competition,
// derived from its completed fixtures. Standings are recomputed on every
// render and never persisted.
type Standing struct {
	TeamID         ID
	TeamName       string
	TeamLetter     string
	MatchesPlayed  int
	Wins           int
	Draws          int
	Losses         int
	GoalsScored    int
	GoalsConceded  int
	GoalDifference int
	Points         int
}
