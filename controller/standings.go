package controller

import (
	"slices"
	"strings"

	"github.com/Turf-FC/website/model"
)

const (
	pointsForWin  = 3
	pointsForDraw = 1
)

// ComputeStandings derives a league table from a competition's teams and
// fixtures. Every team gets a row even before it has played; only fixtures
// with a final score and both participants count. The table is sorted by
// points, then goal difference, then goals scored, all descending, with team
// name breaking any remaining tie.
func ComputeStandings(teams []model.Team, fixtures []model.Fixture) []model.Standing {
	standings := make([]model.Standing, 0, len(teams))
	index := make(map[model.ID]int, len(teams))
	for _, t := range teams {
		index[t.ID] = len(standings)
		standings = append(standings, model.Standing{
			TeamID:     t.ID,
			TeamName:   t.Alias,
			TeamLetter: t.Letter,
		})
	}

	for i := range fixtures {
		f := &fixtures[i]
		if !f.Completed() {
			continue
		}
		if hi, ok := index[f.Home.ID]; ok {
			applyResult(&standings[hi], f.FinalScore.Home, f.FinalScore.Away)
		}
		if ai, ok := index[f.Away.ID]; ok {
			applyResult(&standings[ai], f.FinalScore.Away, f.FinalScore.Home)
		}
	}

	slices.SortFunc(standings, func(a, b model.Standing) int {
		if a.Points != b.Points {
			return b.Points - a.Points
		}
		if a.GoalDifference != b.GoalDifference {
			return b.GoalDifference - a.GoalDifference
		}
		if a.GoalsScored != b.GoalsScored {
			return b.GoalsScored - a.GoalsScored
		}
		return strings.Compare(a.TeamName, b.TeamName)
	})
	return standings
}

func applyResult(s *model.Standing, scored, conceded int) {
	s.MatchesPlayed++
	s.GoalsScored += scored
	s.GoalsConceded += conceded
	s.GoalDifference = s.GoalsScored - s.GoalsConceded
	switch {
	case scored > conceded:
		s.Wins++
		s.Points += pointsForWin
	case scored == conceded:
		s.Draws++
		s.Points += pointsForDraw
	default:
		s.Losses++
	}
}
