package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"

	"github.com/Turf-FC/website/controller"
	"github.com/Turf-FC/website/model"
	"github.com/Turf-FC/website/trackerapi"
)

// pageData builds the base template data every page needs: the theme class
// for the layout and the upstream connection state.
func pageData(ctrl controller.C, r *http.Request) map[string]any {
	return map[string]any{
		"theme":  themeFrom(r),
		"status": ctrl.ConnectionStatus(),
	}
}

// errorData wraps a message so the error templates always receive a map,
// like every other page.
func errorData(message string) map[string]any {
	return map[string]any{"message": message}
}

func renderError(render *render.Render, w http.ResponseWriter, err error) {
	if errors.Is(err, trackerapi.ErrNotFound) {
		render.HTML(w, http.StatusNotFound, "404", errorData("Item not found"))
		return
	}
	render.HTML(w, http.StatusInternalServerError, "500", errorData(err.Error()))
}

// matchesQuery reports whether the entity's JSON serialization contains the
// query, case-insensitive. The same rule the admin search uses on raw
// records, applied to typed viewer entities.
func matchesQuery(v any, query string) bool {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return true
	}
	b, err := json.Marshal(v)
	if err != nil {
		return false
	}
	return strings.Contains(strings.ToLower(string(b)), query)
}

type competitionRow struct {
	model.Competition
	Status model.CompetitionStatus
}

type fixtureRow struct {
	model.Fixture
	Status model.FixtureStatus
}

func competitionsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		competitions, err := ctrl.Competitions(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}

		query := r.URL.Query().Get("q")
		yearFilter := r.URL.Query().Get("year")
		statusFilter := r.URL.Query().Get("status")

		now := ctrl.Now()
		rows := make([]competitionRow, 0, len(competitions))
		for _, c := range competitions {
			if c.Archived || !matchesQuery(c, query) {
				continue
			}
			if yearFilter != "" && strconv.Itoa(c.Year) != yearFilter {
				continue
			}
			status := c.Status(now)
			if statusFilter != "" && string(status) != statusFilter {
				continue
			}
			rows = append(rows, competitionRow{Competition: c, Status: status})
		}

		data := pageData(ctrl, r)
		data["competitions"] = rows
		data["q"] = query
		data["year"] = yearFilter
		data["statusFilter"] = statusFilter
		render.HTML(w, http.StatusOK, "competitions", data)
	}
}

func competitionHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := model.ID(chi.URLParam(r, "competitionID"))
		competition, err := ctrl.Competition(r.Context(), id)
		if err != nil {
			renderError(render, w, err)
			return
		}

		now := ctrl.Now()
		fixtures := make([]fixtureRow, 0, len(competition.Fixtures))
		for _, f := range competition.Fixtures {
			fixtures = append(fixtures, fixtureRow{Fixture: f, Status: f.Status(now)})
		}

		data := pageData(ctrl, r)
		data["competition"] = competition
		data["competitionStatus"] = competition.Status(now)
		data["standings"] = controller.ComputeStandings(competition.Teams, competition.Fixtures)
		data["fixtures"] = fixtures
		render.HTML(w, http.StatusOK, "competition", data)
	}
}

func teamsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := ctrl.Teams(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}

		query := r.URL.Query().Get("q")
		visible := make([]model.Team, 0, len(teams))
		for _, t := range teams {
			if !t.Archived && matchesQuery(t, query) {
				visible = append(visible, t)
			}
		}

		data := pageData(ctrl, r)
		data["teams"] = visible
		data["q"] = query
		render.HTML(w, http.StatusOK, "teams", data)
	}
}

func teamHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := model.ID(chi.URLParam(r, "teamID"))
		team, err := ctrl.Team(r.Context(), id)
		if err != nil {
			renderError(render, w, err)
			return
		}

		data := pageData(ctrl, r)
		data["team"] = team
		render.HTML(w, http.StatusOK, "team", data)
	}
}

func playersHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := ctrl.Players(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}

		query := r.URL.Query().Get("q")
		visible := make([]model.Player, 0, len(players))
		for _, p := range players {
			if !p.Archived && matchesQuery(p, query) {
				visible = append(visible, p)
			}
		}

		data := pageData(ctrl, r)
		data["players"] = visible
		data["q"] = query
		render.HTML(w, http.StatusOK, "players", data)
	}
}

func fixturesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fixtures, err := ctrl.Fixtures(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}

		query := r.URL.Query().Get("q")
		now := ctrl.Now()
		rows := make([]fixtureRow, 0, len(fixtures))
		for _, f := range fixtures {
			if f.Archived || !matchesQuery(f, query) {
				continue
			}
			rows = append(rows, fixtureRow{Fixture: f, Status: f.Status(now)})
		}

		data := pageData(ctrl, r)
		data["fixtures"] = rows
		data["q"] = query
		render.HTML(w, http.StatusOK, "fixtures", data)
	}
}

// goalView pairs a goal with its scorer and optional assist provider for the
// match report.
type goalView struct {
	Event  model.Event
	Scorer *model.Player
	Assist *model.Player
}

func fixtureHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := model.ID(chi.URLParam(r, "fixtureID"))
		fixture, err := ctrl.Fixture(r.Context(), id)
		if err != nil {
			renderError(render, w, err)
			return
		}

		events := fixture.Events
		if len(events) == 0 {
			events, err = ctrl.FixtureEvents(r.Context(), id)
			if err != nil && !errors.Is(err, trackerapi.ErrNotFound) {
				renderError(render, w, err)
				return
			}
		}

		var goals []goalView
		var others []model.Event
		for _, e := range events {
			if e.IsGoal() {
				goals = append(goals, goalView{Event: e, Scorer: e.Scorer(), Assist: e.Assist()})
			} else {
				others = append(others, e)
			}
		}

		data := pageData(ctrl, r)
		data["fixture"] = fixtureRow{Fixture: *fixture, Status: fixture.Status(ctrl.Now())}
		data["goals"] = goals
		data["events"] = others
		render.HTML(w, http.StatusOK, "fixture", data)
	}
}
