package trackerapi

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Turf-FC/website/model"
)

//go:embed mockdata/competitions.json
var sampleCompetitions []byte

// ErrReadOnly is returned by every mutation on the fallback client.
var ErrReadOnly = errors.New("tracker api unavailable, sample data is read only")

// fallback serves embedded sample data when the tracker API cannot be
// reached, so the public viewer stays browsable. Only competitions are stored
// directly; the other collections are flattened out of their parents the same
// way the upstream API nests them.
type fallback struct {
	competitions []model.Competition
	raw          []model.Record
}

func NewFallback() (Client, error) {
	f := &fallback{}
	if err := json.Unmarshal(sampleCompetitions, &f.competitions); err != nil {
		return nil, fmt.Errorf("error parsing sample competitions: %w", err)
	}
	if err := json.Unmarshal(sampleCompetitions, &f.raw); err != nil {
		return nil, fmt.Errorf("error parsing sample records: %w", err)
	}
	return f, nil
}

func childRecords(parents []model.Record, name string) []model.Record {
	var out []model.Record
	for _, p := range parents {
		children, ok := p[name].([]any)
		if !ok {
			continue
		}
		for _, c := range children {
			if rec, ok := c.(map[string]any); ok {
				out = append(out, model.Record(rec))
			}
		}
	}
	return out
}

func (f *fallback) records(kind model.EntityKind) []model.Record {
	switch kind {
	case model.KindCompetition:
		return f.raw
	case model.KindTeam:
		return childRecords(f.raw, "teams")
	case model.KindPlayer:
		return childRecords(childRecords(f.raw, "teams"), "players")
	case model.KindFixture:
		return childRecords(f.raw, "fixtures")
	case model.KindEvent:
		return childRecords(childRecords(f.raw, "fixtures"), "events")
	default:
		return nil
	}
}

func (f *fallback) List(_ context.Context, kind model.EntityKind, includeArchived bool) ([]model.Record, error) {
	var out []model.Record
	for _, r := range f.records(kind) {
		if r.Archived() && !includeArchived {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fallback) Get(_ context.Context, kind model.EntityKind, id string) (model.Record, error) {
	for _, r := range f.records(kind) {
		if r.ID() == id {
			return r, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fallback) Create(context.Context, model.EntityKind, model.Record) error {
	return ErrReadOnly
}

func (f *fallback) Update(context.Context, model.EntityKind, string, model.Record) error {
	return ErrReadOnly
}

func (f *fallback) Delete(context.Context, model.EntityKind, string) error {
	return ErrReadOnly
}

func (f *fallback) Archive(context.Context, model.EntityKind, string) error {
	return ErrReadOnly
}

func (f *fallback) Restore(context.Context, model.EntityKind, string) error {
	return ErrReadOnly
}

func (f *fallback) Competitions(context.Context) ([]model.Competition, error) {
	return f.competitions, nil
}

func (f *fallback) Competition(_ context.Context, id model.ID) (*model.Competition, error) {
	for i := range f.competitions {
		if f.competitions[i].ID == id {
			return &f.competitions[i], nil
		}
	}
	return nil, ErrNotFound
}

func (f *fallback) Teams(context.Context) ([]model.Team, error) {
	var teams []model.Team
	for _, c := range f.competitions {
		teams = append(teams, c.Teams...)
	}
	return teams, nil
}

func (f *fallback) Team(ctx context.Context, id model.ID) (*model.Team, error) {
	teams, _ := f.Teams(ctx)
	for i := range teams {
		if teams[i].ID == id {
			return &teams[i], nil
		}
	}
	return nil, ErrNotFound
}

func (f *fallback) CompetitionTeams(ctx context.Context, competitionID model.ID) ([]model.Team, error) {
	c, err := f.Competition(ctx, competitionID)
	if err != nil {
		return nil, err
	}
	return c.Teams, nil
}

func (f *fallback) Players(ctx context.Context) ([]model.Player, error) {
	teams, _ := f.Teams(ctx)
	var players []model.Player
	for _, t := range teams {
		players = append(players, t.Players...)
	}
	return players, nil
}

func (f *fallback) Player(ctx context.Context, id model.ID) (*model.Player, error) {
	players, _ := f.Players(ctx)
	for i := range players {
		if players[i].ID == id {
			return &players[i], nil
		}
	}
	return nil, ErrNotFound
}

func (f *fallback) TeamPlayers(ctx context.Context, teamID model.ID) ([]model.Player, error) {
	t, err := f.Team(ctx, teamID)
	if err != nil {
		return nil, err
	}
	return t.Players, nil
}

func (f *fallback) Fixtures(context.Context) ([]model.Fixture, error) {
	var fixtures []model.Fixture
	for _, c := range f.competitions {
		fixtures = append(fixtures, c.Fixtures...)
	}
	return fixtures, nil
}

func (f *fallback) Fixture(ctx context.Context, id model.ID) (*model.Fixture, error) {
	fixtures, _ := f.Fixtures(ctx)
	for i := range fixtures {
		if fixtures[i].ID == id {
			return &fixtures[i], nil
		}
	}
	return nil, ErrNotFound
}

func (f *fallback) CompetitionFixtures(ctx context.Context, competitionID model.ID) ([]model.Fixture, error) {
	c, err := f.Competition(ctx, competitionID)
	if err != nil {
		return nil, err
	}
	return c.Fixtures, nil
}

func (f *fallback) FixtureEvents(ctx context.Context, fixtureID model.ID) ([]model.Event, error) {
	fx, err := f.Fixture(ctx, fixtureID)
	if err != nil {
		return nil, err
	}
	return fx.Events, nil
}

func (f *fallback) Login(context.Context, string, string) (string, error) {
	return "", ErrReadOnly
}

func (f *fallback) Check(context.Context) error {
	return ErrReadOnly
}
