package mockcontroller

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Turf-FC/website/controller"
	"github.com/Turf-FC/website/model"
	"github.com/Turf-FC/website/schema"
)

type C struct {
	mock.Mock
}

func (c *C) List(ctx context.Context, kind model.EntityKind, includeArchived bool, query string) ([]model.Record, error) {
	args := c.Called(ctx, kind, includeArchived, query)

	var records []model.Record
	if args.Get(0) != nil {
		records = args.Get(0).([]model.Record)
	}
	return records, args.Error(1)
}

func (c *C) Get(ctx context.Context, kind model.EntityKind, id string) (model.Record, error) {
	args := c.Called(ctx, kind, id)

	var rec model.Record
	if args.Get(0) != nil {
		rec = args.Get(0).(model.Record)
	}
	return rec, args.Error(1)
}

func (c *C) Save(ctx context.Context, kind model.EntityKind, editingID string, rec model.Record) error {
	args := c.Called(ctx, kind, editingID, rec)
	return args.Error(0)
}

func (c *C) Delete(ctx context.Context, kind model.EntityKind, id string) error {
	args := c.Called(ctx, kind, id)
	return args.Error(0)
}

func (c *C) Archive(ctx context.Context, kind model.EntityKind, id string) error {
	args := c.Called(ctx, kind, id)
	return args.Error(0)
}

func (c *C) Restore(ctx context.Context, kind model.EntityKind, id string) error {
	args := c.Called(ctx, kind, id)
	return args.Error(0)
}

func (c *C) FormOptions(ctx context.Context, kind model.EntityKind) (map[string][]schema.Option, error) {
	args := c.Called(ctx, kind)

	var options map[string][]schema.Option
	if args.Get(0) != nil {
		options = args.Get(0).(map[string][]schema.Option)
	}
	return options, args.Error(1)
}

func (c *C) Competitions(ctx context.Context) ([]model.Competition, error) {
	args := c.Called(ctx)

	var competitions []model.Competition
	if args.Get(0) != nil {
		competitions = args.Get(0).([]model.Competition)
	}
	return competitions, args.Error(1)
}

func (c *C) Competition(ctx context.Context, id model.ID) (*model.Competition, error) {
	args := c.Called(ctx, id)

	var competition *model.Competition
	if args.Get(0) != nil {
		competition = args.Get(0).(*model.Competition)
	}
	return competition, args.Error(1)
}

func (c *C) Teams(ctx context.Context) ([]model.Team, error) {
	args := c.Called(ctx)

	var teams []model.Team
	if args.Get(0) != nil {
		teams = args.Get(0).([]model.Team)
	}
	return teams, args.Error(1)
}

func (c *C) Team(ctx context.Context, id model.ID) (*model.Team, error) {
	args := c.Called(ctx, id)

	var team *model.Team
	if args.Get(0) != nil {
		team = args.Get(0).(*model.Team)
	}
	return team, args.Error(1)
}

func (c *C) Players(ctx context.Context) ([]model.Player, error) {
	args := c.Called(ctx)

	var players []model.Player
	if args.Get(0) != nil {
		players = args.Get(0).([]model.Player)
	}
	return players, args.Error(1)
}

func (c *C) Player(ctx context.Context, id model.ID) (*model.Player, error) {
	args := c.Called(ctx, id)

	var player *model.Player
	if args.Get(0) != nil {
		player = args.Get(0).(*model.Player)
	}
	return player, args.Error(1)
}

func (c *C) Fixtures(ctx context.Context) ([]model.Fixture, error) {
	args := c.Called(ctx)

	var fixtures []model.Fixture
	if args.Get(0) != nil {
		fixtures = args.Get(0).([]model.Fixture)
	}
	return fixtures, args.Error(1)
}

func (c *C) Fixture(ctx context.Context, id model.ID) (*model.Fixture, error) {
	args := c.Called(ctx, id)

	var fixture *model.Fixture
	if args.Get(0) != nil {
		fixture = args.Get(0).(*model.Fixture)
	}
	return fixture, args.Error(1)
}

func (c *C) FixtureEvents(ctx context.Context, fixtureID model.ID) ([]model.Event, error) {
	args := c.Called(ctx, fixtureID)

	var events []model.Event
	if args.Get(0) != nil {
		events = args.Get(0).([]model.Event)
	}
	return events, args.Error(1)
}

func (c *C) Login(ctx context.Context, username, password string) (string, error) {
	args := c.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func (c *C) CheckAuth(ctx context.Context) error {
	args := c.Called(ctx)
	return args.Error(0)
}

func (c *C) Now() time.Time {
	args := c.Called()
	return args.Get(0).(time.Time)
}

func (c *C) ConnectionStatus() controller.Status {
	args := c.Called()
	return args.Get(0).(controller.Status)
}

func (c *C) RunPeriodicConnectionChecks(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	c.Called(frequency, shutdown, wg)
}
