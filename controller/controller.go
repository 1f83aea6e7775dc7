package controller

import (
	"context"
	"sync"
	"time"

	"github.com/itbasis/go-clock"

	"github.com/Turf-FC/website/model"
	"github.com/Turf-FC/website/schema"
	"github.com/Turf-FC/website/trackerapi"
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	// Schema-driven record operations backing the admin dashboard. List
	// filters the result by the search query locally, matching against the
	// whole serialized record.
	List(ctx context.Context, kind model.EntityKind, includeArchived bool, query string) ([]model.Record, error)
	Get(ctx context.Context, kind model.EntityKind, id string) (model.Record, error)
	// Save creates the record when editingID is empty and updates it
	// otherwise.
	Save(ctx context.Context, kind model.EntityKind, editingID string, rec model.Record) error
	Delete(ctx context.Context, kind model.EntityKind, id string) error
	Archive(ctx context.Context, kind model.EntityKind, id string) error
	Restore(ctx context.Context, kind model.EntityKind, id string) error
	// FormOptions resolves the choices for every data-sourced field of the
	// kind, fresh on each call so newly created records show up immediately.
	FormOptions(ctx context.Context, kind model.EntityKind) (map[string][]schema.Option, error)

	// Reads for the public viewer.
	Competitions(ctx context.Context) ([]model.Competition, error)
	Competition(ctx context.Context, id model.ID) (*model.Competition, error)
	Teams(ctx context.Context) ([]model.Team, error)
	Team(ctx context.Context, id model.ID) (*model.Team, error)
	Players(ctx context.Context) ([]model.Player, error)
	Player(ctx context.Context, id model.ID) (*model.Player, error)
	Fixtures(ctx context.Context) ([]model.Fixture, error)
	Fixture(ctx context.Context, id model.ID) (*model.Fixture, error)
	FixtureEvents(ctx context.Context, fixtureID model.ID) ([]model.Event, error)

	Login(ctx context.Context, username, password string) (string, error)
	CheckAuth(ctx context.Context) error

	Now() time.Time
	ConnectionStatus() Status
	RunPeriodicConnectionChecks(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup)
}

type controller struct {
	clock  clock.Clock
	api    trackerapi.Client
	status *statusStore
}

func New(clock clock.Clock, api trackerapi.Client) (C, error) {
	c := &controller{
		clock:  clock,
		api:    api,
		status: newStatusStore(),
	}
	return c, nil
}

func (c *controller) Now() time.Time {
	return c.clock.Now()
}
