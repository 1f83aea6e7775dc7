package controller

import (
	"context"
	"fmt"

	"github.com/Turf-FC/website/model"
	"github.com/Turf-FC/website/schema"
)

func (c *controller) List(ctx context.Context, kind model.EntityKind, includeArchived bool, query string) ([]model.Record, error) {
	records, err := c.api.List(ctx, kind, includeArchived)
	if err != nil {
		return nil, fmt.Errorf("error listing %s: %w", kind, err)
	}
	return schema.Filter(records, query), nil
}

func (c *controller) Get(ctx context.Context, kind model.EntityKind, id string) (model.Record, error) {
	rec, err := c.api.Get(ctx, kind, id)
	if err != nil {
		return nil, fmt.Errorf("error getting %s %s: %w", kind, id, err)
	}
	return rec, nil
}

func (c *controller) Save(ctx context.Context, kind model.EntityKind, editingID string, rec model.Record) error {
	if editingID == "" {
		if err := c.api.Create(ctx, kind, rec); err != nil {
			return fmt.Errorf("error creating %s: %w", kind, err)
		}
		return nil
	}
	if err := c.api.Update(ctx, kind, editingID, rec); err != nil {
		return fmt.Errorf("error updating %s %s: %w", kind, editingID, err)
	}
	return nil
}

func (c *controller) Delete(ctx context.Context, kind model.EntityKind, id string) error {
	if err := c.api.Delete(ctx, kind, id); err != nil {
		return fmt.Errorf("error deleting %s %s: %w", kind, id, err)
	}
	return nil
}

func (c *controller) Archive(ctx context.Context, kind model.EntityKind, id string) error {
	if err := c.api.Archive(ctx, kind, id); err != nil {
		return fmt.Errorf("error archiving %s %s: %w", kind, id, err)
	}
	return nil
}

func (c *controller) Restore(ctx context.Context, kind model.EntityKind, id string) error {
	if err := c.api.Restore(ctx, kind, id); err != nil {
		return fmt.Errorf("error restoring %s %s: %w", kind, id, err)
	}
	return nil
}

// FormOptions loads the record list behind every data-sourced field of the
// kind and derives its options. Archived records never appear as choices.
func (c *controller) FormOptions(ctx context.Context, kind model.EntityKind) (map[string][]schema.Option, error) {
	options := make(map[string][]schema.Option)
	for _, field := range schema.For(kind).Fields {
		if !field.HasDataSource {
			continue
		}
		records, err := c.api.List(ctx, field.DataSource, false)
		if err != nil {
			return nil, fmt.Errorf("error loading %s options: %w", field.DataSource, err)
		}
		choices := make([]schema.Option, 0, len(records))
		for _, r := range records {
			choices = append(choices, schema.OptionFor(field.DataSource, r))
		}
		options[field.Name] = choices
	}
	return options, nil
}

func (c *controller) Competitions(ctx context.Context) ([]model.Competition, error) {
	return c.api.Competitions(ctx)
}

func (c *controller) Competition(ctx context.Context, id model.ID) (*model.Competition, error) {
	return c.api.Competition(ctx, id)
}

func (c *controller) Teams(ctx context.Context) ([]model.Team, error) {
	return c.api.Teams(ctx)
}

func (c *controller) Team(ctx context.Context, id model.ID) (*model.Team, error) {
	return c.api.Team(ctx, id)
}

func (c *controller) Players(ctx context.Context) ([]model.Player, error) {
	return c.api.Players(ctx)
}

func (c *controller) Player(ctx context.Context, id model.ID) (*model.Player, error) {
	return c.api.Player(ctx, id)
}

func (c *controller) Fixtures(ctx context.Context) ([]model.Fixture, error) {
	return c.api.Fixtures(ctx)
}

func (c *controller) Fixture(ctx context.Context, id model.ID) (*model.Fixture, error) {
	return c.api.Fixture(ctx, id)
}

func (c *controller) FixtureEvents(ctx context.Context, fixtureID model.ID) ([]model.Event, error) {
	return c.api.FixtureEvents(ctx, fixtureID)
}
