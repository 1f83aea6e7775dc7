// Package trackerapi is the HTTP client for the remote competition tracker
// API. The generic record operations drive the admin dashboard; the typed
// read operations drive the public viewer.
package trackerapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Turf-FC/website/model"
)

var (
	// ErrUnauthorized is returned on a 401 so callers can clear their token
	// and send the user back to the login page.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound is returned on a 404.
	ErrNotFound = errors.New("not found")
)

type Client interface {
	// Generic record operations over all five entity kinds.
	List(ctx context.Context, kind model.EntityKind, includeArchived bool) ([]model.Record, error)
	Get(ctx context.Context, kind model.EntityKind, id string) (model.Record, error)
	Create(ctx context.Context, kind model.EntityKind, rec model.Record) error
	Update(ctx context.Context, kind model.EntityKind, id string, rec model.Record) error
	Delete(ctx context.Context, kind model.EntityKind, id string) error
	Archive(ctx context.Context, kind model.EntityKind, id string) error
	Restore(ctx context.Context, kind model.EntityKind, id string) error

	// Typed reads for the public viewer.
	Competitions(ctx context.Context) ([]model.Competition, error)
	Competition(ctx context.Context, id model.ID) (*model.Competition, error)
	Teams(ctx context.Context) ([]model.Team, error)
	Team(ctx context.Context, id model.ID) (*model.Team, error)
	CompetitionTeams(ctx context.Context, competitionID model.ID) ([]model.Team, error)
	Players(ctx context.Context) ([]model.Player, error)
	Player(ctx context.Context, id model.ID) (*model.Player, error)
	TeamPlayers(ctx context.Context, teamID model.ID) ([]model.Player, error)
	Fixtures(ctx context.Context) ([]model.Fixture, error)
	Fixture(ctx context.Context, id model.ID) (*model.Fixture, error)
	CompetitionFixtures(ctx context.Context, competitionID model.ID) ([]model.Fixture, error)
	FixtureEvents(ctx context.Context, fixtureID model.ID) ([]model.Event, error)

	Login(ctx context.Context, username, password string) (string, error)
	Check(ctx context.Context) error
}

type tokenKey struct{}

// WithToken attaches an auth token to the context. Requests made with that
// context carry it as a bearer header.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func tokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

type client struct {
	url        string
	httpClient *http.Client
}

func New(url string) Client {
	return &client{
		url: url,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// errorFromResponse builds an error from a non-2xx response, preferring the
// server's message field over the bare status.
func errorFromResponse(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var parsed struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		return errors.New(parsed.Message)
	}
	return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
}

func (c *client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("error encoding request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url+path, reader)
	if err != nil {
		return fmt.Errorf("error creating http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := tokenFrom(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorFromResponse(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error parsing response from tracker api: %w", err)
	}
	return nil
}

func (c *client) List(ctx context.Context, kind model.EntityKind, includeArchived bool) ([]model.Record, error) {
	var records []model.Record
	path := fmt.Sprintf("/%s?archived=%t", kind, includeArchived)
	if err := c.do(ctx, http.MethodGet, path, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *client) Get(ctx context.Context, kind model.EntityKind, id string) (model.Record, error) {
	var rec model.Record
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/%s/%s", kind, id), nil, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (c *client) Create(ctx context.Context, kind model.EntityKind, rec model.Record) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/%s", kind), rec, nil)
}

func (c *client) Update(ctx context.Context, kind model.EntityKind, id string, rec model.Record) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/%s/%s", kind, id), rec, nil)
}

func (c *client) Delete(ctx context.Context, kind model.EntityKind, id string) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/%s/%s", kind, id), nil, nil)
}

func (c *client) Archive(ctx context.Context, kind model.EntityKind, id string) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/%s/%s/archive", kind, id), nil, nil)
}

func (c *client) Restore(ctx context.Context, kind model.EntityKind, id string) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/%s/%s/restore", kind, id), nil, nil)
}

func (c *client) Competitions(ctx context.Context) ([]model.Competition, error) {
	var competitions []model.Competition
	if err := c.do(ctx, http.MethodGet, "/competitions", nil, &competitions); err != nil {
		return nil, err
	}
	return competitions, nil
}

func (c *client) Competition(ctx context.Context, id model.ID) (*model.Competition, error) {
	var competition model.Competition
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/competitions/%s", id), nil, &competition); err != nil {
		return nil, err
	}
	return &competition, nil
}

func (c *client) Teams(ctx context.Context) ([]model.Team, error) {
	var teams []model.Team
	if err := c.do(ctx, http.MethodGet, "/teams", nil, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

func (c *client) Team(ctx context.Context, id model.ID) (*model.Team, error) {
	var team model.Team
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/teams/%s", id), nil, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

func (c *client) CompetitionTeams(ctx context.Context, competitionID model.ID) ([]model.Team, error) {
	var teams []model.Team
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/competitions/%s/teams", competitionID), nil, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

func (c *client) Players(ctx context.Context) ([]model.Player, error) {
	var players []model.Player
	if err := c.do(ctx, http.MethodGet, "/players", nil, &players); err != nil {
		return nil, err
	}
	return players, nil
}

func (c *client) Player(ctx context.Context, id model.ID) (*model.Player, error) {
	var player model.Player
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/players/%s", id), nil, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (c *client) TeamPlayers(ctx context.Context, teamID model.ID) ([]model.Player, error) {
	var players []model.Player
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/teams/%s/players", teamID), nil, &players); err != nil {
		return nil, err
	}
	return players, nil
}

func (c *client) Fixtures(ctx context.Context) ([]model.Fixture, error) {
	var fixtures []model.Fixture
	if err := c.do(ctx, http.MethodGet, "/fixtures", nil, &fixtures); err != nil {
		return nil, err
	}
	return fixtures, nil
}

func (c *client) Fixture(ctx context.Context, id model.ID) (*model.Fixture, error) {
	var fixture model.Fixture
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/fixtures/%s", id), nil, &fixture); err != nil {
		return nil, err
	}
	return &fixture, nil
}

func (c *client) CompetitionFixtures(ctx context.Context, competitionID model.ID) ([]model.Fixture, error) {
	var fixtures []model.Fixture
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/competitions/%s/fixtures", competitionID), nil, &fixtures); err != nil {
		return nil, err
	}
	return fixtures, nil
}

func (c *client) FixtureEvents(ctx context.Context, fixtureID model.ID) ([]model.Event, error) {
	var events []model.Event
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/fixtures/%s/events", fixtureID), nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *client) Login(ctx context.Context, username, password string) (string, error) {
	body := map[string]string{"username": username, "password": password}
	var parsed struct {
		Token   string `json:"token"`
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &parsed); err != nil {
		return "", err
	}
	if parsed.Token == "" {
		if parsed.Message != "" {
			return "", errors.New(parsed.Message)
		}
		return "", errors.New("invalid credentials")
	}
	return parsed.Token, nil
}

func (c *client) Check(ctx context.Context) error {
	var parsed struct {
		Valid bool `json:"valid"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/check", nil, &parsed); err != nil {
		return err
	}
	// Some deployments answer 200 with valid=false instead of a 401.
	if !parsed.Valid {
		return ErrUnauthorized
	}
	return nil
}
