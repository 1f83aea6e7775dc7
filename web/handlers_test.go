package web

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/itbasis/go-clock"
	"github.com/stretchr/testify/mock"

	"github.com/Turf-FC/website/controller"
	"github.com/Turf-FC/website/controller/mockcontroller"
	"github.com/Turf-FC/website/model"
	"github.com/Turf-FC/website/schema"
	"github.com/Turf-FC/website/testutils"
	"github.com/Turf-FC/website/trackerapi"
)

// newTestRouter wires the full router against a fake tracker server so
// handlers are exercised end to end, cookies and redirects included.
func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()
	fake := testutils.NewFakeTrackerServer()
	t.Cleanup(fake.Close)

	ctrl, err := controller.New(clock.NewMock(), trackerapi.New(fake.URL()))
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}
	return getRouter(ctrl, newRender())
}

func get(t *testing.T, router *chi.Mux, path string, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr.Result()
}

func postForm(t *testing.T, router *chi.Mux, path string, form url.Values, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr.Result()
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("error reading response body: %v", err)
	}
	return string(b)
}

func tokenCookie() *http.Cookie {
	return &http.Cookie{Name: tokenCookieName, Value: testutils.TestToken}
}

func TestRootRedirectsToCompetitions(t *testing.T) {
	router := newTestRouter(t)

	resp := get(t, router, "/")
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/competitions" {
		t.Errorf("unexpected redirect location: %s", loc)
	}
}

func TestCompetitionsPageHidesArchived(t *testing.T) {
	router := newTestRouter(t)

	resp := get(t, router, "/competitions")
	b := body(t, resp)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
	}
	if !strings.Contains(b, "2025") {
		t.Error("expected the 2025 season to be listed")
	}
	if strings.Contains(b, "Knockout: Finals") {
		t.Error("archived competition should not be listed")
	}
}

func TestCompetitionPageShowsStandingsAndFixtures(t *testing.T) {
	router := newTestRouter(t)

	resp := get(t, router, "/competitions/1")
	b := body(t, resp)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
	}

	for _, want := range []string{"Virgins FC", "Mo United", "Arena Rovers", "2 - 1", "vs"} {
		if !strings.Contains(b, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestTeamsPageHidesArchived(t *testing.T) {
	router := newTestRouter(t)

	resp := get(t, router, "/teams")
	b := body(t, resp)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
	}
	if !strings.Contains(b, "Virgins FC") {
		t.Error("expected Virgins FC to be listed")
	}
	if strings.Contains(b, "Folded FC") {
		t.Error("archived team should not be listed")
	}
}

func TestCompetitionsPageStatusFilter(t *testing.T) {
	router := newTestRouter(t)

	// The mock clock sits before every kickoff, so the season is upcoming.
	resp := get(t, router, "/competitions?status=Upcoming")
	b := body(t, resp)
	if !strings.Contains(b, "2025") {
		t.Error("expected the upcoming season to be listed")
	}

	resp = get(t, router, "/competitions?status=Completed")
	b = body(t, resp)
	if strings.Contains(b, "Round Robin: Double Legs") {
		t.Error("upcoming season listed under the completed filter")
	}
}

func TestTeamsPageSearch(t *testing.T) {
	router := newTestRouter(t)

	resp := get(t, router, "/teams?q=rovers")
	b := body(t, resp)
	if !strings.Contains(b, "Arena Rovers") {
		t.Error("expected the matching team")
	}
	if strings.Contains(b, "Virgins FC") {
		t.Error("non-matching team should be filtered out")
	}
}

func TestTeamPageShowsSquad(t *testing.T) {
	router := newTestRouter(t)

	resp := get(t, router, "/teams/t1")
	b := body(t, resp)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
	}
	if !strings.Contains(b, "Jamie Fenwick") {
		t.Error("expected the squad to list Jamie Fenwick")
	}
	if !strings.Contains(b, "ST - Striker") {
		t.Error("expected the primary position label")
	}
}

func TestPlayersPageHidesArchived(t *testing.T) {
	router := newTestRouter(t)

	resp := get(t, router, "/players")
	b := body(t, resp)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
	}
	if !strings.Contains(b, "Leo Marsh") {
		t.Error("expected Leo Marsh to be listed")
	}
	if strings.Contains(b, "Adebayo") {
		t.Error("archived player should not be listed")
	}
}

func TestFixturePageSplitsGoalsAndEvents(t *testing.T) {
	router := newTestRouter(t)

	resp := get(t, router, "/fixtures/f1")
	b := body(t, resp)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
	}
	if !strings.Contains(b, "Jamie Fenwick") {
		t.Error("expected the goal scorer to be named")
	}
	if !strings.Contains(b, "Yellow Card") {
		t.Error("expected the booking to be listed")
	}
}

func TestViewerNotFound(t *testing.T) {
	router := newTestRouter(t)

	resp := get(t, router, "/teams/nope")
	b := body(t, resp)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
	}
	if !strings.Contains(b, "Item not found") {
		t.Error("expected the not found message")
	}
}

func TestAdminRequiresLogin(t *testing.T) {
	router := newTestRouter(t)

	resp := get(t, router, "/admin/teams")
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/login" {
		t.Errorf("unexpected redirect location: %s", loc)
	}
}

func TestLoginSuccessSetsCookie(t *testing.T) {
	router := newTestRouter(t)

	form := url.Values{
		"username": {testutils.TestUsername},
		"password": {testutils.TestPassword},
	}
	resp := postForm(t, router, "/login", form)
	resp.Body.Close()

	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/admin" {
		t.Errorf("unexpected redirect location: %s", loc)
	}

	var token *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == tokenCookieName {
			token = c
		}
	}
	if token == nil || token.Value != testutils.TestToken {
		t.Fatalf("token cookie not set: %v", token)
	}
	// Without "remember me" the cookie must be session scoped.
	if token.MaxAge != 0 {
		t.Errorf("expected a session cookie, got MaxAge=%d", token.MaxAge)
	}
}

func TestLoginRememberSetsDurableCookie(t *testing.T) {
	router := newTestRouter(t)

	form := url.Values{
		"username": {testutils.TestUsername},
		"password": {testutils.TestPassword},
		"remember": {"true"},
	}
	resp := postForm(t, router, "/login", form)
	resp.Body.Close()

	for _, c := range resp.Cookies() {
		if c.Name == tokenCookieName {
			if c.MaxAge != int(rememberDuration.Seconds()) {
				t.Errorf("unexpected cookie MaxAge: %d", c.MaxAge)
			}
			return
		}
	}
	t.Fatal("token cookie not set")
}

func TestLoginBadCredentials(t *testing.T) {
	router := newTestRouter(t)

	form := url.Values{
		"username": {"admin"},
		"password": {"wrong"},
	}
	resp := postForm(t, router, "/login", form)
	b := body(t, resp)

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
	}
	if !strings.Contains(b, "Invalid credentials") {
		t.Error("expected the invalid credentials message")
	}
	// The username is kept so the user only re-types the password.
	if !strings.Contains(b, `value="admin"`) {
		t.Error("expected the username to be preserved")
	}
}

func TestLoginPageRedirectsWhenAuthenticated(t *testing.T) {
	router := newTestRouter(t)

	resp := get(t, router, "/login", tokenCookie())
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/admin" {
		t.Errorf("unexpected redirect location: %s", loc)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	router := newTestRouter(t)

	resp := postForm(t, router, "/logout", url.Values{}, tokenCookie())
	resp.Body.Close()

	for _, c := range resp.Cookies() {
		if c.Name == tokenCookieName {
			if c.MaxAge >= 0 {
				t.Errorf("expected the cookie to be expired, got MaxAge=%d", c.MaxAge)
			}
			return
		}
	}
	t.Fatal("expected an expiring token cookie")
}

func TestAdminTable(t *testing.T) {
	router := newTestRouter(t)

	resp := get(t, router, "/admin/teams", tokenCookie())
	b := body(t, resp)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
	}

	if !strings.Contains(b, "Virgins FC") {
		t.Error("expected the teams table to list Virgins FC")
	}
	if strings.Contains(b, "Folded FC") {
		t.Error("archived team should be hidden by default")
	}
	if !strings.Contains(b, "Add New") {
		t.Error("expected the blank add form")
	}
}

func TestAdminTableShowArchived(t *testing.T) {
	router := newTestRouter(t)

	resp := get(t, router, "/admin/teams?archived=true", tokenCookie())
	b := body(t, resp)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
	}
	if !strings.Contains(b, "Folded FC") {
		t.Error("expected the archived team to be listed")
	}
}

func TestAdminTableSearch(t *testing.T) {
	router := newTestRouter(t)

	resp := get(t, router, "/admin/teams?q=virgins", tokenCookie())
	b := body(t, resp)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
	}
	if !strings.Contains(b, "Virgins FC") {
		t.Error("expected the matching team")
	}
	if strings.Contains(b, "Mo United") {
		t.Error("non-matching team should be filtered out")
	}
}

func TestAdminTableEditPrefillsForm(t *testing.T) {
	router := newTestRouter(t)

	resp := get(t, router, "/admin/teams?edit=t1", tokenCookie())
	b := body(t, resp)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
	}
	if !strings.Contains(b, "Edit") {
		t.Error("expected the edit form title")
	}
	if !strings.Contains(b, `value="Virgins FC"`) {
		t.Error("expected the form to be pre-filled")
	}
}

func TestAdminUnknownKind(t *testing.T) {
	router := newTestRouter(t)

	resp := get(t, router, "/admin/widgets", tokenCookie())
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
	}
}

func TestAdminSaveCreatesAndRedirects(t *testing.T) {
	router := newTestRouter(t)

	form := url.Values{
		"letter": {"E"},
		"alias":  {"Eastside FC"},
		"color":  {"#F97316"},
	}
	resp := postForm(t, router, "/admin/teams", form, tokenCookie())
	resp.Body.Close()

	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/admin/teams?notice=saved" {
		t.Errorf("unexpected redirect location: %s", loc)
	}

	resp = get(t, router, "/admin/teams?notice=saved", tokenCookie())
	b := body(t, resp)
	if !strings.Contains(b, "Eastside FC") {
		t.Error("expected the new team in the table")
	}
	if !strings.Contains(b, "Item saved.") {
		t.Error("expected the saved notice")
	}
}

func TestAdminEventEditKeepsParticipantOrder(t *testing.T) {
	router := newTestRouter(t)

	// p3 before p1 is the reverse of the player listing, so a prefill that
	// reflected document order would come back as p1,p3.
	form := url.Values{
		"fixture":      {"f1"},
		"eventTitle":   {"Goal"},
		"participants": {"p3", "p1"},
	}
	resp := postForm(t, router, "/admin/events", form, tokenCookie())
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
	}

	resp = get(t, router, "/admin/events?edit=1000", tokenCookie())
	b := body(t, resp)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
	}
	if !strings.Contains(b, `data-selected="p3,p1"`) {
		t.Error("expected the stored participant order on the edit form")
	}
}

func TestAdminSaveValidationError(t *testing.T) {
	router := newTestRouter(t)

	// Missing the required alias.
	form := url.Values{
		"letter": {"E"},
		"color":  {"#F97316"},
	}
	resp := postForm(t, router, "/admin/teams", form, tokenCookie())
	b := body(t, resp)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
	}
	if !strings.Contains(b, "Team Name is required") {
		t.Error("expected the error to name the missing field")
	}
}

func TestAdminArchiveHidesRow(t *testing.T) {
	router := newTestRouter(t)

	resp := postForm(t, router, "/admin/teams/t3/archive", url.Values{}, tokenCookie())
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
	}

	resp = get(t, router, "/admin/teams", tokenCookie())
	if strings.Contains(body(t, resp), "Arena Rovers") {
		t.Error("archived team still listed")
	}

	resp = postForm(t, router, "/admin/teams/t3/restore", url.Values{}, tokenCookie())
	resp.Body.Close()

	resp = get(t, router, "/admin/teams", tokenCookie())
	if !strings.Contains(body(t, resp), "Arena Rovers") {
		t.Error("restored team not listed")
	}
}

func TestAdminDeleteRemovesRow(t *testing.T) {
	router := newTestRouter(t)

	resp := postForm(t, router, "/admin/players/p3/delete", url.Values{}, tokenCookie())
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
	}

	resp = get(t, router, "/admin/players?archived=true", tokenCookie())
	if strings.Contains(body(t, resp), "Leo Marsh") {
		t.Error("deleted player still listed")
	}
}

func TestAdminConfirmPage(t *testing.T) {
	router := newTestRouter(t)

	resp := get(t, router, "/admin/teams/t1/confirm?action=delete", tokenCookie())
	b := body(t, resp)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
	}
	if !strings.Contains(b, "This action cannot be undone.") {
		t.Error("expected the delete warning")
	}
	if !strings.Contains(b, "/admin/teams/t1/delete") {
		t.Error("expected the form to post to the delete route")
	}

	resp = get(t, router, "/admin/teams/t1/confirm?action=promote", tokenCookie())
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("unexpected status code for unknown action. Got: %d", resp.StatusCode)
	}
}

func TestAdminExpiredTokenRedirectsToLogin(t *testing.T) {
	router := newTestRouter(t)

	// Mutations with a stale token get a 401 upstream, which must clear the
	// cookie and bounce to the login page.
	stale := &http.Cookie{Name: tokenCookieName, Value: "stale-token"}
	form := url.Values{
		"letter": {"E"},
		"alias":  {"Eastside FC"},
		"color":  {"#F97316"},
	}
	resp := postForm(t, router, "/admin/teams", form, stale)
	resp.Body.Close()

	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/login" {
		t.Errorf("unexpected redirect location: %s", loc)
	}
	for _, c := range resp.Cookies() {
		if c.Name == tokenCookieName && c.MaxAge >= 0 {
			t.Errorf("expected the stale cookie to be cleared, got MaxAge=%d", c.MaxAge)
		}
	}
}

func TestCompetitionsHandlerUpstreamError(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("Competitions", mock.Anything).Return(nil, errors.New("connection refused"))

	req := httptest.NewRequest(http.MethodGet, "/competitions", nil)
	rr := httptest.NewRecorder()
	competitionsHandler(ctrl, newRender()).ServeHTTP(rr, req)
	resp := rr.Result()
	b := body(t, resp)

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
	}
	if !strings.Contains(b, "connection refused") {
		t.Error("expected the upstream error message")
	}
	ctrl.AssertExpectations(t)
}

func TestStatusBadgeShowsDisconnected(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("Teams", mock.Anything).Return([]model.Team{}, nil)
	ctrl.On("ConnectionStatus").Return(controller.StatusDisconnected)

	req := httptest.NewRequest(http.MethodGet, "/teams", nil)
	rr := httptest.NewRecorder()
	teamsHandler(ctrl, newRender()).ServeHTTP(rr, req)
	resp := rr.Result()
	b := body(t, resp)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
	}
	if !strings.Contains(b, "Disconnected") {
		t.Error("expected the status badge to show Disconnected")
	}
	ctrl.AssertExpectations(t)
}

func TestAdminTableExpiredTokenOnPrefill(t *testing.T) {
	// A token can expire between the record listing and the edit-prefill
	// reads; both must bounce to the login page, not a 500.
	tests := map[string]func(ctrl *mockcontroller.C) string{
		"form options": func(ctrl *mockcontroller.C) string {
			ctrl.On("List", mock.Anything, model.KindTeam, false, "").Return([]model.Record{}, nil)
			ctrl.On("FormOptions", mock.Anything, model.KindTeam).Return(nil, trackerapi.ErrUnauthorized)
			return "/admin/teams"
		},
		"edit get": func(ctrl *mockcontroller.C) string {
			ctrl.On("List", mock.Anything, model.KindTeam, false, "").Return([]model.Record{}, nil)
			ctrl.On("FormOptions", mock.Anything, model.KindTeam).Return(map[string][]schema.Option{}, nil)
			ctrl.On("Get", mock.Anything, model.KindTeam, "t1").Return(nil, trackerapi.ErrUnauthorized)
			return "/admin/teams?edit=t1"
		},
	}

	for name, setup := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := &mockcontroller.C{}
			path := setup(ctrl)
			router := getRouter(ctrl, newRender())

			resp := get(t, router, path, tokenCookie())
			resp.Body.Close()

			if resp.StatusCode != http.StatusSeeOther {
				t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
			}
			if loc := resp.Header.Get("Location"); loc != "/login" {
				t.Errorf("unexpected redirect location: %s", loc)
			}
			for _, c := range resp.Cookies() {
				if c.Name == tokenCookieName && c.MaxAge >= 0 {
					t.Errorf("expected the stale cookie to be cleared, got MaxAge=%d", c.MaxAge)
				}
			}
			ctrl.AssertExpectations(t)
		})
	}
}

func TestThemeToggle(t *testing.T) {
	router := newTestRouter(t)

	resp := postForm(t, router, "/theme", url.Values{})
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/" {
		t.Errorf("unexpected redirect location: %s", loc)
	}

	var theme *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == themeCookieName {
			theme = c
		}
	}
	if theme == nil || theme.Value != "dark" {
		t.Fatalf("expected the theme cookie to flip to dark: %v", theme)
	}

	// Toggling again goes back to light.
	resp = postForm(t, router, "/theme", url.Values{}, theme)
	resp.Body.Close()
	for _, c := range resp.Cookies() {
		if c.Name == themeCookieName && c.Value != "light" {
			t.Errorf("expected the theme cookie to flip back to light, got %s", c.Value)
		}
	}
}
