package testutils

import (
	"embed"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/Turf-FC/website/model"
)

//go:embed trackerdata
var trackerdata embed.FS

const (
	// Credentials and token the fake server accepts.
	TestUsername = "admin"
	TestPassword = "pa55word"
	TestToken    = "test-token"
)

// FakeTrackerServer is an in-memory stand-in for the tracker API. Every
// instance starts with its own copy of the embedded seed data, so tests can
// mutate freely without affecting each other.
type FakeTrackerServer struct {
	s *httptest.Server

	mu     sync.Mutex
	store  map[model.EntityKind][]model.Record
	nextID int
}

func NewFakeTrackerServer() *FakeTrackerServer {
	f := &FakeTrackerServer{
		store:  make(map[model.EntityKind][]model.Record),
		nextID: 1000,
	}
	for _, kind := range model.Kinds() {
		f.store[kind] = loadSeedRecords(kind)
	}

	r := chi.NewRouter()
	r.Post("/auth/login", f.loginHandler)
	r.Get("/auth/check", f.checkHandler)

	for _, kind := range model.Kinds() {
		kind := kind
		r.Route("/"+kind.String(), func(r chi.Router) {
			r.Get("/", f.listHandler(kind))
			r.Get("/{id}", f.getHandler(kind))
			r.Post("/", f.createHandler(kind))
			r.Put("/{id}", f.updateHandler(kind))
			r.Delete("/{id}", f.deleteHandler(kind))
			r.Patch("/{id}/archive", f.setArchivedHandler(kind, true))
			r.Patch("/{id}/restore", f.setArchivedHandler(kind, false))

			switch kind {
			case model.KindCompetition:
				r.Get("/{id}/teams", f.childHandler(kind, "teams"))
				r.Get("/{id}/fixtures", f.childHandler(kind, "fixtures"))
			case model.KindTeam:
				r.Get("/{id}/players", f.childHandler(kind, "players"))
			case model.KindFixture:
				r.Get("/{id}/events", f.childHandler(kind, "events"))
			}
		})
	}

	f.s = httptest.NewServer(r)
	return f
}

func (f *FakeTrackerServer) Close() {
	f.s.Close()
}

func (f *FakeTrackerServer) URL() string {
	return f.s.URL
}

func loadSeedRecords(kind model.EntityKind) []model.Record {
	b, err := trackerdata.ReadFile(fmt.Sprintf("trackerdata/%s.json", kind))
	if err != nil {
		log.Printf("error reading trackerdata/%s.json: %v", kind, err)
		return nil
	}
	var records []model.Record
	if err := json.Unmarshal(b, &records); err != nil {
		log.Printf("error parsing trackerdata/%s.json: %v", kind, err)
		return nil
	}
	return records
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

func authorized(r *http.Request) bool {
	return r.Header.Get("Authorization") == "Bearer "+TestToken
}

func (f *FakeTrackerServer) loginHandler(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeMessage(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if creds.Username != TestUsername || creds.Password != TestPassword {
		writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": TestToken})
}

func (f *FakeTrackerServer) checkHandler(w http.ResponseWriter, r *http.Request) {
	if !authorized(r) {
		writeMessage(w, http.StatusUnauthorized, "missing or invalid token")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"valid": true})
}

func (f *FakeTrackerServer) listHandler(kind model.EntityKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		includeArchived, _ := strconv.ParseBool(r.URL.Query().Get("archived"))

		f.mu.Lock()
		defer f.mu.Unlock()
		out := make([]model.Record, 0)
		for _, rec := range f.store[kind] {
			if rec.Archived() && !includeArchived {
				continue
			}
			out = append(out, rec)
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// find returns the index of a record by id, or -1. Callers must hold mu.
func (f *FakeTrackerServer) find(kind model.EntityKind, id string) int {
	for i, rec := range f.store[kind] {
		if rec.ID() == id {
			return i
		}
	}
	return -1
}

func (f *FakeTrackerServer) getHandler(kind model.EntityKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		i := f.find(kind, chi.URLParam(r, "id"))
		if i < 0 {
			writeMessage(w, http.StatusNotFound, "item not found")
			return
		}
		writeJSON(w, http.StatusOK, f.store[kind][i])
	}
}

func (f *FakeTrackerServer) createHandler(kind model.EntityKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r) {
			writeMessage(w, http.StatusUnauthorized, "missing or invalid token")
			return
		}
		var rec model.Record
		if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
			writeMessage(w, http.StatusBadRequest, "malformed request body")
			return
		}

		f.mu.Lock()
		defer f.mu.Unlock()
		rec["id"] = strconv.Itoa(f.nextID)
		f.nextID++
		f.store[kind] = append(f.store[kind], rec)
		writeJSON(w, http.StatusCreated, rec)
	}
}

func (f *FakeTrackerServer) updateHandler(kind model.EntityKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r) {
			writeMessage(w, http.StatusUnauthorized, "missing or invalid token")
			return
		}
		var rec model.Record
		if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
			writeMessage(w, http.StatusBadRequest, "malformed request body")
			return
		}

		f.mu.Lock()
		defer f.mu.Unlock()
		id := chi.URLParam(r, "id")
		i := f.find(kind, id)
		if i < 0 {
			writeMessage(w, http.StatusNotFound, "item not found")
			return
		}
		rec["id"] = id
		if f.store[kind][i].Archived() {
			rec["archived"] = true
		}
		f.store[kind][i] = rec
		writeJSON(w, http.StatusOK, rec)
	}
}

func (f *FakeTrackerServer) deleteHandler(kind model.EntityKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r) {
			writeMessage(w, http.StatusUnauthorized, "missing or invalid token")
			return
		}

		f.mu.Lock()
		defer f.mu.Unlock()
		i := f.find(kind, chi.URLParam(r, "id"))
		if i < 0 {
			writeMessage(w, http.StatusNotFound, "item not found")
			return
		}
		f.store[kind] = append(f.store[kind][:i], f.store[kind][i+1:]...)
		writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
	}
}

func (f *FakeTrackerServer) setArchivedHandler(kind model.EntityKind, archived bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r) {
			writeMessage(w, http.StatusUnauthorized, "missing or invalid token")
			return
		}

		f.mu.Lock()
		defer f.mu.Unlock()
		i := f.find(kind, chi.URLParam(r, "id"))
		if i < 0 {
			writeMessage(w, http.StatusNotFound, "item not found")
			return
		}
		f.store[kind][i]["archived"] = archived
		writeJSON(w, http.StatusOK, f.store[kind][i])
	}
}

func (f *FakeTrackerServer) childHandler(parent model.EntityKind, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		i := f.find(parent, chi.URLParam(r, "id"))
		if i < 0 {
			writeMessage(w, http.StatusNotFound, "item not found")
			return
		}
		children, ok := f.store[parent][i][name].([]any)
		if !ok {
			children = []any{}
		}
		writeJSON(w, http.StatusOK, children)
	}
}
