package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/unrolled/render"

	"github.com/Turf-FC/website/controller"
	"github.com/Turf-FC/website/model"
	"github.com/Turf-FC/website/schema"
)

//go:embed templates
var templates embed.FS

//go:embed static
var static embed.FS

type Server struct {
	server *http.Server
}

func NewServer(port int, ctrl controller.C) (*Server, error) {
	render := newRender()
	router := getRouter(ctrl, render)

	s := &Server{
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		},
	}
	return s, nil
}

func (s *Server) ListenAndServe(shutdown chan bool, wg *sync.WaitGroup) {
	go func() {
		defer wg.Done()

		// Wait for the shutdown signal and safely close the server.
		<-shutdown

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			log.Fatalf("fatal error shutting down server: %v", err)
		}
	}()

	log.Printf("web server is listening on %s", s.server.Addr)
	err := s.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatalf("fatal error with server: %v", err)
	}
}

func newRender() *render.Render {
	return render.New(render.Options{
		Directory: "templates",
		Layout:    "layout",
		FileSystem: &render.EmbedFileSystem{
			FS: templates,
		},
		Funcs: []template.FuncMap{
			{
				"date":     dateFormatter,
				"datetime": datetimeFormatter,
				"score":    scoreFormatter,
				"goaldiff": goalDiffFormatter,
				"has":      hasValue,
				"join":     joinValues,
				"add1":     func(i int) int { return i + 1 },
			},
		},
	})
}

func dateFormatter(t time.Time) string {
	if t.IsZero() {
		return "TBD"
	}
	return schema.FormatDate(t)
}

func datetimeFormatter(t time.Time) string {
	if t.IsZero() {
		return "TBD"
	}
	return schema.FormatDateTime(t)
}

func scoreFormatter(s *model.Score) string {
	if s == nil {
		return "vs"
	}
	return s.String()
}

// goalDiffFormatter renders a goal difference with an explicit sign, the way
// league tables print it.
func goalDiffFormatter(gd int) string {
	if gd > 0 {
		return fmt.Sprintf("+%d", gd)
	}
	return fmt.Sprintf("%d", gd)
}

// hasValue reports whether a multi-select's current selection contains the
// value. Selections reach templates as either []string or []any.
func hasValue(values any, v string) bool {
	switch t := values.(type) {
	case []string:
		for _, s := range t {
			if s == v {
				return true
			}
		}
	case []any:
		for _, s := range t {
			if fmt.Sprintf("%v", s) == v {
				return true
			}
		}
	}
	return false
}

// joinValues flattens a multi-select's selection into a comma separated
// attribute value, keeping the stored order.
func joinValues(values any) string {
	switch t := values.(type) {
	case []string:
		return strings.Join(t, ",")
	case []any:
		parts := make([]string, 0, len(t))
		for _, v := range t {
			parts = append(parts, fmt.Sprintf("%v", v))
		}
		return strings.Join(parts, ",")
	}
	return ""
}
