package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/unrolled/render"

	"github.com/Turf-FC/website/controller"
)

func getRouter(ctrl controller.C, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Handle("/static/*", http.FileServer(http.FS(static)))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/competitions", http.StatusSeeOther)
	})

	r.Route("/competitions", func(r chi.Router) {
		r.Get("/", competitionsHandler(ctrl, render))
		r.Get("/{competitionID}", competitionHandler(ctrl, render))
	})
	r.Route("/teams", func(r chi.Router) {
		r.Get("/", teamsHandler(ctrl, render))
		r.Get("/{teamID}", teamHandler(ctrl, render))
	})
	r.Get("/players", playersHandler(ctrl, render))
	r.Route("/fixtures", func(r chi.Router) {
		r.Get("/", fixturesHandler(ctrl, render))
		r.Get("/{fixtureID}", fixtureHandler(ctrl, render))
	})

	r.Get("/login", loginPageHandler(ctrl, render))
	r.Post("/login", loginHandler(ctrl, render))
	r.Post("/logout", logoutHandler())
	r.Post("/theme", themeHandler())

	r.Route("/admin", func(r chi.Router) {
		r.Use(requireAuth)
		r.Use(middleware.Timeout(30 * time.Second)) // Set a longer timeout for /admin actions

		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/admin/competitions", http.StatusSeeOther)
		})
		r.Route("/{kind}", func(r chi.Router) {
			r.Get("/", adminTableHandler(ctrl, render))
			r.Post("/", adminSaveHandler(ctrl, render))
			r.Get("/{id}/confirm", adminConfirmHandler(ctrl, render))
			r.Post("/{id}/archive", adminArchiveHandler(ctrl, render))
			r.Post("/{id}/restore", adminRestoreHandler(ctrl, render))
			r.Post("/{id}/delete", adminDeleteHandler(ctrl, render))
		})
	})

	return r
}
