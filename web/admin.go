package web

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"

	"github.com/Turf-FC/website/controller"
	"github.com/Turf-FC/website/model"
	"github.com/Turf-FC/website/schema"
	"github.com/Turf-FC/website/trackerapi"
)

const (
	tokenCookieName = "token"
	themeCookieName = "theme"

	// How long a "remember me" login survives.
	rememberDuration = 30 * 24 * time.Hour
	themeDuration    = 365 * 24 * time.Hour
)

func tokenFrom(r *http.Request) string {
	c, err := r.Cookie(tokenCookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

func themeFrom(r *http.Request) string {
	c, err := r.Cookie(themeCookieName)
	if err != nil || c.Value != "dark" {
		return "light"
	}
	return "dark"
}

func setTokenCookie(w http.ResponseWriter, token string, remember bool) {
	c := &http.Cookie{
		Name:     tokenCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	// Without "remember me" the cookie is session scoped and dies with the
	// browser.
	if remember {
		c.MaxAge = int(rememberDuration.Seconds())
	}
	http.SetCookie(w, c)
}

func clearTokenCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// requireAuth gates the admin subtree. Requests without a token go to the
// login page; requests with one carry it on the context so every upstream
// call is authenticated.
func requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := tokenFrom(r)
		if token == "" {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r.WithContext(trackerapi.WithToken(r.Context(), token)))
	})
}

// expireAndRedirect handles an upstream 401: the stored token is no longer
// valid, so clear it and send the user back to the login page.
func expireAndRedirect(w http.ResponseWriter, r *http.Request) {
	clearTokenCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func loginPageHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if tokenFrom(r) != "" {
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}
		render.HTML(w, http.StatusOK, "login", pageData(ctrl, r))
	}
}

func loginHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			render.HTML(w, http.StatusBadRequest, "400", errorData(err.Error()))
			return
		}

		username := r.PostForm.Get("username")
		password := r.PostForm.Get("password")
		remember := r.PostForm.Get("remember") != ""

		token, err := ctrl.Login(r.Context(), username, password)
		if err != nil {
			data := pageData(ctrl, r)
			data["username"] = username
			if errors.Is(err, trackerapi.ErrUnauthorized) {
				data["error"] = "Invalid credentials"
			} else {
				data["error"] = "Login failed. Please try again."
			}
			render.HTML(w, http.StatusUnauthorized, "login", data)
			return
		}

		setTokenCookie(w, token, remember)
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
	}
}

func logoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clearTokenCookie(w)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
}

// themeHandler flips the light/dark preference and bounces back to the page
// the user was on.
func themeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		next := "light"
		if themeFrom(r) == "light" {
			next = "dark"
		}
		http.SetCookie(w, &http.Cookie{
			Name:     themeCookieName,
			Value:    next,
			Path:     "/",
			MaxAge:   int(themeDuration.Seconds()),
			SameSite: http.SameSiteLaxMode,
		})

		back := r.Header.Get("Referer")
		if back == "" {
			back = "/"
		}
		http.Redirect(w, r, back, http.StatusSeeOther)
	}
}

func kindFromURL(r *http.Request) (model.EntityKind, error) {
	return model.ParseEntityKind(chi.URLParam(r, "kind"))
}

// noticeMessages maps the redirect query value of a completed mutation onto
// the banner shown on the next table render.
var noticeMessages = map[string]string{
	"saved":    "Item saved.",
	"archived": "Item archived.",
	"restored": "Item restored.",
	"deleted":  "Item deleted.",
}

type adminRow struct {
	ID       string
	Cells    []string
	Archived bool
}

// navItem is one entry in the admin sidebar.
type navItem struct {
	Kind  model.EntityKind
	Title string
}

func adminNav() []navItem {
	items := make([]navItem, 0, len(model.Kinds()))
	for _, kind := range model.Kinds() {
		items = append(items, navItem{Kind: kind, Title: schema.For(kind).Title})
	}
	return items
}

func adminTableHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := kindFromURL(r)
		if err != nil {
			render.HTML(w, http.StatusNotFound, "404", errorData("Page not found"))
			return
		}

		query := r.URL.Query().Get("q")
		showArchived := r.URL.Query().Get("archived") == "true"
		editingID := r.URL.Query().Get("edit")
		notice := noticeMessages[r.URL.Query().Get("notice")]

		records, err := ctrl.List(r.Context(), kind, showArchived, query)
		if err != nil {
			if errors.Is(err, trackerapi.ErrUnauthorized) {
				expireAndRedirect(w, r)
				return
			}
			renderError(render, w, err)
			return
		}

		entity := schema.For(kind)
		rows := make([]adminRow, 0, len(records))
		for _, rec := range records {
			rows = append(rows, adminRow{
				ID:       rec.ID(),
				Cells:    entity.Row(rec),
				Archived: rec.Archived(),
			})
		}

		options, err := ctrl.FormOptions(r.Context(), kind)
		if err != nil {
			if errors.Is(err, trackerapi.ErrUnauthorized) {
				expireAndRedirect(w, r)
				return
			}
			renderError(render, w, err)
			return
		}

		values := entity.Defaults()
		formTitle := "Add New"
		if editingID != "" {
			rec, err := ctrl.Get(r.Context(), kind, editingID)
			if err != nil {
				if errors.Is(err, trackerapi.ErrUnauthorized) {
					expireAndRedirect(w, r)
					return
				}
				renderError(render, w, err)
				return
			}
			values = entity.FillForm(rec)
			formTitle = "Edit"
		}

		data := pageData(ctrl, r)
		data["nav"] = adminNav()
		data["entity"] = entity
		data["rows"] = rows
		data["q"] = query
		data["showArchived"] = showArchived
		data["editingId"] = editingID
		data["formTitle"] = formTitle
		data["values"] = values
		data["options"] = options
		data["notice"] = notice
		render.HTML(w, http.StatusOK, "admin", data)
	}
}

func adminSaveHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := kindFromURL(r)
		if err != nil {
			render.HTML(w, http.StatusNotFound, "404", errorData("Page not found"))
			return
		}
		if err := r.ParseForm(); err != nil {
			render.HTML(w, http.StatusBadRequest, "400", errorData(err.Error()))
			return
		}

		rec, err := schema.For(kind).DecodeForm(r.PostForm)
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", errorData(err.Error()))
			return
		}

		editingID := r.PostForm.Get("editingId")
		if err := ctrl.Save(r.Context(), kind, editingID, rec); err != nil {
			if errors.Is(err, trackerapi.ErrUnauthorized) {
				expireAndRedirect(w, r)
				return
			}
			renderError(render, w, err)
			return
		}

		// The table is always re-fetched rather than patched locally.
		http.Redirect(w, r, fmt.Sprintf("/admin/%s?notice=saved", kind), http.StatusSeeOther)
	}
}

// adminConfirmHandler shows the are-you-sure page for the destructive
// actions. Restore does not need one.
func adminConfirmHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := kindFromURL(r)
		if err != nil {
			render.HTML(w, http.StatusNotFound, "404", errorData("Page not found"))
			return
		}

		action := r.URL.Query().Get("action")
		var message string
		switch action {
		case "archive":
			message = "Are you sure you want to archive this item?"
		case "delete":
			message = "Are you sure you want to permanently delete this item? This action cannot be undone."
		default:
			render.HTML(w, http.StatusBadRequest, "400", errorData(fmt.Sprintf("unknown action: %s", action)))
			return
		}

		data := pageData(ctrl, r)
		data["kind"] = kind
		data["id"] = chi.URLParam(r, "id")
		data["action"] = action
		data["message"] = message
		render.HTML(w, http.StatusOK, "confirm", data)
	}
}

func adminMutationHandler(ctrl controller.C, render *render.Render, notice string,
	mutate func(c controller.C, r *http.Request, kind model.EntityKind, id string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := kindFromURL(r)
		if err != nil {
			render.HTML(w, http.StatusNotFound, "404", errorData("Page not found"))
			return
		}

		if err := mutate(ctrl, r, kind, chi.URLParam(r, "id")); err != nil {
			if errors.Is(err, trackerapi.ErrUnauthorized) {
				expireAndRedirect(w, r)
				return
			}
			renderError(render, w, err)
			return
		}
		http.Redirect(w, r, fmt.Sprintf("/admin/%s?notice=%s", kind, notice), http.StatusSeeOther)
	}
}

func adminArchiveHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return adminMutationHandler(ctrl, render, "archived",
		func(c controller.C, r *http.Request, kind model.EntityKind, id string) error {
			return c.Archive(r.Context(), kind, id)
		})
}

func adminRestoreHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return adminMutationHandler(ctrl, render, "restored",
		func(c controller.C, r *http.Request, kind model.EntityKind, id string) error {
			return c.Restore(r.Context(), kind, id)
		})
}

func adminDeleteHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return adminMutationHandler(ctrl, render, "deleted",
		func(c controller.C, r *http.Request, kind model.EntityKind, id string) error {
			return c.Delete(r.Context(), kind, id)
		})
}
