package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/leaguehub/leaguehub/internal/httpserver/deps"
	"github.com/leaguehub/leaguehub/internal/httpserver/handlers"
)

func init() { Register(registerChangelog) }

func registerChangelog(r chi.Router, d deps.Deps) {
	r.Get("/api/changelog", handlers.Changelog(d))
}
