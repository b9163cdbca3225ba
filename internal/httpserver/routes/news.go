package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/leaguehub/leaguehub/internal/httpserver/deps"
	"github.com/leaguehub/leaguehub/internal/httpserver/handlers"
)

func init() { Register(registerNews) }

func registerNews(r chi.Router, d deps.Deps) {
	r.Get("/api/news", handlers.News(d))
}
