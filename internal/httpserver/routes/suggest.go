package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/leaguehub/leaguehub/internal/httpserver/deps"
	"github.com/leaguehub/leaguehub/internal/httpserver/handlers"
	"github.com/leaguehub/leaguehub/internal/httpserver/mw"
)

func init() { Register(registerSuggest) }

func registerSuggest(r chi.Router, d deps.Deps) {
	// The only write endpoint on the public surface, so it gets its own
	// per-IP rate limit.
	limit := mw.RateLimit(mw.RateLimitConfig{
		Burst:             d.SuggestBurst,
		RefillPerIPPerMin: d.SuggestRefillPerMin,
		TrustProxy:        d.TrustProxy,
	})
	r.With(limit).Post("/api/suggest", handlers.Suggest(d))
}
