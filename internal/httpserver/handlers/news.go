package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/leaguehub/leaguehub/internal/domain"
	"github.com/leaguehub/leaguehub/internal/httpserver/deps"
)

type newsResponse struct {
	Items []domain.NewsItem `json:"items"`
}

// News serves the cached announcement feed, newest first.
func News(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items := d.MemoryIndex.News()
		if items == nil {
			items = []domain.NewsItem{}
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(newsResponse{Items: items})
	}
}
