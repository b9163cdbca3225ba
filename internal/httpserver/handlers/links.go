package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/leaguehub/leaguehub/internal/domain"
	"github.com/leaguehub/leaguehub/internal/httpserver/deps"
)

type linksResponse struct {
	Categories []domain.Category `json:"categories"`
}

// Links serves the categorized link collection from the memory index.
func Links(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories := d.MemoryIndex.Snapshot()
		if categories == nil {
			// Nothing loaded yet. An empty collection is still a valid
			// page, so serve it rather than erroring.
			categories = []domain.Category{}
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(linksResponse{Categories: categories})
	}
}
