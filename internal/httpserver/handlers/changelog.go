package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/leaguehub/leaguehub/internal/domain"
	"github.com/leaguehub/leaguehub/internal/httpserver/deps"
)

type changelogResponse struct {
	LastUpdated string               `json:"lastUpdated,omitempty"`
	View        domain.ChangelogView `json:"view"`
}

// Changelog serves the merged update history: the curated changelog from
// the updates document plus the groups this hub generated by diffing
// consecutive link snapshots. The view builder sorts and buckets both.
func Changelog(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var groups []domain.ChangelogGroup
		var lastUpdated string

		if record := d.MemoryIndex.Updates(); record != nil {
			lastUpdated = record.LastUpdated
			groups = append(groups, record.Changelog...)
		}
		groups = append(groups, d.MemoryIndex.GeneratedGroups()...)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(changelogResponse{
			LastUpdated: lastUpdated,
			View:        domain.BuildChangelogView(groups),
		})
	}
}
