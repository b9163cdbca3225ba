package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/leaguehub/leaguehub/internal/httpserver/deps"
)

type componentStatus struct {
	OK         bool   `json:"ok"`
	Categories *int   `json:"categories,omitempty"`
	Events     *int   `json:"events,omitempty"`
	LastReload string `json:"last_reload,omitempty"`
	Mode       string `json:"mode,omitempty"`
	Impact     string `json:"impact,omitempty"`
	Error      string `json:"error,omitempty"`
}

type infraResponse struct {
	Mode       string                     `json:"mode"`
	Components map[string]componentStatus `json:"components"`
}

// Infra reports the health of each hub component for operators.
func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		categories := d.MemoryIndex.CategoryCount()
		events := d.MemoryIndex.EventCount()

		components := map[string]componentStatus{
			"content": {
				OK:         categories > 0,
				Categories: &categories,
				Events:     &events,
				LastReload: formatReload(d.MemoryIndex.LastContentReload()),
			},
			"news": {
				OK:         d.NewsReloadTrigger != nil,
				LastReload: formatReload(d.MemoryIndex.LastNewsReload()),
			},
			"redis": checkRedis(d),
		}

		response := infraResponse{
			Mode:       determineMode(components),
			Components: components,
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

func formatReload(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.Format("2006-01-02 15:04:05")
}

func determineMode(components map[string]componentStatus) string {
	// No content loaded means the hub serves an empty page.
	if content, exists := components["content"]; exists && !content.OK {
		return "critical"
	}

	// Redis down only loses the changelog archive across restarts.
	if rd, exists := components["redis"]; exists && !rd.OK && rd.Mode != "disabled" {
		return "degraded"
	}

	return "nominal"
}

func checkRedis(d deps.Deps) componentStatus {
	if d.RedisClient == nil {
		return componentStatus{
			OK:     true,
			Mode:   "disabled",
			Impact: "changelog archive not persisted",
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := d.RedisClient.Ping(ctx).Err(); err != nil {
		return componentStatus{
			OK:     false,
			Mode:   "degraded",
			Impact: "changelog archive not persisted",
			Error:  err.Error(),
		}
	}

	return componentStatus{
		OK:     true,
		Mode:   "optimal",
		Impact: "changelog archive persisted",
	}
}
