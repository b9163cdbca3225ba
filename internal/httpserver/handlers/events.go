package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/leaguehub/leaguehub/internal/domain"
	"github.com/leaguehub/leaguehub/internal/httpserver/deps"
)

type eventView struct {
	domain.Event
	// Durations is nil when the event's dates fail to parse; the raw
	// record is still served so the page can show it undecorated.
	Durations *domain.EventDurations `json:"durations,omitempty"`
}

type eventsResponse struct {
	Events      []eventView `json:"events"`
	EvaluatedAt string      `json:"evaluatedAt"`
}

// Events serves the event collection with activity state and durations
// computed at request time. An optional ?filter=active|upcoming|past
// narrows the result; any other value is a client error.
func Events(d deps.Deps) http.HandlerFunc {
	timeNow := d.TimeNow
	if timeNow == nil {
		timeNow = time.Now
	}

	return func(w http.ResponseWriter, r *http.Request) {
		filter := r.URL.Query().Get("filter")
		switch filter {
		case "", "active", "upcoming", "past":
		default:
			http.Error(w, "filter must be one of active, upcoming, past", http.StatusBadRequest)
			return
		}

		now := timeNow()
		events := d.MemoryIndex.Events()

		views := make([]eventView, 0, len(events))
		for i := range events {
			ev := events[i]
			durations := domain.ComputeEventDurations(&ev, now)
			if !matchesFilter(filter, &ev, durations, now) {
				continue
			}
			views = append(views, eventView{Event: ev, Durations: durations})
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(eventsResponse{
			Events:      views,
			EvaluatedAt: now.UTC().Format(time.RFC3339),
		})
	}
}

// matchesFilter decides whether an event belongs in the filtered result.
// Events with unparseable dates only ever appear in the unfiltered list.
func matchesFilter(filter string, ev *domain.Event, durations *domain.EventDurations, now time.Time) bool {
	if filter == "" {
		return true
	}
	if durations == nil {
		return false
	}

	switch filter {
	case "active":
		return durations.Active
	case "upcoming":
		start, ok := domain.ParseInstant(ev.StartDate)
		return ok && now.Before(start)
	case "past":
		end, ok := domain.ParseInstant(ev.EndDate)
		return ok && now.After(end)
	}
	return false
}
