package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/leaguehub/leaguehub/internal/domain"
	"github.com/leaguehub/leaguehub/internal/httpserver/deps"
	"github.com/leaguehub/leaguehub/internal/logger"
	"github.com/leaguehub/leaguehub/internal/utils"
)

const maxSuggestBody = 16 << 10 // generous for a form, hostile bodies cut off

type suggestRequest struct {
	Name      string `json:"name"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Type      string `json:"type"`
	Notes     string `json:"notes"`
	Contact   string `json:"contact"`
}

type suggestResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type suggestError struct {
	Error string `json:"error"`
}

// Suggest accepts a user event suggestion, validates and sanitizes it,
// and hands it to the notifier. Validation failures are 400 with the
// reason; an accepted suggestion is 202 since delivery is asynchronous
// from the submitter's point of view.
func Suggest(d deps.Deps) http.HandlerFunc {
	timeNow := d.TimeNow
	if timeNow == nil {
		timeNow = time.Now
	}

	return func(w http.ResponseWriter, r *http.Request) {
		defer utils.Close(r.Body)

		var req suggestRequest
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSuggestBody))
		if err := dec.Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, suggestError{Error: "invalid JSON body"})
			return
		}

		s, err := domain.NewSuggestion(req.Name, req.StartDate, req.EndDate,
			domain.EventType(req.Type), req.Notes, req.Contact, timeNow())
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrSuggestionName),
				errors.Is(err, domain.ErrSuggestionDates),
				errors.Is(err, domain.ErrSuggestionType):
				writeJSON(w, http.StatusBadRequest, suggestError{Error: err.Error()})
			default:
				writeJSON(w, http.StatusInternalServerError, suggestError{Error: "internal error"})
			}
			return
		}

		if err := d.Notifier.NotifySuggestion(r.Context(), s); err != nil {
			d.Logger.Error("failed to deliver suggestion",
				logger.String("id", s.ID),
				logger.Error(err))
			writeJSON(w, http.StatusBadGateway, suggestError{Error: "suggestion could not be delivered"})
			return
		}

		d.Logger.Info("suggestion accepted",
			logger.String("id", s.ID),
			logger.String("name", s.Name))
		writeJSON(w, http.StatusAccepted, suggestResponse{ID: s.ID, Status: "accepted"})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
