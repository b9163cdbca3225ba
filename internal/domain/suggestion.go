package domain

import (
	"errors"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	maxSuggestionNotesLen   = 2000
	maxSuggestionContactLen = 200
)

var (
	ErrSuggestionName  = errors.New("suggestion: name is required and limited to 100 characters")
	ErrSuggestionDates = errors.New("suggestion: startDate and endDate must be RFC 3339 instants with endDate after startDate")
	ErrSuggestionType  = errors.New("suggestion: type must be one of league, race, event, other")
)

// Suggestion is a sanitized, UTC-normalized user-submitted event
// proposal, ready to hand to the notification collaborator. The mail
// transport itself lives outside this module.
type Suggestion struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	Type        EventType `json:"type,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	Contact     string    `json:"contact,omitempty"`
	SubmittedAt string    `json:"submittedAt"`
}

// NewSuggestion validates and normalizes raw suggestion input. Dates are
// re-rendered in UTC so the maintainer never has to reason about the
// submitter's zone; text fields are trimmed, stripped of control
// characters and capped.
func NewSuggestion(name, startDate, endDate string, typ EventType, notes, contact string, now time.Time) (*Suggestion, error) {
	// The name is rejected rather than truncated when oversized: a
	// silently shortened suggestion would be confirmed back to the
	// submitter with a name they never typed.
	name = sanitizeLine(name, maxSuggestionNotesLen)
	if name == "" || utf8.RuneCountInString(name) > MaxLinkNameLen {
		return nil, ErrSuggestionName
	}

	start, ok := ParseInstant(strings.TrimSpace(startDate))
	if !ok {
		return nil, ErrSuggestionDates
	}
	end, ok := ParseInstant(strings.TrimSpace(endDate))
	if !ok || !end.After(start) {
		return nil, ErrSuggestionDates
	}

	switch typ {
	case "", EventTypeLeague, EventTypeRace, EventTypeEvent, EventTypeOther:
	default:
		return nil, ErrSuggestionType
	}

	return &Suggestion{
		ID:          uuid.NewString(),
		Name:        name,
		StartDate:   start.UTC().Format(time.RFC3339),
		EndDate:     end.UTC().Format(time.RFC3339),
		Type:        typ,
		Notes:       sanitizeText(notes, maxSuggestionNotesLen),
		Contact:     sanitizeLine(contact, maxSuggestionContactLen),
		SubmittedAt: now.UTC().Format(time.RFC3339),
	}, nil
}

// sanitizeLine trims s, drops all control characters and caps it at max
// runes. Used for single-line fields.
func sanitizeLine(s string, max int) string {
	return sanitize(s, max, func(r rune) bool { return unicode.IsControl(r) })
}

// sanitizeText is sanitizeLine for multi-line fields: newlines survive.
func sanitizeText(s string, max int) string {
	return sanitize(s, max, func(r rune) bool {
		return unicode.IsControl(r) && r != '\n'
	})
}

func sanitize(s string, max int, drop func(rune) bool) string {
	var b strings.Builder
	b.Grow(len(s))
	n := 0
	for _, r := range strings.TrimSpace(s) {
		if drop(r) {
			continue
		}
		if n >= max {
			break
		}
		b.WriteRune(r)
		n++
	}
	return strings.TrimSpace(b.String())
}
