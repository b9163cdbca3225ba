package domain

// EventType classifies a time-bounded event.
type EventType string

const (
	EventTypeLeague EventType = "league"
	EventTypeRace   EventType = "race"
	EventTypeEvent  EventType = "event"
	EventTypeOther  EventType = "other"
)

// Event is a time-bounded league/race/community event.
//
// StartDate and EndDate are kept as the RFC 3339 strings they arrive as.
// Both the validator and the duration calculator have to guard against
// unparseable values independently, so parsing happens at the point of
// use rather than at decode time. Activity and durations are computed
// per query by ComputeEventDurations and are never stored.
type Event struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	Type      EventType `json:"type,omitempty"`
}
