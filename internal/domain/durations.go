package domain

import (
	"fmt"
	"time"
)

// EventDurations is the computed activity state of an event at one
// evaluation instant. It is derived on every query and never persisted.
type EventDurations struct {
	// Active is true when the evaluation instant falls inside the event
	// bounds, inclusive on both ends.
	Active bool `json:"isActive"`

	// Elapsed is the span from the start to min(now, end), clamped to
	// zero before the event begins.
	Elapsed string `json:"elapsedDuration"`

	// Remaining is the span from max(now, start) to the end, clamped to
	// zero after the event finishes.
	Remaining string `json:"remainingDuration"`

	// Total is the fixed span end - start, independent of now.
	Total string `json:"totalDuration"`
}

// ComputeEventDurations evaluates ev at now. It returns nil when either
// bound fails to parse or the end is not strictly after the start; this
// guards speculative calls on records the validators never saw.
func ComputeEventDurations(ev *Event, now time.Time) *EventDurations {
	if ev == nil {
		return nil
	}
	start, ok := ParseInstant(ev.StartDate)
	if !ok {
		return nil
	}
	end, ok := ParseInstant(ev.EndDate)
	if !ok {
		return nil
	}
	if !end.After(start) {
		return nil
	}

	elapsed := now.Sub(start)
	if now.After(end) {
		elapsed = end.Sub(start)
	}
	if elapsed < 0 {
		elapsed = 0
	}

	remaining := end.Sub(now)
	if now.Before(start) {
		remaining = end.Sub(start)
	}
	if remaining < 0 {
		remaining = 0
	}

	return &EventDurations{
		Active:    !now.Before(start) && !now.After(end),
		Elapsed:   FormatDuration(elapsed),
		Remaining: FormatDuration(remaining),
		Total:     FormatDuration(end.Sub(start)),
	}
}

// FormatDuration renders d as "{days}d {hours}h {minutes}m" using floor
// division on whole minutes. Negative input renders as zero; there is no
// seconds component.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	mins := int64(d / time.Minute)
	return fmt.Sprintf("%dd %dh %dm", mins/1440, (mins%1440)/60, mins%60)
}
