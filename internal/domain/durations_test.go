package domain

import (
	"testing"
	"time"
)

func settlersEvent() Event {
	return Event{
		ID:        "settlers",
		Name:      "Settlers League",
		StartDate: "2024-07-26T16:00:00Z",
		EndDate:   "2024-12-02T16:00:00Z",
		Type:      EventTypeLeague,
	}
}

func mustParse(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("failed to parse %q: %v", s, err)
	}
	return ts
}

func TestComputeEventDurationsMidEvent(t *testing.T) {
	ev := settlersEvent()
	now := mustParse(t, "2024-10-15T12:00:00Z")

	d := ComputeEventDurations(&ev, now)
	if d == nil {
		t.Fatal("ComputeEventDurations() = nil, want durations")
	}
	if !d.Active {
		t.Error("Active = false, want true mid-event")
	}
	if d.Remaining != "48d 4h 0m" {
		t.Errorf("Remaining = %q, want %q", d.Remaining, "48d 4h 0m")
	}
	if d.Elapsed != "80d 20h 0m" {
		t.Errorf("Elapsed = %q, want %q", d.Elapsed, "80d 20h 0m")
	}
	if d.Total != "129d 0h 0m" {
		t.Errorf("Total = %q, want %q", d.Total, "129d 0h 0m")
	}
}

// Elapsed + remaining must always re-add to the total at any instant
// strictly inside the bounds, since both are derived from the same
// whole-minute floor.
func TestComputeEventDurationsRoundTrip(t *testing.T) {
	ev := settlersEvent()
	start := mustParse(t, ev.StartDate)
	end := mustParse(t, ev.EndDate)
	total := end.Sub(start)

	for _, frac := range []float64{0.001, 0.25, 0.5, 0.75, 0.999} {
		now := start.Add(time.Duration(float64(total) * frac)).Truncate(time.Minute)
		d := ComputeEventDurations(&ev, now)
		if d == nil {
			t.Fatalf("ComputeEventDurations() = nil at %v", now)
		}
		elapsed := now.Sub(start)
		remaining := end.Sub(now)
		if FormatDuration(elapsed+remaining) != d.Total {
			t.Errorf("at %v: elapsed %v + remaining %v does not re-add to total %q",
				now, elapsed, remaining, d.Total)
		}
	}
}

func TestComputeEventDurationsBoundaries(t *testing.T) {
	ev := settlersEvent()

	tests := []struct {
		name          string
		now           string
		wantActive    bool
		wantElapsed   string
		wantRemaining string
	}{
		{
			name:          "exactly at start is active",
			now:           ev.StartDate,
			wantActive:    true,
			wantElapsed:   "0d 0h 0m",
			wantRemaining: "129d 0h 0m",
		},
		{
			name:          "exactly at end is active",
			now:           ev.EndDate,
			wantActive:    true,
			wantElapsed:   "129d 0h 0m",
			wantRemaining: "0d 0h 0m",
		},
		{
			name:          "before start clamps elapsed",
			now:           "2024-07-01T00:00:00Z",
			wantActive:    false,
			wantElapsed:   "0d 0h 0m",
			wantRemaining: "129d 0h 0m",
		},
		{
			name:          "after end clamps remaining",
			now:           "2025-01-01T00:00:00Z",
			wantActive:    false,
			wantElapsed:   "129d 0h 0m",
			wantRemaining: "0d 0h 0m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ComputeEventDurations(&ev, mustParse(t, tt.now))
			if d == nil {
				t.Fatal("ComputeEventDurations() = nil, want durations")
			}
			if d.Active != tt.wantActive {
				t.Errorf("Active = %v, want %v", d.Active, tt.wantActive)
			}
			if d.Elapsed != tt.wantElapsed {
				t.Errorf("Elapsed = %q, want %q", d.Elapsed, tt.wantElapsed)
			}
			if d.Remaining != tt.wantRemaining {
				t.Errorf("Remaining = %q, want %q", d.Remaining, tt.wantRemaining)
			}
		})
	}
}

func TestComputeEventDurationsGuards(t *testing.T) {
	now := mustParse(t, "2024-10-15T12:00:00Z")

	tests := []struct {
		name   string
		mutate func(*Event)
	}{
		{name: "unparseable start", mutate: func(e *Event) { e.StartDate = "not-a-date" }},
		{name: "unparseable end", mutate: func(e *Event) { e.EndDate = "" }},
		{name: "inverted range", mutate: func(e *Event) {
			e.StartDate, e.EndDate = e.EndDate, e.StartDate
		}},
		{name: "zero-length range", mutate: func(e *Event) { e.EndDate = e.StartDate }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := settlersEvent()
			tt.mutate(&ev)
			if d := ComputeEventDurations(&ev, now); d != nil {
				t.Errorf("ComputeEventDurations() = %+v, want nil", d)
			}
		})
	}

	if d := ComputeEventDurations(nil, now); d != nil {
		t.Errorf("ComputeEventDurations(nil) = %+v, want nil", d)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{name: "zero", d: 0, want: "0d 0h 0m"},
		{name: "negative clamps to zero", d: -time.Hour, want: "0d 0h 0m"},
		{name: "sub-minute floors to zero", d: 59 * time.Second, want: "0d 0h 0m"},
		{name: "minutes only", d: 42 * time.Minute, want: "0d 0h 42m"},
		{name: "seconds are floored away", d: 90 * time.Second, want: "0d 0h 1m"},
		{name: "full mix", d: 49*24*time.Hour + 4*time.Hour + 7*time.Minute, want: "49d 4h 7m"},
		{name: "exactly one day", d: 24 * time.Hour, want: "1d 0h 0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDuration(tt.d); got != tt.want {
				t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}
