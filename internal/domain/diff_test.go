package domain

import (
	"reflect"
	"testing"
)

func sampleSnapshot() []Category {
	return []Category{
		{
			ID:    "trade",
			Title: "Trading",
			Links: []Link{
				{Name: "Trade Site", URL: "https://trade.example.com"},
				{Name: "Price Checker", URL: "https://prices.example.com"},
			},
		},
		{
			ID:    "builds",
			Title: "Build Guides",
			Links: []Link{
				{Name: "Planner", URL: "https://planner.example.com"},
			},
		},
	}
}

func TestCompareSnapshotsIdentity(t *testing.T) {
	snap := sampleSnapshot()
	entries := CompareSnapshots(snap, snap)
	if len(entries) != 0 {
		t.Errorf("CompareSnapshots(X, X) produced %d entries, want 0: %+v", len(entries), entries)
	}
}

func TestCompareSnapshotsNilInputs(t *testing.T) {
	snap := sampleSnapshot()

	for _, tt := range []struct {
		name             string
		current, previous []Category
	}{
		{name: "nil current", current: nil, previous: snap},
		{name: "nil previous", current: snap, previous: nil},
		{name: "both nil", current: nil, previous: nil},
	} {
		t.Run(tt.name, func(t *testing.T) {
			entries := CompareSnapshots(tt.current, tt.previous)
			if entries == nil {
				t.Fatal("CompareSnapshots() returned nil slice, want empty")
			}
			if len(entries) != 0 {
				t.Errorf("CompareSnapshots() produced %d entries, want 0", len(entries))
			}
		})
	}
}

func TestCompareSnapshotsAddedAndRemoved(t *testing.T) {
	previous := sampleSnapshot()
	current := sampleSnapshot()

	// Add one link to trade, drop the planner from builds.
	current[0].Links = append(current[0].Links, Link{Name: "Wiki", URL: "https://wiki.example.com"})
	current[1].Links = []Link{{Name: "Crafting Sim", URL: "https://craft.example.com"}}

	entries := CompareSnapshots(current, previous)

	want := []ChangelogEntry{
		{Type: EntryAdded, CategoryID: "trade", LinkName: "Wiki", LinkURL: "https://wiki.example.com"},
		{Type: EntryAdded, CategoryID: "builds", LinkName: "Crafting Sim", LinkURL: "https://craft.example.com"},
		{Type: EntryRemoved, CategoryID: "builds", LinkName: "Planner", LinkURL: "https://planner.example.com"},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("CompareSnapshots() = %+v, want %+v", entries, want)
	}
}

// A link moving between categories must surface as a removal from the
// old category plus an addition to the new one, never as a no-op.
func TestCompareSnapshotsCategoryMove(t *testing.T) {
	previous := []Category{
		{ID: "trade", Title: "Trading", Links: []Link{{Name: "Tool", URL: "https://x.com"}}},
	}
	current := []Category{
		{ID: "builds", Title: "Build Guides", Links: []Link{{Name: "Tool", URL: "https://x.com"}}},
	}

	entries := CompareSnapshots(current, previous)
	want := []ChangelogEntry{
		{Type: EntryAdded, CategoryID: "builds", LinkName: "Tool", LinkURL: "https://x.com"},
		{Type: EntryRemoved, CategoryID: "trade", LinkName: "Tool", LinkURL: "https://x.com"},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("CompareSnapshots() = %+v, want %+v", entries, want)
	}
}

// Diffing A against B and B against A must yield mirror-image entry sets.
func TestCompareSnapshotsMirror(t *testing.T) {
	a := sampleSnapshot()
	b := sampleSnapshot()
	b[0].Links = b[0].Links[:1]
	b = append(b, Category{
		ID:    "tools",
		Title: "Tools",
		Links: []Link{{Name: "Filter Editor", URL: "https://filter.example.com"}},
	})

	forward := CompareSnapshots(a, b)
	backward := CompareSnapshots(b, a)

	if len(forward) != len(backward) {
		t.Fatalf("mirror diff sizes differ: %d vs %d", len(forward), len(backward))
	}

	type key struct {
		categoryID, linkURL string
	}
	mirrored := make(map[key]EntryType, len(backward))
	for _, e := range backward {
		mirrored[key{e.CategoryID, e.LinkURL}] = e.Type
	}
	for _, e := range forward {
		got, ok := mirrored[key{e.CategoryID, e.LinkURL}]
		if !ok {
			t.Errorf("entry %+v has no mirror", e)
			continue
		}
		wantType := EntryRemoved
		if e.Type == EntryRemoved {
			wantType = EntryAdded
		}
		if got != wantType {
			t.Errorf("mirror of %s %s/%s = %s, want %s", e.Type, e.CategoryID, e.LinkURL, got, wantType)
		}
	}
}

func TestCompareSnapshotsDeterministic(t *testing.T) {
	previous := sampleSnapshot()
	current := sampleSnapshot()
	current[0].Links = append(current[0].Links, Link{Name: "Wiki", URL: "https://wiki.example.com"})

	first := CompareSnapshots(current, previous)
	for i := 0; i < 10; i++ {
		if got := CompareSnapshots(current, previous); !reflect.DeepEqual(got, first) {
			t.Fatalf("CompareSnapshots() is not deterministic: run %d = %+v, first = %+v", i, got, first)
		}
	}
}

func TestCompareSnapshotsSkipsUnreportableLinks(t *testing.T) {
	// A nameless link cannot form a valid changelog entry; the differ
	// drops it instead of emitting broken history.
	previous := []Category{{ID: "trade", Title: "Trading", Links: []Link{}}}
	current := []Category{
		{ID: "trade", Title: "Trading", Links: []Link{{Name: "", URL: "https://x.com"}}},
	}

	entries := CompareSnapshots(current, previous)
	if len(entries) != 0 {
		t.Errorf("CompareSnapshots() = %+v, want no entries", entries)
	}
}
