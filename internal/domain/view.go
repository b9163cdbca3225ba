package domain

import (
	"sort"
	"time"
)

// ChangelogViewGroup is one rendered changelog group: entries split into
// added/removed buckets plus free-text notes.
type ChangelogViewGroup struct {
	Date    string           `json:"date"`
	Added   []ChangelogEntry `json:"added"`
	Removed []ChangelogEntry `json:"removed"`
	Notes   []string         `json:"notes,omitempty"`
}

// ChangelogView is the presentation model handed to the rendering
// collaborator. NoChanges distinguishes "nothing ever changed" from an
// accidentally empty container.
type ChangelogView struct {
	Groups    []ChangelogViewGroup `json:"groups"`
	NoChanges bool                 `json:"noChanges"`
}

// BuildChangelogView groups and sorts raw changelog history for display.
//
// Groups are ordered by date descending; groups whose date does not
// parse sort after all dated groups, keeping their relative order.
// Unlike ValidateUpdateRecord, this path is lenient per entry: an
// invalid added/removed entry is skipped individually instead of
// poisoning its group. Groups left with no valid entries and no notes
// are dropped, and an empty result is flagged with NoChanges.
func BuildChangelogView(groups []ChangelogGroup) ChangelogView {
	type datedGroup struct {
		group  ChangelogGroup
		date   time.Time
		parsed bool
	}

	dated := make([]datedGroup, 0, len(groups))
	for _, g := range groups {
		t, ok := ParseInstant(g.Date)
		dated = append(dated, datedGroup{group: g, date: t, parsed: ok})
	}
	sort.SliceStable(dated, func(i, j int) bool {
		if dated[i].parsed != dated[j].parsed {
			return dated[i].parsed
		}
		return dated[i].date.After(dated[j].date)
	})

	view := ChangelogView{Groups: []ChangelogViewGroup{}}
	for _, dg := range dated {
		vg := ChangelogViewGroup{
			Date:    dg.group.Date,
			Added:   []ChangelogEntry{},
			Removed: []ChangelogEntry{},
		}
		for i := range dg.group.Entries {
			e := dg.group.Entries[i]
			switch {
			case e.Type == EntryNote:
				if e.Message != "" {
					vg.Notes = append(vg.Notes, e.Message)
				}
			case !ValidateChangelogEntry(&e):
				// Skip the single bad entry, keep the group.
			case e.Type == EntryAdded:
				vg.Added = append(vg.Added, e)
			default:
				vg.Removed = append(vg.Removed, e)
			}
		}
		if len(vg.Added) == 0 && len(vg.Removed) == 0 && len(vg.Notes) == 0 {
			continue
		}
		view.Groups = append(view.Groups, vg)
	}

	view.NoChanges = len(view.Groups) == 0
	return view
}
