package domain

// CompareSnapshots diffs two snapshots of the link collection and
// returns the added/removed entries that turn previous into current.
//
// URL is the identity key for a link, scoped per category: a link whose
// URL moves from category A to category B is reported as one removed
// entry under A and one added entry under B, never collapsed into a
// no-op. Name changes without a URL change are not a change.
//
// Output order is deterministic: categories in current-snapshot order,
// then previous-only categories in previous order; inside a category,
// added entries in current link order, then removed entries in previous
// link order. A nil snapshot on either side yields an empty result
// rather than a spurious everything-added or everything-removed diff.
func CompareSnapshots(current, previous []Category) []ChangelogEntry {
	entries := []ChangelogEntry{}
	if current == nil || previous == nil {
		return entries
	}

	prevByID := make(map[string][]Link, len(previous))
	for _, c := range previous {
		prevByID[c.ID] = c.Links
	}
	seen := make(map[string]bool, len(current))

	for _, cur := range current {
		seen[cur.ID] = true
		entries = append(entries, diffCategory(cur.ID, cur.Links, prevByID[cur.ID])...)
	}
	for _, prev := range previous {
		if seen[prev.ID] {
			continue
		}
		entries = append(entries, diffCategory(prev.ID, nil, prev.Links)...)
	}
	return entries
}

func diffCategory(categoryID string, current, previous []Link) []ChangelogEntry {
	curURLs := make(map[string]bool, len(current))
	for _, l := range current {
		curURLs[l.URL] = true
	}
	prevURLs := make(map[string]bool, len(previous))
	for _, l := range previous {
		prevURLs[l.URL] = true
	}

	var entries []ChangelogEntry
	for _, l := range current {
		if prevURLs[l.URL] {
			continue
		}
		entries = appendIfValid(entries, ChangelogEntry{
			Type:       EntryAdded,
			CategoryID: categoryID,
			LinkName:   l.Name,
			LinkURL:    l.URL,
		})
	}
	for _, l := range previous {
		if curURLs[l.URL] {
			continue
		}
		entries = appendIfValid(entries, ChangelogEntry{
			Type:       EntryRemoved,
			CategoryID: categoryID,
			LinkName:   l.Name,
			LinkURL:    l.URL,
		})
	}
	return entries
}

// appendIfValid keeps the differ honest: it only ever emits entries that
// would survive ValidateChangelogEntry, so malformed links that slipped
// into a snapshot cannot surface as malformed history.
func appendIfValid(entries []ChangelogEntry, e ChangelogEntry) []ChangelogEntry {
	if !ValidateChangelogEntry(&e) {
		return entries
	}
	return append(entries, e)
}
