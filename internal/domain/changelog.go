package domain

// EntryType is the kind of a changelog entry.
type EntryType string

const (
	EntryAdded   EntryType = "added"
	EntryRemoved EntryType = "removed"
	// EntryNote is a free-text entry. Notes bypass ChangelogEntry
	// validation entirely; only Message is meaningful on them.
	EntryNote EntryType = "note"
)

// ChangelogEntry records one added or removed link in one category.
// Entries are produced by CompareSnapshots or accepted verbatim from a
// persisted UpdateRecord.
type ChangelogEntry struct {
	Type       EntryType `json:"type"`
	CategoryID string    `json:"categoryId,omitempty"`
	LinkName   string    `json:"linkName,omitempty"`
	LinkURL    string    `json:"linkUrl,omitempty"`

	// Message carries the text of note entries.
	Message string `json:"message,omitempty"`
}

// ChangelogGroup is one update event: a date and the entries that landed
// together. Date is an RFC 3339 string; a missing or malformed date does
// not invalidate the group, it only affects sort placement in the view.
type ChangelogGroup struct {
	Date    string           `json:"date"`
	Entries []ChangelogEntry `json:"entries"`
}

// UpdateRecord is the persisted update-history document: when the
// collection was last touched plus the full changelog.
type UpdateRecord struct {
	LastUpdated string           `json:"lastUpdated"`
	Changelog   []ChangelogGroup `json:"changelog"`
}
