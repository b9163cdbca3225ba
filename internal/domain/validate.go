package domain

import (
	"net/url"
	"time"
	"unicode/utf8"
)

const (
	// MaxLinkNameLen bounds link, event and changelog-entry names.
	MaxLinkNameLen = 100
	// MaxCategoryTitleLen bounds category titles.
	MaxCategoryTitleLen = 50
)

// The validators below are total predicates: they never panic and return
// false for any structurally or semantically invalid input, including a
// nil receiver argument. They are intentionally binary: no warnings, no
// partial credit. Callers decide whether to drop the single record or
// the whole batch.

// ParseInstant parses an RFC 3339 instant. The second return is false
// for empty or malformed input.
func ParseInstant(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// isHTTPURL reports whether raw is an absolute http or https URL.
func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// isAbsoluteURL reports whether raw parses as an absolute URL of any
// scheme. Changelog entries accept more than http/https so that history
// written by hand stays loadable.
func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme != "" && (u.Host != "" || u.Opaque != "")
}

// ValidateLink reports whether l is a well-formed link record.
func ValidateLink(l *Link) bool {
	if l == nil {
		return false
	}
	if l.Name == "" || utf8.RuneCountInString(l.Name) > MaxLinkNameLen {
		return false
	}
	if l.Icon != nil && *l.Icon == "" {
		return false
	}
	return isHTTPURL(l.URL)
}

// ValidateCategory reports whether c is well-formed: non-empty id and
// title, and at least one link with every link individually valid.
func ValidateCategory(c *Category) bool {
	if c == nil {
		return false
	}
	if c.ID == "" {
		return false
	}
	if c.Title == "" || utf8.RuneCountInString(c.Title) > MaxCategoryTitleLen {
		return false
	}
	if len(c.Links) == 0 {
		return false
	}
	for i := range c.Links {
		if !ValidateLink(&c.Links[i]) {
			return false
		}
	}
	return true
}

// ValidateEvent reports whether e is well-formed: id and bounded name,
// parseable start and end instants with end strictly after start, and a
// recognized type when one is set.
func ValidateEvent(e *Event) bool {
	if e == nil {
		return false
	}
	if e.ID == "" {
		return false
	}
	if e.Name == "" || utf8.RuneCountInString(e.Name) > MaxLinkNameLen {
		return false
	}
	start, ok := ParseInstant(e.StartDate)
	if !ok {
		return false
	}
	end, ok := ParseInstant(e.EndDate)
	if !ok {
		return false
	}
	if !end.After(start) {
		return false
	}
	switch e.Type {
	case "", EventTypeLeague, EventTypeRace, EventTypeEvent, EventTypeOther:
		return true
	default:
		return false
	}
}

// ValidateChangelogEntry reports whether e is a well-formed added or
// removed entry. Note entries are not valid here; they are handled
// separately by the callers that accept them.
func ValidateChangelogEntry(e *ChangelogEntry) bool {
	if e == nil {
		return false
	}
	if e.Type != EntryAdded && e.Type != EntryRemoved {
		return false
	}
	if e.CategoryID == "" {
		return false
	}
	if e.LinkName == "" || utf8.RuneCountInString(e.LinkName) > MaxLinkNameLen {
		return false
	}
	return isAbsoluteURL(e.LinkURL)
}

// ValidateUpdateRecord reports whether r is a loadable update-history
// record. This check is fail-closed: one invalid added/removed entry in
// any group rejects the whole record. A group's missing or malformed
// date is non-fatal, and note entries are not validated.
func ValidateUpdateRecord(r *UpdateRecord) bool {
	if r == nil {
		return false
	}
	if _, ok := ParseInstant(r.LastUpdated); !ok {
		return false
	}
	if r.Changelog == nil {
		return false
	}
	for gi := range r.Changelog {
		entries := r.Changelog[gi].Entries
		for ei := range entries {
			if entries[ei].Type == EntryNote {
				continue
			}
			if !ValidateChangelogEntry(&entries[ei]) {
				return false
			}
		}
	}
	return true
}
