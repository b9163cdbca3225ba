package domain

// Link is one outbound link inside a category.
//
// A Link is immutable once loaded and is owned by exactly one Category.
// The URL is the identity of a link: two links with the same URL in the
// same category are the same link as far as the differ is concerned,
// even if their names differ.
type Link struct {
	// Name is the display label. Required, at most MaxLinkNameLen runes.
	Name string `json:"name"`

	// URL is the target. Required, must be an http or https URL.
	URL string `json:"url"`

	// Icon is an optional icon reference. A pointer keeps "key absent"
	// distinguishable from "key present but empty": an absent icon is
	// fine, a present-but-empty one fails validation.
	Icon *string `json:"icon,omitempty"`

	// Description is optional free text of any length.
	Description string `json:"description,omitempty"`
}

// Category groups links under a stable id.
//
// A slice of categories with resolved links forms a snapshot, the unit
// compared by CompareSnapshots. Categories are never mutated after
// loading; every reload produces a fresh snapshot.
type Category struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Links []Link `json:"links"`
}
