package content

import "encoding/json"

// The hub's upstream documents are plain JSON files served from static
// hosting. Collection documents are decoded in two stages: the outer
// container must parse (a failure there is fatal for the load), while
// each record is decoded individually from its raw message so that one
// wrongly-typed record is filtered instead of sinking the whole batch.

// CategoryIndexDoc maps category id to its raw definition.
type CategoryIndexDoc map[string]json.RawMessage

// CategoryProps is the raw shape of one category in the index document.
// Links holds keys into the link-items document, not resolved links.
type CategoryProps struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Links []string `json:"links"`
}

// LinkItemsDoc maps link key to a raw link record.
type LinkItemsDoc map[string]json.RawMessage

// LinkProps is the raw shape of one link item. Icon is a pointer so a
// record carrying "icon": "" stays distinguishable from one without the
// key; validation rejects the former.
type LinkProps struct {
	Name        string  `json:"name"`
	URL         string  `json:"url"`
	Icon        *string `json:"icon,omitempty"`
	Description string  `json:"description,omitempty"`
}

// EventsDoc is the raw events document: an array of event records.
type EventsDoc []json.RawMessage
