package content

import (
	"encoding/json"
	"sort"

	"github.com/leaguehub/leaguehub/internal/domain"
)

// Mapper resolves raw upstream documents into validated domain records,
// silently dropping whatever fails validation.
type Mapper struct{}

// NewMapper creates a new mapper instance.
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapCategories resolves the category index against the link-items
// document and returns only the categories that survive validation.
//
// Link keys with no item behind them (or an undecodable one) are
// skipped; a category whose resolved link set ends up empty, or which
// contains an invalid link, is dropped as a whole. The index document is
// a JSON object, so source order is not recoverable. The result is
// sorted by category id to keep output deterministic across loads.
func (m *Mapper) MapCategories(idx CategoryIndexDoc, items LinkItemsDoc) []domain.Category {
	categories := make([]domain.Category, 0, len(idx))

	for key, raw := range idx {
		var props CategoryProps
		if err := json.Unmarshal(raw, &props); err != nil {
			continue
		}
		id := props.ID
		if id == "" {
			id = key
		}

		links := make([]domain.Link, 0, len(props.Links))
		for _, linkKey := range props.Links {
			rawItem, ok := items[linkKey]
			if !ok {
				continue
			}
			var lp LinkProps
			if err := json.Unmarshal(rawItem, &lp); err != nil {
				continue
			}
			links = append(links, domain.Link{
				Name:        lp.Name,
				URL:         lp.URL,
				Icon:        lp.Icon,
				Description: lp.Description,
			})
		}

		category := domain.Category{ID: id, Title: props.Title, Links: links}
		if !domain.ValidateCategory(&category) {
			continue
		}
		categories = append(categories, category)
	}

	sort.Slice(categories, func(i, j int) bool {
		return categories[i].ID < categories[j].ID
	})
	return categories
}

// MapEvents decodes raw event records and keeps the valid ones in their
// original document order.
func (m *Mapper) MapEvents(doc EventsDoc) []domain.Event {
	events := make([]domain.Event, 0, len(doc))
	for _, raw := range doc {
		var ev domain.Event
		if err := json.Unmarshal(raw, &ev); err != nil {
			continue
		}
		if !domain.ValidateEvent(&ev) {
			continue
		}
		events = append(events, ev)
	}
	return events
}
