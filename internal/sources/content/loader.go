package content

import (
	"context"
	"errors"

	"github.com/leaguehub/leaguehub/internal/domain"
)

// ErrUpdateRecordRejected marks an update-history document that parsed
// but failed whole-record validation. Unlike the per-record filtering in
// LoadLinks/LoadEvents, one invalid entry here discards the entire
// record; the two behaviors are intentionally different and callers
// must not unify them.
var ErrUpdateRecordRejected = errors.New("update record rejected: invalid changelog entry")

// Endpoints names the four upstream documents the loader consumes.
type Endpoints struct {
	CategoryIndex string
	LinkItems     string
	Events        string
	Updates       string
}

// Loader fetches, validates and resolves the hub's content documents.
type Loader struct {
	client *Client
	mapper *Mapper
	eps    Endpoints
}

// NewLoader creates a loader over the given client and endpoints.
func NewLoader(client *Client, eps Endpoints) *Loader {
	return &Loader{
		client: client,
		mapper: NewMapper(),
		eps:    eps,
	}
}

// LoadLinks fetches the category index and link-items documents,
// resolves link keys and returns the valid categories. Transport or
// parse failure on either document is fatal; invalid records are
// filtered silently.
func (l *Loader) LoadLinks(ctx context.Context) ([]domain.Category, error) {
	var idx CategoryIndexDoc
	if err := l.client.getJSON(ctx, l.eps.CategoryIndex, &idx); err != nil {
		return nil, err
	}
	var items LinkItemsDoc
	if err := l.client.getJSON(ctx, l.eps.LinkItems, &items); err != nil {
		return nil, err
	}
	return l.mapper.MapCategories(idx, items), nil
}

// LoadEvents fetches the events document and returns the valid events
// in document order. Activity and durations are a per-query concern of
// the caller, not of loading.
func (l *Loader) LoadEvents(ctx context.Context) ([]domain.Event, error) {
	var doc EventsDoc
	if err := l.client.getJSON(ctx, l.eps.Events, &doc); err != nil {
		return nil, err
	}
	return l.mapper.MapEvents(doc), nil
}

// LoadUpdates fetches the update-history document. A record containing
// any invalid added/removed entry is rejected wholesale with
// ErrUpdateRecordRejected.
func (l *Loader) LoadUpdates(ctx context.Context) (*domain.UpdateRecord, error) {
	var record domain.UpdateRecord
	if err := l.client.getJSON(ctx, l.eps.Updates, &record); err != nil {
		return nil, err
	}
	if !domain.ValidateUpdateRecord(&record) {
		return nil, ErrUpdateRecordRejected
	}
	return &record, nil
}
