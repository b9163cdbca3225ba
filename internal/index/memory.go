package index

import (
	"sync"
	"time"

	"github.com/leaguehub/leaguehub/internal/domain"
)

// MemoryIndex holds the hub's current in-memory state: the link
// snapshot, events, update history, news items and the changelog groups
// generated by diffing reloads. Snapshots are immutable after
// construction; setters swap whole slices under the lock and getters
// return copies, so readers can never observe a half-applied reload.
type MemoryIndex struct {
	mu         sync.RWMutex
	categories []domain.Category
	events     []domain.Event
	updates    *domain.UpdateRecord
	news       []domain.NewsItem
	generated  []domain.ChangelogGroup

	lastContentReload time.Time
	lastNewsReload    time.Time
}

// NewMemoryIndex creates an empty index.
func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{}
}

// SetSnapshot replaces the link snapshot.
func (idx *MemoryIndex) SetSnapshot(categories []domain.Category) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.categories = categories
	idx.lastContentReload = time.Now()
}

// Snapshot returns the current link snapshot. Nil until the first load
// completes, which CompareSnapshots treats as "no baseline to diff".
func (idx *MemoryIndex) Snapshot() []domain.Category {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if idx.categories == nil {
		return nil
	}
	out := make([]domain.Category, len(idx.categories))
	copy(out, idx.categories)
	return out
}

// SetEvents replaces the event collection.
func (idx *MemoryIndex) SetEvents(events []domain.Event) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.events = events
}

// Events returns the current events in load order.
func (idx *MemoryIndex) Events() []domain.Event {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	out := make([]domain.Event, len(idx.events))
	copy(out, idx.events)
	return out
}

// SetUpdates replaces the loaded update-history record. A nil record
// means the document was absent or rejected wholesale.
func (idx *MemoryIndex) SetUpdates(record *domain.UpdateRecord) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.updates = record
}

// Updates returns the loaded update-history record, or nil.
func (idx *MemoryIndex) Updates() *domain.UpdateRecord {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.updates
}

// SetNews replaces the announcement items.
func (idx *MemoryIndex) SetNews(items []domain.NewsItem) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.news = items
	idx.lastNewsReload = time.Now()
}

// News returns the current announcement items.
func (idx *MemoryIndex) News() []domain.NewsItem {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	out := make([]domain.NewsItem, len(idx.news))
	copy(out, idx.news)
	return out
}

// ─────────────────────────────────────────────────────────────────
// Generated changelog groups
// ─────────────────────────────────────────────────────────────────

// SetGeneratedGroups replaces the generated changelog history, used when
// restoring the archive from Redis at startup.
func (idx *MemoryIndex) SetGeneratedGroups(groups []domain.ChangelogGroup) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.generated = groups
}

// AppendGeneratedGroup records one diff-produced changelog group.
func (idx *MemoryIndex) AppendGeneratedGroup(group domain.ChangelogGroup) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.generated = append(idx.generated, group)
}

// GeneratedGroups returns the diff-produced changelog groups in the
// order they were recorded.
func (idx *MemoryIndex) GeneratedGroups() []domain.ChangelogGroup {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	out := make([]domain.ChangelogGroup, len(idx.generated))
	copy(out, idx.generated)
	return out
}

// TrimGeneratedBefore drops generated groups dated before cutoff and
// returns how many were removed. Groups with unparseable dates are
// kept; the janitor has no grounds to age them out.
func (idx *MemoryIndex) TrimGeneratedBefore(cutoff time.Time) int {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	kept := idx.generated[:0]
	removed := 0
	for _, g := range idx.generated {
		if t, ok := domain.ParseInstant(g.Date); ok && t.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, g)
	}
	idx.generated = kept
	return removed
}

// ─────────────────────────────────────────────────────────────────
// Introspection
// ─────────────────────────────────────────────────────────────────

// CategoryCount returns the number of categories in the snapshot.
func (idx *MemoryIndex) CategoryCount() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return len(idx.categories)
}

// EventCount returns the number of loaded events.
func (idx *MemoryIndex) EventCount() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return len(idx.events)
}

// LastContentReload returns when the snapshot was last replaced.
func (idx *MemoryIndex) LastContentReload() time.Time {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.lastContentReload
}

// LastNewsReload returns when the news items were last replaced.
func (idx *MemoryIndex) LastNewsReload() time.Time {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.lastNewsReload
}
