package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/leaguehub/leaguehub/internal/domain"
)

// Store persists the diff baseline and the generated changelog archive.
// It is strictly best-effort infrastructure: the memory index remains
// the primary source and every caller tolerates a failing store.
type Store struct {
	client *redis.Client
}

// NewStore creates a store over an established Redis client.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// SaveSnapshot persists the current link snapshot as the diff baseline.
// No TTL: a stale baseline still beats an absent one.
func (s *Store) SaveSnapshot(ctx context.Context, categories []domain.Category) error {
	data, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := s.client.Set(ctx, KeySnapshot, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// GetSnapshot returns the persisted snapshot, or nil when none exists.
func (s *Store) GetSnapshot(ctx context.Context) ([]domain.Category, error) {
	data, err := s.client.Get(ctx, KeySnapshot).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	var categories []domain.Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return categories, nil
}

// AppendGeneratedGroup pushes one diff-produced changelog group onto the
// archive list.
func (s *Store) AppendGeneratedGroup(ctx context.Context, group domain.ChangelogGroup) error {
	data, err := json.Marshal(group)
	if err != nil {
		return fmt.Errorf("failed to marshal changelog group: %w", err)
	}
	if err := s.client.RPush(ctx, KeyGeneratedGroups, data).Err(); err != nil {
		return fmt.Errorf("failed to append changelog group: %w", err)
	}
	return nil
}

// GetGeneratedGroups returns the archived changelog groups, oldest
// first. Entries that no longer unmarshal are skipped.
func (s *Store) GetGeneratedGroups(ctx context.Context) ([]domain.ChangelogGroup, error) {
	raw, err := s.client.LRange(ctx, KeyGeneratedGroups, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read changelog archive: %w", err)
	}

	groups := make([]domain.ChangelogGroup, 0, len(raw))
	for _, item := range raw {
		var g domain.ChangelogGroup
		if err := json.Unmarshal([]byte(item), &g); err != nil {
			continue
		}
		groups = append(groups, g)
	}
	return groups, nil
}

// TrimGeneratedBefore removes archived groups dated before cutoff and
// rewrites the list in one pipeline. Returns how many were dropped.
func (s *Store) TrimGeneratedBefore(ctx context.Context, cutoff string) (int, error) {
	cutoffTime, ok := domain.ParseInstant(cutoff)
	if !ok {
		return 0, fmt.Errorf("invalid cutoff instant: %q", cutoff)
	}

	groups, err := s.GetGeneratedGroups(ctx)
	if err != nil {
		return 0, err
	}

	kept := make([]any, 0, len(groups))
	removed := 0
	for _, g := range groups {
		if t, ok := domain.ParseInstant(g.Date); ok && t.Before(cutoffTime) {
			removed++
			continue
		}
		data, err := json.Marshal(g)
		if err != nil {
			continue
		}
		kept = append(kept, data)
	}
	if removed == 0 {
		return 0, nil
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, KeyGeneratedGroups)
	if len(kept) > 0 {
		pipe.RPush(ctx, KeyGeneratedGroups, kept...)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to rewrite changelog archive: %w", err)
	}
	return removed, nil
}
