package scheduler

import (
	"context"

	"github.com/leaguehub/leaguehub/internal/index"
	"github.com/leaguehub/leaguehub/internal/logger"
	redisstore "github.com/leaguehub/leaguehub/internal/store/redis"
)

// RedisSyncer restores the archived snapshot and generated changelog
// groups into the memory index on startup, so the first reload diffs
// against the last state served before the restart instead of treating
// everything as new.
type RedisSyncer struct {
	store  *redisstore.Store
	index  *index.MemoryIndex
	logger logger.Logger
}

// NewRedisSyncer creates a new Redis syncer.
func NewRedisSyncer(
	store *redisstore.Store,
	idx *index.MemoryIndex,
	log logger.Logger,
) *RedisSyncer {
	return &RedisSyncer{
		store:  store,
		index:  idx,
		logger: log,
	}
}

// Sync loads the archived state from Redis into the memory index.
func (rs *RedisSyncer) Sync(ctx context.Context) error {
	rs.logger.Info("restoring archived state from redis")

	snapshot, err := rs.store.GetSnapshot(ctx)
	if err != nil {
		return err
	}
	if snapshot != nil {
		rs.index.SetSnapshot(snapshot)
		rs.logger.Info("restored link snapshot from redis",
			logger.Int("categories", len(snapshot)))
	} else {
		rs.logger.Info("no archived snapshot in redis")
	}

	groups, err := rs.store.GetGeneratedGroups(ctx)
	if err != nil {
		return err
	}
	if len(groups) > 0 {
		rs.index.SetGeneratedGroups(groups)
		rs.logger.Info("restored generated changelog groups from redis",
			logger.Int("groups", len(groups)))
	}

	return nil
}
