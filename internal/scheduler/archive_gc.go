package scheduler

import (
	"context"
	"time"

	"github.com/leaguehub/leaguehub/internal/index"
	"github.com/leaguehub/leaguehub/internal/logger"
	redisstore "github.com/leaguehub/leaguehub/internal/store/redis"
)

const (
	// DefaultRetention is how long generated changelog groups are kept.
	// Curated changelog history from the updates document is never
	// touched; only groups this hub generated itself age out.
	DefaultRetention = 180 * 24 * time.Hour
)

// ArchiveJanitor trims old generated changelog groups from the memory
// index and the Redis archive.
type ArchiveJanitor struct {
	store     *redisstore.Store // nil when the archive is disabled
	index     *index.MemoryIndex
	logger    logger.Logger
	interval  time.Duration
	retention time.Duration
	stopCh    chan struct{}
}

// NewArchiveJanitor creates a new janitor.
func NewArchiveJanitor(
	store *redisstore.Store,
	idx *index.MemoryIndex,
	log logger.Logger,
	interval time.Duration,
	retention time.Duration,
) *ArchiveJanitor {
	if retention == 0 {
		retention = DefaultRetention
	}

	return &ArchiveJanitor{
		store:     store,
		index:     idx,
		logger:    log,
		interval:  interval,
		retention: retention,
		stopCh:    make(chan struct{}),
	}
}

// Start begins the periodic trim process.
func (aj *ArchiveJanitor) Start(ctx context.Context) error {
	// Run immediately on start
	if err := aj.Collect(ctx); err != nil {
		aj.logger.Warn("initial archive trim failed",
			logger.Error(err))
	}

	ticker := time.NewTicker(aj.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := aj.Collect(ctx); err != nil {
					aj.logger.Error("archive trim failed",
						logger.Error(err))
				}
			case <-aj.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the janitor.
func (aj *ArchiveJanitor) Stop() {
	close(aj.stopCh)
}

// Collect drops generated changelog groups older than the retention
// window from the index and, best effort, from the Redis archive.
func (aj *ArchiveJanitor) Collect(ctx context.Context) error {
	cutoff := time.Now().Add(-aj.retention)

	removed := aj.index.TrimGeneratedBefore(cutoff)
	if removed == 0 {
		aj.logger.Debug("no changelog groups to trim")
		return nil
	}

	aj.logger.Info("trimmed generated changelog groups",
		logger.Int("removed", removed),
		logger.Time("cutoff", cutoff))

	if aj.store != nil {
		if _, err := aj.store.TrimGeneratedBefore(ctx, cutoff.UTC().Format(time.RFC3339)); err != nil {
			aj.logger.Warn("failed to trim changelog archive in redis",
				logger.Error(err))
		}
	}

	return nil
}
