package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/leaguehub/leaguehub/internal/domain"
	"github.com/leaguehub/leaguehub/internal/index"
	"github.com/leaguehub/leaguehub/internal/logger"
	"github.com/leaguehub/leaguehub/internal/sources/content"
	redisstore "github.com/leaguehub/leaguehub/internal/store/redis"
)

// ContentReloader periodically reloads the hub's source documents,
// diffs the new link snapshot against the previous one and records the
// result as a generated changelog group.
type ContentReloader struct {
	loader        *content.Loader
	store         *redisstore.Store // nil when the archive is disabled
	index         *index.MemoryIndex
	logger        logger.Logger
	interval      time.Duration
	timeNow       func() time.Time
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewContentReloader creates a new content reloader.
func NewContentReloader(
	loader *content.Loader,
	store *redisstore.Store,
	idx *index.MemoryIndex,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *ContentReloader {
	return &ContentReloader{
		loader:        loader,
		store:         store,
		index:         idx,
		logger:        log,
		interval:      interval,
		timeNow:       time.Now,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start performs the initial load and begins the periodic reload loop.
func (cr *ContentReloader) Start(ctx context.Context) error {
	// Load immediately on start
	if err := cr.Reload(ctx); err != nil {
		return fmt.Errorf("initial reload failed: %w", err)
	}

	ticker := time.NewTicker(cr.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := cr.Reload(ctx); err != nil {
					cr.logger.Error("failed to reload content",
						logger.Error(err))
				}
			case <-cr.manualTrigger:
				cr.logger.Info("manual content reload triggered")
				if err := cr.Reload(ctx); err != nil {
					cr.logger.Error("failed to reload content",
						logger.Error(err))
				}
			case <-cr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the reloader.
func (cr *ContentReloader) Stop() {
	close(cr.stopCh)
}

// Reload fetches all source documents and swaps them into the index.
// A transport or decode failure on links or events aborts the reload
// and keeps the previous state; a rejected update record only clears
// the curated changelog.
func (cr *ContentReloader) Reload(ctx context.Context) error {
	cr.logger.Info("reloading content documents")

	categories, err := cr.loader.LoadLinks(ctx)
	if err != nil {
		return fmt.Errorf("failed to load links: %w", err)
	}

	events, err := cr.loader.LoadEvents(ctx)
	if err != nil {
		return fmt.Errorf("failed to load events: %w", err)
	}

	record, err := cr.loader.LoadUpdates(ctx)
	switch {
	case errors.Is(err, content.ErrUpdateRecordRejected):
		// A corrupt entry poisons the whole record. Serve no curated
		// changelog rather than a partial one.
		cr.logger.Warn("update record rejected, clearing curated changelog",
			logger.Error(err))
		record = nil
	case err != nil:
		return fmt.Errorf("failed to load updates: %w", err)
	}

	// Diff against the snapshot currently being served before swapping
	// it out. Nil previous means first load, which produces no group.
	previous := cr.index.Snapshot()
	if entries := domain.CompareSnapshots(categories, previous); previous != nil && len(entries) > 0 {
		group := domain.ChangelogGroup{
			Date:    cr.timeNow().UTC().Format(time.RFC3339),
			Entries: entries,
		}
		cr.index.AppendGeneratedGroup(group)
		cr.logger.Info("recorded generated changelog group",
			logger.String("date", group.Date),
			logger.Int("entries", len(entries)))

		if cr.store != nil {
			if err := cr.store.AppendGeneratedGroup(ctx, group); err != nil {
				cr.logger.Warn("failed to archive changelog group",
					logger.Error(err))
			}
		}
	}

	cr.index.SetSnapshot(categories)
	cr.index.SetEvents(events)
	cr.index.SetUpdates(record)

	cr.logger.Info("content reloaded",
		logger.Int("categories", len(categories)),
		logger.Int("events", len(events)),
		logger.Bool("curated_changelog", record != nil))

	// Archive the snapshot (best effort), it seeds the diff baseline
	// after a restart.
	if cr.store != nil {
		if err := cr.store.SaveSnapshot(ctx, categories); err != nil {
			cr.logger.Warn("failed to archive snapshot",
				logger.Error(err))
		}
	}

	return nil
}
