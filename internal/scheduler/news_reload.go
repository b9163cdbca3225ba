package scheduler

import (
	"context"
	"time"

	"github.com/leaguehub/leaguehub/internal/index"
	"github.com/leaguehub/leaguehub/internal/logger"
	"github.com/leaguehub/leaguehub/internal/sources/announcements"
)

// NewsReloader periodically refreshes the announcement feed. The feed
// is a remote service outside our control, so failures never abort
// startup; the hub just keeps serving the last successful fetch.
type NewsReloader struct {
	fetcher       *announcements.Fetcher
	index         *index.MemoryIndex
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewNewsReloader creates a new news reloader.
func NewNewsReloader(
	fetcher *announcements.Fetcher,
	idx *index.MemoryIndex,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *NewsReloader {
	return &NewsReloader{
		fetcher:       fetcher,
		index:         idx,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start fetches once and begins the periodic refresh loop.
func (nr *NewsReloader) Start(ctx context.Context) error {
	if err := nr.Reload(ctx); err != nil {
		nr.logger.Warn("initial news fetch failed, will retry on next tick",
			logger.Error(err))
	}

	ticker := time.NewTicker(nr.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := nr.Reload(ctx); err != nil {
					nr.logger.Error("failed to reload news",
						logger.Error(err))
				}
			case <-nr.manualTrigger:
				nr.logger.Info("manual news reload triggered")
				if err := nr.Reload(ctx); err != nil {
					nr.logger.Error("failed to reload news",
						logger.Error(err))
				}
			case <-nr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the reloader.
func (nr *NewsReloader) Stop() {
	close(nr.stopCh)
}

// Reload fetches the feed and swaps the cached items.
func (nr *NewsReloader) Reload(ctx context.Context) error {
	items, err := nr.fetcher.Fetch(ctx)
	if err != nil {
		return err
	}

	nr.index.SetNews(items)
	nr.logger.Info("news reloaded",
		logger.Int("items", len(items)))

	return nil
}
