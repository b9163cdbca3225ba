package announcements

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/leaguehub/leaguehub/internal/domain"
)

// DefaultLimit caps how many items the hub keeps from one feed fetch.
const DefaultLimit = 20

// Fetcher pulls the optional announcements RSS/Atom feed and maps its
// items to news records. The feed is auxiliary content: a failing fetch
// degrades the news panel, never the link or event collections.
type Fetcher struct {
	parser  *gofeed.Parser
	feedURL string
	limit   int
}

// NewFetcher creates a fetcher for feedURL keeping at most limit items.
func NewFetcher(feedURL string, limit int) *Fetcher {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Fetcher{
		parser:  gofeed.NewParser(),
		feedURL: feedURL,
		limit:   limit,
	}
}

// Fetch downloads and parses the feed, returning items newest-first.
// Items without a title or link are skipped.
func (f *Fetcher) Fetch(ctx context.Context) ([]domain.NewsItem, error) {
	feed, err := f.parser.ParseURLWithContext(f.feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch announcements feed: %w", err)
	}

	items := make([]domain.NewsItem, 0, len(feed.Items))
	for _, it := range feed.Items {
		title := strings.TrimSpace(it.Title)
		link := strings.TrimSpace(it.Link)
		if title == "" || link == "" {
			continue
		}
		item := domain.NewsItem{
			Title:   title,
			URL:     link,
			Summary: strings.TrimSpace(it.Description),
		}
		if it.PublishedParsed != nil {
			item.PublishedAt = it.PublishedParsed.UTC()
		} else if it.UpdatedParsed != nil {
			item.PublishedAt = it.UpdatedParsed.UTC()
		}
		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PublishedAt.After(items[j].PublishedAt)
	})
	if len(items) > f.limit {
		items = items[:f.limit]
	}
	return items, nil
}
