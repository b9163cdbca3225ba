package domain

import "time"

// NewsItem is one announcement pulled from the optional news feed.
type NewsItem struct {
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Summary     string    `json:"summary,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
}
