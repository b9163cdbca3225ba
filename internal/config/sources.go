package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Sources names the remote documents the hub is built from. The file is
// the deployment's editorial surface: pointing links.index at a new
// document is a content change, not a code change.
type Sources struct {
	Links struct {
		Index string `yaml:"index"` // category-index document
		Items string `yaml:"items"` // link-items document
	} `yaml:"links"`
	Events  string `yaml:"events"`
	Updates string `yaml:"updates"`
	News    struct {
		Feed  string `yaml:"feed"` // RSS/Atom announcement feed, optional
		Limit int    `yaml:"limit"`
	} `yaml:"news"`
}

// LoadSources reads and validates the sources file. Environment
// variables override individual entries so a deployment can repoint one
// document without editing the file.
func LoadSources(path string) (*Sources, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sources file: %w", err)
	}

	var s Sources
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse sources file: %w", err)
	}

	if v := os.Getenv("HUB_LINKS_INDEX_URL"); v != "" {
		s.Links.Index = v
	}
	if v := os.Getenv("HUB_LINK_ITEMS_URL"); v != "" {
		s.Links.Items = v
	}
	if v := os.Getenv("HUB_EVENTS_URL"); v != "" {
		s.Events = v
	}
	if v := os.Getenv("HUB_UPDATES_URL"); v != "" {
		s.Updates = v
	}
	if v := os.Getenv("HUB_NEWS_FEED_URL"); v != "" {
		s.News.Feed = v
	}

	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Sources) validate() error {
	if s.Links.Index == "" {
		return fmt.Errorf("sources: links.index is required")
	}
	if s.Links.Items == "" {
		return fmt.Errorf("sources: links.items is required")
	}
	if s.Events == "" {
		return fmt.Errorf("sources: events is required")
	}
	if s.Updates == "" {
		return fmt.Errorf("sources: updates is required")
	}
	// news.feed is optional; no feed means the news endpoint serves an
	// empty list.
	return nil
}
