package announcements

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const testFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
	<title>Hub Announcements</title>
	<link>https://hub.example.com</link>
	<item>
		<title>Patch 3.25 notes posted</title>
		<link>https://hub.example.com/news/patch-325</link>
		<description>Full notes for the new league.</description>
		<pubDate>Tue, 01 Oct 2024 12:00:00 +0000</pubDate>
	</item>
	<item>
		<title></title>
		<link>https://hub.example.com/news/untitled</link>
	</item>
	<item>
		<title>Race weekend schedule</title>
		<link>https://hub.example.com/news/race-weekend</link>
		<pubDate>Sat, 05 Oct 2024 09:00:00 +0000</pubDate>
	</item>
</channel>
</rss>`

func newFeedServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestFetch(t *testing.T) {
	ts := newFeedServer(t, testFeed)

	items, err := NewFetcher(ts.URL, 0).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	// The untitled item is skipped, survivors come back newest-first.
	if len(items) != 2 {
		t.Fatalf("Fetch() returned %d items, want 2: %+v", len(items), items)
	}
	if items[0].Title != "Race weekend schedule" {
		t.Errorf("first item = %q, want the most recent announcement", items[0].Title)
	}
	if items[1].URL != "https://hub.example.com/news/patch-325" {
		t.Errorf("second item URL = %q, want the patch notes link", items[1].URL)
	}
	if items[1].Summary != "Full notes for the new league." {
		t.Errorf("Summary = %q, want the description text", items[1].Summary)
	}
}

func TestFetchLimit(t *testing.T) {
	ts := newFeedServer(t, testFeed)

	items, err := NewFetcher(ts.URL, 1).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(items) != 1 {
		t.Errorf("Fetch() returned %d items, want limit of 1", len(items))
	}
}

func TestFetchBadFeed(t *testing.T) {
	ts := newFeedServer(t, "not a feed")

	if _, err := NewFetcher(ts.URL, 0).Fetch(context.Background()); err == nil {
		t.Error("Fetch() with malformed feed should return error")
	}
}

func TestFetchUnreachable(t *testing.T) {
	ts := newFeedServer(t, testFeed)
	url := ts.URL
	ts.Close()

	if _, err := NewFetcher(url, 0).Fetch(context.Background()); err == nil {
		t.Error("Fetch() with unreachable feed should return error")
	}
}
