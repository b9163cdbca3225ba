package content

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/leaguehub/leaguehub/internal/domain"
)

const testCategoryIndex = `{
	"trade": {"id": "trade", "title": "Trading", "links": ["tradeSite", "prices", "ghost"]},
	"builds": {"id": "builds", "title": "Build Guides", "links": ["planner"]},
	"broken": {"id": "broken", "title": "", "links": ["planner"]},
	"hollow": {"id": "hollow", "title": "Hollow", "links": ["ghost"]}
}`

const testLinkItems = `{
	"tradeSite": {"name": "Trade Site", "url": "https://trade.example.com", "icon": "trade.svg"},
	"prices": {"name": "Price Checker", "url": "https://prices.example.com"},
	"planner": {"name": "Planner", "url": "https://planner.example.com", "description": "build planner"}
}`

const testEvents = `[
	{"id": "settlers", "name": "Settlers League", "startDate": "2024-07-26T16:00:00Z", "endDate": "2024-12-02T16:00:00Z", "type": "league"},
	{"id": "bad-dates", "name": "Broken", "startDate": "soon", "endDate": "later"},
	{"id": "gauntlet", "name": "Gauntlet Race", "startDate": "2024-11-01T18:00:00Z", "endDate": "2024-11-08T18:00:00Z", "type": "race"},
	{"id": "wrong-type", "name": 42, "startDate": "2024-11-01T18:00:00Z", "endDate": "2024-11-08T18:00:00Z"}
]`

const testUpdates = `{
	"lastUpdated": "2024-10-01T12:00:00Z",
	"changelog": [
		{"date": "2024-10-01T12:00:00Z", "entries": [
			{"type": "added", "categoryId": "trade", "linkName": "Trade Site", "linkUrl": "https://trade.example.com"},
			{"type": "note", "message": "first public revision"}
		]}
	]
}`

// newTestLoader serves the canned documents and returns a loader wired
// against them. Individual documents can be overridden per test.
func newTestLoader(t *testing.T, overrides map[string]string) (*Loader, *httptest.Server) {
	t.Helper()

	docs := map[string]string{
		"/categories.json": testCategoryIndex,
		"/links.json":      testLinkItems,
		"/events.json":     testEvents,
		"/updates.json":    testUpdates,
	}
	for path, body := range overrides {
		docs[path] = body
	}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := docs[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)

	loader := NewLoader(NewClient(5*time.Second), Endpoints{
		CategoryIndex: ts.URL + "/categories.json",
		LinkItems:     ts.URL + "/links.json",
		Events:        ts.URL + "/events.json",
		Updates:       ts.URL + "/updates.json",
	})
	return loader, ts
}

func TestLoadLinks(t *testing.T) {
	loader, _ := newTestLoader(t, nil)

	categories, err := loader.LoadLinks(context.Background())
	if err != nil {
		t.Fatalf("LoadLinks() error = %v", err)
	}

	// "broken" has an empty title, "hollow" resolves to zero links;
	// both must be dropped. Result is sorted by id.
	if len(categories) != 2 {
		t.Fatalf("LoadLinks() returned %d categories, want 2: %+v", len(categories), categories)
	}
	if categories[0].ID != "builds" || categories[1].ID != "trade" {
		t.Errorf("category order = [%s %s], want [builds trade]", categories[0].ID, categories[1].ID)
	}

	trade := categories[1]
	if len(trade.Links) != 2 {
		t.Fatalf("trade resolved %d links, want 2 (ghost key skipped): %+v", len(trade.Links), trade.Links)
	}
	if trade.Links[0].Name != "Trade Site" || trade.Links[0].Icon == nil || *trade.Links[0].Icon != "trade.svg" {
		t.Errorf("first trade link = %+v, want the full Trade Site record", trade.Links[0])
	}
	if trade.Links[1].Icon != nil {
		t.Errorf("second trade link icon = %v, want nil for a record without the key", trade.Links[1].Icon)
	}
}

func TestLoadLinksDropsCategoryWithInvalidLink(t *testing.T) {
	loader, _ := newTestLoader(t, map[string]string{
		"/links.json": `{
			"tradeSite": {"name": "Trade Site", "url": "ftp://trade.example.com"},
			"prices": {"name": "Price Checker", "url": "https://prices.example.com"},
			"planner": {"name": "Planner", "url": "https://planner.example.com"}
		}`,
	})

	categories, err := loader.LoadLinks(context.Background())
	if err != nil {
		t.Fatalf("LoadLinks() error = %v", err)
	}
	for _, c := range categories {
		if c.ID == "trade" {
			t.Errorf("trade category survived with an invalid link: %+v", c)
		}
	}
}

func TestLoadLinksDropsCategoryWithEmptyIcon(t *testing.T) {
	// "icon": "" is present-but-empty, which is not the same as no icon
	// at all: the link is invalid and takes its category with it.
	loader, _ := newTestLoader(t, map[string]string{
		"/links.json": `{
			"tradeSite": {"name": "Trade Site", "url": "https://trade.example.com", "icon": ""},
			"prices": {"name": "Price Checker", "url": "https://prices.example.com"},
			"planner": {"name": "Planner", "url": "https://planner.example.com"}
		}`,
	})

	categories, err := loader.LoadLinks(context.Background())
	if err != nil {
		t.Fatalf("LoadLinks() error = %v", err)
	}
	for _, c := range categories {
		if c.ID == "trade" {
			t.Errorf("trade category survived with an empty-icon link: %+v", c)
		}
	}
	if len(categories) != 1 || categories[0].ID != "builds" {
		t.Errorf("categories = %+v, want only builds left", categories)
	}
}

func TestLoadLinksTransportFailureIsFatal(t *testing.T) {
	loader, ts := newTestLoader(t, nil)
	ts.Close()

	if _, err := loader.LoadLinks(context.Background()); err == nil {
		t.Error("LoadLinks() with unreachable endpoint should return error")
	}
}

func TestLoadLinksMissingDocumentIsFatal(t *testing.T) {
	loader, _ := newTestLoader(t, nil)
	loader.eps.LinkItems = loader.eps.CategoryIndex[:len(loader.eps.CategoryIndex)-len("/categories.json")] + "/missing.json"

	if _, err := loader.LoadLinks(context.Background()); err == nil {
		t.Error("LoadLinks() with 404 items document should return error")
	}
}

func TestLoadLinksMalformedJSONIsFatal(t *testing.T) {
	loader, _ := newTestLoader(t, map[string]string{
		"/categories.json": `{"trade": `,
	})

	if _, err := loader.LoadLinks(context.Background()); err == nil {
		t.Error("LoadLinks() with malformed index document should return error")
	}
}

func TestLoadEvents(t *testing.T) {
	loader, _ := newTestLoader(t, nil)

	events, err := loader.LoadEvents(context.Background())
	if err != nil {
		t.Fatalf("LoadEvents() error = %v", err)
	}

	// bad-dates fails validation, wrong-type fails decoding; both are
	// filtered while document order of the survivors is preserved.
	if len(events) != 2 {
		t.Fatalf("LoadEvents() returned %d events, want 2: %+v", len(events), events)
	}
	if events[0].ID != "settlers" || events[1].ID != "gauntlet" {
		t.Errorf("event order = [%s %s], want [settlers gauntlet]", events[0].ID, events[1].ID)
	}
	if events[1].Type != domain.EventTypeRace {
		t.Errorf("gauntlet type = %q, want race", events[1].Type)
	}
}

func TestLoadUpdates(t *testing.T) {
	loader, _ := newTestLoader(t, nil)

	record, err := loader.LoadUpdates(context.Background())
	if err != nil {
		t.Fatalf("LoadUpdates() error = %v", err)
	}
	if record.LastUpdated != "2024-10-01T12:00:00Z" {
		t.Errorf("LastUpdated = %q, want the document value", record.LastUpdated)
	}
	if len(record.Changelog) != 1 || len(record.Changelog[0].Entries) != 2 {
		t.Errorf("changelog = %+v, want one group with two entries", record.Changelog)
	}
}

// One invalid entry rejects the whole record here, while the presenter
// fed the very same groups still renders the valid entries. The two
// sides are asymmetric on purpose.
func TestLoadUpdatesWholeRecordRejection(t *testing.T) {
	rejectedDoc := `{
		"lastUpdated": "2024-10-01T12:00:00Z",
		"changelog": [
			{"date": "2024-10-01T12:00:00Z", "entries": [
				{"type": "added", "categoryId": "trade", "linkName": "Trade Site", "linkUrl": "https://trade.example.com"},
				{"type": "invalid", "categoryId": "trade", "linkName": "Broken", "linkUrl": "https://broken.example.com"}
			]}
		]
	}`
	loader, _ := newTestLoader(t, map[string]string{"/updates.json": rejectedDoc})

	record, err := loader.LoadUpdates(context.Background())
	if !errors.Is(err, ErrUpdateRecordRejected) {
		t.Fatalf("LoadUpdates() error = %v, want ErrUpdateRecordRejected", err)
	}
	if record != nil {
		t.Errorf("LoadUpdates() record = %+v, want nil on rejection", record)
	}

	// Same raw groups through the lenient presenter path.
	groups := []domain.ChangelogGroup{
		{Date: "2024-10-01T12:00:00Z", Entries: []domain.ChangelogEntry{
			{Type: domain.EntryAdded, CategoryID: "trade", LinkName: "Trade Site", LinkURL: "https://trade.example.com"},
			{Type: "invalid", CategoryID: "trade", LinkName: "Broken", LinkURL: "https://broken.example.com"},
		}},
	}
	view := domain.BuildChangelogView(groups)
	if view.NoChanges || len(view.Groups) != 1 || len(view.Groups[0].Added) != 1 {
		t.Errorf("BuildChangelogView() = %+v, want the single valid entry rendered", view)
	}
}

func TestLoadUpdatesTransportFailureIsDistinctFromRejection(t *testing.T) {
	loader, ts := newTestLoader(t, nil)
	ts.Close()

	_, err := loader.LoadUpdates(context.Background())
	if err == nil {
		t.Fatal("LoadUpdates() with unreachable endpoint should return error")
	}
	if errors.Is(err, ErrUpdateRecordRejected) {
		t.Error("transport failure must not be reported as record rejection")
	}
}
