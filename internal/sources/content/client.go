package content

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client fetches the hub's upstream JSON documents. Transport failures,
// non-2xx statuses and malformed JSON are all fatal for the call that
// hit them; record-level filtering happens above, in the Loader.
type Client struct {
	http *resty.Client
}

// NewClient creates a fetch client with the given per-request timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		http: resty.New().
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
	}
}

// getJSON fetches url and decodes the body into out.
func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	resp, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	if resp.IsError() {
		return fmt.Errorf("failed to fetch %s: unexpected status %d", url, resp.StatusCode())
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", url, err)
	}
	return nil
}
