package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single feed download.
const DefaultTimeout = 10 * time.Second

// Client is a small HTTP client for fetching GTFS-RT protobuf data.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a client whose requests time out after timeout
// (DefaultTimeout when timeout <= 0).
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Fetch downloads url and returns the raw protobuf bytes.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, ErrNoFeedURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("feed: build request: %w", err)
	}
	req.Header.Set("Accept", "application/x-protobuf")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed: fetch %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed: HTTP %d from %s", resp.StatusCode, url)
	}

	return io.ReadAll(resp.Body)
}
