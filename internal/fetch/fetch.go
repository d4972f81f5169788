// Package fetch retrieves source documents over HTTP. Network access
// sits behind the Fetcher interface so adapter tests run against
// canned payloads instead of live sites.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Fetcher retrieves the document at a URL as text.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Client fetches over HTTP with a bounded timeout and a stable
// User-Agent, which some of the university sites require.
type Client struct {
	client    *http.Client
	userAgent string
}

// NewClient creates a Client with the given timeout and User-Agent.
func NewClient(timeout time.Duration, userAgent string) *Client {
	return &Client{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Fetch retrieves url and returns the response body as a string.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading body: %w", err)
	}
	return string(body), nil
}

// Static serves canned documents from memory, keyed by URL.
type Static map[string]string

// Fetch returns the canned document for url, or an error when no
// document was registered under it.
func (s Static) Fetch(_ context.Context, url string) (string, error) {
	doc, ok := s[url]
	if !ok {
		return "", fmt.Errorf("no document for %s", url)
	}
	return doc, nil
}
