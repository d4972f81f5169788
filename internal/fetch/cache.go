package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// Cache wraps a Fetcher with a per-URL document cache persisted as JSON.
// Seminar listings change on the order of days, so a rerun within the TTL
// reuses the stored documents instead of refetching all of the sites.
type Cache struct {
	fetcher Fetcher
	path    string
	ttl     time.Duration

	mu   sync.Mutex
	docs map[string]cachedDoc
}

type cachedDoc struct {
	Body      string    `json:"body"`
	FetchedAt time.Time `json:"fetched_at"`
}

// NewCache creates a Cache backed by the file at path. An existing cache
// file is loaded; a missing or corrupt one starts the cache empty.
func NewCache(fetcher Fetcher, path string, ttl time.Duration) *Cache {
	c := &Cache{
		fetcher: fetcher,
		path:    path,
		ttl:     ttl,
		docs:    make(map[string]cachedDoc),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return c
	}
	// A corrupt cache file is not worth failing a scrape over.
	_ = json.Unmarshal(data, &c.docs)
	return c
}

// Fetch returns the cached document for url when it is younger than the
// TTL, fetching and storing it otherwise.
func (c *Cache) Fetch(ctx context.Context, url string) (string, error) {
	c.mu.Lock()
	doc, ok := c.docs[url]
	if ok && time.Since(doc.FetchedAt) > c.ttl {
		delete(c.docs, url)
		ok = false
	}
	c.mu.Unlock()

	if ok {
		return doc.Body, nil
	}

	body, err := c.fetcher.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	c.docs[url] = cachedDoc{Body: body, FetchedAt: time.Now()}
	err = c.save()
	c.mu.Unlock()
	if err != nil {
		return "", fmt.Errorf("saving fetch cache: %w", err)
	}
	return body, nil
}

// save writes the cache map to disk. Callers hold c.mu.
func (c *Cache) save() error {
	data, err := json.MarshalIndent(c.docs, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.path, data, 0644)
}
