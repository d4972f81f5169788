package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bostontheory/events/internal/event"
)

func newTestStorage(t *testing.T) (*Storage, string) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "storage-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	store, err := New(tmpDir, "")
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}
	return store, tmpDir
}

func TestWriteSourceAndLoadScraped(t *testing.T) {
	store, _ := newTestStorage(t)

	bu := []event.Event{
		{Title: "Approximating Edit Distance", Date: "2025-09-22", Series: "BU Theory Seminar"},
	}
	harvard := []event.Event{
		{Title: "Sketching and Streaming", Date: "2025-10-04", Series: "Harvard Theory Seminar"},
		{Title: "TBA", Date: "2025-11-21", Series: "Harvard Theory Seminar"},
	}

	// Written out of name order on purpose.
	if err := store.WriteSource("harvard", harvard); err != nil {
		t.Fatalf("WriteSource() error = %v", err)
	}
	if err := store.WriteSource("bu", bu); err != nil {
		t.Fatalf("WriteSource() error = %v", err)
	}

	events, skipped, err := store.LoadScraped()
	if err != nil {
		t.Fatalf("LoadScraped() error = %v", err)
	}
	if len(skipped) != 0 {
		t.Fatalf("LoadScraped() skipped %d files, expected none", len(skipped))
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}

	// The union reads files in name order: bu.json before harvard.json.
	if events[0].Series != "BU Theory Seminar" || events[1].Series != "Harvard Theory Seminar" {
		t.Errorf("unexpected union order: %q then %q", events[0].Series, events[1].Series)
	}
	if events[0].Title != "Approximating Edit Distance" {
		t.Errorf("Title = %q, expected %q", events[0].Title, "Approximating Edit Distance")
	}
}

func TestLoadScrapedSkipsUnreadable(t *testing.T) {
	store, tmpDir := newTestStorage(t)

	good := []event.Event{
		{Title: "Collaborative Learning Without Trust", Date: "2026-04-30", Series: "Northeastern Theory Seminar"},
	}
	if err := store.WriteSource("northeastern", good); err != nil {
		t.Fatalf("WriteSource() error = %v", err)
	}

	scraped := filepath.Join(tmpDir, "scraped")
	if err := os.WriteFile(filepath.Join(scraped, "broken.json"), []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to write broken file: %v", err)
	}
	// Non-JSON files in the directory are not sources and not errors.
	if err := os.WriteFile(filepath.Join(scraped, "README.txt"), []byte("scratch"), 0644); err != nil {
		t.Fatalf("Failed to write stray file: %v", err)
	}

	events, skipped, err := store.LoadScraped()
	if err != nil {
		t.Fatalf("LoadScraped() error = %v", err)
	}
	if len(events) != 1 {
		t.Errorf("expected 1 event from the readable file, got %d", len(events))
	}
	if len(skipped) != 1 {
		t.Fatalf("expected 1 skipped file, got %d", len(skipped))
	}
	if filepath.Base(skipped[0].Path) != "broken.json" || skipped[0].Err == nil {
		t.Errorf("unexpected skip record: %+v", skipped[0])
	}
}

func TestLoadScrapedEmpty(t *testing.T) {
	store, _ := newTestStorage(t)

	events, skipped, err := store.LoadScraped()
	if err != nil {
		t.Fatalf("LoadScraped() error = %v", err)
	}
	if len(events) != 0 || len(skipped) != 0 {
		t.Errorf("expected an empty union, got %d events and %d skips", len(events), len(skipped))
	}
}

func TestCatalogRoundTrip(t *testing.T) {
	store, tmpDir := newTestStorage(t)

	if got := store.CatalogPath(); got != filepath.Join(tmpDir, "events.json") {
		t.Errorf("CatalogPath() = %q, expected the default under the data dir", got)
	}

	// No catalog yet: an empty start, not an error.
	events, err := store.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected an empty catalog, got %d events", len(events))
	}

	catalog := []event.Event{
		{Title: "Watermarking Language Models", Date: "2025-11-18", Speaker: "Sam Gunn", Series: "ML+Cryptography Seminar"},
		{Title: "Charles River Crypto Day", Date: "2025-12-12", Series: "Charles River Crypto Day"},
	}
	if err := store.WriteCatalog(catalog); err != nil {
		t.Fatalf("WriteCatalog() error = %v", err)
	}

	loaded, err := store.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	if len(loaded) != len(catalog) {
		t.Fatalf("expected %d events, got %d", len(catalog), len(loaded))
	}
	for i := range catalog {
		if loaded[i] != catalog[i] {
			t.Errorf("event %d = %+v, expected %+v", i, loaded[i], catalog[i])
		}
	}
}

func TestNewCustomCatalogPath(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "storage-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	custom := filepath.Join(tmpDir, "catalog", "all.json")
	if err := os.MkdirAll(filepath.Dir(custom), 0755); err != nil {
		t.Fatalf("Failed to create catalog dir: %v", err)
	}

	store, err := New(tmpDir, custom)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}
	if store.CatalogPath() != custom {
		t.Errorf("CatalogPath() = %q, expected %q", store.CatalogPath(), custom)
	}

	if err := store.WriteCatalog([]event.Event{{Title: "A", Date: "2025-01-06", Series: "S"}}); err != nil {
		t.Fatalf("WriteCatalog() error = %v", err)
	}
	if _, err := os.Stat(custom); err != nil {
		t.Errorf("catalog not written at the custom path: %v", err)
	}
}
