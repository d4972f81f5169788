package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bostontheory/events/internal/event"
)

// Storage handles persistence of scraped events and the merged catalog
type Storage struct {
	dataDir     string
	catalogPath string
}

// Skipped records a scraped file that could not be used.
type Skipped struct {
	Path string
	Err  error
}

// New creates a new Storage instance rooted at dataDir. An empty
// catalogPath places the catalog at <dataDir>/events.json.
func New(dataDir, catalogPath string) (*Storage, error) {
	dataDir, err := expandHome(dataDir)
	if err != nil {
		return nil, err
	}

	// Create the scraped directory (and the data directory above it)
	// if it doesn't exist
	if err := os.MkdirAll(filepath.Join(dataDir, "scraped"), 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	if catalogPath == "" {
		catalogPath = filepath.Join(dataDir, "events.json")
	} else {
		catalogPath, err = expandHome(catalogPath)
		if err != nil {
			return nil, err
		}
	}

	return &Storage{
		dataDir:     dataDir,
		catalogPath: catalogPath,
	}, nil
}

// CatalogPath returns where the merged catalog is written.
func (s *Storage) CatalogPath() string {
	return s.catalogPath
}

// CachePath returns where the fetch cache lives.
func (s *Storage) CachePath() string {
	return filepath.Join(s.dataDir, "fetch-cache.json")
}

// sourcePath returns the path to a source's scraped file
func (s *Storage) sourcePath(name string) string {
	return filepath.Join(s.dataDir, "scraped", name+".json")
}

// WriteSource writes one source's events to scraped/<name>.json
func (s *Storage) WriteSource(name string, events []event.Event) error {
	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding events: %w", err)
	}

	if err := os.WriteFile(s.sourcePath(name), data, 0644); err != nil {
		return fmt.Errorf("writing scraped events: %w", err)
	}

	return nil
}

// LoadScraped returns the union of all scraped files. Files that
// cannot be read or parsed are reported in skipped rather than failing
// the load; one source's bad output never blocks a merge. Files are
// visited in name order so ties between runs resolve the same way.
func (s *Storage) LoadScraped() ([]event.Event, []Skipped, error) {
	dir := filepath.Join(s.dataDir, "scraped")

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("reading scraped directory: %w", err)
	}

	var events []event.Event
	var skipped []Skipped
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		batch, err := readEvents(path)
		if err != nil {
			skipped = append(skipped, Skipped{Path: path, Err: err})
			continue
		}
		events = append(events, batch...)
	}
	return events, skipped, nil
}

// LoadCatalog loads the merged catalog from disk
func (s *Storage) LoadCatalog() ([]event.Event, error) {
	events, err := readEvents(s.catalogPath)
	if err != nil {
		if os.IsNotExist(err) {
			// No previous catalog, start empty
			return nil, nil
		}
		return nil, err
	}
	return events, nil
}

// WriteCatalog writes the merged catalog to disk
func (s *Storage) WriteCatalog(events []event.Event) error {
	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}

	if err := os.WriteFile(s.catalogPath, data, 0644); err != nil {
		return fmt.Errorf("writing catalog: %w", err)
	}

	return nil
}

func readEvents(path string) ([]event.Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var events []event.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("parsing events: %w", err)
	}
	return events, nil
}

// expandHome expands a leading ~/ to the user's home directory
func expandHome(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting home directory: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}
