package manual

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "manual-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	path := filepath.Join(tmpDir, "events.yaml")
	doc := `events:
  - title: Reading Group on Lattice Problems
    date: "2025-10-17"
    time: "14:00"
    speaker: Ada Lovelace
    location: MIT 32-G882
    series: Reading Group
  - title: Distinguished Lecture
    date: "2025-11-03"
    series: MIT Theory of Computation
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatalf("Failed to write manual file: %v", err)
	}

	events, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	first := events[0]
	if first.Title != "Reading Group on Lattice Problems" || first.Date != "2025-10-17" || first.Speaker != "Ada Lovelace" {
		t.Errorf("unexpected first event: %+v", first)
	}
	if events[1].Time != "" {
		t.Errorf("Time = %q, expected empty for an entry without one", events[1].Time)
	}
}

func TestLoadMissingFile(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "manual-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	events, err := Load(filepath.Join(tmpDir, "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v, expected a missing file to be silent", err)
	}
	if events != nil {
		t.Errorf("expected nil events for a missing file, got %v", events)
	}
}

func TestLoadMalformed(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "manual-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	path := filepath.Join(tmpDir, "events.yaml")
	if err := os.WriteFile(path, []byte("events: [title: {"), 0644); err != nil {
		t.Fatalf("Failed to write manual file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML, got nil")
	}
}
