package source

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/bostontheory/events/internal/config"
	"github.com/bostontheory/events/internal/fetch"
)

func fixture(t *testing.T, name string) string {
	t.Helper()
	body, err := os.ReadFile("../../testdata/fixtures/" + name)
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}
	return string(body)
}

func testConfig() config.Config {
	return config.Config{
		WindowYears:     2,
		UTCOffsetHours:  -5,
		MaxNameLen:      50,
		SpeakerDenylist: []string{"coffee welcome", "lunch break", "star room", "hewlett room"},
		SpeakerMax:      3,
	}
}

// testDocuments maps every source URL to a canned document.
func testDocuments(t *testing.T) fetch.Static {
	t.Helper()
	return fetch.Static{
		buCalendarURL:    buTestFeed(),
		cryptoDayFeedURL: fixture(t, "crypto_day.xml"),
		harvardDocURL:    fixture(t, "harvard.txt"),
		mitTheoryURL:     fixture(t, "mit_toc.html"),
		mitAlgorithmsURL: fixture(t, "mit_ac.html"),
		mitCISURL:        fixture(t, "mit_cis.html"),
		mlCryptoURL:      fixture(t, "mlcrypto.html"),
		northeasternURL:  fixture(t, "northeastern.html"),
	}
}

func TestAll(t *testing.T) {
	now := time.Date(2026, time.January, 10, 12, 0, 0, 0, time.UTC)
	sources := All(fetch.Static{}, testConfig(), now)

	wantNames := []string{"bu", "crypto_day", "harvard", "mit_toc", "mit_ac", "mit_cis", "mit_mlcrypto", "northeastern"}
	if len(sources) != len(wantNames) {
		t.Fatalf("expected %d sources, got %d", len(wantNames), len(sources))
	}
	for i, src := range sources {
		if src.Name() != wantNames[i] {
			t.Errorf("source %d = %q, expected %q", i, src.Name(), wantNames[i])
		}
		if src.Profile().Series == "" {
			t.Errorf("source %q has an empty series", src.Name())
		}
	}
}

func TestExtractAll(t *testing.T) {
	now := time.Date(2026, time.January, 10, 12, 0, 0, 0, time.UTC)
	results := ExtractAll(context.Background(), All(testDocuments(t), testConfig(), now))

	want := map[string]int{
		"bu":           3,
		"crypto_day":   2,
		"harvard":      3,
		"mit_toc":      2,
		"mit_ac":       2,
		"mit_cis":      2,
		"mit_mlcrypto": 2,
		"northeastern": 2,
	}
	if len(results) != len(want) {
		t.Fatalf("expected %d results, got %d", len(want), len(results))
	}
	for _, res := range results {
		if res.Err != nil {
			t.Errorf("source %q: unexpected error: %v", res.Name, res.Err)
			continue
		}
		if n, ok := want[res.Name]; !ok || len(res.Observations) != n {
			t.Errorf("source %q contributed %d observations, expected %d", res.Name, len(res.Observations), n)
		}
	}
}

// TestExtractAllIsolatesFailures drops one source's document and
// checks that every other source contributes exactly what it did in
// the healthy run.
func TestExtractAllIsolatesFailures(t *testing.T) {
	now := time.Date(2026, time.January, 10, 12, 0, 0, 0, time.UTC)

	healthy := ExtractAll(context.Background(), All(testDocuments(t), testConfig(), now))
	counts := make(map[string]int)
	for _, res := range healthy {
		counts[res.Name] = len(res.Observations)
	}

	docs := testDocuments(t)
	delete(docs, northeasternURL)
	results := ExtractAll(context.Background(), All(docs, testConfig(), now))

	for _, res := range results {
		if res.Name == "northeastern" {
			if res.Err == nil {
				t.Error("expected error for the missing northeastern document, got nil")
			}
			if len(res.Observations) != 0 {
				t.Errorf("failed source contributed %d observations, expected 0", len(res.Observations))
			}
			continue
		}
		if res.Err != nil {
			t.Errorf("source %q: unexpected error: %v", res.Name, res.Err)
			continue
		}
		if len(res.Observations) != counts[res.Name] {
			t.Errorf("source %q contributed %d observations, expected %d as in the healthy run",
				res.Name, len(res.Observations), counts[res.Name])
		}
	}
}
