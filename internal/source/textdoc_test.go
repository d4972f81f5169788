package source

import (
	"context"
	"testing"

	"github.com/bostontheory/events/internal/fetch"
)

func TestTextDocExtract(t *testing.T) {
	fetcher := fetch.Static{harvardDocURL: fixture(t, "harvard.txt")}
	src := NewHarvardTheory(fetcher)

	observations, err := src.Extract(context.Background())
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	want := []Observation{
		{
			// Quotes around the title are stripped; "3:45-5:00 p.m."
			// yields the start time.
			Title:       "Communication Complexity of Collision",
			Date:        "2024-09-13",
			Time:        "15:45",
			Speaker:     "Mark Braverman",
			Affiliation: "Princeton",
			Location:    "SEC 3.301",
		},
		{
			Title:       "Sketching and Streaming",
			Date:        "2024-10-04",
			Time:        "11:00",
			Speaker:     "Jelani Nelson",
			Affiliation: "Berkeley",
			Location:    "Harvard Maxwell Dworkin 119",
		},
		{
			// A block with no Title line becomes a TBA placeholder.
			Title:    "TBA",
			Date:     "2024-11-22",
			Time:     "15:45",
			Location: "SEC 3.301",
		},
	}
	if len(observations) != len(want) {
		t.Fatalf("expected %d observations, got %d", len(want), len(observations))
	}
	for i, w := range want {
		if observations[i] != w {
			t.Errorf("observation %d = %+v, expected %+v", i, observations[i], w)
		}
	}
}

func TestTextDocExtractFetchError(t *testing.T) {
	src := NewHarvardTheory(fetch.Static{})
	if _, err := src.Extract(context.Background()); err == nil {
		t.Error("expected error when the document cannot be retrieved, got nil")
	}
}
