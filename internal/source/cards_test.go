package source

import (
	"context"
	"testing"

	"github.com/bostontheory/events/internal/fetch"
)

func TestCardsExtract(t *testing.T) {
	fetcher := fetch.Static{mitTheoryURL: fixture(t, "mit_toc.html")}
	src := NewMITTheory(fetcher)

	observations, err := src.Extract(context.Background())
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	// The placeholder card has no parseable start stamp and is skipped.
	want := []Observation{
		{
			Title:       "Algorithmic Persuasion",
			Date:        "2026-03-17",
			Time:        "16:15",
			Speaker:     "Jane Doe",
			Affiliation: "Cornell University",
			Location:    "32-G449",
			URL:         "https://www.csail.mit.edu/event/algorithmic-persuasion",
		},
		{
			Title:   "Sparse Recovery Revisited",
			Date:    "2026-04-02",
			Time:    "16:15",
			Speaker: "John Roe",
			URL:     "https://theory.csail.mit.edu/colloquium",
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

func TestCardsExtractRoomSelector(t *testing.T) {
	fetcher := fetch.Static{mitAlgorithmsURL: fixture(t, "mit_ac.html")}
	src := NewMITAlgorithms(fetcher)

	observations, err := src.Extract(context.Background())
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(observations) != 2 {
		t.Fatalf("expected 2 observations, got %d", len(observations))
	}

	if expected := "Hewlett, G882"; observations[0].Location != expected {
		t.Errorf("Location = %q, expected %q", observations[0].Location, expected)
	}
	// A "TBD" room is left empty so assembly can fill the default.
	if observations[1].Location != "" {
		t.Errorf("Location = %q, expected empty for a TBD room", observations[1].Location)
	}
}
