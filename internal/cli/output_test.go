package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/bostontheory/events/internal/event"
)

func sampleEvents() []event.Event {
	return []event.Event{
		{
			Title:       "Algorithmic Persuasion",
			Date:        "2026-03-17",
			Time:        "16:15",
			Speaker:     "Jane Doe",
			Affiliation: "Cornell University",
			Location:    "MIT 32-G449",
			Series:      "MIT Theory of Computation Colloquium",
			URL:         "https://www.csail.mit.edu/event/algorithmic-persuasion",
		},
		{
			Title:    "Collaborative Learning Without Trust",
			Date:     "2026-04-30",
			Time:     "12:00",
			Speaker:  "Nika Haghtalab",
			Location: "Northeastern 655 ISEC",
			Series:   "Northeastern Theory Seminar",
		},
	}
}

func TestWriteTextGrouped(t *testing.T) {
	events := sampleEvents()
	result := &OutputResult{
		GeneratedAt: time.Now().UTC(),
		Events:      events,
		EventCount:  len(events),
		BySeries:    event.BySeries(events),
	}

	var buf bytes.Buffer
	if err := WriteOutput(&buf, result, FormatText, false); err != nil {
		t.Fatalf("WriteOutput() error = %v", err)
	}

	got := buf.String()
	wantParts := []string{
		"MIT Theory of Computation Colloquium (1 new):",
		"NEW: 2026-03-17 16:15  Jane Doe: Algorithmic Persuasion",
		"Northeastern Theory Seminar (1 new):",
		"Total: 2 new across 2 series",
	}
	for _, part := range wantParts {
		if !strings.Contains(got, part) {
			t.Errorf("text output missing %q:\n%s", part, got)
		}
	}
}

func TestWriteTextFlat(t *testing.T) {
	events := sampleEvents()
	result := &OutputResult{
		GeneratedAt: time.Now().UTC(),
		Events:      events,
		EventCount:  len(events),
		ShowAll:     true,
	}

	var buf bytes.Buffer
	if err := WriteOutput(&buf, result, FormatText, true); err != nil {
		t.Fatalf("WriteOutput() error = %v", err)
	}

	got := buf.String()
	wantParts := []string{
		"MIT Theory of Computation Colloquium: 2026-03-17 16:15  Jane Doe: Algorithmic Persuasion",
		"Affiliation: Cornell University",
		"Location: MIT 32-G449",
		"URL: https://www.csail.mit.edu/event/algorithmic-persuasion",
		"Total: 2 events",
	}
	for _, part := range wantParts {
		if !strings.Contains(got, part) {
			t.Errorf("text output missing %q:\n%s", part, got)
		}
	}
	if strings.Contains(got, "NEW:") {
		t.Errorf("listing output should not flag events as NEW:\n%s", got)
	}
}

func TestWriteTextEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, &OutputResult{}, FormatText, false); err != nil {
		t.Fatalf("WriteOutput() error = %v", err)
	}
	if got := buf.String(); got != "No new seminars found.\n" {
		t.Errorf("empty merge output = %q", got)
	}

	buf.Reset()
	if err := WriteOutput(&buf, &OutputResult{ShowAll: true}, FormatText, false); err != nil {
		t.Fatalf("WriteOutput() error = %v", err)
	}
	if got := buf.String(); got != "No events found.\n" {
		t.Errorf("empty listing output = %q", got)
	}
}

func TestWriteJSON(t *testing.T) {
	events := sampleEvents()
	stats := event.MergeStats{Input: 5, Invalid: 1, Duplicates: 2, Output: 2}
	result := &OutputResult{
		GeneratedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Events:      events,
		EventCount:  len(events),
		Stats:       &stats,
	}

	var buf bytes.Buffer
	if err := WriteOutput(&buf, result, FormatJSON, false); err != nil {
		t.Fatalf("WriteOutput() error = %v", err)
	}

	var decoded OutputResult
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if decoded.EventCount != 2 {
		t.Errorf("EventCount = %d, want 2", decoded.EventCount)
	}
	if len(decoded.Events) != 2 || decoded.Events[0].Title != "Algorithmic Persuasion" {
		t.Errorf("Events = %+v, want the two sample events", decoded.Events)
	}
	if decoded.Stats == nil || decoded.Stats.Duplicates != 2 {
		t.Errorf("Stats = %+v, want merge stats carried through", decoded.Stats)
	}
}

func TestWriteOutputUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, &OutputResult{}, OutputFormat("yaml"), false); err == nil {
		t.Error("WriteOutput() error = nil, want unknown format error")
	}
}

func TestEventLine(t *testing.T) {
	tests := []struct {
		name  string
		event event.Event
		want  string
	}{
		{
			name: "speaker and time",
			event: event.Event{
				Title:   "Algorithmic Persuasion",
				Date:    "2026-03-17",
				Time:    "16:15",
				Speaker: "Jane Doe",
			},
			want: "2026-03-17 16:15  Jane Doe: Algorithmic Persuasion",
		},
		{
			name: "title only",
			event: event.Event{
				Title: "Crypto Day at MIT",
				Date:  "2026-01-16",
			},
			want: "2026-01-16  Crypto Day at MIT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := eventLine(tt.event); got != tt.want {
				t.Errorf("eventLine() = %q, want %q", got, tt.want)
			}
		})
	}
}
