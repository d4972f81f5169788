package filter_test

import (
	"strings"
	"testing"
	"time"

	"github.com/bostontheory/events/internal/event"
	"github.com/bostontheory/events/internal/filter"
)

// day formats a parsed range endpoint, shifted by days, as a catalog
// date. Building events from the parsed range keeps the test stable
// whatever year ParseDateRange infers.
func day(anchor *time.Time, days int) string {
	return anchor.AddDate(0, 0, days).Format("2006-01-02")
}

// TestIntegration demonstrates the full parse-then-filter workflow
func TestIntegration(t *testing.T) {
	t.Run("Filter by parsed date range", func(t *testing.T) {
		from, to, err := filter.ParseDateRange("March 1-20")
		if err != nil {
			t.Fatalf("ParseDateRange failed: %v", err)
		}

		events := []event.Event{
			{Title: "Opening Talk", Date: day(from, 0), Series: "MIT Theory of Computation"},
			{Title: "Mid-Range Talk", Date: day(from, 9), Series: "Harvard Theory Seminar"},
			{Title: "Late Talk", Date: day(to, 5), Series: "MIT Theory of Computation"},
		}

		f := &filter.Filter{DateFrom: from, DateTo: to}
		results := f.Apply(events)

		if len(results) != 2 {
			t.Fatalf("Expected 2 events, got %d", len(results))
		}
		if results[0].Title != "Opening Talk" || results[1].Title != "Mid-Range Talk" {
			t.Errorf("unexpected events in range: %+v", results)
		}
	})

	t.Run("Whole month includes both endpoints", func(t *testing.T) {
		from, to, err := filter.ParseDateRange("March")
		if err != nil {
			t.Fatalf("ParseDateRange failed: %v", err)
		}

		events := []event.Event{
			{Title: "First Day", Date: day(from, 0), Series: "S"},
			{Title: "Last Day", Date: to.Format("2006-01-02"), Series: "S"},
			{Title: "Next Month", Date: day(to, 1), Series: "S"},
		}

		f := &filter.Filter{DateFrom: from, DateTo: to}
		results := f.Apply(events)

		if len(results) != 2 {
			t.Fatalf("Expected 2 events, got %d", len(results))
		}
		if results[0].Title != "First Day" || results[1].Title != "Last Day" {
			t.Errorf("unexpected events in month: %+v", results)
		}
	})

	t.Run("Combine range and series", func(t *testing.T) {
		from, to, err := filter.ParseDateRange("March")
		if err != nil {
			t.Fatalf("ParseDateRange failed: %v", err)
		}

		events := []event.Event{
			{Title: "MIT in March", Date: day(from, 10), Series: "MIT CIS Seminar"},
			{Title: "Harvard in March", Date: day(from, 12), Series: "Harvard Theory Seminar"},
			{Title: "MIT too late", Date: day(to, 3), Series: "MIT CIS Seminar"},
		}

		f := &filter.Filter{DateFrom: from, DateTo: to, Series: []string{"MIT"}}
		results := f.Apply(events)

		if len(results) != 1 {
			t.Fatalf("Expected 1 event, got %d", len(results))
		}
		if results[0].Title != "MIT in March" {
			t.Errorf("Expected the March MIT talk, got %+v", results[0])
		}
	})

	t.Run("Filter string representation", func(t *testing.T) {
		from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

		f := &filter.Filter{
			DateFrom:     &from,
			DateTo:       &to,
			Series:       []string{"MIT Theory of Computation"},
			UpcomingOnly: true,
		}

		str := f.String()
		if str == "No active filters" {
			t.Error("Filter should not be empty")
		}

		expectedParts := []string{"Mar 1", "Mar 31", "MIT Theory of Computation", "Upcoming"}
		for _, part := range expectedParts {
			if !strings.Contains(str, part) {
				t.Errorf("Filter string missing: %s. Got: %s", part, str)
			}
		}
	})
}

// TestEmptyFilterBehavior verifies that empty filters pass all events through
func TestEmptyFilterBehavior(t *testing.T) {
	events := []event.Event{
		{Title: "Event 1", Date: "2025-01-06", Series: "A"},
		{Title: "Event 2", Date: "2025-01-13", Series: "B"},
		{Title: "Event 3", Date: "2025-01-20", Series: "C"},
	}

	f := &filter.Filter{}

	if !f.IsEmpty() {
		t.Error("Zero-value filter should be empty")
	}

	results := f.Apply(events)
	if len(results) != len(events) {
		t.Errorf("Empty filter should pass all events. Expected %d, got %d", len(events), len(results))
	}
}
