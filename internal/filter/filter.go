// Package filter narrows catalog listings for display.
//
// A Filter combines independent criteria; an event must satisfy all of
// them. Criteria are:
//   - Date ranges (from/to, inclusive)
//   - Series names (substring matching, case-insensitive)
//   - Speakers (substring matching, case-insensitive)
//   - Upcoming only (today or later)
//
// Example usage:
//
//	// Everything MIT-hosted from here on
//	f := &filter.Filter{
//	    Series:       []string{"MIT"},
//	    UpcomingOnly: true,
//	}
//	listed := f.Apply(catalog)
package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/bostontheory/events/internal/event"
)

// Filter represents catalog filtering criteria
type Filter struct {
	// Date range filtering (inclusive on both ends)
	DateFrom *time.Time
	DateTo   *time.Time

	// Series name filtering (case-insensitive substring match)
	Series []string

	// Speaker filtering (case-insensitive substring match)
	Speakers []string

	// Keep only events dated today or later
	UpcomingOnly bool
}

// IsEmpty checks if the filter has any active criteria.
// Returns true if the filter would match all events.
func (f *Filter) IsEmpty() bool {
	return f.DateFrom == nil &&
		f.DateTo == nil &&
		len(f.Series) == 0 &&
		len(f.Speakers) == 0 &&
		!f.UpcomingOnly
}

// Matches checks if an event passes all active criteria. Records whose
// date does not parse pass the date criteria rather than silently
// disappearing from listings.
func (f *Filter) Matches(evt event.Event) bool {
	if f.IsEmpty() {
		return true
	}

	date := parseEventDate(evt.Date)

	if f.DateFrom != nil && date != nil && date.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && date != nil && date.After(*f.DateTo) {
		return false
	}

	if f.UpcomingOnly && date != nil {
		now := time.Now().UTC()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if date.Before(today) {
			return false
		}
	}

	if len(f.Series) > 0 && !containsFold(evt.Series, f.Series) {
		return false
	}
	if len(f.Speakers) > 0 && !containsFold(evt.Speaker, f.Speakers) {
		return false
	}

	return true
}

// Apply applies the filter to a list of events and returns only matching
// events. If the filter is empty, returns the original list unchanged.
func (f *Filter) Apply(events []event.Event) []event.Event {
	if f.IsEmpty() {
		return events
	}

	var filtered []event.Event
	for _, evt := range events {
		if f.Matches(evt) {
			filtered = append(filtered, evt)
		}
	}

	return filtered
}

// String returns a human-readable description of the active criteria.
// Returns "No active filters" if the filter is empty.
func (f *Filter) String() string {
	if f.IsEmpty() {
		return "No active filters"
	}

	var parts []string

	if f.DateFrom != nil {
		parts = append(parts, fmt.Sprintf("From: %s", f.DateFrom.Format("Jan 2, 2006")))
	}
	if f.DateTo != nil {
		parts = append(parts, fmt.Sprintf("To: %s", f.DateTo.Format("Jan 2, 2006")))
	}
	if len(f.Series) > 0 {
		parts = append(parts, fmt.Sprintf("Series: %s", strings.Join(f.Series, ", ")))
	}
	if len(f.Speakers) > 0 {
		parts = append(parts, fmt.Sprintf("Speakers: %s", strings.Join(f.Speakers, ", ")))
	}
	if f.UpcomingOnly {
		parts = append(parts, "Upcoming only")
	}

	return strings.Join(parts, " | ")
}

// containsFold reports whether value contains any of the needles,
// ignoring case.
func containsFold(value string, needles []string) bool {
	v := strings.ToLower(value)
	for _, needle := range needles {
		if strings.Contains(v, strings.ToLower(needle)) {
			return true
		}
	}
	return false
}

// parseEventDate parses a canonical catalog date.
// Returns nil if parsing fails.
func parseEventDate(date string) *time.Time {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil
	}
	return &t
}
