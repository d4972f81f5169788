package event

import (
	"strconv"
	"time"
)

// YearWithinWindow reports whether year falls inside the look-back window:
// no older than years before now's year. Future years always pass; stale
// announcements are the problem, not early ones.
func YearWithinWindow(year int, now time.Time, years int) bool {
	return year >= now.Year()-years
}

// WithinWindow reports whether an ISO YYYY-MM-DD date falls inside the
// look-back window. Dates too short or malformed to carry a year fail
// closed.
func WithinWindow(date string, now time.Time, years int) bool {
	if len(date) < 4 {
		return false
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return false
	}
	return YearWithinWindow(year, now, years)
}

// Recent filters events to those whose date is inside the look-back window.
func Recent(events []Event, now time.Time, years int) []Event {
	kept := make([]Event, 0, len(events))
	for _, e := range events {
		if WithinWindow(e.Date, now, years) {
			kept = append(kept, e)
		}
	}
	return kept
}
