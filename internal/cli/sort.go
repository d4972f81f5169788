package cli

import (
	"sort"
	"strings"

	"github.com/bostontheory/events/internal/event"
)

// SortOrder represents the available sorting options
type SortOrder string

const (
	SortByDate   SortOrder = "date"
	SortBySeries SortOrder = "series"
	SortByTitle  SortOrder = "title"
)

// sortEvents sorts a slice of events based on the specified sort order
func sortEvents(events []event.Event, sortOrder SortOrder) {
	switch sortOrder {
	case SortByDate:
		sort.Slice(events, func(i, j int) bool {
			return compareByDate(events[i], events[j])
		})
	case SortBySeries:
		sort.Slice(events, func(i, j int) bool {
			if events[i].Series != events[j].Series {
				return events[i].Series < events[j].Series
			}
			// If series are equal, sort by date
			return compareByDate(events[i], events[j])
		})
	case SortByTitle:
		sort.Slice(events, func(i, j int) bool {
			if events[i].Title != events[j].Title {
				return strings.ToLower(events[i].Title) < strings.ToLower(events[j].Title)
			}
			// If titles are equal, sort by date
			return compareByDate(events[i], events[j])
		})
	}
}

// compareByDate compares two events by their date
// Returns true if event i should come before event j
func compareByDate(i, j event.Event) bool {
	// ISO dates compare chronologically as strings; undated events go last
	if i.Date != j.Date {
		if i.Date == "" {
			return false
		}
		if j.Date == "" {
			return true
		}
		return i.Date < j.Date
	}

	// If dates are equal, sort by series then title
	if i.Series != j.Series {
		return i.Series < j.Series
	}
	return strings.ToLower(i.Title) < strings.ToLower(j.Title)
}
