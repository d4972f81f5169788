package calendar

import (
	"crypto/sha1"
	"fmt"
	"strings"
	"time"

	"github.com/bostontheory/events/internal/event"
)

// Seminars without a start time are placed at the common mid-day slot.
const defaultStart = "13:00"

// Encode renders events as one iCalendar document with a VEVENT per
// record. Times are written as floating local times: the catalog keeps
// Boston wall-clock times and carries no zone information. Events whose
// date cannot be parsed are left out of the calendar.
func Encode(events []event.Event) string {
	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//Boston Theory Events//theory-events//EN\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")

	stamp := time.Now().UTC().Format("20060102T150405Z")
	for _, evt := range events {
		writeEvent(&ics, evt, stamp)
	}

	ics.WriteString("END:VCALENDAR\r\n")
	return ics.String()
}

func writeEvent(ics *strings.Builder, evt event.Event, stamp string) {
	start, ok := startTime(evt)
	if !ok {
		return
	}
	end := start.Add(time.Hour)

	ics.WriteString("BEGIN:VEVENT\r\n")
	fmt.Fprintf(ics, "UID:%s\r\n", uid(evt))
	fmt.Fprintf(ics, "DTSTAMP:%s\r\n", stamp)
	fmt.Fprintf(ics, "DTSTART:%s\r\n", start.Format("20060102T150405"))
	fmt.Fprintf(ics, "DTEND:%s\r\n", end.Format("20060102T150405"))
	fmt.Fprintf(ics, "SUMMARY:%s\r\n", escapeICS(summary(evt)))

	if desc := description(evt); desc != "" {
		fmt.Fprintf(ics, "DESCRIPTION:%s\r\n", escapeICS(desc))
	}
	if evt.Location != "" {
		fmt.Fprintf(ics, "LOCATION:%s\r\n", escapeICS(evt.Location))
	}
	if link := evt.URL; link != "" {
		fmt.Fprintf(ics, "URL:%s\r\n", link)
	}

	ics.WriteString("STATUS:CONFIRMED\r\n")
	ics.WriteString("TRANSP:OPAQUE\r\n")
	ics.WriteString("END:VEVENT\r\n")
}

// uid derives a stable identifier from the identity key, so re-exports
// update events in place instead of duplicating them.
func uid(evt event.Event) string {
	sum := sha1.Sum([]byte(evt.Date + "|" + evt.Series))
	return fmt.Sprintf("%x@bostontheory.events", sum[:8])
}

func startTime(evt event.Event) (time.Time, bool) {
	clock := evt.Time
	if clock == "" {
		clock = defaultStart
	}
	t, err := time.Parse("2006-01-02 15:04", evt.Date+" "+clock)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func summary(evt event.Event) string {
	if evt.Speaker != "" && evt.Title != "" && !event.Placeholder(evt.Title) {
		return fmt.Sprintf("%s: %s", evt.Speaker, evt.Title)
	}
	if evt.Title != "" && !event.Placeholder(evt.Title) {
		return evt.Title
	}
	if evt.Speaker != "" {
		return fmt.Sprintf("%s: %s", evt.Speaker, evt.Series)
	}
	return evt.Series
}

func description(evt event.Event) string {
	var parts []string
	if evt.Series != "" {
		parts = append(parts, evt.Series)
	}
	if evt.Affiliation != "" {
		parts = append(parts, fmt.Sprintf("Speaker affiliation: %s", evt.Affiliation))
	}
	if evt.SeriesURL != "" {
		parts = append(parts, evt.SeriesURL)
	}
	return strings.Join(parts, "\n")
}

// escapeICS escapes special characters for iCalendar format
func escapeICS(s string) string {
	// Replace special characters according to RFC 5545
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
