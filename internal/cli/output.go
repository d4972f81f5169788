package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/bostontheory/events/internal/event"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult contains data to be output
type OutputResult struct {
	GeneratedAt time.Time                `json:"generated_at"`
	Events      []event.Event            `json:"events"`
	EventCount  int                      `json:"event_count"`
	BySeries    map[string][]event.Event `json:"by_series,omitempty"`
	Stats       *event.MergeStats        `json:"merge_stats,omitempty"`
	ShowAll     bool                     `json:"show_all,omitempty"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs results as human-readable text
func writeText(w io.Writer, result *OutputResult, verbose bool) error {
	// Merge announcements flag each event as NEW; listings show everything
	eventLabel := "new"
	eventPrefix := "NEW"
	if result.ShowAll {
		eventLabel = "events"
		eventPrefix = ""
	}

	if result.EventCount == 0 {
		if result.ShowAll {
			fmt.Fprintln(w, "No events found.")
		} else {
			fmt.Fprintln(w, "No new seminars found.")
		}
		return nil
	}

	// If we have series grouping, show grouped output
	if len(result.BySeries) > 0 {
		names := make([]string, 0, len(result.BySeries))
		for name := range result.BySeries {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			events := result.BySeries[name]
			if len(events) == 0 {
				continue
			}

			fmt.Fprintf(w, "\n%s (%d %s):\n", name, len(events), eventLabel)
			for _, evt := range events {
				if eventPrefix != "" {
					fmt.Fprintf(w, "  %s: %s\n", eventPrefix, eventLine(evt))
				} else {
					fmt.Fprintf(w, "  %s\n", eventLine(evt))
				}
				writeDetails(w, evt, verbose, "       ")
			}
		}
		fmt.Fprintf(w, "\nTotal: %d %s across %d series\n", result.EventCount, eventLabel, len(result.BySeries))
	} else {
		// Flat list for filtered queries, series shown inline
		for _, evt := range result.Events {
			if eventPrefix != "" {
				fmt.Fprintf(w, "%s (%s): %s\n", eventPrefix, evt.Series, eventLine(evt))
			} else {
				fmt.Fprintf(w, "%s: %s\n", evt.Series, eventLine(evt))
			}
			writeDetails(w, evt, verbose, "     ")
		}
		fmt.Fprintf(w, "\nTotal: %d %s\n", result.EventCount, eventLabel)
	}

	return nil
}

// eventLine renders one event as a single row of text
func eventLine(evt event.Event) string {
	when := evt.Date
	if evt.Time != "" {
		when += " " + evt.Time
	}
	what := evt.Title
	if evt.Speaker != "" {
		what = evt.Speaker + ": " + evt.Title
	}
	return when + "  " + what
}

// writeDetails prints the optional fields under an event line in verbose mode
func writeDetails(w io.Writer, evt event.Event, verbose bool, indent string) {
	if !verbose {
		return
	}
	if evt.Affiliation != "" {
		fmt.Fprintf(w, "%sAffiliation: %s\n", indent, evt.Affiliation)
	}
	if evt.Location != "" {
		fmt.Fprintf(w, "%sLocation: %s\n", indent, evt.Location)
	}
	if evt.URL != "" {
		fmt.Fprintf(w, "%sURL: %s\n", indent, evt.URL)
	}
}
