package main

import (
	"fmt"
	"os"

	"github.com/bostontheory/events/internal/calendar"
	"github.com/bostontheory/events/internal/event"
)

func main() {
	// Create sample events
	events := []event.Event{
		{
			Title:       "Algorithmic Persuasion",
			Date:        "2026-03-17",
			Time:        "16:15",
			Speaker:     "Jane Doe",
			Affiliation: "Cornell University",
			Location:    "MIT 32-G449",
			Series:      "MIT Theory of Computation Colloquium",
			SeriesURL:   "https://theory.csail.mit.edu/toc",
			URL:         "https://www.csail.mit.edu/event/algorithmic-persuasion",
		},
		{
			Title:     "Crypto Day at MIT",
			Date:      "2026-01-16",
			Location:  "MIT",
			Series:    "Charles River Crypto Day",
			SeriesURL: "https://bostoncryptoday.wordpress.com/",
		},
	}

	// Generate .ics file
	icsContent := calendar.Encode(events)

	// Write to file (owner read/write only for security)
	filename := "test-theory-events.ics"
	if err := os.WriteFile(filename, []byte(icsContent), 0600); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Generated calendar file: %s\n\n", filename)
	fmt.Println("Test it by:")
	fmt.Println("1. Open the .ics file with your calendar app (double-click)")
	fmt.Println("2. Or import it into Google Calendar, Apple Calendar, or Outlook")
	fmt.Println("\nFile contents preview:")
	fmt.Println("---")
	fmt.Println(icsContent)
}
