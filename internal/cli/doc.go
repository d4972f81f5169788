// Package cli implements the command-line interface for theory-events.
//
// The cli package provides the Cobra-based CLI with subcommands for scraping
// the configured seminar sources, merging scraped and manual events into the
// catalog, listing the catalog with filters and sorting (by date/series/title),
// and exporting it as an iCalendar feed. It coordinates the source, storage,
// and event packages and reports newly published seminars through exit code 2.
package cli
