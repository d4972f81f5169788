// Package source provides the adapters that extract seminar announcements
// from each Boston-area listing.
//
// Every origin publishes in its own convention: an iCalendar feed, a
// WordPress RSS feed, CSAIL event cards, heading-delimited pages, semester
// schedule tables, and a plain-text Google Doc. One adapter type covers each
// convention and implements the Source interface, producing normalized
// Observations that the assembler turns into canonical events. Adapters skip
// what they cannot parse; a source only fails as a whole when its document
// cannot be retrieved.
package source
