// Package storage provides JSON-based persistence for the event pipeline.
//
// Each source writes its assembled events to scraped/<source>.json under
// the data directory; the merge step reads the union of those files and
// writes the deduplicated catalog to events.json. All files are indented
// JSON arrays in the canonical event schema, friendly to manual diffing.
// The default data directory is ~/.local/share/theory-events/.
package storage
