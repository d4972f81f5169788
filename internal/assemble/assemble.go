// Package assemble turns the partial observations extracted from a
// seminar listing into complete catalog events. Each source carries a
// profile naming its series and the defaults for fields the listing
// leaves out; observations still missing a title or date after
// assembly are dropped.
package assemble

import (
	"strings"

	"github.com/bostontheory/events/internal/event"
	"github.com/bostontheory/events/internal/source"
)

// Events assembles one source's observations under its profile.
func Events(p source.Profile, observations []source.Observation) []event.Event {
	events := make([]event.Event, 0, len(observations))
	for _, obs := range observations {
		if obs.Title == "" || obs.Date == "" {
			continue
		}

		e := event.Event{
			Title:       obs.Title,
			Date:        obs.Date,
			Time:        obs.Time,
			Speaker:     obs.Speaker,
			Affiliation: obs.Affiliation,
			Location:    obs.Location,
			Series:      p.Series,
			SeriesURL:   p.SeriesURL,
			URL:         obs.URL,
		}
		if e.Time == "" {
			e.Time = p.DefaultTime
		}
		if e.Location == "" {
			e.Location = p.DefaultLocation
		}
		e.Location = prefixed(p.LocationPrefix, e.Location)

		events = append(events, e)
	}
	return events
}

// prefixed prepends the institution tag to a room unless the room
// already starts with it. Defaults like "MIT 32-G449" pass through
// unchanged.
func prefixed(prefix, location string) string {
	if prefix == "" || location == "" {
		return location
	}
	l, p := strings.ToLower(location), strings.ToLower(prefix)
	if l == p || strings.HasPrefix(l, p+" ") {
		return location
	}
	return prefix + " " + location
}
