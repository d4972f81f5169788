package source

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	ics "github.com/arran4/golang-ical"

	"github.com/bostontheory/events/internal/config"
	"github.com/bostontheory/events/internal/fetch"
	"github.com/bostontheory/events/internal/normalize"
)

const buCalendarURL = "https://calendar.google.com/calendar/ical/" +
	"hmaqnavg6bjvd84ib0qjk07hcg@group.calendar.google.com/public/basic.ics"

// bioLink matches the linked speaker name in the BU description markup.
var bioLink = regexp.MustCompile(`<b>Bio:</b>\s*<a[^>]*>([^<]+)</a>`)

// Calendar extracts observations from an iCalendar feed. SUMMARY holds
// "Speaker: Title" or "Title (Speaker)", LOCATION the room, and when the
// summary names no speaker the DESCRIPTION markup may carry a linked bio
// to fall back on. Events without a time-of-day DTSTART are skipped.
type Calendar struct {
	name        string
	profile     Profile
	fetcher     fetch.Fetcher
	url         string
	offsetHours int
	maxNameLen  int
}

// NewBUTheory returns the BU Algorithms and Theory Seminar source, a
// public Google Calendar feed.
func NewBUTheory(f fetch.Fetcher, cfg config.Config) *Calendar {
	return &Calendar{
		name: "bu",
		profile: Profile{
			Series:         "BU Theory Seminar",
			SeriesURL:      "https://www.bu.edu/cs/research-groups/theory/algorithms-and-theory-seminar/",
			LocationPrefix: "BU",
		},
		fetcher:     f,
		url:         buCalendarURL,
		offsetHours: cfg.UTCOffsetHours,
		maxNameLen:  cfg.MaxNameLen,
	}
}

func (c *Calendar) Name() string     { return c.name }
func (c *Calendar) Profile() Profile { return c.profile }

func (c *Calendar) Extract(ctx context.Context) ([]Observation, error) {
	body, err := c.fetcher.Fetch(ctx, c.url)
	if err != nil {
		return nil, err
	}

	cal, err := ics.ParseCalendar(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing calendar: %w", err)
	}

	var observations []Observation
	for _, ve := range cal.Events() {
		obs, ok := c.observe(ve)
		if !ok {
			continue
		}
		observations = append(observations, obs)
	}
	return observations, nil
}

func (c *Calendar) observe(ve *ics.VEvent) (Observation, bool) {
	var obs Observation

	obs.Date, obs.Time = normalize.StampToLocal(propValue(ve, ics.ComponentPropertyDtStart), c.offsetHours)
	if obs.Date == "" {
		return Observation{}, false
	}

	if summary := normalize.Unfold(propValue(ve, ics.ComponentPropertySummary)); summary != "" {
		obs.Title, obs.Speaker = normalize.SplitSummary(summary, c.maxNameLen)
	}

	obs.Location = normalize.Unfold(propValue(ve, ics.ComponentPropertyLocation))

	if obs.Speaker == "" {
		desc := normalize.Unfold(propValue(ve, ics.ComponentPropertyDescription))
		if m := bioLink.FindStringSubmatch(desc); m != nil {
			obs.Speaker = strings.TrimSpace(m[1])
		}
	}

	return obs, true
}

func propValue(ve *ics.VEvent, prop ics.ComponentProperty) string {
	if p := ve.GetProperty(prop); p != nil {
		return p.Value
	}
	return ""
}
