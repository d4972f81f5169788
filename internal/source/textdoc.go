package source

import (
	"context"
	"regexp"
	"strings"

	"github.com/bostontheory/events/internal/fetch"
	"github.com/bostontheory/events/internal/normalize"
)

const harvardDocURL = "https://docs.google.com/document/d/" +
	"1qBfsiK-NNe_dMIsShMSiJe5_Qsc2tmYJMSVzbsMw0RI/export?format=txt"

// docDate matches the full-date headings that delimit event blocks.
var docDate = regexp.MustCompile(`(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},?\s+\d{4}`)

// TextDoc extracts observations from a plain-text schedule document.
// Full dates ("September 13, 2024") open each event block; within a
// block, labeled lines ("Speaker:", "Title:", "Time:", "Location:")
// carry the fields, the first match per label winning. Blocks without
// a title become "TBA".
type TextDoc struct {
	name    string
	profile Profile
	fetcher fetch.Fetcher
	url     string
}

// NewHarvardTheory returns the Harvard Theory Seminar source, a Google
// Doc exported as plain text.
func NewHarvardTheory(f fetch.Fetcher) *TextDoc {
	return &TextDoc{
		name: "harvard",
		profile: Profile{
			Series:         "Harvard Theory Seminar",
			SeriesURL:      "https://toc.seas.harvard.edu/toc-seminar",
			LocationPrefix: "Harvard",
		},
		fetcher: f,
		url:     harvardDocURL,
	}
}

func (t *TextDoc) Name() string     { return t.name }
func (t *TextDoc) Profile() Profile { return t.profile }

func (t *TextDoc) Extract(ctx context.Context) ([]Observation, error) {
	body, err := t.fetcher.Fetch(ctx, t.url)
	if err != nil {
		return nil, err
	}

	var observations []Observation
	headings := docDate.FindAllStringIndex(body, -1)
	for i, loc := range headings {
		date := normalize.FullDate(body[loc[0]:loc[1]])
		if date == "" {
			continue
		}
		end := len(body)
		if i+1 < len(headings) {
			end = headings[i+1][0]
		}
		observations = append(observations, observeBlock(date, body[loc[1]:end]))
	}
	return observations, nil
}

func observeBlock(date, block string) Observation {
	obs := Observation{Date: date}

	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		label, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		value = strings.TrimSpace(value)
		switch {
		case hasLabel(label, "speaker") && obs.Speaker == "":
			obs.Speaker, obs.Affiliation = normalize.SplitSpeaker(value)
		case hasLabel(label, "title") && obs.Title == "":
			obs.Title = strings.Trim(value, `"'`)
		case hasLabel(label, "time") && obs.Time == "":
			obs.Time = normalize.Clock(value)
		case hasLabel(label, "location") && obs.Location == "":
			obs.Location = value
		}
	}

	if obs.Title == "" {
		obs.Title = "TBA"
	}
	return obs
}

func hasLabel(label, name string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(label)), name)
}
