package source

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/bostontheory/events/internal/config"
	"github.com/bostontheory/events/internal/fetch"
	"github.com/bostontheory/events/internal/normalize"
)

const cryptoDayFeedURL = "https://bostoncryptoday.wordpress.com/feed/"

var (
	// "Friday, November 14 at MIT" - the weekday anchors the date phrase.
	feedDatePhrase = regexp.MustCompile(`(?i)(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday),?\s+` +
		`((?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{1,2})`)
	feedLocation = regexp.MustCompile(`(?i)(?:at|@)\s+(.+)$`)
)

// Feed extracts observations from a WordPress RSS feed announcing
// whole-day workshops. The item title names the weekday, date and host
// ("Friday, November 14 at MIT"); the year is inferred from the item's
// publication date and the speaker list is harvested from the
// description body.
type Feed struct {
	name       string
	profile    Profile
	fetcher    fetch.Fetcher
	url        string
	startTime  string
	denylist   []string
	speakerMax int
}

// NewCryptoDay returns the Charles River Crypto Day source.
func NewCryptoDay(f fetch.Fetcher, cfg config.Config) *Feed {
	return &Feed{
		name: "crypto_day",
		profile: Profile{
			Series:    "Charles River Crypto Day",
			SeriesURL: "https://bostoncryptoday.wordpress.com/",
		},
		fetcher:    f,
		url:        cryptoDayFeedURL,
		startTime:  "09:30",
		denylist:   cfg.SpeakerDenylist,
		speakerMax: cfg.SpeakerMax,
	}
}

func (f *Feed) Name() string     { return f.name }
func (f *Feed) Profile() Profile { return f.profile }

func (f *Feed) Extract(ctx context.Context) ([]Observation, error) {
	body, err := f.fetcher.Fetch(ctx, f.url)
	if err != nil {
		return nil, err
	}

	feed, err := gofeed.NewParser().ParseString(body)
	if err != nil {
		return nil, fmt.Errorf("parsing feed: %w", err)
	}

	var observations []Observation
	for _, item := range feed.Items {
		obs, ok := f.observe(item)
		if !ok {
			continue
		}
		observations = append(observations, obs)
	}
	return observations, nil
}

func (f *Feed) observe(item *gofeed.Item) (Observation, bool) {
	if item.PublishedParsed == nil {
		return Observation{}, false
	}

	m := feedDatePhrase.FindStringSubmatch(item.Title)
	if m == nil {
		return Observation{}, false
	}
	phrase := m[1]

	year := normalize.InferYear(normalize.MonthOf(phrase), *item.PublishedParsed)
	date := normalize.MonthDay(phrase, year)
	if date == "" {
		return Observation{}, false
	}

	obs := Observation{
		Title: f.profile.Series,
		Date:  date,
		Time:  f.startTime,
		URL:   item.Link,
	}
	if obs.URL == "" {
		obs.URL = f.profile.SeriesURL
	}

	if lm := feedLocation.FindStringSubmatch(item.Title); lm != nil {
		obs.Location = strings.TrimSpace(lm[1])
	} else {
		obs.Location = "TBD"
	}

	if speakers := normalize.Speakers(item.Description, f.denylist); len(speakers) > 0 {
		obs.Speaker = normalize.SpeakerSummary(speakers, f.speakerMax)
	}

	return obs, true
}
