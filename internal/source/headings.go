package source

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/bostontheory/events/internal/config"
	"github.com/bostontheory/events/internal/event"
	"github.com/bostontheory/events/internal/fetch"
	"github.com/bostontheory/events/internal/normalize"
)

const (
	mitCISURL   = "https://cis.csail.mit.edu/"
	mlCryptoURL = "https://mlcrypto.github.io/seminar/index.html"
)

// Headings extracts observations from pages where each seminar is
// introduced by an h3 heading (the talk title) followed by sibling
// lines carrying the speaker and the date. With semesters enabled,
// h2 headings ("Fall 2025") supply the year for yearless dates and
// whole semesters outside the look-back window are skipped before
// their talks are parsed.
type Headings struct {
	name      string
	profile   Profile
	fetcher   fetch.Fetcher
	url       string
	semesters bool
	now       time.Time
	window    int
}

// NewMITCIS returns the MIT Cryptography and Information Security
// seminar source, a semester-organized page.
func NewMITCIS(f fetch.Fetcher, cfg config.Config, now time.Time) *Headings {
	return &Headings{
		name: "mit_cis",
		profile: Profile{
			Series:          "MIT CIS Seminar",
			SeriesURL:       mitCISURL,
			DefaultLocation: "MIT 32-G882",
			DefaultTime:     "10:30",
		},
		fetcher:   f,
		url:       mitCISURL,
		semesters: true,
		now:       now,
		window:    cfg.WindowYears,
	}
}

// NewMLCrypto returns the ML+Cryptography seminar source. The page
// writes full dates on every talk, so no semester context is needed.
func NewMLCrypto(f fetch.Fetcher) *Headings {
	return &Headings{
		name: "mit_mlcrypto",
		profile: Profile{
			Series:          "ML+Cryptography Seminar",
			SeriesURL:       mlCryptoURL,
			DefaultLocation: "MIT",
		},
		fetcher: f,
		url:     mlCryptoURL,
	}
}

func (h *Headings) Name() string     { return h.name }
func (h *Headings) Profile() Profile { return h.profile }

func (h *Headings) Extract(ctx context.Context) ([]Observation, error) {
	body, err := h.fetcher.Fetch(ctx, h.url)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	var observations []Observation
	year := h.now.Year()
	doc.Find("h2, h3").Each(func(_ int, sel *goquery.Selection) {
		if goquery.NodeName(sel) == "h2" {
			if h.semesters {
				if y, ok := normalize.YearIn(sel.Text()); ok {
					year = y
				}
			}
			return
		}
		if h.semesters && !event.YearWithinWindow(year, h.now, h.window) {
			return
		}
		obs, ok := h.observe(sel, year)
		if !ok {
			return
		}
		observations = append(observations, obs)
	})
	return observations, nil
}

func (h *Headings) observe(heading *goquery.Selection, year int) (Observation, bool) {
	title := strings.TrimSpace(heading.Text())
	if title == "" {
		return Observation{}, false
	}

	details := siblingTexts(heading, 2)

	obs := Observation{Title: title}
	if len(details) > 0 {
		obs.Speaker, obs.Affiliation = normalize.SplitSpeaker(details[0])
	}
	if len(details) > 1 {
		obs.Date = normalize.FullDate(details[1])
		if obs.Date == "" && h.semesters {
			obs.Date = normalize.MonthDay(details[1], year)
		}
	}
	if obs.Date == "" {
		return Observation{}, false
	}
	return obs, true
}

// siblingTexts collects up to max non-empty texts from the siblings
// following sel, stopping at the next heading.
func siblingTexts(sel *goquery.Selection, max int) []string {
	var texts []string
	sel.NextAll().EachWithBreak(func(_ int, sib *goquery.Selection) bool {
		name := goquery.NodeName(sib)
		if name == "h2" || name == "h3" {
			return false
		}
		if t := strings.TrimSpace(sib.Text()); t != "" {
			texts = append(texts, t)
		}
		return len(texts) < max
	})
	return texts
}
