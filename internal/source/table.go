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

const northeasternURL = "https://theory.khoury.northeastern.edu/seminar.html"

// Table extracts observations from semester schedule tables. Each
// semester is an h2 heading ("Spring 2025") with a content div holding
// a table.schedule; the first cell of a row stacks date, time and room
// in <strong> tags and the second carries the speaker and talk title.
// Semesters outside the look-back window are skipped whole.
type Table struct {
	name    string
	profile Profile
	fetcher fetch.Fetcher
	url     string
	now     time.Time
	window  int
}

// NewNortheastern returns the Northeastern Theory Seminar source.
func NewNortheastern(f fetch.Fetcher, cfg config.Config, now time.Time) *Table {
	return &Table{
		name: "northeastern",
		profile: Profile{
			Series:         "Northeastern Theory Seminar",
			SeriesURL:      northeasternURL,
			LocationPrefix: "Northeastern",
		},
		fetcher: f,
		url:     northeasternURL,
		now:     now,
		window:  cfg.WindowYears,
	}
}

func (t *Table) Name() string     { return t.name }
func (t *Table) Profile() Profile { return t.profile }

func (t *Table) Extract(ctx context.Context) ([]Observation, error) {
	body, err := t.fetcher.Fetch(ctx, t.url)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	var observations []Observation
	doc.Find("h2").Each(func(_ int, h2 *goquery.Selection) {
		_, year, ok := normalize.Semester(h2.Text())
		if !ok || !event.YearWithinWindow(year, t.now, t.window) {
			return
		}

		section := semesterSection(doc, h2)
		if section == nil {
			return
		}

		section.Find("table.schedule tr").Each(func(_ int, row *goquery.Selection) {
			obs, ok := observeRow(row, year)
			if !ok {
				return
			}
			observations = append(observations, obs)
		})
	})
	return observations, nil
}

// semesterSection finds the content div belonging to a semester
// heading: a div whose id contains the heading text with spaces and
// commas removed ("Spring 2025" -> "Spring2025"), else the first div
// following the heading.
func semesterSection(doc *goquery.Document, h2 *goquery.Selection) *goquery.Selection {
	id := strings.ToLower(strings.NewReplacer(" ", "", ",", "").Replace(strings.TrimSpace(h2.Text())))

	var section *goquery.Selection
	doc.Find("div[id]").EachWithBreak(func(_ int, div *goquery.Selection) bool {
		divID, _ := div.Attr("id")
		if strings.Contains(strings.ToLower(divID), id) {
			section = div
			return false
		}
		return true
	})
	if section != nil {
		return section
	}

	if next := h2.NextAllFiltered("div").First(); next.Length() > 0 {
		return next
	}
	return nil
}

func observeRow(row *goquery.Selection, year int) (Observation, bool) {
	cells := row.Find("td")
	if cells.Length() < 2 {
		return Observation{}, false
	}

	var obs Observation

	meta := cells.Eq(0).Find("strong")
	if meta.Length() > 0 {
		obs.Date = normalize.MonthDay(meta.Eq(0).Text(), year)
	}
	if meta.Length() > 1 {
		obs.Time = normalize.Clock(meta.Eq(1).Text())
	}
	if meta.Length() > 2 {
		obs.Location = strings.TrimSpace(meta.Eq(2).Text())
	}

	content := cells.Eq(1)
	if first := content.Find("strong").First(); first.Length() > 0 {
		speaker := strings.TrimSpace(first.Text())
		if !strings.HasPrefix(speaker, "Abstract") && first.Find("talktitle").Length() == 0 {
			obs.Speaker = speaker
		}
	}

	obs.Title = strings.TrimSpace(content.Find("talktitle").First().Text())
	if obs.Title == "" {
		// Some rows write the title in a second <strong> instead.
		content.Find("strong").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			candidate := strings.TrimSpace(s.Text())
			if candidate != "" && candidate != obs.Speaker && !strings.HasPrefix(candidate, "Abstract") {
				obs.Title = candidate
				return false
			}
			return true
		})
	}

	if obs.Title == "" || obs.Date == "" {
		return Observation{}, false
	}
	return obs, true
}
