package event

import "strings"

// Event is the canonical seminar record every source converges on. Date is
// ISO YYYY-MM-DD and Time is 24-hour HH:MM; both are empty when unknown.
// Series names the seminar venue ("MIT Theory of Computation Colloquium",
// "Charles River Crypto Day", ...) and participates in the identity key.
type Event struct {
	Title       string `json:"title" yaml:"title"`
	Date        string `json:"date" yaml:"date"`
	Time        string `json:"time,omitempty" yaml:"time,omitempty"`
	Speaker     string `json:"speaker,omitempty" yaml:"speaker,omitempty"`
	Affiliation string `json:"affiliation,omitempty" yaml:"affiliation,omitempty"`
	Location    string `json:"location,omitempty" yaml:"location,omitempty"`
	Series      string `json:"series" yaml:"series"`
	SeriesURL   string `json:"series_url,omitempty" yaml:"series_url,omitempty"`
	URL         string `json:"url,omitempty" yaml:"url,omitempty"`
}

// Key identifies an event across sources and across runs. Two records with
// the same date and series describe the same seminar.
type Key struct {
	Date   string
	Series string
}

// Key returns the identity key for e.
func (e Event) Key() Key {
	return Key{Date: e.Date, Series: e.Series}
}

// titleBonus is the extra completeness weight of a real talk title, so a
// record that knows the title beats one that only knows the speaker.
const titleBonus = 2

// Completeness scores how much usable detail a record carries. Each of
// title, speaker, location, time, affiliation, and url contributes one point
// when present and not a placeholder, and a real title contributes
// titleBonus more. Empty strings and TBA/TBD placeholders score nothing.
func (e Event) Completeness() int {
	score := 0
	for _, field := range []string{e.Title, e.Speaker, e.Location, e.Time, e.Affiliation, e.URL} {
		if field != "" && !Placeholder(field) {
			score++
		}
	}
	if e.Title != "" && !Placeholder(e.Title) && !strings.Contains(e.Title, "TBD") {
		score += titleBonus
	}
	return score
}

// Placeholder reports whether s is one of the stand-in values sources
// publish before details are announced.
func Placeholder(s string) bool {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TBA", "TBD":
		return true
	}
	return false
}

// Valid reports whether e carries the two fields the catalog cannot do
// without. Candidates failing this gate are dropped by Merge.
func (e Event) Valid() bool {
	return e.Title != "" && e.Date != ""
}
