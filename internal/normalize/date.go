// Package normalize converts the raw text fragments pulled off seminar
// listings into canonical field values: ISO dates, 24-hour clock times,
// speaker/affiliation pairs. Sources write dates a dozen different ways
// ("November 18th, 2025", "Nov. 14", "Fall 2025", "20240923T163000Z")
// and these helpers fold them all into one shape.
//
// Every function is pure and returns its zero value on unparseable
// input; callers decide whether a missing value is fatal.
package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var months = map[string]time.Month{
	"jan": time.January,
	"feb": time.February,
	"mar": time.March,
	"apr": time.April,
	"may": time.May,
	"jun": time.June,
	"jul": time.July,
	"aug": time.August,
	"sep": time.September,
	"oct": time.October,
	"nov": time.November,
	"dec": time.December,
}

var monthNames = map[time.Month]string{
	time.January:   "January",
	time.February:  "February",
	time.March:     "March",
	time.April:     "April",
	time.May:       "May",
	time.June:      "June",
	time.July:      "July",
	time.August:    "August",
	time.September: "September",
	time.October:   "October",
	time.November:  "November",
	time.December:  "December",
}

var (
	abbrevPattern   = regexp.MustCompile(`\b(Jan|Feb|Mar|Apr|Jun|Jul|Aug|Sep|Sept|Oct|Nov|Dec)\b\.?`)
	ordinalPattern  = regexp.MustCompile(`(\d+)(st|nd|rd|th)\b`)
	monthDayPattern = regexp.MustCompile(`^([A-Za-z]+)\.?\s+(\d{1,2})`)
	semesterPattern = regexp.MustCompile(`(?i)\b(spring|fall)\b\s*,?\s*(\d{4})`)
	yearPattern     = regexp.MustCompile(`\b(\d{4})\b`)
)

// expandMonth rewrites abbreviated month names ("Nov", "Nov.", "Sept")
// to their full form so a single time.Parse layout covers them.
func expandMonth(s string) string {
	return abbrevPattern.ReplaceAllStringFunc(s, func(m string) string {
		key := strings.ToLower(strings.TrimSuffix(m, "."))[:3]
		if month, ok := months[key]; ok {
			return monthNames[month]
		}
		return m
	})
}

// FullDate parses a human-written date carrying an explicit year
// ("September 13, 2024", "Nov. 14 2025", "November 18th, 2025") into
// ISO "YYYY-MM-DD". Placeholder text and dates without a year yield "".
func FullDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || strings.Contains(strings.ToUpper(s), "TBD") {
		return ""
	}
	s = ordinalPattern.ReplaceAllString(s, "$1")
	s = expandMonth(s)
	for _, layout := range []string{"January 2, 2006", "January 2 2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}

// MonthDay parses a yearless "Nov 14" / "November 14" fragment against
// a caller-supplied year. Returns "" when the month is unrecognized or
// the day does not exist in that month.
func MonthDay(s string, year int) string {
	m := monthDayPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return ""
	}
	month := MonthOf(m[1])
	if month == 0 {
		return ""
	}
	day, err := strconv.Atoi(m[2])
	if err != nil {
		return ""
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Month() != month || t.Day() != day {
		return ""
	}
	return t.Format("2006-01-02")
}

// MonthOf maps a month word in any common form ("Nov", "Nov.", "november")
// to its time.Month, or 0 when unrecognized.
func MonthOf(s string) time.Month {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0
	}
	w := strings.ToLower(strings.TrimRight(fields[0], "."))
	if len(w) < 3 {
		return 0
	}
	return months[w[:3]]
}

// InferYear assigns a year to a yearless event date based on when the
// announcement was published: a month at or after the publication month
// is this year, an earlier month has wrapped into the next.
func InferYear(eventMonth time.Month, published time.Time) int {
	if eventMonth >= published.Month() {
		return published.Year()
	}
	return published.Year() + 1
}

// Semester recognizes "Fall 2025" / "Spring, 2026" section headings.
func Semester(s string) (season string, year int, ok bool) {
	m := semesterPattern.FindStringSubmatch(s)
	if m == nil {
		return "", 0, false
	}
	season = strings.ToUpper(m[1][:1]) + strings.ToLower(m[1][1:])
	year, _ = strconv.Atoi(m[2])
	return season, year, true
}

// YearIn finds the first four-digit year in a heading.
func YearIn(s string) (int, bool) {
	m := yearPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	year, _ := strconv.Atoi(m[1])
	return year, true
}

// StampToLocal converts an iCalendar UTC timestamp ("20240923T163000Z")
// to a local date and clock using a fixed hour offset. Date-only stamps
// are rejected; the caller needs the time of day to be meaningful. The
// fixed offset does not track daylight saving transitions.
func StampToLocal(stamp string, offsetHours int) (date, clock string) {
	stamp = strings.TrimSuffix(strings.TrimSpace(stamp), "Z")
	t, err := time.Parse("20060102T150405", stamp)
	if err != nil {
		return "", ""
	}
	t = t.Add(time.Duration(offsetHours) * time.Hour)
	return t.Format("2006-01-02"), t.Format("15:04")
}

// DateTime splits a machine-formatted "2026-03-17 16:15:00" stamp into
// ISO date and HH:MM clock. Inputs that open with a valid ISO date but
// carry no usable time come back date-only; anything else is empty.
func DateTime(s string) (date, clock string) {
	s = strings.TrimSpace(s)
	datePart, timePart, found := strings.Cut(s, " ")
	if !found && len(s) >= 10 {
		datePart = s[:10]
	}
	if _, err := time.Parse("2006-01-02", datePart); err != nil {
		return "", ""
	}
	if len(timePart) >= 5 {
		if _, err := time.Parse("15:04", timePart[:5]); err == nil {
			return datePart, timePart[:5]
		}
	}
	return datePart, ""
}
