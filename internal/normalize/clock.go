package normalize

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	clockPattern    = regexp.MustCompile(`(\d{1,2}):(\d{2})`)
	meridiemPattern = regexp.MustCompile(`(?i)([ap])\.?m\.?\b`)
)

// Clock extracts the first wall-clock time from free text and returns
// it as 24-hour "HH:MM". Listings write times every way imaginable
// ("3:45-5:00 p.m.", "10:30am", "Time: 4:00 PM"); the first hour:minute
// pair wins and a meridiem anywhere after it adjusts the hour. Returns
// "" when no plausible time is present.
func Clock(s string) string {
	m := clockPattern.FindStringSubmatchIndex(s)
	if m == nil {
		return ""
	}
	hour, _ := strconv.Atoi(s[m[2]:m[3]])
	minute, _ := strconv.Atoi(s[m[4]:m[5]])
	if hour > 23 || minute > 59 {
		return ""
	}

	// A range like "3:45-5:00 p.m." carries the meridiem after the
	// second time, so the rest of the string decides, not just the
	// token adjacent to the match.
	if mer := meridiemPattern.FindStringSubmatch(s[m[1]:]); mer != nil {
		switch mer[1][0] | 0x20 {
		case 'p':
			if hour < 12 {
				hour += 12
			}
		case 'a':
			if hour == 12 {
				hour = 0
			}
		}
	}
	return fmt.Sprintf("%02d:%02d", hour, minute)
}
