package normalize

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	trailingParen  = regexp.MustCompile(`^(.+?)\s*\((.+)\)\s*$`)
	speakerMention = regexp.MustCompile(`([A-Z][a-z]+ [A-Z][a-z]+(?:-[A-Z][a-z]+)?)\s*\(([^)]+)\)`)
)

const bracketChars = "()[]{}"

// SplitSpeaker splits "Jane Q. Public (MIT)" into the name and the
// affiliation. Text without a trailing parenthetical comes back whole
// with an empty affiliation.
func SplitSpeaker(s string) (speaker, affiliation string) {
	s = strings.TrimSpace(s)
	if m := trailingParen.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}
	return s, ""
}

// SplitSummary teases a speaker out of a one-line event summary.
// Two shapes occur in the wild: "Speaker Name: Talk Title" and
// "Talk Title (Speaker Name)". The colon form only counts when the
// left side is short enough to be a person's name (maxNameLen) and
// carries no brackets, otherwise the colon belongs to the title.
func SplitSummary(summary string, maxNameLen int) (title, speaker string) {
	summary = strings.TrimSpace(summary)
	if left, right, ok := strings.Cut(summary, ":"); ok {
		left = strings.TrimSpace(left)
		if len(left) < maxNameLen && !strings.ContainsAny(left, bracketChars) {
			return strings.TrimSpace(right), left
		}
	}
	if m := trailingParen.FindStringSubmatch(summary); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}
	return summary, ""
}

// Speakers collects capitalized First Last names that are followed by
// a parenthetical, the shape speaker lines take in workshop schedules.
// Entries matching the denylist (room names, catering slots) are
// skipped and repeat mentions are reported once.
func Speakers(text string, denylist []string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, m := range speakerMention.FindAllStringSubmatch(text, -1) {
		name := m[1]
		if seen[name] || denied(name, denylist) {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

func denied(name string, denylist []string) bool {
	for _, d := range denylist {
		if strings.EqualFold(name, d) {
			return true
		}
	}
	return false
}

// SpeakerSummary renders a speaker list for a single display field,
// truncating past max: "A, B, C + 2 more".
func SpeakerSummary(names []string, max int) string {
	if len(names) <= max {
		return strings.Join(names, ", ")
	}
	return fmt.Sprintf("%s + %d more", strings.Join(names[:max], ", "), len(names)-max)
}
