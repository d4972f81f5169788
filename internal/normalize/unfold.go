package normalize

import (
	"regexp"
	"strings"
)

var foldPattern = regexp.MustCompile(`\r?\n `)

// Unfold reverses RFC 5545 line folding and text escaping: a CRLF (or
// bare LF) followed by a space is a continuation, and commas,
// semicolons, newlines and backslashes arrive escaped inside property
// values.
func Unfold(s string) string {
	s = foldPattern.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, `\n`, "\n")
	s = strings.ReplaceAll(s, `\,`, ",")
	s = strings.ReplaceAll(s, `\;`, ";")
	s = strings.ReplaceAll(s, `\\`, `\`)
	return strings.TrimSpace(s)
}
