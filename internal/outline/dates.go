package outline

import (
	"regexp"
	"strings"
)

// A date token is "18 JUNE 2013": day, month word, four-digit year.
var (
	dateToken  = regexp.MustCompile(`(?i)\b\d{1,2} [a-z]{3,10} \d{4}\b`)
	dateLine   = regexp.MustCompile(`(?i)^\d{1,2} [a-z]{3,10} \d{4}$`)
	footerLine = regexp.MustCompile(`^Page \d+ of \d+`)
)

// isDateLine reports whether text is exactly one date token.
func isDateLine(text string) bool {
	return dateLine.MatchString(strings.TrimSpace(text))
}

// isMostlyDates reports whether at least two date tokens make up 90% or more
// of the words in text, e.g. a revision history row merged into one heading.
func isMostlyDates(text string) bool {
	words := strings.Fields(text)
	if len(words) == 0 {
		return false
	}
	matches := dateToken.FindAllString(strings.Join(words, " "), -1)
	if len(matches) < 2 {
		return false
	}
	return float64(len(matches)*3)/float64(len(words)) >= 0.9
}

func isFooter(text string) bool {
	return footerLine.MatchString(strings.TrimSpace(text))
}
