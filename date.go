package provscan

import "regexp"

// dateToken matches the date shapes profile pages actually use: ISO dates,
// slash dates, and written-out "Month D, YYYY" dates.
const dateToken = `(\d{4}-\d{2}-\d{2}` +
	`|\d{1,2}/\d{1,2}/\d{4}` +
	`|(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},?\s+\d{4})`

// DateTokenPattern matches a bare date token anywhere in text.
var DateTokenPattern = regexp.MustCompile(`(?i)` + dateToken)

// DatePattern pairs a modification label with the compiled pattern that
// extracts the date following it.
type DatePattern struct {
	Label   string
	Pattern *regexp.Regexp
}

// DatePatterns is the ordered list of labeled date patterns, evaluated in
// sequence with first match winning. "last modified" outranks the bare
// "modified" so the more specific label is never shadowed by the looser one.
var DatePatterns = []DatePattern{
	{Label: "last modified", Pattern: labeledDatePattern(`last\s+modified`)},
	{Label: "last updated", Pattern: labeledDatePattern(`last\s+updated`)},
	{Label: "modified", Pattern: labeledDatePattern(`modified`)},
	{Label: "updated", Pattern: labeledDatePattern(`updated`)},
}

// labeledDatePattern compiles a case-insensitive pattern matching the label,
// optional punctuation, and a capturing date token.
func labeledDatePattern(label string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + label + `\s*[:,]?\s*` + dateToken)
}

// FindDateToken returns the first date-shaped token in text, or "" if none.
func FindDateToken(text string) string {
	return DateTokenPattern.FindString(text)
}

// FindLabeledDate scans text against DatePatterns in priority order and
// returns the date following the first label that matches. Returns "" when
// no pattern matches, which is not an error.
func FindLabeledDate(text string) string {
	for _, dp := range DatePatterns {
		if m := dp.Pattern.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}
	return ""
}
