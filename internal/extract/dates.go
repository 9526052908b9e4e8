package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dateLayouts are tried in order when parsing a date string.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"January 2, 2006",
	"January 2 2006",
	"2 January 2006",
	"Jan 2, 2006",
	"02/01/2006",
}

var yearRe = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)

// Years outside this window are treated as noise (page ids, amounts).
const (
	minPlausibleYear = 1990
	maxPlausibleYear = 2030
)

// ParseDate extracts a calendar date from a string, trying known layouts
// first and falling back to a bare plausible year (mapped to January 1).
func ParseDate(text string) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, true
		}
	}

	if year := Year(text); year != 0 {
		return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), true
	}

	return time.Time{}, false
}

// Year extracts the first plausible 4-digit year from text, or 0.
func Year(text string) int {
	m := yearRe.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	year, err := strconv.Atoi(m[1])
	if err != nil || year < minPlausibleYear || year > maxPlausibleYear {
		return 0
	}
	return year
}

var foundedRe = regexp.MustCompile(`(?i)\b(?:founded|launched|established)(?:\s+\w+){0,4}\s+in\s+(?:[A-Za-z]+\s+)?(19\d{2}|20\d{2})\b`)

// FoundedYear extracts a founding year from an explicit phrase such as
// "founded in 2019" or "launched by X in late 2020". Bare years
// elsewhere in the text are publication dates more often than founding
// dates, so they are never used.
func FoundedYear(text string) int {
	m := foundedRe.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	year, err := strconv.Atoi(m[1])
	if err != nil || year < minPlausibleYear || year > maxPlausibleYear {
		return 0
	}
	return year
}
