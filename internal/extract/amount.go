package extract

import (
	"regexp"
	"strconv"
	"strings"
)

type amountPattern struct {
	re *regexp.Regexp
	// defaultUnit applies when the pattern captures no unit group.
	defaultUnit string
}

// amountPatterns are tried in order against lowercased article text.
var amountPatterns = []amountPattern{
	{re: regexp.MustCompile(`\$(\d+(?:\.\d+)?)\s*(million|m|mn)`)},
	{re: regexp.MustCompile(`\$(\d+(?:\.\d+)?)\s*(billion|b|bn)`)},
	{re: regexp.MustCompile(`\$(\d+(?:\.\d+)?)\s*(thousand|k)`)},
	{re: regexp.MustCompile(`(\d+(?:\.\d+)?)\s*million\s*(?:dollars|usd)`), defaultUnit: "million"},
	{re: regexp.MustCompile(`(\d+(?:\.\d+)?)\s*billion\s*(?:dollars|usd)`), defaultUnit: "billion"},
	{re: regexp.MustCompile(`ngn\s*(\d+(?:\.\d+)?)\s*(million|m|mn)`)},
	{re: regexp.MustCompile(`ngn\s*(\d+(?:\.\d+)?)\s*(billion|b|bn)`)},
	{re: regexp.MustCompile(`₦(\d+(?:\.\d+)?)\s*(million|m|mn)`)},
	{re: regexp.MustCompile(`₦(\d+(?:\.\d+)?)\s*(billion|b|bn)`)},
}

var unitMultipliers = map[string]float64{
	"thousand": 1_000,
	"k":        1_000,
	"million":  1_000_000,
	"m":        1_000_000,
	"mn":       1_000_000,
	"billion":  1_000_000_000,
	"b":        1_000_000_000,
	"bn":       1_000_000_000,
}

// ParseAmount extracts a monetary amount and its currency from article text.
// Returns ok=false for empty text, texts flagged undisclosed, or when no
// pattern matches.
func ParseAmount(text string) (amount float64, currency string, ok bool) {
	if text == "" {
		return 0, "", false
	}

	lower := strings.ToLower(text)
	if strings.Contains(lower, "undisclosed") {
		return 0, "", false
	}

	for _, p := range amountPatterns {
		m := p.re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}

		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}

		unit := p.defaultUnit
		if len(m) > 2 && m[2] != "" {
			unit = m[2]
		}
		multiplier, known := unitMultipliers[unit]
		if !known {
			multiplier = 1
		}

		currency = "usd"
		if strings.Contains(lower, "ngn") || strings.Contains(text, "₦") {
			currency = "ngn"
		}

		return value * multiplier, currency, true
	}

	return 0, "", false
}

type roundKeywords struct {
	roundType string
	patterns  []string
}

// roundTypes are checked in order; pre-seed before seed so "pre-seed round"
// is not misread as seed.
var roundTypes = []roundKeywords{
	{"pre-seed", []string{"pre-seed", "preseed", "pre seed"}},
	{"seed", []string{"seed round", "seed funding", " seed "}},
	{"series_a", []string{"series a", "series-a"}},
	{"series_b", []string{"series b", "series-b"}},
	{"series_c", []string{"series c", "series-c"}},
	{"series_d", []string{"series d", "series-d"}},
	{"grant", []string{"grant", "awarded"}},
	{"debt", []string{"debt financing", "debt round", "debt"}},
}

// RoundType extracts the funding round type from article text. Articles that
// mention a raise without a specific round default to "seed"; "" means the
// text is not about a round at all.
func RoundType(text string) string {
	if text == "" {
		return ""
	}
	lower := strings.ToLower(text)

	for _, rt := range roundTypes {
		for _, pattern := range rt.patterns {
			if strings.Contains(lower, pattern) {
				return rt.roundType
			}
		}
	}

	for _, word := range []string{"raises", "secures", "funding"} {
		if strings.Contains(lower, word) {
			return "seed"
		}
	}

	return ""
}
