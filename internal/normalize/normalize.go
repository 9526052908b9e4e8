// Package normalize turns free-text company names and website URLs into
// deterministic comparison keys for entity resolution.
package normalize

import (
	"net/url"
	"regexp"
	"strings"
)

// legalSuffixes are trailing legal-entity tokens stripped from names before
// comparison. Order matters: each suffix is tested once, in this order, so
// "acme ltd limited" reduces to "acme" in a single pass.
var legalSuffixes = []string{
	" limited", " ltd", " inc", " incorporated", " corp", " corporation",
	" llc", " plc", " ng", " nigeria",
}

var (
	nonAlnum   = regexp.MustCompile(`[^a-z0-9\s]`)
	multiSpace = regexp.MustCompile(`\s+`)
)

// Name canonicalizes a company name into a comparison key: lowercase,
// trailing legal-entity suffixes removed, everything outside [a-z0-9 ]
// dropped, whitespace collapsed. Empty input yields an empty key.
func Name(raw string) string {
	if raw == "" {
		return ""
	}

	n := strings.ToLower(strings.TrimSpace(raw))

	for _, suffix := range legalSuffixes {
		if strings.HasSuffix(n, suffix) {
			n = strings.TrimSpace(n[:len(n)-len(suffix)])
		}
	}

	n = nonAlnum.ReplaceAllString(n, "")
	n = multiSpace.ReplaceAllString(n, " ")

	return strings.TrimSpace(n)
}

// URL canonicalizes a website URL into a comparison key: the network
// authority (or the path when there is no authority), lowercased, with a
// leading "www." and trailing "/" removed. The key is stable across
// http/https and trailing-slash variants. Malformed or empty input yields
// an empty key rather than an error, so one bad URL never aborts a run.
func URL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}

	domain := parsed.Host
	if domain == "" {
		domain = parsed.Path
	}

	domain = strings.TrimSpace(strings.ToLower(domain))
	domain = strings.TrimPrefix(domain, "www.")
	domain = strings.TrimRight(domain, "/")

	return domain
}
