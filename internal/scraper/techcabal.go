package scraper

import (
	"strings"

	"github.com/lemina/startup-cli/internal/fetcher"
)

// TechCabalBaseURL is the funding category listing on techcabal.com.
const TechCabalBaseURL = "https://techcabal.com/category/funding/"

// NewTechCabal creates the TechCabal scraper. Article URLs on TechCabal
// carry the publication date (techcabal.com/2024/...), which separates
// them from category and tag pages.
func NewTechCabal(f fetcher.Fetcher) Scraper {
	return &site{
		name:     "techcabal",
		baseURL:  TechCabalBaseURL,
		f:        f,
		linkTags: []string{"h2"},
		linkOK:   techcabalLink,
	}
}

func techcabalLink(href string) bool {
	if strings.Contains(href, "/category/") {
		return false
	}
	return strings.Contains(href, "techcabal.com/20")
}
