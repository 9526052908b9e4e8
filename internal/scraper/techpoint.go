package scraper

import (
	"strings"

	"github.com/lemina/startup-cli/internal/fetcher"
)

// TechpointBaseURL is the startups category listing on techpoint.africa.
const TechpointBaseURL = "https://techpoint.africa/category/startups/"

// NewTechpoint creates the Techpoint Africa scraper. Techpoint headline
// links appear under both h2 and h3; sponsored posts live under
// /brandpress/ and are excluded.
func NewTechpoint(f fetcher.Fetcher) Scraper {
	return &site{
		name:     "techpoint",
		baseURL:  TechpointBaseURL,
		f:        f,
		linkTags: []string{"h2", "h3"},
		linkOK:   techpointLink,
	}
}

func techpointLink(href string) bool {
	if strings.Contains(href, "/category/") || strings.Contains(href, "/brandpress/") {
		return false
	}
	return strings.Contains(href, "techpoint.africa")
}
