package scraper

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/lemina/startup-cli/internal/extract"
	"github.com/lemina/startup-cli/internal/fetcher"
	"github.com/lemina/startup-cli/internal/model"
)

// site implements the listing-page walk shared by the WordPress-based
// news sources. Concrete scrapers supply the link filter that decides
// which hrefs on a listing page are article links.
type site struct {
	name     string
	baseURL  string
	f        fetcher.Fetcher
	linkTags []string
	linkOK   func(href string) bool
}

func (s *site) Name() string    { return s.name }
func (s *site) BaseURL() string { return s.baseURL }

// Scrape walks listing pages and scrapes every article link found.
// A failed listing page stops pagination but keeps what was collected;
// a failed article is logged and skipped.
func (s *site) Scrape(ctx context.Context, maxPages int) ([]model.RawRecord, error) {
	if maxPages <= 0 {
		maxPages = 1
	}

	var records []model.RawRecord
	seen := make(map[string]bool)

	for page := 1; page <= maxPages; page++ {
		listURL := s.baseURL
		if page > 1 {
			listURL = fmt.Sprintf("%spage/%d/", s.baseURL, page)
		}

		body, err := s.f.FetchPage(ctx, listURL)
		if err != nil {
			zap.L().Warn("listing page fetch failed, stopping pagination",
				zap.String("source", s.name),
				zap.String("url", listURL),
				zap.Int("page", page),
				zap.Error(err),
			)
			break
		}

		links := s.articleLinks(body)
		if len(links) == 0 {
			zap.L().Info("no article links on listing page, stopping",
				zap.String("source", s.name),
				zap.Int("page", page),
			)
			break
		}

		for _, link := range links {
			if seen[link] {
				continue
			}
			seen[link] = true

			rec, err := scrapeArticle(ctx, s.f, link, s.name)
			if err != nil {
				zap.L().Warn("article scrape failed",
					zap.String("source", s.name),
					zap.String("url", link),
					zap.Error(err),
				)
				continue
			}
			if rec == nil {
				continue
			}
			records = append(records, *rec)
		}

		if ctx.Err() != nil {
			return records, ctx.Err()
		}
	}

	zap.L().Info("scrape complete",
		zap.String("source", s.name),
		zap.Int("records", len(records)),
	)
	return records, nil
}

// articleLinks pulls candidate article URLs out of a listing page.
// Headline links live under h2/h3 elements on both sources.
func (s *site) articleLinks(body string) []string {
	doc := extract.Parse(body)
	if doc == nil {
		return nil
	}

	var links []string
	seen := make(map[string]bool)
	for _, heading := range extract.FindAll(doc, s.linkTags...) {
		a := extract.First(heading, "a")
		if a == nil {
			continue
		}
		href := strings.TrimSpace(extract.Attr(a, "href"))
		if href == "" || seen[href] || !s.linkOK(href) {
			continue
		}
		seen[href] = true
		links = append(links, href)
	}
	return links
}
