package scraper

import (
	"context"
	"regexp"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/lemina/startup-cli/internal/extract"
	"github.com/lemina/startup-cli/internal/fetcher"
	"github.com/lemina/startup-cli/internal/model"
)

var entryTitleRe = regexp.MustCompile(`entry-title|post-title|article-title`)

// scrapeArticle fetches one article page and extracts a raw company
// record from it. It returns nil (no error) when the article does not
// describe an identifiable Nigerian startup; only transport failures
// surface as errors.
func scrapeArticle(ctx context.Context, f fetcher.Fetcher, articleURL, source string) (*model.RawRecord, error) {
	page, err := f.FetchPage(ctx, articleURL)
	if err != nil {
		return nil, eris.Wrapf(err, "scrape article %s", articleURL)
	}

	doc := extract.Parse(page)
	if doc == nil {
		return nil, nil
	}

	title := articleTitle(doc)
	text := extract.Text(doc)

	name := extract.CompanyName(doc, title)
	if name == "" {
		zap.L().Debug("no company name found, skipping article",
			zap.String("source", source),
			zap.String("url", articleURL),
		)
		return nil, nil
	}

	if !extract.IsNigerian(text, title) {
		zap.L().Debug("article not about a nigerian startup, skipping",
			zap.String("source", source),
			zap.String("company", name),
		)
		return nil, nil
	}

	rec := &model.RawRecord{
		Name:             name,
		Website:          extract.Website(doc, text),
		Sector:           extract.Sector(text),
		ShortDescription: extract.Description(doc),
		Founders:         extract.Founders(text),
		FoundedYear:      extract.FoundedYear(text),
		Funding:          extract.FundingData(doc, text),
		Source:           source,
		SourceURL:        articleURL,
	}
	return rec, nil
}

// articleTitle prefers the post headline over the document <title>,
// which carries the site name suffix.
func articleTitle(doc *html.Node) string {
	if h1 := extract.FirstByClass(doc, "h1", entryTitleRe); h1 != nil {
		return strings.TrimSpace(extract.Text(h1))
	}
	if h1 := extract.First(doc, "h1"); h1 != nil {
		return strings.TrimSpace(extract.Text(h1))
	}
	if t := extract.First(doc, "title"); t != nil {
		title := strings.TrimSpace(extract.Text(t))
		// Strip " - TechCabal" style suffixes.
		if idx := strings.LastIndex(title, " - "); idx > 0 {
			title = title[:idx]
		}
		if idx := strings.LastIndex(title, " | "); idx > 0 {
			title = title[:idx]
		}
		return title
	}
	return ""
}
