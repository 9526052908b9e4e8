package extract

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/lemina/startup-cli/internal/model"
)

var fundingKeywords = []string{
	"raises", "raised", "secures", "secured", "funding", "investment",
	"round", "series", "seed", "pre-seed", "investors", "invested",
}

var leadInvestorPatterns = []*regexp.Regexp{
	regexp.MustCompile(`led by ([A-Z][a-zA-Z\s&,]+(?:Capital|Ventures|Partners|Fund|VC|Investments?))`),
	regexp.MustCompile(`lead investors?\s+(?:include|are|is)\s+([A-Z][a-zA-Z\s&,]+)`),
}

var participatingInvestorPatterns = []*regexp.Regexp{
	regexp.MustCompile(`participating investors?\s+(?:include|are)\s+([A-Z][a-zA-Z\s&,]+)`),
	regexp.MustCompile(`joined by ([A-Z][a-zA-Z\s&,]+(?:Capital|Ventures|Partners|Fund))`),
}

var investorSplit = regexp.MustCompile(`,\s*(?:and\s+)?|\s+and\s+`)

var textDatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:announced|raised|secured)\s+(?:on\s+)?([A-Z][a-z]+\s+\d{1,2},?\s+\d{4})`),
	regexp.MustCompile(`(\d{1,2}\s+[A-Z][a-z]+\s+\d{4})`),
}

// FundingData extracts funding round details from an article, or nil when
// the article is not funding-shaped. An article with funding keywords but
// no parseable amount still yields a round when flagged "undisclosed".
func FundingData(doc *html.Node, text string) *model.Funding {
	if !isFundingArticle(text) {
		return nil
	}

	f := &model.Funding{Currency: "usd", IsDisclosed: true}

	amount, currency, ok := ParseAmount(text)
	if ok {
		f.Amount = amount
		f.Currency = currency
	} else if strings.Contains(strings.ToLower(text), "undisclosed") {
		f.IsDisclosed = false
	} else {
		return nil
	}

	f.RoundType = RoundType(text)
	if f.RoundType == "" {
		f.RoundType = "seed"
	}

	f.LeadInvestors = matchInvestors(text, leadInvestorPatterns, nil)
	f.ParticipatingInvestors = matchInvestors(text, participatingInvestorPatterns, f.LeadInvestors)

	f.AnnouncedDate = announcedDate(doc, text)

	return f
}

func isFundingArticle(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range fundingKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// matchInvestors collects investor names from the given patterns, skipping
// names already present in exclude.
func matchInvestors(text string, patterns []*regexp.Regexp, exclude []string) []string {
	excluded := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		excluded[name] = true
	}

	var investors []string
	seen := make(map[string]bool)
	for _, pattern := range patterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			for _, name := range investorSplit.Split(m[1], -1) {
				name = strings.TrimSpace(name)
				if len(name) > 2 && !seen[name] && !excluded[name] {
					seen[name] = true
					investors = append(investors, name)
				}
			}
		}
	}
	return investors
}

// announcedDate finds the announcement date: publish-time meta tag, then a
// <time datetime=...> element, then date phrases in the text.
func announcedDate(doc *html.Node, text string) string {
	if meta := MetaContent(doc, "property", "article:published_time"); meta != "" {
		if t, ok := ParseDate(meta); ok {
			return t.Format("2006-01-02")
		}
	}

	if timeTag := First(doc, "time"); timeTag != nil {
		if dt := Attr(timeTag, "datetime"); dt != "" {
			if t, ok := ParseDate(dt); ok {
				return t.Format("2006-01-02")
			}
		}
	}

	for _, pattern := range textDatePatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			if t, ok := ParseDate(m[1]); ok {
				return t.Format("2006-01-02")
			}
		}
	}

	return ""
}
