package extract

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// SectorOther is the sentinel sector when no keyword matched.
const SectorOther = "other"

// sectorKeywords drives keyword-count sector classification. The sector with
// the most keyword hits in the article text wins.
var sectorKeywords = map[string][]string{
	"fintech":    {"payment", "fintech", "bank", "wallet", "transfer", "lending", "credit", "loan", "investment", "savings"},
	"healthtech": {"health", "medical", "hospital", "clinic", "pharma", "telemedicine", "healthcare", "doctor"},
	"edtech":     {"education", "learning", "school", "tutor", "edtech", "student", "course", "elearning"},
	"agritech":   {"farm", "agric", "crop", "agritech", "agriculture", "farmer"},
	"logistics":  {"logistics", "delivery", "shipping", "transport", "courier", "dispatch"},
	"ecommerce":  {"ecommerce", "e-commerce", "marketplace", "retail", "shop", "shopping", "online store"},
	"saas":       {"software", "saas", "platform", "api", "cloud", "tool"},
}

var (
	listicleRe  = regexp.MustCompile(`(?i)\d+\s+(?:african\s+)?(?:startups|companies)`)
	dayOfRe     = regexp.MustCompile(`(?i)day\s+\d+-\d+\s+of\s+([A-Za-z][A-Za-z0-9]+)`)
	articleBody = regexp.MustCompile(`entry-content|article-content|post-content`)

	// First-paragraph patterns, tried in order.
	commaStartupRe = regexp.MustCompile(`^([A-Z][A-Za-z0-9\s&]+),\s+a\s+(?:nigerian|african|kenyan)?\s*(?:fintech|healthtech|edtech|agritech|startup|company)`)
	isAStartupRe   = regexp.MustCompile(`^([A-Z][A-Za-z0-9\s&]+)\s+is\s+a\s+(?:nigerian|african|kenyan)?\s*(?:fintech|healthtech|edtech|startup|platform|company)`)
	hasRaisedRe    = regexp.MustCompile(`^([A-Z][A-Za-z0-9\s&]+)\s+(?:has\s+)?(?:raised|secured|announced)`)
	capitalizedRe  = regexp.MustCompile(`^([A-Z][A-Za-z0-9]+)(?:\s+[A-Z][A-Za-z]+)?\s*,`)

	// Title patterns.
	howWhyRe      = regexp.MustCompile(`(?i)(?:how|why)\s+([A-Za-z][A-Za-z0-9\s&]+)\s+is\s+(?:building|transforming|creating)`)
	titleVerbRe   = regexp.MustCompile(`^([A-Z][A-Za-z0-9\s&'\-\.]+)\s+(?:raises|secures|gets|receives|adopts|launches|turns|announces|opens|sets)`)
	whenAfterRe   = regexp.MustCompile(`(?i)(?:when|after)\s+.*?,\s+([A-Za-zÀ-ÿ][A-Za-zÀ-ÿ0-9'\-\.]+)\s+(?:bets|wants|believes|thinks)`)
	countryPrefix = regexp.MustCompile(`(?i)^(?:nigeria'?s|kenya'?s|african)\s+`)
	sectorPrefix  = regexp.MustCompile(`(?i)(?:voice\s+tech|fintech|healthtech|edtech|agritech|proptech|insurtech|regtech)\s+startup\s+`)

	sentenceStopwords = []string{"the", "after", "how", "when", "what", "this"}
)

// CompanyName extracts the company name an article is about, from the title
// and the first substantial paragraph. Returns "" when the article looks
// like a listicle or no pattern hits.
func CompanyName(doc *html.Node, title string) string {
	if title == "" {
		if h1 := First(doc, "h1"); h1 != nil {
			title = strings.TrimSpace(Text(h1))
		} else if t := First(doc, "title"); t != nil {
			title = strings.TrimSpace(Text(t))
		}
	}
	if title == "" {
		return ""
	}

	// Listicles ("7 startups...") name many companies, not one.
	if listicleRe.MatchString(title) {
		return ""
	}
	// Overlong titles are full headlines, not name-bearing.
	if len(title) > 100 {
		return ""
	}

	if m := dayOfRe.FindStringSubmatch(title); m != nil {
		if name := strings.TrimSpace(m[1]); len(name) > 2 && len(name) < 30 {
			return name
		}
	}

	firstPara := firstParagraph(doc)

	if m := commaStartupRe.FindStringSubmatch(firstPara); m != nil {
		if name := strings.TrimSpace(m[1]); len(name) < 50 {
			return name
		}
	}

	if m := isAStartupRe.FindStringSubmatch(firstPara); m != nil {
		if name := strings.TrimSpace(m[1]); len(name) < 50 {
			return name
		}
	}

	if m := hasRaisedRe.FindStringSubmatch(firstPara); m != nil {
		name := strings.TrimSpace(m[1])
		if len(name) < 30 && !containsStopword(name) {
			return name
		}
	}

	if m := howWhyRe.FindStringSubmatch(title); m != nil {
		if name := strings.TrimSpace(m[1]); len(name) < 30 {
			return name
		}
	}

	if m := titleVerbRe.FindStringSubmatch(title); m != nil {
		name := strings.TrimSpace(m[1])
		name = strings.TrimSpace(countryPrefix.ReplaceAllString(name, ""))
		name = strings.TrimSpace(sectorPrefix.ReplaceAllString(name, ""))
		if len(name) > 2 && len(name) < 30 {
			return name
		}
	}

	if m := whenAfterRe.FindStringSubmatch(title); m != nil {
		if name := strings.TrimSpace(m[1]); len(name) > 2 && len(name) < 30 {
			return name
		}
	}

	if m := capitalizedRe.FindStringSubmatch(firstPara); m != nil {
		if name := strings.TrimSpace(m[1]); len(name) > 2 && len(name) < 20 {
			return name
		}
	}

	return ""
}

// firstParagraph returns the first paragraph of the article body longer than
// 20 characters.
func firstParagraph(doc *html.Node) string {
	candidates := []*html.Node{
		FirstByClass(doc, "div", articleBody),
		First(doc, "article"),
	}
	for _, body := range candidates {
		if body == nil {
			continue
		}
		for _, p := range FindAll(body, "p") {
			if text := strings.TrimSpace(Text(p)); len(text) > 20 {
				return text
			}
		}
	}
	return ""
}

func containsStopword(name string) bool {
	lower := strings.ToLower(name)
	for _, w := range sentenceStopwords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// Sector classifies article text into a sector by keyword count; ties break
// toward the lexically smallest sector so classification is deterministic.
func Sector(text string) string {
	if text == "" {
		return SectorOther
	}
	lower := strings.ToLower(text)

	best := SectorOther
	bestScore := 0
	for sector, keywords := range sectorKeywords {
		score := 0
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore || (score == bestScore && score > 0 && sector < best) {
			best = sector
			bestScore = score
		}
	}
	return best
}

var nigerianIndicators = []string{
	"nigeria", "nigerian", "lagos", "abuja", "port harcourt",
	"ibadan", "kano", "enugu", "based in nigeria",
	"nigerian startup", "nigerian fintech", "nigerian healthtech",
}

var otherCountryIndicators = []string{
	"kenya", "kenyan", "nairobi",
	"south africa", "south african", "cape town", "johannesburg",
	"ghana", "ghanaian", "accra",
	"rwanda", "rwandan", "kigali",
	"zimbabwe", "zimbabwean", "harare",
	"uganda", "ugandan", "kampala",
	"tanzania", "tanzanian", "dar es salaam",
	"senegal", "senegalese", "dakar",
	"mali", "malian", "bamako",
	"egypt", "egyptian", "cairo",
}

// IsNigerian decides whether an article covers a Nigerian company by
// counting country indicator mentions: Nigeria must either dominate other
// African countries with at least two mentions, or be the only country
// mentioned at all.
func IsNigerian(text, title string) bool {
	combined := strings.ToLower(title + " " + text)

	nigerianScore := 0
	for _, ind := range nigerianIndicators {
		nigerianScore += strings.Count(combined, ind)
	}

	otherScore := 0
	for _, ind := range otherCountryIndicators {
		otherScore += strings.Count(combined, ind)
	}

	if nigerianScore >= 2 && nigerianScore > otherScore {
		return true
	}
	return otherScore == 0 && nigerianScore >= 1
}

var excerptClass = regexp.MustCompile(`excerpt|summary|intro`)

// descriptionMaxLen caps extracted descriptions.
const descriptionMaxLen = 500

// Description extracts an article summary: meta description, then an
// excerpt block, then the first substantial body paragraph.
func Description(doc *html.Node) string {
	if desc := strings.TrimSpace(MetaContent(doc, "name", "description")); len(desc) > 20 {
		return truncate(desc, descriptionMaxLen)
	}

	if excerpt := FirstByClass(doc, "div", excerptClass); excerpt != nil {
		if desc := strings.TrimSpace(Text(excerpt)); len(desc) > 20 {
			return truncate(desc, descriptionMaxLen)
		}
	}

	body := First(doc, "article")
	if body == nil {
		body = FirstByClass(doc, "div", articleBody)
	}
	if body != nil {
		paras := FindAll(body, "p")
		for i, p := range paras {
			if i >= 3 {
				break
			}
			if text := strings.TrimSpace(Text(p)); len(text) > 50 {
				return truncate(text, descriptionMaxLen)
			}
		}
	}

	return ""
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen])
}

var excludedLinkDomains = []string{
	"twitter.com", "facebook.com", "linkedin.com", "instagram.com",
	"techcabal.com", "techpoint.africa", "youtube.com",
}

var newsDomains = []string{"techcabal", "techpoint", "disrupt"}

var textURLRe = regexp.MustCompile(`https?://(?:www\.)?([a-zA-Z0-9-]+\.(?:com|ng|co|io|africa))`)

// Website tries to find the company's own site: first an outbound "visit
// website" link that is not social media or a news site, then any plausible
// domain mentioned in the text.
func Website(doc *html.Node, text string) string {
	for _, link := range FindAll(doc, "a") {
		href := Attr(link, "href")
		if href == "" {
			continue
		}
		if containsAny(href, excludedLinkDomains) {
			continue
		}
		linkText := strings.ToLower(Text(link))
		if strings.Contains(linkText, "visit") ||
			strings.Contains(linkText, "website") ||
			strings.Contains(linkText, "official") {
			return href
		}
	}

	for _, m := range textURLRe.FindAllStringSubmatch(text, -1) {
		if !containsAny(m[1], newsDomains) {
			return "https://" + m[1]
		}
	}

	return ""
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// maxFounders caps founder extraction per article.
const maxFounders = 5

var founderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`founded by ([A-Z][a-z]+ [A-Z][a-z]+(?:,? (?:and )?[A-Z][a-z]+ [A-Z][a-z]+)*)`),
	regexp.MustCompile(`co-founded by ([A-Z][a-z]+ [A-Z][a-z]+(?:,? (?:and )?[A-Z][a-z]+ [A-Z][a-z]+)*)`),
	regexp.MustCompile(`founders?,?\s+([A-Z][a-z]+ [A-Z][a-z]+(?:,? (?:and )?[A-Z][a-z]+ [A-Z][a-z]+)*)`),
	regexp.MustCompile(`CEO,?\s+([A-Z][a-z]+ [A-Z][a-z]+)`),
}

var nameListSplit = regexp.MustCompile(`,?\s+and\s+|,\s*`)

// Founders extracts founder names from text via "founded by"/"CEO" patterns,
// deduplicated, capped at maxFounders.
func Founders(text string) []string {
	if text == "" {
		return nil
	}

	var founders []string
	seen := make(map[string]bool)

	for _, pattern := range founderPatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			for _, name := range nameListSplit.Split(m[1], -1) {
				name = strings.TrimSpace(name)
				if len(name) > 3 && !seen[name] {
					seen[name] = true
					founders = append(founders, name)
					if len(founders) >= maxFounders {
						return founders
					}
				}
			}
		}
	}

	return founders
}
