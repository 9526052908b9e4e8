package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/time/rate"

	"github.com/lemina/startup-cli/internal/extract"
	"github.com/lemina/startup-cli/internal/fetcher"
)

func parseDoc(t *testing.T, page string) *html.Node {
	t.Helper()
	doc := extract.Parse(page)
	require.NotNil(t, doc)
	return doc
}

const listingHTML = `<html><body>
<h2><a href="%[1]s/2024/03/paystack-raises">Paystack raises $5 million</a></h2>
<h2><a href="%[1]s/2024/03/paystack-raises">Paystack raises $5 million</a></h2>
<h2><a href="%[1]s/category/funding/">Funding</a></h2>
<h2><a href="%[1]s/2024/03/mkopa-expands">M-KOPA expands</a></h2>
</body></html>`

const paystackHTML = `<html><head>
<title>Paystack raises $5 million - TechTest</title>
<meta name="description" content="Paystack, a Lagos-based fintech startup, has raised new funding to expand online payments across Nigeria.">
</head><body>
<h1 class="entry-title">Paystack raises $5 million to expand across Nigeria</h1>
<div class="entry-content">
<p>Paystack, a Lagos-based payments startup, announced today that it has raised $5 million in a seed round led by Alpha Capital.</p>
<p>The Nigerian fintech company processes online payments for thousands of merchants in Lagos and across Nigeria.</p>
<p>Visit the <a href="https://paystack.com">official website</a> to learn more.</p>
</div></body></html>`

const mkopaHTML = `<html><head>
<title>M-KOPA expands - TechTest</title>
</head><body>
<h1 class="entry-title">M-KOPA raises $10 million to grow in Kenya</h1>
<div class="entry-content">
<p>M-KOPA, a Nairobi-based asset financing startup, has raised $10 million to deepen its reach across Kenya.</p>
</div></body></html>`

// newSiteServer serves a two-article listing. The second article is
// Kenyan and must be filtered out by the country gate.
func newSiteServer(t *testing.T) (*httptest.Server, *site) {
	t.Helper()

	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/":
			fmt.Fprintf(w, listingHTML, srv.URL)
		case strings.Contains(r.URL.Path, "paystack"):
			fmt.Fprint(w, paystackHTML)
		case strings.Contains(r.URL.Path, "mkopa"):
			fmt.Fprint(w, mkopaHTML)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	host, err := url.Parse(srv.URL)
	require.NoError(t, err)
	f := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
		Timeout:    5 * time.Second,
		MaxRetries: 1,
		SkipRobots: true,
		RateLimiters: map[string]*rate.Limiter{
			host.Host: rate.NewLimiter(1000, 1000),
		},
	})

	s := &site{
		name:     "techtest",
		baseURL:  srv.URL + "/",
		f:        f,
		linkTags: []string{"h2"},
		linkOK: func(href string) bool {
			return strings.Contains(href, "/2024/") && !strings.Contains(href, "/category/")
		},
	}
	return srv, s
}

func TestSiteScrape(t *testing.T) {
	_, s := newSiteServer(t)

	records, err := s.Scrape(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, records, 1, "kenyan article must be filtered out")

	rec := records[0]
	assert.Equal(t, "Paystack", rec.Name)
	assert.Equal(t, "techtest", rec.Source)
	assert.Contains(t, rec.SourceURL, "/2024/03/paystack-raises")
	assert.Equal(t, "fintech", rec.Sector)
	assert.Contains(t, rec.Website, "paystack.com")
	assert.NotEmpty(t, rec.ShortDescription)

	require.NotNil(t, rec.Funding)
	assert.Equal(t, "seed", rec.Funding.RoundType)
	assert.Equal(t, 5_000_000.0, rec.Funding.Amount)
	assert.Equal(t, "usd", rec.Funding.Currency)
	assert.Contains(t, rec.Funding.LeadInvestors, "Alpha Capital")
}

func TestSiteScrape_StopsWhenListingFails(t *testing.T) {
	_, s := newSiteServer(t)

	// Page 2 does not exist; pagination stops but page 1 survives.
	records, err := s.Scrape(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestArticleLinks_FilterAndDedupe(t *testing.T) {
	_, s := newSiteServer(t)

	body := fmt.Sprintf(listingHTML, "https://example.com")
	links := s.articleLinks(body)
	require.Len(t, links, 2, "duplicate and category links excluded")
	assert.Contains(t, links[0], "paystack-raises")
	assert.Contains(t, links[1], "mkopa-expands")
}

func TestTechcabalLink(t *testing.T) {
	assert.True(t, techcabalLink("https://techcabal.com/2024/03/15/kuda-raises/"))
	assert.False(t, techcabalLink("https://techcabal.com/category/funding/"))
	assert.False(t, techcabalLink("https://example.com/2024/03/15/other/"))
}

func TestTechpointLink(t *testing.T) {
	assert.True(t, techpointLink("https://techpoint.africa/2024/03/15/moniepoint/"))
	assert.False(t, techpointLink("https://techpoint.africa/category/startups/"))
	assert.False(t, techpointLink("https://techpoint.africa/brandpress/sponsored/"))
	assert.False(t, techpointLink("https://techcrunch.com/2024/03/15/story/"))
}

func TestRegistry(t *testing.T) {
	f := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{})
	reg := NewRegistry()
	reg.Register(NewTechCabal(f))
	reg.Register(NewTechpoint(f))

	assert.Equal(t, []string{"techcabal", "techpoint"}, reg.Names())

	s, err := reg.Get("techcabal")
	require.NoError(t, err)
	assert.Equal(t, TechCabalBaseURL, s.BaseURL())

	_, err = reg.Get("nope")
	require.Error(t, err)

	selected, err := reg.Select([]string{"techpoint"})
	require.NoError(t, err)
	require.Len(t, selected, 1)
	assert.Equal(t, "techpoint", selected[0].Name())

	all, err := reg.Select(nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

// pageFetcher serves one canned page for any URL.
type pageFetcher struct{ page string }

func (p pageFetcher) FetchPage(_ context.Context, _ string) (string, error) {
	return p.page, nil
}

const kudaHTML = `<html><head>
<title>Kuda raises $20 million - TechTest</title>
</head><body>
<h1 class="entry-title">Kuda raises $20 million to expand digital banking in Nigeria</h1>
<div class="entry-content">
<p>Published March 3, 2024.</p>
<p>Kuda, a Lagos-based fintech startup, has raised $20 million to grow its digital banking platform across Nigeria.</p>
<p>The company, which was founded in 2019, serves millions of Nigerian customers.</p>
</div></body></html>`

func TestScrapeArticle_FoundedYearFromPhrase(t *testing.T) {
	rec, err := scrapeArticle(context.Background(), pageFetcher{kudaHTML}, "https://techtest.example/2024/03/kuda", "techtest")
	require.NoError(t, err)
	require.NotNil(t, rec)

	assert.Equal(t, "Kuda", rec.Name)
	// The publication year appears before the founding sentence and must
	// not win.
	assert.Equal(t, 2019, rec.FoundedYear)
}

func TestScrapeArticle_NoFoundingPhraseLeavesYearUnset(t *testing.T) {
	rec, err := scrapeArticle(context.Background(), pageFetcher{paystackHTML}, "https://techtest.example/2024/03/paystack", "techtest")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Zero(t, rec.FoundedYear)
}

func TestArticleTitle_PrefersHeadline(t *testing.T) {
	doc := parseDoc(t, paystackHTML)
	assert.Equal(t, "Paystack raises $5 million to expand across Nigeria", articleTitle(doc))
}

func TestArticleTitle_StripsSiteSuffix(t *testing.T) {
	doc := parseDoc(t, `<html><head><title>Kuda secures funding - TechCabal</title></head><body></body></html>`)
	assert.Equal(t, "Kuda secures funding", articleTitle(doc))
}
