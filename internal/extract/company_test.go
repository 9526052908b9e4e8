package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const articleHTML = `<html>
<head>
<title>Kuda raises $25 million to expand across Africa</title>
<meta name="description" content="Kuda, the Nigerian digital bank, has raised new funding to grow its customer base across Africa.">
<meta property="article:published_time" content="2024-03-15T09:00:00+00:00">
</head>
<body>
<article>
<h1 class="entry-title">Kuda raises $25 million to expand across Africa</h1>
<time datetime="2024-03-15">March 15, 2024</time>
<div class="entry-content">
<p>Kuda, a nigerian fintech startup offering digital banking to consumers in Lagos, Nigeria, has raised $25 million in a Series A round led by Valar Ventures.</p>
<p>The company was founded by Babs Ogundeyi and Musty Mustapha in 2019.</p>
<p>Visit the <a href="https://kuda.com">official website</a> for more.</p>
</div>
</article>
</body>
</html>`

func TestCompanyName_FromFirstParagraph(t *testing.T) {
	doc := Parse(articleHTML)
	name := CompanyName(doc, "Kuda raises $25 million to expand across Africa")
	assert.Equal(t, "Kuda", name)
}

func TestCompanyName_SkipsListicles(t *testing.T) {
	doc := Parse("<html><body><p>text</p></body></html>")
	assert.Empty(t, CompanyName(doc, "7 startups to watch in 2024"))
	assert.Empty(t, CompanyName(doc, "5 African companies raising this month"))
}

func TestCompanyName_SkipsOverlongTitles(t *testing.T) {
	doc := Parse("<html></html>")
	long := "This is a very long headline that goes on and on about the state of technology in Africa without naming anyone"
	assert.Empty(t, CompanyName(doc, long))
}

func TestCompanyName_TitleVerbPattern(t *testing.T) {
	doc := Parse("<html><body></body></html>")
	assert.Equal(t, "Moniepoint", CompanyName(doc, "Moniepoint raises new funding"))
}

func TestCompanyName_StripsCountryPrefix(t *testing.T) {
	doc := Parse("<html><body></body></html>")
	assert.Equal(t, "Moove", CompanyName(doc, "Nigeria's Moove secures $10 million"))
}

func TestSector(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "fintech keywords dominate",
			text:     "the payment wallet offers bank transfer and savings products",
			expected: "fintech",
		},
		{
			name:     "healthtech",
			text:     "a telemedicine platform connecting doctor and hospital networks for healthcare",
			expected: "healthtech",
		},
		{
			name:     "no keywords",
			text:     "an interesting announcement was made",
			expected: SectorOther,
		},
		{
			name:     "empty",
			text:     "",
			expected: SectorOther,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Sector(tt.text))
		})
	}
}

func TestIsNigerian(t *testing.T) {
	assert.True(t, IsNigerian("the Lagos, Nigeria based startup", ""))
	assert.True(t, IsNigerian("a nigerian company", ""), "single mention, no competitors")
	assert.False(t, IsNigerian("the Nairobi, Kenya based startup", ""))
	assert.False(t, IsNigerian("nigeria once, but kenya, kenyan, nairobi everywhere", ""))
	assert.False(t, IsNigerian("", ""))
}

func TestDescription_PrefersMetaTag(t *testing.T) {
	doc := Parse(articleHTML)
	desc := Description(doc)
	assert.Contains(t, desc, "Nigerian digital bank")
}

func TestDescription_FallsBackToParagraph(t *testing.T) {
	doc := Parse(`<html><body><article>
<p>short</p>
<p>Kuda is a digital-first bank offering zero-fee accounts to millions of Nigerians.</p>
</article></body></html>`)
	assert.Contains(t, Description(doc), "digital-first bank")
}

func TestWebsite_FromVisitLink(t *testing.T) {
	doc := Parse(articleHTML)
	assert.Equal(t, "https://kuda.com", Website(doc, ""))
}

func TestWebsite_SkipsSocialAndNewsLinks(t *testing.T) {
	doc := Parse(`<html><body>
<a href="https://twitter.com/kuda">visit us on twitter</a>
<a href="https://techcabal.com/about">official coverage</a>
</body></html>`)
	got := Website(doc, "mentioned at https://kuda.com in passing")
	assert.Equal(t, "https://kuda.com", got)
}

func TestWebsite_None(t *testing.T) {
	doc := Parse("<html><body></body></html>")
	assert.Empty(t, Website(doc, "no urls at all"))
}

func TestFounders(t *testing.T) {
	text := "The company was founded by Babs Ogundeyi and Musty Mustapha. Its CEO, Babs Ogundeyi said..."
	founders := Founders(text)
	assert.Equal(t, []string{"Babs Ogundeyi", "Musty Mustapha"}, founders)
}

func TestFounders_CapAtFive(t *testing.T) {
	text := "founded by Aaa Bbb, Ccc Ddd, Eee Fff, Ggg Hhh, Iii Jjj and Kkk Lll"
	assert.Len(t, Founders(text), 5)
}

func TestFounders_Empty(t *testing.T) {
	assert.Empty(t, Founders(""))
	assert.Empty(t, Founders("no founder mentions here"))
}
