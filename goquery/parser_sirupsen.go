package goquery

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/blogdoc"
)

var _ blogdoc.Parser = (*SirupsenParser)(nil)

// SirupsenParser parses sirupsen.com. The index is a plain list of
// links dated "Title - Mon YYYY", mixed with external links (talks,
// videos) that must be filtered out.
type SirupsenParser struct{}

// NewSirupsenParser creates a new SirupsenParser.
func NewSirupsenParser() *SirupsenParser {
	return &SirupsenParser{}
}

// Name returns the parser's identifier.
func (p *SirupsenParser) Name() string {
	return "Sirupsen"
}

var (
	sirPruneRE     = regexp.MustCompile(`(?i)(author|byline|meta)`)
	sirSubscribeRE = regexp.MustCompile(`(?i)(subscribe|newsletter|signup)`)
	sirRelatedRE   = regexp.MustCompile(`(?i)(related|also-like|recommended)`)
	sirContainerRE = regexp.MustCompile(`(?i)(content|post|article)`)
)

// ParseIndex extracts posts from the blog index.
func (p *SirupsenParser) ParseIndex(html string, baseURL string) ([]*blogdoc.Post, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, blogdoc.Errorf(blogdoc.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := newDocument(html)
	if err != nil {
		return []*blogdoc.Post{}, nil
	}

	var posts []*blogdoc.Post
	seen := make(map[string]bool)

	doc.Find("li").Each(func(_ int, li *goquery.Selection) {
		link := li.Find("a[href]").First()
		if link.Length() == 0 {
			return
		}

		href, _ := link.Attr("href")
		title := strings.TrimSpace(link.Text())
		if utf8.RuneCountInString(title) < 3 {
			return
		}
		if isSkippableHref(href) {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}
		u, err := url.Parse(resolved)
		if err != nil || !sameDomain(base, u) {
			return
		}

		// The homepage link is not a post.
		if u.Path == "" || u.Path == "/" {
			return
		}

		// The date trails the link inside the same list item.
		date := extractMonthYear(li.Text())

		if seen[resolved] {
			return
		}
		seen[resolved] = true

		posts = append(posts, &blogdoc.Post{
			Title: title,
			URL:   resolved,
			Date:  date,
		})
	})

	return posts, nil
}

// ParsePost extracts the article body from a post page.
func (p *SirupsenParser) ParsePost(html string, url string) (string, error) {
	doc, err := newDocument(html)
	if err != nil {
		return html, nil
	}

	article := doc.Find("article").First()
	if article.Length() == 0 {
		article = doc.Find("main").First()
	}
	if article.Length() == 0 {
		article = findByClassPattern(doc, "div", sirContainerRE)
	}
	if article.Length() == 0 {
		return strippedBody(doc, html), nil
	}

	detach(article.Find("nav, header, footer, aside"))
	detachClassPattern(article, sirPruneRE)
	detachClassPattern(article, sirSubscribeRE)
	detachClassPattern(article, sirRelatedRE)
	// Forms on this blog are invariably subscribe forms.
	detach(article.Find("form"))
	detachFirstHeading(article)

	return outerHTML(article), nil
}

// BlogTitle returns the fixed display title for this blog.
func (p *SirupsenParser) BlogTitle(string) string {
	return "Simon Eskildsen's Blog"
}
