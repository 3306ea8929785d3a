package goquery

import (
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/blogdoc"
)

var _ blogdoc.Parser = (*TigerBeetleParser)(nil)

// TigerBeetleParser parses tigerbeetle.com/blog/. Posts are anchors
// with class "post" whose relative hrefs embed the date as a
// YYYY-MM-DD-slug prefix; the title sits in a nested <h2>.
type TigerBeetleParser struct{}

// NewTigerBeetleParser creates a new TigerBeetleParser.
func NewTigerBeetleParser() *TigerBeetleParser {
	return &TigerBeetleParser{}
}

// Name returns the parser's identifier.
func (p *TigerBeetleParser) Name() string {
	return "TigerBeetle"
}

var (
	tbHrefDateRE  = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})-`)
	tbPathDateRE  = regexp.MustCompile(`/(\d{4}-\d{2}-\d{2})-`)
	tbPruneRE     = regexp.MustCompile(`(?i)(author|byline|meta)`)
	tbContainerRE = regexp.MustCompile(`(?i)(content|post|article|prose)`)
)

// ParseIndex extracts posts from the blog index.
func (p *TigerBeetleParser) ParseIndex(html string, baseURL string) ([]*blogdoc.Post, error) {
	// Relative hrefs like "2024-12-19-slug" resolve against the index
	// directory, so the base must end in a slash.
	base, err := url.Parse(strings.TrimRight(baseURL, "/") + "/")
	if err != nil {
		return nil, blogdoc.Errorf(blogdoc.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := newDocument(html)
	if err != nil {
		return []*blogdoc.Post{}, nil
	}

	var posts []*blogdoc.Post
	seen := make(map[string]bool)

	doc.Find("a.post[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if href == "" {
			return
		}

		var date *time.Time
		m := tbHrefDateRE.FindStringSubmatch(href)
		if m == nil {
			m = tbPathDateRE.FindStringSubmatch(href)
		}
		if m != nil {
			if t, err := time.Parse("2006-01-02", m[1]); err == nil {
				date = &t
			}
		}

		title := headingText(sel, "h2")
		if title == "" {
			title = strings.TrimSpace(sel.Text())
		}
		if utf8.RuneCountInString(title) < 5 {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" || seen[resolved] {
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
func (p *TigerBeetleParser) ParsePost(html string, url string) (string, error) {
	doc, err := newDocument(html)
	if err != nil {
		return html, nil
	}

	article := doc.Find("article").First()
	if article.Length() == 0 {
		article = doc.Find("main").First()
	}
	if article.Length() == 0 {
		article = findByClassPattern(doc, "div", tbContainerRE)
	}
	if article.Length() == 0 {
		return strippedBody(doc, html), nil
	}

	detach(article.Find("nav, header, footer, aside"))
	detachClassPattern(article, tbPruneRE)
	detachFirstHeading(article)

	return outerHTML(article), nil
}

// BlogTitle returns the fixed display title for this blog.
func (p *TigerBeetleParser) BlogTitle(string) string {
	return "TigerBeetle Engineering Blog"
}
