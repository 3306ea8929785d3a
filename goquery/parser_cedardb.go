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

var _ blogdoc.Parser = (*CedarDBParser)(nil)

// CedarDBParser parses cedardb.com/blog/. Index links carry the date
// inline before the title ("31/10/2025Title..."), sometimes followed
// by a teaser, with the clean title in a nested <h3>.
type CedarDBParser struct{}

// NewCedarDBParser creates a new CedarDBParser.
func NewCedarDBParser() *CedarDBParser {
	return &CedarDBParser{}
}

// Name returns the parser's identifier.
func (p *CedarDBParser) Name() string {
	return "CedarDB"
}

var (
	cedarLeadingDateRE = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}`)
	cedarDateRE        = regexp.MustCompile(`\d{2}/\d{2}/\d{4}`)
	cedarPruneRE       = regexp.MustCompile(`(?i)(author|byline|meta|date)`)
	cedarListingRE     = regexp.MustCompile(`(?i)listing`)
	cedarButtonRE      = regexp.MustCompile(`(?i)button`)
	cedarPromoRE       = regexp.MustCompile(`(?i)(cta|start-now|signup|waitlist)`)
	cedarContainerRE   = regexp.MustCompile(`(?i)(content|post|article)`)
)

// ParseIndex extracts posts from the blog index.
func (p *CedarDBParser) ParseIndex(html string, baseURL string) ([]*blogdoc.Post, error) {
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

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")

		// Posts live under /blog/; the index page itself does not count.
		if !strings.Contains(href, "/blog/") || strings.HasSuffix(strings.TrimRight(href, "/"), "/blog") {
			return
		}

		lower := strings.ToLower(href)
		if strings.Contains(lower, "subscribe") || strings.Contains(lower, "newsletter") || strings.Contains(lower, "#") {
			return
		}

		title := headingText(sel, "h3")
		if title == "" {
			text := strings.TrimSpace(sel.Text())
			if text == "" {
				return
			}
			// Link text often starts with an inline DD/MM/YYYY date.
			title = strings.TrimSpace(cedarLeadingDateRE.ReplaceAllString(text, ""))
		}

		if utf8.RuneCountInString(title) < 5 {
			return
		}

		date := extractDate2DMY(strings.TrimSpace(sel.Text()))

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
func (p *CedarDBParser) ParsePost(html string, url string) (string, error) {
	doc, err := newDocument(html)
	if err != nil {
		return html, nil
	}

	article := doc.Find("article").First()
	if article.Length() == 0 {
		article = doc.Find("main").First()
	}
	if article.Length() == 0 {
		article = findByClassPattern(doc, "div", cedarContainerRE)
	}
	if article.Length() == 0 {
		return strippedBody(doc, html), nil
	}

	detach(article.Find("nav, header, footer, aside"))
	// Author blocks duplicate the post header rendered by the assembler.
	detachClassPattern(article, cedarPruneRE)
	// CedarDB-specific cross-link grids and promotional elements.
	detachClassPattern(article, cedarListingRE)
	detachClassPattern(article, cedarButtonRE)
	detachClassPattern(article, cedarPromoRE)
	detachRelatedPostBlocks(article, "/blog/")
	detachFirstHeading(article)

	return outerHTML(article), nil
}

// BlogTitle returns the fixed display title for this blog.
func (p *CedarDBParser) BlogTitle(string) string {
	return "CedarDB Engineering Blog"
}

// extractDate2DMY finds a DD/MM/YYYY date anywhere in text.
func extractDate2DMY(text string) *time.Time {
	m := cedarDateRE.FindString(text)
	if m == "" {
		return nil
	}
	t, err := time.Parse("02/01/2006", m)
	if err != nil {
		return nil
	}
	return &t
}
