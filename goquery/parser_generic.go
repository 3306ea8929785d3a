package goquery

import (
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/blogdoc"
	"golang.org/x/net/html"
)

var _ blogdoc.Parser = (*GenericParser)(nil)

// GenericParser is the fallback for blogs without a site-specific
// parser. It is a best-effort heuristic: same-domain links under the
// blog's base path are candidate posts, dates are sniffed from the
// DOM near each link or from the URL itself, and the article body is
// guessed from common container shapes.
type GenericParser struct{}

// NewGenericParser creates a new GenericParser.
func NewGenericParser() *GenericParser {
	return &GenericParser{}
}

// Name returns the parser's identifier.
func (p *GenericParser) Name() string {
	return "Generic"
}

// minGenericTitleLen filters out navigation icons and bare anchors
// masquerading as posts.
const minGenericTitleLen = 10

// Well-known non-post path fragments.
var nonPostPathFragments = []string{
	"/tag/", "/tags/", "/category/", "/author/", "/page/",
	"/search", "/about", "/contact", "/subscribe",
	".xml", ".rss", ".json",
}

var (
	genPrimaryContainerRE   = regexp.MustCompile(`(?i)post-content|article-content|entry-content`)
	genSecondaryContainerRE = regexp.MustCompile(`(?i)content|post|article`)
)

// ParseIndex extracts candidate posts from an index page.
func (p *GenericParser) ParseIndex(rawHTML string, baseURL string) ([]*blogdoc.Post, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, blogdoc.Errorf(blogdoc.EINVALID, "invalid base URL: %v", err)
	}
	basePath := strings.TrimRight(base.Path, "/")

	doc, err := newDocument(rawHTML)
	if err != nil {
		return []*blogdoc.Post{}, nil
	}

	var posts []*blogdoc.Post
	seen := make(map[string]bool)

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		title := strings.TrimSpace(sel.Text())
		if utf8.RuneCountInString(title) < minGenericTitleLen {
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

		// Candidate posts live under the blog's own path scope, and
		// the index page itself is not a post.
		if basePath != "" && !strings.HasPrefix(u.Path, basePath) {
			return
		}
		if strings.TrimRight(u.Path, "/") == basePath {
			return
		}

		lowerPath := strings.ToLower(u.Path)
		for _, frag := range nonPostPathFragments {
			if strings.Contains(lowerPath, frag) {
				return
			}
		}

		date := dateNearLink(sel)
		if date == nil {
			date = extractDateFromURL(resolved)
		}

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

// Bounds for the DOM-proximity date search. Walking too far up or
// scanning too many siblings starts matching dates that belong to
// other posts or to the page chrome.
const (
	maxDateSearchLevels = 5
	maxContainerTextLen = 500
	maxSiblingTextLen   = 200
	maxForwardSiblings  = 6
	maxBackwardSiblings = 3
)

// dateNearLink walks upward from the link through ancestor containers,
// scanning a bounded window of sibling nodes at each level and the
// ancestor's own text when it is short enough to be a single entry.
func dateNearLink(link *goquery.Selection) *time.Time {
	if link.Length() == 0 {
		return nil
	}

	current := link.Get(0)
	for levels := 0; current != nil && levels < maxDateSearchLevels; levels++ {
		if d := searchSiblingDates(current); d != nil {
			return d
		}

		current = current.Parent
		if current == nil {
			break
		}
		// Page-level containers hold the whole page's text; matching
		// against them produces false positives.
		if current.Type == html.ElementNode {
			switch current.Data {
			case "body", "html", "main":
				return nil
			}
		}

		text := nodeText(current)
		if utf8.RuneCountInString(text) < maxContainerTextLen {
			if d := extractDate(text); d != nil {
				return d
			}
		}
	}

	return nil
}

// searchSiblingDates scans next siblings first (dates usually follow
// titles), then previous siblings.
func searchSiblingDates(n *html.Node) *time.Time {
	count := 0
	for s := n.NextSibling; s != nil && count < maxForwardSiblings; s = s.NextSibling {
		count++
		if d := siblingDate(s); d != nil {
			return d
		}
	}

	count = 0
	for s := n.PrevSibling; s != nil && count < maxBackwardSiblings; s = s.PrevSibling {
		count++
		if d := siblingDate(s); d != nil {
			return d
		}
	}

	return nil
}

func siblingDate(n *html.Node) *time.Time {
	text := strings.TrimSpace(nodeText(n))
	if text == "" || utf8.RuneCountInString(text) > maxSiblingTextLen {
		return nil
	}
	return extractDate(text)
}

// nodeText collects the text content of a node's subtree.
func nodeText(n *html.Node) string {
	if n == nil {
		return ""
	}
	if n.Type == html.TextNode {
		return n.Data
	}
	if n.Type == html.CommentNode {
		return ""
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(nodeText(c))
		b.WriteString(" ")
	}
	return b.String()
}

// ParsePost extracts the article body using common container shapes,
// most specific first.
func (p *GenericParser) ParsePost(rawHTML string, url string) (string, error) {
	doc, err := newDocument(rawHTML)
	if err != nil {
		return rawHTML, nil
	}

	candidates := []func() *goquery.Selection{
		func() *goquery.Selection { return doc.Find("article").First() },
		func() *goquery.Selection { return doc.Find("main").First() },
		func() *goquery.Selection { return findByClassPattern(doc, "div", genPrimaryContainerRE) },
		func() *goquery.Selection { return findByClassPattern(doc, "div", genSecondaryContainerRE) },
		func() *goquery.Selection { return findByIDPattern(doc, "div", genSecondaryContainerRE) },
	}

	for _, candidate := range candidates {
		article := candidate()
		if article.Length() == 0 {
			continue
		}
		detach(article.Find(chromeSelector))
		return outerHTML(article), nil
	}

	return strippedBody(doc, rawHTML), nil
}

// BlogTitle reads the page's title element.
func (p *GenericParser) BlogTitle(html string) string {
	return pageTitle(html, blogdoc.DefaultBlogTitle)
}
