package goquery

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/blogdoc"
)

var _ blogdoc.Paginator = (*Paginator)(nil)

// Paginator locates "next index page" links. Three signals are tried
// in descending order of confidence:
//
//  1. an anchor whose text matches "older post(s)" — blogs that use
//     this phrasing always point it at the next archive page;
//  2. the highest /page/<N>/ link whose N exceeds the current page's
//     own number;
//  3. an anchor whose whole text is a "next page" / "more posts" /
//     "load more" phrasing.
//
// The patterns are tuned against real blogs; first match wins.
type Paginator struct{}

// NewPaginator creates a new Paginator.
func NewPaginator() *Paginator {
	return &Paginator{}
}

var (
	pageNumberRE = regexp.MustCompile(`/page/(\d+)/?$`)
	olderPostsRE = regexp.MustCompile(`(?i)older\s*posts?`)
	nextPhraseRE = regexp.MustCompile(`(?i)^(next\s*page\s*→?|next\s*→|more\s*posts?\s*→?|load\s*more\s*→?)$`)
)

// NextPage returns the absolute URL of the next index page found in
// html, or "" when no pagination link is recognized. Relative hrefs
// are resolved against pageURL.
func (p *Paginator) NextPage(html string, pageURL string) string {
	doc, err := newDocument(html)
	if err != nil {
		return ""
	}
	base, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}

	currentPage := 1
	if m := pageNumberRE.FindStringSubmatch(base.Path); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			currentPage = n
		}
	}

	links := doc.Find("a[href]")

	// "Older Posts" beats everything else.
	if next := firstAnchorURL(links, base, func(text, _ string) bool {
		return olderPostsRE.MatchString(text)
	}); next != "" {
		return next
	}

	// Highest numbered page link past the current one.
	highestPage := currentPage
	highestURL := ""
	links.Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		m := pageNumberRE.FindStringSubmatch(href)
		if m == nil {
			return
		}
		n, err := strconv.Atoi(m[1])
		if err != nil || n <= highestPage {
			return
		}
		if resolved := resolveURL(base, href); resolved != "" {
			highestPage = n
			highestURL = resolved
		}
	})
	if highestURL != "" {
		return highestURL
	}

	// Generic "next"/"more" phrasings. Very short anchor text ("<",
	// "»") is too ambiguous to follow.
	return firstAnchorURL(links, base, func(text, _ string) bool {
		return len(text) >= 4 && nextPhraseRE.MatchString(text)
	})
}

// firstAnchorURL returns the resolved URL of the first anchor whose
// trimmed text and href satisfy match, or "".
func firstAnchorURL(links *goquery.Selection, base *url.URL, match func(text, href string) bool) string {
	result := ""
	links.EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		text := strings.TrimSpace(a.Text())
		if !match(text, href) {
			return true
		}
		if resolved := resolveURL(base, href); resolved != "" {
			result = resolved
			return false
		}
		return true
	})
	return result
}
