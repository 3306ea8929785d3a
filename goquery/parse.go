// Package goquery provides goquery-based implementations of the
// blogdoc parsing interfaces: site-specific index/post parsers, the
// generic fallback parser, and the content cleaner.
package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// chromeSelector matches page chrome that never belongs in an
// extracted article body.
const chromeSelector = "nav, header, footer, aside, script, style"

// newDocument parses markup leniently. The underlying parser follows
// the WHATWG recovery rules, so syntactically broken HTML still yields
// a tree rather than an error.
func newDocument(html string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(html))
}

// resolveURL resolves a relative href against a base URL and strips
// the fragment, which never identifies a distinct post.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""
	return resolved.String()
}

// isSkippableHref reports whether a link target can never be a post:
// anchor-only links and non-HTTP schemes.
func isSkippableHref(href string) bool {
	href = strings.TrimSpace(strings.ToLower(href))
	return href == "" ||
		strings.HasPrefix(href, "#") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "javascript:")
}

// sameDomain reports whether a resolved URL belongs to the blog's
// domain. The check is containment rather than equality so that
// "blog.example.com" still counts for a blog hosted at "example.com".
func sameDomain(base *url.URL, u *url.URL) bool {
	return strings.Contains(u.Host, base.Host)
}

// headingText returns the trimmed text of the first nested heading
// matching selector, or "" if there is none. Index link text often
// concatenates date, title and teaser; a nested heading is the cleaner
// source for the title.
func headingText(sel *goquery.Selection, selector string) string {
	h := sel.Find(selector).First()
	if h.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(h.Text())
}

// classAndID returns the element's class list and id joined into one
// string for pattern matching.
func classAndID(sel *goquery.Selection) string {
	class, _ := sel.Attr("class")
	id, _ := sel.Attr("id")
	return class + " " + id
}

// detach removes every element of sel from the document. Matches are
// collected into a slice before any node is detached so that removal
// never invalidates an in-progress traversal.
func detach(sel *goquery.Selection) {
	var doomed []*goquery.Selection
	sel.Each(func(_ int, s *goquery.Selection) {
		doomed = append(doomed, s)
	})
	for _, s := range doomed {
		s.Remove()
	}
}

// detachWhere removes the elements of sel for which pred is true,
// using the same collect-then-detach discipline as detach.
func detachWhere(sel *goquery.Selection, pred func(*goquery.Selection) bool) {
	var doomed []*goquery.Selection
	sel.Each(func(_ int, s *goquery.Selection) {
		if pred(s) {
			doomed = append(doomed, s)
		}
	})
	for _, s := range doomed {
		s.Remove()
	}
}

// detachClassPattern removes descendants of root whose class or id
// matches re.
func detachClassPattern(root *goquery.Selection, re *regexp.Regexp) {
	detachWhere(root.Find("*"), func(s *goquery.Selection) bool {
		return re.MatchString(classAndID(s))
	})
}

// findByClassPattern returns the first descendant with the given tag
// whose class attribute matches re.
func findByClassPattern(doc *goquery.Document, tag string, re *regexp.Regexp) *goquery.Selection {
	return doc.Find(tag).FilterFunction(func(_ int, s *goquery.Selection) bool {
		class, _ := s.Attr("class")
		return re.MatchString(class)
	}).First()
}

// findByIDPattern returns the first descendant with the given tag
// whose id attribute matches re.
func findByIDPattern(doc *goquery.Document, tag string, re *regexp.Regexp) *goquery.Selection {
	return doc.Find(tag).FilterFunction(func(_ int, s *goquery.Selection) bool {
		id, _ := s.Attr("id")
		return re.MatchString(id)
	}).First()
}

// relatedPostLinkThreshold is the number of same-blog links at which a
// container is treated as a related-posts block rather than content.
const relatedPostLinkThreshold = 3

// detachRelatedPostBlocks removes sections and divs holding clusters
// of links to other posts under pathFragment (e.g. "/blog/"). These
// are cross-link grids, not article content.
func detachRelatedPostBlocks(root *goquery.Selection, pathFragment string) {
	detachWhere(root.Find("section, div"), func(s *goquery.Selection) bool {
		count := 0
		s.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
			if href, ok := a.Attr("href"); ok && strings.Contains(href, pathFragment) {
				count++
			}
		})
		return count >= relatedPostLinkThreshold
	})
}

// detachFirstHeading removes the first h1, which duplicates the title
// rendered by the document assembler.
func detachFirstHeading(root *goquery.Selection) {
	root.Find("h1").First().Remove()
}

// outerHTML renders a selection including its own tags. Render errors
// cannot occur for nodes already held in a parsed tree, so failures
// degrade to an empty string.
func outerHTML(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}
	html, err := goquery.OuterHtml(sel)
	if err != nil {
		return ""
	}
	return html
}

// strippedBody returns the page body with chrome removed. This is the
// last-resort fallback: even structurally unexpected pages yield
// something printable.
func strippedBody(doc *goquery.Document, rawHTML string) string {
	body := doc.Find("body").First()
	if body.Length() == 0 {
		return rawHTML
	}
	detach(body.Find(chromeSelector))
	return outerHTML(body)
}

// pageTitle extracts the page's <title> text, trimmed, falling back to
// the fixed placeholder.
func pageTitle(html string, placeholder string) string {
	doc, err := newDocument(html)
	if err != nil {
		return placeholder
	}
	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		return placeholder
	}
	return title
}
