package goquery

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/blogdoc"
)

var _ blogdoc.Cleaner = (*Cleaner)(nil)

// Cleaner strips promotional, navigational, and interactive content
// from extracted article fragments. The patterns below are tuned
// against real blogs; keep their ordering and case-insensitivity
// intact when extending them.
type Cleaner struct{}

// NewCleaner creates a new Cleaner.
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// unwantedClassPattern matches class/id substrings of content that
// never belongs in a printed article.
var unwantedClassPattern = regexp.MustCompile(`(?i)` + strings.Join([]string{
	// Subscribe/newsletter
	`subscribe`, `newsletter`, `signup`, `sign-up`, `email-form`, `mailchimp`,
	// Related posts / read more
	`related`, `you-might`, `also-like`, `recommended`, `more-posts`,
	`suggested`, `read-more`, `readmore`, `more-from`, `other-posts`,
	`next-posts`, `previous-posts`,
	// Social/sharing
	`share`, `social`, `twitter`, `facebook`, `linkedin`,
	// Author bio duplicating the post header
	`author-bio`, `author-info`, `about-author`, `post-author`, `byline`,
	// Comments
	`comment`, `disqus`,
	// Post navigation
	`prev-next`, `pagination`, `nav-post`, `post-nav`,
	// Interactive/playground/editor UI
	`editor`, `playground`, `interactive`, `code-runner`, `run-button`,
	`try-it`, `demo-controls`, `toolbar`, `action-bar`, `query-stats`,
	`execution-stats`,
	// Promotional calls to action
	`cta`, `call-to-action`, `promo`, `banner`, `waitlist`,
}, "|"))

// Phrases that mark a whole block as boilerplate when its text starts
// with (or equals) one of them.
var boilerplatePrefixes = []string{
	"subscribe",
	"subscribe to newsletter",
	"sign up",
	"you might also like",
	"read more in the",
	"read more in",
	"view all",
	"close editor",
	"run query",
	"query stats",
	"try it in",
	"sign up for our waitlist",
}

// Phrases that mark a short block as boilerplate when they appear
// anywhere in its text.
var boilerplateContains = []string{
	"if you liked this",
	"consider subscribing",
	"subscribe to",
	"email updates",
	"sharing it on",
	"share this post",
	"follow me on",
	"here's a preview",
	"related post",
	"continue reading",
}

// maxBoilerplateBlockLen bounds the contains-check to short blocks so
// a genuine paragraph mentioning "subscribe to" in passing survives.
const maxBoilerplateBlockLen = 300

// Blockquote text markers identifying related-post teaser cards.
var teaserQuoteMarkers = []string{
	"continue reading", "read more", "related:", "see also:",
}

// Clean processes an article HTML fragment: removes boilerplate
// subtrees, compacts footnotes, and resolves relative URLs against
// baseURL. Removal is two-phase (collect, then detach) so an earlier
// removal never invalidates the traversal.
func (c *Cleaner) Clean(rawHTML string, baseURL string) (string, error) {
	doc, err := newDocument(rawHTML)
	if err != nil {
		return rawHTML, nil
	}

	body := doc.Find("body").First()
	if body.Length() == 0 {
		return rawHTML, nil
	}

	c.removeUnwantedElements(body)
	c.removeBoilerplateText(body)
	detachFirstHeading(body)
	c.compactFootnotes(body)
	c.removeActionBlocks(body)
	c.removeTeaserQuotes(body)
	resolveRelativeURLs(body, baseURL)

	cleaned, err := body.Html()
	if err != nil {
		return rawHTML, nil
	}
	return cleaned, nil
}

func (c *Cleaner) removeUnwantedElements(body *goquery.Selection) {
	detachWhere(body.Find("*"), func(s *goquery.Selection) bool {
		return unwantedClassPattern.MatchString(classAndID(s))
	})

	// Interactive elements are unconditionally useless in print.
	detach(body.Find("form, iframe, button, input"))
	detach(body.Find("[onclick]"))
}

func (c *Cleaner) removeBoilerplateText(body *goquery.Selection) {
	detachWhere(body.Find("div, section, aside, p, h1, h2, h3, span"), func(s *goquery.Selection) bool {
		text := strings.ToLower(strings.TrimSpace(s.Text()))
		for _, phrase := range boilerplatePrefixes {
			if text == phrase || strings.HasPrefix(text, phrase) {
				return true
			}
		}
		return false
	})
}

// compactFootnotes relocates each footnote's back-reference link to
// the end of its last paragraph so the footnote renders on one line,
// and drops empty paragraphs inside footnote containers.
func (c *Cleaner) compactFootnotes(body *goquery.Selection) {
	body.Find("li[id]").Each(func(_ int, li *goquery.Selection) {
		id, _ := li.Attr("id")
		if !strings.HasPrefix(id, "fn") {
			return
		}

		backref := findBackref(li)
		if backref == nil {
			return
		}

		lastP := li.Find("p").Last()
		if lastP.Length() == 0 {
			return
		}
		moved := backref.Remove()
		lastP.AppendHtml(" ")
		lastP.AppendSelection(moved)
	})

	body.Find("*").Each(func(_ int, s *goquery.Selection) {
		if !strings.Contains(strings.ToLower(classAndID(s)), "footnote") {
			return
		}
		detachWhere(s.Find("p"), func(p *goquery.Selection) bool {
			return strings.TrimSpace(p.Text()) == ""
		})
	})
}

// findBackref locates a footnote back-reference link by class, href
// pattern, or the return-arrow glyph.
func findBackref(li *goquery.Selection) *goquery.Selection {
	var found *goquery.Selection
	li.Find("a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		class, _ := a.Attr("class")
		href, _ := a.Attr("href")
		if strings.Contains(strings.ToLower(class), "backref") ||
			strings.Contains(href, "#fnref") ||
			strings.Contains(a.Text(), "↩") {
			found = a
			return false
		}
		return true
	})
	return found
}

func (c *Cleaner) removeActionBlocks(body *goquery.Selection) {
	detachWhere(body.Find("p, div, section"), func(s *goquery.Selection) bool {
		text := strings.ToLower(strings.TrimSpace(s.Text()))
		if utf8.RuneCountInString(text) >= maxBoilerplateBlockLen {
			return false
		}
		for _, phrase := range boilerplateContains {
			if strings.Contains(text, phrase) {
				return true
			}
		}
		return false
	})
}

// removeTeaserQuotes drops blockquotes that are related-post preview
// cards rather than genuine quotations: either styled like a card
// (inline border/padding with a bold lead paragraph) or carrying
// teaser text.
func (c *Cleaner) removeTeaserQuotes(body *goquery.Selection) {
	detachWhere(body.Find("blockquote"), func(q *goquery.Selection) bool {
		style, _ := q.Attr("style")
		isStyledCard := strings.Contains(style, "border-left") && strings.Contains(style, "padding")

		if isStyledCard {
			firstP := q.Find("p").First()
			if firstP.Length() > 0 {
				pStyle, _ := firstP.Attr("style")
				if strings.Contains(pStyle, "font-weight") &&
					(strings.Contains(pStyle, "600") || strings.Contains(strings.ToLower(pStyle), "bold")) {
					return true
				}
			}
		}

		text := strings.ToLower(strings.TrimSpace(q.Text()))
		for _, marker := range teaserQuoteMarkers {
			if strings.Contains(text, marker) {
				return true
			}
		}
		return false
	})
}

// resolveRelativeURLs rewrites relative hrefs and image sources to
// absolute URLs so the assembled document links back to the live site.
func resolveRelativeURLs(body *goquery.Selection, baseURL string) {
	if baseURL == "" {
		return
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return
	}

	body.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if isSkippableHref(href) || strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
			return
		}
		if resolved := resolveReference(base, href); resolved != "" {
			a.SetAttr("href", resolved)
		}
	})

	body.Find("img[src]").Each(func(_ int, img *goquery.Selection) {
		src, _ := img.Attr("src")
		if src == "" || strings.HasPrefix(src, "http://") ||
			strings.HasPrefix(src, "https://") || strings.HasPrefix(src, "data:") {
			return
		}
		if resolved := resolveReference(base, src); resolved != "" {
			img.SetAttr("src", resolved)
		}
	})
}

func resolveReference(base *url.URL, ref string) string {
	parsed, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	return base.ResolveReference(parsed).String()
}
