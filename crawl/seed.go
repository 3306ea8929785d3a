package crawl

import (
	"context"
	"net/url"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/fwojciec/blogdoc"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Path fragments that mark a sitemap URL as something other than a
// post. Mirrors the scope rules the generic parser applies to index
// links.
var seedSkipFragments = []string{
	"/tag/", "/tags/", "/category/", "/categories/", "/author/",
	"/page/", "/search/", "/about/", "/contact/", "/subscribe/",
	".xml", ".rss", ".json",
}

var (
	seedDatePathRE = regexp.MustCompile(`/(\d{4})/(\d{2})/(\d{2})/`)
	seedDateSlugRE = regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})-`)
	slugTitler     = cases.Title(language.English)
)

// seedFromSitemap turns sitemap URLs under the blog's path into
// discovered posts. A sitemap entry carries no markup, so the title is
// derived from the URL slug and the date from URL-embedded patterns;
// hydration later fetches the real content. URLs outside the blog's
// path scope or matching non-post path fragments are dropped.
func (c *Crawler) seedFromSitemap(ctx context.Context, sourceURL string, sitemap blogdoc.SitemapService) []*blogdoc.Post {
	urls, err := sitemap.DiscoverURLs(ctx, sourceURL)
	if err != nil {
		return nil
	}

	base, err := url.Parse(sourceURL)
	if err != nil {
		return nil
	}

	var posts []*blogdoc.Post
	for _, rawURL := range urls {
		u, err := url.Parse(rawURL)
		if err != nil {
			continue
		}
		if u.Host != base.Host || !strings.HasPrefix(u.Path, base.Path) {
			continue
		}
		// The index page itself is not a post.
		if strings.TrimSuffix(u.Path, "/") == strings.TrimSuffix(base.Path, "/") {
			continue
		}
		if hasSkipFragment(u.Path) {
			continue
		}

		title := slugTitle(u.Path)
		if title == "" {
			continue
		}

		posts = append(posts, &blogdoc.Post{
			Title: title,
			URL:   rawURL,
			Date:  seedDate(u.Path),
		})
	}
	return posts
}

func hasSkipFragment(urlPath string) bool {
	lower := strings.ToLower(urlPath)
	for _, fragment := range seedSkipFragments {
		if strings.Contains(lower, fragment) {
			return true
		}
	}
	return false
}

// slugTitle derives a display title from a URL's last path segment:
// "/blog/2024-12-19-enum-of-arrays/" becomes "Enum Of Arrays".
func slugTitle(urlPath string) string {
	slug := path.Base(strings.TrimSuffix(urlPath, "/"))
	slug = strings.TrimSuffix(slug, path.Ext(slug))
	slug = seedDateSlugRE.ReplaceAllString(slug, "")
	slug = strings.NewReplacer("-", " ", "_", " ").Replace(slug)
	slug = strings.Join(strings.Fields(slug), " ")
	if slug == "" || slug == "." || slug == "/" {
		return ""
	}
	return slugTitler.String(slug)
}

// seedDate extracts a date embedded in the URL path, or nil.
func seedDate(urlPath string) *time.Time {
	m := seedDatePathRE.FindStringSubmatch(urlPath)
	if m == nil {
		m = seedDateSlugRE.FindStringSubmatch(urlPath)
	}
	if m == nil {
		return nil
	}
	t, err := time.Parse("2006-01-02", m[1]+"-"+m[2]+"-"+m[3])
	if err != nil {
		return nil
	}
	return &t
}
