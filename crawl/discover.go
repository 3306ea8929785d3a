package crawl

import (
	"context"
	"net/url"

	"github.com/fwojciec/blogdoc"
	"github.com/fwojciec/blogdoc/normalize"
)

// maxIndexPages is the hard ceiling on index pages visited in one
// discovery run. It guarantees termination even when a pagination
// graph is cyclic or unbounded.
const maxIndexPages = 50

// DiscoverOption configures a discovery run.
type DiscoverOption func(*discoverConfig)

type discoverConfig struct {
	parser  blogdoc.Parser
	sitemap blogdoc.SitemapService
}

// WithParser overrides domain-based parser selection.
func WithParser(p blogdoc.Parser) DiscoverOption {
	return func(c *discoverConfig) {
		c.parser = p
	}
}

// WithSitemap supplements index-page discovery with URLs from the
// site's sitemap. Sitemap posts carry slug-derived titles and
// URL-embedded dates only, so index pages stay the primary source.
func WithSitemap(s blogdoc.SitemapService) DiscoverOption {
	return func(c *discoverConfig) {
		c.sitemap = s
	}
}

// Discover finds all posts on the blog at sourceURL by walking its
// index pages breadth-first, following one pagination link per page.
//
// Relative post links on every page are resolved against sourceURL,
// not the current paginated URL, so path-scope filters behave the same
// on page 1 and page 9. Pagination links, by contrast, are resolved
// against the page they appear on.
//
// Fetch failures skip the affected page; a page cycle or more than
// maxIndexPages pages ends the walk. Returns ENOTFOUND when the walk
// finishes with zero posts.
func (c *Crawler) Discover(ctx context.Context, sourceURL string, opts ...DiscoverOption) (*blogdoc.Discovery, error) {
	var cfg discoverConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	parser := cfg.parser
	if parser == nil {
		parser = c.Parsers.GetForURL(sourceURL)
	}

	queue := NewPageQueue(maxIndexPages)
	queue.Push(sourceURL)

	var posts []*blogdoc.Post
	seen := make(map[string]bool)
	title := ""
	pagesVisited := 0

	for pagesVisited < maxIndexPages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		pageURL, ok := queue.Pop()
		if !ok {
			break
		}
		pagesVisited++

		if err := c.waitForDomain(ctx, pageURL); err != nil {
			return nil, err
		}

		html, err := c.fetch(ctx, pageURL)
		if err != nil {
			continue
		}

		if title == "" {
			title = parser.BlogTitle(html)
		}

		pagePosts, err := parser.ParseIndex(html, sourceURL)
		if err != nil {
			pagePosts = nil
		}
		for _, post := range pagePosts {
			if seen[post.URL] {
				continue
			}
			seen[post.URL] = true
			post.Title = normalize.Text(post.Title)
			posts = append(posts, post)
		}

		if c.Paginator == nil {
			continue
		}
		if next := c.Paginator.NextPage(html, pageURL); next != "" {
			queue.Push(next)
		}
	}

	if cfg.sitemap != nil {
		seeded := c.seedFromSitemap(ctx, sourceURL, cfg.sitemap)
		for _, post := range seeded {
			if seen[post.URL] {
				continue
			}
			seen[post.URL] = true
			posts = append(posts, post)
		}
	}

	if title == "" {
		title = blogdoc.DefaultBlogTitle
	}
	title = normalize.Text(title)

	if len(posts) == 0 {
		return nil, blogdoc.Errorf(blogdoc.ENOTFOUND,
			"no posts found at %q (parser %q)", sourceURL, parser.Name())
	}

	blogdoc.SortPosts(posts)

	return &blogdoc.Discovery{
		Posts:  posts,
		Parser: parser,
		Title:  title,
	}, nil
}

// waitForDomain applies the per-domain rate limit, if configured.
func (c *Crawler) waitForDomain(ctx context.Context, rawURL string) error {
	if c.RateLimiter == nil {
		return nil
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil
	}
	return c.RateLimiter.Wait(ctx, u.Host)
}

// fetch retrieves a URL with the configured retry backoff.
func (c *Crawler) fetch(ctx context.Context, rawURL string) (string, error) {
	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	return FetchWithRetryDelays(ctx, rawURL, c.Fetcher.Fetch, nil, delays)
}
