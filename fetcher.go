package blogdoc

import "context"

// Fetcher retrieves raw HTML from URLs. The contract is deliberately
// small: fetch text or fail. Transport failures (non-2xx status,
// timeout, DNS, connection reset) surface as EUNAVAILABLE errors
// carrying the URL and the underlying cause.
type Fetcher interface {
	// Fetch retrieves the page at url. The context controls timeout
	// and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// SitemapService discovers post URLs from a site's sitemap. Sitemaps
// are a crawl aid for blogs whose index pages enumerate only recent
// posts; they supplement index-page discovery, they do not replace it.
type SitemapService interface {
	// DiscoverURLs returns all sitemap URLs under baseURL's path.
	// Returns an empty slice (not an error) when the site has no
	// sitemap.
	DiscoverURLs(ctx context.Context, baseURL string) ([]string, error)
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
