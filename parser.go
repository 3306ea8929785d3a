package blogdoc

// DefaultBlogTitle is the placeholder used when a page carries no
// usable title element.
const DefaultBlogTitle = "Engineering Blog"

// Parser extracts posts from a blog's HTML. Implementations encode
// the markup conventions of one site, or best-effort heuristics for
// unknown sites.
//
// Parsers are tolerant by contract: malformed markup yields an empty
// list (ParseIndex) or a degraded fragment (ParsePost), never a panic.
// Partial or ugly extraction is preferable to losing a post.
type Parser interface {
	// Name returns a stable human-readable identifier, used only for
	// diagnostics.
	Name() string

	// ParseIndex extracts discovered posts from one index page.
	// Relative links are resolved against baseURL, which is the
	// original blog URL rather than the current paginated page so
	// path-scope filtering stays consistent across pages. Returned
	// posts have empty Content. Order is not significant.
	ParseIndex(html string, baseURL string) ([]*Post, error)

	// ParsePost extracts the best-effort article body from a single
	// post page as an HTML fragment, never the whole page. If no
	// content container can be identified it falls back to the full
	// body with chrome (nav, header, footer, aside, script, style)
	// stripped, so a non-empty return is always treated as success.
	ParsePost(html string, url string) (string, error)

	// BlogTitle returns the blog's display title from an index page,
	// or DefaultBlogTitle when no title element exists. Site parsers
	// may return a fixed string.
	BlogTitle(html string) string
}

// Paginator finds the link to the next index page, if any.
type Paginator interface {
	// NextPage returns the absolute URL of the next index page found
	// in html, or "" when the page carries no pagination link.
	// Relative links are resolved against pageURL, the page the
	// markup came from (not the original blog URL, since pagination
	// links are written relative to the page they appear on).
	NextPage(html string, pageURL string) string
}

// ParserRegistry maps blog domains to site-specific parsers.
type ParserRegistry interface {
	// Get returns the parser registered for a domain, or nil.
	// A leading "www." on the domain is ignored.
	Get(domain string) Parser

	// GetForURL returns the parser for the URL's domain, falling back
	// to the generic parser for unknown domains or unparseable URLs.
	GetForURL(url string) Parser

	// Register adds a parser for a domain.
	Register(domain string, parser Parser)

	// List returns all registered domains.
	List() []string
}
