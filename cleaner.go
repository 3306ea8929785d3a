package blogdoc

// Cleaner strips boilerplate from an extracted article fragment:
// subscribe forms, related-post teasers, share widgets, interactive
// UI, and similar non-article content. It also resolves relative
// hrefs and image sources against the post's URL so the assembled
// document links back to the live site.
type Cleaner interface {
	// Clean processes an article HTML fragment. baseURL may be empty,
	// in which case relative URLs are left as-is.
	Clean(html string, baseURL string) (string, error)
}

// Converter converts HTML content to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	Convert(html string) (string, error)
}

// ExtractResult holds readability-extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing
// boilerplate. It is an opt-in alternative to the per-site heuristics
// for sites the heuristics handle poorly.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	Extract(html string) (*ExtractResult, error)
}
