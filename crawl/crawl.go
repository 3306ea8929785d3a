// Package crawl orchestrates blog archiving: discovering posts across
// paginated index pages, then hydrating each discovered post by
// fetching its page and extracting, cleaning and normalizing the
// article body.
package crawl

import (
	"time"

	"github.com/fwojciec/blogdoc"
)

// Crawler coordinates discovery and hydration for one blog.
type Crawler struct {
	Fetcher     blogdoc.Fetcher
	Parsers     blogdoc.ParserRegistry
	Paginator   blogdoc.Paginator
	Cleaner     blogdoc.Cleaner
	RateLimiter blogdoc.DomainLimiter

	// Extractor, when set, runs readability extraction alongside the
	// parser heuristic during hydration and keeps whichever result
	// carries more content. Nil means heuristics only.
	Extractor blogdoc.Extractor

	// Concurrency bounds the hydration worker pool. Discovery is
	// always sequential: each page's pagination link is only known
	// after fetching that page.
	Concurrency int

	// RetryDelays overrides the fetch retry backoff. Nil means
	// DefaultRetryDelays().
	RetryDelays []time.Duration
}

// Result holds the outcome of a hydration run.
type Result struct {
	Hydrated int
	Failed   int
	Bytes    int
}

// ProgressEvent reports progress during discovery or hydration.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting progress.
type ProgressFunc func(event ProgressEvent)
