package crawl

import (
	"strings"
	"sync"

	"github.com/fwojciec/blogdoc/bloom"
)

// queueFalsePositiveRate is the acceptable false positive rate for the
// visited-set. A false positive makes the crawler skip a page it has
// not actually seen, which only costs coverage, never correctness.
const queueFalsePositiveRate = 0.01

// PageQueue is a FIFO queue of index-page URLs with Bloom filter
// deduplication. FIFO order makes the crawl breadth-first, so
// pagination is followed level by level. A URL is marked seen when it
// is pushed, so a pagination cycle can never re-enter the queue.
// It is safe for concurrent use by multiple goroutines.
type PageQueue struct {
	mu    sync.Mutex
	seen  *bloom.Filter
	queue []string
}

// NewPageQueue creates a PageQueue sized for n expected URLs.
func NewPageQueue(n uint) *PageQueue {
	return &PageQueue{
		seen: bloom.NewFilter(n, queueFalsePositiveRate),
	}
}

// Push adds a URL to the queue. Returns false if the URL has already
// been seen. Fragments are stripped first — URLs differing only by
// fragment are the same page.
func (q *PageQueue) Push(rawURL string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	url := stripFragment(rawURL)
	if q.seen.Test(url) {
		return false
	}
	q.seen.Add(url)
	q.queue = append(q.queue, url)
	return true
}

// Pop returns the oldest queued URL. The bool result is false if the
// queue is empty.
func (q *PageQueue) Pop() (string, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.queue) == 0 {
		return "", false
	}
	url := q.queue[0]
	q.queue = q.queue[1:]
	return url, true
}

// Len returns the number of queued URLs.
func (q *PageQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.queue)
}

// Seen returns true if the URL has been queued at some point.
// Fragments are stripped before checking.
func (q *PageQueue) Seen(rawURL string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.seen.Test(stripFragment(rawURL))
}

func stripFragment(url string) string {
	if idx := strings.Index(url, "#"); idx != -1 {
		return url[:idx]
	}
	return url
}
