package crawl

import (
	"context"
	"sync/atomic"

	"github.com/fwojciec/blogdoc"
	"github.com/fwojciec/blogdoc/normalize"
	"golang.org/x/sync/errgroup"
)

// hydrateResult holds the outcome of hydrating a single post.
type hydrateResult struct {
	position int
	url      string
	content  string
	hash     string
	err      error
}

// Hydrate fetches and extracts the content of every discovered post
// through a bounded worker pool. Failures are isolated: a post that
// cannot be fetched or extracted is left unhydrated and the rest of
// the batch proceeds. Posts are updated in place, so the caller's
// date/title ordering is preserved regardless of fetch completion
// order.
//
// Returns ENOTFOUND when not a single post could be hydrated.
func (c *Crawler) Hydrate(ctx context.Context, posts []*blogdoc.Post, parser blogdoc.Parser, progress ProgressFunc) (*Result, error) {
	if len(posts) == 0 {
		return nil, blogdoc.Errorf(blogdoc.ENOTFOUND, "no posts to hydrate")
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	resultCh := make(chan hydrateResult, len(posts))

	var completed atomic.Int64
	total := len(posts)

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, post := range posts {
			i, post := i, post
			g.Go(func() error {
				resultCh <- c.hydratePost(gctx, i, post, parser)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]hydrateResult, len(posts))
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result

		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Completed: int(completed.Load()),
			Total:     total,
			URL:       result.url,
		}
		if result.err != nil {
			event.Type = ProgressFailed
			event.Error = result.err
		} else {
			event.Type = ProgressCompleted
		}
		progress(event)
	}

	var res Result
	for i, result := range results {
		if result.err != nil {
			res.Failed++
			continue
		}
		posts[i].Content = result.content
		posts[i].ContentHash = result.hash
		res.Hydrated++
		res.Bytes += len(result.content)
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	if res.Hydrated == 0 {
		return nil, blogdoc.Errorf(blogdoc.ENOTFOUND,
			"none of the %d posts could be hydrated", len(posts))
	}

	return &res, nil
}

// hydratePost fetches one post and runs it through the extraction
// pipeline: parser heuristic (optionally arbitrated against the
// readability extractor), cleaner, then text normalization.
func (c *Crawler) hydratePost(ctx context.Context, position int, post *blogdoc.Post, parser blogdoc.Parser) hydrateResult {
	result := hydrateResult{
		position: position,
		url:      post.URL,
	}

	if err := c.waitForDomain(ctx, post.URL); err != nil {
		result.err = err
		return result
	}

	html, err := c.fetch(ctx, post.URL)
	if err != nil {
		result.err = err
		return result
	}

	fragment, err := parser.ParsePost(html, post.URL)
	if err != nil {
		result.err = err
		return result
	}

	if c.Extractor != nil {
		if extracted, err := c.Extractor.Extract(html); err == nil {
			if ContentDiffers(fragment, extracted.ContentHTML) {
				fragment = extracted.ContentHTML
			}
		}
	}

	if c.Cleaner != nil {
		cleaned, err := c.Cleaner.Clean(fragment, post.URL)
		if err != nil {
			result.err = err
			return result
		}
		fragment = cleaned
	}

	content := normalize.Text(normalize.Math(fragment))

	result.content = content
	result.hash = computeHash(content)
	return result
}
