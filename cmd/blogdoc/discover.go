package main

import (
	"fmt"

	"github.com/fwojciec/blogdoc"
	"github.com/fwojciec/blogdoc/crawl"
)

// Run executes the discover command: list the posts a build would
// archive, without fetching any post content.
func (c *DiscoverCmd) Run(deps *Dependencies) error {
	var opts []crawl.DiscoverOption
	if c.Sitemap {
		opts = append(opts, crawl.WithSitemap(deps.Sitemaps))
	}

	discovery, err := deps.Crawler.Discover(deps.Ctx, c.URL, opts...)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", blogdoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s: %d posts (parser %q)\n\n",
		discovery.Title, len(discovery.Posts), discovery.Parser.Name())
	for _, post := range discovery.Posts {
		date := "no date"
		if post.Date != nil {
			date = post.Date.Format("2006-01-02")
		}
		fmt.Fprintf(deps.Stdout, "  %s  %s\n          %s\n", date, post.Title, post.URL)
	}
	return nil
}
