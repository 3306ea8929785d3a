package main

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/fwojciec/blogdoc"
	"github.com/fwojciec/blogdoc/book"
	"github.com/fwojciec/blogdoc/crawl"
)

// Run executes the build command: discover posts, hydrate them,
// archive the result and assemble the output document.
func (c *BuildCmd) Run(deps *Dependencies) error {
	// Force mode: delete existing blog first
	if c.Force {
		existing, err := deps.Blogs.FindBlogs(deps.Ctx, blogdoc.BlogFilter{Name: &c.Name})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", blogdoc.ErrorMessage(err))
			return err
		}
		if len(existing) > 0 {
			if err := deps.Blogs.DeleteBlog(deps.Ctx, existing[0].ID); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", blogdoc.ErrorMessage(err))
				return err
			}
		}
	}

	var opts []crawl.DiscoverOption
	if c.Sitemap {
		opts = append(opts, crawl.WithSitemap(deps.Sitemaps))
	}

	discovery, err := deps.Crawler.Discover(deps.Ctx, c.URL, opts...)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", blogdoc.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Found %d posts using %q parser\n",
		len(discovery.Posts), discovery.Parser.Name())

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n",
				crawl.TruncateURL(event.URL, 60), event.Error)
		case crawl.ProgressFinished:
			// Summary printed after hydration completes
		}
	}

	result, err := deps.Crawler.Hydrate(deps.Ctx, discovery.Posts, discovery.Parser, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", blogdoc.ErrorMessage(err))
		return err
	}
	if result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, "%d posts failed to fetch\n", result.Failed)
	}
	fmt.Fprintf(deps.Stdout, "Fetched %d posts (%s)\n",
		result.Hydrated, crawl.FormatBytes(result.Bytes))

	// Archive hydrated posts so the document can be re-exported later
	// without re-crawling.
	blog := &blogdoc.Blog{
		Name:      c.Name,
		SourceURL: c.URL,
		Title:     discovery.Title,
		Parser:    discovery.Parser.Name(),
	}
	if err := deps.Blogs.CreateBlog(deps.Ctx, blog); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", blogdoc.ErrorMessage(err))
		return err
	}

	hydrated := make([]*blogdoc.Post, 0, len(discovery.Posts))
	for _, post := range discovery.Posts {
		if !post.Hydrated() {
			continue
		}
		post.BlogID = blog.ID
		post.Position = len(hydrated)
		if err := deps.Posts.CreatePost(deps.Ctx, post); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", blogdoc.ErrorMessage(err))
			return err
		}
		hydrated = append(hydrated, post)
	}
	fmt.Fprintf(deps.Stdout, "Archived blog %q (%s)\n", c.Name, blog.ID)

	output := c.Output
	if output == "" {
		output = defaultOutputName(c.URL, c.Format)
	}
	if err := writeDocument(hydrated, discovery.Title, c.Format, output, deps.Converter); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", blogdoc.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Wrote %s\n", output)
	return nil
}

// defaultOutputName derives an output filename from the blog URL:
// the domain with a leading "www." stripped and dots replaced by
// underscores, e.g. https://cedardb.com/blog/ -> cedardb_com_blog.html.
func defaultOutputName(rawURL string, format string) string {
	domain := "blog"
	if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
		domain = strings.TrimPrefix(u.Host, "www.")
		domain = strings.ReplaceAll(domain, ".", "_")
	}
	ext := "html"
	if format == "markdown" {
		ext = "md"
	}
	return domain + "_blog." + ext
}

// writeDocument assembles hydrated posts into the requested format
// and writes the result to path.
func writeDocument(posts []*blogdoc.Post, title, format, path string, conv blogdoc.Converter) error {
	var doc string
	var err error
	switch format {
	case "markdown":
		doc, err = book.BuildMarkdown(posts, title, conv)
	default:
		doc, err = book.BuildHTML(posts, title)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(doc), 0644)
}
