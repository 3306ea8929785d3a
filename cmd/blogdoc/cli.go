package main

import (
	"context"
	"io"

	"github.com/fwojciec/blogdoc"
	"github.com/fwojciec/blogdoc/crawl"
	"github.com/fwojciec/blogdoc/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Blogs     blogdoc.BlogService
	Posts     blogdoc.PostService
	Sitemaps  blogdoc.SitemapService
	Converter blogdoc.Converter
	Crawler   *crawl.Crawler
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log fetches and parser selection to stderr"`

	Build    BuildCmd    `cmd:"" help:"Archive a blog and assemble it into a document"`
	Discover DiscoverCmd `cmd:"" help:"Preview the posts found at a blog URL without fetching content"`
	List     ListCmd     `cmd:"" help:"List archived blogs"`
	Export   ExportCmd   `cmd:"" help:"Re-assemble a document from an archived blog"`
	Delete   DeleteCmd   `cmd:"" help:"Delete an archived blog and its posts"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	Name string `arg:"" help:"Blog name"`
	URL  string `arg:"" help:"Blog index URL, e.g. https://cedardb.com/blog/"`

	Output      string `short:"o" help:"Output file path. Defaults to {domain}_blog.{ext}"`
	Format      string `default:"html" enum:"html,markdown" help:"Output format (html or markdown)"`
	Sitemap     bool   `help:"Seed discovery from the site's sitemap"`
	Readability bool   `help:"Arbitrate parser extraction against readability extraction"`
	Force       bool   `short:"f" help:"Delete an existing archive of the same name first"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent fetch limit"`
}

// DiscoverCmd is the "discover" subcommand.
type DiscoverCmd struct {
	URL     string `arg:"" help:"Blog index URL"`
	Sitemap bool   `help:"Seed discovery from the site's sitemap"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Name string `arg:"" help:"Blog name"`

	Output string `short:"o" help:"Output file path. Defaults to {domain}_blog.{ext}"`
	Format string `default:"html" enum:"html,markdown" help:"Output format (html or markdown)"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Name  string `arg:"" help:"Blog name"`
	Force bool   `help:"Confirm deletion"`
}
