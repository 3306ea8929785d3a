package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/blogdoc"
	"github.com/fwojciec/blogdoc/crawl"
	"github.com/fwojciec/blogdoc/goquery"
	"github.com/fwojciec/blogdoc/htmltomarkdown"
	bloghttp "github.com/fwojciec/blogdoc/http"
	blogslog "github.com/fwojciec/blogdoc/slog"
	"github.com/fwojciec/blogdoc/sqlite"
	"github.com/fwojciec/blogdoc/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	BlogService blogdoc.BlogService
	PostService blogdoc.PostService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("blogdoc"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'blogdoc --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set BLOGDOC_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.BlogService = sqlite.NewBlogService(m.DB)
	m.PostService = sqlite.NewPostService(m.DB)
	deps.DB = m.DB
	deps.Blogs = m.BlogService
	deps.Posts = m.PostService
	deps.Converter = htmltomarkdown.NewConverter()

	// Commands that reach the network get a crawler. Verbose mode
	// wraps the fetcher and registry in logging decorators.
	if cmd == "build" || cmd == "discover" {
		var fetcher blogdoc.Fetcher = bloghttp.NewFetcher()
		var registry blogdoc.ParserRegistry = goquery.NewDefaultRegistry()
		if cli.Verbose {
			logger := slog.New(slog.NewTextHandler(stderr, nil))
			fetcher = blogslog.NewLoggingFetcher(fetcher, logger)
			registry = blogslog.NewLoggingRegistry(registry, logger)
		}
		defer fetcher.Close()

		deps.Sitemaps = bloghttp.NewSitemapService(nil)
		deps.Crawler = &crawl.Crawler{
			Fetcher:     fetcher,
			Parsers:     registry,
			Paginator:   goquery.NewPaginator(),
			Cleaner:     goquery.NewCleaner(),
			RateLimiter: crawl.NewDomainLimiter(1.0),
		}
		if cmd == "build" {
			if cli.Build.Readability {
				deps.Crawler.Extractor = trafilatura.NewExtractor()
			}
			if cli.Build.Concurrency > 0 {
				deps.Crawler.Concurrency = cli.Build.Concurrency
			}
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("BLOGDOC_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "blogdoc.db"
	}
	dir := filepath.Join(home, ".blogdoc")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "blogdoc.db")
}
