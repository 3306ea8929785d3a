package slog

import (
	"log/slog"

	"github.com/fwojciec/blogdoc"
)

// Ensure LoggingRegistry implements blogdoc.ParserRegistry.
var _ blogdoc.ParserRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps a ParserRegistry and logs which parser was
// selected for a URL, so a run's output records whether a site parser
// or the generic fallback handled each blog.
type LoggingRegistry struct {
	next   blogdoc.ParserRegistry
	logger *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next blogdoc.ParserRegistry, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, logger: logger}
}

// Get delegates to the wrapped registry.
func (r *LoggingRegistry) Get(domain string) blogdoc.Parser {
	return r.next.Get(domain)
}

// GetForURL selects a parser for the URL and logs the selection.
func (r *LoggingRegistry) GetForURL(url string) blogdoc.Parser {
	parser := r.next.GetForURL(url)
	name := "(none)"
	if parser != nil {
		name = parser.Name()
	}
	r.logger.Info("parser selection",
		"url", url,
		"parser", name,
	)
	return parser
}

// Register delegates to the wrapped registry.
func (r *LoggingRegistry) Register(domain string, parser blogdoc.Parser) {
	r.next.Register(domain, parser)
}

// List delegates to the wrapped registry.
func (r *LoggingRegistry) List() []string {
	return r.next.List()
}
