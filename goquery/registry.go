package goquery

import (
	"net/url"
	"strings"

	"github.com/fwojciec/blogdoc"
)

var _ blogdoc.ParserRegistry = (*Registry)(nil)

// Registry maps blog domains to site-specific parsers, falling back
// to the generic parser for unknown domains. The mapping is built at
// startup and read-only afterwards, so lookups need no locking.
type Registry struct {
	parsers  map[string]blogdoc.Parser
	fallback blogdoc.Parser
}

// NewRegistry creates an empty Registry with the given fallback parser.
func NewRegistry(fallback blogdoc.Parser) *Registry {
	return &Registry{
		parsers:  make(map[string]blogdoc.Parser),
		fallback: fallback,
	}
}

// NewDefaultRegistry creates a Registry with all site parsers
// registered and the generic parser as fallback.
func NewDefaultRegistry() *Registry {
	r := NewRegistry(NewGenericParser())
	r.Register("cedardb.com", NewCedarDBParser())
	r.Register("tigerbeetle.com", NewTigerBeetleParser())
	r.Register("sirupsen.com", NewSirupsenParser())
	return r
}

// Get returns the parser registered for a domain, or nil. A leading
// "www." is stripped before lookup.
func (r *Registry) Get(domain string) blogdoc.Parser {
	return r.parsers[normalizeDomain(domain)]
}

// GetForURL returns the parser for the URL's domain, falling back to
// the generic parser for unknown domains or unparseable URLs.
func (r *Registry) GetForURL(rawURL string) blogdoc.Parser {
	u, err := url.Parse(rawURL)
	if err != nil {
		return r.fallback
	}
	if p := r.Get(u.Host); p != nil {
		return p
	}
	return r.fallback
}

// Register adds a parser for a domain. An existing registration for
// the same domain is replaced.
func (r *Registry) Register(domain string, parser blogdoc.Parser) {
	r.parsers[normalizeDomain(domain)] = parser
}

// List returns all registered domains.
func (r *Registry) List() []string {
	domains := make([]string, 0, len(r.parsers))
	for d := range r.parsers {
		domains = append(domains, d)
	}
	return domains
}

func normalizeDomain(domain string) string {
	return strings.TrimPrefix(strings.ToLower(domain), "www.")
}
