package mock

import "github.com/fwojciec/blogdoc"

var _ blogdoc.ParserRegistry = (*ParserRegistry)(nil)

// ParserRegistry is a mock implementation of blogdoc.ParserRegistry.
type ParserRegistry struct {
	GetFn       func(domain string) blogdoc.Parser
	GetForURLFn func(url string) blogdoc.Parser
	RegisterFn  func(domain string, parser blogdoc.Parser)
	ListFn      func() []string
}

func (r *ParserRegistry) Get(domain string) blogdoc.Parser {
	return r.GetFn(domain)
}

func (r *ParserRegistry) GetForURL(url string) blogdoc.Parser {
	return r.GetForURLFn(url)
}

func (r *ParserRegistry) Register(domain string, parser blogdoc.Parser) {
	r.RegisterFn(domain, parser)
}

func (r *ParserRegistry) List() []string {
	return r.ListFn()
}
