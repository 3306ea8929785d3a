package mock

import "github.com/fwojciec/blogdoc"

var _ blogdoc.Parser = (*Parser)(nil)

// Parser is a mock implementation of blogdoc.Parser.
type Parser struct {
	NameFn       func() string
	ParseIndexFn func(html string, baseURL string) ([]*blogdoc.Post, error)
	ParsePostFn  func(html string, url string) (string, error)
	BlogTitleFn  func(html string) string
}

func (p *Parser) Name() string {
	return p.NameFn()
}

func (p *Parser) ParseIndex(html string, baseURL string) ([]*blogdoc.Post, error) {
	return p.ParseIndexFn(html, baseURL)
}

func (p *Parser) ParsePost(html string, url string) (string, error) {
	return p.ParsePostFn(html, url)
}

func (p *Parser) BlogTitle(html string) string {
	return p.BlogTitleFn(html)
}
