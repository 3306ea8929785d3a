package mock

import "github.com/fwojciec/blogdoc"

var _ blogdoc.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of blogdoc.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*blogdoc.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*blogdoc.ExtractResult, error) {
	return e.ExtractFn(html)
}
