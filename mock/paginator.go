package mock

import "github.com/fwojciec/blogdoc"

var _ blogdoc.Paginator = (*Paginator)(nil)

// Paginator is a mock implementation of blogdoc.Paginator.
type Paginator struct {
	NextPageFn func(html string, pageURL string) string
}

func (p *Paginator) NextPage(html string, pageURL string) string {
	return p.NextPageFn(html, pageURL)
}
