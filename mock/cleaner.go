package mock

import "github.com/fwojciec/blogdoc"

var _ blogdoc.Cleaner = (*Cleaner)(nil)

// Cleaner is a mock implementation of blogdoc.Cleaner.
type Cleaner struct {
	CleanFn func(html string, baseURL string) (string, error)
}

func (c *Cleaner) Clean(html string, baseURL string) (string, error) {
	return c.CleanFn(html, baseURL)
}
