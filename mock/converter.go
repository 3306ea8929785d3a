package mock

import "github.com/fwojciec/blogdoc"

var _ blogdoc.Converter = (*Converter)(nil)

// Converter is a mock implementation of blogdoc.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
