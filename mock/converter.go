package mock

import "github.com/fwojciec/postport"

var _ postport.Converter = (*Converter)(nil)

// Converter is a mock implementation of postport.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
