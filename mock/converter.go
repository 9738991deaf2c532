package mock

import "github.com/fwojciec/easynews"

var _ easynews.Converter = (*Converter)(nil)

// Converter is a mock implementation of easynews.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
