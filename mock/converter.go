package mock

import "github.com/fwojciec/provscan"

var _ provscan.Converter = (*Converter)(nil)

// Converter is a mock implementation of provscan.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ provscan.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of provscan.ContentExtractor.
type ContentExtractor struct {
	ExtractTextFn func(html string) (string, error)
}

func (e *ContentExtractor) ExtractText(html string) (string, error) {
	return e.ExtractTextFn(html)
}
