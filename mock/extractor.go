package mock

import "github.com/fwojciec/easynews"

var _ easynews.BodyExtractor = (*BodyExtractor)(nil)

// BodyExtractor is a mock implementation of easynews.BodyExtractor.
type BodyExtractor struct {
	ExtractParagraphsFn func(html string) ([]string, error)
}

func (e *BodyExtractor) ExtractParagraphs(html string) ([]string, error) {
	return e.ExtractParagraphsFn(html)
}
