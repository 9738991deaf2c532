// Package goquery provides HTML extraction for article pages using goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/easynews"
)

// Ensure Extractor implements easynews.BodyExtractor at compile time.
var _ easynews.BodyExtractor = (*Extractor)(nil)

// Extractor collects body paragraphs from article pages.
type Extractor struct {
	container string
	paragraph string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithContainer sets the CSS selector of the body container.
// Defaults to easynews.DefaultBodySelector.
func WithContainer(selector string) Option {
	return func(e *Extractor) {
		e.container = selector
	}
}

// WithParagraph sets the CSS selector of paragraph elements inside the container.
// Defaults to "p".
func WithParagraph(selector string) Option {
	return func(e *Extractor) {
		e.paragraph = selector
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		container: easynews.DefaultBodySelector,
		paragraph: "p",
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractParagraphs returns the trimmed inner HTML of each paragraph in the
// body container. Only the first matching container is used.
func (e *Extractor) ExtractParagraphs(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, easynews.Errorf(easynews.EINVALID, "failed to parse HTML: %v", err)
	}

	paragraphs := []string{}

	var innerErr error
	doc.Find(e.container).First().Find(e.paragraph).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		inner, err := sel.Html()
		if err != nil {
			innerErr = err
			return false
		}
		inner = strings.TrimSpace(inner)
		if inner == "" {
			return true
		}
		paragraphs = append(paragraphs, inner)
		return true
	})
	if innerErr != nil {
		return nil, easynews.Errorf(easynews.EINVALID, "failed to render paragraph: %v", innerErr)
	}

	return paragraphs, nil
}
