package easynews

// DefaultBodySelector locates the article body container on an article page.
const DefaultBodySelector = "#js-article-body"

// BodyExtractor extracts the body paragraphs of an article page.
type BodyExtractor interface {
	// ExtractParagraphs returns the inner markup of every paragraph inside
	// the body container, in document order. Inline markup such as ruby
	// annotations is preserved. Paragraphs empty after trimming are dropped.
	// A page without the container yields an empty slice, not an error.
	ExtractParagraphs(html string) ([]string, error)
}
