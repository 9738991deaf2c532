package easynews

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms a rendered article into Markdown.
	// Returns EINVALID for empty input.
	Convert(html string) (string, error)
}
