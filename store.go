package easynews

import "context"

// ArticleFiles holds the content persisted for one article.
type ArticleFiles struct {
	HTML       string
	Dictionary []byte

	// Markdown is optional; nothing is written when empty.
	Markdown string
}

// SavedPaths reports where an article's files were written.
type SavedPaths struct {
	HTML       string
	Dictionary string
	Markdown   string
}

// ArticleStore persists articles grouped by publication date.
type ArticleStore interface {
	// EnsureDate prepares the location for a date. It is called once per
	// date before any article of that date is saved.
	EnsureDate(ctx context.Context, date string) error

	// SaveArticle writes all files of an article, replacing earlier copies.
	// Either every file becomes visible or none does.
	SaveArticle(ctx context.Context, date string, a *Article, files ArticleFiles) (*SavedPaths, error)
}
