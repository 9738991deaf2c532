package easynews

import (
	"context"
	"time"
)

// CatalogEntry records an article that was written to the archive.
type CatalogEntry struct {
	ID             string    `json:"id"`
	Date           string    `json:"date"`
	Priority       int       `json:"priority"`
	NewsID         string    `json:"newsId"`
	Title          string    `json:"title"`
	HTMLPath       string    `json:"htmlPath"`
	DictionaryPath string    `json:"dictionaryPath"`
	ContentHash    string    `json:"contentHash"`
	FetchedAt      time.Time `json:"fetchedAt"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *CatalogEntry) Validate() error {
	if e.Date == "" {
		return Errorf(EINVALID, "catalog entry date required")
	}
	if e.NewsID == "" {
		return Errorf(EINVALID, "catalog entry news ID required")
	}
	if e.Priority <= 0 {
		return Errorf(EINVALID, "catalog entry priority must be positive")
	}
	return nil
}

// CatalogService keeps a record of archived articles.
// The catalog is informational; it is never used to skip downloads.
type CatalogService interface {
	// RecordArticle stores the entry, replacing any entry with the same
	// date and priority. ContentHash is computed from html.
	RecordArticle(ctx context.Context, entry *CatalogEntry, html string) error

	// FindEntries retrieves entries matching the filter, ordered by date
	// and priority.
	FindEntries(ctx context.Context, filter CatalogFilter) ([]*CatalogEntry, error)
}

// CatalogFilter represents a filter for FindEntries.
type CatalogFilter struct {
	Date   *string `json:"date"`
	NewsID *string `json:"newsId"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
