package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/easynews"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ easynews.CatalogService = (*CatalogService)(nil)

// CatalogService implements easynews.CatalogService using SQLite.
type CatalogService struct {
	db  *DB
	now func() time.Time
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(db *DB) *CatalogService {
	return &CatalogService{db: db, now: time.Now}
}

// hashContent computes the xxHash of content as a 16 digit hex string.
func hashContent(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

// RecordArticle inserts the entry or replaces the entry stored for the same
// date and priority. The existing row ID is kept on replacement.
func (s *CatalogService) RecordArticle(ctx context.Context, entry *easynews.CatalogEntry, html string) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	entry.FetchedAt = s.now().UTC().Truncate(time.Second)
	entry.ContentHash = hashContent(html)

	return s.db.QueryRowContext(ctx, `
		INSERT INTO articles (id, date, priority, news_id, title, html_path, dictionary_path, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (date, priority) DO UPDATE SET
			news_id = excluded.news_id,
			title = excluded.title,
			html_path = excluded.html_path,
			dictionary_path = excluded.dictionary_path,
			content_hash = excluded.content_hash,
			fetched_at = excluded.fetched_at
		RETURNING id
	`, uuid.New().String(), entry.Date, entry.Priority, entry.NewsID, entry.Title,
		entry.HTMLPath, entry.DictionaryPath, entry.ContentHash,
		entry.FetchedAt.Format(time.RFC3339)).Scan(&entry.ID)
}

// FindEntries retrieves entries matching the filter.
func (s *CatalogService) FindEntries(ctx context.Context, filter easynews.CatalogFilter) ([]*easynews.CatalogEntry, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, date, priority, news_id, title, html_path, dictionary_path, content_hash, fetched_at FROM articles WHERE 1=1")

	if filter.Date != nil {
		query.WriteString(" AND date = ?")
		args = append(args, *filter.Date)
	}
	if filter.NewsID != nil {
		query.WriteString(" AND news_id = ?")
		args = append(args, *filter.NewsID)
	}

	query.WriteString(" ORDER BY date ASC, priority ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*easynews.CatalogEntry
	for rows.Next() {
		var e easynews.CatalogEntry
		var fetchedAt string

		if err := rows.Scan(&e.ID, &e.Date, &e.Priority, &e.NewsID, &e.Title,
			&e.HTMLPath, &e.DictionaryPath, &e.ContentHash, &fetchedAt); err != nil {
			return nil, err
		}

		e.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
		if err != nil {
			return nil, err
		}

		entries = append(entries, &e)
	}

	return entries, rows.Err()
}
