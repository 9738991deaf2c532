package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/easynews"
)

// Ensure LoggingStore implements easynews.ArticleStore.
var _ easynews.ArticleStore = (*LoggingStore)(nil)

// LoggingStore wraps an ArticleStore with logging.
type LoggingStore struct {
	next   easynews.ArticleStore
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next easynews.ArticleStore, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

// EnsureDate delegates to the wrapped store.
func (s *LoggingStore) EnsureDate(ctx context.Context, date string) (err error) {
	defer func() {
		s.logger.Info("ensure date", "date", date, "err", err)
	}()
	return s.next.EnsureDate(ctx, date)
}

// SaveArticle delegates to the wrapped store and logs the written paths.
func (s *LoggingStore) SaveArticle(ctx context.Context, date string, a *easynews.Article, files easynews.ArticleFiles) (paths *easynews.SavedPaths, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"date", date,
			"priority", a.Priority,
			"id", a.ID,
			"duration", time.Since(begin),
		}
		if paths != nil {
			attrs = append(attrs, "html", paths.HTML)
		}
		if err != nil {
			attrs = append(attrs, "err", err)
		}
		s.logger.Info("save article", attrs...)
	}(time.Now())
	return s.next.SaveArticle(ctx, date, a, files)
}
