package mock

import (
	"context"

	"github.com/fwojciec/easynews"
)

// Compile-time interface verification.
var (
	_ easynews.ArticleStore   = (*ArticleStore)(nil)
	_ easynews.CatalogService = (*CatalogService)(nil)
)

// ArticleStore is a mock implementation of easynews.ArticleStore.
type ArticleStore struct {
	EnsureDateFn  func(ctx context.Context, date string) error
	SaveArticleFn func(ctx context.Context, date string, a *easynews.Article, files easynews.ArticleFiles) (*easynews.SavedPaths, error)
}

func (s *ArticleStore) EnsureDate(ctx context.Context, date string) error {
	return s.EnsureDateFn(ctx, date)
}

func (s *ArticleStore) SaveArticle(ctx context.Context, date string, a *easynews.Article, files easynews.ArticleFiles) (*easynews.SavedPaths, error) {
	return s.SaveArticleFn(ctx, date, a, files)
}

// CatalogService is a mock implementation of easynews.CatalogService.
type CatalogService struct {
	RecordArticleFn func(ctx context.Context, entry *easynews.CatalogEntry, html string) error
	FindEntriesFn   func(ctx context.Context, filter easynews.CatalogFilter) ([]*easynews.CatalogEntry, error)
}

func (s *CatalogService) RecordArticle(ctx context.Context, entry *easynews.CatalogEntry, html string) error {
	return s.RecordArticleFn(ctx, entry, html)
}

func (s *CatalogService) FindEntries(ctx context.Context, filter easynews.CatalogFilter) ([]*easynews.CatalogEntry, error) {
	return s.FindEntriesFn(ctx, filter)
}
