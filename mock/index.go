package mock

import (
	"context"

	"github.com/fwojciec/easynews"
)

var _ easynews.IndexService = (*IndexService)(nil)

// IndexService is a mock implementation of easynews.IndexService.
type IndexService struct {
	FetchIndexFn func(ctx context.Context) (easynews.Index, error)
}

func (s *IndexService) FetchIndex(ctx context.Context) (easynews.Index, error) {
	return s.FetchIndexFn(ctx)
}
