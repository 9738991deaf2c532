package http

import (
	"context"

	"github.com/fwojciec/easynews"
)

// Ensure IndexService implements easynews.IndexService at compile time.
var _ easynews.IndexService = (*IndexService)(nil)

// IndexService downloads the news index through a Fetcher.
type IndexService struct {
	fetcher easynews.Fetcher
	url     string
}

// NewIndexService creates a new IndexService reading the index from url.
func NewIndexService(fetcher easynews.Fetcher, url string) *IndexService {
	return &IndexService{fetcher: fetcher, url: url}
}

// FetchIndex downloads and decodes the news index.
func (s *IndexService) FetchIndex(ctx context.Context) (easynews.Index, error) {
	data, err := s.fetcher.Fetch(ctx, s.url)
	if err != nil {
		if easynews.ErrorCode(err) == easynews.EUNAVAILABLE {
			return nil, err
		}
		return nil, easynews.Errorf(easynews.EUNAVAILABLE, "news index unavailable: %v", err)
	}
	return easynews.ParseIndex(data)
}
