package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/easynews"
)

// Ensure LoggingIndexService implements easynews.IndexService.
var _ easynews.IndexService = (*LoggingIndexService)(nil)

// LoggingIndexService wraps an IndexService with logging.
type LoggingIndexService struct {
	next   easynews.IndexService
	logger *slog.Logger
}

// NewLoggingIndexService creates a new LoggingIndexService.
func NewLoggingIndexService(next easynews.IndexService, logger *slog.Logger) *LoggingIndexService {
	return &LoggingIndexService{next: next, logger: logger}
}

// FetchIndex delegates to the wrapped service and logs the number of dates.
func (s *LoggingIndexService) FetchIndex(ctx context.Context) (index easynews.Index, err error) {
	defer func(begin time.Time) {
		s.logger.Info("index fetch",
			"dates", len(index),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchIndex(ctx)
}
