package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/easynews"
	"github.com/fwojciec/easynews/mock"
	easyslog "github.com/fwojciec/easynews/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingIndexService_FetchIndex(t *testing.T) {
	t.Parallel()

	t.Run("logs date count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.IndexService{
			FetchIndexFn: func(_ context.Context) (easynews.Index, error) {
				return easynews.Index{"2023-11-15": nil, "2023-11-16": nil}, nil
			},
		}

		index, err := easyslog.NewLoggingIndexService(inner, logger).FetchIndex(context.Background())

		require.NoError(t, err)
		assert.Len(t, index, 2)
		output := buf.String()
		assert.Contains(t, output, "index fetch")
		assert.Contains(t, output, "dates=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.IndexService{
			FetchIndexFn: func(_ context.Context) (easynews.Index, error) {
				return nil, easynews.Errorf(easynews.EUNAVAILABLE, "HTTP 503")
			},
		}

		_, err := easyslog.NewLoggingIndexService(inner, logger).FetchIndex(context.Background())

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"HTTP 503\"")
	})
}
