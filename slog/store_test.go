package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/easynews"
	"github.com/fwojciec/easynews/mock"
	easyslog "github.com/fwojciec/easynews/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingStore(t *testing.T) {
	t.Parallel()

	t.Run("logs ensure date", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		var got string
		inner := &mock.ArticleStore{
			EnsureDateFn: func(_ context.Context, date string) error {
				got = date
				return nil
			},
		}

		err := easyslog.NewLoggingStore(inner, logger).EnsureDate(context.Background(), "2023-11-15")

		require.NoError(t, err)
		assert.Equal(t, "2023-11-15", got)
		assert.Contains(t, buf.String(), "date=2023-11-15")
	})

	t.Run("logs saved paths", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ArticleStore{
			SaveArticleFn: func(_ context.Context, _ string, _ *easynews.Article, _ easynews.ArticleFiles) (*easynews.SavedPaths, error) {
				return &easynews.SavedPaths{HTML: "dump/2023-11-15/1.html"}, nil
			},
		}

		article := &easynews.Article{Priority: 1, ID: "k1"}
		paths, err := easyslog.NewLoggingStore(inner, logger).SaveArticle(context.Background(), "2023-11-15", article, easynews.ArticleFiles{})

		require.NoError(t, err)
		assert.Equal(t, "dump/2023-11-15/1.html", paths.HTML)
		output := buf.String()
		assert.Contains(t, output, "save article")
		assert.Contains(t, output, "priority=1")
		assert.Contains(t, output, "id=k1")
		assert.Contains(t, output, "html=dump/2023-11-15/1.html")
	})

	t.Run("logs save error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ArticleStore{
			SaveArticleFn: func(_ context.Context, _ string, _ *easynews.Article, _ easynews.ArticleFiles) (*easynews.SavedPaths, error) {
				return nil, errors.New("disk full")
			},
		}

		_, err := easyslog.NewLoggingStore(inner, logger).SaveArticle(context.Background(), "2023-11-15", &easynews.Article{Priority: 1, ID: "k1"}, easynews.ArticleFiles{})

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"disk full\"")
	})
}
