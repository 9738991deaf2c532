package easynews_test

import (
	"testing"

	"github.com/fwojciec/easynews"
	"github.com/stretchr/testify/assert"
)

func TestEndpoints(t *testing.T) {
	t.Parallel()

	t.Run("builds article URLs from templates", func(t *testing.T) {
		t.Parallel()

		e := easynews.DefaultEndpoints()

		assert.Equal(t, "https://www3.nhk.or.jp/news/easy/k1/k1.html", e.ArticlePageURL("k1"))
		assert.Equal(t, "https://www3.nhk.or.jp/news/easy/k1/k1.out.dic", e.ArticleDictionaryURL("k1"))
	})

	t.Run("defaults are valid", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, easynews.DefaultEndpoints().Validate())
	})

	t.Run("rejects missing index URL", func(t *testing.T) {
		t.Parallel()

		e := easynews.DefaultEndpoints()
		e.IndexURL = ""

		assert.Equal(t, easynews.EINVALID, easynews.ErrorCode(e.Validate()))
	})

	t.Run("rejects templates without placeholder", func(t *testing.T) {
		t.Parallel()

		e := easynews.DefaultEndpoints()
		e.DictionaryURL = "https://example.com/dic"

		assert.Equal(t, easynews.EINVALID, easynews.ErrorCode(e.Validate()))
	})
}
