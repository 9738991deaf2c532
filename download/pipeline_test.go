package download_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/easynews"
	"github.com/fwojciec/easynews/download"
	"github.com/fwojciec/easynews/fs"
	"github.com/fwojciec/easynews/goquery"
	"github.com/fwojciec/easynews/htmltomarkdown"
	easyhttp "github.com/fwojciec/easynews/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pipelineIndex = `[
  {
    "2023-11-15": [
      {
        "top_priority_number": 1,
        "news_prearranged_time": "2023-11-15 16:20:00",
        "news_id": "k10014257381000",
        "title_with_ruby": "ウェブサイトでホテルの<ruby>予約<rt>よやく</rt></ruby>"
      },
      {
        "top_priority_number": 2,
        "news_prearranged_time": "2023-11-15 17:00:00",
        "news_id": "k10014257999000",
        "title_with_ruby": "missing"
      }
    ],
    "2022-02-22": [
      {
        "top_priority_number": 1,
        "news_prearranged_time": "2022-02-22 12:00:00",
        "news_id": "k10099999999999",
        "title_with_ruby": "Title with Ruby"
      }
    ]
  }
]`

const pipelinePage = `<!DOCTYPE HTML>
<head>
<meta charset="utf-8">
<title>ウェブサイトでホテルの予約|NEWS WEB EASY</title>
</head>
<body id="news20231115_k10014257381000">
<div id="wrapper">
  <main class="l-main">
    <article class="article-main">
      <div class="article-main__body article-body" id="js-article-body">
        <p><span class="colorB">「</span><span class="colorF">ブッキング・ドットコム</span><span class="colorB">」</span><span class="color3"><ruby>予約<rt>よやく</rt></ruby></span><span class="colorB">です</span></p>
        <p>   </p>
      </div>
    </article>
  </main>
</div>
</body>
</html>`

func newNewsServer(t *testing.T) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/news-list.json":
			_, _ = w.Write([]byte(pipelineIndex))
		case strings.Contains(r.URL.Path, "k10014257999000"):
			w.WriteHeader(http.StatusNotFound)
		case strings.HasSuffix(r.URL.Path, ".out.dic"):
			_, _ = w.Write([]byte(`{"reikai":{"entries":{}}}`))
		case strings.HasSuffix(r.URL.Path, ".html"):
			_, _ = w.Write([]byte(pipelinePage))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func newPipeline(serverURL, root string) *download.Downloader {
	fetcher := easyhttp.NewFetcher()
	endpoints := easynews.Endpoints{
		IndexURL:      serverURL + "/news-list.json",
		PageURL:       serverURL + "/{id}/{id}.html",
		DictionaryURL: serverURL + "/{id}/{id}.out.dic",
	}
	return &download.Downloader{
		Index:     easyhttp.NewIndexService(fetcher, endpoints.IndexURL),
		Fetcher:   fetcher,
		Extractor: goquery.NewExtractor(),
		Store:     fs.NewStore(root),
		Endpoints: endpoints,
	}
}

func TestPipeline(t *testing.T) {
	t.Parallel()

	t.Run("writes rendered article and dictionary for latest date", func(t *testing.T) {
		t.Parallel()

		server := newNewsServer(t)
		root := filepath.Join(t.TempDir(), "nhknews_dump")

		report, err := newPipeline(server.URL, root).Run(context.Background(), easynews.Selection{Days: 1}, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{"2023-11-15"}, report.Dates)
		assert.Equal(t, 1, report.Saved())
		assert.Equal(t, 1, report.Failed())

		html, err := os.ReadFile(filepath.Join(root, "2023-11-15", "1.html"))
		require.NoError(t, err)
		doc := string(html)
		assert.Contains(t, doc, "<title>ウェブサイトでホテルの<ruby>予約<rt>よやく</rt></ruby></title>")
		assert.Contains(t, doc, "<li>Priority: 1</li>")
		assert.Contains(t, doc, `<li><span class="colorB">「</span>`)
		// One non-empty and one blank paragraph give exactly one body item.
		assert.Equal(t, 1, strings.Count(doc, "<li><span"))

		dic, err := os.ReadFile(filepath.Join(root, "2023-11-15", "1.dic.js"))
		require.NoError(t, err)
		assert.Equal(t, `{"reikai":{"entries":{}}}`, string(dic))

		_, err = os.Stat(filepath.Join(root, "2023-11-15", "2.html"))
		assert.True(t, os.IsNotExist(err))
		_, err = os.Stat(filepath.Join(root, "2023-11-15", "2.dic.js"))
		assert.True(t, os.IsNotExist(err))

		_, err = os.Stat(filepath.Join(root, "2022-02-22"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("exact date selects older date", func(t *testing.T) {
		t.Parallel()

		server := newNewsServer(t)
		root := t.TempDir()

		report, err := newPipeline(server.URL, root).Run(context.Background(), easynews.Selection{Days: 1, Date: "2022-02-22"}, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{"2022-02-22"}, report.Dates)
		_, err = os.Stat(filepath.Join(root, "2022-02-22", "1.html"))
		assert.NoError(t, err)
	})

	t.Run("writes markdown copy when converter is configured", func(t *testing.T) {
		t.Parallel()

		server := newNewsServer(t)
		root := t.TempDir()
		d := newPipeline(server.URL, root)
		d.Converter = htmltomarkdown.NewConverter()

		_, err := d.Run(context.Background(), easynews.Selection{Date: "2023-11-15"}, nil)

		require.NoError(t, err)
		md, err := os.ReadFile(filepath.Join(root, "2023-11-15", "1.md"))
		require.NoError(t, err)
		assert.Contains(t, string(md), "ブッキング・ドットコム")
		assert.NotContains(t, string(md), "よやく")
	})

	t.Run("unavailable index creates nothing", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()
		root := filepath.Join(t.TempDir(), "nhknews_dump")

		_, err := newPipeline(server.URL, root).Run(context.Background(), easynews.Selection{Days: 1}, nil)

		require.Error(t, err)
		assert.Equal(t, easynews.EUNAVAILABLE, easynews.ErrorCode(err))
		_, statErr := os.Stat(root)
		assert.True(t, os.IsNotExist(statErr))
	})
}
