package easynews

import "strings"

// IDPlaceholder is replaced by the article ID in page and dictionary URLs.
const IDPlaceholder = "{id}"

// Default NHK News Web Easy locations.
const (
	DefaultIndexURL      = "https://www3.nhk.or.jp/news/easy/news-list.json"
	DefaultPageURL       = "https://www3.nhk.or.jp/news/easy/{id}/{id}.html"
	DefaultDictionaryURL = "https://www3.nhk.or.jp/news/easy/{id}/{id}.out.dic"
)

// Endpoints holds the remote locations of the index and per-article resources.
type Endpoints struct {
	IndexURL      string
	PageURL       string
	DictionaryURL string
}

// DefaultEndpoints returns the NHK News Web Easy endpoints.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		IndexURL:      DefaultIndexURL,
		PageURL:       DefaultPageURL,
		DictionaryURL: DefaultDictionaryURL,
	}
}

// Validate returns an error if an endpoint is missing or a template lacks
// the article ID placeholder.
func (e Endpoints) Validate() error {
	if e.IndexURL == "" {
		return Errorf(EINVALID, "index URL required")
	}
	if !strings.Contains(e.PageURL, IDPlaceholder) {
		return Errorf(EINVALID, "page URL must contain %s", IDPlaceholder)
	}
	if !strings.Contains(e.DictionaryURL, IDPlaceholder) {
		return Errorf(EINVALID, "dictionary URL must contain %s", IDPlaceholder)
	}
	return nil
}

// ArticlePageURL returns the page URL of the article with the given ID.
func (e Endpoints) ArticlePageURL(id string) string {
	return strings.ReplaceAll(e.PageURL, IDPlaceholder, id)
}

// ArticleDictionaryURL returns the dictionary URL of the article with the given ID.
func (e Endpoints) ArticleDictionaryURL(id string) string {
	return strings.ReplaceAll(e.DictionaryURL, IDPlaceholder, id)
}
