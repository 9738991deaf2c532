// Package download orchestrates archiving of NHK News Web Easy articles.
// It coordinates index retrieval, date selection, fetching, extraction,
// rendering and storage of each article.
package download

import (
	"context"
	"fmt"

	"github.com/fwojciec/easynews"
)

// Downloader archives the articles of the selected index dates.
// Dates and articles are processed sequentially in ascending date order.
type Downloader struct {
	Index     easynews.IndexService
	Fetcher   easynews.Fetcher
	Extractor easynews.BodyExtractor
	Store     easynews.ArticleStore
	Endpoints easynews.Endpoints

	// Converter, if set, adds a Markdown copy of every article.
	Converter easynews.Converter

	// Catalog, if set, records every saved article.
	Catalog easynews.CatalogService
}

// ArticleResult holds the outcome of processing a single article.
type ArticleResult struct {
	Date    string
	Article *easynews.Article

	// Paths is set when the article files were written.
	Paths *easynews.SavedPaths

	// Err is set when the article failed. Nothing was written for it.
	Err error

	// CatalogErr is set when the files were written but the catalog
	// could not record them.
	CatalogErr error
}

// OK reports whether the article was saved.
func (r *ArticleResult) OK() bool {
	return r.Err == nil
}

// Report holds the outcome of a run.
type Report struct {
	Dates   []string
	Results []*ArticleResult
}

// Saved returns the number of saved articles.
func (r *Report) Saved() int {
	var n int
	for _, res := range r.Results {
		if res.OK() {
			n++
		}
	}
	return n
}

// Failed returns the number of failed articles.
func (r *Report) Failed() int {
	return len(r.Results) - r.Saved()
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressDateStarted ProgressType = iota
	ProgressArticleStarted
	ProgressArticleSaved
	ProgressArticleFailed
)

// ProgressEvent reports progress during a run.
type ProgressEvent struct {
	Type    ProgressType
	Date    string
	Article *easynews.Article
	Result  *ArticleResult
}

// ProgressFunc is a callback for reporting progress.
type ProgressFunc func(event ProgressEvent)

// Run fetches the index, selects dates and archives every article of them.
//
// An index that cannot be fetched aborts the run with EUNAVAILABLE before
// anything is written. Article failures are recorded in the report and never
// abort the run. A canceled context stops the run between articles; the
// partial report is returned along with the context error.
func (d *Downloader) Run(ctx context.Context, sel easynews.Selection, progress ProgressFunc) (*Report, error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}
	if progress == nil {
		progress = func(ProgressEvent) {}
	}

	index, err := d.Index.FetchIndex(ctx)
	if err != nil {
		if easynews.ErrorCode(err) == easynews.EUNAVAILABLE {
			return nil, err
		}
		return nil, easynews.Errorf(easynews.EUNAVAILABLE, "news index unavailable: %v", err)
	}

	report := &Report{}
	for _, entry := range easynews.SelectDates(index, sel) {
		report.Dates = append(report.Dates, entry.Date)
		progress(ProgressEvent{Type: ProgressDateStarted, Date: entry.Date})

		// Index date keys become directory names.
		dateErr := easynews.ValidateDate(entry.Date)
		if dateErr == nil {
			dateErr = d.Store.EnsureDate(ctx, entry.Date)
		}
		if dateErr != nil {
			dateErr = fmt.Errorf("prepare date %s: %w", entry.Date, dateErr)
		}

		seen := make(map[int]string, len(entry.Articles))
		for _, a := range entry.Articles {
			if a == nil {
				continue
			}
			if err := ctx.Err(); err != nil {
				return report, err
			}

			progress(ProgressEvent{Type: ProgressArticleStarted, Date: entry.Date, Article: a})

			var res *ArticleResult
			if dateErr != nil {
				res = &ArticleResult{Date: entry.Date, Article: a, Err: dateErr}
			} else if id, ok := seen[a.Priority]; ok {
				res = &ArticleResult{Date: entry.Date, Article: a, Err: easynews.Errorf(easynews.EINVALID,
					"duplicate priority %d on %s, already used by %s", a.Priority, entry.Date, id)}
			} else {
				res = d.processArticle(ctx, entry.Date, a)
				if res.OK() {
					seen[a.Priority] = a.ID
				}
			}
			report.Results = append(report.Results, res)

			typ := ProgressArticleSaved
			if !res.OK() {
				typ = ProgressArticleFailed
			}
			progress(ProgressEvent{Type: typ, Date: entry.Date, Article: a, Result: res})
		}
	}

	return report, nil
}

// processArticle fetches, renders and stores one article. Both remote
// resources are fetched before anything is written.
func (d *Downloader) processArticle(ctx context.Context, date string, a *easynews.Article) *ArticleResult {
	res := &ArticleResult{Date: date, Article: a}

	if err := a.Validate(); err != nil {
		res.Err = err
		return res
	}

	page, err := d.Fetcher.Fetch(ctx, d.Endpoints.ArticlePageURL(a.ID))
	if err != nil {
		res.Err = fmt.Errorf("fetch page: %w", err)
		return res
	}

	dictionary, err := d.Fetcher.Fetch(ctx, d.Endpoints.ArticleDictionaryURL(a.ID))
	if err != nil {
		res.Err = fmt.Errorf("fetch dictionary: %w", err)
		return res
	}

	paragraphs, err := d.Extractor.ExtractParagraphs(string(page))
	if err != nil {
		res.Err = fmt.Errorf("extract body: %w", err)
		return res
	}

	files := easynews.ArticleFiles{
		HTML:       easynews.RenderArticle(a, paragraphs),
		Dictionary: dictionary,
	}

	if d.Converter != nil {
		files.Markdown, err = d.Converter.Convert(files.HTML)
		if err != nil {
			res.Err = fmt.Errorf("convert to markdown: %w", err)
			return res
		}
	}

	res.Paths, err = d.Store.SaveArticle(ctx, date, a, files)
	if err != nil {
		res.Err = fmt.Errorf("save article: %w", err)
		return res
	}

	if d.Catalog != nil {
		entry := &easynews.CatalogEntry{
			Date:           date,
			Priority:       a.Priority,
			NewsID:         a.ID,
			Title:          a.TitleWithRuby,
			HTMLPath:       res.Paths.HTML,
			DictionaryPath: res.Paths.Dictionary,
		}
		if err := d.Catalog.RecordArticle(ctx, entry, files.HTML); err != nil {
			res.CatalogErr = fmt.Errorf("record article: %w", err)
		}
	}

	return res
}
