package main

import (
	"fmt"

	"github.com/fwojciec/easynews"
	"github.com/fwojciec/easynews/download"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	sel := easynews.Selection{Days: c.Days, Date: c.Date}

	report, err := deps.Downloader.Run(deps.Ctx, sel, progressPrinter(deps))
	if report != nil && err != nil {
		// Canceled mid-run; summarize what was done.
		printSummary(deps, report)
	}
	if err != nil {
		if easynews.ErrorCode(err) == easynews.EUNAVAILABLE {
			fmt.Fprintln(deps.Stderr, "Error downloading news!")
			return &reportedError{err: err}
		}
		return err
	}

	if len(report.Dates) == 0 {
		fmt.Fprintln(deps.Stdout, "No matching dates in the news index")
		return nil
	}

	printSummary(deps, report)
	return nil
}

func printSummary(deps *Dependencies, report *download.Report) {
	fmt.Fprintf(deps.Stdout, "Saved %d articles, %d failed\n", report.Saved(), report.Failed())
}

// progressPrinter writes one line per date and one line per article.
func progressPrinter(deps *Dependencies) download.ProgressFunc {
	return func(e download.ProgressEvent) {
		switch e.Type {
		case download.ProgressDateStarted:
			fmt.Fprintf(deps.Stdout, "Saving: %s\n", e.Date)
		case download.ProgressArticleStarted:
			fmt.Fprintf(deps.Stdout, "Saving:\t\tNews %d", e.Article.Priority)
		case download.ProgressArticleSaved:
			fmt.Fprint(deps.Stdout, " html dic")
			if e.Result.Paths != nil && e.Result.Paths.Markdown != "" {
				fmt.Fprint(deps.Stdout, " md")
			}
			if e.Result.CatalogErr != nil {
				fmt.Fprintf(deps.Stdout, " (catalog: %v)", e.Result.CatalogErr)
			}
			fmt.Fprintln(deps.Stdout)
		case download.ProgressArticleFailed:
			fmt.Fprintf(deps.Stdout, " ERR %v\n", e.Result.Err)
		}
	}
}
