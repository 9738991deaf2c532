package main

import (
	"fmt"

	"github.com/fwojciec/easynews"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := easynews.CatalogFilter{Limit: c.Limit}
	if c.Date != "" {
		filter.Date = &c.Date
	}

	entries, err := deps.Catalog.FindEntries(deps.Ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to list catalog: %w", err)
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No archived articles found. Use 'easynews fetch --catalog' to record some.")
		return nil
	}

	for _, e := range entries {
		fmt.Fprintf(deps.Stdout, "%s  %d  %s  %s\n", e.Date, e.Priority, e.NewsID, e.HTMLPath)
	}

	return nil
}
