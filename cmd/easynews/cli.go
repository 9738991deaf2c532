package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/easynews"
	"github.com/fwojciec/easynews/config"
	"github.com/fwojciec/easynews/download"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Config     *config.Config
	Downloader *download.Downloader
	Catalog    easynews.CatalogService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `short:"c" type:"path" help:"YAML configuration file"`
	Verbose bool   `short:"v" help:"Log requests and writes to stderr"`

	Fetch FetchCmd `cmd:"" help:"Download articles from the news index"`
	List  ListCmd  `cmd:"" help:"List articles recorded in the catalog"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	Root     string        `short:"r" help:"Archive root directory (default: nhknews_dump)"`
	Days     int           `short:"d" help:"Only the last N dates of the index"`
	Date     string        `short:"D" help:"Only this date (YYYY-MM-DD); wins over --days"`
	Markdown bool          `short:"m" help:"Also write a Markdown reading copy"`
	Catalog  string        `help:"Record saved articles in this SQLite catalog"`
	Timeout  time.Duration `short:"t" help:"HTTP timeout per request"`
	Rate     *float64      `help:"Maximum requests per second (0 = unlimited)"`
}

// applyTo overrides configuration values with flags that were set.
func (c *FetchCmd) applyTo(cfg *config.Config) {
	if c.Root != "" {
		cfg.Root = c.Root
	}
	if c.Markdown {
		cfg.Markdown = true
	}
	if c.Catalog != "" {
		cfg.Catalog = c.Catalog
	}
	if c.Timeout > 0 {
		cfg.HTTP.Timeout = c.Timeout
	}
	if c.Rate != nil {
		cfg.HTTP.RateLimit = *c.Rate
	}
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Catalog string `help:"SQLite catalog path"`
	Date    string `short:"D" help:"Only articles of this date"`
	Limit   int    `short:"n" help:"Maximum number of articles"`
}
