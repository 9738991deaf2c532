package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/easynews"
	"github.com/fwojciec/easynews/config"
	"github.com/fwojciec/easynews/download"
	"github.com/fwojciec/easynews/fs"
	"github.com/fwojciec/easynews/goquery"
	"github.com/fwojciec/easynews/htmltomarkdown"
	easyhttp "github.com/fwojciec/easynews/http"
	easyslog "github.com/fwojciec/easynews/slog"
	"github.com/fwojciec/easynews/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		ReportError(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// ReportError writes err to w unless a command already reported it.
func ReportError(w io.Writer, err error) {
	var reported *reportedError
	if errors.As(err, &reported) {
		return
	}
	fmt.Fprintln(w, err)
}

// reportedError marks an error whose message was already shown to the user.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

// Main represents the program.
type Main struct {
	// SQLite catalog, opened when a catalog path is configured.
	DB *sqlite.DB

	// Fetcher used for all remote resources.
	Fetcher easynews.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Fetcher != nil {
		_ = m.Fetcher.Close()
	}
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("easynews"),
		kong.Description("Archive NHK News Web Easy articles with their dictionaries"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'easynews --help' to see available commands")
	}

	if len(args) == 1 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg := config.Default()
	if cli.Config != "" {
		if cfg, err = config.Load(cli.Config); err != nil {
			return err
		}
	}
	deps.Config = cfg

	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	defer m.Close()

	switch kongCtx.Command() {
	case "fetch":
		cli.Fetch.applyTo(cfg)
		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := m.wireDownloader(deps, logger); err != nil {
			return err
		}
	case "list":
		if cli.List.Catalog != "" {
			cfg.Catalog = cli.List.Catalog
		}
		if cfg.Catalog == "" {
			return fmt.Errorf("catalog path required: pass --catalog or set catalog in the config file")
		}
		if err := m.openCatalog(deps, cfg.Catalog); err != nil {
			return err
		}
	}

	return kongCtx.Run(deps)
}

// wireDownloader builds the download pipeline from the configuration.
func (m *Main) wireDownloader(deps *Dependencies, logger *slog.Logger) error {
	cfg := deps.Config

	httpFetcher := easyhttp.NewFetcher(
		easyhttp.WithTimeout(cfg.HTTP.Timeout),
		easyhttp.WithUserAgent(cfg.HTTP.UserAgent),
		easyhttp.WithRateLimit(cfg.HTTP.RateLimit),
	)
	m.Fetcher = httpFetcher

	var fetcher easynews.Fetcher = httpFetcher
	var store easynews.ArticleStore = fs.NewStore(cfg.Root)
	if logger != nil {
		fetcher = easyslog.NewLoggingFetcher(fetcher, logger)
		store = easyslog.NewLoggingStore(store, logger)
	}

	endpoints := cfg.EndpointSet()
	var index easynews.IndexService = easyhttp.NewIndexService(fetcher, endpoints.IndexURL)
	if logger != nil {
		index = easyslog.NewLoggingIndexService(index, logger)
	}

	d := &download.Downloader{
		Index:     index,
		Fetcher:   fetcher,
		Extractor: goquery.NewExtractor(),
		Store:     store,
		Endpoints: endpoints,
	}
	if cfg.Markdown {
		d.Converter = htmltomarkdown.NewConverter()
	}
	if cfg.Catalog != "" {
		if err := m.openCatalog(deps, cfg.Catalog); err != nil {
			return err
		}
		d.Catalog = deps.Catalog
	}

	deps.Downloader = d
	return nil
}

// openCatalog opens the SQLite catalog at path.
func (m *Main) openCatalog(deps *Dependencies, path string) error {
	m.DB = sqlite.NewDB(path)
	if err := m.DB.Open(); err != nil {
		return fmt.Errorf("failed to open catalog at %q: %w", path, err)
	}
	deps.Catalog = sqlite.NewCatalogService(m.DB)
	return nil
}
