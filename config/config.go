// Package config loads easynews settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fwojciec/easynews"
	"gopkg.in/yaml.v3"
)

// DefaultRoot is the archive directory used when none is configured.
const DefaultRoot = "nhknews_dump"

// Configuration validation errors.
var (
	ErrMissingRoot      = errors.New("root is required")
	ErrInvalidTimeout   = errors.New("http.timeout must be positive")
	ErrInvalidRateLimit = errors.New("http.rate_limit must not be negative")
)

// Config represents the complete downloader configuration.
type Config struct {
	Root      string          `yaml:"root"`
	Endpoints EndpointsConfig `yaml:"endpoints"`
	HTTP      HTTPConfig      `yaml:"http"`
	Catalog   string          `yaml:"catalog"`
	Markdown  bool            `yaml:"markdown"`
}

// EndpointsConfig holds the remote locations. Page and dictionary URLs
// contain the {id} placeholder.
type EndpointsConfig struct {
	IndexURL      string `yaml:"index_url"`
	PageURL       string `yaml:"page_url"`
	DictionaryURL string `yaml:"dictionary_url"`
}

// HTTPConfig contains transport settings.
type HTTPConfig struct {
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
	RateLimit float64       `yaml:"rate_limit"`
}

// Default returns the built-in configuration.
func Default() *Config {
	e := easynews.DefaultEndpoints()
	return &Config{
		Root: DefaultRoot,
		Endpoints: EndpointsConfig{
			IndexURL:      e.IndexURL,
			PageURL:       e.PageURL,
			DictionaryURL: e.DictionaryURL,
		},
		HTTP: HTTPConfig{
			Timeout:   10 * time.Second,
			UserAgent: "easynews/1.0",
		},
	}
}

// Load reads the YAML file at path on top of Default and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Root == "" {
		return ErrMissingRoot
	}
	if c.HTTP.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.HTTP.RateLimit < 0 {
		return ErrInvalidRateLimit
	}
	return c.EndpointSet().Validate()
}

// EndpointSet converts the configured endpoints to easynews.Endpoints.
func (c *Config) EndpointSet() easynews.Endpoints {
	return easynews.Endpoints{
		IndexURL:      c.Endpoints.IndexURL,
		PageURL:       c.Endpoints.PageURL,
		DictionaryURL: c.Endpoints.DictionaryURL,
	}
}
