// Package config provides configuration for the crawl program.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"

	"github.com/pfrederiksen/isfdb-awards/internal/logger"
	"github.com/pfrederiksen/isfdb-awards/internal/scraper"
)

// Configuration validation errors.
var (
	ErrNoStartURLs        = errors.New("at least one start URL is required")
	ErrInvalidBaseURL     = errors.New("fetch.base_url must be an absolute http(s) URL")
	ErrInvalidMaxAttempts = errors.New("fetch.max_attempts must be at least 1")
	ErrInvalidDelay       = errors.New("fetch.initial_delay_ms must be non-negative and not exceed fetch.max_delay_ms")
	ErrInvalidTimeout     = errors.New("fetch.timeout_sec must be at least 1")
	ErrInvalidRequestRate = errors.New("fetch.requests_per_second must be non-negative")
	ErrInvalidConcurrency = errors.New("fetch.concurrency must be at least 1")
	ErrMissingOutputPath  = errors.New("output.path is required")
	ErrInvalidLogLevel    = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config is the complete crawl configuration.
type Config struct {
	StartURLs []string      `yaml:"start_urls"`
	Fetch     FetchConfig   `yaml:"fetch"`
	Output    OutputConfig  `yaml:"output"`
	Logging   LoggingConfig `yaml:"logging"`
}

// FetchConfig controls the HTTP layer.
type FetchConfig struct {
	BaseURL           string   `yaml:"base_url"`
	AllowedDomains    []string `yaml:"allowed_domains"`
	UserAgent         string   `yaml:"user_agent"`
	TimeoutSec        int      `yaml:"timeout_sec"`
	MaxAttempts       int      `yaml:"max_attempts"`
	InitialDelayMs    int      `yaml:"initial_delay_ms"`
	MaxDelayMs        int      `yaml:"max_delay_ms"`
	RequestsPerSecond float64  `yaml:"requests_per_second"`
	Concurrency       int      `yaml:"concurrency"`
}

// OutputConfig controls where the works artifact goes.
type OutputConfig struct {
	Path        string `yaml:"path"`
	PrettyPrint *bool  `yaml:"pretty_print"`
}

// LoggingConfig controls log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	pretty := true
	return &Config{
		Fetch: FetchConfig{
			BaseURL:           scraper.BaseURL,
			AllowedDomains:    []string{"isfdb.org"},
			UserAgent:         scraper.UserAgent,
			TimeoutSec:        30,
			MaxAttempts:       3,
			InitialDelayMs:    500,
			MaxDelayMs:        10000,
			RequestsPerSecond: 1,
			Concurrency:       4,
		},
		Output: OutputConfig{
			Path:        "awards.json",
			PrettyPrint: &pretty,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML file and lays it over Default. Zero scalars in the file
// count as unset; an explicit pretty_print is kept either way. An empty path
// returns the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	merged := Default()
	if err := mergo.Merge(merged, cfg, mergo.WithOverride, mergo.WithoutDereference); err != nil {
		return nil, fmt.Errorf("applying defaults: %w", err)
	}
	return merged, nil
}

// Validate checks the configuration and returns the first problem found.
func (c *Config) Validate() error {
	if len(c.StartURLs) == 0 {
		return ErrNoStartURLs
	}
	if u, err := url.Parse(c.Fetch.BaseURL); err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") {
		return ErrInvalidBaseURL
	}
	if c.Fetch.MaxAttempts < 1 {
		return ErrInvalidMaxAttempts
	}
	if c.Fetch.InitialDelayMs < 0 || c.Fetch.InitialDelayMs > c.Fetch.MaxDelayMs {
		return ErrInvalidDelay
	}
	if c.Fetch.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}
	if c.Fetch.RequestsPerSecond < 0 {
		return ErrInvalidRequestRate
	}
	if c.Fetch.Concurrency < 1 {
		return ErrInvalidConcurrency
	}
	if c.Output.Path == "" {
		return ErrMissingOutputPath
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		return ErrInvalidLogLevel
	}
	return nil
}

// Pretty reports whether the artifact should be indented
func (c *Config) Pretty() bool {
	return c.Output.PrettyPrint == nil || *c.Output.PrettyPrint
}

// FetchOptions converts the fetch section for scraper.NewHTTPFetcher
func (c *Config) FetchOptions() scraper.FetchOptions {
	return scraper.FetchOptions{
		UserAgent:         c.Fetch.UserAgent,
		Timeout:           time.Duration(c.Fetch.TimeoutSec) * time.Second,
		MaxAttempts:       c.Fetch.MaxAttempts,
		InitialDelay:      time.Duration(c.Fetch.InitialDelayMs) * time.Millisecond,
		MaxDelay:          time.Duration(c.Fetch.MaxDelayMs) * time.Millisecond,
		RequestsPerSecond: c.Fetch.RequestsPerSecond,
		AllowedDomains:    c.Fetch.AllowedDomains,
	}
}
