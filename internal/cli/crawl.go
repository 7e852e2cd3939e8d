package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/isfdb-awards/internal/award"
	"github.com/pfrederiksen/isfdb-awards/internal/config"
	"github.com/pfrederiksen/isfdb-awards/internal/logger"
	"github.com/pfrederiksen/isfdb-awards/internal/scraper"
	"github.com/pfrederiksen/isfdb-awards/internal/storage"
)

type crawlOptions struct {
	configPath  string
	output      string
	concurrency int
	rate        float64
	retries     int
	timeoutSec  int
	logLevel    string
	compact     bool
}

// NewCrawlCmd creates the crawl command
func NewCrawlCmd() *cobra.Command {
	opts := &crawlOptions{}

	cmd := &cobra.Command{
		Use:   "isfdb-crawl [flags] [start-url...]",
		Short: "Harvest award histories from ISFDB title and collection pages",
		Long: `Crawl ISFDB title pages (title.cgi) and collection pages (pl.cgi),
normalize every award record and write the works as a JSON artifact.

Start URLs come from the arguments (comma-separated lists are accepted) and
from start_urls in the config file. Relative URLs are resolved against
fetch.base_url.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runCrawl(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file, or - for stdout (default awards.json)")
	cmd.Flags().IntVar(&opts.concurrency, "concurrency", 0, "Concurrent title fetches per start URL")
	cmd.Flags().Float64Var(&opts.rate, "rate", 0, "Requests per second, 0 for unlimited")
	cmd.Flags().IntVar(&opts.retries, "retries", 0, "Fetch attempts per page")
	cmd.Flags().IntVar(&opts.timeoutSec, "timeout", 0, "Per-request timeout in seconds")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	cmd.Flags().BoolVar(&opts.compact, "compact", false, "Write the artifact without indentation")

	return cmd
}

// crawlConfig loads the config file and layers the flags and arguments on
// top. Only flags the user actually set override file values.
func crawlConfig(cmd *cobra.Command, opts *crawlOptions, args []string) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	for _, arg := range args {
		cfg.StartURLs = append(cfg.StartURLs, scraper.ParseStartURLs(arg)...)
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output.Path = opts.output
	}
	if flags.Changed("concurrency") {
		cfg.Fetch.Concurrency = opts.concurrency
	}
	if flags.Changed("rate") {
		cfg.Fetch.RequestsPerSecond = opts.rate
	}
	if flags.Changed("retries") {
		cfg.Fetch.MaxAttempts = opts.retries
	}
	if flags.Changed("timeout") {
		cfg.Fetch.TimeoutSec = opts.timeoutSec
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = opts.logLevel
	}
	if opts.compact {
		pretty := false
		cfg.Output.PrettyPrint = &pretty
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func runCrawl(cmd *cobra.Command, opts *crawlOptions, args []string) error {
	cfg, err := crawlConfig(cmd, opts, args)
	if err != nil {
		return err
	}

	level, err := logger.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return err
	}
	log := logger.New(level, cmd.ErrOrStderr())
	logger.SetDefault(log)
	defer log.Sync()
	logger.ResetMetrics()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	crawler, err := scraper.NewCrawler(scraper.NewHTTPFetcher(cfg.FetchOptions()), cfg.Fetch.BaseURL, cfg.Fetch.Concurrency)
	if err != nil {
		return err
	}

	logger.Info("Starting crawl", logger.Fields{
		"start_urls":  len(cfg.StartURLs),
		"concurrency": cfg.Fetch.Concurrency,
		"rate":        cfg.Fetch.RequestsPerSecond,
	})
	start := time.Now()

	raw, err := crawler.Crawl(ctx, cfg.StartURLs)
	if err != nil {
		return fmt.Errorf("crawling: %w", err)
	}

	works := normalizeAll(raw)
	logger.RecordTiming("crawl", time.Since(start))

	if cfg.Output.Path == storage.Stdio {
		err = storage.EncodeWorks(cmd.OutOrStdout(), works, cfg.Pretty())
	} else {
		err = storage.SaveWorks(cfg.Output.Path, works, cfg.Pretty())
	}
	if err != nil {
		return fmt.Errorf("writing works: %w", err)
	}

	logger.Info("Crawl complete", logger.Fields{
		"works":  len(works),
		"output": cfg.Output.Path,
	})
	logger.Info("Crawl metrics", logger.Fields(logger.GetMetricsSnapshot()))
	return nil
}

// normalizeAll canonicalizes every work's awards and flattens the result for
// the artifact.
func normalizeAll(raw []*award.Work) []award.Work {
	works := make([]award.Work, 0, len(raw))
	for _, w := range raw {
		award.NormalizeWork(w)
		works = append(works, *w)
	}
	return works
}
