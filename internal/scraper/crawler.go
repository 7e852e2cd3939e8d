package scraper

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"golang.org/x/sync/errgroup"

	"github.com/pfrederiksen/isfdb-awards/internal/award"
	"github.com/pfrederiksen/isfdb-awards/internal/logger"
)

// Crawler dispatches start URLs to the collection expander or the title
// extractor and gathers the resulting raw works.
type Crawler struct {
	fetcher     Fetcher
	baseURL     *url.URL
	concurrency int
}

// NewCrawler creates a Crawler. Relative start URLs are resolved against
// baseURL; concurrency bounds in-flight title fetches per start URL.
func NewCrawler(fetcher Fetcher, baseURL string, concurrency int) (*Crawler, error) {
	var base *url.URL
	if baseURL != "" {
		var err error
		if base, err = url.Parse(baseURL); err != nil {
			return nil, fmt.Errorf("parsing base url: %w", err)
		}
	}
	if concurrency < 1 {
		concurrency = 1
	}
	return &Crawler{fetcher: fetcher, baseURL: base, concurrency: concurrency}, nil
}

// Crawl processes every start URL and returns the works in a stable order:
// per start URL, the defining work of a collection first, then its members in
// contents order. Per-page failures are logged and skipped; only context
// cancellation aborts the batch.
func (c *Crawler) Crawl(ctx context.Context, startURLs []string) ([]*award.Work, error) {
	works := make([]*award.Work, 0)

	for _, raw := range startURLs {
		if err := ctx.Err(); err != nil {
			return works, err
		}

		inst := Classify(resolve(c.baseURL, raw))

		switch inst.Kind {
		case KindTitle:
			extracted, err := c.extractAll(ctx, []Instruction{inst})
			works = append(works, compact(extracted)...)
			if err != nil {
				return works, err
			}
		case KindCollection:
			collected, err := c.collect(ctx, inst)
			works = append(works, collected...)
			if err != nil {
				return works, err
			}
		default:
			logger.Warn("Skipping start URL", logger.Fields{
				"url":    raw,
				"reason": ErrUnknownPageKind.Error(),
			})
			logger.IncrCounter("urls.unknown")
		}
	}

	return works, nil
}

// collect expands a collection and extracts its defining work followed by its
// members. The defining work is fetched first: without it there is no
// collection entry to lead the output, so the whole collection is skipped.
func (c *Crawler) collect(ctx context.Context, inst Instruction) ([]*award.Work, error) {
	batch, err := c.expand(ctx, inst)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		logger.Error("Skipping collection", logger.Fields{"url": inst.URL}, err)
		logger.IncrCounter("collections.skipped")
		return nil, nil
	}

	defining, err := c.extractAll(ctx, batch[:1])
	if err != nil {
		return nil, err
	}
	if defining[0] == nil {
		logger.Error("Skipping collection", logger.Fields{"url": inst.URL}, &ParseError{
			Field: "defining title",
			URL:   batch[0].URL,
			Err:   ErrDefiningTitleUnavailable,
		})
		logger.IncrCounter("collections.skipped")
		return nil, nil
	}

	members, err := c.extractAll(ctx, batch[1:])
	return append([]*award.Work{defining[0]}, compact(members)...), err
}

func (c *Crawler) expand(ctx context.Context, inst Instruction) ([]Instruction, error) {
	doc, err := c.fetcher.Fetch(ctx, inst.URL)
	if err != nil {
		return nil, err
	}
	instructions, err := ExpandCollection(doc, inst.URL)
	if err != nil {
		return nil, err
	}
	logger.Info("Expanded collection", logger.Fields{
		"url":     inst.URL,
		"entries": len(instructions) - 1,
	})
	return instructions, nil
}

// extractAll fetches and parses a batch of title instructions concurrently.
// The result is aligned with batch; a failed page leaves a nil slot.
func (c *Crawler) extractAll(ctx context.Context, batch []Instruction) ([]*award.Work, error) {
	results := make([]*award.Work, len(batch))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for i, inst := range batch {
		g.Go(func() error {
			work, err := c.extract(gctx, inst)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				var perr *ParseError
				if errors.As(err, &perr) {
					logger.IncrCounter("pages.unparseable")
				}
				logger.Error("Skipping title page", logger.Fields{
					"url":            inst.URL,
					"title_override": inst.TitleOverride,
				}, err)
				return nil
			}
			results[i] = work
			return nil
		})
	}
	err := g.Wait()
	return results, err
}

func (c *Crawler) extract(ctx context.Context, inst Instruction) (*award.Work, error) {
	doc, err := c.fetcher.Fetch(ctx, inst.URL)
	if err != nil {
		return nil, err
	}
	work, err := ExtractWork(doc, inst.URL, inst.TitleOverride)
	if err != nil {
		return nil, err
	}
	logger.IncrCounter("works.extracted")
	return work, nil
}

func compact(works []*award.Work) []*award.Work {
	out := make([]*award.Work, 0, len(works))
	for _, w := range works {
		if w != nil {
			out = append(out, w)
		}
	}
	return out
}
