package scraper

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"golang.org/x/net/html/charset"
	"golang.org/x/time/rate"

	"github.com/pfrederiksen/isfdb-awards/internal/logger"
)

const (
	BaseURL   = "https://www.isfdb.org/cgi-bin/"
	UserAgent = "isfdb-awards/1.0 (github.com/pfrederiksen/isfdb-awards)"
	Timeout   = 30 * time.Second
)

// Fetcher retrieves and parses one page
type Fetcher interface {
	Fetch(ctx context.Context, pageURL string) (*goquery.Document, error)
}

// FetchOptions configures HTTPFetcher. Zero values fall back to the defaults
// used by NewHTTPFetcher.
type FetchOptions struct {
	UserAgent         string
	Timeout           time.Duration
	MaxAttempts       int
	InitialDelay      time.Duration
	MaxDelay          time.Duration
	RequestsPerSecond float64
	AllowedDomains    []string
}

// HTTPFetcher fetches pages with retries, a request rate limit and a domain allow-list.
type HTTPFetcher struct {
	client  *resty.Client
	allowed []string
}

// NewHTTPFetcher creates a fetcher from opts
func NewHTTPFetcher(opts FetchOptions) *HTTPFetcher {
	if opts.UserAgent == "" {
		opts.UserAgent = UserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = Timeout
	}
	if opts.MaxAttempts < 1 {
		opts.MaxAttempts = 1
	}
	if opts.InitialDelay <= 0 {
		opts.InitialDelay = 500 * time.Millisecond
	}
	if opts.MaxDelay < opts.InitialDelay {
		opts.MaxDelay = opts.InitialDelay
	}

	client := resty.New().
		SetTimeout(opts.Timeout).
		SetHeader("User-Agent", opts.UserAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8").
		SetRetryCount(opts.MaxAttempts - 1).
		SetRetryWaitTime(opts.InitialDelay).
		SetRetryMaxWaitTime(opts.MaxDelay).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			code := r.StatusCode()
			return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
		})

	if opts.RequestsPerSecond > 0 {
		// burst of 1 keeps requests evenly spaced
		limiter := rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1)
		client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			return limiter.Wait(req.Context())
		})
	}

	return &HTTPFetcher{client: client, allowed: opts.AllowedDomains}
}

// Fetch downloads pageURL and parses it, decoding the page's declared charset.
func (f *HTTPFetcher) Fetch(ctx context.Context, pageURL string) (*goquery.Document, error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("parsing url: %w", err)
	}
	if !f.isAllowed(u.Hostname()) {
		return nil, fmt.Errorf("%w: %s", ErrDisallowedDomain, u.Hostname())
	}

	start := time.Now()
	resp, err := f.client.R().SetContext(ctx).Get(pageURL)
	logger.RecordTiming("fetch", time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatusCode, resp.StatusCode())
	}
	logger.IncrCounter("pages.fetched")
	logger.Debug("Fetched page", logger.Fields{"url": pageURL, "bytes": len(resp.Body())})

	body, err := charset.NewReader(bytes.NewReader(resp.Body()), resp.Header().Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("decoding page: %w", err)
	}
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	doc.Url = u
	return doc, nil
}

// isAllowed reports whether host is one of the allowed domains or a subdomain
// of one. An empty allow-list permits every host.
func (f *HTTPFetcher) isAllowed(host string) bool {
	if len(f.allowed) == 0 {
		return true
	}
	host = strings.ToLower(host)
	for _, d := range f.allowed {
		d = strings.ToLower(d)
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}
