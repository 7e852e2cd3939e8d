package scraper

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func testFetchOptions() FetchOptions {
	return FetchOptions{
		Timeout:      5 * time.Second,
		MaxAttempts:  3,
		InitialDelay: 5 * time.Millisecond,
		MaxDelay:     20 * time.Millisecond,
	}
}

func TestHTTPFetcher_Fetch(t *testing.T) {
	tests := []struct {
		name        string
		statusCodes []int
		wantError   bool
		wantCalls   int32
	}{
		{"ok", []int{http.StatusOK}, false, 1},
		{"retries server errors", []int{http.StatusInternalServerError, http.StatusBadGateway, http.StatusOK}, false, 3},
		{"retries too many requests", []int{http.StatusTooManyRequests, http.StatusOK}, false, 2},
		{"gives up after max attempts", []int{http.StatusServiceUnavailable, http.StatusServiceUnavailable, http.StatusServiceUnavailable}, true, 3},
		{"not found is not retried", []int{http.StatusNotFound}, true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if ua := r.Header.Get("User-Agent"); !strings.Contains(ua, "isfdb-awards") {
					t.Errorf("User-Agent = %q, should contain 'isfdb-awards'", ua)
				}
				n := atomic.AddInt32(&calls, 1)
				code := tt.statusCodes[len(tt.statusCodes)-1]
				if int(n) <= len(tt.statusCodes) {
					code = tt.statusCodes[n-1]
				}
				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				w.WriteHeader(code)
				w.Write([]byte(titlePageHTML))
			}))
			defer server.Close()

			f := NewHTTPFetcher(testFetchOptions())
			doc, err := f.Fetch(context.Background(), server.URL+"/cgi-bin/title.cgi?1")

			if tt.wantError {
				if err == nil {
					t.Error("Fetch() expected error, got nil")
				}
			} else {
				if err != nil {
					t.Fatalf("Fetch() unexpected error: %v", err)
				}
				if doc.Url == nil || !strings.HasSuffix(doc.Url.String(), "title.cgi?1") {
					t.Errorf("doc.Url = %v", doc.Url)
				}
				if !strings.Contains(doc.Find("div#content").Text(), "The Dispossessed") {
					t.Error("fetched document is missing page content")
				}
			}
			if got := atomic.LoadInt32(&calls); got != tt.wantCalls {
				t.Errorf("server called %d times, want %d", got, tt.wantCalls)
			}
		})
	}
}

func TestHTTPFetcher_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := NewHTTPFetcher(testFetchOptions()).Fetch(context.Background(), server.URL)
	if !errors.Is(err, ErrUnexpectedStatusCode) {
		t.Errorf("Fetch() error = %v, want ErrUnexpectedStatusCode", err)
	}
}

func TestHTTPFetcher_Latin1(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
		// "Title: Ténèbres" in ISO-8859-1
		w.Write([]byte("<div id=\"content\"><div><b>Title:</b> T\xe9n\xe8bres <b>Date:</b> 1990</div></div>"))
	}))
	defer server.Close()

	doc, err := NewHTTPFetcher(testFetchOptions()).Fetch(context.Background(), server.URL+"/title.cgi?7")
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	work, err := ExtractWork(doc, server.URL, "")
	if err != nil {
		t.Fatalf("ExtractWork() error: %v", err)
	}
	if work.Title != "Ténèbres" {
		t.Errorf("Title = %q, want Ténèbres", work.Title)
	}
}

func TestHTTPFetcher_AllowedDomains(t *testing.T) {
	f := NewHTTPFetcher(FetchOptions{AllowedDomains: []string{"isfdb.org"}})

	tests := []struct {
		host string
		want bool
	}{
		{"isfdb.org", true},
		{"www.isfdb.org", true},
		{"WWW.ISFDB.ORG", true},
		{"notisfdb.org", false},
		{"example.com", false},
	}
	for _, tt := range tests {
		if got := f.isAllowed(tt.host); got != tt.want {
			t.Errorf("isAllowed(%q) = %v, want %v", tt.host, got, tt.want)
		}
	}

	_, err := f.Fetch(context.Background(), "https://example.com/title.cgi?1")
	if !errors.Is(err, ErrDisallowedDomain) {
		t.Errorf("Fetch() error = %v, want ErrDisallowedDomain", err)
	}
}

func TestHTTPFetcher_RateLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html></html>"))
	}))
	defer server.Close()

	opts := testFetchOptions()
	opts.RequestsPerSecond = 20
	f := NewHTTPFetcher(opts)

	start := time.Now()
	for i := 0; i < 3; i++ {
		if _, err := f.Fetch(context.Background(), server.URL); err != nil {
			t.Fatalf("Fetch() error: %v", err)
		}
	}
	// three requests at 20/s with burst 1 need at least two 50ms gaps
	if elapsed := time.Since(start); elapsed < 90*time.Millisecond {
		t.Errorf("3 requests took %v, want them spaced by the rate limit", elapsed)
	}
}

func TestHTTPFetcher_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html></html>"))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewHTTPFetcher(testFetchOptions()).Fetch(ctx, server.URL); err == nil {
		t.Error("Fetch() with canceled context expected error")
	}
}
