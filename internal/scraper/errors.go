package scraper

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownPageKind is reported for start URLs that are neither title nor collection pages.
	ErrUnknownPageKind = errors.New("unknown page kind")
	// ErrMissingDefiningTitle is reported when a collection page links to no defining title.
	ErrMissingDefiningTitle = errors.New("no defining title link found")
	// ErrDefiningTitleUnavailable is reported when a collection's defining title page cannot be extracted.
	ErrDefiningTitleUnavailable = errors.New("defining title page could not be extracted")
	// ErrMalformedAwardRow is carried by failed row outcomes whose award cell is not "<year> <award>".
	ErrMalformedAwardRow = errors.New("malformed award row")
	// ErrDisallowedDomain is returned by HTTPFetcher for hosts outside the allow-list.
	ErrDisallowedDomain = errors.New("domain not allowed")
	// ErrUnexpectedStatusCode indicates a non-200 response after retries.
	ErrUnexpectedStatusCode = errors.New("unexpected status code")
)

// ParseError reports a page that could not be turned into a Work or a set of
// instructions. Field names the missing piece: "title", "date" or "defining title".
type ParseError struct {
	Field string
	URL   string
	Err   error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("parsing %s", e.Field)
	if e.URL != "" {
		msg += " of " + e.URL
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
