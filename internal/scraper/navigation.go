package scraper

import "strings"

const (
	// TitlePageMarker identifies ISFDB title detail pages
	TitlePageMarker = "title.cgi"
	// CollectionPageMarker identifies ISFDB publication (contents) pages
	CollectionPageMarker = "pl.cgi"
)

// PageKind selects the parser for a URL
type PageKind int

const (
	// KindUnknown is a URL that is neither a title nor a collection page.
	KindUnknown PageKind = iota
	// KindTitle is a single work's title page (title.cgi).
	KindTitle
	// KindCollection is a collection or anthology contents page (pl.cgi).
	KindCollection
)

func (k PageKind) String() string {
	switch k {
	case KindTitle:
		return "title"
	case KindCollection:
		return "collection"
	default:
		return "unknown"
	}
}

// Instruction tells the crawler which page to fetch next and how to parse it.
// A non-empty TitleOverride replaces the title the target page declares.
type Instruction struct {
	URL           string
	Kind          PageKind
	TitleOverride string
}

// Classify maps a start URL to an instruction by literal substring match.
// URLs matching neither marker get KindUnknown.
func Classify(rawURL string) Instruction {
	inst := Instruction{URL: rawURL}
	switch {
	case strings.Contains(rawURL, TitlePageMarker):
		inst.Kind = KindTitle
	case strings.Contains(rawURL, CollectionPageMarker):
		inst.Kind = KindCollection
	default:
		inst.Kind = KindUnknown
	}
	return inst
}

// ParseStartURLs splits a comma-separated list, trimming blanks.
func ParseStartURLs(list string) []string {
	urls := make([]string, 0)
	for _, u := range strings.Split(list, ",") {
		if u = strings.TrimSpace(u); u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}
