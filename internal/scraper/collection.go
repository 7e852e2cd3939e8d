package scraper

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const (
	contentsHeading     = "Contents"
	collectionVariantOf = "variant of"
	entryVariantOf      = "(variant of"
)

// skippedEntryMarkers identify contents entries that are not fiction titles.
var skippedEntryMarkers = []string{"• interior artwork", "• essay"}

// ExpandCollection turns a collection/anthology page into the instructions for
// its defining title followed by one per qualifying contents entry. Relative
// links are resolved against pageURL.
func ExpandCollection(doc *goquery.Document, pageURL string) ([]Instruction, error) {
	base, _ := url.Parse(pageURL)

	heading := doc.Find("h2").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.Contains(s.Text(), contentsHeading)
	}).First()
	if heading.Length() == 0 {
		return nil, &ParseError{Field: "defining title", URL: pageURL, Err: ErrMissingDefiningTitle}
	}

	defining, ok := definingTitle(heading.Nodes[0])
	if !ok {
		return nil, &ParseError{Field: "defining title", URL: pageURL, Err: ErrMissingDefiningTitle}
	}
	defining.URL = resolve(base, defining.URL)

	instructions := []Instruction{defining}
	heading.NextAllFiltered("ul").ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
		if inst, ok := contentsEntry(li); ok {
			inst.URL = resolve(base, inst.URL)
			instructions = append(instructions, inst)
		}
	})

	return instructions, nil
}

// definingTitle finds the collection's own title link among the siblings
// before the contents heading. A "variant of" annotation wins; its link text
// becomes the override. Only the first annotation is considered.
func definingTitle(heading *html.Node) (Instruction, bool) {
	if heading.Parent == nil {
		return Instruction{}, false
	}

	var variantText *html.Node
	for n := heading.Parent.FirstChild; n != nil && n != heading; n = n.NextSibling {
		if n.Type == html.TextNode && strings.Contains(n.Data, collectionVariantOf) {
			variantText = n
			break
		}
	}
	if variantText != nil {
		for n := variantText.NextSibling; n != nil; n = n.NextSibling {
			if isTitleLink(n) {
				href, _ := attr(n, "href")
				return Instruction{
					URL:           href,
					Kind:          KindTitle,
					TitleOverride: strings.TrimSpace(goquery.NewDocumentFromNode(n).Text()),
				}, true
			}
		}
	}

	for n := heading.Parent.FirstChild; n != nil && n != heading; n = n.NextSibling {
		if isTitleLink(n) {
			href, _ := attr(n, "href")
			return Instruction{URL: href, Kind: KindTitle}, true
		}
	}
	return Instruction{}, false
}

// contentsEntry builds the instruction for one contents list item. Entries
// without a title link and non-fiction entries are skipped.
func contentsEntry(li *goquery.Selection) (Instruction, bool) {
	links := li.Find("a").FilterFunction(func(_ int, a *goquery.Selection) bool {
		return isTitleLink(a.Nodes[0])
	})
	if links.Length() == 0 {
		return Instruction{}, false
	}

	text := li.Text()
	for _, marker := range skippedEntryMarkers {
		if strings.Contains(text, marker) {
			return Instruction{}, false
		}
	}

	if href, ok := entryVariantTarget(li.Nodes[0]); ok {
		return Instruction{
			URL:           href,
			Kind:          KindTitle,
			TitleOverride: strings.TrimSpace(li.Find("a").First().Text()),
		}, true
	}

	href, _ := links.First().Attr("href")
	return Instruction{URL: href, Kind: KindTitle}, true
}

// entryVariantTarget returns the title link that follows a "(variant of" text
// child of the entry.
func entryVariantTarget(li *html.Node) (string, bool) {
	for n := li.FirstChild; n != nil; n = n.NextSibling {
		if n.Type != html.TextNode || !strings.Contains(n.Data, entryVariantOf) {
			continue
		}
		for m := n.NextSibling; m != nil; m = m.NextSibling {
			if isTitleLink(m) {
				href, _ := attr(m, "href")
				return href, true
			}
		}
	}
	return "", false
}
