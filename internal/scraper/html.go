package scraper

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// textNodes returns the trimmed, non-empty text nodes under the selection in
// document order.
func textNodes(sel *goquery.Selection) []string {
	texts := make([]string, 0)
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				texts = append(texts, t)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return texts
}

// linkText returns the text of the first <a> child of sel
func linkText(sel *goquery.Selection) string {
	return strings.TrimSpace(sel.ChildrenFiltered("a").First().Text())
}

func isElement(n *html.Node, tag string) bool {
	return n.Type == html.ElementNode && n.Data == tag
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// isTitleLink reports whether n is an <a> pointing at a title page
func isTitleLink(n *html.Node) bool {
	if !isElement(n, "a") {
		return false
	}
	href, ok := attr(n, "href")
	return ok && strings.Contains(href, TitlePageMarker)
}

// resolve makes href absolute against the page URL, like following a link.
func resolve(base *url.URL, href string) string {
	if base == nil {
		return href
	}
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
