package scraper

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/isfdb-awards/internal/award"
	"github.com/pfrederiksen/isfdb-awards/internal/logger"
)

const (
	titleLabel = "Title:"
	dateLabel  = "Date:"
)

var (
	yearPattern     = regexp.MustCompile(`[0-9]{4}`)
	awardRowPattern = regexp.MustCompile(`([0-9]+) (.*)`)
)

// ExtractWork parses a title page into a Work with its raw awards. A non-empty
// titleOverride is used verbatim instead of the page's own title. pageURL is
// only used for diagnostics.
func ExtractWork(doc *goquery.Document, pageURL, titleOverride string) (*award.Work, error) {
	info := doc.Find("div#content > div").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.Contains(s.Text(), titleLabel)
	})
	texts := textNodes(info)

	if !hasLabel(texts, titleLabel) {
		return nil, &ParseError{Field: "title", URL: pageURL, Err: errors.New("title label not found")}
	}
	title := titleOverride
	if title == "" {
		var ok bool
		if title, ok = valueAfter(texts, titleLabel); !ok {
			return nil, &ParseError{Field: "title", URL: pageURL, Err: errors.New("title not found")}
		}
	}

	date, ok := valueAfter(texts, dateLabel)
	if !ok {
		return nil, &ParseError{Field: "date", URL: pageURL, Err: errors.New("date not found")}
	}
	year := yearPattern.FindString(date)
	if year == "" {
		return nil, &ParseError{Field: "date", URL: pageURL, Err: fmt.Errorf("no year in %q", date)}
	}

	work := award.NewWork(title, year)
	for _, row := range awardRows(doc) {
		out := parseAwardRow(row)
		if !out.Kept() {
			logger.Warn("Skipping award row", logger.Fields{
				"url":    pageURL,
				"title":  title,
				"status": out.Status.String(),
				"reason": out.Err.Error(),
			})
			logger.IncrCounter("rows.skipped")
			continue
		}
		work.Awards = append(work.Awards, out.Value)
	}

	return work, nil
}

func hasLabel(texts []string, label string) bool {
	for _, t := range texts {
		if t == label {
			return true
		}
	}
	return false
}

// valueAfter returns the text node following the first node equal to label.
func valueAfter(texts []string, label string) (string, bool) {
	for i, t := range texts {
		if t == label {
			if i+1 < len(texts) {
				return texts[i+1], true
			}
			return "", false
		}
	}
	return "", false
}

// awardRows selects the rows of every table following the "Awards" heading,
// without each table's header row.
func awardRows(doc *goquery.Document) []*goquery.Selection {
	heading := doc.Find("h3").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.TrimSpace(s.Text()) == "Awards"
	}).First()

	rows := make([]*goquery.Selection, 0)
	heading.NextAllFiltered("table").Each(func(_ int, table *goquery.Selection) {
		table.Find("tr").Each(func(i int, tr *goquery.Selection) {
			if i > 0 {
				rows = append(rows, tr)
			}
		})
	})
	return rows
}

// parseAwardRow reads rank, "<year> <award>" and category from the first three cells.
func parseAwardRow(row *goquery.Selection) award.Outcome[award.Award] {
	cells := row.ChildrenFiltered("td")
	yearAndName := linkText(cells.Eq(1))

	m := awardRowPattern.FindStringSubmatch(yearAndName)
	if m == nil {
		return award.Fail[award.Award](fmt.Errorf("%w: %q", ErrMalformedAwardRow, yearAndName))
	}

	return award.Keep(award.Award{
		Rank:     linkText(cells.Eq(0)),
		Year:     m[1],
		Award:    m[2],
		Category: linkText(cells.Eq(2)),
	})
}
