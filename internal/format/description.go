package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/pfrederiksen/isfdb-awards/internal/award"
)

// categoryPrefixes are stripped in order, each at most once
var categoryPrefixes = []string{"Best ", "Superior Achievement in a ", "Superior Achievement in "}

// awardSuffixes are stripped in order, each at most once
var awardSuffixes = []string{" Awards", " Award"}

// DescriptionLine renders one member work, e.g.
// "Example Novel (1977. Novel: Hugo (winner))".
func DescriptionLine(work award.Work) string {
	if len(work.Awards) == 0 {
		return fmt.Sprintf("%s (%s)", work.Title, work.Year)
	}

	var order []string
	byCategory := make(map[string][]string)
	for _, a := range work.Awards {
		category := displayCategory(a.Category)
		if _, seen := byCategory[category]; !seen {
			order = append(order, category)
		}
		byCategory[category] = append(byCategory[category], fmt.Sprintf("%s (%s)", displayAward(a.Award), a.Rank))
	}

	groups := make([]string, 0, len(order))
	for _, category := range order {
		groups = append(groups, fmt.Sprintf("%s: %s", category, strings.Join(byCategory[category], ", ")))
	}

	return fmt.Sprintf("%s (%s. %s)", work.Title, work.Year, strings.Join(groups, "; "))
}

func displayCategory(category string) string {
	for _, p := range categoryPrefixes {
		category = strings.TrimPrefix(category, p)
	}
	return category
}

func displayAward(name string) string {
	for _, s := range awardSuffixes {
		name = strings.TrimSuffix(name, s)
	}
	return name
}

// writeDescription writes one line per member work, skipping the leading
// collection entry.
func writeDescription(w io.Writer, works []award.Work) error {
	if len(works) < 2 {
		return nil
	}
	for _, work := range works[1:] {
		if _, err := fmt.Fprintln(w, DescriptionLine(work)); err != nil {
			return err
		}
	}
	return nil
}
