package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/pfrederiksen/isfdb-awards/internal/award"
)

// Tag renders one award as "{award}.{category}.{year}.{rank}", adding
// " place" to ordinal ranks such as "2nd".
func Tag(a award.Award) string {
	suffix := ""
	if a.Rank != "" && a.Rank[0] >= '1' && a.Rank[0] <= '9' {
		suffix = " place"
	}
	return fmt.Sprintf("%s.%s.%s.%s%s", a.Award, a.Category, a.Year, a.Rank, suffix)
}

// Tags returns every award of every work in order, collection first.
func Tags(works []award.Work) []string {
	tags := make([]string, 0)
	for _, work := range works {
		for _, a := range work.Awards {
			tags = append(tags, Tag(a))
		}
	}
	return tags
}

func writeTags(w io.Writer, works []award.Work) error {
	_, err := fmt.Fprintln(w, strings.Join(Tags(works), ", "))
	return err
}
