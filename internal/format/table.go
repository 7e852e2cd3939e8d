package format

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/pfrederiksen/isfdb-awards/internal/award"
)

// writeTable renders every award of every work, one row each. Works without
// awards get a single row with empty award columns.
func writeTable(w io.Writer, works []award.Work) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Work", "Year", "Award", "Category", "Award Year", "Rank"})

	awards := 0
	for _, work := range works {
		if len(work.Awards) == 0 {
			t.AppendRow(table.Row{work.Title, work.Year, "", "", "", ""})
			continue
		}
		for _, a := range work.Awards {
			t.AppendRow(table.Row{work.Title, work.Year, a.Award, a.Category, a.Year, a.Rank})
			awards++
		}
	}
	t.AppendFooter(table.Row{"", "", "", "", "Awards", awards})
	t.SetStyle(table.StyleRounded)
	t.Render()
	return nil
}
