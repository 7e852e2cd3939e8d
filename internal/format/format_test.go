package format

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pfrederiksen/isfdb-awards/internal/award"
)

func exampleWorks() []award.Work {
	return []award.Work{
		{Title: "Collection", Year: "1977", Awards: []award.Award{}},
		{Title: "Example Novel", Year: "1977", Awards: []award.Award{
			{Rank: "winner", Year: "1977", Award: "Hugo Award", Category: "Best Novel"},
		}},
	}
}

func TestWrite_RoundTripExample(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeDescription, "Example Novel (1977. Novel: Hugo (winner))\n"},
		{ModeTags, "Hugo Award.Best Novel.1977.winner\n"},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(&buf, tt.mode, exampleWorks()); err != nil {
				t.Fatalf("Write() error: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("Write(%s) = %q, want %q", tt.mode, buf.String(), tt.want)
			}
		})
	}
}

func TestWrite_UnknownMode(t *testing.T) {
	if err := Write(&bytes.Buffer{}, Mode("yaml"), exampleWorks()); err == nil {
		t.Error("Write() with unknown mode expected error")
	}
}

func TestWrite_DoesNotMutateInput(t *testing.T) {
	works := exampleWorks()
	for _, mode := range []Mode{ModeDescription, ModeTags, ModeTable} {
		if err := Write(&bytes.Buffer{}, mode, works); err != nil {
			t.Fatalf("Write(%s) error: %v", mode, err)
		}
	}
	if diff := cmp.Diff(exampleWorks(), works); diff != "" {
		t.Errorf("input mutated (-want +got):\n%s", diff)
	}
}

func TestDescriptionLine(t *testing.T) {
	tests := []struct {
		name string
		work award.Work
		want string
	}{
		{
			name: "no awards",
			work: award.Work{Title: "Quiet Book", Year: "1999"},
			want: "Quiet Book (1999)",
		},
		{
			name: "grouped by category in first-seen order",
			work: award.Work{Title: "The Dispossessed", Year: "1974", Awards: []award.Award{
				{Rank: "winner", Year: "1975", Award: "Hugo Awards", Category: "Best Novel"},
				{Rank: "winner", Year: "1975", Award: "Locus Award", Category: "Best SF Novel"},
				{Rank: "winner", Year: "1975", Award: "Nebula Award", Category: "Best Novel"},
				{Rank: "nominee", Year: "1975", Award: "Jupiter Award", Category: "Novel"},
			}},
			want: "The Dispossessed (1974. Novel: Hugo (winner), Nebula (winner), Jupiter (nominee); SF Novel: Locus (winner))",
		},
		{
			name: "superior achievement prefixes",
			work: award.Work{Title: "Horror", Year: "1990", Awards: []award.Award{
				{Rank: "nominee", Year: "1991", Award: "Bram Stoker Award", Category: "Superior Achievement in a Novel"},
				{Rank: "winner", Year: "1991", Award: "Bram Stoker Award", Category: "Superior Achievement in Short Fiction"},
			}},
			want: "Horror (1990. Novel: Bram Stoker (nominee); Short Fiction: Bram Stoker (winner))",
		},
		{
			name: "ordinal rank",
			work: award.Work{Title: "Placed", Year: "2001", Awards: []award.Award{
				{Rank: "2nd", Year: "2002", Award: "Locus Award", Category: "Best SF Novel"},
			}},
			want: "Placed (2001. SF Novel: Locus (2nd))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DescriptionLine(tt.work); got != tt.want {
				t.Errorf("DescriptionLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDisplayCategory(t *testing.T) {
	tests := map[string]string{
		"Best Novel":                           "Novel",
		"Best Superior Achievement in a Novel": "Novel",
		"Superior Achievement in Poetry":       "Poetry",
		"Best Best Novel":                      "Best Novel",
		"Novel, Best":                          "Novel, Best",
	}
	for in, want := range tests {
		if got := displayCategory(in); got != want {
			t.Errorf("displayCategory(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDisplayAward(t *testing.T) {
	tests := map[string]string{
		"Hugo Awards":           "Hugo",
		"Nebula Award":          "Nebula",
		"Locus Award Awards":    "Locus",
		"Locus Awards Award":    "Locus Awards",
		"British Fantasy Prize": "British Fantasy Prize",
	}
	for in, want := range tests {
		if got := displayAward(in); got != want {
			t.Errorf("displayAward(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestWriteDescription_SkipsCollection(t *testing.T) {
	works := []award.Work{
		{Title: "Collection", Year: "1975", Awards: []award.Award{{Rank: "winner", Year: "1976", Award: "Locus Award", Category: "Best Collection"}}},
		{Title: "Story A", Year: "1970"},
		{Title: "Story B", Year: "1971"},
	}

	var buf bytes.Buffer
	if err := Write(&buf, ModeDescription, works); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if got, want := buf.String(), "Story A (1970)\nStory B (1971)\n"; got != want {
		t.Errorf("Write() = %q, want %q", got, want)
	}

	buf.Reset()
	if err := Write(&buf, ModeDescription, works[:1]); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("collection-only input printed %q", buf.String())
	}
}

func TestTag(t *testing.T) {
	tests := []struct {
		rank string
		want string
	}{
		{"winner", "Locus Award.Best SF Novel.1975.winner"},
		{"nominee", "Locus Award.Best SF Novel.1975.nominee"},
		{"honorable mention", "Locus Award.Best SF Novel.1975.honorable mention"},
		{"2nd", "Locus Award.Best SF Novel.1975.2nd place"},
		{"11th", "Locus Award.Best SF Novel.1975.11th place"},
		{"", "Locus Award.Best SF Novel.1975."},
	}
	for _, tt := range tests {
		t.Run(tt.rank, func(t *testing.T) {
			a := award.Award{Rank: tt.rank, Year: "1975", Award: "Locus Award", Category: "Best SF Novel"}
			if got := Tag(a); got != tt.want {
				t.Errorf("Tag() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriteTags_CollectionFirst(t *testing.T) {
	works := []award.Work{
		{Title: "Collection", Year: "1975", Awards: []award.Award{{Rank: "winner", Year: "1976", Award: "Locus Award", Category: "Best Collection"}}},
		{Title: "Story A", Year: "1970", Awards: []award.Award{
			{Rank: "winner", Year: "1971", Award: "Hugo Award", Category: "Best Short Story"},
			{Rank: "3rd", Year: "1971", Award: "Locus Award", Category: "Best Short Story"},
		}},
		{Title: "Story B", Year: "1971"},
	}

	var buf bytes.Buffer
	if err := Write(&buf, ModeTags, works); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	want := "Locus Award.Best Collection.1976.winner, Hugo Award.Best Short Story.1971.winner, Locus Award.Best Short Story.1971.3rd place\n"
	if buf.String() != want {
		t.Errorf("Write() = %q, want %q", buf.String(), want)
	}
}

func TestWriteTable(t *testing.T) {
	works := exampleWorks()

	var buf bytes.Buffer
	if err := Write(&buf, ModeTable, works); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"WORK", "Collection", "Example Novel", "Hugo Award", "Best Novel", "winner"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}
