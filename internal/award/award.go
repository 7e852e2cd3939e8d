package award

import "fmt"

// Award is a single award row. Raw and canonical awards share this shape.
type Award struct {
	Rank     string `json:"rank"`
	Year     string `json:"year"`
	Award    string `json:"award"`
	Category string `json:"category"`
}

// String renders the award for log fields
func (a Award) String() string {
	return fmt.Sprintf("%s %s / %s (%s)", a.Year, a.Award, a.Category, a.Rank)
}

// Work is a single title record with its publication year and awards in
// table row order.
type Work struct {
	Title  string  `json:"title"`
	Year   string  `json:"year"`
	Awards []Award `json:"awards"`
}

// NewWork creates a Work with an empty, non-nil award list so the JSON
// artifact always carries "awards": [].
func NewWork(title, year string) *Work {
	return &Work{
		Title:  title,
		Year:   year,
		Awards: make([]Award, 0),
	}
}
