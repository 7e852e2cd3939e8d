package format

import (
	"fmt"
	"io"

	"github.com/pfrederiksen/isfdb-awards/internal/award"
)

// Mode selects the renderer
type Mode string

const (
	ModeDescription Mode = "description"
	ModeTags        Mode = "tags"
	ModeTable       Mode = "table"
)

// Write renders works in the given mode. The input slice is not modified.
func Write(w io.Writer, mode Mode, works []award.Work) error {
	switch mode {
	case ModeDescription:
		return writeDescription(w, works)
	case ModeTags:
		return writeTags(w, works)
	case ModeTable:
		return writeTable(w, works)
	default:
		return fmt.Errorf("unknown format mode: %s", mode)
	}
}
