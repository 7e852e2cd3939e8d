package award

import (
	"github.com/pfrederiksen/isfdb-awards/internal/logger"
)

// Normalize canonicalizes one raw award. The award name is processed first
// because category rules are selected by the canonical name.
func Normalize(raw Award) Outcome[Award] {
	name := ProcessAwardName(raw.Award)
	if !name.Kept() {
		return Drop[Award](name.Reason)
	}

	rank := ProcessRank(raw.Rank)
	if !rank.Kept() {
		return Drop[Award](rank.Reason)
	}

	category := ProcessCategory(raw.Category, name.Value)
	if !category.Kept() {
		return Drop[Award](category.Reason)
	}

	return Keep(Award{
		Rank:     rank.Value,
		Year:     raw.Year,
		Award:    name.Value,
		Category: category.Value,
	})
}

// NormalizeWork replaces the work's awards with their canonical forms,
// removing dropped awards and keeping source order. It returns the number of
// dropped awards.
func NormalizeWork(w *Work) int {
	kept := make([]Award, 0, len(w.Awards))
	dropped := 0

	for _, raw := range w.Awards {
		out := Normalize(raw)
		if !out.Kept() {
			dropped++
			logger.Info("Dropped award", logger.Fields{
				"title":  w.Title,
				"award":  raw.String(),
				"reason": out.Reason,
			})
			logger.IncrCounter("awards.dropped")
			continue
		}
		logger.IncrCounter("awards.kept")
		kept = append(kept, out.Value)
	}

	w.Awards = kept
	return dropped
}
