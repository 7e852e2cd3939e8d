package award

import (
	"fmt"
	"strconv"
	"strings"
)

// ignoredRanks are statuses that never represent a real placement.
var ignoredRanks = []string{"withdraw", "decline", "below cutoff", "preliminary"}

// statusRanks map a lowercase fragment to its canonical rank, checked in order.
var statusRanks = []struct {
	fragment  string
	canonical string
}{
	{"nomin", "nominee"},
	{"win", "winner"},
	{"finalist", "finalist"},
	{"honorable", "honorable mention"},
}

// ProcessRank canonicalizes a raw rank such as "Nominee", "Win" or "3".
// Numeric ranks become "winner" for 1 and an ordinal ("2nd", "11th") otherwise.
func ProcessRank(raw string) Outcome[string] {
	if raw == "" {
		return Drop[string]("rank is missing or empty")
	}

	lower := strings.ToLower(raw)
	if containsAny(lower, ignoredRanks) {
		return Drop[string](fmt.Sprintf("ignoring rank: %s", raw))
	}

	for _, s := range statusRanks {
		if strings.Contains(lower, s.fragment) {
			return Keep(s.canonical)
		}
	}

	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return Drop[string](fmt.Sprintf("unrecognized rank: %s", raw))
	}
	if n == 1 {
		return Keep("winner")
	}

	return Keep(fmt.Sprintf("%d%s", n, ordinalSuffix(n)))
}

// ordinalSuffix returns the English ordinal suffix for n >= 1
func ordinalSuffix(n int) string {
	if m := n % 100; m >= 11 && m <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}
