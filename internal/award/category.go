package award

import (
	"fmt"
	"regexp"
	"strings"
)

// ignoredCategories drop the whole award when found in the category.
var ignoredCategories = []string{"ravenheart"}

// categoryRule is a single first-occurrence regexp substitution. The
// replacement may reference groups with ${n}.
type categoryRule struct {
	pattern     *regexp.Regexp
	replacement string
}

func rule(pattern, replacement string) categoryRule {
	return categoryRule{pattern: regexp.MustCompile(pattern), replacement: replacement}
}

// apply replaces the first match of the rule's pattern in s
func (r categoryRule) apply(s string) string {
	loc := r.pattern.FindStringSubmatchIndex(s)
	if loc == nil {
		return s
	}
	var b strings.Builder
	b.WriteString(s[:loc[0]])
	b.Write(r.pattern.ExpandString(nil, r.replacement, s, loc))
	b.WriteString(s[loc[1]:])
	return b.String()
}

// genericCategoryRules apply to every award
var genericCategoryRules = []categoryRule{
	rule(`LGBT.*Fiction.*`, "LGBTQ Speculative Fiction"),
	rule(`Science Fiction`, "SF"),
	rule(` – English$`, ""),
	rule(` - Adult$`, " (Adult)"),
	rule(`Eugie Award`, "Best Short Fiction"),
}

// awardCategoryRules are guarded by a lowercase fragment of the canonical
// award name and appended after the generic rules in table order.
var awardCategoryRules = []struct {
	awardFragment string
	rules         []categoryRule
}{
	{"aurora", []categoryRule{
		rule(`Best`, "Best Canadian"),
	}},
	{"british fantasy", []categoryRule{
		rule(`.*(Best Horror Novel)`, "${1}"),
		rule(`.*Fantasy.*`, "Best Fantasy Novel"),
		rule(`.*(Best Newcomer).*`, "${1}"),
	}},
	{"dick", []categoryRule{
		rule(`(?s).*`, "Best SF Paperback (US)"),
	}},
	{"gemmell", []categoryRule{
		rule(`Legend Award`, "Best Fantasy Novel"),
		rule(`Morningstar Award`, "Best Fantasy Newcomer"),
	}},
	{"nebula", []categoryRule{
		rule(`^`, "Best "),
	}},
	{"sf chronicle", []categoryRule{
		rule(`^`, "Best "),
	}},
	{"sunburst", []categoryRule{
		rule(`Adult$`, "${0} Fiction"),
		rule(`^`, "Best Canadian "),
	}},
}

// categoryRulesFor assembles the ordered rule list for a canonical award name.
// The shared tables are never modified.
func categoryRulesFor(awardName string) []categoryRule {
	rules := make([]categoryRule, 0, len(genericCategoryRules)+3)
	rules = append(rules, genericCategoryRules...)

	lower := strings.ToLower(awardName)
	for _, set := range awardCategoryRules {
		if strings.Contains(lower, set.awardFragment) {
			rules = append(rules, set.rules...)
		}
	}
	return rules
}

// ProcessCategory canonicalizes a category using the rules selected by the
// canonical award name.
func ProcessCategory(raw, awardName string) Outcome[string] {
	if containsAny(strings.ToLower(raw), ignoredCategories) {
		return Drop[string](fmt.Sprintf("ignoring category: %s", raw))
	}

	if strings.Contains(raw, "Compton Crook") {
		return Keep("Best First Novel")
	}

	category := raw
	for _, r := range categoryRulesFor(awardName) {
		category = r.apply(category)
	}
	return Keep(category)
}
