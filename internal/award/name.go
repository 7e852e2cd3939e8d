package award

import (
	"fmt"
	"strings"
)

// ignoredAwardNames are franchise fragments whose awards are not annotated.
var ignoredAwardNames = []string{
	"prometheus",
	"lasswitz",
	"imaginaire",
	"goodreads",
	"locus online",
	"endeavour",
	"ignotus",
	"neffy",
	"mythopoeic",
	"seiun",
	"itogi",
	"balrog",
	"gaylactic",
	"lodestar",
	"aml award",
	"canopus",
	"shelley",
	"gandalf",
	"wellman",
	"deathrealm",
	"ditmar",
	"utopia",
	"brandon",
	"ihg",
	"ifa",
}

// awardNameReplacements run in order, each on the result of the previous one.
var awardNameReplacements = []struct {
	old string
	new string
}{
	{"BSFA", "British Science Fiction"},
	{"Clarke", "Arthur C Clarke"},
	{"Dick", "Philip K Dick Award"},
	{"Crook", "Compton Crook Memorial Award"},
	{"BFA", "British Fantasy"},
	{"Stoker", "Bram Stoker Award"},
	{"Gemmell", "David Gemmell Legend"},
}

// ProcessAwardName canonicalizes an award franchise name. An empty name is
// kept as empty; a name on the ignore list is dropped. Every other canonical
// name ends in "Award" or "Awards".
func ProcessAwardName(raw string) Outcome[string] {
	if raw == "" {
		return Keep("")
	}

	if containsAny(strings.ToLower(raw), ignoredAwardNames) {
		return Drop[string](fmt.Sprintf("ignoring award name: %s", raw))
	}

	name := raw
	for _, r := range awardNameReplacements {
		name = strings.ReplaceAll(name, r.old, r.new)
	}

	if !strings.HasSuffix(name, "Award") && !strings.HasSuffix(name, "Awards") {
		name += " Awards"
	}

	return Keep(name)
}
