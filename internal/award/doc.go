// Package award provides the Work and Award records harvested from ISFDB and the
// rule engine that canonicalizes them.
//
// Raw award rows carry decades of inconsistent data entry: ranks written as
// ordinal words, integers or status words, franchise names with and without an
// "Award" suffix, and categories whose wording differs between award years. The
// normalizer maps each of rank, award name and category onto a canonical
// vocabulary, and may decide to drop an award entirely. Drops are expected
// business outcomes, reported through Outcome rather than as errors.
package award
