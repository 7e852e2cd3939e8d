// Package scraper navigates and parses ISFDB title and publication pages.
//
// A start URL is classified by Classify as a title page (title.cgi) or a
// collection/anthology publication page (pl.cgi). Collection pages are
// expanded by ExpandCollection into one Instruction for the collection's
// defining title plus one per qualifying contents entry. Title pages are
// parsed by ExtractWork into an award.Work carrying the raw award rows.
//
// ExtractWork and ExpandCollection are pure functions of their document.
// Fetching, retries and politeness live in HTTPFetcher, and Crawler ties the
// pieces together for a batch of start URLs.
package scraper
