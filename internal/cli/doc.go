// Package cli implements the command-line interfaces for isfdb-awards.
//
// NewCrawlCmd builds the crawl program: it reads start URLs from arguments and
// an optional YAML config, crawls title and collection pages, normalizes every
// award and writes the works artifact as JSON. NewFormatCmd builds the
// formatter program, which reads that artifact and prints it as description
// lines, a tag list, or a review table.
package cli
