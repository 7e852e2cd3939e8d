// Package storage reads and writes the JSON artifact passed from the crawl
// program to the formatter program: an array of works, each with its title,
// publication year and canonical awards.
//
// The path "-" means stdin for reads and stdout for writes. A leading "~/" is
// expanded to the user's home directory.
package storage
