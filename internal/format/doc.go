// Package format renders normalized works as text for catalogers.
//
// By convention the first work is the enclosing collection and the rest are
// its members. Description mode writes one line per member work, grouping its
// awards by category. Tags mode writes a single comma-separated line of
// award tags covering the collection and every member. Table mode writes a
// review table of every award.
package format
