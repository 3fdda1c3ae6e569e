// Package hourlog models the plain-text hour log and its parsing.
//
// An hour log is a line-oriented text file where each line records one unit
// of worked time:
//
//	2024-01-15 1:30 [proj/acme, meeting] sprint planning
//	2024-01-15 2h15m [proj/acme] implement importer
//	# comments and blank lines are skipped
//
// The package also provides [Period], a half-open date range used to scope
// a sync run, and [ParseTaskIDs] for the external "tag = id" task table file.
package hourlog
