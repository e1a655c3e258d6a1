// Package ldglog provides the two logging surfaces the CLI uses: a small
// leveled application logger (Debug/Info/Warn/Error with structured
// fields), and RunLogger, a semicolon-separated CSV writer matching the
// source's per-iteration progress log exactly: one header row, then one
// row per sort-driver iteration.
package ldglog
