// Package runner applies a Schedule of sort passes to a tree: each pass
// runs sortdriver.Sort with its own (decaying) max-iterations and
// distance-threshold budget, optionally preceded by a seeded randomization
// of the leaf assignment, and checked for invariant violations before and
// after the whole schedule. Cancellation is checked only between passes --
// never mid-pass.
package runner
