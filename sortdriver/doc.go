// Package sortdriver implements the per-height convergence loop: starting
// from the largest height whose grid is at least 4 cells in both
// dimensions, it runs the partition scheduler's four (or two, at height 1)
// invocations per iteration -- comparisonHeight 0 unshifted then shifted,
// and, when height > 1, comparisonHeight = height-1 unshifted then
// shifted, always in that order -- until the height's exchange count hits
// zero, HND stops changing meaningfully, or max iterations is reached,
// then descends to height-1.
package sortdriver
