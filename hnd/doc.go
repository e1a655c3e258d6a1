// Package hnd computes the two convergence metrics the sort driver and the
// CLI report: the Hierarchy Neighborhood Distance (HND), and disparity.
//
// HND sums, for every leaf cell, the distance walked up the hierarchy to
// the root plus the average of its four orthogonal neighbours' own
// hierarchy distance. That neighbour average always divides by 4, even at
// a grid edge where fewer than four neighbours exist -- edge cells
// therefore carry a systematically lower neighbour contribution. This is
// intentional and preserved exactly as the source describes it; see
// DESIGN.md for the discrepancy this resolves against an earlier source
// snippet that divided by the live neighbour count instead.
//
// Disparity reports, per tree node, the average distance from that node's
// own vector to each non-void leaf in its subtree, normalized so the
// root's disparity is exactly 1.0.
package hnd
