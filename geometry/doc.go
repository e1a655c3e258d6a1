// Package geometry provides the index arithmetic shared by every layer of
// the quadtree-of-aggregates grid: row-major indexing, ceil-division by
// powers of two, per-height bounds caching, and leaf-rectangle lookup.
//
// What: pure, allocation-free functions and small value types describing
// where a cell sits in the flat data/assignment arrays that back a
// QuadAssignmentTree, for every height from the leaf grid (height 0) up to
// the root (height Depth-1).
//
// Why: every other package (quadtree, target, partition, hnd, ...) needs
// the same row/col <-> index conversions and the same halving-grid shape
// math. Centralizing it here keeps that arithmetic in one place and
// testable in isolation.
//
// Complexity: every exported function runs in O(1), except
// BuildBoundsCache and RequiredCapacity, which run in O(Depth).
package geometry
