// Package quadtree implements QuadAssignmentTree, the flat quadtree-of-
// aggregates structure at the center of the grid-placement engine: a
// single data pool, a single assignment array mapping every tree slot to a
// pool index, and a per-height bounds cache built once at construction.
//
// Only the leaf sub-range of the assignment array is ever permuted by the
// sorting algorithm; every other height's assignment entries keep their
// construction-time pool slots, and aggregation rewrites the vectors held
// in those slots. This mirrors the "flat storage pool + index
// indirection" design used throughout the reference implementation, rather
// than a pointer-linked tree of nodes.
package quadtree
