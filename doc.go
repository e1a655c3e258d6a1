// Package ldgssm documents the module as a whole; every importable type
// lives in one of its subpackages.
//
// ldgssm computes a two-dimensional placement of high-dimensional data
// items on a regular grid so that items close in feature space land in
// spatially nearby cells, and so that a quadtree of aggregates built over
// the grid stays internally consistent from root to leaves. The result is
// an assignment (leaf index → data index) plus the aggregated
// representative at every internal tree level, suitable for driving a
// hierarchical zoomable visualization.
//
// The engine is organized leaves-first, one package per concern:
//
//	geometry/     — row-major index math, bounds cache, parent/child arithmetic
//	vecmath/      — vector aggregation and distance functions
//	quadtree/     — the flat data pool + assignment array + bottom-up aggregation
//	target/       — per-cell target-vector construction (hierarchy, neighbourhood)
//	exchange/     — small-group permutation search and swap
//	partition/    — partition-swap scheduling across tree heights and shift phases
//	sortdriver/   — per-height convergence loop
//	hnd/          — the Hierarchy Neighborhood Distance convergence metric
//	runner/       — schedule application, pass decay, checkpoints
//
// and a matching set of boundary packages (ioconfig, assignio, rawdata,
// imaging) plus ambient concerns (parallelutil, metrics, ldglog) used by
// the cmd/ldgssm command-line entry point.
//
// See DESIGN.md for the grounding ledger and SPEC_FULL.md for the full
// requirements this module implements.
package ldgssm
