// Package parallelutil provides the fork-join primitives used by every
// parallel region described in the grid-sorting algorithm: a bounded-width
// parallel-for, and a parallel-for-with-reduction for the sum-exchange-
// counts pattern used by the partition scheduler and the HND metric.
//
// Each call is one parallel section followed by an implicit join, matching
// the reference implementation's OpenMP "#pragma omp parallel for" regions
// rather than a general task-graph scheduler. Worker concurrency is capped
// to avoid oversubscription on small grids, adapted from the bounded
// worker-pool sizing used elsewhere in the example stack.
package parallelutil
