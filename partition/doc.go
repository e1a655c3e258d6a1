// Package partition implements the partition scheduler: for a given
// (partitionHeight, comparisonHeight, shift) triple it enumerates disjoint
// 2x2 candidate cell groups across the comparison-height grid -- the
// unshifted pass tiles the grid from its origin, the shifted pass tiles it
// offset by one partition length in each dimension, together covering
// every adjacent pair of partitions across the two scheduler passes -- and
// resolves each group via exchange.FindAndSwapBestPermutation, summing the
// resulting exchange counts across the whole (parallel) scan.
package partition
