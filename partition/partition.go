package partition

import (
	"context"

	"github.com/ldgssm/ldgssm/exchange"
	"github.com/ldgssm/ldgssm/geometry"
	"github.com/ldgssm/ldgssm/parallelutil"
	"github.com/ldgssm/ldgssm/quadtree"
	"github.com/ldgssm/ldgssm/target"
	"github.com/ldgssm/ldgssm/vecmath"
)

// Scheduler optimizes one tree against one distance function and one
// target construction. It carries no per-call state, so a single Scheduler
// value may be reused for every height of the sort driver's descent.
type Scheduler struct {
	Tree       *quadtree.QuadAssignmentTree
	DistanceFn vecmath.DistanceFunc
	Kind       target.Kind

	// CombineKinds, when non-empty, overrides Kind: every call
	// concatenates the target lists target.Build produces for each kind
	// in this slice, in order, instead of using the single Kind above.
	// This implements spec.md section 6's combine_targets=true schedule
	// option (run.hpp's createTargetSchedule, which hands every pass the
	// full sort_options.target_types list rather than one kind at a
	// time).
	CombineKinds []target.Kind
}

// OptimizePartitions recomputes the tree's aggregates, builds targets for
// comparisonHeight, and runs exchange.FindAndSwapBestPermutation over every
// disjoint 2x2 candidate group of the (partitionHeight, comparisonHeight,
// shift) partitioning, returning the total number of leaf reassignments.
func (s *Scheduler) OptimizePartitions(ctx context.Context, partitionHeight, comparisonHeight int, shift bool) (int, error) {
	s.Tree.SetDistanceFunc(s.DistanceFn)
	if err := s.Tree.ComputeAggregates(ctx); err != nil {
		return 0, err
	}

	compBounds, ok := s.Tree.Bounds(comparisonHeight)
	if !ok {
		return 0, ErrHeightOutOfRange
	}
	if _, ok := s.Tree.Bounds(partitionHeight); !ok {
		return 0, ErrHeightOutOfRange
	}
	dims := compBounds.Dims

	targets, err := s.buildTargets(ctx, partitionHeight, comparisonHeight, shift, compBounds.Len())
	if err != nil {
		return 0, err
	}

	partitionLen := 1 << uint(partitionHeight-comparisonHeight)

	offsetRow, offsetCol := 0, 0
	iterRows, iterCols := dims.Rows, dims.Cols
	if shift {
		offsetRow, offsetCol = -partitionLen, -partitionLen
		iterRows += 2 * partitionLen
		iterCols += 2 * partitionLen
	}

	projectedRows := iterRows/2 + (iterRows%(2*partitionLen))%partitionLen
	projectedCols := iterCols/2 + (iterCols%(2*partitionLen))%partitionLen
	if projectedRows <= 0 || projectedCols <= 0 {
		return 0, nil
	}

	total, err := parallelutil.ForEachReduce(ctx, projectedRows*projectedCols, 0,
		func(p int) (int, error) {
			pr, pc := p/projectedCols, p%projectedCols
			partitionY, withinY := pr/partitionLen, pr%partitionLen
			partitionX, withinX := pc/partitionLen, pc%partitionLen
			baseRow := offsetRow + withinY + partitionY*partitionLen*2
			baseCol := offsetCol + withinX + partitionX*partitionLen*2

			candidates := [4][2]int{
				{baseRow, baseCol},
				{baseRow, baseCol + partitionLen},
				{baseRow + partitionLen, baseCol},
				{baseRow + partitionLen, baseCol + partitionLen},
			}
			var nodes []geometry.CellPosition
			for _, c := range candidates {
				r, cc := c[0], c[1]
				if r < 0 || cc < 0 || r >= dims.Rows || cc >= dims.Cols {
					continue
				}
				nodes = append(nodes, geometry.CellPosition{Height: comparisonHeight, Index: geometry.RowMajorIndex(r, cc, dims.Cols)})
			}
			if len(nodes) < 2 {
				return 0, nil
			}
			nodeTargets := make([][]vecmath.Vector, len(nodes))
			for i, pos := range nodes {
				nodeTargets[i] = targets[pos.Index]
			}
			return exchange.FindAndSwapBestPermutation(s.Tree, nodes, nodeTargets, s.DistanceFn)
		},
		func(a, b int) int { return a + b },
	)
	return total, err
}

// buildTargets dispatches to target.Build for a single kind, or
// concatenates target.Build's results across every kind in CombineKinds
// when that slice is non-empty.
func (s *Scheduler) buildTargets(ctx context.Context, partitionHeight, comparisonHeight int, shift bool, numComparisonCells int) ([][]vecmath.Vector, error) {
	if len(s.CombineKinds) == 0 {
		return target.Build(ctx, s.Tree, partitionHeight, comparisonHeight, shift, s.Kind)
	}

	combined := make([][]vecmath.Vector, numComparisonCells)
	for _, kind := range s.CombineKinds {
		kindTargets, err := target.Build(ctx, s.Tree, partitionHeight, comparisonHeight, shift, kind)
		if err != nil {
			return nil, err
		}
		for i := range combined {
			combined[i] = append(combined[i], kindTargets[i]...)
		}
	}
	return combined, nil
}
