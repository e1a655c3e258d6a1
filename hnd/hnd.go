package hnd

import (
	"context"

	"github.com/ldgssm/ldgssm/geometry"
	"github.com/ldgssm/ldgssm/parallelutil"
	"github.com/ldgssm/ldgssm/quadtree"
	"github.com/ldgssm/ldgssm/vecmath"
)

// neighbourDivisor is the constant every cell's neighbour-distance sum is
// divided by, regardless of how many of its four orthogonal neighbours
// actually exist. See the package doc comment.
const neighbourDivisor = 4.0

// Compute returns the Hierarchy Neighborhood Distance of tree's grid at
// the given height: the sum, over every cell at that height, of its own
// hierarchy distance (the sum of distanceFn walked up to the root) plus
// the sum of its existing orthogonal neighbours' hierarchy distances
// divided by the constant 4. It recomputes the tree's aggregates first.
func Compute(ctx context.Context, tree *quadtree.QuadAssignmentTree, height int, distanceFn vecmath.DistanceFunc) (float64, error) {
	tree.SetDistanceFunc(distanceFn)
	if err := tree.ComputeAggregates(ctx); err != nil {
		return 0, err
	}
	bounds, ok := tree.Bounds(height)
	if !ok {
		return 0, ErrHeightOutOfRange
	}
	n := bounds.Len()
	dims := bounds.Dims

	cache := make([]float64, n)
	err := parallelutil.ForEach(ctx, n, func(i int) error {
		cache[i] = hierarchyDistance(tree, geometry.CellPosition{Height: height, Index: i}, distanceFn)
		return nil
	})
	if err != nil {
		return 0, err
	}

	total, err := parallelutil.ForEachReduce(ctx, n, 0.0,
		func(i int) (float64, error) {
			row, col := geometry.RowCol(i, dims.Cols)
			var neighbourSum float64
			if row > 0 {
				neighbourSum += cache[geometry.RowMajorIndex(row-1, col, dims.Cols)]
			}
			if row < dims.Rows-1 {
				neighbourSum += cache[geometry.RowMajorIndex(row+1, col, dims.Cols)]
			}
			if col > 0 {
				neighbourSum += cache[geometry.RowMajorIndex(row, col-1, dims.Cols)]
			}
			if col < dims.Cols-1 {
				neighbourSum += cache[geometry.RowMajorIndex(row, col+1, dims.Cols)]
			}
			return cache[i] + neighbourSum/neighbourDivisor, nil
		},
		func(a, b float64) float64 { return a + b },
	)
	if err != nil {
		return 0, err
	}
	return total, nil
}

// hierarchyDistance sums distanceFn from the cell's own vector to the
// aggregate at every ancestor along the walk to the root. The cell's
// vector stays fixed for every term; only the ancestor advances.
func hierarchyDistance(tree *quadtree.QuadAssignmentTree, pos geometry.CellPosition, distanceFn vecmath.DistanceFunc) float64 {
	var sum float64
	node, ok := tree.GetValue(pos)
	if !ok || node == nil {
		return 0
	}
	h, idx := pos.Height, pos.Index
	for h < tree.Depth()-1 {
		childBounds, _ := tree.Bounds(h)
		parentBounds, _ := tree.Bounds(h + 1)
		parentIdx := geometry.ParentIndex(idx, childBounds.Dims, parentBounds.Dims)
		parent, _ := tree.GetValue(geometry.CellPosition{Height: h + 1, Index: parentIdx})
		sum += distanceFn(node, parent)
		h, idx = h+1, parentIdx
	}
	return sum
}
