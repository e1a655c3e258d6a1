package hnd

import (
	"context"

	"github.com/ldgssm/ldgssm/geometry"
	"github.com/ldgssm/ldgssm/parallelutil"
	"github.com/ldgssm/ldgssm/quadtree"
	"github.com/ldgssm/ldgssm/vecmath"
)

// Disparity returns, for every cell of every height (flat-indexed exactly
// like the tree's own assignment array, leaf height first), the average
// distanceFn distance from that cell's own vector to each non-void leaf in
// its subtree. The result is normalized so the root's disparity is
// exactly 1.0 (rather than root/root, which would be 0/0 for a uniform
// data set).
func Disparity(ctx context.Context, tree *quadtree.QuadAssignmentTree, distanceFn vecmath.DistanceFunc) ([]float64, error) {
	tree.SetDistanceFunc(distanceFn)
	if err := tree.ComputeAggregates(ctx); err != nil {
		return nil, err
	}
	depth := tree.Depth()
	leafBounds, _ := tree.Bounds(0)
	leafDims := leafBounds.Dims

	rootBounds, _ := tree.Bounds(depth - 1)
	capacity := rootBounds.End

	raw := make([]float64, capacity)
	for h := 0; h < depth; h++ {
		hb, _ := tree.Bounds(h)
		n := hb.Len()
		err := parallelutil.ForEach(ctx, n, func(i int) error {
			pos := geometry.CellPosition{Height: h, Index: i}
			node, _ := tree.GetValue(pos)
			minRow, minCol, maxRow, maxCol := geometry.LeafBounds(pos, leafDims, hb.Dims.Cols)
			var sum float64
			var count int
			for r := minRow; r < maxRow; r++ {
				for c := minCol; c < maxCol; c++ {
					leafIdx := geometry.RowMajorIndex(r, c, leafDims.Cols)
					leaf, _ := tree.GetValue(geometry.CellPosition{Height: 0, Index: leafIdx})
					if leaf == nil {
						continue
					}
					sum += distanceFn(node, leaf)
					count++
				}
			}
			if count > 0 {
				raw[hb.Start+i] = sum / float64(count)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	rootFlatIdx := rootBounds.Start
	rootRaw := raw[rootFlatIdx]
	out := make([]float64, capacity)
	for i := range raw {
		if i == rootFlatIdx {
			out[i] = 1.0
			continue
		}
		if rootRaw != 0 {
			out[i] = raw[i] / rootRaw
		}
	}
	return out, nil
}
