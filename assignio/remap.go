package assignio

import (
	"context"

	"github.com/ldgssm/ldgssm/geometry"
	"github.com/ldgssm/ldgssm/quadtree"
	"github.com/ldgssm/ldgssm/vecmath"
)

// RemapToNearestLeaf returns a full-capacity assignment-word slice where
// every leaf keeps its current pool index and every internal node's word
// is replaced by the pool index of whichever leaf in its own subtree has
// the smallest distanceFn distance to that node's own (already aggregated)
// vector. This is used when exporting onto a visualization created by a
// separate tool, where every tree slot must resolve to one of the
// original leaf colors rather than a synthetic aggregate.
func RemapToNearestLeaf(ctx context.Context, tree *quadtree.QuadAssignmentTree, distanceFn vecmath.DistanceFunc) ([]uint32, error) {
	tree.SetDistanceFunc(distanceFn)
	if err := tree.ComputeAggregates(ctx); err != nil {
		return nil, err
	}
	depth := tree.Depth()
	rootBounds, _ := tree.Bounds(depth - 1)
	capacity := rootBounds.End
	leafBounds, _ := tree.Bounds(0)
	leafDims := leafBounds.Dims

	out := make([]uint32, capacity)
	for i := 0; i < leafBounds.Len(); i++ {
		pos := geometry.CellPosition{Height: 0, Index: i}
		v, _ := tree.GetValue(pos)
		if v == nil {
			out[i] = VoidSentinel
			continue
		}
		idx, _ := tree.GetAssignmentValue(pos)
		out[i] = uint32(idx)
	}

	for h := 1; h < depth; h++ {
		hb, _ := tree.Bounds(h)
		for i := 0; i < hb.Len(); i++ {
			pos := geometry.CellPosition{Height: h, Index: i}
			node, _ := tree.GetValue(pos)
			if node == nil {
				out[hb.Start+i] = VoidSentinel
				continue
			}
			minRow, minCol, maxRow, maxCol := geometry.LeafBounds(pos, leafDims, hb.Dims.Cols)
			bestDist := -1.0
			var bestPoolIdx uint32 = VoidSentinel
			for r := minRow; r < maxRow; r++ {
				for c := minCol; c < maxCol; c++ {
					leafIdx := geometry.RowMajorIndex(r, c, leafDims.Cols)
					leafPos := geometry.CellPosition{Height: 0, Index: leafIdx}
					leafVal, _ := tree.GetValue(leafPos)
					if leafVal == nil {
						continue
					}
					d := distanceFn(node, leafVal)
					if bestDist < 0 || d < bestDist {
						bestDist = d
						poolIdx, _ := tree.GetAssignmentValue(leafPos)
						bestPoolIdx = uint32(poolIdx)
					}
				}
			}
			out[hb.Start+i] = bestPoolIdx
		}
	}
	return out, nil
}
