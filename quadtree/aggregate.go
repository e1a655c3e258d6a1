package quadtree

import (
	"context"
	"math/rand"

	"github.com/ldgssm/ldgssm/geometry"
	"github.com/ldgssm/ldgssm/parallelutil"
	"github.com/ldgssm/ldgssm/vecmath"
)

// ComputeAggregates recomputes every internal node's vector bottom-up, from
// height 1 to Depth-1. Nodes within a single height are independent (their
// writes land in disjoint pool slots) and are computed in parallel via
// parallelutil; heights themselves are processed strictly in order, since
// height h+1 depends on height h's freshly written values.
func (t *QuadAssignmentTree) ComputeAggregates(ctx context.Context) error {
	for h := 1; h < t.depth; h++ {
		height := h
		childDims := t.bounds[height-1].Dims
		parentDims := t.bounds[height].Dims
		n := t.bounds[height].Len()

		err := parallelutil.ForEach(ctx, n, func(i int) error {
			children := geometry.ChildIndices(i, parentDims, childDims)
			vectors := make([]vecmath.Vector, 0, 4)
			for _, c := range children {
				if c < 0 {
					continue
				}
				v, _ := t.GetValue(geometry.CellPosition{Height: height - 1, Index: c})
				vectors = append(vectors, v)
			}
			aggregated := t.aggregateChildren(vectors)
			t.SetValue(geometry.CellPosition{Height: height, Index: i}, aggregated)
			return nil
		})
		if err != nil {
			return err
		}
	}
	t.recomputeLeafCounts()
	return nil
}

func (t *QuadAssignmentTree) aggregateChildren(vectors []vecmath.Vector) vecmath.Vector {
	switch t.parentKind {
	case ParentMinChild:
		idx := vecmath.FindMin(vectors, t.distanceFn)
		if idx < 0 {
			return nil
		}
		return vectors[idx].Clone()
	default: // ParentMean
		return vecmath.Aggregate(vectors)
	}
}

// RandomizeAssignment shuffles the leaf sub-range of the assignment array
// in place using a Fisher-Yates shuffle driven by an explicit, seeded
// random source (never the package-global generator, so runs are
// reproducible given the same seed).
func (t *QuadAssignmentTree) RandomizeAssignment(seed int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	rng := rand.New(rand.NewSource(seed))
	leafCount := t.bounds[0].Len()
	rng.Shuffle(leafCount, func(i, j int) {
		t.assignment[i], t.assignment[j] = t.assignment[j], t.assignment[i]
	})
}
