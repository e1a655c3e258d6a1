package exchange

import (
	"github.com/ldgssm/ldgssm/geometry"
	"github.com/ldgssm/ldgssm/quadtree"
	"github.com/ldgssm/ldgssm/vecmath"
)

// maxNodes bounds the permutation search: 4! = 24 permutations is the
// largest group the scheduler ever hands to a single exchange call (a
// 2x2 candidate block).
const maxNodes = 4

// FindAndSwapBestPermutation evaluates every permutation of the pool
// indices currently assigned to nodes, scores each permutation by the
// summed distanceFn distance from each (possibly permuted) node's vector
// to its own target list, and rewrites the assignment array in place to
// whichever permutation scored strictly lowest. It returns the number of
// cells whose assignment actually changed.
func FindAndSwapBestPermutation(tree *quadtree.QuadAssignmentTree, nodes []geometry.CellPosition, targets [][]vecmath.Vector, distanceFn vecmath.DistanceFunc) (int, error) {
	n := len(nodes)
	if n > maxNodes {
		return 0, ErrTooManyNodes
	}
	if len(targets) != n {
		return 0, ErrNodeTargetMismatch
	}
	if n < 2 {
		return 0, nil
	}

	poolIdx := make([]int, n)
	data := make([]vecmath.Vector, n)
	for i, pos := range nodes {
		v, _ := tree.GetAssignmentValue(pos)
		poolIdx[i] = v
		data[i], _ = tree.GetValue(pos)
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	best := make([]int, n)
	copy(best, perm)
	bestScore := 0.0
	haveBest := false

	for {
		score := 0.0
		for i := 0; i < n; i++ {
			candidate := data[perm[i]]
			for _, tgt := range targets[i] {
				score += distanceFn(candidate, tgt)
			}
		}
		if !haveBest || score < bestScore {
			bestScore = score
			haveBest = true
			copy(best, perm)
		}
		if !vecmath.NextPermutation(perm) {
			break
		}
	}

	swaps := 0
	for i, pos := range nodes {
		if best[i] != i {
			tree.SetAssignmentValue(pos, poolIdx[best[i]])
			swaps++
		}
	}
	return swaps, nil
}
