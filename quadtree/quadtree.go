package quadtree

import (
	"sort"
	"sync"

	"github.com/ldgssm/ldgssm/geometry"
	"github.com/ldgssm/ldgssm/vecmath"
)

// QuadAssignmentTree is the flat quadtree-of-aggregates: a single vector
// pool, a single assignment array mapping every tree slot to a pool index,
// and an immutable per-height bounds cache. Mutating methods are guarded by
// mu so a tree can be shared across the fork-join parallel regions of
// partition/target/hnd as long as writes to any one height are disjoint.
type QuadAssignmentTree struct {
	mu sync.RWMutex

	numRows, numCols, depth, elemLen int
	parentKind                       ParentKind
	distanceFn                       vecmath.DistanceFunc

	pool       []vecmath.Vector
	assignment []int
	bounds     []geometry.HeightBounds
	leafCounts []int // per-cell count of non-void leaf descendants, meaningful at height >= 1

	numRealElements   int
	initialLeafAssign []int
}

// New builds a QuadAssignmentTree over a numRows x numCols leaf grid with
// the given depth (see geometry.BuildBoundsCache) and real data vectors.
// Vectors beyond len(data) up to the leaf grid's full capacity are treated
// as void padding (a grid need not be an exact power of two).
func New(numRows, numCols, depth int, data []vecmath.Vector, parentKind ParentKind) (*QuadAssignmentTree, error) {
	bounds, err := geometry.BuildBoundsCache(numRows, numCols, depth)
	if err != nil {
		return nil, err
	}
	leafCount := bounds[0].Len()
	capacity := bounds[depth-1].End

	elemLen := 0
	for _, v := range data {
		if v != nil {
			elemLen = len(v)
			break
		}
	}

	pool := make([]vecmath.Vector, 1+len(data)+(capacity-leafCount))
	for i, v := range data {
		pool[1+i] = v.Clone()
	}

	assignment := make([]int, capacity)
	for i := 0; i < leafCount; i++ {
		if i < len(data) {
			assignment[i] = 1 + i
		} else {
			assignment[i] = VoidIndex
		}
	}
	nextPoolIdx := 1 + len(data)
	for i := leafCount; i < capacity; i++ {
		assignment[i] = nextPoolIdx
		nextPoolIdx++
	}

	initial := make([]int, leafCount)
	copy(initial, assignment[:leafCount])

	t := &QuadAssignmentTree{
		numRows: numRows, numCols: numCols, depth: depth, elemLen: elemLen,
		parentKind:        parentKind,
		distanceFn:        vecmath.EuclideanDistance,
		pool:              pool,
		assignment:        assignment,
		bounds:            bounds,
		leafCounts:        make([]int, capacity),
		numRealElements:   len(data),
		initialLeafAssign: initial,
	}
	t.recomputeLeafCounts()
	return t, nil
}

// Depth returns the tree's number of heights.
func (t *QuadAssignmentTree) Depth() int { return t.depth }

// ElemLen returns the fixed vector length shared by every non-void cell.
func (t *QuadAssignmentTree) ElemLen() int { return t.elemLen }

// ParentKind returns the aggregation mode used by ComputeAggregates.
func (t *QuadAssignmentTree) ParentKind() ParentKind { return t.parentKind }

// SetDistanceFunc sets the distance function ComputeAggregates uses for
// ParentMinChild aggregation (findMinimum's medoid search). New sets this
// to vecmath.EuclideanDistance by default; callers running with a
// different configured distance function (e.g. cosine) must call this
// before ComputeAggregates so the medoid it picks matches the run's own
// metric.
func (t *QuadAssignmentTree) SetDistanceFunc(fn vecmath.DistanceFunc) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.distanceFn = fn
}

// Bounds returns the (offset range, dimensions) cache entry for height.
func (t *QuadAssignmentTree) Bounds(height int) (geometry.HeightBounds, bool) {
	if height < 0 || height >= len(t.bounds) {
		return geometry.HeightBounds{}, false
	}
	return t.bounds[height], true
}

// GetValue returns the vector assigned to pos, or (nil, false) if pos is
// out of range. A void cell returns (nil, true).
func (t *QuadAssignmentTree) GetValue(pos geometry.CellPosition) (vecmath.Vector, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	idx, ok := t.flatIndex(pos)
	if !ok {
		return nil, false
	}
	return t.pool[t.assignment[idx]], true
}

// SetValue overwrites the vector assigned to pos in place. It reports
// false if pos is out of range.
func (t *QuadAssignmentTree) SetValue(pos geometry.CellPosition, v vecmath.Vector) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	idx, ok := t.flatIndex(pos)
	if !ok {
		return false
	}
	t.pool[t.assignment[idx]] = v
	return true
}

// GetAssignmentValue returns the raw pool index stored at pos.
func (t *QuadAssignmentTree) GetAssignmentValue(pos geometry.CellPosition) (int, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	idx, ok := t.flatIndex(pos)
	if !ok {
		return 0, false
	}
	return t.assignment[idx], true
}

// SetAssignmentValue overwrites the raw pool index stored at pos. Used by
// exchange to swap leaves without copying data.
func (t *QuadAssignmentTree) SetAssignmentValue(pos geometry.CellPosition, poolIdx int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	idx, ok := t.flatIndex(pos)
	if !ok {
		return false
	}
	t.assignment[idx] = poolIdx
	return true
}

// LeafCount returns the number of non-void leaf descendants of pos. At
// height 0 this is 1 for a real cell, 0 for void. Counts above height 0
// are recomputed by New, RestoreAssignment and ComputeAggregates;
// SetAssignmentValue does not update them, so after a leaf swap they
// reflect the leaf assignment as of the last of those calls.
func (t *QuadAssignmentTree) LeafCount(pos geometry.CellPosition) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	idx, ok := t.flatIndex(pos)
	if !ok {
		return 0
	}
	if pos.Height == 0 {
		if t.pool[t.assignment[idx]] != nil {
			return 1
		}
		return 0
	}
	return t.leafCounts[idx]
}

func (t *QuadAssignmentTree) flatIndex(pos geometry.CellPosition) (int, bool) {
	if pos.Height < 0 || pos.Height >= len(t.bounds) {
		return 0, false
	}
	b := t.bounds[pos.Height]
	if pos.Index < 0 || pos.Index >= b.Len() {
		return 0, false
	}
	return b.Start + pos.Index, true
}

func (t *QuadAssignmentTree) recomputeLeafCounts() {
	for h := 1; h < t.depth; h++ {
		childDims := t.bounds[h-1].Dims
		parentDims := t.bounds[h].Dims
		parentStart := t.bounds[h].Start
		childStart := t.bounds[h-1].Start
		for i := 0; i < t.bounds[h].Len(); i++ {
			children := geometry.ChildIndices(i, parentDims, childDims)
			total := 0
			for _, c := range children {
				if c < 0 {
					continue
				}
				if h == 1 {
					if t.pool[t.assignment[childStart+c]] != nil {
						total++
					}
				} else {
					total += t.leafCounts[childStart+c]
				}
			}
			t.leafCounts[parentStart+i] = total
		}
	}
}

// RestoreAssignment overwrites the tree's full assignment array (every
// height, leaf-first, matching assignio's flat layout) from words, mapping
// the given voidWord to VoidIndex. It is used to resume a run from a
// previously written assignment file. The tree's data pool must be the
// one the assignment was originally written against, since words are raw
// pool indices.
func (t *QuadAssignmentTree) RestoreAssignment(words []uint32, voidWord uint32) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(words) != len(t.assignment) {
		return ErrAssignmentSizeMismatch
	}
	for i, w := range words {
		if w == voidWord {
			t.assignment[i] = VoidIndex
		} else {
			t.assignment[i] = int(w)
		}
	}
	leafCount := t.bounds[0].Len()
	copy(t.initialLeafAssign, t.assignment[:leafCount])
	t.recomputeLeafCounts()
	return nil
}

// AssertInvariants checks that the leaf sub-range of the assignment array
// remains a permutation of its construction-time values (invariant I2). It
// returns ErrInvariantViolation if not.
func (t *QuadAssignmentTree) AssertInvariants() error {
	t.mu.RLock()
	defer t.mu.RUnlock()
	leafCount := t.bounds[0].Len()
	got := make([]int, leafCount)
	copy(got, t.assignment[:leafCount])

	want := make([]int, leafCount)
	copy(want, t.initialLeafAssign)

	sort.Ints(got)
	sort.Ints(want)
	for i := range got {
		if got[i] != want[i] {
			return ErrInvariantViolation
		}
	}
	return nil
}
